package words

import (
	"strings"
	"sync"
	"time"
)

// ClaimResult is the outcome of a submission against the active set.
type ClaimResult int

const (
	ClaimMissing ClaimResult = iota // unknown or already-claimed id
	ClaimWrong                      // word present, text does not match
	ClaimOK                         // word matched and removed
)

// Store holds the words currently falling in one room. IDs increment from 1
// and are never reused within a room lifetime; Reset rewinds the counter.
type Store struct {
	mu     sync.Mutex
	words  map[int]*Word
	nextID int
}

func NewStore() *Store {
	return &Store{
		words:  make(map[int]*Word),
		nextID: 1,
	}
}

// Spawn allocates the next word id and stores a new active word.
func (s *Store) Spawn(text string, spin bool) *Word {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	w := &Word{
		ID:        id,
		Text:      text,
		Spin:      spin,
		SpawnedAt: time.Now(),
	}
	s.words[id] = w
	return w
}

func (s *Store) Get(id int) *Word {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.words[id]
}

// Claim compares text against the stored word case-insensitively and removes
// the word on a match. Exactly one caller can ever get ClaimOK for a given id;
// everyone after it sees ClaimMissing.
func (s *Store) Claim(id int, text string) (*Word, ClaimResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.words[id]
	if !ok {
		return nil, ClaimMissing
	}
	if !strings.EqualFold(w.Text, text) {
		return nil, ClaimWrong
	}
	delete(s.words, id)
	return w, ClaimOK
}

func (s *Store) GetList() []*Word {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]*Word, 0, len(s.words))
	for _, w := range s.words {
		list = append(list, w)
	}
	return list
}

func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.words)
}

// Clear drops all active words but keeps the id counter running, so word ids
// stay monotonic across rounds in the same room.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.words = make(map[int]*Word)
}

// Reset clears the active set and rewinds the id counter. Administrative
// resets only.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.words = make(map[int]*Word)
	s.nextID = 1
}
