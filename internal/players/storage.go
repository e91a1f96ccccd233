package players

import (
	"sort"
	"sync"

	"github.com/wanwish/rainy-words/internal/words"
)

// Store keeps one room's players. Insertion order is preserved because the
// ranking tie-break is earliest join.
type Store struct {
	mu      sync.Mutex
	players map[string]*Player
	order   []string
}

func NewStore() *Store {
	return &Store{
		players: make(map[string]*Player),
	}
}

func (s *Store) Add(id, name string, mode words.Mode, durationMin int) *Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.players[id]; ok {
		return p
	}
	p := &Player{
		ID:          id,
		Name:        CleanName(name),
		Mode:        mode,
		DurationMin: durationMin,
	}
	s.players[id] = p
	s.order = append(s.order, id)
	return p
}

func (s *Store) Get(id string) *Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.players[id]
}

func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.players[id]; !ok {
		return false
	}
	delete(s.players, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// GetList returns players in join order.
func (s *Store) GetList() []*Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]*Player, 0, len(s.order))
	for _, id := range s.order {
		list = append(list, s.players[id])
	}
	return list
}

func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.players)
}

func (s *Store) UpdateScore(id string, points int) *Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.players[id]; ok {
		p.Score += points
		return p
	}
	return nil
}

// Ranked returns players score-descending; equal scores keep join order.
func (s *Store) Ranked() []*Player {
	ranked := s.GetList()
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

func (s *Store) ResetScores() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.players {
		p.Score = 0
	}
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players = make(map[string]*Player)
	s.order = nil
}
