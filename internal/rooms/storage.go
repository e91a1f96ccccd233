package rooms

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/wanwish/rainy-words/internal/players"
	"github.com/wanwish/rainy-words/internal/words"
)

const staleTTL = 1 * time.Hour

// RollSpinGap resamples the number of regular words between two spin words,
// uniform over [MinSpinGap, MaxSpinGap].
func RollSpinGap() int {
	return rand.Intn(MaxSpinGap-MinSpinGap+1) + MinSpinGap
}

// Store is the process-wide registry of live rooms.
type Store struct {
	mu    sync.Mutex
	rooms map[string]*Room
}

func NewStore() *Store {
	s := &Store{
		rooms: make(map[string]*Room),
	}
	go s.sweepStale()
	return s
}

// Create registers a room under a fresh unique code.
func (s *Store) Create(mode words.Mode, durationMin, requiredPlayers int, legacy bool) (*Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Try up to 10 times to generate a unique code
	for i := 0; i < 10; i++ {
		code, err := GenerateCode()
		if err != nil {
			return nil, fmt.Errorf("generating room code: %w", err)
		}
		if _, exists := s.rooms[code]; exists {
			continue
		}

		room := &Room{
			Code:            code,
			Mode:            mode,
			DurationMin:     ClampDuration(durationMin),
			RequiredPlayers: ClampQuorum(requiredPlayers),
			Legacy:          legacy,
			Players:         players.NewStore(),
			Words:           words.NewStore(),
			SpinGap:         RollSpinGap(),
			CreatedAt:       time.Now(),
		}
		s.rooms[code] = room
		return room, nil
	}
	return nil, fmt.Errorf("failed to generate unique room code after 10 attempts")
}

func (s *Store) Get(code string) *Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rooms[code]
}

func (s *Store) Delete(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rooms, code)
}

func (s *Store) List() []*Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]*Room, 0, len(s.rooms))
	for _, r := range s.rooms {
		list = append(list, r)
	}
	return list
}

// sweepStale collects rooms that were created but never gathered anyone.
// Populated rooms are deleted by the leave path the moment they empty out.
func (s *Store) sweepStale() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		s.mu.Lock()
		now := time.Now()
		for code, room := range s.rooms {
			if room.Players.Count() == 0 && now.Sub(room.CreatedAt) > staleTTL {
				delete(s.rooms, code)
			}
		}
		s.mu.Unlock()
	}
}
