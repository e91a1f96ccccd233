package rooms

import (
	"sync"
	"time"

	"github.com/wanwish/rainy-words/internal/players"
	"github.com/wanwish/rainy-words/internal/words"
)

// Duration and quorum bounds for a match.
const (
	MinDurationMin = 1
	MaxDurationMin = 5
	MinPlayers     = 1
	MaxPlayers     = 4
	MinSpinGap     = 5
	MaxSpinGap     = 10
)

// Room is one match context. The embedded mutex serializes every mutator for
// the room: the countdown tick, the word-spawn tick, and submissions all take
// it, so there is a single active mutator per room at any instant.
type Room struct {
	sync.Mutex

	Code            string
	Mode            words.Mode
	DurationMin     int
	RequiredPlayers int
	Legacy          bool // the single global room of the legacy join flow

	Players *players.Store
	Words   *words.Store

	Running bool
	Closed  bool // set under the lock right before registry removal
	StartAt time.Time
	EndAt   time.Time

	WordsSinceSpin int
	SpinGap        int

	MatchID   string // history-store row for the running round, "" without a DB
	CreatedAt time.Time
}

// ClampDuration bounds a requested match length to [1,5] minutes.
func ClampDuration(min int) int {
	if min < MinDurationMin {
		return MinDurationMin
	}
	if min > MaxDurationMin {
		return MaxDurationMin
	}
	return min
}

// ClampQuorum bounds a requested player count to [1,4].
func ClampQuorum(n int) int {
	if n < MinPlayers {
		return MinPlayers
	}
	if n > MaxPlayers {
		return MaxPlayers
	}
	return n
}
