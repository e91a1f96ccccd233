package game

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/wanwish/rainy-words/internal/events"
	"github.com/wanwish/rainy-words/internal/rooms"
)

// startedPair builds a running two-player room and returns it with its code.
func startedPair(t *testing.T, c *Coordinator, cast *fakeCast) (*rooms.Room, string) {
	t.Helper()
	code, err := c.CreateRoom("c1", events.CreateRoomRequest{
		Name: "Alice", Mode: "normal", DurationMin: 5, PlayersWanted: 2,
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := c.JoinRoom("c2", events.JoinRoomRequest{RoomID: code, Name: "Bob"}); err != nil {
		t.Fatal(err)
	}
	if cast.count(events.EvGameStart) != 1 {
		t.Fatal("room did not start")
	}
	return c.rooms.Get(code), code
}

func TestSubmit_CorrectScoresOnce(t *testing.T) {
	c, cast := newTestCoordinator()
	defer c.ResetAll()
	room, code := startedPair(t, c, cast)

	c.spawn(room)
	var nw events.NewWord
	decodeInto(t, cast.last(events.EvNewWord), &nw)

	c.Submit("c2", code, events.TypedRequest{WordID: nw.ID, Text: strings.ToUpper(nw.Text)})

	var res events.WordResult
	decodeInto(t, cast.last(events.EvWordResult), &res)
	if !res.Correct || res.ScorerID != "c2" || res.NewScore != 1 {
		t.Errorf("word_result = %+v, want correct by c2 with score 1", res)
	}

	// Re-submitting the same solved word earns nothing.
	c.Submit("c1", code, events.TypedRequest{WordID: nw.ID, Text: nw.Text})
	decodeInto(t, cast.last(events.EvWordResult), &res)
	if res.Correct {
		t.Error("a solved word must reject later submissions")
	}
	room.Lock()
	if got := room.Players.Get("c1").Score; got != 0 {
		t.Errorf("stale submit changed score to %d", got)
	}
	room.Unlock()
}

func TestSubmit_WrongText(t *testing.T) {
	c, cast := newTestCoordinator()
	defer c.ResetAll()
	room, code := startedPair(t, c, cast)

	c.spawn(room)
	var nw events.NewWord
	decodeInto(t, cast.last(events.EvNewWord), &nw)

	c.Submit("c1", code, events.TypedRequest{WordID: nw.ID, Text: nw.Text + "x"})

	m := cast.last(events.EvWordResult)
	if m.kind != "conn" || m.target != "c1" {
		t.Errorf("wrong-text result delivered via %s/%s, want the submitter only", m.kind, m.target)
	}
	var res events.WordResult
	decodeInto(t, m, &res)
	if res.Correct {
		t.Error("mismatched text must not be correct")
	}

	// The word survives a wrong guess.
	c.Submit("c2", code, events.TypedRequest{WordID: nw.ID, Text: nw.Text})
	decodeInto(t, cast.last(events.EvWordResult), &res)
	if !res.Correct {
		t.Error("word should remain claimable after a wrong guess")
	}
}

func TestSubmit_SpinWordScoresDouble(t *testing.T) {
	c, cast := newTestCoordinator()
	defer c.ResetAll()
	room, code := startedPair(t, c, cast)

	// Force the very next spawn to be a spin word.
	room.Lock()
	room.WordsSinceSpin = room.SpinGap
	room.Unlock()
	c.spawn(room)

	var nw events.NewWord
	decodeInto(t, cast.last(events.EvNewWord), &nw)
	if !nw.Spin {
		t.Fatal("expected a spin word")
	}

	c.Submit("c1", code, events.TypedRequest{WordID: nw.ID, Text: nw.Text})
	var res events.WordResult
	decodeInto(t, cast.last(events.EvWordResult), &res)
	if res.NewScore != 2 {
		t.Errorf("spin word score = %d, want 2", res.NewScore)
	}
}

func TestSubmit_ConcurrentSingleWinner(t *testing.T) {
	c, cast := newTestCoordinator()
	defer c.ResetAll()
	room, code := startedPair(t, c, cast)

	c.spawn(room)
	var nw events.NewWord
	decodeInto(t, cast.last(events.EvNewWord), &nw)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		connID := "c1"
		if i%2 == 1 {
			connID = "c2"
		}
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			c.Submit(id, code, events.TypedRequest{WordID: nw.ID, Text: nw.Text})
		}(connID)
	}
	wg.Wait()

	correct := 0
	for _, m := range cast.all() {
		if m.env.Event != events.EvWordResult {
			continue
		}
		var res events.WordResult
		decodeInto(t, &m, &res)
		if res.Correct {
			correct++
		}
	}
	if correct != 1 {
		t.Errorf("correct results = %d, want exactly 1", correct)
	}
	room.Lock()
	total := room.Players.Get("c1").Score + room.Players.Get("c2").Score
	room.Unlock()
	if total != 1 {
		t.Errorf("total score = %d, want 1", total)
	}
}

func TestSubmit_IgnoredWhenNotRunning(t *testing.T) {
	c, cast := newTestCoordinator()
	defer c.ResetAll()
	room, code := startedPair(t, c, cast)

	c.spawn(room)
	var nw events.NewWord
	decodeInto(t, cast.last(events.EvNewWord), &nw)

	room.Lock()
	c.endLocked(room)
	room.Unlock()

	c.Submit("c1", code, events.TypedRequest{WordID: nw.ID, Text: nw.Text})
	var res events.WordResult
	decodeInto(t, cast.last(events.EvWordResult), &res)
	if res.Correct {
		t.Error("submissions after game_end must not score")
	}
}

func TestSpawn_SpinSpacing(t *testing.T) {
	c, cast := newTestCoordinator()
	defer c.ResetAll()
	room, _ := startedPair(t, c, cast)

	mark := len(cast.all())
	for i := 0; i < 120; i++ {
		c.spawn(room)
	}

	gap := 0
	sawSpin := false
	for _, m := range cast.all()[mark:] {
		if m.env.Event != events.EvNewWord {
			continue
		}
		var nw events.NewWord
		decodeInto(t, &m, &nw)
		gap++
		if nw.Spin {
			if sawSpin && (gap < rooms.MinSpinGap || gap > rooms.MaxSpinGap) {
				t.Fatalf("spin gap = %d, want within [%d,%d]", gap, rooms.MinSpinGap, rooms.MaxSpinGap)
			}
			sawSpin = true
			gap = 0
		}
	}
	if !sawSpin {
		t.Error("no spin word in 120 spawns")
	}
}

func TestSpawn_IDsKeepClimbingAcrossRounds(t *testing.T) {
	c, cast := newTestCoordinator()
	defer c.ResetAll()
	room, _ := startedPair(t, c, cast)

	c.spawn(room)
	var first events.NewWord
	decodeInto(t, cast.last(events.EvNewWord), &first)

	room.Lock()
	c.endLocked(room)
	room.Unlock()
	c.tryStart(room)
	if cast.count(events.EvGameStart) != 2 {
		t.Fatal("round did not restart")
	}

	c.spawn(room)
	var second events.NewWord
	decodeInto(t, cast.last(events.EvNewWord), &second)
	if second.ID <= first.ID {
		t.Errorf("second-round word id = %d, want > %d", second.ID, first.ID)
	}
}

func TestTick_CountsDownAndEnds(t *testing.T) {
	c, cast := newTestCoordinator()
	defer c.ResetAll()
	room, _ := startedPair(t, c, cast)

	c.tick(room)
	var tm events.Timer
	decodeInto(t, cast.last(events.EvTimer), &tm)
	if tm.RemainingMs <= 0 || tm.RemainingMs > (5*time.Minute+StartLeadIn).Milliseconds() {
		t.Errorf("remainingMs = %d", tm.RemainingMs)
	}

	room.Lock()
	room.EndAt = time.Now().Add(-time.Second)
	room.Unlock()
	c.tick(room)

	decodeInto(t, cast.last(events.EvTimer), &tm)
	if tm.RemainingMs != 0 {
		t.Errorf("final remainingMs = %d, want 0", tm.RemainingMs)
	}
	if cast.count(events.EvGameEnd) != 1 {
		t.Fatalf("game_end count = %d, want 1", cast.count(events.EvGameEnd))
	}

	// Events for the round stop with game_end.
	mark := len(cast.all())
	c.tick(room)
	c.spawn(room)
	for _, m := range cast.all()[mark:] {
		if m.env.Event == events.EvTimer || m.env.Event == events.EvNewWord {
			t.Errorf("%s broadcast after game_end", m.env.Event)
		}
	}
}

func TestEnd_WinnerTieBreakByJoinOrder(t *testing.T) {
	c, cast := newTestCoordinator()
	defer c.ResetAll()
	room, _ := startedPair(t, c, cast)

	room.Lock()
	room.Players.UpdateScore("c1", 4)
	room.Players.UpdateScore("c2", 4)
	c.endLocked(room)
	room.Unlock()

	var end events.GameEnd
	decodeInto(t, cast.last(events.EvGameEnd), &end)
	if end.WinnerName != "Alice" {
		t.Errorf("tied winner = %q, want the earlier joiner Alice", end.WinnerName)
	}
	if len(end.Scores) != 2 || end.Scores[0].Score != 4 || end.Scores[1].Score != 4 {
		t.Errorf("scores = %+v", end.Scores)
	}

	// Scores are already reset for the next round.
	room.Lock()
	if room.Players.Get("c1").Score != 0 || room.Players.Get("c2").Score != 0 {
		t.Error("scores must reset after game_end")
	}
	room.Unlock()
}

func TestEnd_EmptyRoomWinnerSentinel(t *testing.T) {
	c, cast := newTestCoordinator()
	defer c.ResetAll()
	room, code := startedPair(t, c, cast)

	room.Lock()
	room.Players.Clear()
	c.endLocked(room)
	room.Unlock()
	_ = code

	var end events.GameEnd
	decodeInto(t, cast.last(events.EvGameEnd), &end)
	if end.WinnerName != "N/A" {
		t.Errorf("winner = %q, want N/A", end.WinnerName)
	}
}
