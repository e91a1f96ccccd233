package events

import (
	"encoding/json"
	"testing"
	"time"
)

func TestMarshal_Envelope(t *testing.T) {
	b := Marshal(EvNewWord, NewWord{ID: 7, Text: "apple", SpawnAtMs: 1234, Spin: true})

	var env Envelope
	if err := json.Unmarshal(b, &env); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	if env.Event != EvNewWord {
		t.Errorf("event = %q, want %q", env.Event, EvNewWord)
	}

	var nw NewWord
	if err := json.Unmarshal(env.Data, &nw); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if nw.ID != 7 || nw.Text != "apple" || !nw.Spin {
		t.Errorf("unexpected payload: %+v", nw)
	}
}

func TestMarshal_NilData(t *testing.T) {
	b := Marshal(EvReset, nil)

	var env Envelope
	if err := json.Unmarshal(b, &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if env.Event != EvReset {
		t.Errorf("event = %q, want %q", env.Event, EvReset)
	}
	if len(env.Data) != 0 {
		t.Errorf("data = %s, want empty", env.Data)
	}
}

func TestWordResult_OmitsScorerWhenIncorrect(t *testing.T) {
	b, err := json.Marshal(WordResult{WordID: 3, Correct: false})
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatal(err)
	}
	if _, present := m["scorerId"]; present {
		t.Error("scorerId should be omitted for incorrect results")
	}
}

func TestBus_SignalRoomList(t *testing.T) {
	bus := NewBus()
	bus.SignalRoomList()

	select {
	case <-bus.RoomListChanges:
	case <-time.After(1 * time.Second):
		t.Fatal("timed out waiting for room list signal")
	}
}

func TestBus_SignalRoomList_NeverBlocks(t *testing.T) {
	bus := NewBus()
	// Far beyond the channel's capacity; later signals coalesce.
	for i := 0; i < 100; i++ {
		bus.SignalRoomList()
	}
}
