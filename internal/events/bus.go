package events

// Bus carries internal change notifications between the game coordinator and
// the fanout loop. Signals are level-triggered: the consumer recomputes the
// room list, so coalescing bursts is fine.
type Bus struct {
	RoomListChanges chan struct{}
}

func NewBus() *Bus {
	return &Bus{
		RoomListChanges: make(chan struct{}, 10),
	}
}

// SignalRoomList notes that the lobby browser state changed. Non-blocking: a
// pending signal already covers this change.
func (b *Bus) SignalRoomList() {
	select {
	case b.RoomListChanges <- struct{}{}:
	default:
	}
}
