// Package game is the authoritative coordinator: room lifecycle and
// matchmaking, the start/tick/end session machine, word spawning, scoring,
// and the freeze power-up. Everything that mutates one room happens under
// that room's lock.
package game

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/wanwish/rainy-words/internal/db"
	"github.com/wanwish/rainy-words/internal/events"
	"github.com/wanwish/rainy-words/internal/logging"
	"github.com/wanwish/rainy-words/internal/metrics"
	"github.com/wanwish/rainy-words/internal/rooms"
	"github.com/wanwish/rainy-words/internal/scheduler"
	"github.com/wanwish/rainy-words/internal/words"
)

const (
	// StartLeadIn is the gap between the start notification and play, giving
	// clients time to switch scenes.
	StartLeadIn = 1500 * time.Millisecond

	// TickInterval drives the countdown broadcast.
	TickInterval = time.Second

	// DefaultSpawnInterval is the word cadence unless configured otherwise.
	DefaultSpawnInterval = 3 * time.Second

	// FreezeDurationMs is how long recipients are asked to block their input.
	FreezeDurationMs = 10000

	legacyQuorum = 2
)

// Broadcaster delivers marshaled envelopes; internal/gateway.Hub implements
// it, tests substitute a recorder.
type Broadcaster interface {
	ToConn(connID string, msg []byte)
	ToRoom(roomCode string, msg []byte)
	ToRoomExcept(roomCode, exceptID string, msg []byte)
	ToAll(msg []byte)
	SetRoom(connID, roomCode string)
}

type roomTimers struct {
	tick  *scheduler.Task
	spawn *scheduler.Task
}

// Coordinator wires the registry, the gateway, and the optional history DB.
type Coordinator struct {
	rooms  *rooms.Store
	cast   Broadcaster
	bus    *events.Bus
	freeze *FreezeTracker

	db      *db.DB // nil when no database is configured
	wordBuf chan db.WordEvent

	spawnInterval time.Duration

	mu         sync.Mutex
	legacyCode string
	timers     map[string]*roomTimers
}

// Option tweaks a Coordinator at construction.
type Option func(*Coordinator)

// WithHistory attaches the optional match-history store and its word-event
// buffer.
func WithHistory(database *db.DB, buf chan db.WordEvent) Option {
	return func(c *Coordinator) {
		c.db = database
		c.wordBuf = buf
	}
}

// WithSpawnInterval overrides the word spawn cadence.
func WithSpawnInterval(d time.Duration) Option {
	return func(c *Coordinator) {
		if d > 0 {
			c.spawnInterval = d
		}
	}
}

func NewCoordinator(store *rooms.Store, cast Broadcaster, bus *events.Bus, opts ...Option) *Coordinator {
	c := &Coordinator{
		rooms:         store,
		cast:          cast,
		bus:           bus,
		freeze:        NewFreezeTracker(),
		spawnInterval: DefaultSpawnInterval,
		timers:        make(map[string]*roomTimers),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CreateRoom makes a room and joins the creator as its first member.
// Returns the new room code.
func (c *Coordinator) CreateRoom(connID string, req events.CreateRoomRequest) (string, error) {
	mode := words.Mode(req.Mode)
	if !mode.Valid() {
		mode = words.ModeNormal
	}

	room, err := c.rooms.Create(mode, req.DurationMin, req.PlayersWanted, false)
	if err != nil {
		c.sendError(connID, "Could not create room")
		return "", err
	}
	metrics.RoomsCreated.Inc()
	logging.Log.Infof("[Room %s] created: mode=%s duration=%dm quorum=%d",
		room.Code, room.Mode, room.DurationMin, room.RequiredPlayers)

	room.Lock()
	c.addMemberLocked(room, connID, req.Name, room.Mode, room.DurationMin)
	c.tryStartLocked(room)
	room.Unlock()
	c.signalRoomList()
	return room.Code, nil
}

// JoinRoom adds a player to an existing, not-yet-running room. Admission is
// decided and applied under one lock acquisition so two racing joins cannot
// both claim the last slot.
func (c *Coordinator) JoinRoom(connID string, req events.JoinRoomRequest) error {
	room := c.rooms.Get(strings.ToUpper(strings.TrimSpace(req.RoomID)))
	if room == nil {
		c.sendError(connID, "Room not found")
		return ErrRoomUnavailable
	}

	room.Lock()
	switch {
	case room.Closed:
		room.Unlock()
		c.sendError(connID, "Room not found")
		return ErrRoomUnavailable
	case room.Running:
		room.Unlock()
		c.sendError(connID, "Game already running in that room")
		return ErrRoomUnavailable
	case room.Players.Count() >= room.RequiredPlayers:
		room.Unlock()
		c.sendError(connID, "Room is full")
		return ErrRoomUnavailable
	}

	// Joiners inherit the room's settings; only the legacy flow carries
	// per-player preferences.
	c.addMemberLocked(room, connID, req.Name, room.Mode, room.DurationMin)
	c.tryStartLocked(room)
	room.Unlock()
	c.signalRoomList()
	return nil
}

// JoinLegacy serves the single-room flow of older clients: everyone lands in one
// global two-player room, carrying their own mode/duration preference.
func (c *Coordinator) JoinLegacy(connID string, req events.JoinRequest) error {
	mode := words.Mode(req.Mode)
	if !mode.Valid() {
		mode = words.ModeNormal
	}

	c.mu.Lock()
	var room *rooms.Room
	if c.legacyCode != "" {
		room = c.rooms.Get(c.legacyCode)
	}
	if room == nil {
		created, err := c.rooms.Create(mode, req.DurationMin, legacyQuorum, true)
		if err != nil {
			c.mu.Unlock()
			c.sendError(connID, "Could not join")
			return err
		}
		c.legacyCode = created.Code
		room = created
		logging.Log.Infof("[Room %s] global room created", room.Code)
	}
	c.mu.Unlock()

	room.Lock()
	if room.Closed || room.Running ||
		(room.Players.Get(connID) == nil && room.Players.Count() >= room.RequiredPlayers) {
		room.Unlock()
		c.sendError(connID, "Could not join")
		return ErrRoomUnavailable
	}
	name := c.addMemberLocked(room, connID, req.Name, mode, req.DurationMin)
	c.cast.ToConn(connID, events.Marshal(events.EvWelcome, events.Welcome{
		Message: "Welcome, " + name + ".",
	}))
	c.tryStartLocked(room)
	room.Unlock()
	c.signalRoomList()
	return nil
}

// addMemberLocked registers the player, moves the connection into the room,
// and broadcasts the refreshed roster. Caller holds the room lock and signals
// the room list after releasing it.
func (c *Coordinator) addMemberLocked(room *rooms.Room, connID, name string, mode words.Mode, durationMin int) string {
	p := room.Players.Add(connID, name, mode, rooms.ClampDuration(durationMin))
	roster := c.playerList(room)

	c.cast.SetRoom(connID, room.Code)
	c.cast.ToConn(connID, events.Marshal(events.EvRoomJoined, events.RoomJoined{
		RoomID: room.Code,
		Mode:   string(room.Mode),
	}))
	c.cast.ToRoom(room.Code, events.Marshal(events.EvPlayerList, roster))
	return p.Name
}

// Leave removes a connection from its room: deletes the room when it empties,
// force-ends a running round that drops below quorum.
func (c *Coordinator) Leave(connID, roomCode string) {
	if roomCode == "" {
		return
	}
	room := c.rooms.Get(roomCode)
	if room == nil {
		return
	}

	room.Lock()
	if !room.Players.Remove(connID) {
		room.Unlock()
		return
	}
	c.cast.SetRoom(connID, "")

	count := room.Players.Count()
	switch {
	case count == 0:
		// endLocked closes the open history row when a running round dies
		// with its last player.
		c.endLocked(room)
		c.stopTimers(room.Code)
		// Mark dead before the lock drops so a joiner holding this *Room
		// cannot slip into a room the registry no longer lists.
		room.Closed = true
		room.Unlock()
		c.deleteRoom(room.Code)
		logging.Log.Infof("[Room %s] empty, deleted", room.Code)
	case room.Running && count < room.RequiredPlayers:
		// Forced end: game_end goes out before any later tick can fire.
		c.endLocked(room)
		roster := c.playerList(room)
		room.Unlock()
		c.cast.ToRoom(room.Code, events.Marshal(events.EvPlayerList, roster))
	default:
		roster := c.playerList(room)
		room.Unlock()
		c.cast.ToRoom(room.Code, events.Marshal(events.EvPlayerList, roster))
	}
	c.signalRoomList()
}

// Disconnect is the implicit leave plus power-up cleanup.
func (c *Coordinator) Disconnect(connID, roomCode string) {
	c.Leave(connID, roomCode)
	c.freeze.Forget(connID)
}

// Summaries snapshots every live room for the lobby browser.
func (c *Coordinator) Summaries() []events.RoomSummary {
	list := c.rooms.List()
	out := make([]events.RoomSummary, 0, len(list))
	for _, room := range list {
		room.Lock()
		out = append(out, events.RoomSummary{
			ID:              room.Code,
			Mode:            string(room.Mode),
			DurationMin:     room.DurationMin,
			RequiredPlayers: room.RequiredPlayers,
			Current:         room.Players.Count(),
			Running:         room.Running,
		})
		room.Unlock()
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// BroadcastRoomList pushes the current summaries to every connection.
func (c *Coordinator) BroadcastRoomList() {
	c.cast.ToAll(events.Marshal(events.EvRoomList, c.Summaries()))
}

// Bus exposes the change bus so the server can drive the room-list fanout.
func (c *Coordinator) Bus() *events.Bus {
	return c.bus
}

func (c *Coordinator) signalRoomList() {
	metrics.ActiveRooms.Set(float64(len(c.rooms.List())))
	c.bus.SignalRoomList()
}

func (c *Coordinator) deleteRoom(code string) {
	c.rooms.Delete(code)
	c.mu.Lock()
	if c.legacyCode == code {
		c.legacyCode = ""
	}
	c.mu.Unlock()
}

func (c *Coordinator) sendError(connID, message string) {
	c.cast.ToConn(connID, events.Marshal(events.EvErrorMsg, events.ErrorMsg{Message: message}))
}

// playerList builds the roster payload. Callers hold the room lock.
func (c *Coordinator) playerList(room *rooms.Room) events.PlayerList {
	list := room.Players.GetList()
	entries := make([]events.PlayerEntry, 0, len(list))
	for _, p := range list {
		entries = append(entries, events.PlayerEntry{ID: p.ID, Name: p.Name, Score: p.Score})
	}
	return events.PlayerList{Players: entries, Count: len(entries)}
}

func (c *Coordinator) setTimers(code string, tick, spawn *scheduler.Task) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.timers[code] = &roomTimers{tick: tick, spawn: spawn}
}

// stopTimers cancels a room's tasks. Safe under the room lock and safe from
// inside the tick callback itself: Stop signals without waiting.
func (c *Coordinator) stopTimers(code string) {
	c.mu.Lock()
	t := c.timers[code]
	delete(c.timers, code)
	c.mu.Unlock()
	if t != nil {
		t.tick.Stop()
		t.spawn.Stop()
	}
}
