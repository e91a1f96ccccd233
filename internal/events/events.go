// Package events defines the JSON wire protocol shared with the clients and
// the internal change bus. Field spellings (startAtMs, durationMin,
// spawnAtMs, ...) are frozen so existing clients keep working unmodified.
package events

import "encoding/json"

// Client-to-server event names.
const (
	EvCreateRoom    = "create_room"
	EvJoinRoom      = "join_room"
	EvLeaveRoom     = "leave_room"
	EvJoin          = "join" // legacy single-room flow
	EvTyped         = "typed"
	EvFreezeRequest = "freeze:request"
	EvAdminReset    = "admin_reset"
	EvAdminResetAll = "admin_reset_all"
)

// Server-to-client event names.
const (
	EvWelcome          = "welcome"
	EvRoomJoined       = "room_joined"
	EvErrorMsg         = "error_msg"
	EvRoomList         = "room_list"
	EvPlayerList       = "player_list"
	EvGameStart        = "game_start"
	EvTimer            = "timer"
	EvNewWord          = "new_word"
	EvWordResult       = "word_result"
	EvGameEnd          = "game_end"
	EvModeMismatch     = "game_mode_mismatch"
	EvDurationMismatch = "duration_mismatch"
	EvFreezeApply      = "freeze:apply"
	EvFreezeAck        = "freeze:ack"
	EvFreezeDenied     = "freeze:denied"
	EvReset            = "reset"
	EvForceLeave       = "force_leave"
)

// Envelope wraps every message in both directions.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Marshal builds a ready-to-send envelope. Payload types here marshal without
// error, so a failure is reported as an empty message rather than a panic.
func Marshal(event string, data any) []byte {
	var raw json.RawMessage
	if data != nil {
		raw, _ = json.Marshal(data)
	}
	b, err := json.Marshal(Envelope{Event: event, Data: raw})
	if err != nil {
		return nil
	}
	return b
}

// Inbound payloads.

type CreateRoomRequest struct {
	Name          string `json:"name"`
	Mode          string `json:"mode"`
	DurationMin   int    `json:"durationMin"`
	PlayersWanted int    `json:"playersWanted"`
}

type JoinRoomRequest struct {
	RoomID string `json:"roomId"`
	Name   string `json:"name"`
}

type LeaveRoomRequest struct {
	RoomID string `json:"roomId"`
}

type JoinRequest struct {
	Name        string `json:"name"`
	Mode        string `json:"mode"`
	DurationMin int    `json:"durationMin"`
}

type TypedRequest struct {
	WordID int    `json:"wordId"`
	Text   string `json:"text"`
}

type FreezeRequest struct {
	ByName string `json:"byName"`
}

// Outbound payloads.

type Welcome struct {
	Message string `json:"message"`
}

type RoomJoined struct {
	RoomID string `json:"roomId"`
	Mode   string `json:"mode"`
}

type ErrorMsg struct {
	Message string `json:"message"`
}

type RoomSummary struct {
	ID              string `json:"id"`
	Mode            string `json:"mode"`
	DurationMin     int    `json:"durationMin"`
	RequiredPlayers int    `json:"requiredPlayers"`
	Current         int    `json:"current"`
	Running         bool   `json:"running"`
}

type PlayerEntry struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

type PlayerList struct {
	Players []PlayerEntry `json:"players"`
	Count   int           `json:"count"`
}

type GameStart struct {
	RoomID      string   `json:"roomId"`
	StartAtMs   int64    `json:"startAtMs"`
	DurationMin int      `json:"durationMin"`
	EndAtMs     int64    `json:"endAtMs"`
	Players     []string `json:"players"`
}

type Timer struct {
	RemainingMs int64 `json:"remainingMs"`
}

type NewWord struct {
	ID        int    `json:"id"`
	Text      string `json:"text"`
	SpawnAtMs int64  `json:"spawnAtMs"`
	Spin      bool   `json:"spin"`
}

type WordResult struct {
	WordID   int    `json:"wordId"`
	Correct  bool   `json:"correct"`
	ScorerID string `json:"scorerId,omitempty"`
	NewScore int    `json:"newScore,omitempty"`
}

type GameEnd struct {
	WinnerName string        `json:"winnerName"`
	Scores     []PlayerEntry `json:"scores"`
}

type Mismatch struct {
	Message string `json:"message"`
}

type FreezeApply struct {
	Duration int64  `json:"duration"` // milliseconds
	ByName   string `json:"byName"`
}

type FreezeAck struct {
	Used bool `json:"used"`
}

type FreezeDenied struct {
	Reason string `json:"reason"`
}
