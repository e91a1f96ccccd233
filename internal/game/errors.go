package game

import "errors"

var (
	// ErrRoomUnavailable covers both a missing room and one already running.
	ErrRoomUnavailable = errors.New("room unavailable")
)
