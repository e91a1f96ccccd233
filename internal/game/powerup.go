package game

import (
	"github.com/wanwish/rainy-words/internal/events"
	"github.com/wanwish/rainy-words/internal/logging"
	"github.com/wanwish/rainy-words/internal/metrics"
)

// UseFreeze spends a connection's one-time freeze. The server only relays the
// effect: recipients block their own input client-side for the stated
// duration, and nothing here touches timers, spawning, or scoring.
func (c *Coordinator) UseFreeze(connID, roomCode string, req events.FreezeRequest) {
	// A lobby connection has room code "", which the hub would treat as
	// "every other lobby connection". Deny without spending the freeze.
	if roomCode == "" {
		c.cast.ToConn(connID, events.Marshal(events.EvFreezeDenied, events.FreezeDenied{
			Reason: "not-in-room",
		}))
		return
	}
	if !c.freeze.Use(connID) {
		c.cast.ToConn(connID, events.Marshal(events.EvFreezeDenied, events.FreezeDenied{
			Reason: "already-used",
		}))
		return
	}

	c.cast.ToRoomExcept(roomCode, connID, events.Marshal(events.EvFreezeApply, events.FreezeApply{
		Duration: FreezeDurationMs,
		ByName:   req.ByName,
	}))
	c.cast.ToConn(connID, events.Marshal(events.EvFreezeAck, events.FreezeAck{Used: true}))
	metrics.FreezesApplied.Inc()
	logging.Log.Infof("[Room %s] freeze by %s", roomCode, req.ByName)
}
