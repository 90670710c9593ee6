package protocol

import (
	"encoding/json"
	"fmt"
)

// LogMessage is the side channel for player-reported errors. It is consumed
// for display and never merged into the state.
type LogMessage struct {
	Error string `json:"error"`
}

// Event is one inbound message: either a state diff or a log message.
// Exactly one field is set in a well-formed event.
type Event struct {
	PlayerStateChanged *PlayerStateDiff `json:"player_state_changed,omitempty"`
	LogMessage         *LogMessage      `json:"log_message,omitempty"`
}

// DecodeEvent parses an inbound frame. A frame that parses as JSON but names
// no known event is an error; the session treats any decode failure as a
// transport fault, since the diff stream is inconsistent once a frame is
// lost.
func DecodeEvent(data []byte) (Event, error) {
	var event Event
	if err := json.Unmarshal(data, &event); err != nil {
		return Event{}, fmt.Errorf("failed to decode event: %w", err)
	}
	if event.PlayerStateChanged == nil && event.LogMessage == nil {
		return Event{}, fmt.Errorf("failed to decode event: no known event field")
	}
	return event, nil
}

// Encode serializes an event. Only the mock server in tests sends events; the
// console is otherwise a pure consumer.
func (e Event) Encode() ([]byte, error) {
	return json.Marshal(e)
}
