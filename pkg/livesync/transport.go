package livesync

import "encoding/json"

// Channel event names shared by both sides of the room channel.
const (
	JoinEvent           = "joinEvent"
	CheckInCountUpdated = "checkInCountUpdated"
)

// Envelope is the wire frame of the room channel: an event name plus its
// JSON payload.
type Envelope struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

func NewEnvelope(event string, payload any) (Envelope, error) {
	marshalled, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, err //nolint:exhaustruct //zero value on error
	}

	return Envelope{
		Event:   event,
		Payload: marshalled,
	}, nil
}

// Transport is the bidirectional channel a Syncer rides on. Implementations
// own the connection lifecycle, including automatic reconnection; the Syncer
// only reacts to connect signals by re-joining its rooms. Handlers registered
// through OnConnect and OnEvent stay registered for the lifetime of the
// transport.
type Transport interface {
	Emit(event string, payload any) error
	OnConnect(fn func())
	OnEvent(event string, fn func(payload []byte))
	Close() error
}
