package livesync_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"liveboard.app/pkg/livesync"
)

type emittedMessage struct {
	Event   string
	Payload any
}

type fakeTransport struct {
	emitted    []emittedMessage
	connectFns []func()
	handlers   map[string][]func(payload []byte)
	closed     int
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{
		emitted:    nil,
		connectFns: nil,
		handlers:   make(map[string][]func(payload []byte)),
		closed:     0,
	}
}

func (transport *fakeTransport) Emit(event string, payload any) error {
	transport.emitted = append(transport.emitted, emittedMessage{
		Event:   event,
		Payload: payload,
	})
	return nil
}

func (transport *fakeTransport) OnConnect(fn func()) {
	transport.connectFns = append(transport.connectFns, fn)
}

func (transport *fakeTransport) OnEvent(event string, fn func(payload []byte)) {
	transport.handlers[event] = append(transport.handlers[event], fn)
}

func (transport *fakeTransport) Close() error {
	transport.closed++
	return nil
}

func (transport *fakeTransport) connect() {
	for _, fn := range transport.connectFns {
		fn()
	}
}

func (transport *fakeTransport) push(t *testing.T, event string, payload any) {
	t.Helper()

	marshalled, err := json.Marshal(payload)
	assert.Nil(t, err)

	for _, fn := range transport.handlers[event] {
		fn(marshalled)
	}
}

func (transport *fakeTransport) joins() []string {
	var joins []string
	for _, msg := range transport.emitted {
		if msg.Event == livesync.JoinEvent {
			joins = append(joins, fmt.Sprintf("%v", msg.Payload))
		}
	}
	return joins
}

func countUpdate(eventUUID string, count int) map[string]any {
	return map[string]any{
		"eventUuid":           eventUUID,
		"updatedCheckInCount": count,
	}
}

func TestSubscribeJoinsOncePerEvent(t *testing.T) {
	transport := newFakeTransport()
	syncer := livesync.New(logging.NewNopLogger(), transport)

	syncer.Subscribe([]livesync.EventRef{
		{UUID: "evt-1", OwnerID: "owner-1"},
		{UUID: "evt-2", OwnerID: "owner-1"},
	})

	assert.Len(t, transport.joins(), 2)

	// already tracked, no second join
	syncer.Subscribe([]livesync.EventRef{
		{UUID: "evt-1", OwnerID: "owner-1"},
	})

	assert.Len(t, transport.joins(), 2)
}

func TestSubscribeSkipsMissingOwner(t *testing.T) {
	transport := newFakeTransport()
	syncer := livesync.New(logging.NewNopLogger(), transport)

	syncer.Subscribe([]livesync.EventRef{
		{UUID: "evt-1", OwnerID: ""},
		{UUID: "", OwnerID: "owner-1"},
		{UUID: "evt-2", OwnerID: "owner-1"},
	})

	assert.Len(t, transport.joins(), 1)
}

func TestCountDefaultsToZero(t *testing.T) {
	transport := newFakeTransport()
	syncer := livesync.New(logging.NewNopLogger(), transport)

	assert.Equal(t, 0, syncer.Count("never-seen"))
}

func TestCountLastWriteWins(t *testing.T) {
	transport := newFakeTransport()
	syncer := livesync.New(logging.NewNopLogger(), transport)

	transport.push(t, livesync.CheckInCountUpdated, countUpdate("evt-1", 5))
	assert.Equal(t, 5, syncer.Count("evt-1"))

	// a later, smaller count is accepted as-is
	transport.push(t, livesync.CheckInCountUpdated, countUpdate("evt-1", 3))
	assert.Equal(t, 3, syncer.Count("evt-1"))
}

func TestMalformedUpdatesDropped(t *testing.T) {
	transport := newFakeTransport()
	syncer := livesync.New(logging.NewNopLogger(), transport)

	transport.push(t, livesync.CheckInCountUpdated, countUpdate("evt-1", 5))

	for _, fn := range transport.handlers[livesync.CheckInCountUpdated] {
		fn([]byte("not json"))
	}
	transport.push(t, livesync.CheckInCountUpdated, map[string]any{
		"updatedCheckInCount": 9,
	})
	transport.push(t, livesync.CheckInCountUpdated, map[string]any{
		"eventUuid": "evt-1",
	})
	transport.push(t, livesync.CheckInCountUpdated, countUpdate("evt-1", -2))

	assert.Equal(t, 5, syncer.Count("evt-1"))
}

func TestReconnectRejoinsAllRooms(t *testing.T) {
	transport := newFakeTransport()
	syncer := livesync.New(logging.NewNopLogger(), transport)

	syncer.Subscribe([]livesync.EventRef{
		{UUID: "evt-1", OwnerID: "owner-1"},
	})
	// added after the initial subscribe, before the disconnect
	syncer.Subscribe([]livesync.EventRef{
		{UUID: "evt-2", OwnerID: "owner-2"},
	})

	assert.Len(t, transport.joins(), 2)

	transport.connect()

	assert.Len(t, transport.joins(), 4)
}

func TestObserversNotified(t *testing.T) {
	transport := newFakeTransport()
	syncer := livesync.New(logging.NewNopLogger(), transport)

	var gotEvent string
	var gotCount int
	syncer.OnCountChange(func(eventID string, count int) {
		gotEvent = eventID
		gotCount = count
	})

	transport.push(t, livesync.CheckInCountUpdated, countUpdate("evt-1", 7))

	assert.Equal(t, "evt-1", gotEvent)
	assert.Equal(t, 7, gotCount)
}

func TestCloseIsIdempotent(t *testing.T) {
	transport := newFakeTransport()
	syncer := livesync.New(logging.NewNopLogger(), transport)

	syncer.Subscribe([]livesync.EventRef{
		{UUID: "evt-1", OwnerID: "owner-1"},
	})

	assert.Nil(t, syncer.Close())
	assert.Nil(t, syncer.Close())
	assert.Equal(t, 1, transport.closed)

	// closed syncers ignore late traffic
	transport.push(t, livesync.CheckInCountUpdated, countUpdate("evt-1", 5))
	assert.Equal(t, 0, syncer.Count("evt-1"))

	transport.connect()
	assert.Len(t, transport.joins(), 1)
}
