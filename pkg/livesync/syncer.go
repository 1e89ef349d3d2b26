package livesync

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/xdoubleu/essentia/v2/pkg/logging"
)

// EventRef identifies one event room: the event uuid and the organiser that
// owns it.
type EventRef struct {
	UUID    string
	OwnerID string
}

type joinPayload struct {
	UserID    string `json:"userId"`
	EventUUID string `json:"eventUuid"`
}

type countPayload struct {
	EventUUID           string `json:"eventUuid"`
	UpdatedCheckInCount *int   `json:"updatedCheckInCount"`
}

// Syncer mirrors the server-side check-in counter of every subscribed event.
// Counts are eventually consistent: inbound pushes overwrite last-write-wins
// with no monotonicity check, the server being the source of truth. A fresh
// Syncer knows no counts, so Count returns 0 until the first push arrives.
type Syncer struct {
	logger    *slog.Logger
	transport Transport

	mu        sync.Mutex
	rooms     map[string]string
	counts    map[string]int
	observers []func(eventID string, count int)
	closed    bool
}

// New wires a Syncer onto the given transport. The transport is injected
// rather than shared module state so tests can supply a fake and several
// independent syncers can coexist.
func New(logger *slog.Logger, transport Transport) *Syncer {
	syncer := &Syncer{
		logger:    logger,
		transport: transport,
		mu:        sync.Mutex{},
		rooms:     make(map[string]string),
		counts:    make(map[string]int),
		observers: nil,
		closed:    false,
	}

	transport.OnConnect(syncer.rejoinAll)
	transport.OnEvent(CheckInCountUpdated, syncer.handleCountUpdate)

	return syncer
}

// Subscribe starts tracking the given events, issuing one join request per
// new event. Events whose owner id is missing are skipped with a warning; a
// partially loaded event list is expected early on and not an error. Already
// tracked events are not re-joined within the same connection session;
// duplicate joins are harmless server-side anyway.
func (syncer *Syncer) Subscribe(events []EventRef) {
	syncer.mu.Lock()
	defer syncer.mu.Unlock()

	if syncer.closed {
		return
	}

	for _, event := range events {
		if event.UUID == "" {
			syncer.logger.Warn("skipping room join, no event uuid")
			continue
		}
		if event.OwnerID == "" {
			syncer.logger.Warn(
				"skipping room join, no owner id",
				slog.String("eventUuid", event.UUID),
			)
			continue
		}

		if _, tracked := syncer.rooms[event.UUID]; tracked {
			continue
		}

		syncer.rooms[event.UUID] = event.OwnerID
		syncer.join(event.UUID, event.OwnerID)
	}
}

// Count returns the last pushed check-in count for the event, or 0 if no
// update has ever arrived. Cheap enough to call on every render.
func (syncer *Syncer) Count(eventID string) int {
	syncer.mu.Lock()
	defer syncer.mu.Unlock()

	return syncer.counts[eventID]
}

// OnCountChange registers an observer invoked after every applied count
// update. Observers are called outside the internal lock.
func (syncer *Syncer) OnCountChange(fn func(eventID string, count int)) {
	syncer.mu.Lock()
	defer syncer.mu.Unlock()

	syncer.observers = append(syncer.observers, fn)
}

// Close tears down the syncer and its transport. Safe to call multiple
// times; repeated mounts of a consuming view must not leak listeners.
func (syncer *Syncer) Close() error {
	syncer.mu.Lock()
	if syncer.closed {
		syncer.mu.Unlock()
		return nil
	}
	syncer.closed = true
	syncer.observers = nil
	syncer.mu.Unlock()

	return syncer.transport.Close()
}

// join fires the request without waiting for acknowledgement. A failed emit
// is only logged: on the next connect signal every tracked room is joined
// again anyway.
func (syncer *Syncer) join(eventUUID string, ownerID string) {
	err := syncer.transport.Emit(JoinEvent, joinPayload{
		UserID:    ownerID,
		EventUUID: eventUUID,
	})
	if err != nil {
		syncer.logger.Warn(
			fmt.Sprintf("failed to join room %s", eventUUID),
			logging.ErrAttr(err),
		)
	}
}

// rejoinAll runs on every connect signal. Room membership is not preserved
// server-side across disconnects, so each tracked room is joined again.
func (syncer *Syncer) rejoinAll() {
	syncer.mu.Lock()
	defer syncer.mu.Unlock()

	if syncer.closed {
		return
	}

	for eventUUID, ownerID := range syncer.rooms {
		syncer.join(eventUUID, ownerID)
	}
}

func (syncer *Syncer) handleCountUpdate(payload []byte) {
	var update countPayload
	if err := json.Unmarshal(payload, &update); err != nil {
		syncer.logger.Warn(
			"dropping malformed count update",
			logging.ErrAttr(err),
		)
		return
	}

	if update.EventUUID == "" || update.UpdatedCheckInCount == nil {
		syncer.logger.Warn("dropping count update with missing fields")
		return
	}

	count := *update.UpdatedCheckInCount
	if count < 0 {
		syncer.logger.Warn(
			"dropping negative count update",
			slog.String("eventUuid", update.EventUUID),
		)
		return
	}

	syncer.mu.Lock()
	if syncer.closed {
		syncer.mu.Unlock()
		return
	}
	syncer.counts[update.EventUUID] = count
	observers := make([]func(string, int), len(syncer.observers))
	copy(observers, syncer.observers)
	syncer.mu.Unlock()

	for _, fn := range observers {
		fn(update.EventUUID, count)
	}
}
