package services

import (
	"context"
	"log/slog"
	"sync"

	"github.com/coder/websocket"

	"liveboard.app/internal/dtos"
	"liveboard.app/internal/models"
	"liveboard.app/pkg/livesync"
)

// RoomService owns the room channel: one room per event, keyed by the event
// uuid. Dashboards join by sending a joinEvent message; every applied
// check-in fans a checkInCountUpdated message out to the room.
type RoomService struct {
	logger *slog.Logger
	mu     sync.Mutex
	rooms  map[string]*models.Room
}

func NewRoomService(logger *slog.Logger) *RoomService {
	return &RoomService{
		logger: logger,
		mu:     sync.Mutex{},
		rooms:  make(map[string]*models.Room),
	}
}

// RegisterEvent creates the room for one event. Registering an already
// registered event is a no-op.
func (service *RoomService) RegisterEvent(eventID string) {
	service.mu.Lock()
	defer service.mu.Unlock()

	if _, ok := service.rooms[eventID]; ok {
		return
	}

	room := models.NewRoom(eventID)
	service.rooms[eventID] = &room
}

func (service *RoomService) RegisterEvents(eventIDs []string) {
	for _, eventID := range eventIDs {
		service.RegisterEvent(eventID)
	}
}

// Join adds a dashboard connection to an event's room and sends it the
// current count. Joins for unregistered events are dropped with a warning.
func (service *RoomService) Join(
	ctx context.Context,
	eventID string,
	conn *websocket.Conn,
) bool {
	service.mu.Lock()
	defer service.mu.Unlock()

	room, ok := service.rooms[eventID]
	if !ok {
		service.logger.Warn(
			"attempted to join room of unregistered event",
			slog.String("eventUuid", eventID),
		)
		return false
	}

	env, err := countEnvelope(eventID, room.Count)
	if err != nil {
		return false
	}

	room.AddMember(ctx, conn, env)
	service.logger.Info(
		"dashboard joined event room",
		slog.String("eventUuid", eventID),
	)
	return true
}

func (service *RoomService) Leave(eventID string, conn *websocket.Conn) {
	service.mu.Lock()
	defer service.mu.Unlock()

	room, ok := service.rooms[eventID]
	if !ok {
		return
	}

	room.RemoveMember(conn)
	service.logger.Info(
		"dashboard left event room",
		slog.String("eventUuid", eventID),
	)
}

// UpdateCount stores the new counter value and pushes it to the event's
// room. Counts for unregistered events are dropped with a warning; one bad
// event must not affect the others.
func (service *RoomService) UpdateCount(eventID string, count int) {
	service.mu.Lock()
	defer service.mu.Unlock()

	room, ok := service.rooms[eventID]
	if !ok {
		service.logger.Warn(
			"dropping count update for unregistered event",
			slog.String("eventUuid", eventID),
		)
		return
	}

	room.Count = count

	env, err := countEnvelope(eventID, count)
	if err != nil {
		return
	}

	room.Broadcast(context.Background(), env)
}

func countEnvelope(eventID string, count int) (livesync.Envelope, error) {
	return livesync.NewEnvelope(
		livesync.CheckInCountUpdated,
		dtos.CheckInCountDto{
			EventUUID:           eventID,
			UpdatedCheckInCount: count,
		},
	)
}
