package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"liveboard.app/internal/dtos"
	"liveboard.app/internal/models"
	"liveboard.app/internal/repositories"
	"liveboard.app/pkg/linkpreview"
)

type EventService struct {
	logger   *slog.Logger
	events   *repositories.EventRepository
	checkIns *repositories.CheckInRepository
	previews linkpreview.Client
	rooms    *RoomService
}

func (service *EventService) GetAll(
	ctx context.Context,
	userID string,
) ([]models.Event, error) {
	return service.events.GetAll(ctx, userID)
}

func (service *EventService) GetByID(
	ctx context.Context,
	id string,
	userID string,
) (*models.Event, error) {
	return service.events.GetByID(ctx, id, userID)
}

func (service *EventService) Create(
	ctx context.Context,
	userID string,
	createEventDto *dtos.CreateEventDto,
) (*models.Event, error) {
	event := &models.Event{
		ID:              uuid.New().String(),
		UserID:          userID,
		Name:            createEventDto.Name,
		Venue:           createEventDto.Venue,
		WebsiteURL:      createEventDto.WebsiteURL,
		PreviewTitle:    nil,
		PreviewDesc:     nil,
		PreviewImageURL: nil,
		ExpectedGuests:  createEventDto.ExpectedGuests,
		EventDate:       createEventDto.EventDate,
		EventStartDate:  createEventDto.EventStartDate,
		StartTime:       createEventDto.StartTime,
		StartMinuteTime: createEventDto.StartMinuteTime,
		StartTimeType:   createEventDto.StartTimeType,
		EndTime:         createEventDto.EndTime,
		EndMinuteTime:   createEventDto.EndMinuteTime,
		EndTimeType:     createEventDto.EndTimeType,
	}

	// best-effort: an unreachable landing page shouldn't block creation
	if event.WebsiteURL != nil && *event.WebsiteURL != "" {
		preview, err := service.previews.Fetch(*event.WebsiteURL)
		if err != nil {
			service.logger.Warn(
				fmt.Sprintf("failed to fetch preview for %s", *event.WebsiteURL),
				logging.ErrAttr(err),
			)
		} else {
			event.PreviewTitle = &preview.Title
			event.PreviewDesc = &preview.Description
			event.PreviewImageURL = &preview.ImageURL
		}
	}

	err := service.events.Create(ctx, event)
	if err != nil {
		return nil, err
	}

	service.rooms.RegisterEvent(event.ID)

	return event, nil
}

// RegisterAllRooms creates a room for every stored event. Called once
// at startup; rooms for events created afterwards are registered on create.
func (service *EventService) RegisterAllRooms(ctx context.Context) error {
	ids, err := service.events.GetAllIDs(ctx)
	if err != nil {
		return err
	}

	service.rooms.RegisterEvents(ids)
	return nil
}

// Pace compares the live check-in counter against the expected linear
// arrival curve at now.
func (service *EventService) Pace(
	ctx context.Context,
	id string,
	userID string,
	now time.Time,
) (*dtos.CheckInPaceDto, error) {
	event, err := service.events.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	count, err := service.checkIns.CountForEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	return &dtos.CheckInPaceDto{
		EventUUID:        event.ID,
		CheckInCount:     count,
		ExpectedCheckIns: event.ExpectedCheckIns(now),
		IsLive:           event.IsLive(now),
	}, nil
}
