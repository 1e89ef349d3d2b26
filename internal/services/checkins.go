package services

import (
	"context"
	"log/slog"
	"time"

	"liveboard.app/internal/dtos"
	"liveboard.app/internal/models"
	"liveboard.app/internal/repositories"
)

type CheckInService struct {
	logger   *slog.Logger
	checkIns *repositories.CheckInRepository
	events   *repositories.EventRepository
	rooms    *RoomService
}

// CheckIn records one attendee check-in and pushes the new counter to the
// event's room. Returns the stored record and the updated count.
func (service *CheckInService) CheckIn(
	ctx context.Context,
	eventID string,
	userID string,
	checkInDto *dtos.CheckInDto,
) (*models.CheckIn, int, error) {
	event, err := service.events.GetByID(ctx, eventID, userID)
	if err != nil {
		return nil, 0, err
	}

	checkIn, err := service.checkIns.Create(
		ctx,
		event.ID,
		checkInDto.AttendeeName,
		checkInDto.AttendeeEmail,
		time.Now(),
	)
	if err != nil {
		return nil, 0, err
	}

	count, err := service.checkIns.CountForEvent(ctx, event.ID)
	if err != nil {
		return nil, 0, err
	}

	service.rooms.UpdateCount(event.ID, count)

	return checkIn, count, nil
}

func (service *CheckInService) Count(
	ctx context.Context,
	eventID string,
) (int, error) {
	return service.checkIns.CountForEvent(ctx, eventID)
}

func (service *CheckInService) GetAllForEvent(
	ctx context.Context,
	eventID string,
	userID string,
) ([]models.CheckIn, error) {
	event, err := service.events.GetByID(ctx, eventID, userID)
	if err != nil {
		return nil, err
	}

	return service.checkIns.GetAllForEvent(ctx, event.ID)
}
