package repositories

import (
	"context"
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
	"liveboard.app/internal/models"
)

type CheckInRepository struct {
	db postgres.DB
}

func (repo *CheckInRepository) Create(
	ctx context.Context,
	eventID string,
	attendeeName string,
	attendeeEmail string,
	checkedInAt time.Time,
) (*models.CheckIn, error) {
	query := `
		INSERT INTO liveboard.checkins (event_id, attendee_name,
		attendee_email, checked_in_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	checkIn := models.CheckIn{
		ID:            0,
		EventID:       eventID,
		AttendeeName:  attendeeName,
		AttendeeEmail: attendeeEmail,
		CheckedInAt:   checkedInAt,
	}
	err := repo.db.QueryRow(
		ctx,
		query,
		eventID,
		attendeeName,
		attendeeEmail,
		checkedInAt,
	).Scan(&checkIn.ID)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return &checkIn, nil
}

func (repo *CheckInRepository) CountForEvent(
	ctx context.Context,
	eventID string,
) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM liveboard.checkins
		WHERE event_id = $1
	`

	var count int
	err := repo.db.QueryRow(ctx, query, eventID).Scan(&count)
	if err != nil {
		return 0, postgres.PgxErrorToHTTPError(err)
	}

	return count, nil
}

func (repo *CheckInRepository) GetAllForEvent(
	ctx context.Context,
	eventID string,
) ([]models.CheckIn, error) {
	query := `
		SELECT id, attendee_name, attendee_email, checked_in_at
		FROM liveboard.checkins
		WHERE event_id = $1
		ORDER BY checked_in_at asc
	`

	rows, err := repo.db.Query(ctx, query, eventID)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}
	defer rows.Close()

	checkIns := []models.CheckIn{}
	for rows.Next() {
		//nolint:exhaustruct //other fields are assigned later
		checkIn := models.CheckIn{
			EventID: eventID,
		}

		err = rows.Scan(
			&checkIn.ID,
			&checkIn.AttendeeName,
			&checkIn.AttendeeEmail,
			&checkIn.CheckedInAt,
		)
		if err != nil {
			return nil, postgres.PgxErrorToHTTPError(err)
		}

		checkIns = append(checkIns, checkIn)
	}

	if err = rows.Err(); err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return checkIns, nil
}
