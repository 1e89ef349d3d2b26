package repositories

import (
	"context"

	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
	"liveboard.app/internal/models"
)

type EventRepository struct {
	db postgres.DB
}

func (repo *EventRepository) GetAll(
	ctx context.Context,
	userID string,
) ([]models.Event, error) {
	query := `
		SELECT id, name, venue, website_url,
		preview_title, preview_description, preview_image_url,
		expected_guests, event_date, event_start_date,
		start_time, start_minute_time, start_time_type,
		end_time, end_minute_time, end_time_type
		FROM liveboard.events
		WHERE user_id = $1
		ORDER BY event_start_date asc, start_time_type asc, start_time asc
	`

	rows, err := repo.db.Query(ctx, query, userID)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		//nolint:exhaustruct //other fields are assigned later
		event := models.Event{
			UserID: userID,
		}

		err = rows.Scan(
			&event.ID,
			&event.Name,
			&event.Venue,
			&event.WebsiteURL,
			&event.PreviewTitle,
			&event.PreviewDesc,
			&event.PreviewImageURL,
			&event.ExpectedGuests,
			&event.EventDate,
			&event.EventStartDate,
			&event.StartTime,
			&event.StartMinuteTime,
			&event.StartTimeType,
			&event.EndTime,
			&event.EndMinuteTime,
			&event.EndTimeType,
		)
		if err != nil {
			return nil, postgres.PgxErrorToHTTPError(err)
		}

		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return events, nil
}

func (repo *EventRepository) GetByID(
	ctx context.Context,
	id string,
	userID string,
) (*models.Event, error) {
	query := `
		SELECT name, venue, website_url,
		preview_title, preview_description, preview_image_url,
		expected_guests, event_date, event_start_date,
		start_time, start_minute_time, start_time_type,
		end_time, end_minute_time, end_time_type
		FROM liveboard.events
		WHERE id = $1 AND user_id = $2
	`

	//nolint:exhaustruct //other fields are optional
	event := models.Event{
		ID:     id,
		UserID: userID,
	}
	err := repo.db.QueryRow(
		ctx,
		query,
		id,
		userID).Scan(
		&event.Name,
		&event.Venue,
		&event.WebsiteURL,
		&event.PreviewTitle,
		&event.PreviewDesc,
		&event.PreviewImageURL,
		&event.ExpectedGuests,
		&event.EventDate,
		&event.EventStartDate,
		&event.StartTime,
		&event.StartMinuteTime,
		&event.StartTimeType,
		&event.EndTime,
		&event.EndMinuteTime,
		&event.EndTimeType,
	)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return &event, nil
}

// GetAllIDs returns the ids of every stored event, across organisers. Used
// once at startup to register a room topic per event.
func (repo *EventRepository) GetAllIDs(ctx context.Context) ([]string, error) {
	query := `
		SELECT id
		FROM liveboard.events
	`

	rows, err := repo.db.Query(ctx, query)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string

		err = rows.Scan(&id)
		if err != nil {
			return nil, postgres.PgxErrorToHTTPError(err)
		}

		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return ids, nil
}

func (repo *EventRepository) Create(
	ctx context.Context,
	event *models.Event,
) error {
	query := `
		INSERT INTO liveboard.events (id, user_id, name, venue, website_url,
		preview_title, preview_description, preview_image_url, expected_guests,
		event_date, event_start_date,
		start_time, start_minute_time, start_time_type,
		end_time, end_minute_time, end_time_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
		$14, $15, $16, $17)
	`

	_, err := repo.db.Exec(
		ctx,
		query,
		event.ID,
		event.UserID,
		event.Name,
		event.Venue,
		event.WebsiteURL,
		event.PreviewTitle,
		event.PreviewDesc,
		event.PreviewImageURL,
		event.ExpectedGuests,
		event.EventDate,
		event.EventStartDate,
		event.StartTime,
		event.StartMinuteTime,
		event.StartTimeType,
		event.EndTime,
		event.EndMinuteTime,
		event.EndTimeType,
	)
	if err != nil {
		return postgres.PgxErrorToHTTPError(err)
	}

	return nil
}

func (repo *EventRepository) Delete(
	ctx context.Context,
	id string,
	userID string,
) error {
	query := `
		DELETE FROM liveboard.events
		WHERE id = $1 AND user_id = $2
	`

	_, err := repo.db.Exec(ctx, query, id, userID)
	if err != nil {
		return postgres.PgxErrorToHTTPError(err)
	}

	return nil
}
