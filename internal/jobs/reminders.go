package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"text/template"
	"time"

	"liveboard.app/internal/auth"
	"liveboard.app/internal/services"
)

//nolint:lll //template line
var reminderTemplate = template.Must(template.New("reminder").Parse(
	"Reminder: {{ .Name }} starts on {{ .EventStartDate }} at {{ .StartTime }}:{{ .StartMinuteTime }} {{ .StartTimeType }} ({{ .Venue }}).",
))

// ReminderJob renders a reminder message for every upcoming event of every
// organiser. Delivery is just logged here; the dispatch channel sits outside
// this service.
type ReminderJob struct {
	authService  auth.Service
	eventService *services.EventService
}

func NewReminderJob(
	authService auth.Service,
	eventService *services.EventService,
) ReminderJob {
	return ReminderJob{
		authService:  authService,
		eventService: eventService,
	}
}

func (j ReminderJob) ID() string {
	return "reminders"
}

func (j ReminderJob) RunEvery() time.Duration {
	//nolint:mnd //no magic number
	return 24 * time.Hour
}

func (j ReminderJob) Run(ctx context.Context, logger *slog.Logger) error {
	users, err := j.authService.GetAllUsers()
	if err != nil {
		return err
	}

	now := time.Now()
	for _, user := range users {
		events, err := j.eventService.GetAll(ctx, user.ID)
		if err != nil {
			return err
		}

		for i := range events {
			event := &events[i]
			if !event.IsUpcoming(now) {
				continue
			}

			var message strings.Builder
			if err = reminderTemplate.Execute(&message, event); err != nil {
				return err
			}

			logger.Info(
				fmt.Sprintf("reminder for event %s", event.ID),
				slog.String("message", message.String()),
			)
		}
	}

	return nil
}
