package dtos

import (
	"github.com/xdoubleu/essentia/v2/pkg/validate"
	"liveboard.app/internal/models"
)

type CreateEventDto struct {
	Name            string  `json:"name"`
	Venue           string  `json:"venue"`
	WebsiteURL      *string `json:"websiteUrl"`
	ExpectedGuests  int64   `json:"expectedGuests"`
	EventDate       string  `json:"eventDate"`
	EventStartDate  string  `json:"eventStartDate"`
	StartTime       string  `json:"startTime"`
	StartMinuteTime string  `json:"startMinuteTime"`
	StartTimeType   string  `json:"startTimeType"`
	EndTime         string  `json:"endTime"`
	EndMinuteTime   string  `json:"endMinuteTime"`
	EndTimeType     string  `json:"endTimeType"`
}

func (dto *CreateEventDto) Validate() (bool, map[string]string) {
	v := validate.New()

	validate.Check(v, "name", dto.Name, validate.IsNotEmpty)
	validate.Check(v, "eventDate", dto.EventDate, validate.IsNotEmpty)
	validate.Check(v, "eventStartDate", dto.EventStartDate, validate.IsNotEmpty)
	validate.Check(v, "startTime", *dto, isValidStartClock)
	validate.Check(v, "endTime", *dto, isValidEndClock)

	return v.Valid(), v.Errors()
}

func isValidStartClock(dto CreateEventDto) (bool, string) {
	_, ok := models.ParseClock(
		dto.StartTime, dto.StartMinuteTime, dto.StartTimeType,
	)
	return ok, "must be a valid H:MM AM/PM time"
}

func isValidEndClock(dto CreateEventDto) (bool, string) {
	_, ok := models.ParseClock(
		dto.EndTime, dto.EndMinuteTime, dto.EndTimeType,
	)
	return ok, "must be a valid H:MM AM/PM time"
}

type CheckInPaceDto struct {
	EventUUID        string  `json:"eventUuid"`
	CheckInCount     int     `json:"checkInCount"`
	ExpectedCheckIns float64 `json:"expectedCheckIns"`
	IsLive           bool    `json:"isLive"`
}
