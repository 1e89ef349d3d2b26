package models

import (
	"time"

	"github.com/sgreben/piecewiselinear"
)

// Event mirrors the upstream record shape: the nominal/end date and the first
// day are separate calendar dates, and start/end times are each stored as
// three fields (12-hour clock, zero-padded minute, AM/PM marker). Upstream
// data is unreliable, so every field stays a plain string and liveness
// degrades to false instead of erroring on bad input.
type Event struct {
	ID              string  `json:"id"`
	UserID          string  `json:"userId"`
	Name            string  `json:"name"`
	Venue           string  `json:"venue"`
	WebsiteURL      *string `json:"websiteUrl"`
	PreviewTitle    *string `json:"previewTitle"`
	PreviewDesc     *string `json:"previewDescription"`
	PreviewImageURL *string `json:"previewImageUrl"`
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

// IsLive reports whether now falls within [start, end], both bounds
// inclusive. The start instant comes from EventStartDate, the end instant
// from EventDate, which is what makes multi-day events work. An overnight
// event whose two dates coincide gets a wrong window; see DESIGN.md.
func (event *Event) IsLive(now time.Time) bool {
	if event == nil {
		return false
	}

	start, ok := clockInstant(
		event.EventStartDate,
		event.StartTime, event.StartMinuteTime, event.StartTimeType,
		now.Location(),
	)
	if !ok {
		return false
	}

	end, ok := clockInstant(
		event.EventDate,
		event.EndTime, event.EndMinuteTime, event.EndTimeType,
		now.Location(),
	)
	if !ok {
		return false
	}

	return !now.Before(start) && !now.After(end)
}

// IsUpcoming reports whether the start instant is strictly after now.
// The start boundary here uses EventDate, not EventStartDate as IsLive does.
// Upstream behaves this way and unifying the two would shift which multi-day
// events count as upcoming near their first day, so both are kept as-is.
func (event *Event) IsUpcoming(now time.Time) bool {
	if event == nil {
		return false
	}

	start, ok := clockInstant(
		event.EventDate,
		event.StartTime, event.StartMinuteTime, event.StartTimeType,
		now.Location(),
	)
	if !ok {
		return false
	}

	return start.After(now)
}

// ExpectedCheckIns interpolates how many guests should have checked in by
// now, assuming a linear arrival curve from zero at the start instant to
// ExpectedGuests at the end instant.
func (event *Event) ExpectedCheckIns(now time.Time) float64 {
	if event == nil {
		return 0
	}

	start, ok := clockInstant(
		event.EventStartDate,
		event.StartTime, event.StartMinuteTime, event.StartTimeType,
		now.Location(),
	)
	if !ok {
		return 0
	}

	end, ok := clockInstant(
		event.EventDate,
		event.EndTime, event.EndMinuteTime, event.EndTimeType,
		now.Location(),
	)
	if !ok || !end.After(start) {
		return 0
	}

	if now.Before(start) {
		return 0
	}
	if now.After(end) {
		return float64(event.ExpectedGuests)
	}

	f := piecewiselinear.Function{
		X: []float64{float64(start.Unix()), float64(end.Unix())},
		Y: []float64{0, float64(event.ExpectedGuests)},
	}

	return f.At(float64(now.Unix()))
}
