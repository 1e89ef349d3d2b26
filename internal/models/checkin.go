package models

import "time"

type CheckIn struct {
	ID            int64     `json:"id"`
	EventID       string    `json:"eventId"`
	AttendeeName  string    `json:"attendeeName"`
	AttendeeEmail string    `json:"attendeeEmail"`
	CheckedInAt   time.Time `json:"checkedInAt"`
}
