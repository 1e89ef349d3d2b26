package dtos

import (
	"github.com/xdoubleu/essentia/v2/pkg/validate"
)

// JoinEventDto is the message a dashboard sends to join the room of one
// event. The room is scoped by the event uuid; joins without an owner id are
// rejected.
type JoinEventDto struct {
	UserID    string `json:"userId"`
	EventUUID string `json:"eventUuid"`
}

func (dto JoinEventDto) Validate() (bool, map[string]string) {
	v := validate.New()

	validate.Check(v, "userId", dto.UserID, validate.IsNotEmpty)
	validate.Check(v, "eventUuid", dto.EventUUID, validate.IsNotEmpty)

	return v.Valid(), v.Errors()
}

// CheckInCountDto is pushed to every member of an event room whenever the
// check-in counter changes, and returned on subscribe so late joiners start
// from the current value.
type CheckInCountDto struct {
	EventUUID           string `json:"eventUuid"`
	UpdatedCheckInCount int    `json:"updatedCheckInCount"`
}
