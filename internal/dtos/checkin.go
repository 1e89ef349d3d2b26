package dtos

import (
	"github.com/xdoubleu/essentia/v2/pkg/validate"
)

type CheckInDto struct {
	AttendeeName  string `json:"attendeeName"`
	AttendeeEmail string `json:"attendeeEmail"`
}

func (dto *CheckInDto) Validate() (bool, map[string]string) {
	v := validate.New()

	validate.Check(v, "attendeeName", dto.AttendeeName, validate.IsNotEmpty)

	return v.Valid(), v.Errors()
}
