package repositories

import (
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
)

type Repositories struct {
	Events   *EventRepository
	CheckIns *CheckInRepository
}

func New(db postgres.DB) *Repositories {
	events := &EventRepository{db: db}
	checkIns := &CheckInRepository{db: db}

	return &Repositories{
		Events:   events,
		CheckIns: checkIns,
	}
}
