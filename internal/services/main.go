package services

import (
	"log/slog"

	"github.com/supabase-community/gotrue-go"
	configtools "github.com/xdoubleu/essentia/v2/pkg/config"
	"liveboard.app/internal/config"
	"liveboard.app/internal/repositories"
	"liveboard.app/pkg/linkpreview"
)

type Services struct {
	Auth     *AuthService
	Events   *EventService
	CheckIns *CheckInService
	Rooms    *RoomService
}

func New(
	logger *slog.Logger,
	cfg config.Config,
	repositories *repositories.Repositories,
	previews linkpreview.Client,
	supabaseClient gotrue.Client,
) *Services {
	rooms := NewRoomService(logger)
	events := &EventService{
		logger:   logger,
		events:   repositories.Events,
		checkIns: repositories.CheckIns,
		previews: previews,
		rooms:    rooms,
	}
	checkIns := &CheckInService{
		logger:   logger,
		checkIns: repositories.CheckIns,
		events:   repositories.Events,
		rooms:    rooms,
	}
	auth := &AuthService{
		supabaseUserID:   cfg.SupabaseUserID,
		client:           supabaseClient,
		useSecureCookies: cfg.Env == configtools.ProdEnv,
		accessExpiry:     cfg.AccessExpiry,
		refreshExpiry:    cfg.RefreshExpiry,
	}

	return &Services{
		Auth:     auth,
		Events:   events,
		CheckIns: checkIns,
		Rooms:    rooms,
	}
}
