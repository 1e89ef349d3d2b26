package liveboard

import (
	"context"
	"embed"
	"log/slog"
	"time"
	_ "time/tzdata"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/supabase-community/gotrue-go"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
	"github.com/xdoubleu/essentia/v2/pkg/threading"
	"liveboard.app/internal/config"
	"liveboard.app/internal/jobs"
	"liveboard.app/internal/repositories"
	"liveboard.app/internal/services"
	"liveboard.app/pkg/linkpreview"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

type Liveboard struct {
	logger       *slog.Logger
	ctx          context.Context
	ctxCancel    context.CancelFunc
	db           postgres.DB
	Config       config.Config
	Services     *services.Services
	Repositories *repositories.Repositories
	jobQueue     *threading.JobQueue
}

func New(
	logger *slog.Logger,
	cfg config.Config,
	db postgres.DB,
	supabaseClient gotrue.Client,
) *Liveboard {
	return NewInner(logger, cfg, db, supabaseClient, linkpreview.New(logger))
}

func NewInner(
	logger *slog.Logger,
	cfg config.Config,
	db postgres.DB,
	supabaseClient gotrue.Client,
	previews linkpreview.Client,
) *Liveboard {
	//nolint:mnd //no magic number
	jobQueue := threading.NewJobQueue(logger, 1, 100)

	//nolint:exhaustruct //other fields are optional
	app := &Liveboard{
		logger:   logger,
		Config:   cfg,
		jobQueue: jobQueue,
	}

	app.setContext()
	app.setDB(db, supabaseClient, previews)
	app.setJobs()

	return app
}

func (app *Liveboard) setDB(
	db postgres.DB,
	supabaseClient gotrue.Client,
	previews linkpreview.Client,
) {
	// make sure previous app is cancelled internally
	app.ctxCancel()
	app.jobQueue.Clear()

	app.setContext()

	spandb := postgres.NewSpanDB(db)
	app.db = spandb

	app.Repositories = repositories.New(app.db)
	app.Services = services.New(
		app.logger,
		app.Config,
		app.Repositories,
		previews,
		supabaseClient,
	)
}

func (app *Liveboard) setJobs() {
	err := app.jobQueue.AddJob(
		jobs.NewReminderJob(app.Services.Auth, app.Services.Events),
		app.jobState,
	)
	if err != nil {
		panic(err)
	}
}

func (app *Liveboard) jobState(id string, isRunning bool, _ *time.Time) {
	app.logger.Debug(
		"job state changed",
		slog.String("id", id),
		slog.Bool("isRunning", isRunning),
	)
}

func (app *Liveboard) setContext() {
	ctx, cancel := context.WithCancel(context.Background())
	app.ctx = ctx
	app.ctxCancel = cancel
}

// RegisterRooms creates the room of every stored event. Must run after
// migrations, before serving.
func (app *Liveboard) RegisterRooms() error {
	return app.Services.Events.RegisterAllRooms(app.ctx)
}

func (app *Liveboard) ApplyMigrations(db *pgxpool.Pool) error {
	migrationsDB := stdlib.OpenDBFromPool(db)

	goose.SetLogger(slog.NewLogLogger(app.logger.Handler(), slog.LevelInfo))

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(string(goose.DialectPostgres)); err != nil {
		return err
	}

	if err := goose.Up(migrationsDB, "migrations"); err != nil {
		return err
	}

	return nil
}

func (app *Liveboard) GetName() string {
	return "liveboard"
}
