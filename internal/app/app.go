package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/qazleague/cup-service/external/sota"
	"github.com/qazleague/cup-service/internal/config"
	"github.com/qazleague/cup-service/internal/domain/bracket"
	"github.com/qazleague/cup-service/internal/domain/game"
	"github.com/qazleague/cup-service/internal/domain/participant"
	"github.com/qazleague/cup-service/internal/domain/season"
	"github.com/qazleague/cup-service/internal/domain/stage"
	cacherepo "github.com/qazleague/cup-service/internal/infrastructure/repository/cache"
	"github.com/qazleague/cup-service/internal/infrastructure/repository/memory"
	"github.com/qazleague/cup-service/internal/infrastructure/repository/postgres"
	"github.com/qazleague/cup-service/internal/interfaces/httpapi"
	basecache "github.com/qazleague/cup-service/internal/platform/cache"
	idgen "github.com/qazleague/cup-service/internal/platform/id"
	"github.com/qazleague/cup-service/internal/platform/logging"
	"github.com/qazleague/cup-service/internal/platform/resilience"
	"github.com/qazleague/cup-service/internal/usecase"
)

// Application owns the wired service graph and the HTTP server.
type Application struct {
	cfg      config.Config
	logger   *logging.Logger
	db       *sqlx.DB
	hub      *httpapi.LiveHub
	liveSync *usecase.LiveSyncService

	HTTPServer *http.Server
}

type repositories struct {
	seasons      season.Repository
	stages       stage.Repository
	games        game.Repository
	participants participant.Repository
	brackets     bracket.Repository
}

func New(cfg config.Config, logger *logging.Logger) (*Application, error) {
	if logger == nil {
		logger = logging.Default()
	}

	app := &Application{cfg: cfg, logger: logger}

	repos, err := app.buildRepositories()
	if err != nil {
		return nil, err
	}

	tableService := usecase.NewTableService(repos.seasons, repos.games, repos.participants)
	groupService := usecase.NewGroupStandingsService(repos.participants, tableService, logger)
	bracketService := usecase.NewBracketService(
		usecase.NewStoredBracketSource(repos.brackets, repos.games, logger),
		usecase.NewSynthesizedBracketSource(),
	)
	scheduleService := usecase.NewScheduleService(repos.seasons, repos.stages, repos.games, logger)
	overviewService := usecase.NewOverviewService(repos.seasons, repos.stages, repos.games, groupService, bracketService, logger)

	app.hub = httpapi.NewLiveHub(idgen.NewRandomGenerator(), logger)
	app.liveSync = usecase.NewLiveSyncService(repos.games, app.buildLiveFeed(), app.hub, logger)

	handler := httpapi.NewHandler(
		overviewService,
		scheduleService,
		bracketService,
		tableService,
		app.liveSync,
		app.hub,
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	app.HTTPServer = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if app.HTTPServer.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return app, nil
}

func (a *Application) buildRepositories() (repositories, error) {
	var repos repositories

	switch a.cfg.StorageDriver {
	case config.StoragePostgres:
		db, err := openDatabase(a.cfg, a.logger)
		if err != nil {
			return repositories{}, err
		}
		a.db = db
		repos = repositories{
			seasons:      postgres.NewSeasonRepository(db),
			stages:       postgres.NewStageRepository(db),
			games:        postgres.NewGameRepository(db),
			participants: postgres.NewParticipantRepository(db),
			brackets:     postgres.NewBracketRepository(db),
		}
	default:
		seed := memory.Seed()
		repos = repositories{
			seasons:      memory.NewSeasonRepository(seed.Seasons),
			stages:       memory.NewStageRepository(seed.Stages),
			games:        memory.NewGameRepository(seed.Games),
			participants: memory.NewParticipantRepository(seed.Participants),
			brackets:     memory.NewBracketRepository(seed.Brackets),
		}
		a.logger.Info("storage driver is memory, serving seeded demo data")
	}

	if a.cfg.CacheEnabled {
		store := basecache.NewStore(a.cfg.CacheTTL)
		repos.seasons = cacherepo.NewSeasonRepository(repos.seasons, store)
		repos.stages = cacherepo.NewStageRepository(repos.stages, store)
		repos.participants = cacherepo.NewParticipantRepository(repos.participants, store)
		repos.brackets = cacherepo.NewBracketRepository(repos.brackets, store)
	}

	return repos, nil
}

func (a *Application) buildLiveFeed() usecase.LiveFeed {
	if !a.cfg.SotaEnabled {
		return disabledLiveFeed{}
	}

	return sota.NewClient(sota.ClientConfig{
		BaseURL:    a.cfg.SotaBaseURL,
		Token:      a.cfg.SotaToken,
		Timeout:    a.cfg.SotaTimeout,
		MaxRetries: a.cfg.SotaMaxRetries,
		Logger:     a.logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          a.cfg.SotaCircuitEnabled,
			FailureThreshold: a.cfg.SotaCircuitFailureCount,
			OpenTimeout:      a.cfg.SotaCircuitOpenTimeout,
			HalfOpenMaxReq:   a.cfg.SotaCircuitHalfOpenMaxReq,
		},
	})
}

// RunLiveSyncLoop polls the live feed for the configured seasons until
// the context is cancelled. It returns immediately when the feed is
// disabled or no seasons are configured.
func (a *Application) RunLiveSyncLoop(ctx context.Context) {
	if !a.cfg.SotaEnabled || len(a.cfg.LiveSyncSeasonIDs) == 0 {
		a.logger.Info("live sync loop disabled",
			"sota_enabled", a.cfg.SotaEnabled,
			"season_count", len(a.cfg.LiveSyncSeasonIDs),
		)
		return
	}

	ticker := time.NewTicker(a.cfg.LiveSyncInterval)
	defer ticker.Stop()

	a.logger.Info("live sync loop started",
		"interval", a.cfg.LiveSyncInterval.String(),
		"seasons", a.cfg.LiveSyncSeasonIDs,
	)

	for {
		select {
		case <-ctx.Done():
			a.logger.Info("live sync loop stopped")
			return
		case <-ticker.C:
			a.syncConfiguredSeasons(ctx)
		}
	}
}

func (a *Application) syncConfiguredSeasons(ctx context.Context) {
	for _, seasonID := range a.cfg.LiveSyncSeasonIDs {
		updated, err := a.liveSync.SyncSeason(ctx, seasonID)
		if err != nil {
			a.logger.WarnContext(ctx, "live sync failed", "season_id", seasonID, "error", err)
			continue
		}
		if updated > 0 {
			a.logger.InfoContext(ctx, "live sync applied", "season_id", seasonID, "updated_games", updated)
		}
	}
}

// Shutdown stops the HTTP server, disconnects live subscribers and
// closes the database.
func (a *Application) Shutdown(ctx context.Context) error {
	var errs []error

	if err := a.HTTPServer.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("shutdown http server: %w", err))
	}
	a.hub.Close()
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close database: %w", err))
		}
	}

	return errors.Join(errs...)
}

type disabledLiveFeed struct{}

func (disabledLiveFeed) FetchLiveGames(context.Context, int64) ([]usecase.ExternalLiveGame, error) {
	return nil, fmt.Errorf("live feed is disabled")
}
