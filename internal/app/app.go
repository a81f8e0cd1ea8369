package app

import (
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/futliga/liga-api/internal/config"
	"github.com/futliga/liga-api/internal/domain/album"
	"github.com/futliga/liga-api/internal/domain/aviso"
	"github.com/futliga/liga-api/internal/domain/contact"
	"github.com/futliga/liga-api/internal/domain/match"
	"github.com/futliga/liga-api/internal/domain/player"
	"github.com/futliga/liga-api/internal/domain/suspension"
	"github.com/futliga/liga-api/internal/domain/team"
	"github.com/futliga/liga-api/internal/infrastructure/account/authd"
	"github.com/futliga/liga-api/internal/infrastructure/repository/cache"
	"github.com/futliga/liga-api/internal/infrastructure/repository/memory"
	"github.com/futliga/liga-api/internal/infrastructure/repository/postgres"
	"github.com/futliga/liga-api/internal/infrastructure/storage/blobd"
	"github.com/futliga/liga-api/internal/interfaces/httpapi"
	basecache "github.com/futliga/liga-api/internal/platform/cache"
	idgen "github.com/futliga/liga-api/internal/platform/id"
	"github.com/futliga/liga-api/internal/platform/logging"
	"github.com/futliga/liga-api/internal/platform/resilience"
	"github.com/futliga/liga-api/internal/platform/watch"
	"github.com/futliga/liga-api/internal/usecase"
)

const photoCleanerWorkers = 4

type repositories struct {
	teams       team.Repository
	matches     match.Repository
	players     player.Repository
	suspensions suspension.Repository
	avisos      aviso.Repository
	contacts    contact.Repository
	albums      album.Repository
}

// NewHTTPServer wires repositories, services and the router into a ready
// server. The returned cleanup releases the photo cleaner and, when a
// database is configured, the connection pool.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func(), error) {
	repos, closeDB, err := buildRepositories(cfg)
	if err != nil {
		return nil, nil, err
	}

	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		repos.teams = cache.NewTeamRepository(repos.teams, store)
		repos.matches = cache.NewMatchRepository(repos.matches, store)
	}

	hub := watch.NewHub()
	ids := idgen.NewUUIDGenerator()

	blobClient := blobd.NewClient(
		&http.Client{Timeout: cfg.BlobdTimeout},
		cfg.BlobdBaseURL,
		cfg.BlobdPublicURL,
		cfg.BlobdAccessKey,
		logger,
	)
	cleaner, err := usecase.NewPhotoCleaner(blobClient, photoCleanerWorkers, logger)
	if err != nil {
		closeDB()
		return nil, nil, fmt.Errorf("build photo cleaner: %w", err)
	}

	teamSvc := usecase.NewTeamService(repos.teams, ids, hub)
	matchSvc := usecase.NewMatchService(repos.matches, repos.teams, repos.players, repos.suspensions, ids, hub, cfg.ForfeitGoals)
	playerSvc := usecase.NewPlayerService(repos.players, repos.teams, blobClient, cleaner, ids, hub)
	standingsSvc := usecase.NewStandingsService(repos.teams, repos.matches)
	scorerSvc := usecase.NewScorerService(repos.matches, repos.players)
	suspensionSvc := usecase.NewSuspensionService(repos.suspensions, hub)
	avisoSvc := usecase.NewAvisoService(repos.avisos, ids, hub)
	contactSvc := usecase.NewContactService(repos.contacts, ids)
	albumSvc := usecase.NewAlbumService(repos.albums, blobClient, cleaner, ids, hub)

	authClient := authd.NewClient(
		&http.Client{Timeout: cfg.AuthdTimeout},
		cfg.AuthdBaseURL,
		cfg.AuthdIntrospectPath,
		cfg.AuthdAdminKey,
		resilience.CircuitBreakerConfig{
			Enabled:          cfg.AuthdCircuitEnabled,
			FailureThreshold: cfg.AuthdCircuitFailureCount,
			OpenTimeout:      cfg.AuthdCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.AuthdCircuitHalfOpenMaxReq,
		},
		logger,
	)

	handler := httpapi.NewHandler(
		teamSvc,
		matchSvc,
		playerSvc,
		standingsSvc,
		scorerSvc,
		suspensionSvc,
		avisoSvc,
		contactSvc,
		albumSvc,
		hub,
		logger,
	)
	router := httpapi.NewRouter(handler, authClient, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		closeDB()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	cleanup := func() {
		cleaner.Close()
		closeDB()
	}

	return server, cleanup, nil
}

// buildRepositories picks the storage backend: postgres when DB_URL is set,
// seeded in-memory repositories otherwise.
func buildRepositories(cfg config.Config) (repositories, func(), error) {
	if cfg.DBURL == "" {
		suspensions := memory.NewSuspensionRepository(nil)
		return repositories{
			teams:       memory.NewTeamRepository(memory.SeedTeams()),
			matches:     memory.NewMatchRepository(memory.SeedMatches(), suspensions),
			players:     memory.NewPlayerRepository(memory.SeedPlayers()),
			suspensions: suspensions,
			avisos:      memory.NewAvisoRepository(memory.SeedAvisos()),
			contacts:    memory.NewContactRepository(nil),
			albums:      memory.NewAlbumRepository(nil),
		}, func() {}, nil
	}

	db, err := connectDB(cfg)
	if err != nil {
		return repositories{}, nil, err
	}

	closeDB := func() { _ = db.Close() }
	return repositories{
		teams:       postgres.NewTeamRepository(db),
		matches:     postgres.NewMatchRepository(db),
		players:     postgres.NewPlayerRepository(db),
		suspensions: postgres.NewSuspensionRepository(db),
		avisos:      postgres.NewAvisoRepository(db),
		contacts:    postgres.NewContactRepository(db),
		albums:      postgres.NewAlbumRepository(db),
	}, closeDB, nil
}

func connectDB(cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Connect("postgres", dsn,
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	return db, nil
}
