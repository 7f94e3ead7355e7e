package app

import (
	"context"
	"database/sql"
	"net/http"
	"strings"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"vehicleassist/internal/config"
	"vehicleassist/internal/db"
	httpserver "vehicleassist/internal/http"
	"vehicleassist/internal/http/handlers"
	"vehicleassist/internal/nlu"
	libredis "vehicleassist/internal/redis"
	"vehicleassist/internal/repository"
	"vehicleassist/internal/service"
	"vehicleassist/internal/transcript"
	"vehicleassist/internal/ws"
)

// App wires assistant dependencies.
type App struct {
	server      *httpserver.Server
	manager     *ws.Manager
	db          *sql.DB
	redisClient *redis.Client
	logger      *zap.Logger
}

// New constructs the application graph.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	pool, err := db.NewPostgres(cfg.Database.DSN)
	if err != nil {
		return nil, err
	}
	if err := db.EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	var redisClient *redis.Client
	var log *transcript.Store
	if strings.TrimSpace(cfg.Redis.Addr) != "" {
		redisClient, err = libredis.NewClient(cfg.Redis.Addr, cfg.Redis.Password)
		if err != nil {
			pool.Close()
			return nil, err
		}
		log = transcript.NewStore(redisClient, cfg.Redis.HistoryLimit)
	}

	rideRepo := repository.NewRideRepository(pool)
	batteryRepo := repository.NewBatteryRepository(pool)
	motorRepo := repository.NewMotorRepository(pool)
	faultRepo := repository.NewFaultRepository(pool)

	var classifier nlu.Classifier
	if strings.TrimSpace(cfg.NLU.URL) != "" {
		classifier = nlu.NewClient(cfg.NLU.URL, cfg.NLU.Threshold, cfg.NLUTimeout(), logger)
	} else {
		logger.Info("no nlu url configured, using keyword classifier")
		classifier = nlu.NewKeywordClassifier()
	}

	assistant := service.NewAssistantService(classifier, batteryRepo, rideRepo, faultRepo, log, logger)
	ingest := service.NewIngestService(rideRepo, batteryRepo, motorRepo, faultRepo, logger)

	manager := ws.NewManager(cfg.FeedPingInterval())
	processor := ws.NewTelemetryProcessor(ingest, logger)
	feed := ws.NewServer(manager, processor, cfg.FeedWriteTimeout(), logger)

	chatHandler := handlers.NewChatHandler(assistant, logger)
	telemetryHandler := handlers.NewTelemetryHandler(ingest, logger)

	routes := httpserver.Routes{
		Chat:             chatHandler.HandleChat,
		ChatHistory:      chatHandler.HandleHistory,
		TelemetryRide:    telemetryHandler.HandleRide,
		TelemetryBattery: telemetryHandler.HandleBattery,
		TelemetryMotor:   telemetryHandler.HandleMotor,
		TelemetryFault:   telemetryHandler.HandleFault,
		Feed:             feed.HandleFeed,
		Health:           handlers.NewHealthHandler(),
		Static:           http.FileServer(http.Dir(cfg.HTTP.StaticDir)),
	}

	router := httpserver.NewRouter(routes)
	server := httpserver.NewServer(cfg.HTTPAddress(), router, logger)

	return &App{
		server:      server,
		manager:     manager,
		db:          pool,
		redisClient: redisClient,
		logger:      logger,
	}, nil
}

// Run starts the HTTP server and the feed keepalive loop.
func (a *App) Run(ctx context.Context) error {
	go a.manager.Start(ctx)
	return a.server.Run(ctx)
}

// Close releases resources.
func (a *App) Close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn("failed to close db", zap.Error(err))
		}
	}
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warn("failed to close redis", zap.Error(err))
		}
	}
}
