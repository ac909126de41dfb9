package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/nyctaxi/dispatch/internal/pkg/clock"
	"github.com/nyctaxi/dispatch/internal/pkg/config"
	"github.com/nyctaxi/dispatch/internal/pkg/database"
	"github.com/nyctaxi/dispatch/internal/pkg/health"
	"github.com/nyctaxi/dispatch/internal/pkg/logger"
	"github.com/nyctaxi/dispatch/internal/pkg/middleware"
	natspkg "github.com/nyctaxi/dispatch/internal/pkg/nats"
	nrpkg "github.com/nyctaxi/dispatch/internal/pkg/newrelic"
	"github.com/nyctaxi/dispatch/internal/pkg/server"

	dispatchGateway "github.com/nyctaxi/dispatch/services/dispatch/gateway"
	dispatchHandler "github.com/nyctaxi/dispatch/services/dispatch/handler"
	dispatchRepository "github.com/nyctaxi/dispatch/services/dispatch/repository"
	dispatchUsecase "github.com/nyctaxi/dispatch/services/dispatch/usecase"
	driversGateway "github.com/nyctaxi/dispatch/services/drivers/gateway"
	driversHandler "github.com/nyctaxi/dispatch/services/drivers/handler"
	driversRepository "github.com/nyctaxi/dispatch/services/drivers/repository"
	driversUsecase "github.com/nyctaxi/dispatch/services/drivers/usecase"
	matchHandler "github.com/nyctaxi/dispatch/services/match/handler"
	matchRepository "github.com/nyctaxi/dispatch/services/match/repository"
	matchUsecase "github.com/nyctaxi/dispatch/services/match/usecase"
	waittimeHandler "github.com/nyctaxi/dispatch/services/waittime/handler"
	waittimeRepository "github.com/nyctaxi/dispatch/services/waittime/repository"
	waittimeUsecase "github.com/nyctaxi/dispatch/services/waittime/usecase"
)

func main() {
	appName := "dispatch-service"
	configPath := config.GetEnv("CONFIG_PATH", "config/dispatch.env")
	configs := config.InitConfig(configPath)

	// New Relic first so the logger can correlate traces
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		logger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	clk := clock.Real{}

	// Repositories
	reservationRepo := dispatchRepository.NewReservationRepository(configs, postgresClient.GetDB(), clk)
	matchRepo := matchRepository.NewMatchRepo(postgresClient.GetDB(), redisClient)
	driversRepo := driversRepository.NewDriversRepo(postgresClient.GetDB())
	waitTimeRepo := waittimeRepository.NewWaitTimeRepo(postgresClient.GetDB())

	// Gateways
	notifyGW := dispatchGateway.NewNotifyGW(natsClient)
	dispatchPoolGW := dispatchGateway.NewDriverPoolGW(redisClient)
	driversPoolGW := driversGateway.NewDriverPoolGW(redisClient)

	// Usecases
	dispatchUC := dispatchUsecase.NewDispatchUC(configs, reservationRepo, notifyGW, dispatchPoolGW)
	matchUC := matchUsecase.NewMatchUC(configs, matchRepo)
	driversUC := driversUsecase.NewDriversUC(configs, driversRepo, driversPoolGW, clk)
	waitTimeUC := waittimeUsecase.NewWaitTimeUC(configs, waitTimeRepo, clk)

	// Router
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(nrpkg.Middleware(nrApp))
	e.Use(middleware.RequestContextMiddleware(appName))

	health.RegisterHealthEndpoints(e, appName,
		health.Check{Name: "postgres", Probe: postgresClient.GetDB().PingContext},
		health.Check{Name: "redis", Probe: redisClient.Ping},
		health.Check{Name: "nats", Probe: func(context.Context) error {
			if !natsClient.GetConn().IsConnected() {
				return errors.New("nats connection down")
			}
			return nil
		}},
	)
	dispatchHandler.RegisterRoutes(e, dispatchUC)
	matchHandler.RegisterRoutes(e, matchUC)
	driversHandler.RegisterRoutes(e, driversUC)
	waittimeHandler.RegisterRoutes(e, waitTimeUC)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		logger.Fatal("Server exited with error", logger.Err(err))
	}
}
