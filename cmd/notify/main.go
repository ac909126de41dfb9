package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/nyctaxi/dispatch/internal/pkg/config"
	"github.com/nyctaxi/dispatch/internal/pkg/health"
	"github.com/nyctaxi/dispatch/internal/pkg/logger"
	natspkg "github.com/nyctaxi/dispatch/internal/pkg/nats"
	nrpkg "github.com/nyctaxi/dispatch/internal/pkg/newrelic"
	"github.com/nyctaxi/dispatch/internal/pkg/server"
	notifyHandler "github.com/nyctaxi/dispatch/services/notify/handler"
	"github.com/nyctaxi/dispatch/services/notify/sms"
)

func main() {
	appName := "notify-service"
	configPath := config.GetEnv("CONFIG_PATH", "config/notify.env")
	configs := config.InitConfig(configPath)

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

	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	provider := sms.NewHTTPProvider(configs.SMS)
	consumer := notifyHandler.NewSMSConsumer(natsClient, provider)
	if err := consumer.Start(); err != nil {
		logger.Fatal("Failed to start SMS consumer", logger.Err(err))
	}
	defer consumer.Stop()

	// Health-only HTTP surface for the orchestrator probes
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	health.RegisterHealthEndpoints(e, appName,
		health.Check{Name: "nats", Probe: func(context.Context) error {
			if !natsClient.GetConn().IsConnected() {
				return errors.New("nats connection down")
			}
			return nil
		}},
	)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		logger.Fatal("Server exited with error", logger.Err(err))
	}
}
