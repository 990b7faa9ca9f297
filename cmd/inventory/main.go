package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	tele "gopkg.in/telebot.v4"

	"github.com/nvent/inventory-backend/internal/pkg/config"
	"github.com/nvent/inventory-backend/internal/pkg/database"
	"github.com/nvent/inventory-backend/internal/pkg/health"
	httppkg "github.com/nvent/inventory-backend/internal/pkg/http"
	"github.com/nvent/inventory-backend/internal/pkg/logger"
	"github.com/nvent/inventory-backend/internal/pkg/middleware"
	nsqpkg "github.com/nvent/inventory-backend/internal/pkg/nsq"
	"github.com/nvent/inventory-backend/internal/pkg/server"
	"github.com/nvent/inventory-backend/services/auth/gateway"
	"github.com/nvent/inventory-backend/services/auth/handler"
	telegramHandler "github.com/nvent/inventory-backend/services/auth/handler/telegram"
	"github.com/nvent/inventory-backend/services/auth/repository"
	"github.com/nvent/inventory-backend/services/auth/usecase"
)

func main() {
	appName := "inventory-auth-service"
	configs := config.InitConfig("config/inventory.env")

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NSQ producer for audit events; optional, the service runs
	// without auditing when no broker is configured
	var producer *nsqpkg.Producer
	if configs.NSQ.Address != "" {
		producer, err = nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
		}
		defer producer.Stop()
	} else {
		logger.Warn("NSQ address not configured, audit events disabled")
	}

	// Initialize Telegram bot; optional, without it the telegram OTP channel
	// and the linking handshake are unavailable
	var bot *tele.Bot
	if configs.Telegram.BotToken != "" {
		bot, err = telegramHandler.NewBot(configs.Telegram)
		if err != nil {
			zapLogger.Fatal("Failed to connect to Telegram", logger.Err(err))
		}
	} else {
		logger.Warn("Telegram bot token not configured, linking disabled")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepo(postgresClient.GetDB())
	stateRepo := repository.NewStateRepo(configs, redisClient)

	// Initialize gateway
	emailClient := httppkg.NewClient(configs.Email.APIURL, configs.Email.APIKey,
		time.Duration(configs.Email.Timeout)*time.Second)
	authGW := gateway.NewAuthGW(emailClient, bot, producer, configs)

	// Initialize usecase
	authUC := usecase.NewAuthUC(userRepo, stateRepo, authGW, configs)

	// Start the bot conversation handlers
	if bot != nil {
		botHandler := telegramHandler.NewBotHandler(bot, authUC)
		botHandler.Start()
		defer botHandler.Stop()
	}

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.AuthGate(configs.JWT))

	health.RegisterHealthEndpoints(e, appName,
		func(ctx context.Context) error { return postgresClient.GetDB().PingContext(ctx) },
		func(ctx context.Context) error { return redisClient.Client.Ping(ctx).Err() },
	)

	handler.NewHandler(authUC).RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped", logger.Err(err))
	}
}
