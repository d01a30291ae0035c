package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/herupa/herupa-go-api/internal/config"
	"github.com/herupa/herupa-go-api/internal/database"
	"github.com/herupa/herupa-go-api/internal/extract"
	"github.com/herupa/herupa-go-api/internal/handler"
	"github.com/herupa/herupa-go-api/internal/middleware"
	"github.com/herupa/herupa-go-api/internal/models"
	"github.com/herupa/herupa-go-api/internal/repository"
	"github.com/herupa/herupa-go-api/internal/router"
	"github.com/herupa/herupa-go-api/internal/service"
	"github.com/herupa/herupa-go-api/pkg/ai"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectSQLite(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	if err := db.AutoMigrate(&models.Credential{}); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	credentialRepo := repository.NewCredentialRepository(db)
	engine := extract.NewEngine(logger)
	gateway := ai.NewGroqClient(ai.GroqConfig{
		BaseURL:     cfg.AIBaseURL,
		Model:       cfg.AIModel,
		MaxTokens:   cfg.AIMaxTokens,
		Temperature: cfg.AITemperature,
		Logger:      logger,
	})

	sessionService := service.NewSessionService(engine, gateway, credentialRepo, cfg.AttemptThreshold, logger)
	credentialService := service.NewCredentialService(credentialRepo, gateway, validate, logger)

	sessionHandler := handler.NewSessionHandler(sessionService, validate, logger)
	credentialHandler := handler.NewCredentialHandler(credentialService, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
		BodyLimit:    16 * 1024 * 1024, // page snapshots carry full document HTML
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		SessionHandler:    sessionHandler,
		CredentialHandler: credentialHandler,
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
