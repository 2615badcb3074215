package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"commute-assistant/config"
	_ "commute-assistant/docs" // Swagger docs
	"commute-assistant/internal/dialogue/conversation"
	dialogueHTTP "commute-assistant/internal/dialogue/delivery/http"
	transitRepo "commute-assistant/internal/dialogue/repository/transit"
	"commute-assistant/internal/dialogue/usecase"
	"commute-assistant/internal/httpserver"
	"commute-assistant/internal/middleware"
	"commute-assistant/pkg/classifier"
	"commute-assistant/pkg/gemini"
	"commute-assistant/pkg/log"
)

// @title       Commute Assistant API
// @description Slot-filling conversational assistant for bus arrivals, route planning and commute scheduling.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Commute Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Transit backend: %s", cfg.Backend.BaseURL)

	// 3. External clients
	geminiClient := gemini.NewClient(cfg.Gemini.APIKey)
	geminiClient.SetModel(cfg.Gemini.Model)

	intentClassifier := classifier.NewClient(cfg.Classifier.URL, cfg.Classifier.Timeout)

	transitClient := transitRepo.NewClient(cfg.Backend.BaseURL, cfg.Backend.LookupTimeout, cfg.Backend.RoutingTimeout)

	// 4. Dialogue domain
	store := conversation.NewStore(cfg.Dialogue.MaxSessions, cfg.Dialogue.SessionTTL)

	dialogueUC := usecase.New(logger, intentClassifier, geminiClient, transitClient, store, usecase.Config{
		HistoryLength:       cfg.Dialogue.HistoryLength,
		ConfidenceThreshold: cfg.Dialogue.ConfidenceThreshold,
		MinUtteranceWords:   cfg.Dialogue.MinUtteranceWords,
	})

	dialogueHandler := dialogueHTTP.New(logger, dialogueUC)

	mw := middleware.New(logger, cfg.RateLimit)

	// 5. HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      mw,
		DialogueHandler: dialogueHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
