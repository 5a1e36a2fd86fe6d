package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jira-refinement-copilot/config"
	_ "jira-refinement-copilot/docs" // Swagger docs
	"jira-refinement-copilot/internal/copilot/classifier"
	copilotDelivery "jira-refinement-copilot/internal/copilot/delivery/http"
	"jira-refinement-copilot/internal/copilot/usecase"
	"jira-refinement-copilot/internal/httpserver"
	"jira-refinement-copilot/internal/middleware"
	"jira-refinement-copilot/pkg/llmprovider"
	"jira-refinement-copilot/pkg/log"
)

// @title       Jira Refinement Copilot API
// @description Requirements-refinement copilot for Jira tickets: intent classification, style detection, and LLM-backed answer generation.
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

	logger.Info(ctx, "Starting Jira Refinement Copilot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM providers
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	for _, p := range providers {
		logger.Infof(ctx, "LLM provider ready: %s (%s)", p.Name(), p.Model())
	}

	maxTimeout, err := time.ParseDuration(cfg.LLM.MaxTotalTimeout)
	if err != nil {
		logger.Warnf(ctx, "Invalid llm.max_total_timeout %q, using 60s: %v", cfg.LLM.MaxTotalTimeout, err)
		maxTimeout = 60 * time.Second
	}

	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		MaxTotalTimeout: maxTimeout,
	}, logger)

	// 4. Copilot domain
	intentClassifier := classifier.New(manager, logger)
	copilotUC := usecase.New(logger, intentClassifier, manager)

	copilotHandler, err := copilotDelivery.New(logger, copilotUC, cfg.Copilot.CacheSize)
	if err != nil {
		logger.Error(ctx, "Failed to initialize copilot handler: ", err)
		return
	}

	// 5. HTTP Server
	mw := middleware.New(logger, cfg)

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		Middleware:     mw,
		CopilotHandler: copilotHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
