package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"v0promptgen/config"
	"v0promptgen/internal/ai"
	"v0promptgen/internal/api"
	"v0promptgen/internal/logger"
	"v0promptgen/internal/store"
)

var (
	_ ai.RecordStore   = (*store.DB)(nil)
	_ api.RecordLister = (*store.DB)(nil)
)

func main() {
	// --- Load .env file ---
	// Must run before config loading so viper sees the variables.
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		} else {
			log.Println("Info: .env file not found, relying on system environment variables.")
		}
	} else {
		log.Println("Info: Loaded environment variables from .env file.")
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Cannot load config: %v", err)
	}
	logger.SetLevel(cfg.LogLevel)

	// --- Dependency Initialization ---
	generator := ai.NewGenerator(ai.GeneratorConfig{
		APIKey:  cfg.OpenAIKey,
		BaseURL: cfg.OpenAIBaseURL,
		Model:   cfg.CompletionModel,
		Timeout: cfg.CompletionTimeout,
	})

	var (
		recordStore ai.RecordStore
		history     api.RecordLister
		database    *store.DB
	)
	if cfg.PersistRecords {
		database, err = store.New(cfg.DatabasePath)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		recordStore = database
		history = database
		logger.Infof("Persisting prompt records to %s", cfg.DatabasePath)
	} else {
		logger.Infof("Prompt record persistence is disabled")
	}

	promptService := ai.NewPromptService(generator, recordStore, ai.ServiceConfig{
		TargetTool:        cfg.TargetTool,
		MaxTokens:         cfg.CompletionMaxTokens,
		CompletionTimeout: cfg.CompletionTimeout,
		PersistTimeout:    cfg.PersistTimeout,
	})

	apiHandler := api.NewAPIHandler(promptService, history)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
		logger.Infof("Running in Gin Debug Mode")
	}
	router := api.NewRouter(apiHandler, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: router,
		// Completion calls can take a while; the write timeout leaves room for them.
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.CompletionTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// --- Start and Graceful Shutdown ---
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		logger.Infof("Starting API server on %s (target tool %s, model %s)", cfg.ServerAddress, cfg.TargetTool, generator.Model())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-ctx.Done()
		logger.Infof("Shutting down API server...")

		// In-flight generations may run up to the completion timeout.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.CompletionTimeout+10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Errorf("API server forced shutdown error: %v", err)
		} else {
			logger.Infof("API server gracefully stopped.")
		}

		// Close refuses writes from handlers that outlived Shutdown and drains
		// the rest, so the database is idle when it is closed.
		promptService.Close()
		if database != nil {
			if err := database.Close(); err != nil {
				logger.Warnf("Failed to close database: %v", err)
			}
		}
		return nil
	})

	if err := group.Wait(); err != nil {
		log.Fatalf("API server error: %v", err)
	}
	log.Println("Application exiting.")
}
