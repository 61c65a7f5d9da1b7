package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/kongssang/guildwar-stats-api/internal/config"
	"github.com/kongssang/guildwar-stats-api/internal/dataset"
	"github.com/kongssang/guildwar-stats-api/internal/handlers"
	"github.com/kongssang/guildwar-stats-api/internal/llm"
	"github.com/kongssang/guildwar-stats-api/internal/logic"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	var logger *zap.Logger
	if cfg.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	// Dataset store; the first request triggers the initial load.
	store := dataset.NewStore(cfg.DataDir, logger)
	if err := store.Watch(); err != nil {
		sugar.Warnw("File watching disabled, falling back to stat checks", "error", err)
	}
	defer store.Close()

	// Guide database, re-keyed through the roster normalizer.
	guideDB, err := dataset.LoadGuideDB(cfg.GuideDBPath)
	if err != nil {
		sugar.Errorw("Guide database unreadable, starting without guides", "path", cfg.GuideDBPath, "error", err)
		guideDB = nil
	}
	guides := logic.BuildGuideIndex(guideDB)
	sugar.Infow("Guide index built", "defense_compositions", guides.Len())

	// Optional response cache.
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			sugar.Errorw("Invalid REDIS_URL, response caching disabled", "error", err)
		} else {
			redisClient = redis.NewClient(opts)
			defer redisClient.Close()
		}
	}

	// Optional chat assistant.
	chat := llm.New(llm.Config{
		BaseURL: cfg.LLMBaseURL,
		APIKey:  cfg.LLMAPIKey,
		Model:   cfg.LLMModel,
		Timeout: cfg.LLMTimeout,
	})
	if !chat.Enabled() {
		sugar.Info("Chat assistant disabled (no LLM_API_KEY)")
	}

	h := handlers.New(handlers.Config{
		Store:    store,
		Guides:   guides,
		Chat:     chat,
		Redis:    redisClient,
		CacheTTL: cfg.CacheTTL,
		Logger:   logger,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           h.Routes(cfg.AllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		sugar.Infow("Server starting", "port", cfg.Port, "env", cfg.Env, "data_dir", cfg.DataDir)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			sugar.Fatalw("Server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	sugar.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		sugar.Errorw("Forced shutdown", "error", err)
	}
}
