package handlers

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/kongssang/guildwar-stats-api/internal/dataset"
	"github.com/kongssang/guildwar-stats-api/internal/models"
)

// MaxBodySize limits the size of request bodies to 1MB
const MaxBodySize = 1048576

// SnapshotProvider serves the current cleaned dataset.
type SnapshotProvider interface {
	Snapshot(ctx context.Context) (*dataset.Snapshot, error)
}

// GuideResolver resolves (defense, attack) pairs to authored guides.
type GuideResolver interface {
	Lookup(defense, attack string) (models.GuideEntry, bool)
}

// ChatCompleter relays one question to the chat assistant backend.
type ChatCompleter interface {
	Enabled() bool
	Complete(ctx context.Context, system, user string) (string, error)
}

type Config struct {
	Store  SnapshotProvider
	Guides GuideResolver
	Chat   ChatCompleter
	// Redis is optional; nil disables response caching.
	Redis    *redis.Client
	CacheTTL time.Duration
	Logger   *zap.Logger
}

type Handler struct {
	store     SnapshotProvider
	guides    GuideResolver
	chat      ChatCompleter
	redis     *redis.Client
	cacheTTL  time.Duration
	logger    *zap.SugaredLogger
	validator *validator.Validate
}

func New(cfg Config) *Handler {
	return &Handler{
		store:     cfg.Store,
		guides:    cfg.Guides,
		chat:      cfg.Chat,
		redis:     cfg.Redis,
		cacheTTL:  cfg.CacheTTL,
		logger:    cfg.Logger.Sugar(),
		validator: validator.New(),
	}
}
