package handlers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/riftstats/predictor-api/internal/predict"
	"github.com/riftstats/predictor-api/internal/riot"
)

// LiveGameService assembles analyzed live games.
type LiveGameService interface {
	Account(ctx context.Context, name, tag string) (*riot.Account, error)
	Presence(ctx context.Context, name, tag string) (*predict.Presence, error)
	LiveGame(ctx context.Context, name, tag string) (*predict.LiveGameResult, error)
}

type Config struct {
	LiveGame LiveGameService
	Logger   *zap.Logger
}

type Handler struct {
	liveGame  LiveGameService
	logger    *zap.SugaredLogger
	validator *validator.Validate
}

func New(cfg Config) *Handler {
	return &Handler{
		liveGame:  cfg.LiveGame,
		logger:    cfg.Logger.Sugar(),
		validator: validator.New(),
	}
}
