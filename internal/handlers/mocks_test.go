package handlers

import (
	"context"

	"github.com/riftstats/predictor-api/internal/predict"
	"github.com/riftstats/predictor-api/internal/riot"
)

// MockLiveGameService
type MockLiveGameService struct {
	AccountFunc  func(ctx context.Context, name, tag string) (*riot.Account, error)
	PresenceFunc func(ctx context.Context, name, tag string) (*predict.Presence, error)
	LiveGameFunc func(ctx context.Context, name, tag string) (*predict.LiveGameResult, error)
}

func (m *MockLiveGameService) Account(ctx context.Context, name, tag string) (*riot.Account, error) {
	if m.AccountFunc != nil {
		return m.AccountFunc(ctx, name, tag)
	}
	return &riot.Account{PUUID: "mock-puuid", GameName: name, TagLine: tag}, nil
}

func (m *MockLiveGameService) Presence(ctx context.Context, name, tag string) (*predict.Presence, error) {
	if m.PresenceFunc != nil {
		return m.PresenceFunc(ctx, name, tag)
	}
	return &predict.Presence{InGame: false, GameName: name, TagLine: tag}, nil
}

func (m *MockLiveGameService) LiveGame(ctx context.Context, name, tag string) (*predict.LiveGameResult, error) {
	if m.LiveGameFunc != nil {
		return m.LiveGameFunc(ctx, name, tag)
	}
	return &predict.LiveGameResult{InGame: false}, nil
}
