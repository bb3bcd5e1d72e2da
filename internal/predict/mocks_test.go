package predict

import (
	"context"

	"github.com/riftstats/predictor-api/internal/riot"
)

// MockClient
type MockClient struct {
	AccountByRiotIDFunc      func(ctx context.Context, name, tag string) (*riot.Account, error)
	ActiveGameByPUUIDFunc    func(ctx context.Context, puuid string) (*riot.ActiveGame, error)
	LeagueEntriesByPUUIDFunc func(ctx context.Context, puuid string) ([]riot.LeagueEntry, error)
	MatchIDsFunc             func(ctx context.Context, puuid string, start, count, queue int) ([]string, error)
	MatchFunc                func(ctx context.Context, matchID string) (*riot.Match, error)
}

func (m *MockClient) AccountByRiotID(ctx context.Context, name, tag string) (*riot.Account, error) {
	if m.AccountByRiotIDFunc != nil {
		return m.AccountByRiotIDFunc(ctx, name, tag)
	}
	return &riot.Account{PUUID: "mock-puuid", GameName: name, TagLine: tag}, nil
}

func (m *MockClient) ActiveGameByPUUID(ctx context.Context, puuid string) (*riot.ActiveGame, error) {
	if m.ActiveGameByPUUIDFunc != nil {
		return m.ActiveGameByPUUIDFunc(ctx, puuid)
	}
	return nil, nil
}

func (m *MockClient) LeagueEntriesByPUUID(ctx context.Context, puuid string) ([]riot.LeagueEntry, error) {
	if m.LeagueEntriesByPUUIDFunc != nil {
		return m.LeagueEntriesByPUUIDFunc(ctx, puuid)
	}
	return nil, nil
}

func (m *MockClient) MatchIDs(ctx context.Context, puuid string, start, count, queue int) ([]string, error) {
	if m.MatchIDsFunc != nil {
		return m.MatchIDsFunc(ctx, puuid, start, count, queue)
	}
	return nil, nil
}

func (m *MockClient) Match(ctx context.Context, matchID string) (*riot.Match, error) {
	if m.MatchFunc != nil {
		return m.MatchFunc(ctx, matchID)
	}
	return nil, nil
}

// MockPredictor
type MockPredictor struct {
	PredictFunc func(row map[string]float64) (float64, error)
}

func (m *MockPredictor) Predict(row map[string]float64) (float64, error) {
	if m.PredictFunc != nil {
		return m.PredictFunc(row)
	}
	return 0.5, nil
}
