package harvest

import (
	"context"

	"github.com/riftstats/predictor-api/internal/riot"
)

// MockClient
type MockClient struct {
	LeagueEntriesPageFunc func(ctx context.Context, tier, division string, page int) ([]riot.LeagueEntry, error)
	MatchIDsFunc          func(ctx context.Context, puuid string, start, count, queue int) ([]string, error)
	MatchFunc             func(ctx context.Context, matchID string) (*riot.Match, error)
}

func (m *MockClient) LeagueEntriesPage(ctx context.Context, tier, division string, page int) ([]riot.LeagueEntry, error) {
	if m.LeagueEntriesPageFunc != nil {
		return m.LeagueEntriesPageFunc(ctx, tier, division, page)
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
