// Package riot is a rate-limited client for the Riot account, spectator,
// league and match APIs. All payloads are decoded into the typed structs in
// types.go at this boundary; nothing downstream touches raw JSON.
package riot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"github.com/riftstats/predictor-api/internal/metrics"
)

const (
	// DefaultConcurrency bounds in-flight upstream requests process-wide.
	// The bound is shared by every caller; concurrent harvest and inference
	// requests compete for the same upstream quota.
	DefaultConcurrency = 10

	maxAttempts           = 3
	defaultBackoffSeconds = 2
	requestTimeout        = 30 * time.Second
)

// StatusError is a non-2xx response from the Riot API.
type StatusError struct {
	Code     int
	Endpoint string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("riot: %s returned status %d", e.Endpoint, e.Code)
}

// IsNotFound reports whether err is an upstream 404.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusNotFound
}

// IsRateLimited reports whether err is an upstream 429 that survived retries.
func IsRateLimited(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusTooManyRequests
}

// Config configures a Client. APIKey is required; everything else defaults.
type Config struct {
	APIKey      string
	Routing     string // regional routing host, e.g. "americas"
	Platform    string // platform host, e.g. "na1"
	Concurrency int
	Timeout     time.Duration
	Logger      *zap.Logger

	// RoutingBaseURL / PlatformBaseURL override the derived hosts; used by tests.
	RoutingBaseURL  string
	PlatformBaseURL string
}

// Client is a rate-limited, retrying Riot API accessor. Safe for concurrent use.
type Client struct {
	apiKey       string
	httpClient   *http.Client
	sem          *semaphore.Weighted
	logger       *zap.SugaredLogger
	routingBase  string
	platformBase string
}

// NewClient creates a Client with the shared request-concurrency bound.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("riot: missing API key")
	}
	if cfg.Routing == "" {
		cfg.Routing = "americas"
	}
	if cfg.Platform == "" {
		cfg.Platform = "na1"
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = DefaultConcurrency
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = requestTimeout
	}

	routingBase := cfg.RoutingBaseURL
	if routingBase == "" {
		routingBase = fmt.Sprintf("https://%s.api.riotgames.com", cfg.Routing)
	}
	platformBase := cfg.PlatformBaseURL
	if platformBase == "" {
		platformBase = fmt.Sprintf("https://%s.api.riotgames.com", cfg.Platform)
	}

	return &Client{
		apiKey:       cfg.APIKey,
		httpClient:   &http.Client{Timeout: cfg.Timeout},
		sem:          semaphore.NewWeighted(int64(cfg.Concurrency)),
		logger:       cfg.Logger.Sugar(),
		routingBase:  routingBase,
		platformBase: platformBase,
	}, nil
}

// get issues one rate-limited GET and decodes the body into out. A 429 is
// retried after the server-specified backoff, up to maxAttempts total.
func (c *Client) get(ctx context.Context, endpoint, rawURL string, out any) error {
	if err := c.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer c.sem.Release(1)

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return fmt.Errorf("build request for %s: %w", endpoint, err)
		}
		req.Header.Set("X-Riot-Token", c.apiKey)

		metrics.UpstreamRequests.WithLabelValues(endpoint).Inc()
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("%s: %w", endpoint, err)
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			metrics.UpstreamRateLimited.Inc()
			if attempt == maxAttempts {
				return &StatusError{Code: http.StatusTooManyRequests, Endpoint: endpoint}
			}
			wait := retryAfter(resp.Header.Get("Retry-After"))
			c.logger.Warnw("Rate limited by upstream",
				"endpoint", endpoint,
				"waitSeconds", wait,
				"attempt", attempt,
			)
			select {
			case <-time.After(time.Duration(wait) * time.Second):
			case <-ctx.Done():
				return ctx.Err()
			}
			continue
		}

		if resp.StatusCode != http.StatusOK {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			metrics.UpstreamErrors.Inc()
			return &StatusError{Code: resp.StatusCode, Endpoint: endpoint}
		}

		err = json.NewDecoder(resp.Body).Decode(out)
		resp.Body.Close()
		if err != nil {
			return fmt.Errorf("decode %s response: %w", endpoint, err)
		}
		return nil
	}

	return &StatusError{Code: http.StatusTooManyRequests, Endpoint: endpoint}
}

// AccountByRiotID resolves a gameName#tagLine pair to an account.
func (c *Client) AccountByRiotID(ctx context.Context, name, tag string) (*Account, error) {
	u := fmt.Sprintf("%s/riot/account/v1/accounts/by-riot-id/%s/%s",
		c.routingBase, url.PathEscape(name), url.PathEscape(tag))

	var account Account
	if err := c.get(ctx, "account", u, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// ActiveGameByPUUID returns the player's in-progress game, or (nil, nil) when
// the player is not in a game. This is the only endpoint where a 404 is a
// domain answer rather than an error.
func (c *Client) ActiveGameByPUUID(ctx context.Context, puuid string) (*ActiveGame, error) {
	u := fmt.Sprintf("%s/lol/spectator/v5/active-games/by-summoner/%s",
		c.platformBase, url.PathEscape(puuid))

	var game ActiveGame
	if err := c.get(ctx, "active-game", u, &game); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &game, nil
}

// LeagueEntriesByPUUID returns the player's ranked entries across queues.
func (c *Client) LeagueEntriesByPUUID(ctx context.Context, puuid string) ([]LeagueEntry, error) {
	u := fmt.Sprintf("%s/lol/league/v4/entries/by-puuid/%s",
		c.platformBase, url.PathEscape(puuid))

	var entries []LeagueEntry
	if err := c.get(ctx, "league-entries", u, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// LeagueEntriesPage returns one leaderboard page of the given tier/division.
// An empty slice means the leaderboard is exhausted.
func (c *Client) LeagueEntriesPage(ctx context.Context, tier, division string, page int) ([]LeagueEntry, error) {
	u := fmt.Sprintf("%s/lol/league/v4/entries/%s/%s/%s?page=%d",
		c.platformBase, QueueSolo, url.PathEscape(tier), url.PathEscape(division), page)

	var entries []LeagueEntry
	if err := c.get(ctx, "league-page", u, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// MatchIDs returns up to count recent match identifiers for the player,
// most recent first. queue <= 0 means all queues.
func (c *Client) MatchIDs(ctx context.Context, puuid string, start, count, queue int) ([]string, error) {
	q := url.Values{}
	q.Set("start", strconv.Itoa(start))
	q.Set("count", strconv.Itoa(count))
	if queue > 0 {
		q.Set("queue", strconv.Itoa(queue))
	}
	u := fmt.Sprintf("%s/lol/match/v5/matches/by-puuid/%s/ids?%s",
		c.routingBase, url.PathEscape(puuid), q.Encode())

	var ids []string
	if err := c.get(ctx, "match-ids", u, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// Match returns the full detail of one completed match.
func (c *Client) Match(ctx context.Context, matchID string) (*Match, error) {
	u := fmt.Sprintf("%s/lol/match/v5/matches/%s", c.routingBase, url.PathEscape(matchID))

	var match Match
	if err := c.get(ctx, "match", u, &match); err != nil {
		return nil, err
	}
	return &match, nil
}

// retryAfter parses the upstream backoff header, falling back to 2 seconds.
func retryAfter(header string) int {
	if header == "" {
		return defaultBackoffSeconds
	}
	n, err := strconv.Atoi(header)
	if err != nil || n < 0 {
		return defaultBackoffSeconds
	}
	return n
}
