package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Server
	Port int
	Env  string

	// CORS
	AllowedOrigins []string

	// Riot API
	RiotAPIKey         string
	Routing            string
	Platform           string
	RequestConcurrency int
	RequestTimeout     time.Duration

	// Live inference
	HistoryCount int
	HistoryQueue int
	LanesPath    string
	ModelDir     string
	BaselinePath string

	// Harvesting
	HarvestOutDir    string
	CatalogPath      string
	HarvestDivision  string
	TargetPlayers    int
	MatchesPerPlayer int
}

// Load loads configuration from environment variables.
// It returns an error if critical configuration is missing.
func Load() (*Config, error) {
	cfg := &Config{
		Port: getEnvInt("PORT", 8080),
		Env:  getEnv("ENV", "development"),

		Routing:            getEnv("RIOT_ROUTING", "americas"),
		Platform:           getEnv("RIOT_PLATFORM", "na1"),
		RequestConcurrency: getEnvInt("RIOT_CONCURRENCY", 10),
		RequestTimeout:     getEnvDuration("RIOT_TIMEOUT", 30*time.Second),

		HistoryCount: getEnvInt("HISTORY_COUNT", 7),
		HistoryQueue: getEnvInt("HISTORY_QUEUE", 420),
		LanesPath:    getEnv("LANES_PATH", "data/lanes.json"),
		ModelDir:     getEnv("MODEL_DIR", "data/model"),
		BaselinePath: getEnv("BASELINE_PATH", "data/gold_averages.csv"),

		HarvestOutDir:    getEnv("HARVEST_OUT_DIR", "data/harvest"),
		CatalogPath:      getEnv("CATALOG_PATH", "data/harvest/catalog.db"),
		HarvestDivision:  getEnv("HARVEST_DIVISION", "III"),
		TargetPlayers:    getEnvInt("TARGET_PLAYERS", 500),
		MatchesPerPlayer: getEnvInt("MATCHES_PER_PLAYER", 10),
	}

	// CORS
	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:3000")
	rawOrigins := strings.Split(origins, ",")
	for _, o := range rawOrigins {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	// Critical configuration - fail if missing
	var err error
	if cfg.RiotAPIKey, err = getEnvRequired("RIOT_API_KEY"); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvRequired(key string) (string, error) {
	if value := os.Getenv(key); value != "" {
		return value, nil
	}
	return "", fmt.Errorf("missing required environment variable: %s", key)
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
