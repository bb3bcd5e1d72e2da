package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/riftstats/predictor-api/internal/config"
	"github.com/riftstats/predictor-api/internal/features"
	"github.com/riftstats/predictor-api/internal/handlers"
	"github.com/riftstats/predictor-api/internal/model"
	"github.com/riftstats/predictor-api/internal/predict"
	"github.com/riftstats/predictor-api/internal/riot"
	"github.com/riftstats/predictor-api/internal/roles"
)

func main() {
	// .env is optional, real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	var logger *zap.Logger
	if cfg.Env == "development" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Sugar()

	client, err := riot.NewClient(riot.Config{
		APIKey:      cfg.RiotAPIKey,
		Routing:     cfg.Routing,
		Platform:    cfg.Platform,
		Concurrency: cfg.RequestConcurrency,
		Timeout:     cfg.RequestTimeout,
		Logger:      logger,
	})
	if err != nil {
		log.Fatalw("riot client", "err", err)
	}

	// Inference degrades gracefully when artifacts are missing: no lane
	// table means uniform priors, no model means 0.5 predictions.
	lanes, err := roles.LoadLaneTable(cfg.LanesPath)
	if err != nil {
		log.Warnw("lane table unavailable", "path", cfg.LanesPath, "err", err)
		lanes = roles.LaneTable{}
	}

	baselines, err := features.LoadBaselines(cfg.BaselinePath)
	if err != nil {
		log.Warnw("rank baselines unavailable", "path", cfg.BaselinePath, "err", err)
		baselines = nil
	}

	var classifier predict.Predictor
	if m, err := model.Load(cfg.ModelDir); err != nil {
		log.Warnw("win model unavailable", "dir", cfg.ModelDir, "err", err)
	} else {
		classifier = m
		log.Infow("win model loaded", "cols", len(m.Cols()))
	}

	assembler := predict.NewAssembler(predict.Config{
		Client:       client,
		Lanes:        lanes,
		Baselines:    baselines,
		Model:        classifier,
		Logger:       log,
		HistoryCount: cfg.HistoryCount,
		HistoryQueue: cfg.HistoryQueue,
	})

	h := handlers.New(handlers.Config{
		LiveGame: assembler,
		Logger:   logger,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handlers.Router(h, cfg.AllowedOrigins),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  90 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Infow("server listening", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("server failed", "err", err)
		}
	}()

	<-ctx.Done()
	log.Infow("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("shutdown failed", "err", err)
	}
}
