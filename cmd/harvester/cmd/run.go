package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/riftstats/predictor-api/internal/catalog"
	"github.com/riftstats/predictor-api/internal/config"
	"github.com/riftstats/predictor-api/internal/harvest"
	"github.com/riftstats/predictor-api/internal/riot"
)

var (
	runTiers   []string
	runPlayers int
	runMatches int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Harvest one or more tiers into CSV datasets",
	Args:  cobra.NoArgs,
	RunE:  runHarvest,
}

func init() {
	runCmd.Flags().StringSliceVar(&runTiers, "tiers", []string{"GOLD"}, "tiers to harvest, lowest first")
	runCmd.Flags().IntVar(&runPlayers, "players", 0, "players to crawl per tier (0 = config default)")
	runCmd.Flags().IntVar(&runMatches, "matches", 0, "matches per player (0 = config default)")
}

func runHarvest(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if runPlayers > 0 {
		cfg.TargetPlayers = runPlayers
	}
	if runMatches > 0 {
		cfg.MatchesPerPlayer = runMatches
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return err
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
		return err
	}

	if err := os.MkdirAll(cfg.HarvestOutDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	db, err := catalog.Open(cfg.CatalogPath)
	if err != nil {
		return err
	}
	defer db.Close()

	pipeline := harvest.NewPipeline(harvest.Config{
		Client:           client,
		Logger:           log,
		OutDir:           cfg.HarvestOutDir,
		Division:         cfg.HarvestDivision,
		TargetPlayers:    cfg.TargetPlayers,
		MatchesPerPlayer: cfg.MatchesPerPlayer,
		Queue:            cfg.HistoryQueue,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	started := time.Now()
	summaries, runErr := pipeline.Run(ctx, runTiers)
	finished := time.Now()

	for _, s := range summaries {
		if _, err := db.RecordRun(catalog.Run{
			Tier:        s.Tier,
			RankContext: s.RankContext,
			Players:     s.Players,
			Matches:     s.Matches,
			AverageRows: s.AverageRows,
			ModelRows:   s.ModelRows,
			StartedAt:   started,
			FinishedAt:  finished,
		}); err != nil {
			log.Errorw("catalog write failed", "tier", s.Tier, "err", err)
		}
	}

	printSummaries(summaries)
	return runErr
}

func printSummaries(summaries []harvest.TierSummary) {
	if len(summaries) == 0 {
		return
	}
	t := tablewriter.NewTable(os.Stdout, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
	t.Header("TIER", "PLAYERS", "MATCHES", "AVG ROWS", "MODEL ROWS", "SKIPPED")
	for _, s := range summaries {
		skipped := 0
		for _, n := range s.Skipped {
			skipped += n
		}
		t.Append(
			s.Tier,
			fmt.Sprintf("%d", s.Players),
			fmt.Sprintf("%d", s.Matches),
			fmt.Sprintf("%d", s.AverageRows),
			fmt.Sprintf("%d", s.ModelRows),
			fmt.Sprintf("%d", skipped),
		)
	}
	t.Render()
}
