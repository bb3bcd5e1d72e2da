package harvest

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bits-and-blooms/bloom/v3"
	"go.uber.org/zap"

	"github.com/riftstats/predictor-api/internal/features"
	"github.com/riftstats/predictor-api/internal/metrics"
	"github.com/riftstats/predictor-api/internal/riot"
)

// Tiers is the ladder from lowest to highest. A tier's rank context is its
// 1-based position here, so IRON is 1 and CHALLENGER is 10.
var Tiers = []string{
	"IRON", "BRONZE", "SILVER", "GOLD", "PLATINUM",
	"EMERALD", "DIAMOND", "MASTER", "GRANDMASTER", "CHALLENGER",
}

// RankContext returns a tier's 1-based ladder position, or 0 for an unknown
// tier.
func RankContext(tier string) int {
	for i, t := range Tiers {
		if t == strings.ToUpper(tier) {
			return i + 1
		}
	}
	return 0
}

// Client is the slice of the Riot API the pipeline needs.
type Client interface {
	LeagueEntriesPage(ctx context.Context, tier, division string, page int) ([]riot.LeagueEntry, error)
	MatchIDs(ctx context.Context, puuid string, start, count, queue int) ([]string, error)
	Match(ctx context.Context, matchID string) (*riot.Match, error)
}

// Config sizes one harvest run.
type Config struct {
	Client           Client
	Logger           *zap.SugaredLogger
	OutDir           string
	Division         string // I..IV, ignored for apex tiers
	TargetPlayers    int
	MatchesPerPlayer int
	Queue            int // queue id for match-id listing, 420 for ranked solo
}

// TierSummary reports what one tier's crawl produced.
type TierSummary struct {
	Tier        string
	RankContext int
	Players     int
	Matches     int
	AverageRows int
	ModelRows   int
	Skipped     map[string]int
}

// Pipeline crawls ladder pages tier by tier and writes the two training
// datasets per tier. Failures on individual matches are logged and skipped;
// only dataset I/O and context cancellation abort a run.
type Pipeline struct {
	cfg Config
	log *zap.SugaredLogger
}

func NewPipeline(cfg Config) *Pipeline {
	return &Pipeline{cfg: cfg, log: cfg.Logger}
}

// Run harvests every requested tier in order and returns a summary per tier.
func (p *Pipeline) Run(ctx context.Context, tiers []string) ([]TierSummary, error) {
	summaries := make([]TierSummary, 0, len(tiers))
	for _, tier := range tiers {
		s, err := p.runTier(ctx, strings.ToUpper(tier))
		if err != nil {
			return summaries, err
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}

func (p *Pipeline) runTier(ctx context.Context, tier string) (TierSummary, error) {
	rankCtx := RankContext(tier)
	if rankCtx == 0 {
		return TierSummary{}, fmt.Errorf("unknown tier %q", tier)
	}

	prefix := strings.ToLower(tier)
	w, err := newDatasetWriter(
		filepath.Join(p.cfg.OutDir, prefix+"_averages.csv"),
		filepath.Join(p.cfg.OutDir, prefix+"_model.csv"),
	)
	if err != nil {
		return TierSummary{}, err
	}
	defer w.Close()

	summary := TierSummary{
		Tier:        tier,
		RankContext: rankCtx,
		Skipped:     make(map[string]int),
	}
	validator := NewValidator()

	puuids, err := p.collectPlayers(ctx, tier)
	if err != nil {
		return summary, err
	}
	summary.Players = len(puuids)
	p.log.Infow("tier crawl start", "tier", tier, "players", len(puuids))

	for _, puuid := range puuids {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		ids, err := p.cfg.Client.MatchIDs(ctx, puuid, 0, p.cfg.MatchesPerPlayer, p.cfg.Queue)
		if err != nil {
			p.log.Warnw("match listing failed", "tier", tier, "err", err)
			continue
		}
		if len(ids) < p.cfg.MatchesPerPlayer {
			p.log.Warnw("short match history", "tier", tier, "puuid", puuid, "got", len(ids), "want", p.cfg.MatchesPerPlayer)
		}
		for _, id := range ids {
			if err := p.harvestMatch(ctx, w, validator, id, rankCtx, &summary); err != nil {
				return summary, err
			}
		}
	}

	if err := w.Close(); err != nil {
		return summary, fmt.Errorf("finalize %s datasets: %w", tier, err)
	}
	p.log.Infow("tier crawl done",
		"tier", tier,
		"matches", summary.Matches,
		"avg_rows", summary.AverageRows,
		"model_rows", summary.ModelRows,
	)
	return summary, nil
}

// collectPlayers pages through the tier's league entries until the player
// target is met or the ladder runs out. A bloom filter drops players that a
// page boundary shift served twice.
func (p *Pipeline) collectPlayers(ctx context.Context, tier string) ([]string, error) {
	target := p.cfg.TargetPlayers
	seen := bloom.NewWithEstimates(uint(target)*4, 0.001)
	puuids := make([]string, 0, target)
	for page := 1; len(puuids) < target; page++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		entries, err := p.cfg.Client.LeagueEntriesPage(ctx, tier, p.cfg.Division, page)
		if err != nil {
			return nil, fmt.Errorf("league page %d for %s: %w", page, tier, err)
		}
		if len(entries) == 0 {
			break
		}
		for _, e := range entries {
			if e.PUUID == "" || seen.TestAndAddString(e.PUUID) {
				continue
			}
			puuids = append(puuids, e.PUUID)
			if len(puuids) == target {
				break
			}
		}
	}
	return puuids, nil
}

func (p *Pipeline) harvestMatch(ctx context.Context, w *datasetWriter, v *Validator, matchID string, rankCtx int, summary *TierSummary) error {
	m, err := p.cfg.Client.Match(ctx, matchID)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		p.log.Warnw("match fetch failed", "match", matchID, "err", err)
		return nil
	}

	if verdict := v.Check(m); verdict != Valid {
		summary.Skipped[verdict.String()]++
		metrics.MatchesSkipped.WithLabelValues(verdict.String()).Inc()
		return nil
	}

	aggs := features.TeamAggregates(m.Info.Participants)
	rows := make([]features.AverageRow, 0, len(m.Info.Participants))
	for i := range m.Info.Participants {
		part := &m.Info.Participants[i]
		rows = append(rows, features.BuildAverageRow(part, aggs[part.TeamID], m.Info.GameDuration, rankCtx, m.Metadata.MatchID))
	}
	if err := w.WriteAverageRows(rows); err != nil {
		return err
	}
	summary.AverageRows += len(rows)

	if modelRow, ok := features.BuildModelRow(rows); ok {
		if err := w.WriteModelRow(modelRow); err != nil {
			return err
		}
		summary.ModelRows++
	}

	summary.Matches++
	metrics.MatchesHarvested.Inc()
	return nil
}
