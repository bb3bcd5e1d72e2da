package predict

import (
	"context"
	"math"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/riftstats/predictor-api/internal/features"
	"github.com/riftstats/predictor-api/internal/metrics"
	"github.com/riftstats/predictor-api/internal/riot"
	"github.com/riftstats/predictor-api/internal/roles"
)

// Client is the slice of the Riot API the assembler needs.
type Client interface {
	AccountByRiotID(ctx context.Context, name, tag string) (*riot.Account, error)
	ActiveGameByPUUID(ctx context.Context, puuid string) (*riot.ActiveGame, error)
	LeagueEntriesByPUUID(ctx context.Context, puuid string) ([]riot.LeagueEntry, error)
	MatchIDs(ctx context.Context, puuid string, start, count, queue int) ([]string, error)
	Match(ctx context.Context, matchID string) (*riot.Match, error)
}

// Predictor scores one blue-minus-red difference row.
type Predictor interface {
	Predict(row map[string]float64) (float64, error)
}

// RankInfo is a participant's solo-queue standing.
type RankInfo struct {
	Tier    string  `json:"tier"`
	Rank    string  `json:"rank"`
	LP      int     `json:"lp"`
	Wins    int     `json:"wins"`
	Losses  int     `json:"losses"`
	Winrate float64 `json:"winrate"`
}

func unranked() RankInfo {
	return RankInfo{Tier: "UNRANKED"}
}

// Participant is one formatted player of an analyzed live game, teams in
// blue-then-red order and roles in top-to-support order within each team.
type Participant struct {
	PUUID             string                  `json:"puuid"`
	TeamID            int                     `json:"teamId"`
	ChampionID        int                     `json:"championId"`
	SummonerName      string                  `json:"summonerName"`
	TagLine           string                  `json:"tagLine"`
	AssignedRole      string                  `json:"assignedRole"`
	Bot               bool                    `json:"bot"`
	Spell1ID          int                     `json:"spell1Id"`
	Spell2ID          int                     `json:"spell2Id"`
	Perks             riot.GamePerks          `json:"perks"`
	PerkStyle         int                     `json:"perkStyle"`
	PerkSubStyle      int                     `json:"perkSubStyle"`
	KeystoneID        int                     `json:"keystoneId"`
	History           []features.HistoryEntry `json:"history"`
	Rank              RankInfo                `json:"rank"`
	Averages          map[string]float64      `json:"averages"`
	Autofilled        bool                    `json:"autofilled"`
	LaneProbabilities map[string]float64      `json:"laneProbabilities"`
}

// Presence is the lightweight live-game check without analysis.
type Presence struct {
	InGame   bool             `json:"in_game"`
	GameName string           `json:"gameName,omitempty"`
	TagLine  string           `json:"tagLine,omitempty"`
	Game     *riot.ActiveGame `json:"game,omitempty"`
}

// LiveGameResult is the full analyzed live game with a win prediction.
type LiveGameResult struct {
	InGame          bool                  `json:"in_game"`
	Prediction      float64               `json:"prediction"`
	GameID          int64                 `json:"game_id"`
	GameMode        string                `json:"game_mode"`
	GameQueueID     int                   `json:"game_queue_id"`
	GameStartTime   int64                 `json:"game_start_time"`
	GameLength      int64                 `json:"game_length"`
	BannedChampions []riot.BannedChampion `json:"banned_champions"`
	Participants    []Participant         `json:"participants"`
}

// Config wires an Assembler.
type Config struct {
	Client       Client
	Lanes        roles.LaneTable
	Baselines    *features.Baselines
	Model        Predictor
	Logger       *zap.SugaredLogger
	HistoryCount int
	HistoryQueue int
}

// Assembler turns a riot id into an analyzed live game. Player-level upstream
// failures degrade that player to an empty history and UNRANKED instead of
// failing the whole request.
type Assembler struct {
	client       Client
	lanes        roles.LaneTable
	baselines    *features.Baselines
	model        Predictor
	log          *zap.SugaredLogger
	historyCount int
	historyQueue int
}

func NewAssembler(cfg Config) *Assembler {
	return &Assembler{
		client:       cfg.Client,
		lanes:        cfg.Lanes,
		baselines:    cfg.Baselines,
		model:        cfg.Model,
		log:          cfg.Logger,
		historyCount: cfg.HistoryCount,
		historyQueue: cfg.HistoryQueue,
	}
}

// Account resolves a riot id to an account.
func (a *Assembler) Account(ctx context.Context, name, tag string) (*riot.Account, error) {
	return a.client.AccountByRiotID(ctx, name, tag)
}

// Presence reports whether the player is in a game, with the raw game payload
// when they are.
func (a *Assembler) Presence(ctx context.Context, name, tag string) (*Presence, error) {
	account, err := a.client.AccountByRiotID(ctx, name, tag)
	if err != nil {
		return nil, err
	}
	game, err := a.client.ActiveGameByPUUID(ctx, account.PUUID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return &Presence{InGame: false, GameName: account.GameName, TagLine: account.TagLine}, nil
	}
	return &Presence{InGame: true, Game: game}, nil
}

// LiveGame resolves the player's active game and assembles the full analyzed
// response: histories, ranks, role assignment and the win prediction.
func (a *Assembler) LiveGame(ctx context.Context, name, tag string) (*LiveGameResult, error) {
	account, err := a.client.AccountByRiotID(ctx, name, tag)
	if err != nil {
		return nil, err
	}
	game, err := a.client.ActiveGameByPUUID(ctx, account.PUUID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return &LiveGameResult{InGame: false}, nil
	}

	data := a.fetchAllPlayers(ctx, game.Participants)

	participants := make([]Participant, 0, len(game.Participants))
	for _, teamID := range []int{features.TeamBlue, features.TeamRed} {
		participants = append(participants, a.assembleTeam(game.Participants, teamID, data)...)
	}

	prediction := a.predict(participants)
	metrics.PredictionsServed.Inc()

	return &LiveGameResult{
		InGame:          true,
		Prediction:      prediction,
		GameID:          game.GameID,
		GameMode:        game.GameMode,
		GameQueueID:     game.GameQueueConfigID,
		GameStartTime:   game.GameStartTime,
		GameLength:      game.GameLength,
		BannedChampions: game.BannedChampions,
		Participants:    participants,
	}, nil
}

type playerData struct {
	history []features.HistoryEntry
	rank    RankInfo
}

// fetchAllPlayers loads history and rank for every identified player in
// parallel. Tasks never return an error; a failed player degrades to the
// zero playerData.
func (a *Assembler) fetchAllPlayers(ctx context.Context, participants []riot.GameParticipant) map[string]playerData {
	results := make([]playerData, len(participants))
	g, ctx := errgroup.WithContext(ctx)
	for i := range participants {
		puuid := participants[i].PUUID
		if puuid == "" {
			continue
		}
		i := i
		g.Go(func() error {
			results[i] = a.fetchPlayer(ctx, puuid)
			return nil
		})
	}
	g.Wait()

	data := make(map[string]playerData, len(participants))
	for i := range participants {
		if puuid := participants[i].PUUID; puuid != "" {
			data[puuid] = results[i]
		}
	}
	return data
}

func (a *Assembler) fetchPlayer(ctx context.Context, puuid string) playerData {
	data := playerData{rank: unranked()}

	var ids []string
	var entries []riot.LeagueEntry
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ids, err = a.client.MatchIDs(gctx, puuid, 0, a.historyCount, a.historyQueue)
		return err
	})
	g.Go(func() error {
		var err error
		entries, err = a.client.LeagueEntriesByPUUID(gctx, puuid)
		return err
	})
	if err := g.Wait(); err != nil {
		a.log.Warnw("player lookup failed", "puuid", puuid, "err", err)
		return data
	}

	for _, e := range entries {
		if e.QueueType != riot.QueueSolo {
			continue
		}
		data.rank = RankInfo{
			Tier:    e.Tier,
			Rank:    e.Rank,
			LP:      e.LeaguePoints,
			Wins:    e.Wins,
			Losses:  e.Losses,
			Winrate: winrate(e.Wins, e.Losses),
		}
		break
	}

	// index-ordered fetch so history stays newest first
	matches := make([]*riot.Match, len(ids))
	mg, mctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		mg.Go(func() error {
			m, err := a.client.Match(mctx, id)
			if err != nil {
				a.log.Warnw("history match fetch failed", "puuid", puuid, "match", id, "err", err)
				return nil
			}
			matches[i] = m
			return nil
		})
	}
	mg.Wait()

	for _, m := range matches {
		if m == nil {
			continue
		}
		if entry, ok := features.BuildHistoryEntry(m, puuid); ok {
			data.history = append(data.history, entry)
		}
	}
	return data
}

// assembleTeam assigns roles within one side and formats its five players in
// top-to-support order.
func (a *Assembler) assembleTeam(all []riot.GameParticipant, teamID int, data map[string]playerData) []Participant {
	var team []riot.GameParticipant
	for _, p := range all {
		if p.TeamID == teamID {
			team = append(team, p)
		}
	}

	candidates := make([]roles.Candidate, len(team))
	for i, p := range team {
		candidates[i] = roles.Candidate{
			Spell1ID: p.Spell1ID,
			Spell2ID: p.Spell2ID,
			Priors:   a.lanes.Lookup(p.ChampionID),
		}
	}
	assignment := roles.Assign(candidates)

	out := make([]Participant, 0, len(team))
	for _, role := range roles.Canonical {
		idx := assignment[role]
		if idx < 0 || idx >= len(team) {
			continue
		}
		out = append(out, a.formatParticipant(&team[idx], string(role), candidates[idx].Priors, data))
	}
	return out
}

func (a *Assembler) formatParticipant(p *riot.GameParticipant, role string, priors map[string]float64, data map[string]playerData) Participant {
	pd, ok := data[p.PUUID]
	if !ok {
		pd = playerData{rank: unranked()}
	}

	var baseline map[string]float64
	if a.baselines != nil {
		baseline = a.baselines.ForRole(role)
	}
	averages, autofilled := features.WeightedRoleAverage(pd.history, role, baseline)

	name, tag := splitRiotID(p.RiotID)

	view := Participant{
		PUUID:             p.PUUID,
		TeamID:            p.TeamID,
		ChampionID:        p.ChampionID,
		SummonerName:      name,
		TagLine:           tag,
		AssignedRole:      role,
		Bot:               p.Bot,
		Spell1ID:          p.Spell1ID,
		Spell2ID:          p.Spell2ID,
		Perks:             p.Perks,
		PerkStyle:         p.Perks.PerkStyle,
		PerkSubStyle:      p.Perks.PerkSubStyle,
		History:           pd.history,
		Rank:              pd.rank,
		Averages:          averages,
		Autofilled:        autofilled,
		LaneProbabilities: priors,
	}
	if len(p.Perks.PerkIDs) > 0 {
		view.KeystoneID = p.Perks.PerkIDs[0]
	}
	return view
}

func (a *Assembler) predict(participants []Participant) float64 {
	if a.model == nil {
		return 0.5
	}
	row := BuildDiffRow(participants)
	p, err := a.model.Predict(row)
	if err != nil {
		a.log.Warnw("prediction failed", "err", err)
		return 0.5
	}
	return math.Round(p*10000) / 10000
}

// BuildDiffRow folds the formatted participants into the fixed-schema
// blue-minus-red difference row the classifier consumes. A side with no
// averages for a role contributes 0.
func BuildDiffRow(participants []Participant) map[string]float64 {
	byTeamRole := make(map[int]map[string]map[string]float64, 2)
	for i := range participants {
		p := &participants[i]
		if byTeamRole[p.TeamID] == nil {
			byTeamRole[p.TeamID] = make(map[string]map[string]float64, len(features.Roles))
		}
		byTeamRole[p.TeamID][p.AssignedRole] = p.Averages
	}

	row := make(map[string]float64, len(features.Roles)*len(features.ModelFeatures))
	for _, role := range features.Roles {
		blue := byTeamRole[features.TeamBlue][role]
		red := byTeamRole[features.TeamRed][role]
		for _, feat := range features.ModelFeatures {
			row[features.DiffColumn(role, feat)] = blue[feat] - red[feat]
		}
	}
	return row
}

func splitRiotID(riotID string) (string, string) {
	if name, tag, ok := strings.Cut(riotID, "#"); ok {
		return name, tag
	}
	if riotID == "" {
		return "Hidden Player", "Hidden"
	}
	return riotID, "Hidden"
}

func winrate(wins, losses int) float64 {
	total := wins + losses
	if total == 0 {
		return 0
	}
	return math.Round(float64(wins)/float64(total)*1000) / 10
}
