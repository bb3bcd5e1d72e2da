package predict

import (
	"context"
	"errors"
	"math"
	"strconv"
	"testing"

	"go.uber.org/zap"

	"github.com/riftstats/predictor-api/internal/riot"
	"github.com/riftstats/predictor-api/internal/roles"
)

// testLanes gives each champion a dominant lane: champions 1..5 and 6..10 map
// onto TOP, JNG, MID, BOT, SUP in order.
func testLanes() roles.LaneTable {
	lanes := roles.LaneTable{}
	keys := []string{roles.LaneTop, roles.LaneJungle, roles.LaneMiddle, roles.LaneBottom, roles.LaneSupport}
	for champ := 1; champ <= 10; champ++ {
		priors := map[string]float64{}
		for i, k := range keys {
			if (champ-1)%5 == i {
				priors[k] = 0.9
			} else {
				priors[k] = 0.02
			}
		}
		lanes[strconv.Itoa(champ)] = priors
	}
	return lanes
}

func testGame() *riot.ActiveGame {
	game := &riot.ActiveGame{
		GameID:            123,
		GameMode:          "CLASSIC",
		GameQueueConfigID: 420,
		GameLength:        600,
	}
	for i := 0; i < 5; i++ {
		game.Participants = append(game.Participants, riot.GameParticipant{
			PUUID:      "b" + strconv.Itoa(i+1),
			TeamID:     100,
			ChampionID: i + 1,
			RiotID:     "Blue" + strconv.Itoa(i+1) + "#NA1",
			Perks:      riot.GamePerks{PerkIDs: []int{8000 + i}, PerkStyle: 8100, PerkSubStyle: 8200},
		})
	}
	for i := 0; i < 5; i++ {
		game.Participants = append(game.Participants, riot.GameParticipant{
			PUUID:      "r" + strconv.Itoa(i+1),
			TeamID:     200,
			ChampionID: i + 6,
			RiotID:     "Red" + strconv.Itoa(i+1) + "#NA1",
		})
	}
	// junglers hold smite
	game.Participants[1].Spell1ID = roles.SmiteID
	game.Participants[6].Spell2ID = roles.SmiteID
	// one player with hidden identity
	game.Participants[9].PUUID = ""
	game.Participants[9].RiotID = ""
	return game
}

func midHistoryMatch(puuid string) *riot.Match {
	parts := []riot.MatchParticipant{
		{
			PUUID:        puuid,
			TeamID:       100,
			TeamPosition: "MIDDLE",
			Win:          true,
			Kills:        6,
			GoldEarned:   12000,
		},
	}
	rolesList := []string{"TOP", "JUNGLE", "BOTTOM", "UTILITY"}
	for i, r := range rolesList {
		parts = append(parts, riot.MatchParticipant{
			PUUID: "ally" + strconv.Itoa(i), TeamID: 100, TeamPosition: r,
		})
	}
	for i, r := range append(rolesList, "MIDDLE") {
		parts = append(parts, riot.MatchParticipant{
			PUUID: "foe" + strconv.Itoa(i), TeamID: 200, TeamPosition: r,
		})
	}
	return &riot.Match{
		Metadata: riot.MatchMetadata{MatchID: "NA1_M1"},
		Info: riot.MatchInfo{
			GameMode:     "CLASSIC",
			GameDuration: 1800,
			Participants: parts,
		},
	}
}

func testAssembler(client Client, model Predictor) *Assembler {
	return NewAssembler(Config{
		Client:       client,
		Lanes:        testLanes(),
		Model:        model,
		Logger:       zap.NewNop().Sugar(),
		HistoryCount: 7,
		HistoryQueue: 420,
	})
}

func TestLiveGameNotInGame(t *testing.T) {
	a := testAssembler(&MockClient{}, nil)

	result, err := a.LiveGame(context.Background(), "Alice", "NA1")
	if err != nil {
		t.Fatal(err)
	}
	if result.InGame {
		t.Error("InGame = true, want false")
	}
}

func TestLiveGameAssembly(t *testing.T) {
	var capturedRow map[string]float64
	client := &MockClient{
		ActiveGameByPUUIDFunc: func(ctx context.Context, puuid string) (*riot.ActiveGame, error) {
			return testGame(), nil
		},
		LeagueEntriesByPUUIDFunc: func(ctx context.Context, puuid string) ([]riot.LeagueEntry, error) {
			if puuid != "b1" {
				return nil, nil
			}
			return []riot.LeagueEntry{
				{QueueType: "RANKED_FLEX_SR", Tier: "SILVER"},
				{QueueType: riot.QueueSolo, Tier: "GOLD", Rank: "II", LeaguePoints: 55, Wins: 60, Losses: 40},
			}, nil
		},
		MatchIDsFunc: func(ctx context.Context, puuid string, start, count, queue int) ([]string, error) {
			if puuid == "b3" {
				return []string{"NA1_M1"}, nil
			}
			return nil, nil
		},
		MatchFunc: func(ctx context.Context, matchID string) (*riot.Match, error) {
			return midHistoryMatch("b3"), nil
		},
	}
	model := &MockPredictor{
		PredictFunc: func(row map[string]float64) (float64, error) {
			capturedRow = row
			return 0.123456, nil
		},
	}

	a := testAssembler(client, model)
	result, err := a.LiveGame(context.Background(), "Blue1", "NA1")
	if err != nil {
		t.Fatal(err)
	}

	if !result.InGame || result.GameID != 123 {
		t.Fatalf("result = %+v", result)
	}
	if result.Prediction != 0.1235 {
		t.Errorf("Prediction = %v, want 0.1235", result.Prediction)
	}
	if len(result.Participants) != 10 {
		t.Fatalf("participants = %d, want 10", len(result.Participants))
	}

	wantRoles := []string{"TOP", "JUNGLE", "MIDDLE", "BOTTOM", "UTILITY"}
	for i, want := range wantRoles {
		blue := result.Participants[i]
		if blue.TeamID != 100 || blue.AssignedRole != want {
			t.Errorf("blue[%d] = team %d role %s, want 100 %s", i, blue.TeamID, blue.AssignedRole, want)
		}
		red := result.Participants[i+5]
		if red.TeamID != 200 || red.AssignedRole != want {
			t.Errorf("red[%d] = team %d role %s, want 200 %s", i, red.TeamID, red.AssignedRole, want)
		}
	}

	jng := result.Participants[1]
	if jng.PUUID != "b2" {
		t.Errorf("blue jungler = %s, want the smite holder b2", jng.PUUID)
	}

	top := result.Participants[0]
	if top.SummonerName != "Blue1" || top.TagLine != "NA1" {
		t.Errorf("riot id split = %s#%s", top.SummonerName, top.TagLine)
	}
	if top.Rank.Tier != "GOLD" || top.Rank.Winrate != 60.0 {
		t.Errorf("rank = %+v", top.Rank)
	}
	if top.KeystoneID != 8000 {
		t.Errorf("keystone = %d, want 8000", top.KeystoneID)
	}

	mid := result.Participants[2]
	if len(mid.History) != 1 {
		t.Fatalf("mid history = %d entries, want 1", len(mid.History))
	}
	if mid.Autofilled {
		t.Error("mid autofilled = true with role history present")
	}
	// 6 kills over 30 minutes
	if got := mid.Averages["kills_pm"]; math.Abs(got-0.2) > 1e-9 {
		t.Errorf("mid kills_pm average = %v, want 0.2", got)
	}

	hidden := result.Participants[9]
	if hidden.SummonerName != "Hidden Player" || hidden.Rank.Tier != "UNRANKED" {
		t.Errorf("hidden participant = %+v", hidden)
	}

	if capturedRow == nil {
		t.Fatal("model never invoked")
	}
	if got := capturedRow["diff_middle_kills_pm"]; math.Abs(got-0.2) > 1e-9 {
		t.Errorf("diff_middle_kills_pm = %v, want 0.2", got)
	}
}

func TestLiveGamePlayerFailureDegrades(t *testing.T) {
	client := &MockClient{
		ActiveGameByPUUIDFunc: func(ctx context.Context, puuid string) (*riot.ActiveGame, error) {
			return testGame(), nil
		},
		MatchIDsFunc: func(ctx context.Context, puuid string, start, count, queue int) ([]string, error) {
			return nil, errors.New("upstream 503")
		},
	}

	a := testAssembler(client, nil)
	result, err := a.LiveGame(context.Background(), "Blue1", "NA1")
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range result.Participants {
		if len(p.History) != 0 || p.Rank.Tier != "UNRANKED" {
			t.Errorf("participant %s not degraded: %+v", p.PUUID, p.Rank)
		}
	}
	if result.Prediction != 0.5 {
		t.Errorf("Prediction = %v, want 0.5 without a model", result.Prediction)
	}
}

func TestLiveGameModelFailure(t *testing.T) {
	client := &MockClient{
		ActiveGameByPUUIDFunc: func(ctx context.Context, puuid string) (*riot.ActiveGame, error) {
			return testGame(), nil
		},
	}
	model := &MockPredictor{
		PredictFunc: func(row map[string]float64) (float64, error) {
			return 0, errors.New("bad artifacts")
		},
	}

	a := testAssembler(client, model)
	result, err := a.LiveGame(context.Background(), "Blue1", "NA1")
	if err != nil {
		t.Fatal(err)
	}
	if result.Prediction != 0.5 {
		t.Errorf("Prediction = %v, want 0.5", result.Prediction)
	}
}

func TestPresence(t *testing.T) {
	a := testAssembler(&MockClient{}, nil)

	p, err := a.Presence(context.Background(), "Alice", "NA1")
	if err != nil {
		t.Fatal(err)
	}
	if p.InGame || p.GameName != "Alice" {
		t.Errorf("presence = %+v", p)
	}

	inGame := &MockClient{
		ActiveGameByPUUIDFunc: func(ctx context.Context, puuid string) (*riot.ActiveGame, error) {
			return testGame(), nil
		},
	}
	p, err = testAssembler(inGame, nil).Presence(context.Background(), "Alice", "NA1")
	if err != nil {
		t.Fatal(err)
	}
	if !p.InGame || p.Game == nil {
		t.Errorf("presence = %+v", p)
	}
}

func TestBuildDiffRow(t *testing.T) {
	participants := []Participant{
		{TeamID: 100, AssignedRole: "MIDDLE", Averages: map[string]float64{"kills_pm": 0.3, "cspm": 8}},
		{TeamID: 200, AssignedRole: "MIDDLE", Averages: map[string]float64{"kills_pm": 0.1, "cspm": 7}},
		{TeamID: 100, AssignedRole: "TOP"}, // nil averages contribute zero
	}

	row := BuildDiffRow(participants)

	if got := row["diff_middle_kills_pm"]; math.Abs(got-0.2) > 1e-9 {
		t.Errorf("diff_middle_kills_pm = %v, want 0.2", got)
	}
	if got := row["diff_middle_cspm"]; math.Abs(got-1.0) > 1e-9 {
		t.Errorf("diff_middle_cspm = %v, want 1.0", got)
	}
	if got := row["diff_top_kills_pm"]; got != 0 {
		t.Errorf("diff_top_kills_pm = %v, want 0", got)
	}
}
