package features

import (
	"math"

	"github.com/riftstats/predictor-api/internal/riot"
)

// HistoryEntry summarizes one past match of a player, newest first in a
// history slice. The JSON shape is what the live-game endpoints return;
// Features carries the model metric set and is never serialized.
type HistoryEntry struct {
	Win               bool    `json:"win"`
	Champion          string  `json:"champion"`
	ChampionID        int     `json:"championId"`
	TeamPosition      string  `json:"teamPosition"`
	EnemyLaner        int     `json:"enemyLaner"`
	ChampLevel        int     `json:"champLevel"`
	Kills             int     `json:"kills"`
	Deaths            int     `json:"deaths"`
	Assists           int     `json:"assists"`
	KillParticipation float64 `json:"kill_participation"`
	GoldEarned        int     `json:"gold_earned"`
	GoldShare         float64 `json:"gold_share"`
	CSPerMin          float64 `json:"cs_per_min"`
	DamageShare       float64 `json:"dmg_share"`
	TurretKills       int     `json:"turret_kills"`
	WardsPlaced       int     `json:"wards_placed"`
	WardsKilled       int     `json:"wards_killed"`
	TotalDamage       int     `json:"total_damage_dealt_to_champions"`
	TrueDamage        int     `json:"true_damage_dealt_to_champions"`
	TotalTimeCCDealt  int     `json:"total_time_cc_dealt"`
	KDA               float64 `json:"kda"`
	Items             []int   `json:"items"`
	Spell1            int     `json:"spell1"`
	Spell2            int     `json:"spell2"`
	PrimaryStyle      int     `json:"primaryStyle"`
	SubStyle          int     `json:"subStyle"`
	KeystoneID        int     `json:"keystoneId"`
	TimePlayed        int     `json:"timePlayed"`
	GameDuration      int64   `json:"game_duration"`
	GameEndTimestamp  int64   `json:"game_end_timestamp"`

	Features map[string]float64 `json:"-"`
}

// BuildHistoryEntry extracts the given player's line from a completed match.
// Share percentages are rounded to 1 decimal; a missing lane opponent leaves
// EnemyLaner at -1. Returns false when the player did not take part in the
// match.
func BuildHistoryEntry(m *riot.Match, puuid string) (HistoryEntry, bool) {
	var p *riot.MatchParticipant
	for i := range m.Info.Participants {
		if m.Info.Participants[i].PUUID == puuid {
			p = &m.Info.Participants[i]
			break
		}
	}
	if p == nil {
		return HistoryEntry{}, false
	}

	team := TeamAggregates(m.Info.Participants)[p.TeamID]
	durMin := float64(m.Info.GameDuration) / 60.0

	enemyLaner := -1
	if p.TeamPosition != "" && p.TeamPosition != "NONE" {
		for i := range m.Info.Participants {
			o := &m.Info.Participants[i]
			if o.TeamID != p.TeamID && o.TeamPosition == p.TeamPosition {
				enemyLaner = o.ChampionID
				break
			}
		}
	}

	row := BuildAverageRow(p, team, m.Info.GameDuration, 0, m.Metadata.MatchID)

	e := HistoryEntry{
		Win:               p.Win,
		Champion:          p.ChampionName,
		ChampionID:        p.ChampionID,
		TeamPosition:      p.TeamPosition,
		EnemyLaner:        enemyLaner,
		ChampLevel:        p.ChampLevel,
		Kills:             p.Kills,
		Deaths:            p.Deaths,
		Assists:           p.Assists,
		KillParticipation: roundPct(float64(p.Kills+p.Assists), float64(team.Kills)),
		GoldEarned:        p.GoldEarned,
		GoldShare:         roundPct(float64(p.GoldEarned), float64(team.Gold)),
		CSPerMin:          perMinute(float64(p.CS()), durMin),
		DamageShare:       roundPct(float64(p.TotalDamageDealtToChampions), float64(team.Damage)),
		TurretKills:       p.TurretKills,
		WardsPlaced:       p.WardsPlaced,
		WardsKilled:       p.WardsKilled,
		TotalDamage:       p.TotalDamageDealtToChampions,
		TrueDamage:        p.TrueDamageDealtToChampions,
		TotalTimeCCDealt:  p.TotalTimeCCDealt,
		KDA:               kdaRatio(p.Kills, p.Deaths, p.Assists),
		Items:             p.Items(),
		Spell1:            p.Summoner1ID,
		Spell2:            p.Summoner2ID,
		TimePlayed:        p.TimePlayed,
		GameDuration:      m.Info.GameDuration,
		GameEndTimestamp:  m.Info.GameEndTimestamp,
		Features:          row.Metrics,
	}
	if len(p.Perks.Styles) > 0 {
		e.PrimaryStyle = p.Perks.Styles[0].Style
		if len(p.Perks.Styles[0].Selections) > 0 {
			e.KeystoneID = p.Perks.Styles[0].Selections[0].Perk
		}
	}
	if len(p.Perks.Styles) > 1 {
		e.SubStyle = p.Perks.Styles[1].Style
	}
	return e, true
}

// WeightedRoleAverage averages the model features of the matches a player
// played in the target role, weighted 1/(i+1) newest first. When the player
// has no history in that role the rank baseline is returned and autofilled
// is true; a nil baseline yields a nil map.
func WeightedRoleAverage(history []HistoryEntry, role string, baseline map[string]float64) (map[string]float64, bool) {
	var totalWeight float64
	sums := make(map[string]float64, len(ModelFeatures))
	i := 0
	for _, e := range history {
		if e.TeamPosition != role || e.Features == nil {
			continue
		}
		w := 1.0 / float64(i+1)
		totalWeight += w
		for _, key := range ModelFeatures {
			sums[key] += e.Features[key] * w
		}
		i++
	}
	if totalWeight == 0 {
		if len(baseline) == 0 {
			return nil, true
		}
		out := make(map[string]float64, len(ModelFeatures))
		for _, key := range ModelFeatures {
			out[key] = baseline[key]
		}
		return out, true
	}
	for _, key := range ModelFeatures {
		sums[key] /= totalWeight
	}
	return sums, false
}

func roundPct(v, total float64) float64 {
	if total < 1 {
		total = 1
	}
	return math.Round(v/total*1000) / 10
}

func kdaRatio(kills, deaths, assists int) float64 {
	if deaths < 1 {
		deaths = 1
	}
	return float64(kills+assists) / float64(deaths)
}
