package features

import "github.com/riftstats/predictor-api/internal/riot"

// TeamAggregate holds the per-team totals a participant's share metrics are
// computed against. Transient: derived per match, never persisted.
type TeamAggregate struct {
	Gold   int
	Damage int
	Kills  int
}

// TeamAggregates sums gold, champion damage and kills for both teams of a match.
func TeamAggregates(participants []riot.MatchParticipant) map[int]TeamAggregate {
	aggs := make(map[int]TeamAggregate, 2)
	for i := range participants {
		p := &participants[i]
		agg := aggs[p.TeamID]
		agg.Gold += p.GoldEarned
		agg.Damage += p.TotalDamageDealtToChampions
		agg.Kills += p.Kills
		aggs[p.TeamID] = agg
	}
	return aggs
}

// AverageRow is one participant's fixed metric set for one match, plus the
// identifying keys carried into the averages dataset. Immutable once built.
type AverageRow struct {
	RankContext int
	MatchID     string
	TeamID      int
	Role        string
	Win         int
	Metrics     map[string]float64 // keyed by DiffKeys
}

// BuildAverageRow maps one participant of a completed match onto the fixed
// metric set. Per-minute metrics are 0 when the duration is not positive;
// share metrics are 0 when the team total is 0.
func BuildAverageRow(p *riot.MatchParticipant, team TeamAggregate, durationSec int64, rankContext int, matchID string) AverageRow {
	durMin := float64(durationSec) / 60.0
	ch := &p.Challenges

	win := 0
	if p.Win {
		win = 1
	}

	m := map[string]float64{
		// combat impact
		"kills_pm":       perMinute(float64(p.Kills), durMin),
		"deaths_pm":      perMinute(float64(p.Deaths), durMin),
		"assists_pm":     perMinute(float64(p.Assists), durMin),
		"kda":            ch.KDA,
		"kp":             ch.KillParticipation,
		"dmg_share":      share(float64(p.TotalDamageDealtToChampions), float64(team.Damage)),
		"total_dmg_pm":   perMinute(float64(p.TotalDamageDealtToChampions), durMin),
		"true_dmg_pm":    perMinute(float64(p.TrueDamageDealtToChampions), durMin),
		"killing_sprees": float64(p.KillingSprees),
		"bounty_level":   float64(p.BountyLevel),

		// economy and growth
		"gold_pm":         ch.GoldPerMinute,
		"gold_share":      share(float64(p.GoldEarned), float64(team.Gold)),
		"gold_spent_pm":   perMinute(float64(p.GoldSpent), durMin),
		"cspm":            perMinute(float64(p.CS()), durMin),
		"lane_cs_10":      ch.LaneMinionsFirst10Minutes,
		"items_purchased": float64(p.ItemsPurchased),

		// defense and safety
		"survived_low_hp":      ch.SurvivedSingleDigitHpCount,
		"self_mitigated_pm":    perMinute(float64(p.DamageSelfMitigated), durMin),
		"dmg_taken_percentage": ch.DamageTakenOnTeamPercentage,
		"time_dead_percentage": share(float64(p.TotalTimeSpentDead), float64(durationSec)),
		"total_heal_pm":        perMinute(float64(p.TotalHeal), durMin),

		// objectives and pressure
		"dmg_to_buildings":  float64(p.DamageDealtToBuildings),
		"dmg_to_objectives": float64(p.DamageDealtToObjectives),
		"turret_kills":      float64(p.TurretKills),
		"obj_stolen":        float64(p.ObjectivesStolen + p.ObjectivesStolenAssists),
		"dragon_kills":      float64(p.DragonKills),
		"baron_kills":       float64(p.BaronKills),
		"first_blood_kill":  boolMetric(p.FirstBloodKill),
		"first_tower_kill":  boolMetric(p.FirstTowerKill),
		"turret_plates":     ch.TurretPlatesTaken,

		// utility and vision
		"vspm":         ch.VisionScorePerMinute,
		"vision_adv":   ch.VisionScoreAdvantageLaneOpponent,
		"wards_placed": float64(p.WardsPlaced),
		"wards_killed": float64(p.WardsKilled),
		"pink_wards":   ch.ControlWardsPlaced,
		"save_ally":    ch.SaveAllyFromDeath,
		"total_cc_pm":  perMinute(float64(p.TotalTimeCCDealt), durMin),

		// skill and pings
		"skillshots_hit":      ch.SkillshotsHit,
		"skillshots_dodged":   ch.SkillshotsDodged,
		"enemy_missing_pings": float64(p.EnemyMissingPings),
		"on_my_way_pings":     float64(p.OnMyWayPings),
		"assist_me_pings":     float64(p.AssistMePings),

		// lane gap
		"max_cs_adv_lane":   ch.MaxCsAdvantageOnLaneOpponent,
		"max_lvl_adv_lane":  ch.MaxLevelLeadLaneOpponent,
		"lane_gold_exp_adv": ch.LaningPhaseGoldExpAdvantage,
	}

	return AverageRow{
		RankContext: rankContext,
		MatchID:     matchID,
		TeamID:      p.TeamID,
		Role:        p.TeamPosition,
		Win:         win,
		Metrics:     m,
	}
}

func perMinute(v, durMin float64) float64 {
	if durMin <= 0 {
		return 0
	}
	return v / durMin
}

func share(v, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return v / total
}

func boolMetric(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
