// Package features converts raw match telemetry into the fixed-shape numeric
// rows the classifier is trained on: per-participant average rows, per-match
// blue-minus-red diff rows, and recency-weighted history averages.
package features

import "strings"

// Roles lists the canonical positions in fixed order. Diff columns are
// emitted role-major in exactly this order.
var Roles = []string{"TOP", "JUNGLE", "MIDDLE", "BOTTOM", "UTILITY"}

// Team identifiers as used by the upstream API. Blue is the label team:
// ModelRow.BlueWin is 1 when TeamBlue won.
const (
	TeamBlue = 100
	TeamRed  = 200
)

// DiffKeys is the versioned column contract: every numeric metric of an
// AverageRow, in the order it appears in emitted datasets. Changing this
// list or its order invalidates previously trained models.
var DiffKeys = []string{
	// combat impact
	"kills_pm", "deaths_pm", "assists_pm", "kda", "kp", "dmg_share",
	"total_dmg_pm", "true_dmg_pm", "killing_sprees", "bounty_level",

	// economy and growth
	"gold_pm", "gold_share", "gold_spent_pm", "cspm", "lane_cs_10", "items_purchased",

	// defense and safety
	"survived_low_hp", "self_mitigated_pm", "dmg_taken_percentage",
	"time_dead_percentage", "total_heal_pm",

	// objectives and pressure
	"dmg_to_buildings", "dmg_to_objectives", "turret_kills", "obj_stolen",
	"dragon_kills", "baron_kills", "first_blood_kill", "first_tower_kill",
	"turret_plates",

	// utility and vision
	"vspm", "vision_adv", "wards_placed", "wards_killed", "pink_wards",
	"save_ally", "total_cc_pm",

	// skill and pings
	"skillshots_hit", "skillshots_dodged", "enemy_missing_pings",
	"on_my_way_pings", "assist_me_pings",

	// lane gap
	"max_cs_adv_lane", "max_lvl_adv_lane", "lane_gold_exp_adv",
}

// ModelFeatures is the subset of DiffKeys the live classifier consumes.
var ModelFeatures = []string{
	"kills_pm", "deaths_pm", "assists_pm", "kda", "kp",
	"total_dmg_pm", "true_dmg_pm", "cspm", "lane_cs_10",
	"vspm", "wards_placed", "wards_killed", "total_cc_pm",
	"skillshots_hit", "skillshots_dodged",
}

// DiffColumn names the diff feature for one role and metric,
// e.g. "diff_jungle_kills_pm".
func DiffColumn(role, key string) string {
	return "diff_" + strings.ToLower(role) + "_" + key
}

// DiffColumns returns all role x DiffKeys column names in emission order.
func DiffColumns() []string {
	cols := make([]string, 0, len(Roles)*len(DiffKeys))
	for _, role := range Roles {
		for _, k := range DiffKeys {
			cols = append(cols, DiffColumn(role, k))
		}
	}
	return cols
}
