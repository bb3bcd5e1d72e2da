package features

// ModelRow is one training example: blue-minus-red metric differences for all
// five role matchups of a single match.
type ModelRow struct {
	RankContext int
	MatchID     string
	BlueWin     int
	Diffs       map[string]float64 // keyed by DiffColumn(role, key)
}

// BuildModelRow folds the ten per-participant rows of a match into one
// blue-minus-red difference row. Returns false if either team is missing a
// role, which happens when the source assigned duplicate positions.
func BuildModelRow(rows []AverageRow) (ModelRow, bool) {
	byTeamRole := make(map[int]map[string]*AverageRow, 2)
	for i := range rows {
		r := &rows[i]
		if byTeamRole[r.TeamID] == nil {
			byTeamRole[r.TeamID] = make(map[string]*AverageRow, len(Roles))
		}
		byTeamRole[r.TeamID][r.Role] = r
	}

	blue, red := byTeamRole[TeamBlue], byTeamRole[TeamRed]
	if len(blue) != len(Roles) || len(red) != len(Roles) {
		return ModelRow{}, false
	}

	diffs := make(map[string]float64, len(Roles)*len(DiffKeys))
	for _, role := range Roles {
		b, r := blue[role], red[role]
		if b == nil || r == nil {
			return ModelRow{}, false
		}
		for _, key := range DiffKeys {
			diffs[DiffColumn(role, key)] = b.Metrics[key] - r.Metrics[key]
		}
	}

	var blueWin int
	if blue[Roles[0]].Win == 1 {
		blueWin = 1
	}

	return ModelRow{
		RankContext: rows[0].RankContext,
		MatchID:     rows[0].MatchID,
		BlueWin:     blueWin,
		Diffs:       diffs,
	}, true
}
