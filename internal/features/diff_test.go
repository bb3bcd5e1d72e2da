package features

import "testing"

func fullMatchRows(blueWins bool) []AverageRow {
	rows := make([]AverageRow, 0, 10)
	for _, teamID := range []int{TeamBlue, TeamRed} {
		win := 0
		if (teamID == TeamBlue) == blueWins {
			win = 1
		}
		for _, role := range Roles {
			metrics := make(map[string]float64, len(DiffKeys))
			for _, key := range DiffKeys {
				if teamID == TeamBlue {
					metrics[key] = 2
				} else {
					metrics[key] = 0.5
				}
			}
			rows = append(rows, AverageRow{
				RankContext: 4,
				MatchID:     "NA1_1",
				TeamID:      teamID,
				Role:        role,
				Win:         win,
				Metrics:     metrics,
			})
		}
	}
	return rows
}

func TestBuildModelRow(t *testing.T) {
	row, ok := BuildModelRow(fullMatchRows(true))
	if !ok {
		t.Fatal("BuildModelRow returned !ok for a complete match")
	}
	if row.BlueWin != 1 {
		t.Errorf("BlueWin = %d, want 1", row.BlueWin)
	}
	if row.RankContext != 4 || row.MatchID != "NA1_1" {
		t.Errorf("identity = %+v", row)
	}
	if len(row.Diffs) != len(Roles)*len(DiffKeys) {
		t.Fatalf("diff count = %d, want %d", len(row.Diffs), len(Roles)*len(DiffKeys))
	}
	for col, v := range row.Diffs {
		if v != 1.5 {
			t.Errorf("%s = %v, want 1.5", col, v)
		}
	}
}

func TestBuildModelRowRedWin(t *testing.T) {
	row, ok := BuildModelRow(fullMatchRows(false))
	if !ok {
		t.Fatal("BuildModelRow returned !ok")
	}
	if row.BlueWin != 0 {
		t.Errorf("BlueWin = %d, want 0", row.BlueWin)
	}
}

func TestBuildModelRowIncompleteRoles(t *testing.T) {
	rows := fullMatchRows(true)

	// duplicate a role on blue side, losing MIDDLE
	rows[2].Role = rows[1].Role

	if _, ok := BuildModelRow(rows); ok {
		t.Error("expected !ok for duplicated role")
	}

	if _, ok := BuildModelRow(rows[:9]); ok {
		t.Error("expected !ok for nine rows")
	}
}
