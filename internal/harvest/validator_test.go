package harvest

import (
	"fmt"
	"testing"

	"github.com/riftstats/predictor-api/internal/features"
	"github.com/riftstats/predictor-api/internal/riot"
)

func validMatch(id string) *riot.Match {
	parts := make([]riot.MatchParticipant, 0, 10)
	for _, teamID := range []int{100, 200} {
		for _, role := range features.Roles {
			parts = append(parts, riot.MatchParticipant{
				PUUID:        fmt.Sprintf("p-%d-%s", teamID, role),
				TeamID:       teamID,
				TeamPosition: role,
				Win:          teamID == 100,
			})
		}
	}
	return &riot.Match{
		Metadata: riot.MatchMetadata{MatchID: id},
		Info: riot.MatchInfo{
			GameMode:     "CLASSIC",
			GameDuration: 1500,
			Participants: parts,
		},
	}
}

func TestValidatorCheck(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*riot.Match)
		want   Verdict
	}{
		{
			name:   "Valid",
			mutate: func(m *riot.Match) {},
			want:   Valid,
		},
		{
			name:   "ARAM",
			mutate: func(m *riot.Match) { m.Info.GameMode = "ARAM" },
			want:   SkipWrongMode,
		},
		{
			name:   "Remake",
			mutate: func(m *riot.Match) { m.Info.GameDuration = 240 },
			want:   SkipTooShort,
		},
		{
			name:   "ExactlyFifteenMinutes",
			mutate: func(m *riot.Match) { m.Info.GameDuration = 900 },
			want:   Valid,
		},
		{
			name:   "DuplicatedPosition",
			mutate: func(m *riot.Match) { m.Info.Participants[0].TeamPosition = "MIDDLE" },
			want:   SkipMissingRoles,
		},
		{
			name:   "EmptyPosition",
			mutate: func(m *riot.Match) { m.Info.Participants[3].TeamPosition = "" },
			want:   SkipMissingRoles,
		},
		{
			name:   "NinePlayers",
			mutate: func(m *riot.Match) { m.Info.Participants = m.Info.Participants[:9] },
			want:   SkipMissingRoles,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validMatch("NA1_1")
			tt.mutate(m)

			got := NewValidator().Check(m)
			if got != tt.want {
				t.Errorf("Check() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidatorDeduplication(t *testing.T) {
	v := NewValidator()

	if got := v.Check(validMatch("NA1_1")); got != Valid {
		t.Fatalf("first check = %v", got)
	}
	if got := v.Check(validMatch("NA1_1")); got != SkipDuplicate {
		t.Errorf("second check = %v, want SkipDuplicate", got)
	}
	if got := v.Check(validMatch("NA1_2")); got != Valid {
		t.Errorf("distinct match = %v, want Valid", got)
	}
}

func TestValidatorRejectedMatchesNotRegistered(t *testing.T) {
	v := NewValidator()

	short := validMatch("NA1_1")
	short.Info.GameDuration = 600
	if got := v.Check(short); got != SkipTooShort {
		t.Fatalf("short check = %v", got)
	}

	// same id in valid form is admitted: rejection must not mark it seen
	if got := v.Check(validMatch("NA1_1")); got != Valid {
		t.Errorf("recheck = %v, want Valid", got)
	}
}
