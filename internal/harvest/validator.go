package harvest

import (
	"github.com/riftstats/predictor-api/internal/features"
	"github.com/riftstats/predictor-api/internal/riot"
)

// Verdict classifies a candidate match for inclusion in a harvest run.
type Verdict int

const (
	Valid Verdict = iota
	SkipWrongMode
	SkipTooShort
	SkipMissingRoles
	SkipDuplicate
)

func (v Verdict) String() string {
	switch v {
	case Valid:
		return "valid"
	case SkipWrongMode:
		return "wrong_mode"
	case SkipTooShort:
		return "too_short"
	case SkipMissingRoles:
		return "missing_roles"
	case SkipDuplicate:
		return "duplicate"
	default:
		return "unknown"
	}
}

const (
	modeClassic    = "CLASSIC"
	minDurationSec = 900
)

// Validator admits each match at most once per run and rejects matches the
// training set cannot use. Not safe for concurrent use.
type Validator struct {
	seen map[string]struct{}
}

func NewValidator() *Validator {
	return &Validator{seen: make(map[string]struct{})}
}

// Check applies the admission rules in order: duplicate, game mode, duration,
// role coverage. A match is registered as seen only when it is Valid, so a
// rejected id can be re-checked if it appears again in fixed form.
func (v *Validator) Check(m *riot.Match) Verdict {
	if _, dup := v.seen[m.Metadata.MatchID]; dup {
		return SkipDuplicate
	}
	if m.Info.GameMode != modeClassic {
		return SkipWrongMode
	}
	if m.Info.GameDuration < minDurationSec {
		return SkipTooShort
	}
	if !rolesComplete(m.Info.Participants) {
		return SkipMissingRoles
	}
	v.seen[m.Metadata.MatchID] = struct{}{}
	return Valid
}

// rolesComplete verifies each team fields exactly one participant in each of
// the five positions.
func rolesComplete(participants []riot.MatchParticipant) bool {
	if len(participants) != 10 {
		return false
	}
	valid := make(map[string]struct{}, len(features.Roles))
	for _, r := range features.Roles {
		valid[r] = struct{}{}
	}
	counts := make(map[int]map[string]int, 2)
	for i := range participants {
		p := &participants[i]
		if _, ok := valid[p.TeamPosition]; !ok {
			return false
		}
		if counts[p.TeamID] == nil {
			counts[p.TeamID] = make(map[string]int, len(features.Roles))
		}
		counts[p.TeamID][p.TeamPosition]++
	}
	if len(counts) != 2 {
		return false
	}
	for _, roles := range counts {
		for _, r := range features.Roles {
			if roles[r] != 1 {
				return false
			}
		}
	}
	return true
}
