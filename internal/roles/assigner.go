package roles

// Role is one of the five canonical positions of a 5v5 match.
type Role string

const (
	Top     Role = "TOP"
	Jungle  Role = "JUNGLE"
	Middle  Role = "MIDDLE"
	Bottom  Role = "BOTTOM"
	Utility Role = "UTILITY"
)

// Canonical lists the five roles in fixed lane order.
var Canonical = []Role{Top, Jungle, Middle, Bottom, Utility}

// SmiteID is the jungle-clearing summoner spell.
const SmiteID = 11

// laneKey maps a canonical role to its key in the lane-prior table.
var laneKey = map[Role]string{
	Top:     LaneTop,
	Jungle:  LaneJungle,
	Middle:  LaneMiddle,
	Bottom:  LaneBottom,
	Utility: LaneSupport,
}

// nonJungle are the four roles filled by permutation search after the
// jungler is locked.
var nonJungle = []Role{Top, Middle, Bottom, Utility}

// Candidate is one team member as seen by the assigner: the two summoner
// spells and the champion's lane priors. Priors may be nil or partial;
// missing entries count as probability 0.
type Candidate struct {
	Spell1ID int
	Spell2ID int
	Priors   map[string]float64
}

func (c *Candidate) prior(r Role) float64 {
	if c.Priors == nil {
		return 0
	}
	return c.Priors[laneKey[r]]
}

func (c *Candidate) hasSmite() bool {
	return c.Spell1ID == SmiteID || c.Spell2ID == SmiteID
}

// Assign maps each canonical role to the index of the team member occupying
// it, or -1 when fewer than five candidates were supplied. The function is
// pure and deterministic: ties in the permutation search are broken by the
// first permutation in enumeration order.
//
// The jungler is the sole smite holder if exactly one exists; otherwise the
// candidate with the highest jungle prior. The remaining candidates are
// placed by exhaustive search over the 24 permutations of the non-jungle
// roles, maximizing the sum of assigned priors.
func Assign(team []Candidate) map[Role]int {
	assigned := make(map[Role]int, len(Canonical))
	for _, r := range Canonical {
		assigned[r] = -1
	}
	if len(team) == 0 {
		return assigned
	}

	jngIdx := pickJungler(team)
	assigned[Jungle] = jngIdx

	// Remaining candidates keep their input order.
	var rest []int
	for i := range team {
		if i != jngIdx {
			rest = append(rest, i)
		}
	}
	if len(rest) > len(nonJungle) {
		rest = rest[:len(nonJungle)]
	}

	bestScore := -1.0
	var bestOrder []Role
	for _, order := range rolePermutations {
		score := 0.0
		for i := range rest {
			score += team[rest[i]].prior(order[i])
		}
		if score > bestScore {
			bestScore = score
			bestOrder = order[:]
		}
	}

	for i := range rest {
		assigned[bestOrder[i]] = rest[i]
	}
	return assigned
}

// pickJungler returns the index of the jungle occupant: the unique smite
// holder if there is exactly one, else the highest jungle prior.
func pickJungler(team []Candidate) int {
	smiteIdx := -1
	smiteCount := 0
	for i := range team {
		if team[i].hasSmite() {
			smiteCount++
			smiteIdx = i
		}
	}
	if smiteCount == 1 {
		return smiteIdx
	}

	best := 0
	for i := 1; i < len(team); i++ {
		if team[i].prior(Jungle) > team[best].prior(Jungle) {
			best = i
		}
	}
	return best
}

// rolePermutations enumerates all orderings of the non-jungle roles in a
// fixed order, so tie-breaking is stable across runs.
var rolePermutations = permute(nonJungle)

func permute(rs []Role) [][]Role {
	if len(rs) == 1 {
		return [][]Role{{rs[0]}}
	}
	var out [][]Role
	for i, r := range rs {
		rest := make([]Role, 0, len(rs)-1)
		rest = append(rest, rs[:i]...)
		rest = append(rest, rs[i+1:]...)
		for _, tail := range permute(rest) {
			out = append(out, append([]Role{r}, tail...))
		}
	}
	return out
}
