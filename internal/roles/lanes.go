// Package roles deduces which canonical role each live-game participant
// occupies, from summoner-spell picks and per-champion lane priors.
package roles

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// Lane prior keys as stored in the lanes file.
const (
	LaneTop     = "TOP"
	LaneJungle  = "JNG"
	LaneMiddle  = "MID"
	LaneBottom  = "BOT"
	LaneSupport = "SUP"
)

// LaneTable maps a champion identifier to its prior probability mass over the
// five lanes. Loaded once at startup and read-only afterwards.
type LaneTable map[string]map[string]float64

// LoadLaneTable reads the champion lane-probability file.
func LoadLaneTable(path string) (LaneTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lane table: %w", err)
	}
	var table LaneTable
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parse lane table: %w", err)
	}
	return table, nil
}

// Lookup returns the lane priors for a champion. Unknown champions get a
// zero distribution so every role scores 0.
func (t LaneTable) Lookup(championID int) map[string]float64 {
	if t == nil {
		return map[string]float64{}
	}
	priors, ok := t[strconv.Itoa(championID)]
	if !ok || priors == nil {
		return map[string]float64{}
	}
	return priors
}
