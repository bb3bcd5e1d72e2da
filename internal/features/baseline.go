package features

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"sync"
)

// Baselines holds per-role mean model features computed from a harvested
// averages dataset. Used as a stand-in when a live player has no usable
// match history. Safe for concurrent reads.
type Baselines struct {
	mu     sync.RWMutex
	byRole map[string]map[string]float64
}

// LoadBaselines reads an averages CSV and computes the mean of every model
// feature grouped by role.
func LoadBaselines(path string) (*Baselines, error) {
	byRole, err := readBaselineCSV(path)
	if err != nil {
		return nil, err
	}
	return &Baselines{byRole: byRole}, nil
}

// ForRole returns a copy of the baseline features for a role, or an empty map
// for roles absent from the dataset.
func (b *Baselines) ForRole(role string) map[string]float64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make(map[string]float64, len(ModelFeatures))
	for k, v := range b.byRole[role] {
		out[k] = v
	}
	return out
}

// Reload re-reads the dataset, swapping the table atomically on success.
func (b *Baselines) Reload(path string) error {
	byRole, err := readBaselineCSV(path)
	if err != nil {
		return err
	}
	b.mu.Lock()
	b.byRole = byRole
	b.mu.Unlock()
	return nil
}

func readBaselineCSV(path string) (map[string]map[string]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open baselines: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read baselines header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	roleIdx, ok := col["role"]
	if !ok {
		return nil, fmt.Errorf("baselines %s: missing role column", path)
	}
	for _, key := range ModelFeatures {
		if _, ok := col[key]; !ok {
			return nil, fmt.Errorf("baselines %s: missing column %s", path, key)
		}
	}

	sums := make(map[string]map[string]float64)
	counts := make(map[string]int)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read baselines rows: %w", err)
	}
	for _, rec := range records {
		role := rec[roleIdx]
		if sums[role] == nil {
			sums[role] = make(map[string]float64, len(ModelFeatures))
		}
		for _, key := range ModelFeatures {
			v, err := strconv.ParseFloat(rec[col[key]], 64)
			if err != nil {
				return nil, fmt.Errorf("baselines %s: bad value %q for %s: %w", path, rec[col[key]], key, err)
			}
			sums[role][key] += v
		}
		counts[role]++
	}

	byRole := make(map[string]map[string]float64, len(sums))
	for role, s := range sums {
		means := make(map[string]float64, len(ModelFeatures))
		for _, key := range ModelFeatures {
			means[key] = s[key] / float64(counts[role])
		}
		byRole[role] = means
	}
	return byRole, nil
}
