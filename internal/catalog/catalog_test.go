package catalog

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRecordAndListRuns(t *testing.T) {
	db := openTestDB(t)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	first, err := db.RecordRun(Run{
		Tier: "GOLD", RankContext: 4, Players: 500, Matches: 4200,
		AverageRows: 42000, ModelRows: 4100,
		StartedAt: base, FinishedAt: base.Add(time.Hour),
	})
	if err != nil {
		t.Fatal(err)
	}
	if first == "" {
		t.Fatal("RecordRun returned empty id")
	}

	if _, err := db.RecordRun(Run{
		Tier: "PLATINUM", RankContext: 5, Players: 500, Matches: 3900,
		AverageRows: 39000, ModelRows: 3800,
		StartedAt: base.Add(2 * time.Hour), FinishedAt: base.Add(3 * time.Hour),
	}); err != nil {
		t.Fatal(err)
	}

	runs, err := db.Runs()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Fatalf("runs = %d, want 2", len(runs))
	}

	// newest first
	if runs[0].Tier != "PLATINUM" || runs[1].Tier != "GOLD" {
		t.Errorf("order = %s, %s", runs[0].Tier, runs[1].Tier)
	}
	got := runs[1]
	if got.ID != first || got.RankContext != 4 || got.Matches != 4200 || got.ModelRows != 4100 {
		t.Errorf("round trip = %+v", got)
	}
	if !got.StartedAt.Equal(base) || !got.FinishedAt.Equal(base.Add(time.Hour)) {
		t.Errorf("timestamps = %v / %v", got.StartedAt, got.FinishedAt)
	}
}

func TestRunsEmpty(t *testing.T) {
	db := openTestDB(t)

	runs, err := db.Runs()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("runs = %d, want 0", len(runs))
	}
}
