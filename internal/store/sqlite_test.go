// v1
// internal/store/sqlite_test.go
package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/hyve-systems-inc/simulations-sub001/internal/sim"
)

func testSnapshot(step int, simTime float64) sim.Snapshot {
	return sim.Snapshot{
		RunID:     "run-1",
		Step:      step,
		Timestamp: time.Date(2026, 8, 27, 12, 0, step, 0, time.UTC),
		State: sim.State{
			ProductTemp:     sim.UniformMatrix(2, 2, 18.5),
			ProductMoisture: sim.UniformMatrix(2, 2, 0.79),
			AirTemp:         sim.UniformSlice(2, 14.2),
			AirHumidity:     sim.UniformSlice(2, 0.0075),
			TCPI:            0.91,
			CoolingPower:    6200,
			Time:            simTime,
		},
	}
}

func TestSaveAndLatest(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "snapshots.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	for step := 1; step <= 3; step++ {
		if err := s.Save(ctx, testSnapshot(step, float64(step)*10)); err != nil {
			t.Fatalf("Save step %d: %v", step, err)
		}
	}

	got, err := s.Latest(ctx, "run-1")
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if got.Step != 3 {
		t.Fatalf("latest step = %d, want 3", got.Step)
	}
	if got.State.Time != 30 {
		t.Fatalf("latest sim time = %g, want 30", got.State.Time)
	}
	if got.State.ProductTemp[1][1] != 18.5 || got.State.TCPI != 0.91 {
		t.Fatalf("payload did not round-trip: %+v", got.State)
	}

	n, err := s.Count(ctx, "run-1")
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 3 {
		t.Fatalf("count = %d, want 3", n)
	}
}

func TestSaveReplacesSameStep(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "snapshots.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	if err := s.Save(ctx, testSnapshot(1, 10)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	redo := testSnapshot(1, 10)
	redo.State.TCPI = 0.5
	if err := s.Save(ctx, redo); err != nil {
		t.Fatalf("Save replace: %v", err)
	}
	got, err := s.Latest(ctx, "run-1")
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if got.State.TCPI != 0.5 {
		t.Fatalf("replace did not take: TCPI %g", got.State.TCPI)
	}
}

func TestLatestMissingRun(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "snapshots.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()
	if _, err := s.Latest(context.Background(), "absent"); err == nil {
		t.Fatal("expected error for a run with no snapshots")
	}
}
