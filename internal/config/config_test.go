// v1
// internal/config/config_test.go
package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const scenario = `
[container]
zones = 2
layers = 2
length_m = 12

[product]
cell_mass_kg = 50
specific_heat = 3800

[airflow]
mass_flow_kgs = 0.5

[cooling_unit]
coil_temp_c = 5

[initial]
product_temp_c = 20
air_temp_c = 15
tcpi = 0.9
`

func TestLoadScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.ini")
	if err := os.WriteFile(path, []byte(scenario), 0o644); err != nil {
		t.Fatalf("write scenario: %v", err)
	}

	p, s, err := LoadScenario(path)
	if err != nil {
		t.Fatalf("LoadScenario: %v", err)
	}
	if p.Zones != 2 || p.Layers != 2 {
		t.Fatalf("grid = %dx%d, want 2x2", p.Zones, p.Layers)
	}
	if p.ProductMass[1][1] != 50 {
		t.Fatalf("cell mass = %g, want uniform 50", p.ProductMass[1][1])
	}
	// Unspecified keys fall back to defaults.
	if p.AmbientPressure != 101325 {
		t.Fatalf("ambient pressure default = %g", p.AmbientPressure)
	}
	if s.ProductTemp[0][0] != 20 || s.AirTemp[1] != 15 || s.TCPI != 0.9 {
		t.Fatalf("initial state not honored: %+v", s)
	}
	if err := s.CheckShape(p.Zones, p.Layers); err != nil {
		t.Fatalf("loaded state shape: %v", err)
	}
}

func TestLoadScenarioMissingFile(t *testing.T) {
	if _, _, err := LoadScenario(filepath.Join(t.TempDir(), "absent.ini")); err == nil {
		t.Fatal("expected error for a missing scenario file")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("COLDSIM_BIND_ADDR", "")
	t.Setenv("COLDSIM_STEPS", "not-a-number")
	t.Setenv("KAFKA_BROKERS", "broker1:9092, broker2:9092")

	cfg := FromEnv(discardLogger())
	if cfg.BindAddr != ":8080" {
		t.Fatalf("bind addr default = %q", cfg.BindAddr)
	}
	if cfg.Steps != 360 {
		t.Fatalf("bad integer must fall back to default, got %d", cfg.Steps)
	}
	if len(cfg.KafkaBrokers) != 2 || cfg.KafkaBrokers[1] != "broker2:9092" {
		t.Fatalf("brokers = %v", cfg.KafkaBrokers)
	}
}
