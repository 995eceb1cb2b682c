// v1
// internal/sim/timestep_test.go
package sim

import (
	"math"
	"testing"
)

func TestStableTimeStepFixture(t *testing.T) {
	dt, err := StableTimeStep(fixtureParams())
	if err != nil {
		t.Fatalf("StableTimeStep: %v", err)
	}
	// The air-renewal bound governs here: 50 kg / (10 · 0.5 kg/s).
	if math.Abs(dt-10) > 1e-9 {
		t.Fatalf("dt = %g, want 10", dt)
	}
}

func TestStableTimeStepWithoutAirflow(t *testing.T) {
	p := fixtureParams()
	p.AirFlow = 0
	dt, err := StableTimeStep(p)
	if err != nil {
		t.Fatalf("StableTimeStep: %v", err)
	}
	// Only the thermal bound remains: 50·3800 / (10·25·20).
	if math.Abs(dt-38) > 1e-9 {
		t.Fatalf("dt = %g, want 38", dt)
	}
}

func TestStabilityNumbersInsideMargins(t *testing.T) {
	p := fixtureParams()
	dt, err := StableTimeStep(p)
	if err != nil {
		t.Fatalf("StableTimeStep: %v", err)
	}
	if cfl := CFLNumber(p, dt); cfl <= 0 || cfl >= 1 {
		t.Fatalf("CFL = %g, want (0,1)", cfl)
	}
	if fo := FourierNumber(p, dt); fo <= 0 || fo >= 0.5 {
		t.Fatalf("Fourier = %g, want (0,0.5)", fo)
	}
	if cfl := CFLNumber(Params{AirFlow: 0}, dt); cfl != 0 {
		t.Fatalf("no airflow must give CFL 0, got %g", cfl)
	}
}

func TestStableTimeStepRejectsInvalidParams(t *testing.T) {
	p := fixtureParams()
	p.SpecificHeat = 0
	if _, err := StableTimeStep(p); err == nil {
		t.Fatal("expected validation error")
	}
}
