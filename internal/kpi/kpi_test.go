// v1
// internal/kpi/kpi_test.go
package kpi

import (
	"math"
	"testing"
)

func TestCoefficientOfPerformance(t *testing.T) {
	if cop := CoefficientOfPerformance(3000, 500, 0); cop != 0 {
		t.Fatalf("zero power must give COP 0, got %g", cop)
	}
	cop := CoefficientOfPerformance(3000, 500, 1000)
	if math.Abs(cop-3.5) > 1e-12 {
		t.Fatalf("COP = %g, want 3.5", cop)
	}
}

func TestUniformityIndex(t *testing.T) {
	if u := UniformityIndex([]float64{120, 120, 120, 120, 120}); u != 0 {
		t.Fatalf("identical values must be perfectly uniform, got %g", u)
	}
	u := UniformityIndex([]float64{120, 130, 125, 115, 135})
	if math.Abs(u-0.0566) > 1e-4 {
		t.Fatalf("uniformity = %.5f, want ≈0.0566", u)
	}
	if u := UniformityIndex([]float64{42}); u != 0 {
		t.Fatalf("single sample must give 0, got %g", u)
	}
	if u := UniformityIndex(nil); u != 0 {
		t.Fatalf("no samples must give 0, got %g", u)
	}
	if u := UniformityIndex([]float64{-1, 1}); u != 0 {
		t.Fatalf("zero mean must give 0, got %g", u)
	}
}

func TestCoolingRateIndex(t *testing.T) {
	// Fresh product at initial temperature over supply-temperature air.
	if c := CoolingRateIndex(20, 5, 20, 5); math.Abs(c-1) > 1e-12 {
		t.Fatalf("initial index = %g, want 1", c)
	}
	// Fully relaxed product reads 0.
	if c := CoolingRateIndex(5, 5, 20, 5); c != 0 {
		t.Fatalf("relaxed index = %g, want 0", c)
	}
	if c := CoolingRateIndex(20, 5, 10, 10); c != 0 {
		t.Fatalf("degenerate span must give 0, got %g", c)
	}
	mid := CoolingRateIndex(12, 6, 20, 5)
	if mid <= 0 || mid >= 1 {
		t.Fatalf("mid-cooling index must sit in (0,1), got %g", mid)
	}
}
