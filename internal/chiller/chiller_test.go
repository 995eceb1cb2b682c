// v1
// internal/chiller/chiller_test.go
package chiller

import (
	"math"
	"testing"
)

func TestSensibleCooling(t *testing.T) {
	got := SensibleCooling(0.25, 1006, 15, 5)
	want := 0.25 * 1006 * 10
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("SensibleCooling = %g, want %g", got, want)
	}
	if q := SensibleCooling(0.25, 1006, 5, 5); q != 0 {
		t.Fatalf("air at coil temperature must exchange nothing, got %g", q)
	}
	if q := SensibleCooling(0.25, 1006, 3, 5); q >= 0 {
		t.Fatalf("coil above air temperature must read negative, got %g", q)
	}
}

func TestDehumidificationRate(t *testing.T) {
	// Dry air holds less moisture than the coil surface can condense out.
	if r := DehumidificationRate(0.5, 15, 0.003, 5, 101325); r != 0 {
		t.Fatalf("subsaturated air must not condense, got %g", r)
	}
	r := DehumidificationRate(0.5, 15, 0.008, 5, 101325)
	if r <= 0 {
		t.Fatalf("humid air over a cold coil must condense, got %g", r)
	}
	// More excess moisture means a larger condensate flow.
	r2 := DehumidificationRate(0.5, 15, 0.012, 5, 101325)
	if r2 <= r {
		t.Fatalf("condensate flow must grow with humidity: %g vs %g", r, r2)
	}
	// Coil warmer than the air gates the rate toward zero.
	gated := DehumidificationRate(0.5, 2, 0.008, 5, 101325)
	if gated >= r {
		t.Fatalf("warm coil must gate condensation down: gated %g open %g", gated, r)
	}
}

func TestActualPowerCurve(t *testing.T) {
	if p := ActualPower(10000, 10000, 0, 10000, 0.9); p != 0 {
		t.Fatalf("no demand must draw no power, got %g", p)
	}
	p := ActualPower(10000, 10000, 5000, 10000, 0.9)
	want := 10000 * math.Pow(0.5, 1/0.9)
	if math.Abs(p-want) > 1e-6 {
		t.Fatalf("part-load power = %g, want %g", p, want)
	}
	// Full demand draws rated power regardless of the index.
	if p := ActualPower(10000, 10000, 10000, 10000, 0.3); math.Abs(p-10000) > 1e-9 {
		t.Fatalf("full demand must draw rated power, got %g", p)
	}
	// Demand past the maximum clamps to the rated point.
	if p := ActualPower(10000, 10000, 20000, 10000, 0.9); math.Abs(p-10000) > 1e-9 {
		t.Fatalf("over-demand must clamp, got %g", p)
	}
	// The index floor keeps the exponent finite.
	p = ActualPower(10000, 10000, 5000, 10000, 0)
	if math.IsInf(p, 0) || math.IsNaN(p) || p < 0 {
		t.Fatalf("floored index must stay finite, got %g", p)
	}
	// A lower index makes part-load operation cheaper on this curve.
	pLow := ActualPower(10000, 10000, 5000, 10000, 0.2)
	pHigh := ActualPower(10000, 10000, 5000, 10000, 0.9)
	if pLow >= pHigh {
		t.Fatalf("steeper part-load curve expected at low index: %g vs %g", pLow, pHigh)
	}
	// maxPower caps the draw when rated exceeds it.
	if p := ActualPower(20000, 10000, 10000, 10000, 0.9); p != 10000 {
		t.Fatalf("maxPower must cap the draw, got %g", p)
	}
}
