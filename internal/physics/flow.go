// v1
// internal/physics/flow.go
package physics

import (
	"math"
	"math/rand"
)

// Physical constants shared across the transfer correlations.
const (
	AirGasConstant   = 287.05  // J/(kg·K), dry air
	VaporGasConstant = 461.5   // J/(kg·K), water vapor
	AirViscosity     = 1.81e-5 // Pa·s, dynamic viscosity of air in the 0–25 °C range
	LatentHeat       = 2.45e6  // J/kg, vaporization of water

	// reynoldsRef anchors the convective flow enhancement: f(5000) = 1.
	reynoldsRef = 5000.0
)

// AirDensity returns air density (kg/m³) from the ideal gas law at tempC and
// total pressure pressurePa.
func AirDensity(tempC, pressurePa float64) float64 {
	return pressurePa / (AirGasConstant * (tempC + 273.15))
}

// HydraulicDiameter is the equivalent circular-duct diameter (m) for a
// rectangular flow path: Dh = 4·A/P = 2·w·h/(w+h).
func HydraulicDiameter(width, height float64) float64 {
	return 2 * width * height / (width + height)
}

// Reynolds returns ρ·v·Dh/μ for air moving through the packed channel.
func Reynolds(density, velocity, hydraulicDiameter float64) (float64, error) {
	if math.IsNaN(density) || density <= 0 {
		return 0, &DomainError{Quantity: "air density", Value: density, Reason: "must be positive"}
	}
	if math.IsNaN(velocity) || velocity <= 0 {
		return 0, &DomainError{Quantity: "duct velocity", Value: velocity, Reason: "must be positive"}
	}
	if hydraulicDiameter <= 0 {
		return 0, &DomainError{Quantity: "hydraulic diameter", Value: hydraulicDiameter, Reason: "must be positive"}
	}
	return density * velocity * hydraulicDiameter / AirViscosity, nil
}

// TurbulenceIntensity is the empirical duct-flow correlation
//
//	I = 0.16 · Re^(−1/8)
//
// decreasing in Re and undefined for Re ≤ 0.
func TurbulenceIntensity(re float64) (float64, error) {
	if math.IsNaN(re) || re <= 0 {
		return 0, &DomainError{Quantity: "Reynolds number", Value: re, Reason: "correlation requires Re > 0"}
	}
	return 0.16 * math.Pow(re, -1.0/8.0), nil
}

// EffectiveHeatTransfer perturbs the mean convective coefficient by the
// local turbulence level: h = hMean·(1 + α·I·ε) with ε a standard-normal
// sample drawn from rng. When alpha is zero the stochastic path is skipped
// entirely and the result is exactly hMean with no draw from rng, so a
// deterministic run never touches the generator. The result is floored at
// zero; a perturbation cannot turn convection into a heat source.
func EffectiveHeatTransfer(hMean, alpha, intensity float64, rng *rand.Rand) float64 {
	if alpha == 0 {
		return hMean
	}
	h := hMean * (1 + alpha*intensity*rng.NormFloat64())
	if h < 0 {
		h = 0
	}
	return h
}

// FlowEnhancement scales convective transfer with the flow regime:
//
//	f(Re) = (Re/5000)^0.8, f(5000) = 1
//
// Stagnant air (Re ≤ 0) yields zero: no forced convection without flow.
func FlowEnhancement(re float64) float64 {
	if re <= 0 {
		return 0
	}
	return math.Pow(re/reynoldsRef, 0.8)
}
