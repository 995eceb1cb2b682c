// v1
// internal/physics/psychro.go

// Package physics holds the empirical correlations the evolution engine is
// built from: psychrometrics, turbulent duct flow, and the heat and mass
// transfer rate equations. Every function is pure. Temperatures are °C,
// pressures Pa, humidity ratios kg water per kg dry air unless noted.
package physics

import "math"

const (
	// Magnus-Tetens saturation vapor pressure constants.
	magnusA = 611.2 // Pa
	magnusB = 17.67
	magnusC = 243.5 // °C

	// epsilonRatio is the molecular weight ratio of water vapor to dry air.
	epsilonRatio = 0.622

	// humidityTol is the slack allowed before a humidity ratio above
	// saturation counts as invalid.
	humidityTol = 1e-9
)

// SaturationPressure returns the saturation vapor pressure (Pa) over water
// at tempC using the Magnus-Tetens correlation:
//
//	psat = 611.2 · exp(17.67·T / (T + 243.5))
func SaturationPressure(tempC float64) float64 {
	return magnusA * math.Exp(magnusB*tempC/(tempC+magnusC))
}

// SaturationHumidityRatio returns the humidity ratio of saturated air at
// tempC under total pressure pressurePa:
//
//	wsat = 0.622 · psat / (P − psat)
//
// It fails with a DomainError when tempC is not finite or when the total
// pressure does not exceed the saturation pressure, where the ratio is
// undefined.
func SaturationHumidityRatio(tempC, pressurePa float64) (float64, error) {
	if math.IsNaN(tempC) || math.IsInf(tempC, 0) {
		return 0, &DomainError{Quantity: "temperature", Value: tempC, Reason: "not finite"}
	}
	psat := SaturationPressure(tempC)
	if pressurePa <= psat {
		return 0, &DomainError{Quantity: "pressure", Value: pressurePa, Reason: "at or below saturation pressure"}
	}
	return epsilonRatio * psat / (pressurePa - psat), nil
}

// VaporPressure converts a humidity ratio back to the partial pressure of
// water vapor (Pa) in air at total pressure pressurePa.
func VaporPressure(w, pressurePa float64) float64 {
	return w * pressurePa / (epsilonRatio + w)
}

// VaporPressureDeficit is the driving force (Pa) for evaporative moisture
// loss from a wet product surface at surfTempC with water activity aw into
// air carrying humidity ratio w. It grows with surface temperature and
// shrinks to zero as the air approaches saturation at surface conditions;
// negative deficits (condensing conditions) are reported as zero.
func VaporPressureDeficit(surfTempC, aw, w, pressurePa float64) (float64, error) {
	if math.IsNaN(surfTempC) || math.IsInf(surfTempC, 0) {
		return 0, &DomainError{Quantity: "surface temperature", Value: surfTempC, Reason: "not finite"}
	}
	deficit := SaturationPressure(surfTempC)*aw - VaporPressure(w, pressurePa)
	if deficit < 0 {
		deficit = 0
	}
	return deficit, nil
}

// HumidityValid reports whether w is a physically admissible humidity ratio
// for air at tempC: non-negative and at most the saturation ratio (within a
// small tolerance).
func HumidityValid(w, tempC, pressurePa float64) bool {
	if w < 0 {
		return false
	}
	wsat, err := SaturationHumidityRatio(tempC, pressurePa)
	if err != nil {
		return false
	}
	return w <= wsat+humidityTol
}
