// v2
// internal/chiller/chiller.go

// Package chiller models the container's refrigeration unit: sensible heat
// removal across the coil, condensate extraction when the coil runs below
// the air's dew point, and the power law that maps cooling demand to
// electrical draw under the turbulent cooling performance index.
package chiller

import (
	"math"

	"github.com/hyve-systems-inc/simulations-sub001/internal/physics"
)

const (
	// tcpiFloor keeps the power-law exponent finite when the controller
	// has throttled the index all the way down.
	tcpiFloor = 0.01

	// gateSlope sets how sharply the dehumidification gates switch on.
	gateSlope = 8.0
)

// smooth is a sigmoid gate centered at zero, 0.5*(1+tanh(k*x)). It replaces
// hard cutoffs so the dehumidification rate stays differentiable through
// coil-temperature crossings.
func smooth(x float64) float64 {
	return 0.5 * (1 + math.Tanh(gateSlope*x))
}

// SensibleCooling is the sensible heat removed from a zone's recirculated
// air stream, Qsens = ṁ·cp·(Ta − Tcoil), in W. Negative when the coil is
// warmer than the air, which the caller treats as heating.
func SensibleCooling(airFlow, airSpecificHeat, airTempC, coilTempC float64) float64 {
	return airFlow * airSpecificHeat * (airTempC - coilTempC)
}

// DehumidificationRate is the condensate mass flow at the coil in kg/s.
// Moisture in excess of saturation at the coil surface temperature is
// carried out with the air stream, gated smoothly by the air-to-coil
// temperature difference and by the size of the excess itself.
func DehumidificationRate(airFlow, airTempC, humidityRatio, coilTempC, pressurePa float64) float64 {
	wsatCoil, err := physics.SaturationHumidityRatio(coilTempC, pressurePa)
	if err != nil {
		return 0
	}
	excess := humidityRatio - wsatCoil
	if excess <= 0 {
		return 0
	}
	return airFlow * excess * smooth(airTempC-coilTempC) * smooth(excess)
}

// ActualPower converts a cooling demand into electrical power draw through
// the unit's part-load curve:
//
//	P = Prated · (Qdemand/Qmax)^(1/TCPI)
//
// A low index punishes part-load operation with a steeper curve. The demand
// ratio is clamped to [0,1] and the result to [0, maxPower].
func ActualPower(ratedPower, maxPower, coolingDemand, maxDemand, tcpi float64) float64 {
	if coolingDemand <= 0 || maxDemand <= 0 || ratedPower <= 0 {
		return 0
	}
	ratio := coolingDemand / maxDemand
	if ratio > 1 {
		ratio = 1
	}
	if tcpi < tcpiFloor {
		tcpi = tcpiFloor
	}
	power := ratedPower * math.Pow(ratio, 1/tcpi)
	if power > maxPower {
		power = maxPower
	}
	if power < 0 {
		power = 0
	}
	return power
}
