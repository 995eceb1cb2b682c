// v1
// internal/physics/heat.go
package physics

import "math"

// RespirationHeat is the metabolic heat generated inside the product (W):
//
//	Q = rRef · exp(k·(T − Tref)) · mass · hResp
//
// Zero mass yields zero; the rate rises monotonically with temperature.
func RespirationHeat(tempC, rRef, k, refTempC, mass, respEnthalpy float64) float64 {
	if mass == 0 {
		return 0
	}
	return rRef * math.Exp(k*(tempC-refTempC)) * mass * respEnthalpy
}

// ConvectiveHeat is the heat flow from product surface to zone air (W),
// positive when the product is warmer than the air. The mean coefficient is
// already turbulence-perturbed (hEff); the position factor captures the
// cell's exposure in the stack, TCPI is the controller state, and the
// Reynolds-referenced enhancement ties the rate to the flow regime.
func ConvectiveHeat(hEff, positionFactor, tcpi, re, area, productTempC, airTempC float64) float64 {
	return hEff * positionFactor * tcpi * FlowEnhancement(re) * area * (productTempC - airTempC)
}

// EvaporativeCooling returns the evaporated mass flux (kg/s) and the latent
// heat it removes from the product surface (W):
//
//	ṅ = hm·A·fw·VPD / (Rv·(T + 273.15)),  Q = ṅ·λ
//
// Zero wetness or zero deficit means no evaporation. A positive flux always
// removes heat from the surface.
func EvaporativeCooling(hm, area, wetness, vpd, surfTempC float64) (massFlux, heat float64) {
	massFlux = hm * area * wetness * vpd / (VaporGasConstant * (surfTempC + 273.15))
	if massFlux < 0 {
		massFlux = 0
	}
	return massFlux, massFlux * LatentHeat
}
