// v0
// internal/physics/mass.go
package physics

// ProductMoistureRate is the drying rate of one product cell, per kg of dry
// matter: dw/dt = −ṅ/m. Moisture only leaves the product.
func ProductMoistureRate(evapFlux, mass float64) float64 {
	if mass <= 0 {
		return 0
	}
	return -evapFlux / mass
}

// AirMoistureRate balances evaporation from the product, condensation at the
// cooling coil and ventilation exchange over a zone's air mass:
//
//	dw/dt = (ṅevap − ṅdehum + ṅvent) / ma
func AirMoistureRate(evapFlux, dehumFlux, ventFlux, airMass float64) float64 {
	if airMass <= 0 {
		return 0
	}
	return (evapFlux - dehumFlux + ventFlux) / airMass
}
