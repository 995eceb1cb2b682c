// v2
// internal/sim/timestep.go
package sim

import (
	"math"

	"github.com/hyve-systems-inc/simulations-sub001/internal/physics"
)

const (
	// safetyFactor divides every characteristic time scale so the run
	// stays well inside CFL = 1 and Fourier = 0.5.
	safetyFactor = 10.0

	// designMaxTemp is the hottest air the sizing assumes, °C. Density
	// is lowest there, so duct velocity is at its worst case.
	designMaxTemp = 50.0
)

// StableTimeStep derives the one fixed step for a run from worst-case
// conditions, not from the current state:
//
//	dt = min(L/(10·v_worst), mp_min·cp/(10·h0·A_max), ma_min/(10·ṁ))
//
// The advective and air-renewal bounds drop out when there is no airflow.
func StableTimeStep(p Params) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}

	dt := math.Inf(1)

	if p.AirFlow > 0 {
		rho := physics.AirDensity(designMaxTemp, p.AmbientPressure)
		vWorst := p.AirFlow / (rho * p.FlowArea())
		dt = math.Min(dt, p.ContainerLength/(safetyFactor*vWorst))

		maMin := math.Inf(1)
		for _, m := range p.AirMass {
			maMin = math.Min(maMin, m)
		}
		dt = math.Min(dt, maMin/(safetyFactor*p.AirFlow))
	}

	mpMin, aMax := productExtremes(p)
	dt = math.Min(dt, mpMin*p.SpecificHeat/(safetyFactor*p.BaseHeatTransfer*aMax))

	if !(dt > 0) || math.IsInf(dt, 0) {
		return 0, &physics.DomainError{Quantity: "time step", Value: dt, Reason: "no finite stability bound"}
	}
	return dt, nil
}

// CFLNumber is the worst-case advective Courant number v·dt/Δx for a zone
// of length L/zones. Zero without airflow.
func CFLNumber(p Params, dt float64) float64 {
	if p.AirFlow <= 0 {
		return 0
	}
	rho := physics.AirDensity(designMaxTemp, p.AmbientPressure)
	v := p.AirFlow / (rho * p.FlowArea())
	dx := p.ContainerLength / float64(p.Zones)
	return v * dt / dx
}

// FourierNumber is the worst-case thermal stability ratio
// h0·A_max·dt/(mp_min·cp) over all product cells.
func FourierNumber(p Params, dt float64) float64 {
	mpMin, aMax := productExtremes(p)
	return p.BaseHeatTransfer * aMax * dt / (mpMin * p.SpecificHeat)
}

func productExtremes(p Params) (mpMin, aMax float64) {
	mpMin = math.Inf(1)
	for i := range p.ProductMass {
		for j := range p.ProductMass[i] {
			mpMin = math.Min(mpMin, p.ProductMass[i][j])
			aMax = math.Max(aMax, p.ProductArea[i][j])
		}
	}
	return mpMin, aMax
}
