// v3
// internal/sim/engine.go
package sim

import (
	"math"
	"math/rand"

	"github.com/hyve-systems-inc/simulations-sub001/internal/chiller"
	"github.com/hyve-systems-inc/simulations-sub001/internal/kpi"
	"github.com/hyve-systems-inc/simulations-sub001/internal/physics"
)

const (
	tcpiMin = 0.01
	tcpiMax = 1.0
)

// Engine advances a container state by one explicit-Euler step at a time.
// Each step reads only the previous state, so zones carry no read-after-write
// dependency within a step. The turbulence perturbation draws from an
// injected seeded source, never from package-global randomness.
type Engine struct {
	p    Params
	dt   float64
	rng  *rand.Rand
	area float64 // flow cross-section, m²
	dh   float64 // hydraulic diameter, m
}

// NewEngine validates the parameters and fixes the step size. Passing dt = 0
// derives the stable step from worst-case conditions.
func NewEngine(p Params, dt float64, seed int64) (*Engine, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if dt <= 0 {
		derived, err := StableTimeStep(p)
		if err != nil {
			return nil, err
		}
		dt = derived
	}
	return &Engine{
		p:    p,
		dt:   dt,
		rng:  rand.New(rand.NewSource(seed)),
		area: p.FlowArea(),
		dh:   physics.HydraulicDiameter(p.ContainerWidth, p.ContainerHeight),
	}, nil
}

// DT is the fixed step size in seconds.
func (e *Engine) DT() float64 { return e.dt }

// Params returns the run's fixed parameter set.
func (e *Engine) Params() Params { return e.p }

// Step advances the state by dt. The input is never mutated. A non-finite
// result anywhere in the new state fails with an InstabilityError.
func (e *Engine) Step(prev State) (State, error) {
	p := e.p
	if err := prev.CheckShape(p.Zones, p.Layers); err != nil {
		return State{}, err
	}

	next := prev.Clone()
	next.Time = prev.Time + e.dt

	perZoneFlow := p.AirFlow / float64(p.Zones)

	var totalSensible, totalLatent float64

	for i := 0; i < p.Zones; i++ {
		airTemp := prev.AirTemp[i]
		airHum := prev.AirHumidity[i]

		// Flow regime at the zone's previous air temperature. No airflow
		// means no turbulence and no convective enhancement.
		var re, intensity float64
		if p.AirFlow > 0 {
			rho := physics.AirDensity(airTemp, p.AmbientPressure)
			velocity := p.AirFlow / (rho * e.area)
			var err error
			re, err = physics.Reynolds(rho, velocity, e.dh)
			if err != nil {
				return State{}, &InstabilityError{Time: prev.Time, Quantity: "reynolds number"}
			}
			intensity, err = physics.TurbulenceIntensity(re)
			if err != nil {
				return State{}, &InstabilityError{Time: prev.Time, Quantity: "turbulence intensity"}
			}
		}

		var zoneConvective, zoneEvapFlux float64

		for j := 0; j < p.Layers; j++ {
			mass := p.ProductMass[i][j]
			area := p.ProductArea[i][j]
			tp := prev.ProductTemp[i][j]

			hEff := physics.EffectiveHeatTransfer(p.BaseHeatTransfer, p.TurbulenceAlpha, intensity, e.rng)

			qResp := physics.RespirationHeat(tp, p.RespRate, p.RespTempCoeff, p.RespRefTemp, mass, p.RespEnthalpy)
			qConv := physics.ConvectiveHeat(hEff, p.PositionFactor[i][j], prev.TCPI, re, area, tp, airTemp)

			vpd, err := physics.VaporPressureDeficit(tp, p.WaterActivity, airHum, p.AmbientPressure)
			if err != nil {
				return State{}, &InstabilityError{Time: prev.Time, Quantity: "vapor pressure deficit"}
			}
			evapFlux, qEvap := physics.EvaporativeCooling(p.MassTransferCoeff, area, p.SurfaceWetness, vpd, tp)

			next.ProductTemp[i][j] = tp + e.dt*(qResp-qConv-qEvap)/(mass*p.SpecificHeat)
			next.ProductMoisture[i][j] = math.Max(0,
				prev.ProductMoisture[i][j]+e.dt*physics.ProductMoistureRate(evapFlux, mass))

			zoneConvective += qConv
			zoneEvapFlux += evapFlux
		}

		// Cooling-unit exchange for this zone's share of the air stream.
		sensible := chiller.SensibleCooling(perZoneFlow, p.AirSpecificHeat, airTemp, p.CoilTemp)
		dehumFlux := chiller.DehumidificationRate(perZoneFlow, airTemp, airHum, p.CoilTemp, p.AmbientPressure)
		latent := dehumFlux * physics.LatentHeat

		// Inter-zone advection reads the upstream zone's previous air
		// temperature; zone 0 sees its own as an inlet proxy.
		upstream := airTemp
		if i > 0 {
			upstream = prev.AirTemp[i-1]
		}
		advective := p.AirFlow * p.AirSpecificHeat * (upstream - airTemp)

		ventFlux := p.VentilationRate * (p.AmbientHumidity - airHum)

		heatIn := zoneConvective + p.WallHeatGain[i] + advective - sensible
		next.AirTemp[i] = airTemp + e.dt*heatIn/(p.AirMass[i]*p.AirSpecificHeat)

		humidity := airHum + e.dt*physics.AirMoistureRate(zoneEvapFlux, dehumFlux, ventFlux, p.AirMass[i])
		if humidity < 0 {
			humidity = 0
		}
		wsat, err := physics.SaturationHumidityRatio(next.AirTemp[i], p.AmbientPressure)
		if err != nil {
			return State{}, &InstabilityError{Time: next.Time, Quantity: "air temperature"}
		}
		if humidity > wsat {
			// Condensation near the dew point, expected physics.
			humidity = wsat
		}
		next.AirHumidity[i] = humidity

		totalSensible += sensible
		totalLatent += latent
	}

	totalCooling := totalSensible + totalLatent
	next.CoolingPower = chiller.ActualPower(p.RatedCoolingPower, p.MaxCoolingPower, totalCooling, p.MaxCoolingPower, prev.TCPI)

	cop := kpi.CoefficientOfPerformance(totalSensible, totalLatent, next.CoolingPower)
	tcpi := prev.TCPI * (1 + 0.1*(cop/p.TCPITarget-1))
	next.TCPI = math.Min(tcpiMax, math.Max(tcpiMin, tcpi))

	if q, ok := finite(next); !ok {
		return State{}, &InstabilityError{Time: next.Time, Quantity: q}
	}
	return next, nil
}

// finite scans every state field and names the first non-finite quantity.
func finite(s State) (string, bool) {
	bad := func(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }
	for i := range s.ProductTemp {
		for j := range s.ProductTemp[i] {
			if bad(s.ProductTemp[i][j]) {
				return "product temperature", false
			}
			if bad(s.ProductMoisture[i][j]) {
				return "product moisture", false
			}
		}
	}
	for i := range s.AirTemp {
		if bad(s.AirTemp[i]) {
			return "air temperature", false
		}
		if bad(s.AirHumidity[i]) {
			return "air humidity", false
		}
	}
	if bad(s.TCPI) {
		return "tcpi", false
	}
	if bad(s.CoolingPower) {
		return "cooling power", false
	}
	return "", true
}
