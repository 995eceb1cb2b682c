// v2
// internal/sim/params.go
package sim

import (
	"fmt"
	"math"

	"github.com/hyve-systems-inc/simulations-sub001/internal/physics"
)

// Params are the fixed properties of one run: container geometry, commodity
// thermophysics, airflow, cooling unit ratings and controller tuning. They
// never change between steps.
type Params struct {
	Zones  int
	Layers int

	// Container geometry, m. Air flows along the length; width and height
	// define the free flow cross-section.
	ContainerLength float64
	ContainerWidth  float64
	ContainerHeight float64

	// Per-cell commodity properties, [zone][layer].
	ProductMass    [][]float64 // kg
	ProductArea    [][]float64 // m²
	PositionFactor [][]float64 // dimensionless exposure weight

	SpecificHeat float64 // J/(kg·K)

	// Respiration model.
	RespRate      float64 // W/kg reference rate
	RespTempCoeff float64 // 1/K exponential sensitivity
	RespRefTemp   float64 // °C
	RespEnthalpy  float64 // J/kg dimensionalizing factor

	// Evaporation model.
	WaterActivity     float64
	MassTransferCoeff float64 // kg/(m²·s·Pa) scaled
	SurfaceWetness    float64 // fraction of area behaving wet

	// Air side.
	AirMass         []float64 // kg per zone
	AirFlow         float64   // kg/s through the whole container
	AirSpecificHeat float64   // J/(kg·K)

	BaseHeatTransfer float64 // W/(m²·K) mean convective coefficient

	// Cooling unit.
	RatedCoolingPower float64 // W
	MaxCoolingPower   float64 // W
	CoilTemp          float64 // °C

	// Controller.
	TCPITarget      float64 // target COP for the index update
	TurbulenceAlpha float64 // sensitivity of h to turbulence perturbation

	AmbientPressure float64 // Pa
	AmbientHumidity float64 // kg/kg of infiltration air

	VentilationRate float64   // kg/s of humidity exchange with ambient
	WallHeatGain    []float64 // W per zone
}

// FlowArea is the free cross-section the air stream moves through, m².
func (p Params) FlowArea() float64 {
	return p.ContainerWidth * p.ContainerHeight
}

// Validate checks the parameter set for physically impossible values. The
// engine refuses to start on a set that fails here.
func (p Params) Validate() error {
	if p.Zones < 1 {
		return &physics.DomainError{Quantity: "zones", Value: float64(p.Zones), Reason: "at least one zone required"}
	}
	if p.Layers < 1 {
		return &physics.DomainError{Quantity: "layers", Value: float64(p.Layers), Reason: "at least one layer required"}
	}
	if p.ContainerLength <= 0 || p.ContainerWidth <= 0 || p.ContainerHeight <= 0 {
		return &physics.DomainError{Quantity: "container geometry", Value: p.ContainerLength, Reason: "dimensions must be positive"}
	}
	if len(p.ProductMass) != p.Zones || len(p.ProductArea) != p.Zones || len(p.PositionFactor) != p.Zones {
		return &physics.DomainError{Quantity: "product matrices", Value: float64(len(p.ProductMass)), Reason: "zone count mismatch"}
	}
	for i := 0; i < p.Zones; i++ {
		if len(p.ProductMass[i]) != p.Layers || len(p.ProductArea[i]) != p.Layers || len(p.PositionFactor[i]) != p.Layers {
			return &physics.DomainError{Quantity: "product matrices", Value: float64(i), Reason: "layer count mismatch"}
		}
		for j := 0; j < p.Layers; j++ {
			if p.ProductMass[i][j] <= 0 {
				return &physics.DomainError{Quantity: "product mass", Value: p.ProductMass[i][j], Reason: "must be positive"}
			}
			if p.ProductArea[i][j] <= 0 {
				return &physics.DomainError{Quantity: "product area", Value: p.ProductArea[i][j], Reason: "must be positive"}
			}
		}
	}
	if len(p.AirMass) != p.Zones || len(p.WallHeatGain) != p.Zones {
		return &physics.DomainError{Quantity: "air vectors", Value: float64(len(p.AirMass)), Reason: "zone count mismatch"}
	}
	for i, m := range p.AirMass {
		if m <= 0 {
			return &physics.DomainError{Quantity: "air mass", Value: m, Reason: fmt.Sprintf("must be positive in zone %d", i)}
		}
	}
	if p.SpecificHeat <= 0 || p.AirSpecificHeat <= 0 {
		return &physics.DomainError{Quantity: "specific heat", Value: p.SpecificHeat, Reason: "must be positive"}
	}
	if p.AirFlow < 0 {
		return &physics.DomainError{Quantity: "air flow", Value: p.AirFlow, Reason: "must be non-negative"}
	}
	if p.BaseHeatTransfer <= 0 {
		return &physics.DomainError{Quantity: "base heat transfer", Value: p.BaseHeatTransfer, Reason: "must be positive"}
	}
	if p.RatedCoolingPower < 0 || p.MaxCoolingPower <= 0 || p.RatedCoolingPower > p.MaxCoolingPower {
		return &physics.DomainError{Quantity: "cooling power rating", Value: p.RatedCoolingPower, Reason: "need 0 ≤ rated ≤ max, max > 0"}
	}
	if p.TCPITarget <= 0 {
		return &physics.DomainError{Quantity: "tcpi target", Value: p.TCPITarget, Reason: "must be positive"}
	}
	if p.WaterActivity < 0 || p.WaterActivity > 1 {
		return &physics.DomainError{Quantity: "water activity", Value: p.WaterActivity, Reason: "must lie in [0,1]"}
	}
	if math.IsInf(p.AmbientPressure, 0) || math.IsNaN(p.AmbientPressure) {
		return &physics.DomainError{Quantity: "ambient pressure", Value: p.AmbientPressure, Reason: "must be finite"}
	}
	if p.AmbientPressure <= physics.SaturationPressure(60) {
		return &physics.DomainError{Quantity: "ambient pressure", Value: p.AmbientPressure, Reason: "below operating saturation pressure"}
	}
	return nil
}
