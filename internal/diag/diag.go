// v2
// internal/diag/diag.go

// Package diag wraps the evolution engine with conservation bookkeeping and
// read-only diagnostic views: energy and moisture drift against baselines
// captured at construction, performance summaries, stability margins and a
// never-failing state validator.
package diag

import (
	"fmt"
	"sync"

	"github.com/hyve-systems-inc/simulations-sub001/internal/kpi"
	"github.com/hyve-systems-inc/simulations-sub001/internal/physics"
	"github.com/hyve-systems-inc/simulations-sub001/internal/sim"
)

const maxProductTemp = 60.0 // °C, absolute plausibility ceiling

// TotalEnergy is the conserved bookkeeping quantity: product sensible heat,
// air sensible heat and the latent content of airborne moisture, in J.
func TotalEnergy(s sim.State, p sim.Params) float64 {
	var e float64
	for i := range s.ProductTemp {
		for j := range s.ProductTemp[i] {
			e += p.ProductMass[i][j] * p.SpecificHeat * s.ProductTemp[i][j]
		}
	}
	for i := range s.AirTemp {
		e += p.AirMass[i] * p.AirSpecificHeat * s.AirTemp[i]
		e += p.AirMass[i] * s.AirHumidity[i] * physics.LatentHeat
	}
	return e
}

// TotalMoisture is all water tracked by the model, product-bound plus
// airborne, in kg.
func TotalMoisture(s sim.State, p sim.Params) float64 {
	var m float64
	for i := range s.ProductMoisture {
		for j := range s.ProductMoisture[i] {
			m += p.ProductMass[i][j] * s.ProductMoisture[i][j]
		}
	}
	for i := range s.AirHumidity {
		m += p.AirMass[i] * s.AirHumidity[i]
	}
	return m
}

// Monitor owns the current state and the run baselines. All methods are
// safe for concurrent use; readers see a consistent snapshot.
type Monitor struct {
	mu sync.Mutex

	eng     *sim.Engine
	state   sim.State
	initial sim.State

	initialEnergy   float64
	initialMoisture float64
	coolingWork     float64 // ∫ P dt, J
	steps           int
}

// NewMonitor captures the conservation baselines from the initial state.
func NewMonitor(eng *sim.Engine, initial sim.State) (*Monitor, error) {
	p := eng.Params()
	if err := initial.CheckShape(p.Zones, p.Layers); err != nil {
		return nil, err
	}
	s := initial.Clone()
	return &Monitor{
		eng:             eng,
		state:           s,
		initial:         s.Clone(),
		initialEnergy:   TotalEnergy(s, p),
		initialMoisture: TotalMoisture(s, p),
	}, nil
}

// Step advances the wrapped engine once, accumulating cooling work.
func (m *Monitor) Step() (sim.State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	next, err := m.eng.Step(m.state)
	if err != nil {
		return sim.State{}, err
	}
	m.state = next
	m.coolingWork += next.CoolingPower * m.eng.DT()
	m.steps++
	return next.Clone(), nil
}

// State returns a copy of the current state.
func (m *Monitor) State() sim.State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Clone()
}

// Steps is the number of advances performed so far.
func (m *Monitor) Steps() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.steps
}

// EnergyReport relates total-energy drift since construction to the
// electrical work the cooling unit has performed.
type EnergyReport struct {
	InitialEnergy float64 `json:"initialEnergy"`
	CurrentEnergy float64 `json:"currentEnergy"`
	Drift         float64 `json:"drift"`
	CoolingWork   float64 `json:"coolingWork"`
	DriftRatio    float64 `json:"driftRatio"`
}

// EnergyBalance reports cumulative drift. DriftRatio compares |drift| to
// cooling work and reads near 1 for a well-behaved run.
func (m *Monitor) EnergyBalance() EnergyReport {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur := TotalEnergy(m.state, m.eng.Params())
	r := EnergyReport{
		InitialEnergy: m.initialEnergy,
		CurrentEnergy: cur,
		Drift:         cur - m.initialEnergy,
		CoolingWork:   m.coolingWork,
	}
	if m.coolingWork > 0 {
		r.DriftRatio = -r.Drift / m.coolingWork
	}
	return r
}

// MoistureReport tracks total water against the construction baseline.
type MoistureReport struct {
	InitialMoisture float64 `json:"initialMoisture"`
	CurrentMoisture float64 `json:"currentMoisture"`
	Change          float64 `json:"change"`
}

// MoistureBalance reports the cumulative change in tracked water. Negative
// change is condensate removed at the coil.
func (m *Monitor) MoistureBalance() MoistureReport {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur := TotalMoisture(m.state, m.eng.Params())
	return MoistureReport{
		InitialMoisture: m.initialMoisture,
		CurrentMoisture: cur,
		Change:          cur - m.initialMoisture,
	}
}

// PerformanceReport summarizes controller and cooling progress.
type PerformanceReport struct {
	Time             float64 `json:"time"`
	Steps            int     `json:"steps"`
	TCPI             float64 `json:"tcpi"`
	CoolingPower     float64 `json:"coolingPower"`
	UniformityIndex  float64 `json:"uniformityIndex"`
	CoolingRateIndex float64 `json:"coolingRateIndex"`
}

// Performance reports the uniformity of the product temperature field and
// the mean cooling-rate index across all cells, referenced to the initial
// product temperature and the coil supply temperature.
func (m *Monitor) Performance() PerformanceReport {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := m.eng.Params()

	var temps []float64
	var criSum float64
	var cells int
	for i := range m.state.ProductTemp {
		for j := range m.state.ProductTemp[i] {
			temps = append(temps, m.state.ProductTemp[i][j])
			criSum += kpi.CoolingRateIndex(
				m.state.ProductTemp[i][j], m.state.AirTemp[i],
				m.initial.ProductTemp[i][j], p.CoilTemp)
			cells++
		}
	}
	r := PerformanceReport{
		Time:            m.state.Time,
		Steps:           m.steps,
		TCPI:            m.state.TCPI,
		CoolingPower:    m.state.CoolingPower,
		UniformityIndex: kpi.UniformityIndex(temps),
	}
	if cells > 0 {
		r.CoolingRateIndex = criSum / float64(cells)
	}
	return r
}

// StabilityReport exposes the step size and the worst-case stability
// ratios it was chosen under.
type StabilityReport struct {
	DT        float64 `json:"dt"`
	CFL       float64 `json:"cfl"`
	Fourier   float64 `json:"fourier"`
	CFLOK     bool    `json:"cflOk"`
	FourierOK bool    `json:"fourierOk"`
}

// Stability reports the run's time-scale margins.
func (m *Monitor) Stability() StabilityReport {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := m.eng.Params()
	dt := m.eng.DT()
	cfl := sim.CFLNumber(p, dt)
	fo := sim.FourierNumber(p, dt)
	return StabilityReport{
		DT:        dt,
		CFL:       cfl,
		Fourier:   fo,
		CFLOK:     cfl <= 1,
		FourierOK: fo <= 0.5,
	}
}

// ValidationReport lists definite physical-bound breaches and softer
// stability warnings. It is a query; producing it never fails.
type ValidationReport struct {
	Valid      bool     `json:"valid"`
	Violations []string `json:"violations"`
	Warnings   []string `json:"warnings"`
}

// Validate inspects the current state against hard physical bounds and the
// run's stability margins.
func (m *Monitor) Validate() ValidationReport {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := m.eng.Params()
	s := m.state

	var report ValidationReport
	for i := range s.ProductTemp {
		for j := range s.ProductTemp[i] {
			tp := s.ProductTemp[i][j]
			if tp < p.CoilTemp {
				report.Violations = append(report.Violations,
					fmt.Sprintf("product temperature %0.2f°C in zone %d layer %d below coil temperature %0.2f°C", tp, i, j, p.CoilTemp))
			}
			if tp > maxProductTemp {
				report.Violations = append(report.Violations,
					fmt.Sprintf("product temperature %0.2f°C in zone %d layer %d above plausibility ceiling %0.0f°C", tp, i, j, maxProductTemp))
			}
		}
	}
	for i := range s.AirTemp {
		if !physics.HumidityValid(s.AirHumidity[i], s.AirTemp[i], p.AmbientPressure) {
			report.Violations = append(report.Violations,
				fmt.Sprintf("air humidity %0.5f in zone %d invalid at %0.2f°C", s.AirHumidity[i], i, s.AirTemp[i]))
		}
	}
	if s.TCPI < 0 || s.TCPI > 1 {
		report.Violations = append(report.Violations, fmt.Sprintf("tcpi %0.4f outside [0,1]", s.TCPI))
	}
	if s.CoolingPower < 0 || s.CoolingPower > p.MaxCoolingPower {
		report.Violations = append(report.Violations,
			fmt.Sprintf("cooling power %0.1fW outside [0,%0.1fW]", s.CoolingPower, p.MaxCoolingPower))
	}

	dt := m.eng.DT()
	if cfl := sim.CFLNumber(p, dt); cfl > 1 {
		report.Warnings = append(report.Warnings, fmt.Sprintf("CFL number %0.3f exceeds 1", cfl))
	}
	if fo := sim.FourierNumber(p, dt); fo > 0.5 {
		report.Warnings = append(report.Warnings, fmt.Sprintf("Fourier number %0.3f exceeds 0.5", fo))
	}

	report.Valid = len(report.Violations) == 0
	return report
}
