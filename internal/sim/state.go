// v2
// internal/sim/state.go

// Package sim holds the container state, the run parameters, the stable
// time-step selection and the explicit-Euler evolution engine that advances
// product and air conditions zone by zone and layer by layer.
package sim

import "fmt"

// State is the full simulation state at one instant. A step never mutates
// its input; each advance produces a fresh value.
type State struct {
	ProductTemp     [][]float64 `json:"productTemp"`     // °C, [zone][layer]
	ProductMoisture [][]float64 `json:"productMoisture"` // kg water / kg dry matter
	AirTemp         []float64   `json:"airTemp"`         // °C, per zone
	AirHumidity     []float64   `json:"airHumidity"`     // kg water / kg dry air
	TCPI            float64     `json:"tcpi"`
	CoolingPower    float64     `json:"coolingPower"` // W
	Time            float64     `json:"time"`         // elapsed seconds
}

// Clone deep-copies the state so callers can hold history without aliasing
// the engine's working slices.
func (s State) Clone() State {
	c := s
	c.ProductTemp = cloneMatrix(s.ProductTemp)
	c.ProductMoisture = cloneMatrix(s.ProductMoisture)
	c.AirTemp = append([]float64(nil), s.AirTemp...)
	c.AirHumidity = append([]float64(nil), s.AirHumidity...)
	return c
}

// CheckShape verifies that every field matches the zone and layer counts.
func (s State) CheckShape(zones, layers int) error {
	if len(s.ProductTemp) != zones || len(s.ProductMoisture) != zones {
		return fmt.Errorf("sim: state has %d product zones, parameters define %d", len(s.ProductTemp), zones)
	}
	for i := range s.ProductTemp {
		if len(s.ProductTemp[i]) != layers || len(s.ProductMoisture[i]) != layers {
			return fmt.Errorf("sim: zone %d has %d product layers, parameters define %d", i, len(s.ProductTemp[i]), layers)
		}
	}
	if len(s.AirTemp) != zones || len(s.AirHumidity) != zones {
		return fmt.Errorf("sim: state has %d air zones, parameters define %d", len(s.AirTemp), zones)
	}
	return nil
}

func cloneMatrix(m [][]float64) [][]float64 {
	if m == nil {
		return nil
	}
	out := make([][]float64, len(m))
	for i, row := range m {
		out[i] = append([]float64(nil), row...)
	}
	return out
}

// UniformMatrix builds a zones×layers matrix filled with one value. Used by
// scenario loading and tests to express homogeneous initial conditions.
func UniformMatrix(zones, layers int, v float64) [][]float64 {
	m := make([][]float64, zones)
	for i := range m {
		m[i] = make([]float64, layers)
		for j := range m[i] {
			m[i][j] = v
		}
	}
	return m
}

// UniformSlice builds a per-zone slice filled with one value.
func UniformSlice(zones int, v float64) []float64 {
	s := make([]float64, zones)
	for i := range s {
		s[i] = v
	}
	return s
}
