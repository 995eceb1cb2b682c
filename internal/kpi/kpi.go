// v1
// internal/kpi/kpi.go

// Package kpi computes the scalar performance figures reported per step:
// coefficient of performance, spatial temperature uniformity and the
// normalized cooling progress of the product.
package kpi

import "math"

// CoefficientOfPerformance is total heat moved per unit of electrical
// power, (Qsensible + Qlatent) / P. Zero when the unit draws no power.
func CoefficientOfPerformance(sensible, latent, power float64) float64 {
	if power <= 0 {
		return 0
	}
	return (sensible + latent) / power
}

// UniformityIndex is the coefficient of variation of a set of product
// temperatures, population standard deviation over mean. Zero for fewer
// than two samples or a zero mean.
func UniformityIndex(temps []float64) float64 {
	if len(temps) < 2 {
		return 0
	}
	var sum float64
	for _, v := range temps {
		sum += v
	}
	mean := sum / float64(len(temps))
	if mean == 0 {
		return 0
	}
	var ss float64
	for _, v := range temps {
		d := v - mean
		ss += d * d
	}
	return math.Sqrt(ss/float64(len(temps))) / mean
}

// CoolingRateIndex is the remaining product-to-air temperature difference
// normalized by the initial product-to-supply span, (Tp−Ta)/(Tp0−Tsupply).
// Starts near 1 and decays toward 0 as the cell relaxes to the air
// temperature. Zero when the normalizing span vanishes.
func CoolingRateIndex(productTempC, airTempC, initialProductTempC, supplyTempC float64) float64 {
	span := initialProductTempC - supplyTempC
	if span == 0 {
		return 0
	}
	return (productTempC - airTempC) / span
}
