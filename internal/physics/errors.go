// v0
// internal/physics/errors.go
package physics

import "fmt"

// DomainError reports a physically impossible input to one of the
// correlations. It names the offending quantity so callers can log exactly
// what went out of range instead of chasing a NaN downstream.
type DomainError struct {
	Quantity string
	Value    float64
	Reason   string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("physics: %s = %g out of domain: %s", e.Quantity, e.Value, e.Reason)
}
