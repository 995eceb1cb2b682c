// v1
// internal/sim/errors.go
package sim

import (
	"errors"
	"fmt"
)

// ErrUnstable marks any failure caused by the integration producing
// non-finite values. Callers test with errors.Is.
var ErrUnstable = errors.New("sim: numerical instability")

// InstabilityError reports which quantity went non-finite and at what
// simulation time, so a run log pinpoints the blow-up.
type InstabilityError struct {
	Time     float64
	Quantity string
}

func (e *InstabilityError) Error() string {
	return fmt.Sprintf("sim: %s became non-finite at t=%.3fs", e.Quantity, e.Time)
}

func (e *InstabilityError) Unwrap() error { return ErrUnstable }
