// v1
// internal/sim/snapshot.go
package sim

import "time"

// Snapshot ties a state to its run and step for persistence and streaming.
type Snapshot struct {
	RunID     string    `json:"runId"`
	Step      int       `json:"step"`
	Timestamp time.Time `json:"timestamp"`
	State     State     `json:"state"`
}
