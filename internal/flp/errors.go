package flp

import "fmt"

// InvalidProblemError signals a missing required field, a non-positive
// dimension, or a fixed department declared outside the facility (spec §7).
type InvalidProblemError struct {
	Reason string
}

func (e *InvalidProblemError) Error() string {
	return fmt.Sprintf("invalid problem: %s", e.Reason)
}

// InfeasibleInitialError signals that the constructor could not place
// every movable department from any of several random initial encodings.
type InfeasibleInitialError struct {
	Attempts int
}

func (e *InfeasibleInitialError) Error() string {
	return fmt.Sprintf("could not find a feasible initial placement after %d attempts", e.Attempts)
}
