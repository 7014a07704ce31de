package engine

import "fmt"

// InsufficientDataError means fewer than 2 usable historical points remain
// after windowing. Fatal to the run; nothing partial is returned.
type InsufficientDataError struct {
	Points int
}

func (e InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient historical data: %d usable points, need at least 2", e.Points)
}

// InvalidParameterError is raised by validation before any computation
// begins.
type InvalidParameterError struct {
	Field  string
	Reason string
}

func (e InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %q: %s", e.Field, e.Reason)
}
