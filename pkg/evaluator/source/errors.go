package source

import (
	"fmt"
)

// UnknownSourceError is returned when a dependency names a path that is not
// in the set being ordered.
type UnknownSourceError struct {
	Path string
}

func (e *UnknownSourceError) Error() string {
	return fmt.Sprintf("unknown source %q", e.Path)
}

// CycleError is returned when source dependencies are circular.
type CycleError struct {
	Cause error
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("circular source dependency: %v", e.Cause)
}

func (e *CycleError) Unwrap() error {
	return e.Cause
}
