package transcript

import "fmt"

// LoadError represents an error reading, parsing or validating a transcript file
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("transcript load error (%s): %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("transcript load error (%s): %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
