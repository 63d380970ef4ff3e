package resume

import (
	"errors"
	"fmt"
)

// ErrUnsupportedType is the cause of an ExtractionError for documents that
// are not PDF or Word files.
var ErrUnsupportedType = errors.New("unsupported document type")

// ExtractionError represents a recoverable failure to extract skills from a
// document. Callers may retry or ask for a different upload.
type ExtractionError struct {
	Document string
	Message  string
	Cause    error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction error (%s): %s: %v", e.Document, e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction error (%s): %s", e.Document, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
