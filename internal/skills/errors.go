// Package skills provides the trade skill catalog and skill gap calculation.
package skills

import "fmt"

// CatalogError represents an error loading or validating a skill catalog
type CatalogError struct {
	Message string
	Cause   error
}

func (e *CatalogError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("catalog error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("catalog error: %s", e.Message)
}

func (e *CatalogError) Unwrap() error {
	return e.Cause
}
