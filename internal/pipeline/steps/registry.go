// Package steps provides step definitions and dependency validation
// for the trade analysis pipeline.
package steps

import (
	"fmt"
	"sort"
)

// Step categories.
const (
	CategoryIngestion = "ingestion"
	CategoryAnalysis  = "analysis"
	CategoryPlanning  = "planning"
)

// Step names.
const (
	StepExtractResume      = "extract_resume"
	StepScoreCompatibility = "score_compatibility"
	StepComputeGaps        = "compute_gaps"
	StepBuildJourney       = "build_journey"
	StepSummarize          = "summarize"
	StepCompareTrades      = "compare_trades"
)

// StepDefinition defines metadata for a pipeline step
type StepDefinition struct {
	Name         string
	Category     string
	Dependencies []string
	Optional     []string
}

// StepRegistry holds all step definitions
var StepRegistry = map[string]StepDefinition{
	StepExtractResume: {
		Name:         StepExtractResume,
		Category:     CategoryIngestion,
		Dependencies: []string{},
		Optional:     []string{},
	},
	StepScoreCompatibility: {
		Name:         StepScoreCompatibility,
		Category:     CategoryAnalysis,
		Dependencies: []string{},
		Optional:     []string{StepExtractResume},
	},
	StepComputeGaps: {
		Name:         StepComputeGaps,
		Category:     CategoryAnalysis,
		Dependencies: []string{},
		Optional:     []string{StepExtractResume},
	},
	StepBuildJourney: {
		Name:         StepBuildJourney,
		Category:     CategoryPlanning,
		Dependencies: []string{StepComputeGaps},
		Optional:     []string{},
	},
	StepSummarize: {
		Name:         StepSummarize,
		Category:     CategoryPlanning,
		Dependencies: []string{StepScoreCompatibility, StepBuildJourney},
		Optional:     []string{},
	},
	StepCompareTrades: {
		Name:         StepCompareTrades,
		Category:     CategoryAnalysis,
		Dependencies: []string{},
		Optional:     []string{StepExtractResume},
	},
}

// DependencyError represents a dependency validation error
type DependencyError struct {
	Step                string
	MissingDependencies []string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("missing dependencies: %v", e.MissingDependencies)
}

// Tracker records which steps of one run have completed.
// It is not safe for concurrent use.
type Tracker struct {
	completed map[string]bool
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{completed: make(map[string]bool)}
}

// Complete marks a step as completed.
func (t *Tracker) Complete(stepName string) {
	t.completed[stepName] = true
}

// Completed reports whether a step has completed.
func (t *Tracker) Completed(stepName string) bool {
	return t.completed[stepName]
}

// ValidateDependencies checks if all required dependencies for a step are completed
func (t *Tracker) ValidateDependencies(stepName string) error {
	def, ok := StepRegistry[stepName]
	if !ok {
		return fmt.Errorf("unknown step: %s", stepName)
	}

	var missing []string
	for _, dep := range def.Dependencies {
		if !t.completed[dep] {
			missing = append(missing, dep)
		}
	}

	if len(missing) > 0 {
		return &DependencyError{
			Step:                stepName,
			MissingDependencies: missing,
		}
	}

	return nil
}

// AvailableSteps returns steps that can be executed (dependencies met), sorted by name
func (t *Tracker) AvailableSteps() []string {
	var available []string
	for stepName := range StepRegistry {
		if t.completed[stepName] {
			continue
		}
		if err := t.ValidateDependencies(stepName); err != nil {
			continue
		}
		available = append(available, stepName)
	}
	sort.Strings(available)
	return available
}

// BlockedSteps returns steps that are blocked (dependencies not met), sorted by name
func (t *Tracker) BlockedSteps() []string {
	var blocked []string
	for stepName := range StepRegistry {
		if t.completed[stepName] {
			continue
		}
		if err := t.ValidateDependencies(stepName); err != nil {
			blocked = append(blocked, stepName)
		}
	}
	sort.Strings(blocked)
	return blocked
}
