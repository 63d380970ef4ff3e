package steps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepRegistry(t *testing.T) {
	expectedSteps := []string{
		StepExtractResume, StepScoreCompatibility, StepComputeGaps,
		StepBuildJourney, StepSummarize, StepCompareTrades,
	}

	for _, stepName := range expectedSteps {
		def, ok := StepRegistry[stepName]
		require.True(t, ok, "Step %s should be in registry", stepName)
		assert.Equal(t, stepName, def.Name)
		assert.NotEmpty(t, def.Category)
	}
	assert.Len(t, StepRegistry, len(expectedSteps))
}

func TestStepRegistryCategories(t *testing.T) {
	categories := map[string][]string{
		CategoryIngestion: {StepExtractResume},
		CategoryAnalysis:  {StepScoreCompatibility, StepComputeGaps, StepCompareTrades},
		CategoryPlanning:  {StepBuildJourney, StepSummarize},
	}

	for category, stepNames := range categories {
		for _, stepName := range stepNames {
			def, ok := StepRegistry[stepName]
			require.True(t, ok)
			assert.Equal(t, category, def.Category, "Step %s should be in category %s", stepName, category)
		}
	}
}

func TestDependencyError(t *testing.T) {
	err := &DependencyError{
		Step:                "test_step",
		MissingDependencies: []string{"dep1", "dep2"},
	}

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "missing dependencies")
	assert.Equal(t, []string{"dep1", "dep2"}, err.MissingDependencies)
}

func TestTracker_ValidateDependencies(t *testing.T) {
	tracker := NewTracker()

	err := tracker.ValidateDependencies("unknown_step")
	assert.ErrorContains(t, err, "unknown step")

	var depErr *DependencyError
	err = tracker.ValidateDependencies(StepSummarize)
	require.ErrorAs(t, err, &depErr)
	assert.Equal(t, []string{StepScoreCompatibility, StepBuildJourney}, depErr.MissingDependencies)

	tracker.Complete(StepScoreCompatibility)
	tracker.Complete(StepComputeGaps)
	tracker.Complete(StepBuildJourney)
	assert.NoError(t, tracker.ValidateDependencies(StepSummarize))
	assert.True(t, tracker.Completed(StepBuildJourney))
}

func TestTracker_AvailableAndBlocked(t *testing.T) {
	tracker := NewTracker()

	assert.Equal(t, []string{StepCompareTrades, StepComputeGaps, StepExtractResume, StepScoreCompatibility}, tracker.AvailableSteps())
	assert.Equal(t, []string{StepBuildJourney, StepSummarize}, tracker.BlockedSteps())

	tracker.Complete(StepComputeGaps)
	assert.Contains(t, tracker.AvailableSteps(), StepBuildJourney)
	assert.NotContains(t, tracker.AvailableSteps(), StepComputeGaps)
	assert.Equal(t, []string{StepSummarize}, tracker.BlockedSteps())
}
