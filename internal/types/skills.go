// Package types provides type definitions for structured data used throughout the tradepath system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Category is the difficulty band of a required skill.
type Category string

const (
	CategoryBasic        Category = "basic"
	CategoryIntermediate Category = "intermediate"
	CategoryAdvanced     Category = "advanced"
)

// Priority is the urgency of a learning journey node.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank returns the ordering weight of a priority (high=3, medium=2, low=1).
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// Skill represents a single required skill for a trade
type Skill struct {
	Name       string   `json:"name" validate:"required"`
	Category   Category `json:"category" validate:"required,oneof=basic intermediate advanced"`
	Importance int      `json:"importance" validate:"min=1,max=10"`
}

// Validate validates the Skill using the validator.
func (s *Skill) Validate() error {
	return validate.Struct(s)
}

// SkillGap represents a required skill the user has not yet mastered.
// Only entries with CurrentLevel < RequiredLevel are ever emitted.
type SkillGap struct {
	Skill         string `json:"skill"`
	CurrentLevel  int    `json:"current_level"`
	RequiredLevel int    `json:"required_level"`
}

// JourneyNode is one prioritized, time-estimated unit of recommended learning
type JourneyNode struct {
	Skill          string   `json:"skill"`
	CurrentLevel   int      `json:"current_level"`
	TargetLevel    int      `json:"target_level"`
	Priority       Priority `json:"priority"`
	EstimatedHours int      `json:"estimated_hours"`
	Prerequisites  []string `json:"prerequisites"`
}

// CompatibilityResult is the outcome of a compatibility analysis run
type CompatibilityResult struct {
	Score int        `json:"score"`
	Gaps  []SkillGap `json:"gaps"`
}
