// Package journey turns skill gaps into a prioritized, time-estimated
// learning plan.
package journey

import (
	"sort"

	"github.com/jonathan/tradepath/internal/types"
)

// HoursPerLevel is the estimated study time for one level of improvement.
const HoursPerLevel = 20

// prerequisites is keyed by exact skill name. Skills not listed have none.
var prerequisites = map[string][]string{
	"Circuit design":      {"Electrical code knowledge", "Wiring installation"},
	"Gas line work":       {"Pipe fitting", "Safety protocols"},
	"Motor controls":      {"Circuit design", "Electrical code knowledge"},
	"Load calculations":   {"Mathematical skills", "Circuit design"},
	"Backflow prevention": {"Water systems", "Valve installation"},
	"Problem diagnosis":   {"Troubleshooting", "Tool proficiency"},
}

// Prerequisites returns the skills that should be learned before skill.
func Prerequisites(skill string) []string {
	prereqs := prerequisites[skill]
	out := make([]string, len(prereqs))
	copy(out, prereqs)
	return out
}

// PriorityFor maps a required level to a priority band.
func PriorityFor(requiredLevel int) types.Priority {
	switch {
	case requiredLevel >= 9:
		return types.PriorityHigh
	case requiredLevel >= 7:
		return types.PriorityMedium
	default:
		return types.PriorityLow
	}
}

// Build creates one node per gap and orders them by priority (high first),
// then by fewest prerequisites. Ties keep their input order.
func Build(gaps []types.SkillGap) []types.JourneyNode {
	nodes := make([]types.JourneyNode, 0, len(gaps))
	for _, gap := range gaps {
		nodes = append(nodes, types.JourneyNode{
			Skill:          gap.Skill,
			CurrentLevel:   gap.CurrentLevel,
			TargetLevel:    gap.RequiredLevel,
			Priority:       PriorityFor(gap.RequiredLevel),
			EstimatedHours: (gap.RequiredLevel - gap.CurrentLevel) * HoursPerLevel,
			Prerequisites:  Prerequisites(gap.Skill),
		})
	}

	sort.SliceStable(nodes, func(i, j int) bool {
		ri, rj := nodes[i].Priority.Rank(), nodes[j].Priority.Rank()
		if ri != rj {
			return ri > rj
		}
		return len(nodes[i].Prerequisites) < len(nodes[j].Prerequisites)
	})

	return nodes
}

// TotalHours sums the estimated hours of a journey.
func TotalHours(nodes []types.JourneyNode) int {
	total := 0
	for _, n := range nodes {
		total += n.EstimatedHours
	}
	return total
}

// NextRecommended returns the first gap skill that is not yet completed.
// The second return value is false when every gap has been completed.
func NextRecommended(gaps []types.SkillGap, completed []string) (string, bool) {
	done := make(map[string]bool, len(completed))
	for _, c := range completed {
		done[c] = true
	}
	for _, gap := range gaps {
		if !done[gap.Skill] {
			return gap.Skill, true
		}
	}
	return "", false
}
