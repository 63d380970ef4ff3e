package skills

import "strings"

// HasSkill reports whether any user skill matches the required skill name.
// Matching is bidirectional case-insensitive substring containment: a user
// skill matches when it contains the required name or is contained by it.
// The rule is literal: an empty user skill is contained by every name, so
// callers trim input with parsing.NormalizeSkillList first.
func HasSkill(userSkills []string, requiredName string) bool {
	required := strings.ToLower(requiredName)
	for _, skill := range userSkills {
		s := strings.ToLower(skill)
		if strings.Contains(s, required) || strings.Contains(required, s) {
			return true
		}
	}
	return false
}

// MatchingUserSkills returns the user skills that match at least one
// required skill, in input order.
func MatchingUserSkills(userSkills []string, required []string) []string {
	matched := make([]string, 0)
	for _, skill := range userSkills {
		for _, name := range required {
			if HasSkill([]string{skill}, name) {
				matched = append(matched, skill)
				break
			}
		}
	}
	return matched
}
