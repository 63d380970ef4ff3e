// Package parsing provides small text parsers shared by the scoring and CLI layers.
package parsing

import (
	"strings"
	"unicode"
)

// LeadingInt parses the integer prefix of s the way a lenient form field
// would: optional surrounding whitespace, an optional sign, then digits.
// Parsing stops at the first non-digit. ok is false when no digit is found.
func LeadingInt(s string) (n int, ok bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	negative := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		negative = s[0] == '-'
		s = s[1:]
	}

	digits := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		// Saturate rather than overflow on absurd inputs
		if n < 1_000_000 {
			n = n*10 + int(r-'0')
		}
		digits++
	}
	if digits == 0 {
		return 0, false
	}
	if negative {
		n = -n
	}
	return n, true
}

// FirstToken returns the text before the first space character.
func FirstToken(s string) string {
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i]
	}
	return s
}

// SplitSkillList splits a comma- or newline-separated skill list, trimming
// whitespace and dropping blanks and case-insensitive duplicates. The first
// spelling of a duplicate wins.
func SplitSkillList(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '\n' || r == ';'
	})
	return NormalizeSkillList(fields)
}

// NormalizeSkillList trims and de-duplicates skill names, preserving order.
func NormalizeSkillList(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]bool, len(skills))
	for _, skill := range skills {
		trimmed := strings.TrimSpace(skill)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, trimmed)
	}
	return out
}
