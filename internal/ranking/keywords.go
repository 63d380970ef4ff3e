// Package ranking scores transcript segments against free-text questions.
package ranking

import (
	"regexp"
	"strings"
)

var nonWordPattern = regexp.MustCompile(`[^\w\s]`)

var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "how": true, "what": true, "where": true,
	"when": true, "why": true, "is": true, "are": true, "was": true,
	"were": true, "do": true, "does": true, "did": true, "can": true,
	"could": true, "should": true, "would": true, "will": true,
}

// ExtractKeywords lowercases text, replaces punctuation with spaces and
// returns the distinct words longer than two characters that are not stop
// words, in first-seen order.
func ExtractKeywords(text string) []string {
	cleaned := nonWordPattern.ReplaceAllString(strings.ToLower(text), " ")

	seen := make(map[string]bool)
	keywords := make([]string, 0)
	for _, word := range strings.Fields(cleaned) {
		if len(word) <= 2 || stopWords[word] || seen[word] {
			continue
		}
		seen[word] = true
		keywords = append(keywords, word)
	}
	return keywords
}
