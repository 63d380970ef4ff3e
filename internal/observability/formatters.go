// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/tradepath/internal/compatibility"
	"github.com/jonathan/tradepath/internal/ranking"
	"github.com/jonathan/tradepath/internal/transcript"
	"github.com/jonathan/tradepath/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// clip shortens s to at most n runes, ending with "..." when cut.
func clip(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n-3]) + "..."
}

// pad right-pads s with spaces to n runes.
func pad(s string, n int) string {
	if count := utf8.RuneCountInString(s); count < n {
		return s + strings.Repeat(" ", n-count)
	}
	return s
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		fmt.Fprintf(p.out, "│ %s │\n", pad(clip(line, boxWidth-4), boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// printBanner prints a single-line box.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBanner(text string) {
	fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
	fmt.Fprintf(p.out, "│ %s │\n", pad(text, boxWidth-4))
	fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
}

// PrintCompatibility outputs the score, the gap count and the matched skills.
func (p *Printer) PrintCompatibility(trade string, result types.CompatibilityResult, matched []string) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Trade:    %s\n", trade))
	sb.WriteString(fmt.Sprintf("Score:    %d%%\n", result.Score))
	sb.WriteString(fmt.Sprintf("Gaps:     %d\n", len(result.Gaps)))

	if len(matched) > 0 {
		sb.WriteString("\nMatched Skills:\n")
		count := min(len(matched), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", matched[i]))
		}
		if len(matched) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(matched)-maxItemsToShow))
		}
	}

	p.printBox("COMPATIBILITY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBreakdown outputs every component of a score.
func (p *Printer) PrintBreakdown(b compatibility.Breakdown) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Skill match:      %.2f\n", b.SkillMatch))
	sb.WriteString(fmt.Sprintf("Motivation:       %.2f\n", b.Motivation))
	sb.WriteString(fmt.Sprintf("Hands-on:         %.2f\n", b.HandsOn))
	sb.WriteString(fmt.Sprintf("Physical:         %.2f\n", b.Physical))
	sb.WriteString(fmt.Sprintf("Problem solving:  %.2f\n", b.ProblemSolving))
	sb.WriteString(fmt.Sprintf("Availability:     %.2f\n", b.Availability))
	sb.WriteString(fmt.Sprintf("Weighted bonus:   %.3f\n", b.WeightedBonus))
	sb.WriteString(fmt.Sprintf("Raw total:        %.3f", b.Raw))

	p.printBox("SCORE BREAKDOWN", sb.String())
}

// PrintJourney outputs the learning journey in order.
func (p *Printer) PrintJourney(nodes []types.JourneyNode) {
	if len(nodes) == 0 {
		p.printBanner("✅ NO SKILL GAPS")
		return
	}

	var sb strings.Builder
	total := 0
	for i, n := range nodes {
		total += n.EstimatedHours
		sb.WriteString(fmt.Sprintf("%2d. %s [%s]\n", i+1, n.Skill, n.Priority))
		sb.WriteString(fmt.Sprintf("    Level %d → %d, ~%dh\n", n.CurrentLevel, n.TargetLevel, n.EstimatedHours))
		if len(n.Prerequisites) > 0 {
			sb.WriteString(fmt.Sprintf("    After: %s\n", strings.Join(n.Prerequisites, ", ")))
		}
	}
	sb.WriteString(fmt.Sprintf("\nTotal: %d skills, %d hours", len(nodes), total))

	p.printBox("LEARNING JOURNEY", sb.String())
}

// PrintVideoResponse outputs an assistant answer with its jump targets.
func (p *Printer) PrintVideoResponse(resp *types.VideoResponse) {
	if resp == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(resp.Message)
	sb.WriteString("\n")

	if len(resp.Timestamps) > 0 {
		sb.WriteString("\nTimestamps:\n")
		for _, ts := range resp.Timestamps {
			sb.WriteString(fmt.Sprintf("  ▶ %s  %.2f  %s\n", transcript.FormatTime(ts.Timestamp), ts.RelevanceScore, ts.Context))
		}
	}

	if len(resp.SuggestedQuestions) > 0 {
		sb.WriteString("\nYou could also ask:\n")
		for _, q := range resp.SuggestedQuestions {
			sb.WriteString(fmt.Sprintf("  • %s\n", q))
		}
	}

	sb.WriteString(fmt.Sprintf("\nConfidence: %.2f", resp.Confidence))
	if resp.ShouldAutoPlay {
		sb.WriteString("  (auto-play)")
	}

	p.printBox("VIDEO ASSISTANT", sb.String())
}

// PrintConceptMatches outputs the results of a concept search.
func (p *Printer) PrintConceptMatches(query string, matches []ranking.ConceptMatch) {
	if len(matches) == 0 {
		p.printBanner(fmt.Sprintf("No matches for %q", clip(query, boxWidth-20)))
		return
	}

	var sb strings.Builder
	for i, m := range matches {
		sb.WriteString(fmt.Sprintf("%s  (%.2f)\n", m.TimeDisplay, m.Relevance))
		sb.WriteString(fmt.Sprintf("  %s", m.Preview))
		if i < len(matches)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox(fmt.Sprintf("CONCEPTS: %s", query), sb.String())
}
