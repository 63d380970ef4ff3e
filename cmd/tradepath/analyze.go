package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/tradepath/internal/observability"
	"github.com/jonathan/tradepath/internal/pipeline"
	"github.com/jonathan/tradepath/internal/resume"
	"github.com/jonathan/tradepath/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full compatibility analysis",
	Long: "Extracts skills from an optional resume, scores compatibility, plans the learning journey and suggests next steps. " +
		"Without a request or resume the sample career-changer profile is analyzed.",
	RunE: runAnalyze,
}

var (
	analyzeInputFile  string
	analyzeResumeFile string
	analyzeOutputFile string
	analyzeCompleted  []string
	analyzeTimeout    time.Duration
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeInputFile, "in", "i", "", "Path to AnalysisRequest JSON file")
	analyzeCmd.Flags().StringVarP(&analyzeResumeFile, "resume", "r", "", "Path to resume document (pdf, doc, docx)")
	analyzeCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	analyzeCmd.Flags().StringSliceVar(&analyzeCompleted, "completed", nil, "Skills already completed")
	analyzeCmd.Flags().DurationVar(&analyzeTimeout, "timeout", 30*time.Second, "Maximum time for the analysis")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	opts := pipeline.AnalyzeOptions{
		Completed: analyzeCompleted,
		Levels:    newSource(),
	}

	if analyzeInputFile != "" {
		req, err := readRequest(analyzeInputFile)
		if err != nil {
			return err
		}
		opts.Trade, opts.Skills, opts.Answers = req.Trade, req.Skills, req.Answers
	}

	if analyzeResumeFile != "" {
		doc, err := resume.ReadDocument(analyzeResumeFile)
		if err != nil {
			return err
		}
		opts.Resume = &doc
		opts.Extractor = newExtractor()
		if opts.Trade == "" {
			opts.Trade = appConfig.Trade
		}
	}

	catalog, err := loadCatalog()
	if err != nil {
		return err
	}
	opts.Catalog = catalog

	if appConfig.Verbose {
		opts.OnProgress = func(e pipeline.ProgressEvent) {
			_, _ = fmt.Fprintf(os.Stderr, "[%s] %s\n", e.Step, e.Message)
			if len(e.Blocked) > 0 {
				_, _ = fmt.Fprintf(os.Stderr, "  waiting: %s\n", strings.Join(e.Blocked, ", "))
			}
		}
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), analyzeTimeout)
	defer cancel()

	report, err := pipeline.Analyze(ctx, opts)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if appConfig.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintCompatibility(report.Trade, types.CompatibilityResult{Score: report.Score, Gaps: report.Gaps}, report.MatchedSkills)
		printer.PrintBreakdown(report.Breakdown)
		printer.PrintJourney(report.Journey)
	}

	return writeOutput(analyzeOutputFile, report, "")
}

// newExtractor returns the mock resume extractor with the configured delays.
func newExtractor() *resume.MockExtractor {
	extractor := resume.NewMockExtractor(newSource())
	extractor.MinDelay, extractor.MaxDelay = appConfig.ExtractDelays()
	return extractor
}
