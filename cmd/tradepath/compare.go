package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/tradepath/internal/pipeline"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare compatibility across every trade",
	Long:  "Scores the same skills and answers against every trade in the catalog, best match first. The request's trade is ignored.",
	RunE:  runCompare,
}

var (
	compareInputFile   string
	compareOutputFile  string
	compareConcurrency int
)

func init() {
	compareCmd.Flags().StringVarP(&compareInputFile, "in", "i", "", "Path to AnalysisRequest JSON file (required)")
	compareCmd.Flags().StringVarP(&compareOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	compareCmd.Flags().IntVar(&compareConcurrency, "concurrency", 0, "Maximum trades scored at once (0 means all)")

	if err := compareCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, _ []string) error {
	if compareConcurrency < 0 {
		return fmt.Errorf("--concurrency must not be negative")
	}

	req, err := readRequest(compareInputFile)
	if err != nil {
		return err
	}
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	results, err := pipeline.CompareTrades(cmd.Context(), pipeline.CompareOptions{
		Skills:      req.Skills,
		Answers:     req.Answers,
		Catalog:     catalog,
		Levels:      newSource(),
		Concurrency: compareConcurrency,
	})
	if err != nil {
		return err
	}

	return writeOutput(compareOutputFile, results, "")
}
