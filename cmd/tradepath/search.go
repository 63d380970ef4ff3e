package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/tradepath/internal/observability"
	"github.com/jonathan/tradepath/internal/ranking"
	"github.com/jonathan/tradepath/internal/transcript"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search a video transcript for a concept",
	Long:  "Finds up to eight transcript moments related to an electrical concept such as voltage drop or grounding.",
	RunE:  runSearch,
}

var (
	searchQuery          string
	searchVideoID        string
	searchTranscriptFile string
	searchOutputFile     string
)

func init() {
	searchCmd.Flags().StringVarP(&searchQuery, "query", "q", "", "Concept to search for (required)")
	searchCmd.Flags().StringVar(&searchVideoID, "video", "", "Built-in video id (default "+transcript.CircuitGuideID+")")
	searchCmd.Flags().StringVar(&searchTranscriptFile, "transcript", "", "Path to transcript JSON file")
	searchCmd.Flags().StringVarP(&searchOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")

	if err := searchCmd.MarkFlagRequired("query"); err != nil {
		panic(fmt.Sprintf("failed to mark query flag as required: %v", err))
	}

	rootCmd.AddCommand(searchCmd)
}

func runSearch(_ *cobra.Command, _ []string) error {
	t, err := loadTranscript(searchTranscriptFile, searchVideoID, transcript.CircuitGuideID)
	if err != nil {
		return err
	}

	matches := ranking.SearchConcepts(searchQuery, t)

	if appConfig.Verbose {
		observability.NewPrinter(os.Stderr).PrintConceptMatches(searchQuery, matches)
	}

	return writeOutput(searchOutputFile, matches, "")
}
