package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/tradepath/internal/transcript"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List the topics a video covers",
	RunE:  runTopics,
}

var (
	topicsVideoID        string
	topicsTranscriptFile string
	topicsLimit          int
)

func init() {
	topicsCmd.Flags().StringVar(&topicsVideoID, "video", "", "Built-in video id (default circuit-design-fundamentals)")
	topicsCmd.Flags().StringVar(&topicsTranscriptFile, "transcript", "", "Path to transcript JSON file")
	topicsCmd.Flags().IntVar(&topicsLimit, "limit", 0, "Maximum topics to list (0 means all)")

	rootCmd.AddCommand(topicsCmd)
}

func runTopics(_ *cobra.Command, _ []string) error {
	t, err := loadTranscript(topicsTranscriptFile, topicsVideoID, transcript.CircuitDesignID)
	if err != nil {
		return err
	}
	return writeOutput("", transcript.Topics(t, topicsLimit), "")
}
