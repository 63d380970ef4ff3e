package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/tradepath/internal/observability"
	"github.com/jonathan/tradepath/internal/transcript"
)

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Ask the video assistant a question",
	Long:  "Answers a question about a training video with up to three relevant timestamps to jump to.",
	RunE:  runAsk,
}

var (
	askQuestion       string
	askVideoID        string
	askTranscriptFile string
	askWatched        []float64
	askOutputFile     string
)

func init() {
	askCmd.Flags().StringVarP(&askQuestion, "question", "q", "", "Question to ask (required)")
	askCmd.Flags().StringVar(&askVideoID, "video", "", "Built-in video id (default circuit-design-fundamentals)")
	askCmd.Flags().StringVar(&askTranscriptFile, "transcript", "", "Path to transcript JSON file")
	askCmd.Flags().Float64SliceVar(&askWatched, "watched", nil, "Start times (seconds) of segments already watched")
	askCmd.Flags().StringVarP(&askOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")

	if err := askCmd.MarkFlagRequired("question"); err != nil {
		panic(fmt.Sprintf("failed to mark question flag as required: %v", err))
	}

	rootCmd.AddCommand(askCmd)
}

func runAsk(_ *cobra.Command, _ []string) error {
	t, err := loadTranscript(askTranscriptFile, askVideoID, transcript.CircuitDesignID)
	if err != nil {
		return err
	}

	resp := newAssistant(t).Answer(askQuestion, askWatched)

	if appConfig.Verbose {
		observability.NewPrinter(os.Stderr).PrintVideoResponse(&resp)
	}

	return writeOutput(askOutputFile, resp, videoResponseSchema)
}
