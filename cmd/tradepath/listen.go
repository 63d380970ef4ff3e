package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/tradepath/internal/session"
	"github.com/jonathan/tradepath/internal/transcript"
	"github.com/jonathan/tradepath/internal/voice"
)

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Answer questions from a voice transport",
	Long: "Reads newline-delimited voice transport events and answers every final transcript with the video assistant. " +
		"Each answered question is written as one JSON line.",
	RunE: runListen,
}

var (
	listenInputFile      string
	listenVideoID        string
	listenTranscriptFile string
)

func init() {
	listenCmd.Flags().StringVarP(&listenInputFile, "in", "i", "-", "Path to NDJSON event stream (- for stdin)")
	listenCmd.Flags().StringVar(&listenVideoID, "video", "", "Built-in video id (default circuit-design-fundamentals)")
	listenCmd.Flags().StringVar(&listenTranscriptFile, "transcript", "", "Path to transcript JSON file")

	rootCmd.AddCommand(listenCmd)
}

func runListen(cmd *cobra.Command, _ []string) error {
	var r io.Reader = cmd.InOrStdin()
	if listenInputFile != "" && listenInputFile != "-" {
		f, err := os.Open(listenInputFile)
		if err != nil {
			return fmt.Errorf("failed to open event stream: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	t, err := loadTranscript(listenTranscriptFile, listenVideoID, transcript.CircuitDesignID)
	if err != nil {
		return err
	}

	s := session.New(newAssistant(t), session.Options{})
	intake := voice.NewIntake(s.Ask, slog.Default())
	enc := json.NewEncoder(cmd.OutOrStdout())

	stats, err := intake.Run(cmd.Context(), r, func(e voice.Exchange) error {
		return enc.Encode(e)
	})
	slog.Info("voice intake finished",
		slog.String("session_id", s.ID()),
		slog.Int("questions", stats.Questions),
		slog.Int("malformed", stats.Malformed),
		slog.Int("errors", stats.Errors))
	if err == nil && intake.Active() {
		slog.Warn("event stream ended before call-end", slog.String("session_id", s.ID()))
	}
	return err
}
