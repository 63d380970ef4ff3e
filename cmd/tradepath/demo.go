package main

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/jonathan/tradepath/internal/session"
	"github.com/jonathan/tradepath/internal/transcript"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Play the scripted video assistant walkthrough",
	Long:  "Types each walkthrough question, answers it and jumps to the matching timestamps, pausing between questions.",
	RunE:  runDemo,
}

var demoInstant bool

// maxInstantSteps bounds an instant run; a full walkthrough needs a few hundred.
const maxInstantSteps = 100000

func init() {
	demoCmd.Flags().BoolVar(&demoInstant, "instant", false, "Skip the typing and pause delays")

	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, _ []string) error {
	t, err := loadTranscript("", transcript.CircuitDesignID, transcript.CircuitDesignID)
	if err != nil {
		return err
	}

	timings := session.Timings{
		TypingSpeed:           appConfig.TypingSpeed(),
		ThinkingDelay:         appConfig.ThinkingDelay(),
		PauseBetweenQuestions: appConfig.QuestionPause(),
	}

	var scheduler session.Scheduler = session.RealScheduler{}
	var manual *session.ManualScheduler
	if demoInstant {
		manual = session.NewManualScheduler()
		scheduler = manual
	}

	done := make(chan struct{})
	var once sync.Once
	out := cmd.OutOrStdout()

	s := session.New(newAssistant(t), session.Options{
		Scheduler: scheduler,
		Timings:   &timings,
		Observer: session.Observer{
			OnMessage: func(message string, isUser bool) {
				speaker := "Assistant"
				if isUser {
					speaker = "You"
				}
				_, _ = fmt.Fprintf(out, "%s: %s\n\n", speaker, message)
			},
			OnTimestamps: func(timestamps []float64) {
				labels := make([]string, len(timestamps))
				for i, ts := range timestamps {
					labels[i] = transcript.FormatTime(ts)
				}
				_, _ = fmt.Fprintf(out, "▶ Jump to %s\n\n", strings.Join(labels, ", "))
			},
			OnStateChange: func(snap session.Snapshot) {
				if appConfig.Verbose {
					_, _ = fmt.Fprintf(os.Stderr, "[state] %s (question %d)\n", snap.State, snap.QuestionIndex+1)
				}
				if snap.State == session.StateIdle.String() && !snap.AutoDemo {
					once.Do(func() { close(done) })
				}
			},
		},
	})

	if err := s.StartDemo(); err != nil {
		return err
	}

	if manual != nil {
		manual.RunAll(maxInstantSteps)
		return nil
	}

	select {
	case <-done:
		return nil
	case <-cmd.Context().Done():
		s.StopDemo()
		return cmd.Context().Err()
	}
}
