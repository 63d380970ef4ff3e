package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/tradepath/internal/journey"
	"github.com/jonathan/tradepath/internal/observability"
	"github.com/jonathan/tradepath/internal/skills"
)

var journeyCmd = &cobra.Command{
	Use:   "journey",
	Short: "Plan a learning journey for a trade",
	Long:  "Turns the skill gaps for a trade into a prioritized, time-estimated learning journey.",
	RunE:  runJourney,
}

var (
	journeyInputFile  string
	journeySkills     string
	journeyOutputFile string
	journeyCompleted  []string
)

func init() {
	journeyCmd.Flags().StringVarP(&journeyInputFile, "in", "i", "", "Path to AnalysisRequest JSON file (required)")
	journeyCmd.Flags().StringVarP(&journeyOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	journeyCmd.Flags().StringSliceVar(&journeyCompleted, "completed", nil, "Skills already completed")

	journeyCmd.Flags().StringVar(&journeySkills, "skills", "", "Extra skills, separated by commas or semicolons")

	if err := journeyCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(journeyCmd)
}

func runJourney(_ *cobra.Command, _ []string) error {
	req, err := readRequest(journeyInputFile)
	if err != nil {
		return err
	}
	userSkills := requestSkills(req, journeySkills)
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	gaps := skills.ComputeGaps(userSkills, catalog.RequiredSkills(req.Trade), newSource())
	nodes := journey.Build(gaps)

	if appConfig.Verbose {
		observability.NewPrinter(os.Stderr).PrintJourney(nodes)
	}
	if next, ok := journey.NextRecommended(gaps, journeyCompleted); ok {
		_, _ = fmt.Fprintf(os.Stderr, "Next recommended skill: %s\n", next)
	}

	return writeOutput(journeyOutputFile, nodes, learningJourneySchema)
}
