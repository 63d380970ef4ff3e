package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/tradepath/internal/skills"
)

var gapsCmd = &cobra.Command{
	Use:   "gaps",
	Short: "List skill gaps for a trade",
	Long:  "Assesses each required skill of the trade and lists those below the required level.",
	RunE:  runGaps,
}

var (
	gapsInputFile  string
	gapsSkills     string
	gapsOutputFile string
)

func init() {
	gapsCmd.Flags().StringVarP(&gapsInputFile, "in", "i", "", "Path to AnalysisRequest JSON file (required)")
	gapsCmd.Flags().StringVarP(&gapsOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")

	gapsCmd.Flags().StringVar(&gapsSkills, "skills", "", "Extra skills, separated by commas or semicolons")

	if err := gapsCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(gapsCmd)
}

func runGaps(_ *cobra.Command, _ []string) error {
	req, err := readRequest(gapsInputFile)
	if err != nil {
		return err
	}
	userSkills := requestSkills(req, gapsSkills)
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	gaps := skills.ComputeGaps(userSkills, catalog.RequiredSkills(req.Trade), newSource())
	return writeOutput(gapsOutputFile, gaps, "")
}
