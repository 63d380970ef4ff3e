package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/tradepath/internal/compatibility"
	"github.com/jonathan/tradepath/internal/observability"
	"github.com/jonathan/tradepath/internal/skills"
	"github.com/jonathan/tradepath/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score compatibility with a trade",
	Long:  "Scores resume skills and questionnaire answers against a trade's required skills and reports the skill gaps.",
	RunE:  runScore,
}

var (
	scoreInputFile  string
	scoreSkills     string
	scoreOutputFile string
	scoreBreakdown  bool
)

// scoreOutput is the JSON written by the score command.
type scoreOutput struct {
	Trade string `json:"trade"`
	types.CompatibilityResult
	MatchedSkills []string                 `json:"matched_skills"`
	Breakdown     *compatibility.Breakdown `json:"breakdown,omitempty"`
}

func init() {
	scoreCmd.Flags().StringVarP(&scoreInputFile, "in", "i", "", "Path to AnalysisRequest JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	scoreCmd.Flags().BoolVar(&scoreBreakdown, "breakdown", false, "Include every score component in the output")

	scoreCmd.Flags().StringVar(&scoreSkills, "skills", "", "Extra skills, separated by commas or semicolons")

	if err := scoreCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	req, err := readRequest(scoreInputFile)
	if err != nil {
		return err
	}
	userSkills := requestSkills(req, scoreSkills)
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	result, breakdown := compatibility.ScoreWithCatalog(catalog, userSkills, req.Trade, req.Answers, newSource())
	out := scoreOutput{
		Trade:               req.Trade,
		CompatibilityResult: result,
		MatchedSkills:       matchedFor(catalog, userSkills, req.Trade),
	}
	if scoreBreakdown {
		out.Breakdown = &breakdown
	}

	if appConfig.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintCompatibility(req.Trade, result, out.MatchedSkills)
		printer.PrintBreakdown(breakdown)
	}

	return writeOutput(scoreOutputFile, out, compatibilityResultSchema)
}

func matchedFor(c *skills.Catalog, userSkills []string, trade string) []string {
	required := c.RequiredSkills(trade)
	names := make([]string, len(required))
	for i, s := range required {
		names[i] = s.Name
	}
	return skills.MatchingUserSkills(userSkills, names)
}
