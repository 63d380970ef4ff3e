package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jonathan/tradepath/internal/compatibility"
	"github.com/jonathan/tradepath/internal/journey"
	"github.com/jonathan/tradepath/internal/parsing"
	"github.com/jonathan/tradepath/internal/pipeline/steps"
	"github.com/jonathan/tradepath/internal/random"
	"github.com/jonathan/tradepath/internal/resume"
	"github.com/jonathan/tradepath/internal/skills"
	"github.com/jonathan/tradepath/internal/types"
)

// AnalyzeOptions holds configuration for one analysis run
type AnalyzeOptions struct {
	Trade   string
	Skills  []string
	Answers types.QuestionAnswers

	// Resume, when set, is passed to Extractor and the extracted skills are
	// merged with Skills.
	Resume    *resume.Document
	Extractor resume.Extractor

	// Completed lists skills the learner has already finished; it drives
	// the next recommended skill.
	Completed []string

	Catalog    *skills.Catalog // nil means skills.Default()
	Levels     random.Source   // nil means random.New()
	Logger     *slog.Logger
	OnProgress ProgressCallback
}

// Report is the full result of an analysis run.
type Report struct {
	ID              string                  `json:"id"`
	Trade           string                  `json:"trade"`
	Skills          []string                `json:"skills"`
	ExtractedSkills []string                `json:"extracted_skills,omitempty"`
	UsedSample      bool                    `json:"used_sample"`
	Score           int                     `json:"score"`
	Breakdown       compatibility.Breakdown `json:"breakdown"`
	Gaps            []types.SkillGap        `json:"gaps"`
	Journey         []types.JourneyNode     `json:"journey"`
	TotalHours      int                     `json:"total_hours"`
	MatchedSkills   []string                `json:"matched_skills"`
	NextRecommended string                  `json:"next_recommended,omitempty"`
	Message         string                  `json:"message"`
	NextSteps       []NextStep              `json:"next_steps"`
}

// Result returns the compatibility result contained in the report.
func (r *Report) Result() types.CompatibilityResult {
	return types.CompatibilityResult{Score: r.Score, Gaps: r.Gaps}
}

// Analyze scores a user against a trade and plans their learning journey.
// When no trade or no skills are available after extraction, the sample
// profile is analyzed instead and Report.UsedSample is set.
func Analyze(ctx context.Context, opts AnalyzeOptions) (*Report, error) {
	catalog := opts.Catalog
	if catalog == nil {
		catalog = skills.Default()
	}
	levels := opts.Levels
	if levels == nil {
		levels = random.New()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	runID := uuid.New().String()
	logger = logger.With(slog.String("run_id", runID))
	tracker := steps.NewTracker()
	progress := &progressEmitter{runID: runID, fn: opts.OnProgress, tracker: tracker}

	report := &Report{ID: runID}
	userSkills := parsing.NormalizeSkillList(opts.Skills)

	// Step 1: Extract resume skills
	if opts.Resume != nil {
		if opts.Extractor == nil {
			return nil, fmt.Errorf("resume %s given without an extractor", opts.Resume.Name)
		}
		logger.Info("extracting resume skills", slog.String("document", opts.Resume.Name))
		extracted, err := opts.Extractor.Extract(ctx, *opts.Resume)
		if err != nil {
			return nil, fmt.Errorf("resume extraction failed: %w", err)
		}
		report.ExtractedSkills = extracted
		userSkills = parsing.NormalizeSkillList(append(userSkills, extracted...))
		tracker.Complete(steps.StepExtractResume)
		progress.emitProgress(steps.StepExtractResume, steps.CategoryIngestion,
			fmt.Sprintf("Extracted %d skills from %s", len(extracted), opts.Resume.Name), extracted)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	trade := opts.Trade
	answers := opts.Answers
	if trade == "" || len(userSkills) == 0 {
		logger.Info("no assessment data, analyzing the sample profile")
		sample := SampleRequest()
		trade, userSkills, answers = sample.Trade, sample.Skills, sample.Answers
		report.UsedSample = true
	}
	report.Trade = trade
	report.Skills = userSkills

	// Step 2: Score compatibility and compute gaps
	result, breakdown := compatibility.ScoreWithCatalog(catalog, userSkills, trade, answers, levels)
	report.Score = result.Score
	report.Breakdown = breakdown
	tracker.Complete(steps.StepScoreCompatibility)
	progress.emitProgress(steps.StepScoreCompatibility, steps.CategoryAnalysis,
		fmt.Sprintf("Compatibility with %s: %d%%", trade, result.Score), breakdown)

	report.Gaps = result.Gaps
	tracker.Complete(steps.StepComputeGaps)
	progress.emitProgress(steps.StepComputeGaps, steps.CategoryAnalysis,
		fmt.Sprintf("Found %d skill gaps", len(result.Gaps)), result.Gaps)

	// Step 3: Build the learning journey
	if err := tracker.ValidateDependencies(steps.StepBuildJourney); err != nil {
		return nil, err
	}
	report.Journey = journey.Build(report.Gaps)
	report.TotalHours = journey.TotalHours(report.Journey)
	if next, ok := journey.NextRecommended(report.Gaps, opts.Completed); ok {
		report.NextRecommended = next
	}
	tracker.Complete(steps.StepBuildJourney)
	progress.emitProgress(steps.StepBuildJourney, steps.CategoryPlanning,
		fmt.Sprintf("Planned %d learning steps (%d hours)", len(report.Journey), report.TotalHours), report.Journey)

	// Step 4: Summarize
	if err := tracker.ValidateDependencies(steps.StepSummarize); err != nil {
		return nil, err
	}
	report.MatchedSkills = matchedSkills(catalog, userSkills, trade)
	report.Message = MotivationalMessage(report.Score)
	report.NextSteps = NextSteps(trade, report.Gaps)
	tracker.Complete(steps.StepSummarize)
	progress.emitProgress(steps.StepSummarize, steps.CategoryPlanning, report.Message, nil)

	logger.Info("analysis complete",
		slog.String("trade", trade),
		slog.Int("score", report.Score),
		slog.Int("gaps", len(report.Gaps)),
		slog.Bool("sample", report.UsedSample))

	return report, nil
}

func matchedSkills(c *skills.Catalog, userSkills []string, trade string) []string {
	required := c.RequiredSkills(trade)
	names := make([]string, len(required))
	for i, s := range required {
		names[i] = s.Name
	}
	return skills.MatchingUserSkills(userSkills, names)
}
