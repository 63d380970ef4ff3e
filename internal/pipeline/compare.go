package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/tradepath/internal/compatibility"
	"github.com/jonathan/tradepath/internal/parsing"
	"github.com/jonathan/tradepath/internal/pipeline/steps"
	"github.com/jonathan/tradepath/internal/random"
	"github.com/jonathan/tradepath/internal/skills"
	"github.com/jonathan/tradepath/internal/types"
)

// CompareOptions holds configuration for scoring every catalog trade.
type CompareOptions struct {
	Skills  []string
	Answers types.QuestionAnswers

	Catalog     *skills.Catalog
	Levels      random.Source
	Concurrency int // 0 means one goroutine per trade
	Logger      *slog.Logger
	OnProgress  ProgressCallback
}

// TradeComparison is one trade's score in a comparison.
type TradeComparison struct {
	Trade         string                  `json:"trade"`
	Score         int                     `json:"score"`
	Breakdown     compatibility.Breakdown `json:"breakdown"`
	GapCount      int                     `json:"gap_count"`
	MatchedSkills []string                `json:"matched_skills"`
}

// CompareTrades scores the user against every trade in the catalog
// concurrently. Results are ordered by score, highest first, then by trade
// name. Each trade draws skill levels from its own source seeded from
// opts.Levels, so a seeded comparison is reproducible.
func CompareTrades(ctx context.Context, opts CompareOptions) ([]TradeComparison, error) {
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
	progress := &progressEmitter{fn: opts.OnProgress}

	userSkills := parsing.NormalizeSkillList(opts.Skills)
	trades := catalog.TradeNames()
	seeds := make([]uint64, len(trades))
	for i := range trades {
		seeds[i] = uint64(levels.IntN(math.MaxInt))
	}

	results := make([]TradeComparison, len(trades))
	g, gCtx := errgroup.WithContext(ctx)
	if opts.Concurrency > 0 {
		g.SetLimit(opts.Concurrency)
	}

	for i, trade := range trades {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			result, breakdown := compatibility.ScoreWithCatalog(catalog, userSkills, trade, opts.Answers, random.NewSeeded(seeds[i]))
			results[i] = TradeComparison{
				Trade:         trade,
				Score:         result.Score,
				Breakdown:     breakdown,
				GapCount:      len(result.Gaps),
				MatchedSkills: matchedSkills(catalog, userSkills, trade),
			}
			progress.emitProgress(steps.StepCompareTrades, steps.CategoryAnalysis,
				fmt.Sprintf("Scored %s: %d%%", trade, result.Score), nil)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("trade comparison failed: %w", err)
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Trade < results[j].Trade
	})

	logger.Info("compared trades", slog.Int("trades", len(results)))
	return results, nil
}
