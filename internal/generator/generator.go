// Package generator builds synthetic trading-psychology scenarios: an
// emotional state for a trader in a market, a sequence of decisions shaped by
// that state, and the performance summary folded from those decisions.
//
// A Generator is not safe for concurrent use. Build one per goroutine.
package generator

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"tradecoach/internal/catalog"
	apperrors "tradecoach/internal/errors"
	"tradecoach/internal/logging"
	"tradecoach/internal/models"
)

// Range is an inclusive integer range.
type Range struct {
	Min int
	Max int
}

func (r Range) validate(field string) error {
	if r.Min < 1 || r.Max < r.Min {
		return apperrors.NewValidationError(field, r, "need 1 <= min <= max")
	}
	return nil
}

// Default decision counts per mode.
var (
	DefaultRandomDecisions = Range{Min: 3, Max: 6}
	DefaultCustomDecisions = Range{Min: 3, Max: 5}
)

// DefaultSecondarySessionProbability is the chance a run spans two sessions.
const DefaultSecondarySessionProbability = 0.4

// Options configures a Generator.
type Options struct {
	Catalog                     *catalog.Catalog
	Rand                        Rand
	Clock                       func() time.Time
	IDs                         func() string
	Logger                      zerolog.Logger
	RandomDecisions             Range
	CustomDecisions             Range
	SecondarySessionProbability float64
}

// DefaultOptions returns options backed by the built-in catalog and an
// unseeded random source.
func DefaultOptions() Options {
	return Options{
		Catalog:                     catalog.Default(),
		Rand:                        NewRand(0),
		Clock:                       time.Now,
		IDs:                         uuid.NewString,
		Logger:                      zerolog.Nop(),
		RandomDecisions:             DefaultRandomDecisions,
		CustomDecisions:             DefaultCustomDecisions,
		SecondarySessionProbability: DefaultSecondarySessionProbability,
	}
}

// CustomRequest parameterizes a custom scenario.
type CustomRequest struct {
	MarketCondition models.MarketCondition `json:"marketCondition"`
	TimeFrame       models.TimeFrame       `json:"timeFrame"`
	AssetClass      models.AssetClass      `json:"assetClass"`
	Difficulty      models.Difficulty      `json:"difficulty"`
	EmotionTypes    []models.EmotionType   `json:"emotionTypes"`
}

// Validate checks every field before any generation starts.
func (r CustomRequest) Validate() error {
	if !r.MarketCondition.Valid() {
		return apperrors.NewValidationError("marketCondition", r.MarketCondition, "unknown market condition")
	}
	if !r.TimeFrame.Valid() {
		return apperrors.NewValidationError("timeFrame", r.TimeFrame, "unknown time frame")
	}
	if !r.AssetClass.Valid() {
		return apperrors.NewValidationError("assetClass", r.AssetClass, "unknown asset class")
	}
	if !r.Difficulty.Valid() {
		return apperrors.NewValidationError("difficulty", r.Difficulty, "unknown difficulty")
	}
	if len(r.EmotionTypes) == 0 {
		return apperrors.NewValidationError("emotionTypes", r.EmotionTypes, "at least one emotion is required")
	}
	for _, e := range r.EmotionTypes {
		if !e.Valid() {
			return apperrors.NewValidationError("emotionTypes", e, "unknown emotion")
		}
	}
	return nil
}

// Generator orchestrates scenario runs.
type Generator struct {
	catalog   *catalog.Catalog
	rng       Rand
	clock     func() time.Time
	ids       func() string
	logger    zerolog.Logger
	randomN   Range
	customN   Range
	secondary float64

	emotions  *EmotionGenerator
	decisions *DecisionGenerator
}

// New creates a Generator. A nil Catalog, Rand, Clock or IDs falls back to
// the built-in catalog, an unseeded source, time.Now and random UUIDs; zero
// decision ranges fall back to the package defaults. The zero Logger is
// silent. SecondarySessionProbability is taken as given: zero means a run
// never spans a second session, so callers wanting the usual mix start from
// DefaultOptions.
func New(opts Options) (*Generator, error) {
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.Rand == nil {
		opts.Rand = NewRand(0)
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.IDs == nil {
		opts.IDs = uuid.NewString
	}
	if opts.RandomDecisions == (Range{}) {
		opts.RandomDecisions = DefaultRandomDecisions
	}
	if opts.CustomDecisions == (Range{}) {
		opts.CustomDecisions = DefaultCustomDecisions
	}
	if err := opts.RandomDecisions.validate("random_decisions"); err != nil {
		return nil, err
	}
	if err := opts.CustomDecisions.validate("custom_decisions"); err != nil {
		return nil, err
	}
	if opts.SecondarySessionProbability < 0 || opts.SecondarySessionProbability > 1 {
		return nil, apperrors.NewValidationError("secondary_session_probability", opts.SecondarySessionProbability, "must be within [0, 1]")
	}

	tables := &opts.Catalog.Tables
	return &Generator{
		catalog:   opts.Catalog,
		rng:       opts.Rand,
		clock:     opts.Clock,
		ids:       opts.IDs,
		logger:    opts.Logger,
		randomN:   opts.RandomDecisions,
		customN:   opts.CustomDecisions,
		secondary: opts.SecondarySessionProbability,
		emotions:  NewEmotionGenerator(tables, opts.Rand),
		decisions: NewDecisionGenerator(tables, opts.Rand),
	}, nil
}

// GenerateRandom runs a random scenario template with a random trader.
func (g *Generator) GenerateRandom(ctx context.Context) (*models.ScenarioResult, error) {
	scenario, ok := g.catalog.RandomScenario(g.rng)
	if !ok {
		return nil, apperrors.NewGenerationError("scenario", "no scenario templates available", apperrors.ErrEmptyCatalog)
	}
	trader, ok := g.catalog.RandomTrader(g.rng)
	if !ok {
		return nil, apperrors.NewGenerationError("trader", "no trader profiles available", apperrors.ErrEmptyCatalog)
	}
	return g.runScenario(ctx, scenario, trader, nil, g.randomN)
}

// GenerateCustom runs a cloned scenario template overridden by req, with a
// fresh id and an emotion drawn from req.EmotionTypes.
func (g *Generator) GenerateCustom(ctx context.Context, req CustomRequest) (*models.ScenarioResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	base, ok := g.catalog.RandomScenario(g.rng)
	if !ok {
		return nil, apperrors.NewGenerationError("scenario", "no scenario templates available", apperrors.ErrEmptyCatalog)
	}
	trader, ok := g.catalog.RandomTrader(g.rng)
	if !ok {
		return nil, apperrors.NewGenerationError("trader", "no trader profiles available", apperrors.ErrEmptyCatalog)
	}

	scenario := base.Clone()
	scenario.ID = g.ids()
	scenario.MarketCondition = req.MarketCondition
	scenario.TimeFrame = req.TimeFrame
	scenario.AssetClass = req.AssetClass
	scenario.Difficulty = req.Difficulty

	return g.runScenario(ctx, scenario, trader, req.EmotionTypes, g.customN)
}

// runScenario is the single path both entry points share. A non-nil forced
// pool switches emotion selection to custom mode.
func (g *Generator) runScenario(ctx context.Context, scenario models.TradingScenario, trader models.TraderProfile, forced []models.EmotionType, n Range) (*models.ScenarioResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.NewGenerationError("run", "cancelled", err)
	}
	logger := logging.WithTrader(logging.WithScenario(g.logger, scenario.ID), trader.ID)

	var state models.EmotionalState
	if forced != nil {
		var err error
		if state, err = g.emotions.GenerateForced(scenario.MarketCondition, forced); err != nil {
			return nil, err
		}
	} else {
		state = g.emotions.Generate(scenario.MarketCondition, trader)
	}

	count := between(g.rng, n.Min, n.Max)
	sessions := planSessions(g.rng, count, g.secondary)
	date := g.clock()

	var tracker PositionTracker
	decisions := make([]models.TraderDecision, 0, count)
	for i := 0; i < count; i++ {
		d := g.decisions.Generate(DecisionInput{
			State:    state,
			Trader:   trader,
			Scenario: scenario,
			Session:  sessions.at(i),
			Position: tracker.Current(),
			Date:     date,
		})
		tracker.Apply(d)
		decisions = append(decisions, d)
	}
	orderTimestamps(decisions)

	if g.forceEmotionalMistake(decisions, state, trader.Strategy) {
		logger.Debug().Msg("No emotional decision generated, forced one for display")
	}
	decisions, ledger := FoldPnL(decisions)
	for i, d := range decisions {
		logging.LogDecision(logger, i, d)
	}

	result := &models.ScenarioResult{
		Scenario: scenario,
		Trader:   trader,
		TraderState: models.TraderState{
			TraderID:              trader.ID,
			ScenarioID:            scenario.ID,
			CurrentEmotionalState: state,
			Decisions:             decisions,
			Performance:           Summarize(decisions, g.displayProfitLoss(ledger.ProfitLoss), ledger.TotalTrades),
		},
	}
	logging.LogScenario(logger, result)
	return result, nil
}

// Summarize counts outcomes and emotional mistakes over decisions.
func Summarize(decisions []models.TraderDecision, profitLoss float64, totalTrades int) models.Performance {
	perf := models.Performance{ProfitLoss: profitLoss, TotalTrades: totalTrades}
	for _, d := range decisions {
		if d.Outcome == models.OutcomePositive {
			perf.CorrectDecisions++
		}
		if d.Emotional() {
			perf.EmotionalMistakes++
		}
	}
	return perf
}
