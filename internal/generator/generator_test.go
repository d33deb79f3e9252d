package generator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradecoach/internal/catalog"
	apperrors "tradecoach/internal/errors"
	"tradecoach/internal/models"
)

// scriptRand replays fixed draws, repeating the last one when exhausted.
type scriptRand struct {
	ints   []int
	floats []float64
}

func (s *scriptRand) IntN(n int) int {
	v := 0
	if len(s.ints) > 0 {
		v = s.ints[0]
		if len(s.ints) > 1 {
			s.ints = s.ints[1:]
		}
	}
	if v >= n {
		v = n - 1
	}
	return v
}

func (s *scriptRand) Float64() float64 {
	v := 0.0
	if len(s.floats) > 0 {
		v = s.floats[0]
		if len(s.floats) > 1 {
			s.floats = s.floats[1:]
		}
	}
	return v
}

func decision(a models.Action, o models.Outcome) models.TraderDecision {
	return models.TraderDecision{Action: a, Outcome: o}
}

func TestFoldPnL_BuyThenExit(t *testing.T) {
	out, ledger := FoldPnL([]models.TraderDecision{
		decision(models.ActionBuy, models.OutcomePositive),
		decision(models.ActionExit, models.OutcomePositive),
	})

	require.Len(t, out, 2)
	require.NotNil(t, out[0].EntryPrice)
	assert.Equal(t, 100.0, *out[0].EntryPrice)
	require.NotNil(t, out[1].TradeProfit)
	assert.Equal(t, 3.0, *out[1].TradeProfit)
	assert.Equal(t, 103.0, *out[1].ExitPrice)
	assert.Equal(t, 3.0, ledger.ProfitLoss)
	assert.Equal(t, 2, ledger.TotalTrades)
	assert.Zero(t, ledger.OpenUnits)
}

func TestFoldPnL(t *testing.T) {
	tests := []struct {
		name      string
		decisions []models.TraderDecision
		pnl       float64
		trades    int
		open      float64
	}{
		{
			name: "all hold",
			decisions: []models.TraderDecision{
				decision(models.ActionHold, models.OutcomePositive),
				decision(models.ActionHold, models.OutcomeNegative),
				decision(models.ActionHold, models.OutcomePositive),
			},
		},
		{
			name: "exit while flat is not a trade",
			decisions: []models.TraderDecision{
				decision(models.ActionExit, models.OutcomePositive),
				decision(models.ActionSell, models.OutcomeNegative),
			},
		},
		{
			name: "losing exit",
			decisions: []models.TraderDecision{
				decision(models.ActionBuy, models.OutcomeNegative),
				decision(models.ActionSell, models.OutcomeNegative),
			},
			pnl:    -3,
			trades: 2,
		},
		{
			name: "scale in then partial win then full loss",
			decisions: []models.TraderDecision{
				decision(models.ActionBuy, models.OutcomePositive),
				decision(models.ActionIncreasePosition, models.OutcomePositive),
				decision(models.ActionDecreasePosition, models.OutcomePositive),
				decision(models.ActionExit, models.OutcomeNegative),
			},
			// 0.75 units closed at +2, then 0.75 units at -3.
			pnl:    -0.75,
			trades: 4,
		},
		{
			name: "partial reduction leaves units open",
			decisions: []models.TraderDecision{
				decision(models.ActionBuy, models.OutcomePositive),
				decision(models.ActionDecreasePosition, models.OutcomeNegative),
			},
			pnl:    -1,
			trades: 2,
			open:   0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ledger := FoldPnL(tt.decisions)
			assert.InDelta(t, tt.pnl, ledger.ProfitLoss, 1e-9)
			assert.Equal(t, tt.trades, ledger.TotalTrades)
			assert.InDelta(t, tt.open, ledger.OpenUnits, 1e-9)
		})
	}
}

func TestFoldPnL_DoesNotMutateInput(t *testing.T) {
	in := []models.TraderDecision{
		decision(models.ActionBuy, models.OutcomePositive),
		decision(models.ActionExit, models.OutcomePositive),
	}
	FoldPnL(in)
	assert.Nil(t, in[0].EntryPrice)
	assert.Nil(t, in[1].TradeProfit)
}

func TestDisplayProfitLoss(t *testing.T) {
	g := seededGenerator(7)

	assert.Equal(t, 12.5, g.displayProfitLoss(12.5))
	assert.Equal(t, -0.01, g.displayProfitLoss(-0.01))

	for i := 0; i < 200; i++ {
		v := g.displayProfitLoss(0)
		assert.GreaterOrEqual(t, v, -3.0)
		assert.LessOrEqual(t, v, 3.0)
	}
}

func TestAllHoldRunSummary(t *testing.T) {
	g := seededGenerator(11)
	holds := []models.TraderDecision{
		decision(models.ActionHold, models.OutcomePositive),
		decision(models.ActionHold, models.OutcomeNegative),
		decision(models.ActionHold, models.OutcomePositive),
	}
	_, ledger := FoldPnL(holds)
	perf := Summarize(holds, g.displayProfitLoss(ledger.ProfitLoss), ledger.TotalTrades)

	assert.Equal(t, 0, perf.TotalTrades)
	assert.GreaterOrEqual(t, perf.ProfitLoss, -3.0)
	assert.LessOrEqual(t, perf.ProfitLoss, 3.0)
	assert.Equal(t, 2, perf.CorrectDecisions)
}

func TestViolationProbability(t *testing.T) {
	tests := []struct {
		intensity     int
		fits, misfits bool
		want          float64
	}{
		{intensity: 10, want: 0.7},
		{intensity: 10, misfits: true, want: 0.9},
		{intensity: 10, fits: true, want: 0.5},
		{intensity: 1, fits: true, want: 0},
		{intensity: 5, want: 0.35},
		{intensity: 20, misfits: true, want: 1},
	}
	for _, tt := range tests {
		got := ViolationProbability(tt.intensity, tt.fits, tt.misfits)
		assert.InDelta(t, tt.want, got, 1e-9, "intensity=%d fits=%v misfits=%v", tt.intensity, tt.fits, tt.misfits)
	}
}

func TestEmotionGenerator_AggressiveGreedyTrader(t *testing.T) {
	c := catalog.Default()
	trader, err := c.TraderByID("trader3")
	require.NoError(t, err)
	require.Equal(t, models.PersonalityAggressive, trader.Personality)
	require.True(t, trader.HasTendency(models.EmotionGreed))

	for seed := uint64(1); seed <= 200; seed++ {
		eg := NewEmotionGenerator(&c.Tables, NewRand(seed))
		st := eg.Generate(models.MarketTrending, trader)

		assert.Contains(t, []models.EmotionType{models.EmotionGreed, models.EmotionOverconfidence}, st.Primary)
		assert.GreaterOrEqual(t, st.Intensity, 5)
		assert.LessOrEqual(t, st.Intensity, 8)
		assert.NotEmpty(t, st.Trigger)
	}
}

func TestEmotionGenerator_FallsBackToMarketPool(t *testing.T) {
	c := catalog.Default()
	trader := models.TraderProfile{
		ID:                  "calm",
		Personality:         models.PersonalityPatient,
		EmotionalTendencies: []models.EmotionType{models.EmotionDesperation},
	}

	seen := map[models.EmotionType]bool{}
	for seed := uint64(1); seed <= 300; seed++ {
		st := NewEmotionGenerator(&c.Tables, NewRand(seed)).Generate(models.MarketChoppy, trader)
		seen[st.Primary] = true
		assert.GreaterOrEqual(t, st.Intensity, 1)
		assert.LessOrEqual(t, st.Intensity, 4)
	}
	for e := range seen {
		assert.Contains(t, c.Tables.MarketEmotions[models.MarketChoppy], e)
	}
	assert.Len(t, seen, len(c.Tables.MarketEmotions[models.MarketChoppy]))
}

func TestEmotionGenerator_IntensityClamp(t *testing.T) {
	c := catalog.Default()
	trader := models.TraderProfile{Personality: models.PersonalityAnalytical}

	// Offset draw of 0 maps to -2: base 3 becomes 1.
	st := NewEmotionGenerator(&c.Tables, &scriptRand{ints: []int{0}}).Generate(models.MarketBearish, trader)
	assert.Equal(t, 1, st.Intensity)
}

func TestEmotionGenerator_ForcedRejectsEmptyPool(t *testing.T) {
	c := catalog.Default()
	_, err := NewEmotionGenerator(&c.Tables, NewRand(1)).GenerateForced(models.MarketBullish, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInputValidation)
}

func TestDecisionGenerator_FearfulTraderReducesOpenPosition(t *testing.T) {
	c := catalog.Default()
	trader, err := c.TraderByID("trader2")
	require.NoError(t, err)
	scenario, err := c.ScenarioByID("scenario4")
	require.NoError(t, err)

	// Violation draw 0 always violates; the next draw picks decrease.
	rng := &scriptRand{floats: []float64{0, 0.1, 0.9}}
	dg := NewDecisionGenerator(&c.Tables, rng)
	d := dg.Generate(DecisionInput{
		State:    models.EmotionalState{Primary: models.EmotionFear, Intensity: 9},
		Trader:   trader,
		Scenario: scenario,
		Session:  models.SessionLondon,
		Position: Position{Open: true, Direction: models.DirectionShort},
		Date:     fixedDate,
	})

	assert.Equal(t, models.ActionDecreasePosition, d.Action)
	assert.Equal(t, models.DirectionShort, d.Direction)
	assert.True(t, d.ViolatesStrategy)
	require.NotNil(t, d.EmotionalInfluence)
	assert.Equal(t, models.EmotionFear, *d.EmotionalInfluence)
	assert.Contains(t, c.Tables.EmotionReasoning[models.EmotionFear], d.Reasoning)
	assert.Equal(t, models.OutcomeNegative, d.Outcome)
}

func TestDecisionGenerator_FlatHoldHasNoDirection(t *testing.T) {
	c := catalog.Default()
	trader, err := c.TraderByID("trader2")
	require.NoError(t, err)
	scenario, err := c.ScenarioByID("scenario3")
	require.NoError(t, err)

	// No violation (0.99), long direction (0.1), textbook hold (0.1).
	rng := &scriptRand{floats: []float64{0.99, 0.1, 0.1, 0.1}}
	d := NewDecisionGenerator(&c.Tables, rng).Generate(DecisionInput{
		State:    models.EmotionalState{Primary: models.EmotionBoredom, Intensity: 2},
		Trader:   trader,
		Scenario: scenario,
		Session:  models.SessionAsian,
		Date:     fixedDate,
	})

	assert.Equal(t, models.ActionHold, d.Action)
	assert.Equal(t, models.DirectionNone, d.Direction)
	assert.False(t, d.ViolatesStrategy)
	assert.Nil(t, d.EmotionalInfluence)
	assert.Contains(t, d.Reasoning, c.Tables.SessionNotes[models.SessionAsian])
	assert.Equal(t, models.OutcomePositive, d.Outcome)
}

func TestDecisionGenerator_SessionNoteSkippedWhenStrategyMentionsSession(t *testing.T) {
	c := catalog.Default()
	trader, err := c.TraderByID("trader1")
	require.NoError(t, err)
	trader.Strategy.Rules = append(trader.Strategy.Rules, "Avoid the overnight session")

	dg := NewDecisionGenerator(&c.Tables, NewRand(3))
	assert.Equal(t, "plan", dg.withSessionNote("plan", models.SessionOvernight, trader.Strategy))
	assert.Equal(t, "plan "+c.Tables.SessionNotes[models.SessionAsian], dg.withSessionNote("plan", models.SessionAsian, trader.Strategy))
	assert.Equal(t, "plan", dg.withSessionNote("plan", models.SessionLondon, trader.Strategy))
}

func TestPositionFromHistory(t *testing.T) {
	long := func(a models.Action) models.TraderDecision {
		return models.TraderDecision{Action: a, Direction: models.DirectionLong}
	}
	short := func(a models.Action) models.TraderDecision {
		return models.TraderDecision{Action: a, Direction: models.DirectionShort}
	}
	tests := []struct {
		name  string
		prior []models.TraderDecision
		want  Position
	}{
		{name: "empty", want: Position{}},
		{name: "open long", prior: []models.TraderDecision{long(models.ActionBuy)}, want: Position{Open: true, Direction: models.DirectionLong}},
		{name: "closed", prior: []models.TraderDecision{short(models.ActionBuy), short(models.ActionExit)}, want: Position{}},
		{name: "partial keeps open", prior: []models.TraderDecision{short(models.ActionBuy), short(models.ActionDecreasePosition)}, want: Position{Open: true, Direction: models.DirectionShort}},
		{name: "reopened after sell", prior: []models.TraderDecision{long(models.ActionBuy), long(models.ActionSell), short(models.ActionBuy)}, want: Position{Open: true, Direction: models.DirectionShort}},
		{name: "hold while flat", prior: []models.TraderDecision{{Action: models.ActionHold}}, want: Position{}},
		{name: "increase inherits side", prior: []models.TraderDecision{short(models.ActionBuy), {Action: models.ActionHold}, {Action: models.ActionIncreasePosition}}, want: Position{Open: true, Direction: models.DirectionShort}},
		{name: "entry without side after exit is long", prior: []models.TraderDecision{short(models.ActionBuy), short(models.ActionExit), {Action: models.ActionBuy}}, want: Position{Open: true, Direction: models.DirectionLong}},
		{name: "decrease only", prior: []models.TraderDecision{long(models.ActionDecreasePosition)}, want: Position{}},
		{name: "latest side wins", prior: []models.TraderDecision{long(models.ActionBuy), short(models.ActionIncreasePosition), {Action: models.ActionHold}}, want: Position{Open: true, Direction: models.DirectionShort}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PositionFromHistory(tt.prior))
		})
	}
}

func TestPlanSessions(t *testing.T) {
	all := models.AllSessions()
	tests := []struct {
		name      string
		rng       *scriptRand
		n         int
		p         float64
		primary   models.Session
		secondary models.Session
		split     int
	}{
		{name: "never", rng: &scriptRand{ints: []int{2}, floats: []float64{0}}, n: 5, p: 0, primary: all[2], split: -1},
		{name: "odd run", rng: &scriptRand{ints: []int{0, 0}, floats: []float64{0}}, n: 5, p: 1, primary: all[0], secondary: all[1], split: 3},
		{name: "even run", rng: &scriptRand{ints: []int{1, 0}, floats: []float64{0}}, n: 4, p: 1, primary: all[1], secondary: all[0], split: 2},
		{name: "secondary skips primary", rng: &scriptRand{ints: []int{1, 1}, floats: []float64{0}}, n: 3, p: 1, primary: all[1], secondary: all[2], split: 2},
		{name: "single decision", rng: &scriptRand{ints: []int{0, 0}, floats: []float64{0}}, n: 1, p: 1, primary: all[0], secondary: all[1], split: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := planSessions(tt.rng, tt.n, tt.p)
			assert.Equal(t, tt.primary, plan.primary)
			assert.Equal(t, tt.secondary, plan.secondary)
			assert.Equal(t, tt.split, plan.split)
			if plan.split >= 0 {
				assert.NotEqual(t, plan.primary, plan.secondary)
				assert.Equal(t, plan.primary, plan.at(plan.split-1))
				if plan.split < tt.n {
					assert.Equal(t, plan.secondary, plan.at(tt.n-1))
				}
			}
		})
	}
}

func TestOrderTimestamps(t *testing.T) {
	at := func(h int) time.Time { return fixedDate.Add(time.Duration(h) * time.Hour) }
	decisions := []models.TraderDecision{
		{Action: models.ActionBuy, Session: models.SessionLondon, Timestamp: at(11)},
		{Action: models.ActionHold, Session: models.SessionLondon, Timestamp: at(8)},
		{Action: models.ActionExit, Session: models.SessionLondon, Timestamp: at(9)},
		{Action: models.ActionBuy, Session: models.SessionNewYork, Timestamp: at(15)},
		{Action: models.ActionSell, Session: models.SessionNewYork, Timestamp: at(14)},
	}
	orderTimestamps(decisions)

	want := []time.Time{at(8), at(9), at(11), at(14), at(15)}
	for i, d := range decisions {
		assert.Equal(t, want[i], d.Timestamp, "decision %d", i)
	}
	assert.Equal(t, models.ActionBuy, decisions[0].Action, "decisions keep their order")
	assert.Equal(t, models.ActionSell, decisions[4].Action)
}

func TestSessionTime(t *testing.T) {
	windows := catalog.Default().Tables.SessionWindows
	rng := NewRand(99)
	for _, s := range models.AllSessions() {
		for i := 0; i < 500; i++ {
			ts := SessionTime(rng, windows[s], fixedDate)
			assert.True(t, InSession(windows[s], ts), "%s: %s", s, ts.Format("15:04"))
			assert.Equal(t, time.UTC, ts.Location())
		}
	}

	ny := []catalog.ClockWindow{{StartHour: 9, StartMinute: 30, EndHour: 16}}
	ts := SessionTime(&scriptRand{ints: []int{0, 0}}, ny, fixedDate)
	assert.Equal(t, "09:30", ts.Format("15:04"))
}

func TestGenerateRandom_EmptyCatalog(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*catalog.Catalog)
		stage  string
	}{
		{name: "no scenarios", mutate: func(c *catalog.Catalog) { c.Scenarios = nil }, stage: "scenario"},
		{name: "no traders", mutate: func(c *catalog.Catalog) { c.Traders = nil }, stage: "trader"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := catalog.Default()
			tt.mutate(c)
			g, err := New(Options{Catalog: c, Rand: NewRand(1)})
			require.NoError(t, err)

			res, err := g.GenerateRandom(context.Background())
			assert.Nil(t, res)
			assert.ErrorIs(t, err, apperrors.ErrEmptyCatalog)

			var genErr *apperrors.GenerationError
			require.ErrorAs(t, err, &genErr)
			assert.Equal(t, tt.stage, genErr.Stage)
		})
	}
}

func TestGenerateCustom_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CustomRequest)
		field  string
	}{
		{name: "no emotions", mutate: func(r *CustomRequest) { r.EmotionTypes = nil }, field: "emotionTypes"},
		{name: "unknown emotion", mutate: func(r *CustomRequest) { r.EmotionTypes = []models.EmotionType{"joy"} }, field: "emotionTypes"},
		{name: "unknown market", mutate: func(r *CustomRequest) { r.MarketCondition = "sideways" }, field: "marketCondition"},
		{name: "unknown time frame", mutate: func(r *CustomRequest) { r.TimeFrame = "weekly" }, field: "timeFrame"},
		{name: "unknown asset", mutate: func(r *CustomRequest) { r.AssetClass = "art" }, field: "assetClass"},
		{name: "unknown difficulty", mutate: func(r *CustomRequest) { r.Difficulty = "brutal" }, field: "difficulty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := fearRequest()
			tt.mutate(&req)
			_, err := seededGenerator(5).GenerateCustom(context.Background(), req)

			var vErr *apperrors.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
			assert.ErrorIs(t, err, apperrors.ErrInputValidation)
		})
	}
}

func TestGenerateCustom_OverridesClone(t *testing.T) {
	c := catalog.Default()
	g, err := New(Options{
		Catalog: c,
		Rand:    NewRand(21),
		Clock:   func() time.Time { return fixedDate },
		IDs:     func() string { return "fresh" },
	})
	require.NoError(t, err)

	req := fearRequest()
	res, err := g.GenerateCustom(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "fresh", res.Scenario.ID)
	assert.Equal(t, "fresh", res.TraderState.ScenarioID)
	assert.Equal(t, req.MarketCondition, res.Scenario.MarketCondition)
	assert.Equal(t, req.TimeFrame, res.Scenario.TimeFrame)
	assert.Equal(t, req.AssetClass, res.Scenario.AssetClass)
	assert.Equal(t, req.Difficulty, res.Scenario.Difficulty)

	for _, s := range c.Scenarios {
		assert.NotEqual(t, "fresh", s.ID)
	}
	assert.Equal(t, catalog.Default().Scenarios, c.Scenarios)
}

func TestGenerate_SameSeedSameResult(t *testing.T) {
	a, err := seededGenerator(42).GenerateRandom(context.Background())
	require.NoError(t, err)
	b, err := seededGenerator(42).GenerateRandom(context.Background())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerate_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := seededGenerator(1).GenerateRandom(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNew_ZeroOptions(t *testing.T) {
	g, err := New(Options{Rand: NewRand(11)})
	require.NoError(t, err)
	assert.NotNil(t, g.catalog)
	assert.Equal(t, DefaultRandomDecisions, g.randomN)
	assert.Equal(t, DefaultCustomDecisions, g.customN)
	assert.Zero(t, g.secondary)

	for i := 0; i < 50; i++ {
		res, err := g.GenerateRandom(context.Background())
		require.NoError(t, err)
		first := res.TraderState.Decisions[0].Session
		for _, d := range res.TraderState.Decisions {
			assert.Equal(t, first, d.Session, "zero probability keeps one session")
		}
	}
}

func TestNew_RejectsBadOptions(t *testing.T) {
	_, err := New(Options{RandomDecisions: Range{Min: 4, Max: 2}})
	assert.ErrorIs(t, err, apperrors.ErrInputValidation)

	_, err = New(Options{SecondarySessionProbability: 1.5})
	assert.ErrorIs(t, err, apperrors.ErrInputValidation)
}

func TestSimulate(t *testing.T) {
	opts := Options{
		Catalog:                     catalog.Default(),
		Clock:                       func() time.Time { return fixedDate },
		SecondarySessionProbability: DefaultSecondarySessionProbability,
	}
	req := SimulationRequest{Runs: 60, Workers: 4, Seed: 1234}

	a, err := Simulate(context.Background(), opts, req)
	require.NoError(t, err)
	b, err := Simulate(context.Background(), opts, req)
	require.NoError(t, err)

	assert.Equal(t, 60, a.Runs)
	assert.Equal(t, 4, a.Workers)
	assert.GreaterOrEqual(t, a.MeanDecisions, 3.0)
	assert.LessOrEqual(t, a.MeanDecisions, 6.0)
	assert.Greater(t, a.ViolationRate, 0.0)

	total := 0
	for _, n := range a.Emotions {
		total += n
	}
	assert.Equal(t, 60, total)

	a.Duration, b.Duration = 0, 0
	assert.Equal(t, a, b)
}

func TestSimulate_WorkersClampedToRuns(t *testing.T) {
	report, err := Simulate(context.Background(), Options{}, SimulationRequest{Runs: 3, Workers: 64, Seed: 9})
	require.NoError(t, err)
	assert.Equal(t, 3, report.Workers)
	assert.Equal(t, 3, report.Runs)
}

func TestSimulate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Simulate(ctx, Options{}, SimulationRequest{Runs: 10, Workers: 2, Seed: 1})
	assert.ErrorIs(t, err, context.Canceled)
}
