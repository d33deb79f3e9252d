package catalog

import (
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "tradecoach/internal/errors"
	"tradecoach/internal/models"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Len(t, c.Strategies, 5)
	assert.Len(t, c.Traders, 5)
	assert.Len(t, c.Scenarios, 5)
}

func TestDefaultIsFreshCopy(t *testing.T) {
	a := Default()
	a.Traders[0].Name = "changed"
	a.Tables.MarketEmotions[models.MarketBullish] = nil

	b := Default()
	assert.Equal(t, "Alex Thompson", b.Traders[0].Name)
	assert.NotEmpty(t, b.Tables.MarketEmotions[models.MarketBullish])
	assert.Equal(t, a.Scenarios, b.Scenarios)
}

func TestLookups(t *testing.T) {
	c := Default()

	trader, err := c.TraderByID("trader4")
	require.NoError(t, err)
	assert.Equal(t, "Emma Rodriguez", trader.Name)

	_, err = c.TraderByID("nobody")
	assert.ErrorIs(t, err, apperrors.ErrTraderNotFound)

	scenario, err := c.ScenarioByID("scenario2")
	require.NoError(t, err)
	assert.Equal(t, models.MarketChoppy, scenario.MarketCondition)

	scenario.NewsEvents[0].Headline = "mutated"
	again, err := c.ScenarioByID("scenario2")
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", again.NewsEvents[0].Headline)

	_, err = c.ScenarioByID("missing")
	assert.ErrorIs(t, err, apperrors.ErrScenarioNotFound)
}

func TestFilterScenarios(t *testing.T) {
	c := Default()
	tests := []struct {
		name   string
		filter ScenarioFilter
		want   []string
	}{
		{name: "no filter", filter: ScenarioFilter{}, want: []string{"scenario1", "scenario2", "scenario3", "scenario4", "scenario5"}},
		{name: "intraday stocks", filter: ScenarioFilter{TimeFrame: models.TimeFrameIntraday, AssetClass: models.AssetStocks}, want: []string{"scenario1", "scenario2", "scenario4"}},
		{name: "hard", filter: ScenarioFilter{Difficulty: models.DifficultyHard}, want: []string{"scenario2", "scenario4"}},
		{name: "ranging", filter: ScenarioFilter{MarketCondition: models.MarketRanging}, want: []string{"scenario3"}},
		{name: "no match", filter: ScenarioFilter{AssetClass: models.AssetBonds}, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ids []string
			for _, s := range c.FilterScenarios(tt.filter) {
				ids = append(ids, s.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestRandomPicksOnEmptyCatalog(t *testing.T) {
	c := &Catalog{}
	rng := rand.New(rand.NewPCG(1, 2))
	_, ok := c.RandomTrader(rng)
	assert.False(t, ok)
	_, ok = c.RandomScenario(rng)
	assert.False(t, ok)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Catalog)
		section string
	}{
		{name: "no traders", mutate: func(c *Catalog) { c.Traders = nil }, section: "traders"},
		{name: "no scenarios", mutate: func(c *Catalog) { c.Scenarios = nil }, section: "scenarios"},
		{name: "duplicate trader", mutate: func(c *Catalog) { c.Traders[1].ID = c.Traders[0].ID }, section: "traders"},
		{name: "unknown tendency", mutate: func(c *Catalog) {
			c.Traders[0].EmotionalTendencies = append(c.Traders[0].EmotionalTendencies, "joy")
		}, section: "traders"},
		{name: "unknown market", mutate: func(c *Catalog) { c.Scenarios[0].MarketCondition = "sideways" }, section: "scenarios"},
		{name: "unknown scenario asset", mutate: func(c *Catalog) { c.Scenarios[1].AssetClass = "art" }, section: "scenarios"},
		{name: "unknown scenario difficulty", mutate: func(c *Catalog) { c.Scenarios[2].Difficulty = "insane" }, section: "scenarios"},
		{name: "unknown common mistake", mutate: func(c *Catalog) {
			c.Scenarios[0].CommonMistakes = append(c.Scenarios[0].CommonMistakes, "panic_selling")
		}, section: "scenarios"},
		{name: "unknown strategy condition", mutate: func(c *Catalog) {
			c.Strategies[0].BestMarketConditions = append(c.Strategies[0].BestMarketConditions, "sideways")
		}, section: "strategies"},
		{name: "unknown trader strategy time frame", mutate: func(c *Catalog) {
			c.Traders[2].Strategy.TimeFrames = []models.TimeFrame{"weekly"}
		}, section: "traders"},
		{name: "unknown pool emotion", mutate: func(c *Catalog) {
			c.Tables.MarketEmotions[models.MarketBullish] = []models.EmotionType{"greedy"}
		}, section: "market_emotions"},
		{name: "unknown pool market", mutate: func(c *Catalog) {
			c.Tables.MarketEmotions["sideways"] = []models.EmotionType{models.EmotionBoredom}
		}, section: "market_emotions"},
		{name: "unknown behavior", mutate: func(c *Catalog) {
			c.Tables.Behaviors[models.EmotionFear] = []models.TradingBehavior{models.BehaviorHesitation, models.BehaviorOversizing, "freezing"}
		}, section: "behaviors"},
		{name: "unknown behavior emotion", mutate: func(c *Catalog) {
			c.Tables.Behaviors["greedy"] = []models.TradingBehavior{models.BehaviorOversizing}
		}, section: "behaviors"},
		{name: "missing emotion pool", mutate: func(c *Catalog) { delete(c.Tables.MarketEmotions, models.MarketVolatile) }, section: "market_emotions"},
		{name: "empty trigger category", mutate: func(c *Catalog) { c.Tables.Triggers[models.MarketBullish][0].Phrases = nil }, section: "triggers"},
		{name: "short behavior set", mutate: func(c *Catalog) {
			c.Tables.Behaviors[models.EmotionHope] = c.Tables.Behaviors[models.EmotionHope][:2]
		}, section: "behaviors"},
		{name: "missing reasoning", mutate: func(c *Catalog) { delete(c.Tables.EmotionReasoning, models.EmotionBoredom) }, section: "emotion_reasoning"},
		{name: "missing neutral hold", mutate: func(c *Catalog) { c.Tables.ActionReasoning[ReasonHold] = PhrasePool{} }, section: "action_reasoning"},
		{name: "inverted window", mutate: func(c *Catalog) {
			c.Tables.SessionWindows[models.SessionLondon] = []ClockWindow{{StartHour: 11, EndHour: 3}}
		}, section: "session_windows"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			err := c.Validate()

			var catErr *apperrors.CatalogError
			require.ErrorAs(t, err, &catErr)
			assert.Equal(t, tt.section, catErr.Section)
			assert.ErrorIs(t, err, apperrors.ErrCatalogInvalid)
		})
	}
}

func TestPhrasePoolFallsBackToNeutral(t *testing.T) {
	p := PhrasePool{Long: []string{"up"}, Neutral: []string{"flat"}}
	assert.Equal(t, []string{"up"}, p.For(models.DirectionLong))
	assert.Equal(t, []string{"flat"}, p.For(models.DirectionShort))
	assert.Equal(t, []string{"flat"}, p.For(models.DirectionNone))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	doc := `
traders:
  - id: solo
    name: Solo Trader
    personality: cautious
    experience: beginner
    emotional_tendencies: [fear, hope]
    strategy:
      name: Overnight Swing
      type: swing
      best_market_conditions: [trending]
      worst_market_conditions: [choppy]
      rules:
        - Hold through the overnight session only with a stop
tables:
  session_notes:
    London: London opens with a burst of volume.
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)

	require.Len(t, c.Traders, 1)
	assert.Equal(t, "solo", c.Traders[0].ID)
	assert.True(t, c.Traders[0].Strategy.Mentions("overnight"))
	assert.Len(t, c.Scenarios, 5, "scenarios fall back to the default")
	assert.Equal(t, "London opens with a burst of volume.", c.Tables.SessionNotes[models.SessionLondon])
	assert.NotEmpty(t, c.Tables.SessionNotes[models.SessionAsian], "untouched keys keep their defaults")
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Parse([]byte("traders: [::"))
	assert.Error(t, err)

	_, err = Parse([]byte("traders:\n  - id: a\n    emotional_tendencies: [joy]\n"))
	assert.ErrorIs(t, err, apperrors.ErrCatalogInvalid)
}

func TestParse_RejectsUnknownPoolEmotion(t *testing.T) {
	doc := `
tables:
  market_emotions:
    bullish: [greedy]
`
	_, err := Parse([]byte(doc))
	require.ErrorIs(t, err, apperrors.ErrCatalogInvalid)

	var catErr *apperrors.CatalogError
	require.ErrorAs(t, err, &catErr)
	assert.Equal(t, "market_emotions", catErr.Section)
	assert.Contains(t, err.Error(), "greedy")

	// Same table misplaced at the top level must not be silently dropped.
	_, err = Parse([]byte("market_emotions:\n  bullish: [greedy]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "market_emotions")
}

func TestParse_EmptyDocumentIsDefault(t *testing.T) {
	c, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default().Traders, c.Traders)
}

func TestParse_RejectsUnknownBehavior(t *testing.T) {
	doc := `
tables:
  behaviors:
    fear: [hesitation, freezing, moving_stop_loss]
`
	_, err := Parse([]byte(doc))
	var catErr *apperrors.CatalogError
	require.ErrorAs(t, err, &catErr)
	assert.Equal(t, "behaviors", catErr.Section)
}

func TestMarshalRoundTripsThroughParse(t *testing.T) {
	data, err := Marshal(Default())
	require.NoError(t, err)

	c, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, Default().Traders, c.Traders)
	assert.Equal(t, Default().Tables, c.Tables)
}

// Property: price series have the requested length, positive 2-decimal
// prices, volumes in [1000, 11000) and 15-minute spacing.
func TestProperty_PriceSeriesShape(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	start := time.Date(2023, time.September, 1, 9, 0, 0, 0, time.UTC)
	properties.Property("series shape", prop.ForAll(
		func(seed uint64, base, vol, trend float64, points int) bool {
			rng := rand.New(rand.NewPCG(seed, seed))
			series := PriceSeries(rng, start, base, vol, trend, points)
			if len(series) != points {
				return false
			}
			for i, p := range series {
				if p.Price < 0.01 {
					return false
				}
				if cents := p.Price * 100; math.Abs(cents-math.Round(cents)) > 1e-6 {
					return false
				}
				if p.Volume < 1000 || p.Volume >= 11000 {
					return false
				}
				if !p.Timestamp.Equal(start.Add(time.Duration(i) * 15 * time.Minute)) {
					return false
				}
			}
			return true
		},
		gen.UInt64(),
		gen.Float64Range(0.5, 5000),
		gen.Float64Range(0, 100),
		gen.Float64Range(-50, 50),
		gen.IntRange(1, 60),
	))

	properties.TestingRun(t)
}
