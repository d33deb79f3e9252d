package catalog

import (
	"math"
	"math/rand/v2"
	"time"

	"tradecoach/internal/models"
)

// priceSeed keeps the built-in price series identical across runs.
const priceSeed = 20230901

// Rand is the subset of *rand.Rand the catalog draws from.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// PriceSeries builds an illustrative random-walk series: each point adds
// uniform noise of the given volatility plus a trend component that grows
// linearly along the series. Points are 15 minutes apart from start.
func PriceSeries(rng Rand, start time.Time, base, volatility, trend float64, points int) []models.PriceAction {
	series := make([]models.PriceAction, 0, points)
	price := base
	for i := 0; i < points; i++ {
		noise := (rng.Float64() - 0.5) * volatility
		drift := trend * (float64(i) / float64(points))
		price = math.Max(price+noise+drift, 0.01)

		series = append(series, models.PriceAction{
			Timestamp: start.Add(time.Duration(i) * 15 * time.Minute),
			Price:     math.Round(price*100) / 100,
			Volume:    int64(rng.IntN(10000) + 1000),
		})
	}
	return series
}

// chain concatenates price legs so each leg starts where the previous ended.
func chain(rng Rand, start time.Time, base float64, legs ...[3]float64) []models.PriceAction {
	var out []models.PriceAction
	price := base
	at := start
	for _, leg := range legs {
		points := int(leg[2])
		part := PriceSeries(rng, at, price, leg[0], leg[1], points)
		out = append(out, part...)
		price = part[len(part)-1].Price
		at = part[len(part)-1].Timestamp.Add(15 * time.Minute)
	}
	return out
}

func day(d, h, m int) time.Time {
	return time.Date(2023, time.September, d, h, m, 0, 0, time.UTC)
}

func defaultScenarios() []models.TradingScenario {
	rng := rand.New(rand.NewPCG(priceSeed, priceSeed))

	return []models.TradingScenario{
		{
			ID:              "scenario1",
			Title:           "Earnings Surprise Reaction",
			Description:     "A stock has just reported earnings that beat expectations, causing a gap up and continued momentum.",
			MarketCondition: models.MarketBullish,
			TimeFrame:       models.TimeFrameIntraday,
			AssetClass:      models.AssetStocks,
			PriceAction:     PriceSeries(rng, day(1, 9, 0), 100, 2, 15, 20),
			NewsEvents: []models.NewsEvent{
				{
					Timestamp:   day(1, 9, 0),
					Headline:    "XYZ Corp Beats Earnings Expectations by 20%",
					Impact:      models.ImpactHigh,
					Description: "XYZ Corporation reported quarterly earnings of $1.20 per share, significantly above analyst estimates of $1.00.",
				},
				{
					Timestamp:   day(1, 10, 30),
					Headline:    `Analysts Upgrade XYZ Corp to "Strong Buy"`,
					Impact:      models.ImpactMedium,
					Description: "Multiple analysts have upgraded their outlook on XYZ following the strong earnings report.",
				},
			},
			IdealBehaviors: []models.TradingBehavior{models.BehaviorTradingWithoutEdge, models.BehaviorDeviationFromPlan},
			CommonMistakes: []models.TradingBehavior{models.BehaviorChasingEntries, models.BehaviorOversizing, models.BehaviorOvertrading},
			Difficulty:     models.DifficultyMedium,
		},
		{
			ID:              "scenario2",
			Title:           "Failed Breakout Trap",
			Description:     "A stock appears to break out above resistance but quickly reverses, trapping breakout traders.",
			MarketCondition: models.MarketChoppy,
			TimeFrame:       models.TimeFrameIntraday,
			AssetClass:      models.AssetStocks,
			PriceAction:     chain(rng, day(5, 9, 30), 50, [3]float64{1, 5, 10}, [3]float64{2, 3, 3}, [3]float64{2, -10, 7}),
			NewsEvents: []models.NewsEvent{
				{
					Timestamp:   day(5, 11, 15),
					Headline:    "ABC Stock Testing Key Resistance Level",
					Impact:      models.ImpactLow,
					Description: "Technical analysts note ABC is approaching a significant resistance level at $55.",
				},
			},
			IdealBehaviors: []models.TradingBehavior{models.BehaviorDeviationFromPlan, models.BehaviorIgnoringRiskManagement},
			CommonMistakes: []models.TradingBehavior{models.BehaviorLettingLosersRun, models.BehaviorAveragingDown, models.BehaviorMovingStopLoss},
			Difficulty:     models.DifficultyHard,
		},
		{
			ID:              "scenario3",
			Title:           "Range-Bound Consolidation",
			Description:     "A market that has been trading in a tight range for several days, causing frustration for trend traders.",
			MarketCondition: models.MarketRanging,
			TimeFrame:       models.TimeFrameSwing,
			AssetClass:      models.AssetFutures,
			PriceAction:     PriceSeries(rng, day(10, 8, 30), 1000, 15, 0, 30),
			NewsEvents: []models.NewsEvent{
				{
					Timestamp:   day(10, 8, 30),
					Headline:    "Fed Signals No Change in Interest Rate Policy",
					Impact:      models.ImpactMedium,
					Description: "Federal Reserve minutes indicate no change in monetary policy is expected in the near term.",
				},
			},
			IdealBehaviors: []models.TradingBehavior{models.BehaviorHesitation, models.BehaviorDeviationFromPlan},
			CommonMistakes: []models.TradingBehavior{models.BehaviorOvertrading, models.BehaviorTradingWithoutEdge, models.BehaviorChasingEntries},
			Difficulty:     models.DifficultyMedium,
		},
		{
			ID:              "scenario4",
			Title:           "Flash Crash Recovery",
			Description:     "A sudden market-wide selloff occurs, followed by a rapid recovery, testing traders' emotional control.",
			MarketCondition: models.MarketVolatile,
			TimeFrame:       models.TimeFrameIntraday,
			AssetClass:      models.AssetStocks,
			PriceAction:     chain(rng, day(15, 12, 30), 200, [3]float64{2, 0, 5}, [3]float64{5, -40, 5}, [3]float64{4, 30, 10}),
			NewsEvents: []models.NewsEvent{
				{
					Timestamp:   day(15, 13, 45),
					Headline:    "Algorithmic Selling Triggers Market-Wide Circuit Breakers",
					Impact:      models.ImpactHigh,
					Description: "Trading halted temporarily as circuit breakers triggered by massive algorithmic selling pressure.",
				},
				{
					Timestamp:   day(15, 14, 15),
					Headline:    "Markets Recovering as Selling Pressure Subsides",
					Impact:      models.ImpactMedium,
					Description: "Buyers stepping in after the flash crash, pushing prices back toward previous levels.",
				},
			},
			IdealBehaviors: []models.TradingBehavior{models.BehaviorHesitation, models.BehaviorDeviationFromPlan},
			CommonMistakes: []models.TradingBehavior{models.BehaviorCuttingWinnersEarly, models.BehaviorOvertrading, models.BehaviorDeviationFromPlan},
			Difficulty:     models.DifficultyHard,
		},
		{
			ID:              "scenario5",
			Title:           "Strong Trend Day",
			Description:     "A market that is trending strongly in one direction all day, providing multiple entry opportunities.",
			MarketCondition: models.MarketTrending,
			TimeFrame:       models.TimeFrameIntraday,
			AssetClass:      models.AssetForex,
			PriceAction:     PriceSeries(rng, day(20, 8, 0), 1.2000, 0.0020, 0.0150, 24),
			NewsEvents: []models.NewsEvent{
				{
					Timestamp:   day(20, 8, 30),
					Headline:    "Eurozone Economic Data Exceeds Expectations",
					Impact:      models.ImpactHigh,
					Description: "Multiple economic indicators from the Eurozone came in stronger than expected, boosting the Euro.",
				},
			},
			IdealBehaviors: []models.TradingBehavior{models.BehaviorHesitation, models.BehaviorDeviationFromPlan},
			CommonMistakes: []models.TradingBehavior{models.BehaviorCuttingWinnersEarly, models.BehaviorHesitation, models.BehaviorDeviationFromPlan},
			Difficulty:     models.DifficultyEasy,
		},
	}
}
