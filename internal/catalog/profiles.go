package catalog

import "tradecoach/internal/models"

func defaultStrategies() []models.TradingStrategy {
	return []models.TradingStrategy{
		{
			Name:                  "Breakout Momentum",
			Type:                  models.StrategyBreakout,
			TimeFrames:            []models.TimeFrame{models.TimeFrameIntraday, models.TimeFrameSwing},
			BestMarketConditions:  []models.MarketCondition{models.MarketTrending, models.MarketVolatile},
			WorstMarketConditions: []models.MarketCondition{models.MarketChoppy, models.MarketRanging},
			Description:           "Enters trades when price breaks through significant levels with increased volume",
			Rules: []string{
				"Wait for price to break through resistance/support",
				"Confirm with volume increase",
				"Use 2:1 risk-reward ratio minimum",
				"Exit if price returns below breakout level",
				"Size position at 1% risk per trade",
			},
		},
		{
			Name:                  "Mean Reversion",
			Type:                  models.StrategyMeanReversion,
			TimeFrames:            []models.TimeFrame{models.TimeFrameIntraday, models.TimeFrameScalping},
			BestMarketConditions:  []models.MarketCondition{models.MarketRanging, models.MarketChoppy},
			WorstMarketConditions: []models.MarketCondition{models.MarketTrending, models.MarketVolatile},
			Description:           "Trades the return to average price after extreme moves",
			Rules: []string{
				"Enter after 2 standard deviation move from mean",
				"Use technical indicators for confirmation (RSI, Bollinger)",
				"Take profit at mean/average price",
				"Cut losses if price continues in extreme direction",
				"Size position at 0.5% risk per trade",
			},
		},
		{
			Name:                  "Trend Following",
			Type:                  models.StrategyTrendFollowing,
			TimeFrames:            []models.TimeFrame{models.TimeFrameSwing, models.TimeFramePosition},
			BestMarketConditions:  []models.MarketCondition{models.MarketTrending, models.MarketBullish, models.MarketBearish},
			WorstMarketConditions: []models.MarketCondition{models.MarketChoppy, models.MarketRanging},
			Description:           "Identifies and follows established trends",
			Rules: []string{
				"Only enter in direction of major trend",
				"Use moving averages for trend confirmation",
				"Trail stops to lock in profits",
				"Add to position on pullbacks",
				"Size position at 2% risk per trade",
			},
		},
		{
			Name:                  "News Catalyst",
			Type:                  models.StrategyNewsBased,
			TimeFrames:            []models.TimeFrame{models.TimeFrameIntraday, models.TimeFrameSwing},
			BestMarketConditions:  []models.MarketCondition{models.MarketVolatile},
			WorstMarketConditions: []models.MarketCondition{models.MarketRanging},
			Description:           "Trades significant price movements following news events",
			Rules: []string{
				"Wait for news release and initial volatility to settle",
				"Enter in direction of post-news trend",
				"Use tight stops due to unpredictability",
				"Take profits quickly",
				"Size position at 0.75% risk per trade",
			},
		},
		{
			Name:                  "Technical Scalping",
			Type:                  models.StrategyScalping,
			TimeFrames:            []models.TimeFrame{models.TimeFrameScalping},
			BestMarketConditions:  []models.MarketCondition{models.MarketRanging, models.MarketTrending},
			WorstMarketConditions: []models.MarketCondition{models.MarketVolatile, models.MarketChoppy},
			Description:           "Makes many small trades based on short-term technical patterns",
			Rules: []string{
				"Look for small price inefficiencies",
				"Use 1:1 risk-reward ratio",
				"Exit trades within minutes",
				"Trade high-liquidity assets only",
				"Size position at 0.25% risk per trade",
			},
		},
	}
}

func defaultTraders(strategies []models.TradingStrategy) []models.TraderProfile {
	return []models.TraderProfile{
		{
			ID:                  "trader1",
			Name:                "Alex Thompson",
			Personality:         models.PersonalityImpulsive,
			Experience:          models.ExperienceIntermediate,
			PreferredAssets:     []models.AssetClass{models.AssetStocks, models.AssetOptions},
			PreferredTimeFrames: []models.TimeFrame{models.TimeFrameIntraday, models.TimeFrameScalping},
			EmotionalTendencies: []models.EmotionType{models.EmotionImpatience, models.EmotionOverconfidence, models.EmotionExcitement},
			Strategy:            strategies[0],
			Strengths:           []string{"Quick decision making", "Pattern recognition"},
			Weaknesses:          []string{"Lacks discipline", "Overtrades", "Chases entries"},
			Avatar:              "/avatars/trader1.png",
		},
		{
			ID:                  "trader2",
			Name:                "Sarah Chen",
			Personality:         models.PersonalityAnalytical,
			Experience:          models.ExperienceAdvanced,
			PreferredAssets:     []models.AssetClass{models.AssetFutures, models.AssetForex},
			PreferredTimeFrames: []models.TimeFrame{models.TimeFrameSwing, models.TimeFrameIntraday},
			EmotionalTendencies: []models.EmotionType{models.EmotionAnxiety, models.EmotionFear, models.EmotionFrustration},
			Strategy:            strategies[1],
			Strengths:           []string{"Thorough analysis", "Patient", "Good risk management"},
			Weaknesses:          []string{"Analysis paralysis", "Cuts winners too early", "Hesitates on entries"},
			Avatar:              "/avatars/trader2.png",
		},
		{
			ID:                  "trader3",
			Name:                "Marcus Johnson",
			Personality:         models.PersonalityAggressive,
			Experience:          models.ExperienceExpert,
			PreferredAssets:     []models.AssetClass{models.AssetStocks, models.AssetOptions, models.AssetFutures},
			PreferredTimeFrames: []models.TimeFrame{models.TimeFrameIntraday, models.TimeFrameScalping},
			EmotionalTendencies: []models.EmotionType{models.EmotionGreed, models.EmotionOverconfidence, models.EmotionRevenge},
			Strategy:            strategies[2],
			Strengths:           []string{"High conviction", "Maximizes winners", "Adapts quickly"},
			Weaknesses:          []string{"Oversizes positions", "Ignores stop losses", "Takes excessive risk"},
			Avatar:              "/avatars/trader3.png",
		},
		{
			ID:                  "trader4",
			Name:                "Emma Rodriguez",
			Personality:         models.PersonalityCautious,
			Experience:          models.ExperienceBeginner,
			PreferredAssets:     []models.AssetClass{models.AssetStocks, models.AssetCrypto},
			PreferredTimeFrames: []models.TimeFrame{models.TimeFrameSwing, models.TimeFramePosition},
			EmotionalTendencies: []models.EmotionType{models.EmotionFear, models.EmotionAnxiety, models.EmotionHope},
			Strategy:            strategies[3],
			Strengths:           []string{"Careful planning", "Follows rules", "Manages risk well"},
			Weaknesses:          []string{"Misses opportunities", "Undersizes positions", "Lacks confidence"},
			Avatar:              "/avatars/trader4.png",
		},
		{
			ID:                  "trader5",
			Name:                "David Kim",
			Personality:         models.PersonalityPatient,
			Experience:          models.ExperienceAdvanced,
			PreferredAssets:     []models.AssetClass{models.AssetFutures, models.AssetForex, models.AssetStocks},
			PreferredTimeFrames: []models.TimeFrame{models.TimeFrameIntraday, models.TimeFrameSwing},
			EmotionalTendencies: []models.EmotionType{models.EmotionBoredom, models.EmotionFrustration, models.EmotionImpatience},
			Strategy:            strategies[4],
			Strengths:           []string{"Waits for setups", "Disciplined", "Consistent execution"},
			Weaknesses:          []string{"Overtrading when bored", "Deviates from plan when frustrated", "Impatient with winners"},
			Avatar:              "/avatars/trader5.png",
		},
	}
}
