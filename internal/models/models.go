// Package models provides domain models for the trading coach.
package models

// MarketCondition represents the prevailing market regime of a scenario.
type MarketCondition string

const (
	MarketBullish  MarketCondition = "bullish"
	MarketBearish  MarketCondition = "bearish"
	MarketChoppy   MarketCondition = "choppy"
	MarketTrending MarketCondition = "trending"
	MarketVolatile MarketCondition = "volatile"
	MarketRanging  MarketCondition = "ranging"
)

// AllMarketConditions returns every market condition in display order.
func AllMarketConditions() []MarketCondition {
	return []MarketCondition{MarketBullish, MarketBearish, MarketChoppy, MarketTrending, MarketVolatile, MarketRanging}
}

// Valid reports whether m is a known market condition.
func (m MarketCondition) Valid() bool {
	return contains(AllMarketConditions(), m)
}

// TimeFrame represents the holding period a scenario is played on.
type TimeFrame string

const (
	TimeFrameScalping TimeFrame = "scalping"
	TimeFrameIntraday TimeFrame = "intraday"
	TimeFrameSwing    TimeFrame = "swing"
	TimeFramePosition TimeFrame = "position"
)

// AllTimeFrames returns every time frame.
func AllTimeFrames() []TimeFrame {
	return []TimeFrame{TimeFrameScalping, TimeFrameIntraday, TimeFrameSwing, TimeFramePosition}
}

// Valid reports whether t is a known time frame.
func (t TimeFrame) Valid() bool {
	return contains(AllTimeFrames(), t)
}

// AssetClass represents the traded instrument family.
type AssetClass string

const (
	AssetStocks  AssetClass = "stocks"
	AssetFutures AssetClass = "futures"
	AssetForex   AssetClass = "forex"
	AssetCrypto  AssetClass = "crypto"
	AssetOptions AssetClass = "options"
	AssetETFs    AssetClass = "etfs"
	AssetBonds   AssetClass = "bonds"
)

// AllAssetClasses returns every asset class.
func AllAssetClasses() []AssetClass {
	return []AssetClass{AssetStocks, AssetFutures, AssetForex, AssetCrypto, AssetOptions, AssetETFs, AssetBonds}
}

// Valid reports whether a is a known asset class.
func (a AssetClass) Valid() bool {
	return contains(AllAssetClasses(), a)
}

// Difficulty grades how hard a scenario is to coach.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// AllDifficulties returns every difficulty level.
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// Valid reports whether d is a known difficulty.
func (d Difficulty) Valid() bool {
	return contains(AllDifficulties(), d)
}

// TraderPersonality drives the base emotional intensity of a trader.
type TraderPersonality string

const (
	PersonalityImpulsive  TraderPersonality = "impulsive"
	PersonalityAnalytical TraderPersonality = "analytical"
	PersonalityCautious   TraderPersonality = "cautious"
	PersonalityAggressive TraderPersonality = "aggressive"
	PersonalityPatient    TraderPersonality = "patient"
)

// ExperienceLevel represents how seasoned a trader is.
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
	ExperienceExpert       ExperienceLevel = "expert"
)

// EmotionType is a feeling that can push a trader off their plan.
type EmotionType string

const (
	EmotionFear           EmotionType = "fear"
	EmotionGreed          EmotionType = "greed"
	EmotionRevenge        EmotionType = "revenge"
	EmotionOverconfidence EmotionType = "overconfidence"
	EmotionAnxiety        EmotionType = "anxiety"
	EmotionImpatience     EmotionType = "impatience"
	EmotionFrustration    EmotionType = "frustration"
	EmotionExcitement     EmotionType = "excitement"
	EmotionBoredom        EmotionType = "boredom"
	EmotionHope           EmotionType = "hope"
	EmotionDesperation    EmotionType = "desperation"
)

// AllEmotions returns every emotion type.
func AllEmotions() []EmotionType {
	return []EmotionType{
		EmotionFear, EmotionGreed, EmotionRevenge, EmotionOverconfidence,
		EmotionAnxiety, EmotionImpatience, EmotionFrustration, EmotionExcitement,
		EmotionBoredom, EmotionHope, EmotionDesperation,
	}
}

// Valid reports whether e is a known emotion.
func (e EmotionType) Valid() bool {
	return contains(AllEmotions(), e)
}

// TradingBehavior is an observable mistake pattern.
type TradingBehavior string

const (
	BehaviorOversizing             TradingBehavior = "oversizing"
	BehaviorCuttingWinnersEarly    TradingBehavior = "cutting_winners_early"
	BehaviorLettingLosersRun       TradingBehavior = "letting_losers_run"
	BehaviorAveragingDown          TradingBehavior = "averaging_down"
	BehaviorChasingEntries         TradingBehavior = "chasing_entries"
	BehaviorOvertrading            TradingBehavior = "overtrading"
	BehaviorHesitation             TradingBehavior = "hesitation"
	BehaviorDeviationFromPlan      TradingBehavior = "deviation_from_plan"
	BehaviorIgnoringRiskManagement TradingBehavior = "ignoring_risk_management"
	BehaviorMovingStopLoss         TradingBehavior = "moving_stop_loss"
	BehaviorTradingWithoutEdge     TradingBehavior = "trading_without_edge"
)

// AllBehaviors returns every trading behavior.
func AllBehaviors() []TradingBehavior {
	return []TradingBehavior{
		BehaviorOversizing, BehaviorCuttingWinnersEarly, BehaviorLettingLosersRun,
		BehaviorAveragingDown, BehaviorChasingEntries, BehaviorOvertrading,
		BehaviorHesitation, BehaviorDeviationFromPlan, BehaviorIgnoringRiskManagement,
		BehaviorMovingStopLoss, BehaviorTradingWithoutEdge,
	}
}

// Valid reports whether b is a known behavior.
func (b TradingBehavior) Valid() bool {
	return contains(AllBehaviors(), b)
}

// StrategyType classifies a trading strategy.
type StrategyType string

const (
	StrategyTrendFollowing StrategyType = "trend_following"
	StrategyMeanReversion  StrategyType = "mean_reversion"
	StrategyBreakout       StrategyType = "breakout"
	StrategyMomentum       StrategyType = "momentum"
	StrategyScalping       StrategyType = "scalping"
	StrategySwing          StrategyType = "swing"
	StrategyPosition       StrategyType = "position"
	StrategyNewsBased      StrategyType = "news_based"
	StrategyTechnical      StrategyType = "technical"
	StrategyFundamental    StrategyType = "fundamental"
)

// Action is the public vocabulary of a trader decision.
type Action string

const (
	ActionBuy              Action = "buy"
	ActionSell             Action = "sell"
	ActionHold             Action = "hold"
	ActionIncreasePosition Action = "increase_position"
	ActionDecreasePosition Action = "decrease_position"
	ActionExit             Action = "exit"
)

// IsEntry reports whether the action adds exposure.
func (a Action) IsEntry() bool {
	return a == ActionBuy || a == ActionIncreasePosition
}

// IsExit reports whether the action removes exposure.
func (a Action) IsExit() bool {
	return a == ActionSell || a == ActionExit || a == ActionDecreasePosition
}

// Direction is the side of an open position.
type Direction string

const (
	DirectionNone  Direction = ""
	DirectionLong  Direction = "long"
	DirectionShort Direction = "short"
)

// Outcome grades how a decision played out.
type Outcome string

const (
	OutcomePositive Outcome = "positive"
	OutcomeNegative Outcome = "negative"
	OutcomeNeutral  Outcome = "neutral"
)

// Session is one of the fixed trading-hour windows.
type Session string

const (
	SessionAsian     Session = "Asian"
	SessionLondon    Session = "London"
	SessionNewYork   Session = "New York"
	SessionOvernight Session = "Overnight"
)

// AllSessions returns the four sessions in clock order of their main window.
func AllSessions() []Session {
	return []Session{SessionAsian, SessionLondon, SessionNewYork, SessionOvernight}
}

// Valid reports whether s is a known session.
func (s Session) Valid() bool {
	return contains(AllSessions(), s)
}

func contains[T comparable](list []T, v T) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
