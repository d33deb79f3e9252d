package catalog

import "tradecoach/internal/models"

// TriggerCategory groups the phrases that can set off an emotion.
type TriggerCategory struct {
	Name    string   `json:"name" yaml:"name"`
	Phrases []string `json:"phrases" yaml:"phrases"`
}

// ReasoningClass buckets actions that share reasoning language.
type ReasoningClass string

const (
	ReasonEntry    ReasoningClass = "entry"
	ReasonIncrease ReasoningClass = "increase"
	ReasonExit     ReasoningClass = "exit"
	ReasonHold     ReasoningClass = "hold"
)

// PhrasePool holds reasoning sentences keyed by position direction.
type PhrasePool struct {
	Long    []string `json:"long" yaml:"long"`
	Short   []string `json:"short" yaml:"short"`
	Neutral []string `json:"neutral" yaml:"neutral"`
}

// For returns the phrases for a direction, falling back to the neutral set.
func (p PhrasePool) For(dir models.Direction) []string {
	switch dir {
	case models.DirectionLong:
		if len(p.Long) > 0 {
			return p.Long
		}
	case models.DirectionShort:
		if len(p.Short) > 0 {
			return p.Short
		}
	}
	return p.Neutral
}

// ClockWindow is a half-open [start, end) wall-clock range within one day.
// EndHour may be 24 to mean midnight.
type ClockWindow struct {
	StartHour   int `json:"startHour" yaml:"start_hour"`
	StartMinute int `json:"startMinute" yaml:"start_minute"`
	EndHour     int `json:"endHour" yaml:"end_hour"`
	EndMinute   int `json:"endMinute" yaml:"end_minute"`
}

// Tables holds every lookup the generator consumes.
type Tables struct {
	MarketEmotions   map[models.MarketCondition][]models.EmotionType `json:"marketEmotions" yaml:"market_emotions"`
	Triggers         map[models.MarketCondition][]TriggerCategory    `json:"triggers" yaml:"triggers"`
	Behaviors        map[models.EmotionType][]models.TradingBehavior `json:"behaviors" yaml:"behaviors"`
	EmotionReasoning map[models.EmotionType][]string                 `json:"emotionReasoning" yaml:"emotion_reasoning"`
	ActionReasoning  map[ReasoningClass]PhrasePool                   `json:"actionReasoning" yaml:"action_reasoning"`
	SessionWindows   map[models.Session][]ClockWindow                `json:"sessionWindows" yaml:"session_windows"`
	SessionNotes     map[models.Session]string                       `json:"sessionNotes" yaml:"session_notes"`
}

func defaultTables() Tables {
	return Tables{
		MarketEmotions: map[models.MarketCondition][]models.EmotionType{
			models.MarketBullish:  {models.EmotionGreed, models.EmotionOverconfidence, models.EmotionExcitement, models.EmotionHope},
			models.MarketBearish:  {models.EmotionFear, models.EmotionAnxiety, models.EmotionDesperation, models.EmotionHope},
			models.MarketChoppy:   {models.EmotionFrustration, models.EmotionBoredom, models.EmotionImpatience},
			models.MarketRanging:  {models.EmotionFrustration, models.EmotionBoredom, models.EmotionImpatience},
			models.MarketVolatile: {models.EmotionFear, models.EmotionAnxiety, models.EmotionRevenge, models.EmotionExcitement},
			models.MarketTrending: {models.EmotionGreed, models.EmotionExcitement, models.EmotionOverconfidence},
		},
		Triggers: map[models.MarketCondition][]TriggerCategory{
			models.MarketBullish: {
				{Name: "missed_opportunity", Phrases: []string{
					"Market rallying without your participation",
					"Watching others profit while sitting on sidelines",
					"Missing a breakout you identified earlier",
				}},
				{Name: "fomo", Phrases: []string{
					"Continuous upward momentum",
					"Social media buzz about gains",
					"Multiple stocks making new highs",
				}},
			},
			models.MarketBearish: {
				{Name: "fear", Phrases: []string{
					"Account drawdown exceeding comfort level",
					"Breaking major support levels",
					"Negative headlines dominating news",
				}},
				{Name: "opportunity", Phrases: []string{
					"Oversold conditions",
					"Capitulation selling",
					"Stocks trading at significant discounts",
				}},
			},
			models.MarketChoppy: {
				{Name: "frustration", Phrases: []string{
					"Multiple false breakouts",
					"Getting stopped out repeatedly",
					"No clear direction to trade",
				}},
				{Name: "overtrading", Phrases: []string{
					"Trying to recoup small losses",
					"Forcing trades in unclear conditions",
					"Boredom from lack of clear setups",
				}},
			},
			models.MarketTrending: {
				{Name: "greed", Phrases: []string{
					"Profits accumulating quickly",
					"Strong momentum in your direction",
					"Multiple winning trades in a row",
				}},
				{Name: "complacency", Phrases: []string{
					"Extended trend making trading seem easy",
					"Relaxing risk management due to success",
					"Increasing position sizes after wins",
				}},
			},
			models.MarketVolatile: {
				{Name: "anxiety", Phrases: []string{
					"Large, rapid price swings",
					"Positions moving quickly against you",
					"Uncertainty about market direction",
				}},
				{Name: "revenge", Phrases: []string{
					"Stopped out just before favorable move",
					"Missing profit target by small amount before reversal",
					"Series of small losses from whipsaw action",
				}},
			},
			models.MarketRanging: {
				{Name: "boredom", Phrases: []string{
					"Price contained in tight range",
					"Low volatility and volume",
					"Lack of trading opportunities",
				}},
				{Name: "impatience", Phrases: []string{
					"Waiting for breakout confirmation",
					"Anticipating range break too early",
					"Forcing trades within the range",
				}},
			},
		},
		Behaviors: map[models.EmotionType][]models.TradingBehavior{
			models.EmotionFear:           {models.BehaviorHesitation, models.BehaviorCuttingWinnersEarly, models.BehaviorDeviationFromPlan},
			models.EmotionGreed:          {models.BehaviorOversizing, models.BehaviorLettingLosersRun, models.BehaviorIgnoringRiskManagement},
			models.EmotionRevenge:        {models.BehaviorOvertrading, models.BehaviorChasingEntries, models.BehaviorIgnoringRiskManagement},
			models.EmotionOverconfidence: {models.BehaviorOversizing, models.BehaviorTradingWithoutEdge, models.BehaviorDeviationFromPlan},
			models.EmotionAnxiety:        {models.BehaviorHesitation, models.BehaviorCuttingWinnersEarly, models.BehaviorOvertrading},
			models.EmotionImpatience:     {models.BehaviorOvertrading, models.BehaviorChasingEntries, models.BehaviorDeviationFromPlan},
			models.EmotionFrustration:    {models.BehaviorOvertrading, models.BehaviorMovingStopLoss, models.BehaviorDeviationFromPlan},
			models.EmotionExcitement:     {models.BehaviorOversizing, models.BehaviorChasingEntries, models.BehaviorTradingWithoutEdge},
			models.EmotionBoredom:        {models.BehaviorOvertrading, models.BehaviorTradingWithoutEdge, models.BehaviorDeviationFromPlan},
			models.EmotionHope:           {models.BehaviorAveragingDown, models.BehaviorLettingLosersRun, models.BehaviorMovingStopLoss},
			models.EmotionDesperation:    {models.BehaviorOversizing, models.BehaviorIgnoringRiskManagement, models.BehaviorAveragingDown},
		},
		EmotionReasoning: map[models.EmotionType][]string{
			models.EmotionFear: {
				"I need to protect my capital from further losses.",
				"This could turn against me any second, I can't sit through another drawdown.",
				"I'd rather be out and safe than watch this position bleed.",
			},
			models.EmotionGreed: {
				"I see potential for much bigger gains here.",
				"This move has room to run, I want as much of it as I can get.",
				"Why take a small profit when this could double?",
			},
			models.EmotionRevenge: {
				"I need to make back my previous losses quickly.",
				"The market took my money on that last trade, I'm taking it back now.",
				"One good trade and I'm back to even for the day.",
			},
			models.EmotionOverconfidence: {
				"I have a strong feeling this will work out well.",
				"I've been right all week, no need to wait for confirmation.",
				"My read on this market is better than any rule.",
			},
			models.EmotionAnxiety: {
				"I can't stand watching these swings, I need to do something.",
				"Every tick against me makes me more nervous.",
				"I keep second-guessing this position, better to lighten up.",
			},
			models.EmotionImpatience: {
				"I've been waiting too long for a setup, I'm getting in now.",
				"The move should have happened already, I'm not sitting around anymore.",
				"Waiting for confirmation means missing the move.",
			},
			models.EmotionFrustration: {
				"Nothing is working today, I'm just going to force it.",
				"These stops keep getting hit, so I'll give it more room this time.",
				"I'm done playing by the book when the market won't cooperate.",
			},
			models.EmotionExcitement: {
				"This is the setup I've been dreaming about, I'm going big.",
				"Everyone is talking about this move, I can't miss it.",
				"The energy in this market is incredible, I have to be part of it.",
			},
			models.EmotionBoredom: {
				"Nothing is happening, I might as well take a trade.",
				"I need some action, a small position won't hurt.",
				"I've been staring at the screen all day without a trade.",
			},
			models.EmotionHope: {
				"It has to come back eventually, I'll give it more time.",
				"If I add here my average price gets much better.",
				"I'm sure the reversal is coming, I just need to hang on.",
			},
			models.EmotionDesperation: {
				"I have to make this work or the whole month is ruined.",
				"This is my last chance to turn the account around.",
				"I'll size up, one winner fixes everything.",
			},
		},
		ActionReasoning: map[ReasoningClass]PhrasePool{
			ReasonEntry: {
				Long: []string{
					"Price confirmed the setup with a bullish close, entering long per plan.",
					"Buyers defended support and my entry criteria for a long are met.",
					"The uptrend structure is intact, taking the planned long entry.",
				},
				Short: []string{
					"Price rejected resistance with a bearish close, entering short per plan.",
					"Sellers are in control below the breakdown level, taking the planned short.",
					"Lower highs confirm the downtrend, my short entry criteria are met.",
				},
				Neutral: []string{
					"My entry criteria are met, taking the trade at planned size.",
				},
			},
			ReasonIncrease: {
				Long: []string{
					"The pullback held above support, adding to the long as my plan allows.",
					"Momentum confirmed the bullish thesis, scaling in at the planned level.",
				},
				Short: []string{
					"The bounce failed at resistance, adding to the short as planned.",
					"Bearish momentum confirmed, scaling into the short at the planned level.",
				},
				Neutral: []string{
					"The trade is working as planned, adding the second unit.",
				},
			},
			ReasonExit: {
				Long: []string{
					"Upside momentum is fading near the target, taking profits on the long.",
					"Price lost the level that justified the long, exiting per my rules.",
				},
				Short: []string{
					"Downside is stalling near the target, covering the short.",
					"Price reclaimed the breakdown level, exiting the short per my rules.",
				},
				Neutral: []string{
					"My exit criteria are met, reducing exposure as planned.",
				},
			},
			ReasonHold: {
				Long: []string{
					"The bullish setup is still valid, holding the long with my stop in place.",
				},
				Short: []string{
					"The bearish setup is still valid, holding the short with my stop in place.",
				},
				Neutral: []string{
					"No valid setup yet, waiting for my criteria to be met.",
					"Conditions don't match my strategy, staying patient.",
					"Sitting on my hands until the market gives a clear signal.",
				},
			},
		},
		SessionWindows: map[models.Session][]ClockWindow{
			models.SessionAsian:     {{StartHour: 19, EndHour: 24}, {StartHour: 0, EndHour: 2}},
			models.SessionLondon:    {{StartHour: 3, EndHour: 11}},
			models.SessionNewYork:   {{StartHour: 9, StartMinute: 30, EndHour: 16}},
			models.SessionOvernight: {{StartHour: 16, EndHour: 21}, {StartHour: 0, EndHour: 9}},
		},
		SessionNotes: map[models.Session]string{
			models.SessionAsian:     "Liquidity is thin during the Asian session, so moves can be exaggerated.",
			models.SessionOvernight: "Holding through the overnight session adds gap risk into the next open.",
		},
	}
}
