package models

import "time"

// PriceAction is one point of a scenario's illustrative price series.
type PriceAction struct {
	Timestamp   time.Time `json:"timestamp" yaml:"timestamp"`
	Price       float64   `json:"price" yaml:"price"`
	Volume      int64     `json:"volume" yaml:"volume"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
}

// NewsImpact grades how much a headline moves the market.
type NewsImpact string

const (
	ImpactLow    NewsImpact = "low"
	ImpactMedium NewsImpact = "medium"
	ImpactHigh   NewsImpact = "high"
)

// NewsEvent is a headline attached to a scenario.
type NewsEvent struct {
	Timestamp   time.Time  `json:"timestamp" yaml:"timestamp"`
	Headline    string     `json:"headline" yaml:"headline"`
	Impact      NewsImpact `json:"impact" yaml:"impact"`
	Description string     `json:"description" yaml:"description"`
}

// TradingScenario is the market situation a trader is placed in.
type TradingScenario struct {
	ID              string            `json:"id" yaml:"id"`
	Title           string            `json:"title" yaml:"title"`
	Description     string            `json:"description" yaml:"description"`
	MarketCondition MarketCondition   `json:"marketCondition" yaml:"market_condition"`
	TimeFrame       TimeFrame         `json:"timeFrame" yaml:"time_frame"`
	AssetClass      AssetClass        `json:"assetClass" yaml:"asset_class"`
	PriceAction     []PriceAction     `json:"priceAction" yaml:"price_action"`
	NewsEvents      []NewsEvent       `json:"newsEvents" yaml:"news_events"`
	IdealBehaviors  []TradingBehavior `json:"idealBehaviors" yaml:"ideal_behaviors"`
	CommonMistakes  []TradingBehavior `json:"commonMistakes" yaml:"common_mistakes"`
	Difficulty      Difficulty        `json:"difficulty" yaml:"difficulty"`
}

// Clone returns a deep copy of the scenario.
func (s TradingScenario) Clone() TradingScenario {
	out := s
	out.PriceAction = append([]PriceAction(nil), s.PriceAction...)
	out.NewsEvents = append([]NewsEvent(nil), s.NewsEvents...)
	out.IdealBehaviors = append([]TradingBehavior(nil), s.IdealBehaviors...)
	out.CommonMistakes = append([]TradingBehavior(nil), s.CommonMistakes...)
	return out
}
