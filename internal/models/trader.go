package models

import "strings"

// TradingStrategy is a trader's documented plan.
type TradingStrategy struct {
	Name                  string            `json:"name" yaml:"name"`
	Type                  StrategyType      `json:"type" yaml:"type"`
	TimeFrames            []TimeFrame       `json:"timeFrames" yaml:"time_frames"`
	BestMarketConditions  []MarketCondition `json:"bestMarketConditions" yaml:"best_market_conditions"`
	WorstMarketConditions []MarketCondition `json:"worstMarketConditions" yaml:"worst_market_conditions"`
	Description           string            `json:"description" yaml:"description"`
	Rules                 []string          `json:"rules" yaml:"rules"`
}

// Fits reports whether the strategy is designed for the condition.
func (s TradingStrategy) Fits(m MarketCondition) bool {
	return contains(s.BestMarketConditions, m)
}

// Misfits reports whether the strategy is known to struggle in the condition.
func (s TradingStrategy) Misfits(m MarketCondition) bool {
	return contains(s.WorstMarketConditions, m)
}

// Mentions reports whether the strategy's name, description or rules
// reference the given phrase, ignoring case.
func (s TradingStrategy) Mentions(phrase string) bool {
	phrase = strings.ToLower(phrase)
	if strings.Contains(strings.ToLower(s.Name), phrase) ||
		strings.Contains(strings.ToLower(s.Description), phrase) {
		return true
	}
	for _, rule := range s.Rules {
		if strings.Contains(strings.ToLower(rule), phrase) {
			return true
		}
	}
	return false
}

// TraderProfile is a simulated trader's identity and tendencies.
type TraderProfile struct {
	ID                  string            `json:"id" yaml:"id"`
	Name                string            `json:"name" yaml:"name"`
	Personality         TraderPersonality `json:"personality" yaml:"personality"`
	Experience          ExperienceLevel   `json:"experience" yaml:"experience"`
	PreferredAssets     []AssetClass      `json:"preferredAssets" yaml:"preferred_assets"`
	PreferredTimeFrames []TimeFrame       `json:"preferredTimeFrames" yaml:"preferred_time_frames"`
	EmotionalTendencies []EmotionType     `json:"emotionalTendencies" yaml:"emotional_tendencies"`
	Strategy            TradingStrategy   `json:"strategy" yaml:"strategy"`
	Strengths           []string          `json:"strengths" yaml:"strengths"`
	Weaknesses          []string          `json:"weaknesses" yaml:"weaknesses"`
	Avatar              string            `json:"avatar" yaml:"avatar"`
}

// HasTendency reports whether the trader is prone to the emotion.
func (t TraderProfile) HasTendency(e EmotionType) bool {
	return contains(t.EmotionalTendencies, e)
}
