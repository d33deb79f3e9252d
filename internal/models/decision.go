package models

import "time"

// EmotionalState is the simulated trader's dominant feeling for a run.
type EmotionalState struct {
	Primary   EmotionType       `json:"primary"`
	Intensity int               `json:"intensity"` // 1-10
	Trigger   string            `json:"trigger"`
	Behaviors []TradingBehavior `json:"behaviors"`
}

// TraderDecision is one simulated trading action.
type TraderDecision struct {
	Timestamp          time.Time    `json:"timestamp"`
	Action             Action       `json:"action"`
	Direction          Direction    `json:"direction,omitempty"`
	Reasoning          string       `json:"reasoning"`
	EmotionalInfluence *EmotionType `json:"emotionalInfluence"`
	ViolatesStrategy   bool         `json:"violatesStrategy"`
	Outcome            Outcome      `json:"outcome"`
	Session            Session      `json:"session,omitempty"`
	EntryPrice         *float64     `json:"entryPrice,omitempty"`
	ExitPrice          *float64     `json:"exitPrice,omitempty"`
	TradeProfit        *float64     `json:"tradeProfit,omitempty"`
}

// Emotional reports whether the decision was driven by emotion.
func (d TraderDecision) Emotional() bool {
	return d.EmotionalInfluence != nil
}

// MarkEmotional flags the decision as an emotion-driven strategy violation.
func (d *TraderDecision) MarkEmotional(e EmotionType) {
	d.EmotionalInfluence = &e
	d.ViolatesStrategy = true
}
