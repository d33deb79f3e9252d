package models

// Performance summarises a run's decision sequence.
type Performance struct {
	ProfitLoss        float64 `json:"profitLoss"`
	CorrectDecisions  int     `json:"correctDecisions"`
	EmotionalMistakes int     `json:"emotionalMistakes"`
	TotalTrades       int     `json:"totalTrades"`
}

// TraderState is the per-run aggregate shown to the coach.
type TraderState struct {
	TraderID              string           `json:"traderId"`
	ScenarioID            string           `json:"scenarioId"`
	CurrentEmotionalState EmotionalState   `json:"currentEmotionalState"`
	Decisions             []TraderDecision `json:"decisions"`
	Performance           Performance      `json:"performance"`
}

// ScenarioResult is the complete output of one generation.
type ScenarioResult struct {
	Scenario    TradingScenario `json:"scenario"`
	Trader      TraderProfile   `json:"trader"`
	TraderState TraderState     `json:"traderState"`
}
