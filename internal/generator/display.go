package generator

import (
	"math"

	"tradecoach/internal/models"
)

// Display post-processing. These steps exist so every generated run has
// something for the coach to look at; they are applied after the decision
// model and kept out of it.

// forceEmotionalMistake converts one random decision into an emotion-driven
// violation when the run produced none. It reports whether it changed
// anything.
func (g *Generator) forceEmotionalMistake(decisions []models.TraderDecision, state models.EmotionalState, strategy models.TradingStrategy) bool {
	if len(decisions) == 0 {
		return false
	}
	for _, d := range decisions {
		if d.Emotional() {
			return false
		}
	}
	i := g.rng.IntN(len(decisions))
	d := &decisions[i]
	d.MarkEmotional(state.Primary)
	d.Reasoning = g.decisions.withSessionNote(g.decisions.emotionReasoning(state.Primary), d.Session, strategy)
	return true
}

// displayProfitLoss replaces a degenerate near-zero total with a random
// percentage in [-3, 3].
func (g *Generator) displayProfitLoss(pnl float64) float64 {
	if math.Abs(pnl) >= 0.01 {
		return pnl
	}
	return math.Round((g.rng.Float64()*6-3)*100) / 100
}
