package generator

import (
	"tradecoach/internal/catalog"
	apperrors "tradecoach/internal/errors"
	"tradecoach/internal/models"
)

// EmotionGenerator produces the emotional state that drives a run.
type EmotionGenerator struct {
	tables *catalog.Tables
	rng    Rand
}

// NewEmotionGenerator creates an emotion generator over the given tables.
func NewEmotionGenerator(tables *catalog.Tables, rng Rand) *EmotionGenerator {
	return &EmotionGenerator{tables: tables, rng: rng}
}

// Generate picks an emotion the market provokes in this trader. The pool is
// the market's emotions the trader is prone to, or every market emotion when
// the trader has none of them.
func (g *EmotionGenerator) Generate(market models.MarketCondition, trader models.TraderProfile) models.EmotionalState {
	pool := g.candidates(market, trader)
	primary := pick(g.rng, pool)
	trigger := g.trigger(market)
	intensity := clampInt(baseIntensity(trader.Personality)+g.rng.IntN(4)-2, 1, 10)
	return g.state(primary, intensity, trigger)
}

// GenerateForced picks the primary emotion from the caller's pool directly
// and draws a high intensity in [6, 10].
func (g *EmotionGenerator) GenerateForced(market models.MarketCondition, pool []models.EmotionType) (models.EmotionalState, error) {
	if len(pool) == 0 {
		return models.EmotionalState{}, apperrors.NewValidationError("emotionTypes", pool, "at least one emotion is required")
	}
	for _, e := range pool {
		if !e.Valid() {
			return models.EmotionalState{}, apperrors.NewValidationError("emotionTypes", e, "unknown emotion")
		}
	}
	primary := pick(g.rng, pool)
	trigger := g.trigger(market)
	intensity := 6 + g.rng.IntN(5)
	return g.state(primary, intensity, trigger), nil
}

func (g *EmotionGenerator) candidates(market models.MarketCondition, trader models.TraderProfile) []models.EmotionType {
	marketPool := g.tables.MarketEmotions[market]
	var pool []models.EmotionType
	for _, e := range marketPool {
		if trader.HasTendency(e) {
			pool = append(pool, e)
		}
	}
	if len(pool) == 0 {
		return marketPool
	}
	return pool
}

func (g *EmotionGenerator) trigger(market models.MarketCondition) string {
	categories := g.tables.Triggers[market]
	if len(categories) == 0 {
		return ""
	}
	cat := pick(g.rng, categories)
	if len(cat.Phrases) == 0 {
		return ""
	}
	return pick(g.rng, cat.Phrases)
}

func (g *EmotionGenerator) state(primary models.EmotionType, intensity int, trigger string) models.EmotionalState {
	behaviors := append([]models.TradingBehavior(nil), g.tables.Behaviors[primary]...)
	return models.EmotionalState{
		Primary:   primary,
		Intensity: intensity,
		Trigger:   trigger,
		Behaviors: behaviors,
	}
}

func baseIntensity(p models.TraderPersonality) int {
	switch p {
	case models.PersonalityImpulsive, models.PersonalityAggressive:
		return 7
	case models.PersonalityAnalytical, models.PersonalityPatient:
		return 3
	default:
		return 5
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
