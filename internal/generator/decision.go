package generator

import (
	"math"
	"time"

	"tradecoach/internal/catalog"
	"tradecoach/internal/models"
)

const (
	textbookWeight      = 0.65
	violationScale      = 0.7
	strategyFitAdjust   = 0.2
	disciplinedWinRate  = 0.7
	emotionalWinRate    = 0.3
	directionMarketBias = 0.7
)

// DecisionInput is everything one decision depends on.
type DecisionInput struct {
	State    models.EmotionalState
	Trader   models.TraderProfile
	Scenario models.TradingScenario
	Session  models.Session
	Position Position
	Date     time.Time
}

// DecisionGenerator produces one trader decision at a time.
type DecisionGenerator struct {
	tables *catalog.Tables
	rng    Rand
}

// NewDecisionGenerator creates a decision generator over the given tables.
func NewDecisionGenerator(tables *catalog.Tables, rng Rand) *DecisionGenerator {
	return &DecisionGenerator{tables: tables, rng: rng}
}

// ViolationProbability is the chance a decision breaks the trader's own
// strategy. It rises with intensity and with a market the strategy handles
// badly, and falls when the market suits the strategy.
func ViolationProbability(intensity int, fits, misfits bool) float64 {
	p := float64(intensity) / 10 * violationScale
	if misfits {
		p += strategyFitAdjust
	}
	if fits {
		p -= strategyFitAdjust
	}
	return math.Max(0, math.Min(1, p))
}

// Generate produces the next decision given the current position.
func (g *DecisionGenerator) Generate(in DecisionInput) models.TraderDecision {
	market := in.Scenario.MarketCondition
	strategy := in.Trader.Strategy

	p := ViolationProbability(in.State.Intensity, strategy.Fits(market), strategy.Misfits(market))
	violates := chance(g.rng, p)

	dir := in.Position.Direction
	if !in.Position.Open {
		dir = g.direction(market)
	}

	var action models.Action
	if violates {
		action = g.emotionalAction(in.State.Primary, in.Position.Open)
	} else {
		action = g.textbookAction(market, in.Position.Open)
	}
	if !in.Position.Open && !action.IsEntry() {
		dir = models.DirectionNone
	}

	d := models.TraderDecision{
		Timestamp: SessionTime(g.rng, g.tables.SessionWindows[in.Session], in.Date),
		Action:    action,
		Direction: dir,
		Session:   in.Session,
	}
	if violates {
		d.MarkEmotional(in.State.Primary)
		d.Reasoning = g.emotionReasoning(in.State.Primary)
	} else {
		d.Reasoning = g.actionReasoning(action, dir)
	}
	d.Reasoning = g.withSessionNote(d.Reasoning, in.Session, strategy)

	winRate := disciplinedWinRate
	if violates {
		winRate = emotionalWinRate
	}
	d.Outcome = models.OutcomeNegative
	if chance(g.rng, winRate) {
		d.Outcome = models.OutcomePositive
	}
	return d
}

func (g *DecisionGenerator) direction(market models.MarketCondition) models.Direction {
	longBias := 0.5
	switch market {
	case models.MarketBearish:
		longBias = 1 - directionMarketBias
	case models.MarketBullish:
		longBias = directionMarketBias
	}
	if chance(g.rng, longBias) {
		return models.DirectionLong
	}
	return models.DirectionShort
}

// emotionalAction maps the dominant emotion to the action it pushes for.
func (g *DecisionGenerator) emotionalAction(e models.EmotionType, open bool) models.Action {
	switch e {
	case models.EmotionGreed, models.EmotionOverconfidence:
		if !open {
			return models.ActionBuy
		}
		if chance(g.rng, 0.7) {
			return models.ActionIncreasePosition
		}
		return models.ActionBuy
	case models.EmotionFear, models.EmotionAnxiety:
		if !open {
			return models.ActionHold
		}
		if chance(g.rng, 0.6) {
			return models.ActionDecreasePosition
		}
		return models.ActionExit
	case models.EmotionRevenge, models.EmotionFrustration:
		if open {
			return models.ActionIncreasePosition
		}
		return models.ActionBuy
	case models.EmotionBoredom, models.EmotionImpatience:
		if open {
			return models.ActionExit
		}
		return models.ActionBuy
	default:
		if open {
			return pick(g.rng, []models.Action{
				models.ActionIncreasePosition,
				models.ActionDecreasePosition,
				models.ActionExit,
				models.ActionHold,
			})
		}
		return pick(g.rng, []models.Action{models.ActionBuy, models.ActionHold})
	}
}

// textbookAction is what the strategy would do in this market.
func (g *DecisionGenerator) textbookAction(market models.MarketCondition, open bool) models.Action {
	switch market {
	case models.MarketTrending, models.MarketBullish:
		if !chance(g.rng, textbookWeight) {
			return models.ActionHold
		}
		if open {
			return models.ActionIncreasePosition
		}
		return models.ActionBuy
	case models.MarketBearish:
		r := g.rng.Float64()
		if open {
			switch {
			case r < 0.35:
				return models.ActionDecreasePosition
			case r < 0.70:
				return models.ActionSell
			default:
				return models.ActionHold
			}
		}
		if r < textbookWeight {
			return models.ActionBuy
		}
		return models.ActionHold
	case models.MarketVolatile:
		r := g.rng.Float64()
		if open {
			switch {
			case r < 0.4:
				return models.ActionDecreasePosition
			case r < 0.7:
				return models.ActionHold
			default:
				return models.ActionExit
			}
		}
		if r < 0.35 {
			return models.ActionBuy
		}
		return models.ActionHold
	default: // choppy, ranging
		if chance(g.rng, textbookWeight) {
			return models.ActionHold
		}
		if open {
			return models.ActionDecreasePosition
		}
		return models.ActionBuy
	}
}

func reasoningClass(a models.Action) catalog.ReasoningClass {
	switch a {
	case models.ActionBuy:
		return catalog.ReasonEntry
	case models.ActionIncreasePosition:
		return catalog.ReasonIncrease
	case models.ActionDecreasePosition, models.ActionExit, models.ActionSell:
		return catalog.ReasonExit
	default:
		return catalog.ReasonHold
	}
}

func (g *DecisionGenerator) emotionReasoning(e models.EmotionType) string {
	pool := g.tables.EmotionReasoning[e]
	if len(pool) == 0 {
		return ""
	}
	return pick(g.rng, pool)
}

func (g *DecisionGenerator) actionReasoning(a models.Action, dir models.Direction) string {
	pool := g.tables.ActionReasoning[reasoningClass(a)].For(dir)
	if len(pool) == 0 {
		return ""
	}
	return pick(g.rng, pool)
}

func (g *DecisionGenerator) withSessionNote(reasoning string, s models.Session, strategy models.TradingStrategy) string {
	note := g.tables.SessionNotes[s]
	if note == "" || strategy.Mentions(string(s)) {
		return reasoning
	}
	if reasoning == "" {
		return note
	}
	return reasoning + " " + note
}
