// Package catalog holds the reference data the scenario generator consumes:
// strategies, trader profiles, scenario templates and the lookup tables that
// map market conditions and emotions to triggers, behaviors and reasoning.
//
// A Catalog is treated as immutable once built. Default returns a fresh copy
// on every call so callers may substitute or tweak tables in tests without
// affecting anyone else.
package catalog

import (
	"fmt"

	apperrors "tradecoach/internal/errors"
	"tradecoach/internal/models"
)

// Catalog is the complete set of reference data.
type Catalog struct {
	Strategies []models.TradingStrategy `json:"strategies" yaml:"strategies"`
	Traders    []models.TraderProfile   `json:"traders" yaml:"traders"`
	Scenarios  []models.TradingScenario `json:"scenarios" yaml:"scenarios"`
	Tables     Tables                   `json:"tables" yaml:"tables"`
}

// ScenarioFilter narrows scenario templates. Empty fields match anything.
type ScenarioFilter struct {
	MarketCondition models.MarketCondition
	TimeFrame       models.TimeFrame
	AssetClass      models.AssetClass
	Difficulty      models.Difficulty
}

// Default returns the built-in catalog.
func Default() *Catalog {
	strategies := defaultStrategies()
	return &Catalog{
		Strategies: strategies,
		Traders:    defaultTraders(strategies),
		Scenarios:  defaultScenarios(),
		Tables:     defaultTables(),
	}
}

// TraderByID returns the trader profile with the given id.
func (c *Catalog) TraderByID(id string) (models.TraderProfile, error) {
	for _, t := range c.Traders {
		if t.ID == id {
			return t, nil
		}
	}
	return models.TraderProfile{}, apperrors.Wrapf(apperrors.ErrTraderNotFound, "trader %q", id)
}

// ScenarioByID returns the scenario template with the given id.
func (c *Catalog) ScenarioByID(id string) (models.TradingScenario, error) {
	for _, s := range c.Scenarios {
		if s.ID == id {
			return s.Clone(), nil
		}
	}
	return models.TradingScenario{}, apperrors.Wrapf(apperrors.ErrScenarioNotFound, "scenario %q", id)
}

// FilterScenarios returns the scenario templates matching every set field.
func (c *Catalog) FilterScenarios(f ScenarioFilter) []models.TradingScenario {
	var out []models.TradingScenario
	for _, s := range c.Scenarios {
		if f.MarketCondition != "" && s.MarketCondition != f.MarketCondition {
			continue
		}
		if f.TimeFrame != "" && s.TimeFrame != f.TimeFrame {
			continue
		}
		if f.AssetClass != "" && s.AssetClass != f.AssetClass {
			continue
		}
		if f.Difficulty != "" && s.Difficulty != f.Difficulty {
			continue
		}
		out = append(out, s.Clone())
	}
	return out
}

// RandomTrader picks a trader profile uniformly. ok is false when the
// catalog has no traders.
func (c *Catalog) RandomTrader(rng Rand) (models.TraderProfile, bool) {
	if len(c.Traders) == 0 {
		return models.TraderProfile{}, false
	}
	return c.Traders[rng.IntN(len(c.Traders))], true
}

// RandomScenario picks a scenario template uniformly and returns a copy.
// ok is false when the catalog has no scenarios.
func (c *Catalog) RandomScenario(rng Rand) (models.TradingScenario, bool) {
	if len(c.Scenarios) == 0 {
		return models.TradingScenario{}, false
	}
	return c.Scenarios[rng.IntN(len(c.Scenarios))].Clone(), true
}

// Validate checks that the catalog can drive the generator for every
// market condition, emotion and session.
func (c *Catalog) Validate() error {
	if len(c.Traders) == 0 {
		return apperrors.NewCatalogError("traders", "at least one trader profile is required")
	}
	if len(c.Scenarios) == 0 {
		return apperrors.NewCatalogError("scenarios", "at least one scenario is required")
	}

	seen := make(map[string]bool, len(c.Traders))
	for _, t := range c.Traders {
		if t.ID == "" {
			return apperrors.NewCatalogError("traders", fmt.Sprintf("trader %q has no id", t.Name))
		}
		if seen[t.ID] {
			return apperrors.NewCatalogError("traders", fmt.Sprintf("duplicate trader id %q", t.ID))
		}
		seen[t.ID] = true
		for _, e := range t.EmotionalTendencies {
			if !e.Valid() {
				return apperrors.NewCatalogError("traders", fmt.Sprintf("trader %q has unknown tendency %q", t.ID, e))
			}
		}
		if err := validateStrategy("traders", t.Strategy); err != nil {
			return err
		}
	}

	for _, s := range c.Strategies {
		if err := validateStrategy("strategies", s); err != nil {
			return err
		}
	}

	for _, s := range c.Scenarios {
		if err := validateScenario(s); err != nil {
			return err
		}
	}

	t := c.Tables
	for m, pool := range t.MarketEmotions {
		if !m.Valid() {
			return apperrors.NewCatalogError("market_emotions", fmt.Sprintf("unknown market condition %q", m))
		}
		for _, e := range pool {
			if !e.Valid() {
				return apperrors.NewCatalogError("market_emotions", fmt.Sprintf("%s pool has unknown emotion %q", m, e))
			}
		}
	}
	for _, m := range models.AllMarketConditions() {
		if len(t.MarketEmotions[m]) == 0 {
			return apperrors.NewCatalogError("market_emotions", fmt.Sprintf("no emotion pool for %s", m))
		}
		triggers := t.Triggers[m]
		if len(triggers) == 0 {
			return apperrors.NewCatalogError("triggers", fmt.Sprintf("no triggers for %s", m))
		}
		for _, cat := range triggers {
			if len(cat.Phrases) == 0 {
				return apperrors.NewCatalogError("triggers", fmt.Sprintf("trigger category %s/%s is empty", m, cat.Name))
			}
		}
	}

	for e, list := range t.Behaviors {
		if !e.Valid() {
			return apperrors.NewCatalogError("behaviors", fmt.Sprintf("unknown emotion %q", e))
		}
		for _, b := range list {
			if !b.Valid() {
				return apperrors.NewCatalogError("behaviors", fmt.Sprintf("%s has unknown behavior %q", e, b))
			}
		}
	}
	for _, e := range models.AllEmotions() {
		if len(t.Behaviors[e]) != 3 {
			return apperrors.NewCatalogError("behaviors", fmt.Sprintf("%s needs exactly 3 behaviors, has %d", e, len(t.Behaviors[e])))
		}
		if len(t.EmotionReasoning[e]) == 0 {
			return apperrors.NewCatalogError("emotion_reasoning", fmt.Sprintf("no reasoning for %s", e))
		}
	}

	for _, class := range []ReasoningClass{ReasonEntry, ReasonIncrease, ReasonExit, ReasonHold} {
		if len(t.ActionReasoning[class].Neutral) == 0 {
			return apperrors.NewCatalogError("action_reasoning", fmt.Sprintf("no neutral reasoning for %s", class))
		}
	}

	for _, s := range models.AllSessions() {
		windows := t.SessionWindows[s]
		if len(windows) == 0 {
			return apperrors.NewCatalogError("session_windows", fmt.Sprintf("no clock window for %s", s))
		}
		for _, w := range windows {
			start := w.StartHour*60 + w.StartMinute
			end := w.EndHour*60 + w.EndMinute
			if start < 0 || end > 24*60 || start >= end {
				return apperrors.NewCatalogError("session_windows", fmt.Sprintf("bad window for %s: %02d:%02d-%02d:%02d", s, w.StartHour, w.StartMinute, w.EndHour, w.EndMinute))
			}
		}
	}

	return nil
}

func validateStrategy(section string, s models.TradingStrategy) error {
	for _, tf := range s.TimeFrames {
		if !tf.Valid() {
			return apperrors.NewCatalogError(section, fmt.Sprintf("strategy %q has unknown time frame %q", s.Name, tf))
		}
	}
	for _, m := range append(append([]models.MarketCondition{}, s.BestMarketConditions...), s.WorstMarketConditions...) {
		if !m.Valid() {
			return apperrors.NewCatalogError(section, fmt.Sprintf("strategy %q has unknown market condition %q", s.Name, m))
		}
	}
	return nil
}

func validateScenario(s models.TradingScenario) error {
	switch {
	case !s.MarketCondition.Valid():
		return apperrors.NewCatalogError("scenarios", fmt.Sprintf("scenario %q has unknown market condition %q", s.ID, s.MarketCondition))
	case !s.TimeFrame.Valid():
		return apperrors.NewCatalogError("scenarios", fmt.Sprintf("scenario %q has unknown time frame %q", s.ID, s.TimeFrame))
	case !s.AssetClass.Valid():
		return apperrors.NewCatalogError("scenarios", fmt.Sprintf("scenario %q has unknown asset class %q", s.ID, s.AssetClass))
	case !s.Difficulty.Valid():
		return apperrors.NewCatalogError("scenarios", fmt.Sprintf("scenario %q has unknown difficulty %q", s.ID, s.Difficulty))
	}
	for _, b := range append(append([]models.TradingBehavior{}, s.IdealBehaviors...), s.CommonMistakes...) {
		if !b.Valid() {
			return apperrors.NewCatalogError("scenarios", fmt.Sprintf("scenario %q has unknown behavior %q", s.ID, b))
		}
	}
	return nil
}
