package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradecoach/internal/models"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"INFO":    zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNewLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(LogConfig{Level: "warn", Console: true}, &buf)

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "tradecoach.log")
	logger := newLogger(LogConfig{Level: "info", File: true, FilePath: path, MaxSize: 1}, nil)
	logger.Info().Msg("to file")
	assert.FileExists(t, path)
}

func TestContextLogger(t *testing.T) {
	assert.Equal(t, zerolog.Disabled, FromContext(context.Background()).GetLevel())

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	ctx := WithLogger(context.Background(), logger)
	l := FromContext(ctx)
	l.Info().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
}

func TestLogScenarioFields(t *testing.T) {
	var buf bytes.Buffer
	logger := WithTrader(WithScenario(zerolog.New(&buf), "scenario1"), "trader1")

	LogScenario(logger, &models.ScenarioResult{
		Scenario: models.TradingScenario{ID: "scenario1", MarketCondition: models.MarketBullish},
		TraderState: models.TraderState{
			CurrentEmotionalState: models.EmotionalState{Primary: models.EmotionGreed, Intensity: 8},
			Decisions:             make([]models.TraderDecision, 4),
			Performance:           models.Performance{ProfitLoss: 1.5, EmotionalMistakes: 2, TotalTrades: 3},
		},
	})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "scenario1", entry["scenario_id"])
	assert.Equal(t, "trader1", entry["trader_id"])
	assert.Equal(t, "greed", entry["emotion"])
	assert.Equal(t, float64(4), entry["decisions"])
	assert.Equal(t, 1.5, entry["profit_loss"])
}

func TestLogDecisionIsDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.InfoLevel)
	LogDecision(logger, 0, models.TraderDecision{Action: models.ActionBuy})
	assert.Empty(t, buf.String())

	LogDecision(logger.Level(zerolog.DebugLevel), 1, models.TraderDecision{Action: models.ActionBuy, Direction: models.DirectionShort})
	assert.Contains(t, buf.String(), `"direction":"short"`)
}
