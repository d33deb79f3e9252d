// Package logging provides structured logging functionality.
package logging

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"tradecoach/internal/models"
)

// LogConfig holds logging configuration.
type LogConfig struct {
	Level      string
	Console    bool
	File       bool
	FilePath   string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
}

// NewLoggerWithConfig creates a new logger with the specified configuration.
// Console output goes to stderr so command output on stdout stays clean.
func NewLoggerWithConfig(cfg LogConfig) zerolog.Logger {
	return newLogger(cfg, os.Stderr)
}

func newLogger(cfg LogConfig, console io.Writer) zerolog.Logger {
	var writers []io.Writer

	if cfg.Console {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        console,
			TimeFormat: time.Kitchen,
			FormatLevel: func(i interface{}) string {
				if ll, ok := i.(string); ok {
					switch ll {
					case "debug":
						return "\033[36mDBG\033[0m"
					case "info":
						return "\033[32mINF\033[0m"
					case "warn":
						return "\033[33mWRN\033[0m"
					case "error":
						return "\033[31mERR\033[0m"
					default:
						return ll
					}
				}
				return "???"
			},
		})
	}

	// File writer with rotation
	if cfg.File && cfg.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0755); err == nil {
			writers = append(writers, &lumberjack.Logger{
				Filename:   cfg.FilePath,
				MaxSize:    cfg.MaxSize,
				MaxBackups: cfg.MaxBackups,
				MaxAge:     cfg.MaxAge,
				Compress:   true,
			})
		}
	}

	var writer io.Writer
	switch len(writers) {
	case 0:
		writer = io.Discard
	case 1:
		writer = writers[0]
	default:
		writer = zerolog.MultiLevelWriter(writers...)
	}

	return zerolog.New(writer).
		Level(ParseLevel(cfg.Level)).
		With().
		Timestamp().
		Logger()
}

// ParseLevel maps a config level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// ContextKey is the type for context keys.
type ContextKey string

const (
	// LoggerKey is the context key for the logger.
	LoggerKey ContextKey = "logger"
)

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, LoggerKey, logger)
}

// FromContext retrieves the logger from context.
func FromContext(ctx context.Context) zerolog.Logger {
	if logger, ok := ctx.Value(LoggerKey).(zerolog.Logger); ok {
		return logger
	}
	return zerolog.Nop()
}

// WithScenario adds a scenario id to the logger context.
func WithScenario(logger zerolog.Logger, scenarioID string) zerolog.Logger {
	return logger.With().Str("scenario_id", scenarioID).Logger()
}

// WithTrader adds a trader id to the logger context.
func WithTrader(logger zerolog.Logger, traderID string) zerolog.Logger {
	return logger.With().Str("trader_id", traderID).Logger()
}

// WithOperation adds an operation name to the logger context.
func WithOperation(logger zerolog.Logger, operation string) zerolog.Logger {
	return logger.With().Str("operation", operation).Logger()
}

// LogScenario logs a completed scenario run.
func LogScenario(logger zerolog.Logger, res *models.ScenarioResult) {
	st := res.TraderState
	logger.Info().
		Str("event", "scenario").
		Str("market", string(res.Scenario.MarketCondition)).
		Str("emotion", string(st.CurrentEmotionalState.Primary)).
		Int("intensity", st.CurrentEmotionalState.Intensity).
		Int("decisions", len(st.Decisions)).
		Int("emotional_mistakes", st.Performance.EmotionalMistakes).
		Int("total_trades", st.Performance.TotalTrades).
		Float64("profit_loss", st.Performance.ProfitLoss).
		Msg("Scenario generated")
}

// LogDecision logs one generated decision.
func LogDecision(logger zerolog.Logger, index int, d models.TraderDecision) {
	event := logger.Debug().
		Str("event", "decision").
		Int("index", index).
		Str("action", string(d.Action)).
		Str("session", string(d.Session)).
		Bool("violates_strategy", d.ViolatesStrategy).
		Str("outcome", string(d.Outcome))
	if d.Direction != models.DirectionNone {
		event = event.Str("direction", string(d.Direction))
	}
	if d.TradeProfit != nil {
		event = event.Float64("trade_profit", *d.TradeProfit)
	}
	event.Msg("Decision generated")
}

// LogAssessment logs a scored coaching assessment.
func LogAssessment(logger zerolog.Logger, s models.CoachingSession) {
	logger.Info().
		Str("event", "assessment").
		Str("session_id", s.ID).
		Str("scenario_id", s.ScenarioID).
		Str("guess", string(s.Assessment.Emotion)).
		Str("actual", string(s.Result.ActualEmotion)).
		Int("score", s.Result.Score).
		Msg("Coaching assessed")
}

// LogRequest logs a served HTTP request.
func LogRequest(logger zerolog.Logger, method, path string, status int, duration time.Duration) {
	event := logger.Info()
	if status >= 500 {
		event = logger.Error()
	} else if status >= 400 {
		event = logger.Warn()
	}
	event.
		Str("event", "request").
		Str("method", method).
		Str("path", path).
		Int("status", status).
		Dur("duration", duration).
		Msg("Request served")
}
