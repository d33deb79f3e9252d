package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradecoach/internal/catalog"
	"tradecoach/internal/config"
	apperrors "tradecoach/internal/errors"
	"tradecoach/internal/generator"
	"tradecoach/internal/models"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)
	return cfg
}

func execute(t *testing.T, cfg *config.Config, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(cfg, zerolog.Nop())
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestVersionJSON(t *testing.T) {
	out, err := execute(t, testConfig(t), "version", "--json")
	require.NoError(t, err)

	var v map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Equal(t, Version, v["version"])
}

func TestConfigPath(t *testing.T) {
	cfg := testConfig(t)
	out, err := execute(t, cfg, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cfg.Dir, "config.toml")+"\n", out)
}

func TestScenarioRandom_SeedIsReproducible(t *testing.T) {
	cfg := testConfig(t)
	first, err := execute(t, cfg, "scenario", "random", "--seed", "42", "--json")
	require.NoError(t, err)
	second, err := execute(t, cfg, "scenario", "random", "--seed", "42", "--json")
	require.NoError(t, err)

	var a, b models.ScenarioResult
	require.NoError(t, json.Unmarshal([]byte(first), &a))
	require.NoError(t, json.Unmarshal([]byte(second), &b))
	assert.Equal(t, a.TraderState.CurrentEmotionalState, b.TraderState.CurrentEmotionalState)
	assert.Len(t, b.TraderState.Decisions, len(a.TraderState.Decisions))
	assert.GreaterOrEqual(t, len(a.TraderState.Decisions), generator.DefaultRandomDecisions.Min)
	assert.LessOrEqual(t, len(a.TraderState.Decisions), generator.DefaultRandomDecisions.Max)
	assert.GreaterOrEqual(t, a.TraderState.Performance.EmotionalMistakes, 1)
}

func TestScenarioRandom_TextOutput(t *testing.T) {
	out, err := execute(t, testConfig(t), "scenario", "random", "--seed", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "Emotional state")
	assert.Contains(t, out, "Decisions")
	assert.Contains(t, out, "P&L")
}

func TestScenarioCustom(t *testing.T) {
	out, err := execute(t, testConfig(t), "scenario", "custom",
		"--market", "volatile", "--timeframe", "intraday", "--asset", "crypto",
		"--difficulty", "hard", "--emotion", "fear", "--seed", "3", "--json")
	require.NoError(t, err)

	var res models.ScenarioResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, models.EmotionFear, res.TraderState.CurrentEmotionalState.Primary)
	assert.Equal(t, models.AssetCrypto, res.Scenario.AssetClass)
	assert.GreaterOrEqual(t, res.TraderState.CurrentEmotionalState.Intensity, 6)
}

func TestScenarioCustom_RejectsUnknownEmotion(t *testing.T) {
	_, err := execute(t, testConfig(t), "scenario", "custom", "--emotion", "euphoria")
	require.Error(t, err)

	var vErr *apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "emotionTypes", vErr.Field)
}

func TestCoach_FromSavedScenario(t *testing.T) {
	cfg := testConfig(t)
	path := filepath.Join(t.TempDir(), "run.json")
	_, err := execute(t, cfg, "scenario", "random", "--seed", "11", "--out", path, "--json")
	require.NoError(t, err)

	res, err := readResultFile(path)
	require.NoError(t, err)
	state := res.TraderState.CurrentEmotionalState

	args := []string{"coach", "--from", path, "--json",
		"--emotion", string(state.Primary),
		"--advice", "Step away after a loss and re-read the plan before the next entry."}
	for _, b := range state.Behaviors {
		args = append(args, "--behavior", string(b))
	}
	out, err := execute(t, cfg, args...)
	require.NoError(t, err)

	var session models.CoachingSession
	require.NoError(t, json.Unmarshal([]byte(out), &session))
	assert.Equal(t, 100, session.Result.Score)
	assert.Equal(t, res.Scenario.ID, session.ScenarioID)
	assert.NotEmpty(t, session.ID)
}

func TestCoach_JSONNeedsEmotion(t *testing.T) {
	_, err := execute(t, testConfig(t), "coach", "--seed", "1", "--json")
	assert.Error(t, err)
}

func TestCatalogCommands(t *testing.T) {
	cfg := testConfig(t)

	out, err := execute(t, cfg, "catalog", "traders", "--json")
	require.NoError(t, err)
	var traders []models.TraderProfile
	require.NoError(t, json.Unmarshal([]byte(out), &traders))
	assert.Len(t, traders, len(catalog.Default().Traders))

	_, err = execute(t, cfg, "catalog", "traders", "trader99")
	assert.ErrorIs(t, err, apperrors.ErrTraderNotFound)

	out, err = execute(t, cfg, "catalog", "scenarios", "--market", "volatile", "--json")
	require.NoError(t, err)
	var scenarios []models.TradingScenario
	require.NoError(t, json.Unmarshal([]byte(out), &scenarios))
	require.Len(t, scenarios, 1)
	assert.Equal(t, "scenario4", scenarios[0].ID)

	_, err = execute(t, cfg, "catalog", "scenarios", "--market", "sideways")
	var vErr *apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "market", vErr.Field)
}

func TestCatalogExport_LoadsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	_, err := execute(t, testConfig(t), "catalog", "export", "-o", path)
	require.NoError(t, err)

	c, err := catalog.LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, c.Scenarios, len(catalog.Default().Scenarios))
}

func TestCatalogFileFromConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Generator.CatalogFile = filepath.Join(t.TempDir(), "missing.yaml")
	_, err := execute(t, cfg, "catalog", "traders")
	assert.Error(t, err)
}

func TestSimulate(t *testing.T) {
	out, err := execute(t, testConfig(t), "simulate", "--runs", "20", "--workers", "2", "--seed", "5", "--json")
	require.NoError(t, err)

	var report generator.SimulationReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 20, report.Runs)
	assert.Greater(t, report.Decisions, 0)

	total := 0
	for _, n := range report.Emotions {
		total += n
	}
	assert.Equal(t, 20, total)
}
