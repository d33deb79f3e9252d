package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tradecoach/internal/generator"
	"tradecoach/internal/models"
)

func addScenarioCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:     "scenario",
		Aliases: []string{"sc"},
		Short:   "Generate trading psychology scenarios",
	}
	cmd.AddCommand(newRandomScenarioCmd(app))
	cmd.AddCommand(newCustomScenarioCmd(app))
	rootCmd.AddCommand(cmd)
}

func newRandomScenarioCmd(app *App) *cobra.Command {
	var (
		seed uint64
		out  string
	)
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate a scenario from a random template and trader",
		Example: `  tradecoach scenario random
  tradecoach scenario random --seed 42 --out run.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := generator.New(app.generatorOptions(seed))
			if err != nil {
				return err
			}
			res, err := gen.GenerateRandom(cmd.Context())
			if err != nil {
				return err
			}
			return emitScenario(app.output(cmd), res, out)
		},
	}
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (0 = configured or random)")
	cmd.Flags().StringVar(&out, "out", "", "also write the result as JSON to this file")
	return cmd
}

func newCustomScenarioCmd(app *App) *cobra.Command {
	var (
		market, timeFrame, asset, difficulty string
		emotions                             []string
		seed                                 uint64
		out                                  string
	)
	cmd := &cobra.Command{
		Use:   "custom",
		Short: "Generate a scenario with chosen market, asset and emotions",
		Example: `  tradecoach scenario custom --market volatile --timeframe intraday \
    --asset crypto --difficulty hard --emotion fear --emotion revenge`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := generator.CustomRequest{
				MarketCondition: models.MarketCondition(market),
				TimeFrame:       models.TimeFrame(timeFrame),
				AssetClass:      models.AssetClass(asset),
				Difficulty:      models.Difficulty(difficulty),
				EmotionTypes:    parseEmotions(emotions),
			}
			gen, err := generator.New(app.generatorOptions(seed))
			if err != nil {
				return err
			}
			res, err := gen.GenerateCustom(cmd.Context(), req)
			if err != nil {
				return err
			}
			return emitScenario(app.output(cmd), res, out)
		},
	}
	cmd.Flags().StringVar(&market, "market", string(models.MarketVolatile), "market condition: "+joinValues(models.AllMarketConditions()))
	cmd.Flags().StringVar(&timeFrame, "timeframe", string(models.TimeFrameIntraday), "time frame: "+joinValues(models.AllTimeFrames()))
	cmd.Flags().StringVar(&asset, "asset", string(models.AssetStocks), "asset class: "+joinValues(models.AllAssetClasses()))
	cmd.Flags().StringVar(&difficulty, "difficulty", string(models.DifficultyMedium), "difficulty: "+joinValues(models.AllDifficulties()))
	cmd.Flags().StringSliceVar(&emotions, "emotion", nil, "emotion to force, repeatable: "+joinValues(models.AllEmotions()))
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (0 = configured or random)")
	cmd.Flags().StringVar(&out, "out", "", "also write the result as JSON to this file")
	_ = cmd.MarkFlagRequired("emotion")
	return cmd
}

// emitScenario prints res and optionally saves it for a later assessment.
func emitScenario(output *Output, res *models.ScenarioResult, out string) error {
	if out != "" {
		if err := writeResultFile(out, res); err != nil {
			return err
		}
	}
	if output.IsJSON() {
		return output.JSON(res)
	}
	renderScenario(output, res, false)
	if out != "" {
		output.Dim("Saved to %s", out)
	}
	return nil
}

func writeResultFile(path string, res *models.ScenarioResult) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func readResultFile(path string) (*models.ScenarioResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var res models.ScenarioResult
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &res, nil
}

// renderScenario prints a scenario run. A blind render hides the emotional
// state and the per-decision emotion flags so the reader can assess them.
func renderScenario(output *Output, res *models.ScenarioResult, blind bool) {
	sc := res.Scenario
	lines := WrapText(sc.Description, 64)
	lines = append(lines, "",
		fmt.Sprintf("Market: %s   Time frame: %s", Humanize(string(sc.MarketCondition)), Humanize(string(sc.TimeFrame))),
		fmt.Sprintf("Asset: %s   Difficulty: %s", Humanize(string(sc.AssetClass)), Humanize(string(sc.Difficulty))),
	)
	output.Box(sc.Title, lines)
	output.Println()

	for _, n := range sc.NewsEvents {
		output.Printf("  %s %s %s\n", output.DimText(FormatClock(n.Timestamp)), output.BoldText(n.Headline), output.DimText("["+string(n.Impact)+"]"))
	}
	if len(sc.NewsEvents) > 0 {
		output.Println()
	}

	t := res.Trader
	output.Bold("%s", t.Name)
	output.Printf("  %s %s trader, %s strategy\n", Humanize(string(t.Experience)), string(t.Personality), t.Strategy.Name)
	output.Printf("  %s\n", output.DimText(t.Strategy.Description))
	output.Println()

	state := res.TraderState
	if !blind {
		es := state.CurrentEmotionalState
		output.Bold("Emotional state")
		output.Printf("  Primary:    %s\n", output.FormatEmotion(es.Primary))
		output.Printf("  Intensity:  %s\n", FormatIntensity(es.Intensity))
		output.Printf("  Trigger:    %s\n", es.Trigger)
		output.Printf("  Behaviors:  %s\n", HumanizeAll(es.Behaviors))
		output.Println()
	}

	output.Bold("Decisions")
	headers := []string{"Time", "Session", "Action", "Reasoning", "Outcome", "Fill"}
	if !blind {
		headers = append(headers, "Emotion")
	}
	table := NewTable(output, headers...)
	for _, d := range state.Decisions {
		fill := "-"
		if d.EntryPrice != nil {
			fill = "in " + FormatPrice(d.EntryPrice)
		} else if d.ExitPrice != nil {
			fill = "out " + FormatPrice(d.ExitPrice)
		}
		row := []string{
			FormatClock(d.Timestamp),
			Humanize(string(d.Session)),
			FormatAction(d.Action, d.Direction),
			TruncateString(d.Reasoning, 48),
			output.FormatOutcome(d.Outcome),
			fill,
		}
		if !blind {
			emotion := "-"
			if d.EmotionalInfluence != nil {
				emotion = output.FormatEmotion(*d.EmotionalInfluence)
			}
			row = append(row, emotion)
		}
		table.AddRow(row...)
	}
	table.Render()
	output.Println()

	p := state.Performance
	output.Printf("P&L %s   Trades %d   Correct %d/%d", output.FormatPnL(p.ProfitLoss), p.TotalTrades, p.CorrectDecisions, len(state.Decisions))
	if !blind {
		output.Printf("   Emotional mistakes %d", p.EmotionalMistakes)
	}
	output.Println()
}

func parseEmotions(values []string) []models.EmotionType {
	out := make([]models.EmotionType, 0, len(values))
	for _, v := range values {
		out = append(out, models.EmotionType(strings.ToLower(strings.TrimSpace(v))))
	}
	return out
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
