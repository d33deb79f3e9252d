package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tradecoach/internal/catalog"
	apperrors "tradecoach/internal/errors"
	"tradecoach/internal/models"
)

func addCatalogCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse traders, strategies and scenario templates",
	}
	cmd.AddCommand(newTradersCmd(app))
	cmd.AddCommand(newStrategiesCmd(app))
	cmd.AddCommand(newScenariosCmd(app))
	cmd.AddCommand(newExportCmd(app))
	rootCmd.AddCommand(cmd)
}

func newTradersCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "traders [id]",
		Short: "List trader profiles, or show one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := app.output(cmd)
			if len(args) == 1 {
				t, err := app.Catalog.TraderByID(args[0])
				if err != nil {
					return err
				}
				if output.IsJSON() {
					return output.JSON(t)
				}
				renderTrader(output, t)
				return nil
			}

			if output.IsJSON() {
				return output.JSON(app.Catalog.Traders)
			}
			table := NewTable(output, "ID", "Name", "Personality", "Experience", "Strategy", "Tendencies")
			for _, t := range app.Catalog.Traders {
				table.AddRow(t.ID, t.Name, string(t.Personality), string(t.Experience), t.Strategy.Name, HumanizeAll(t.EmotionalTendencies))
			}
			table.Render()
			return nil
		},
	}
}

func renderTrader(output *Output, t models.TraderProfile) {
	lines := []string{
		fmt.Sprintf("%s %s trader", Humanize(string(t.Experience)), t.Personality),
		"Assets:      " + HumanizeAll(t.PreferredAssets),
		"Time frames: " + HumanizeAll(t.PreferredTimeFrames),
		"Tendencies:  " + HumanizeAll(t.EmotionalTendencies),
		"Strategy:    " + t.Strategy.Name,
		"",
		"Strengths:   " + strings.Join(t.Strengths, ", "),
		"Weaknesses:  " + strings.Join(t.Weaknesses, ", "),
	}
	output.Box(t.Name, lines)
}

func newStrategiesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List trading strategies",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := app.output(cmd)
			if output.IsJSON() {
				return output.JSON(app.Catalog.Strategies)
			}
			for i, s := range app.Catalog.Strategies {
				if i > 0 {
					output.Println()
				}
				output.Bold("%s (%s)", s.Name, Humanize(string(s.Type)))
				output.Printf("  %s\n", s.Description)
				output.Printf("  Best:  %s\n", output.Green(HumanizeAll(s.BestMarketConditions)))
				output.Printf("  Worst: %s\n", output.Red(HumanizeAll(s.WorstMarketConditions)))
				for _, r := range s.Rules {
					output.Printf("  • %s\n", r)
				}
			}
			return nil
		},
	}
}

func newScenariosCmd(app *App) *cobra.Command {
	var market, timeFrame, asset, difficulty string
	cmd := &cobra.Command{
		Use:   "scenarios [id]",
		Short: "List scenario templates, or show one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := app.output(cmd)
			if len(args) == 1 {
				sc, err := app.Catalog.ScenarioByID(args[0])
				if err != nil {
					return err
				}
				if output.IsJSON() {
					return output.JSON(sc)
				}
				renderTemplate(output, sc)
				return nil
			}

			f := catalog.ScenarioFilter{
				MarketCondition: models.MarketCondition(market),
				TimeFrame:       models.TimeFrame(timeFrame),
				AssetClass:      models.AssetClass(asset),
				Difficulty:      models.Difficulty(difficulty),
			}
			if err := validateFilter(f); err != nil {
				return err
			}
			scenarios := app.Catalog.FilterScenarios(f)
			if output.IsJSON() {
				if scenarios == nil {
					scenarios = []models.TradingScenario{}
				}
				return output.JSON(scenarios)
			}
			if len(scenarios) == 0 {
				output.Warning("No scenario templates match")
				return nil
			}
			table := NewTable(output, "ID", "Title", "Market", "Time frame", "Asset", "Difficulty")
			for _, s := range scenarios {
				table.AddRow(s.ID, s.Title, string(s.MarketCondition), string(s.TimeFrame), string(s.AssetClass), string(s.Difficulty))
			}
			table.Render()
			return nil
		},
	}
	cmd.Flags().StringVar(&market, "market", "", "filter by market condition")
	cmd.Flags().StringVar(&timeFrame, "timeframe", "", "filter by time frame")
	cmd.Flags().StringVar(&asset, "asset", "", "filter by asset class")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "filter by difficulty")
	return cmd
}

func renderTemplate(output *Output, sc models.TradingScenario) {
	lines := WrapText(sc.Description, 64)
	lines = append(lines, "",
		fmt.Sprintf("Market: %s   Time frame: %s", Humanize(string(sc.MarketCondition)), Humanize(string(sc.TimeFrame))),
		fmt.Sprintf("Asset: %s   Difficulty: %s", Humanize(string(sc.AssetClass)), Humanize(string(sc.Difficulty))),
		fmt.Sprintf("Price points: %d   News events: %d", len(sc.PriceAction), len(sc.NewsEvents)),
		"Ideal:    "+HumanizeAll(sc.IdealBehaviors),
		"Mistakes: "+HumanizeAll(sc.CommonMistakes),
	)
	output.Box(sc.Title, lines)
}

func newExportCmd(app *App) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the active catalog as YAML",
		Long: `Writes the active catalog as YAML. Edit the file and point
generator.catalog_file at it to use your own traders and scenarios.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := catalog.Marshal(app.Catalog)
			if err != nil {
				return err
			}
			if out == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(out, data, 0644); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			app.output(cmd).Success("✓ Catalog written to %s", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: stdout)")
	return cmd
}

func validateFilter(f catalog.ScenarioFilter) error {
	if f.MarketCondition != "" && !f.MarketCondition.Valid() {
		return apperrors.NewValidationError("market", f.MarketCondition, "unknown market condition")
	}
	if f.TimeFrame != "" && !f.TimeFrame.Valid() {
		return apperrors.NewValidationError("timeframe", f.TimeFrame, "unknown time frame")
	}
	if f.AssetClass != "" && !f.AssetClass.Valid() {
		return apperrors.NewValidationError("asset", f.AssetClass, "unknown asset class")
	}
	if f.Difficulty != "" && !f.Difficulty.Valid() {
		return apperrors.NewValidationError("difficulty", f.Difficulty, "unknown difficulty")
	}
	return nil
}
