package cli

import (
	"sort"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"tradecoach/internal/generator"
	"tradecoach/internal/models"
)

func addSimulateCommands(rootCmd *cobra.Command, app *App) {
	var (
		runs, workers int
		seed          uint64
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run many random scenarios and report aggregate statistics",
		Example: `  tradecoach simulate --runs 5000 --seed 7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := app.output(cmd)
			if seed == 0 {
				seed = app.Config.Generator.Seed
			}
			opts := app.generatorOptions(seed)
			opts.Logger = quietLogger(app.Logger)

			report, err := generator.Simulate(cmd.Context(), opts, generator.SimulationRequest{
				Runs:    runs,
				Workers: workers,
				Seed:    seed,
			})
			if err != nil {
				return err
			}
			if output.IsJSON() {
				return output.JSON(report)
			}
			renderReport(output, report)
			return nil
		},
	}
	cmd.Flags().IntVar(&runs, "runs", 1000, "number of scenarios to generate")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel workers (0 = number of CPUs)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "base seed (0 = configured or random)")
	rootCmd.AddCommand(cmd)
}

func renderReport(output *Output, r *generator.SimulationReport) {
	output.Box("Simulation", []string{
		"Runs:                      " + FormatCount(r.Runs),
		"Workers:                   " + FormatCount(r.Workers),
		"Decisions:                 " + FormatCount(r.Decisions),
		"Mean decisions per run:    " + FormatFloat(r.MeanDecisions),
		"Violation rate:            " + FormatRate(r.ViolationRate),
		"Positive when violating:   " + FormatRate(r.PositiveRateViolating),
		"Positive when disciplined: " + FormatRate(r.PositiveRateDisciplined),
		"Mean P&L:                  " + output.FormatPnL(r.MeanProfitLoss),
		"Mean trades:               " + FormatFloat(r.MeanTotalTrades),
		"Elapsed:                   " + FormatDuration(r.Duration),
	})
	output.Println()

	type row struct {
		emotion models.EmotionType
		count   int
	}
	rows := make([]row, 0, len(r.Emotions))
	for e, n := range r.Emotions {
		rows = append(rows, row{e, n})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].count != rows[j].count {
			return rows[i].count > rows[j].count
		}
		return rows[i].emotion < rows[j].emotion
	})

	table := NewTable(output, "Emotion", "Runs", "Share")
	for _, rw := range rows {
		table.AddRow(Humanize(string(rw.emotion)), FormatCount(rw.count), FormatRate(float64(rw.count)/float64(r.Runs)))
	}
	table.Render()
}

// quietLogger raises the level to warn so per-run info lines stay out of a
// batch.
func quietLogger(l zerolog.Logger) zerolog.Logger {
	if l.GetLevel() < zerolog.WarnLevel {
		return l.Level(zerolog.WarnLevel)
	}
	return l
}
