package cli

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tradecoach/internal/coaching"
	"tradecoach/internal/generator"
	"tradecoach/internal/logging"
	"tradecoach/internal/models"
)

func addCoachCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newCoachCmd(app))
}

func newCoachCmd(app *App) *cobra.Command {
	var (
		from      string
		seed      uint64
		emotion   string
		behaviors []string
		advice    string
	)
	cmd := &cobra.Command{
		Use:   "coach",
		Short: "Read a scenario and score your assessment of the trader",
		Long: `Shows a scenario without its emotional state and asks you to name the
dominant emotion, the behaviors it caused, and your advice.

Pass --emotion (with --behavior and --advice) to assess without prompts.`,
		Example: `  tradecoach coach
  tradecoach coach --from run.json --emotion fear --behavior hesitation \
    --advice "Size down and trust the plan you wrote before the open."`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := app.output(cmd)

			var res *models.ScenarioResult
			var err error
			if from != "" {
				res, err = readResultFile(from)
			} else {
				res, err = app.randomScenario(cmd, seed)
			}
			if err != nil {
				return err
			}

			var assessment models.CoachingAssessment
			if emotion != "" {
				assessment = models.CoachingAssessment{
					Emotion:   models.EmotionType(strings.ToLower(emotion)),
					Behaviors: parseBehaviors(behaviors),
					Advice:    advice,
				}
			} else {
				if output.IsJSON() {
					return errors.New("--emotion is required with --json")
				}
				renderScenario(output, res, true)
				output.Println()
				if assessment, err = PromptForAssessment(); err != nil {
					return err
				}
			}

			session, err := coaching.NewSession(res.TraderState, assessment, time.Now())
			if err != nil {
				return err
			}
			logging.LogAssessment(app.Logger, session)

			if output.IsJSON() {
				return output.JSON(session)
			}
			if emotion == "" {
				output.Println()
			}
			renderResult(output, res, session)
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "assess a scenario saved with 'scenario --out'")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed when generating (0 = configured or random)")
	cmd.Flags().StringVar(&emotion, "emotion", "", "your read of the dominant emotion")
	cmd.Flags().StringSliceVar(&behaviors, "behavior", nil, "behavior you identified, repeatable")
	cmd.Flags().StringVar(&advice, "advice", "", "your advice to the trader")
	return cmd
}

func (app *App) randomScenario(cmd *cobra.Command, seed uint64) (*models.ScenarioResult, error) {
	gen, err := generator.New(app.generatorOptions(seed))
	if err != nil {
		return nil, err
	}
	return gen.GenerateRandom(cmd.Context())
}

func renderResult(output *Output, res *models.ScenarioResult, session models.CoachingSession) {
	r := session.Result
	score := output.Yellow(FormatScore(r.Score))
	switch {
	case r.Score >= 80:
		score = output.Green(FormatScore(r.Score))
	case r.Score < 40:
		score = output.Red(FormatScore(r.Score))
	}

	lines := []string{"Score: " + score, ""}
	for _, f := range r.Feedback {
		lines = append(lines, WrapText(f, 64)...)
	}
	lines = append(lines, "",
		"Actual emotion:   "+output.FormatEmotion(r.ActualEmotion),
		"Intensity:        "+FormatIntensity(res.TraderState.CurrentEmotionalState.Intensity),
		"Trigger:          "+res.TraderState.CurrentEmotionalState.Trigger,
	)
	output.Box("Coaching result", lines)
}

func parseBehaviors(values []string) []models.TradingBehavior {
	out := make([]models.TradingBehavior, 0, len(values))
	for _, v := range values {
		out = append(out, models.TradingBehavior(strings.ToLower(strings.TrimSpace(v))))
	}
	return out
}
