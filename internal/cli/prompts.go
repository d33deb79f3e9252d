package cli

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"tradecoach/internal/coaching"
	"tradecoach/internal/models"
)

// PromptForEmotion asks which emotion drove the trader.
func PromptForEmotion() (models.EmotionType, error) {
	options := make([]string, 0, len(models.AllEmotions()))
	for _, e := range models.AllEmotions() {
		options = append(options, Humanize(string(e)))
	}

	var selected string
	prompt := &survey.Select{
		Message: "Which emotion is driving this trader?",
		Options: options,
		Help:    "Pick the dominant emotion behind the decisions you just read.",
	}
	if err := survey.AskOne(prompt, &selected); err != nil {
		return "", err
	}
	return models.EmotionType(labelToValue(selected)), nil
}

// PromptForBehaviors asks which behaviors the emotion caused.
func PromptForBehaviors() ([]models.TradingBehavior, error) {
	options := make([]string, 0, len(models.AllBehaviors()))
	for _, b := range models.AllBehaviors() {
		options = append(options, Humanize(string(b)))
	}

	var selected []string
	prompt := &survey.MultiSelect{
		Message: "Which behaviors did it produce?",
		Options: options,
		Help:    "Use space to select, enter to confirm. Wrong picks cost points.",
	}
	err := survey.AskOne(prompt, &selected, survey.WithValidator(func(val interface{}) error {
		answers, ok := val.([]survey.OptionAnswer)
		if !ok {
			return fmt.Errorf("invalid selection type")
		}
		if len(answers) == 0 {
			return fmt.Errorf("select at least one behavior")
		}
		return nil
	}))
	if err != nil {
		return nil, err
	}

	out := make([]models.TradingBehavior, 0, len(selected))
	for _, s := range selected {
		out = append(out, models.TradingBehavior(labelToValue(s)))
	}
	return out, nil
}

// PromptForAdvice asks for the coaching advice text.
func PromptForAdvice() (string, error) {
	var advice string
	prompt := &survey.Multiline{
		Message: "What would you tell this trader?",
		Help:    fmt.Sprintf("Advice of at least %d characters earns the advice points.", coaching.MinAdviceCharacters),
	}
	if err := survey.AskOne(prompt, &advice); err != nil {
		return "", err
	}
	return strings.TrimSpace(advice), nil
}

// PromptForAssessment runs the three prompts in order.
func PromptForAssessment() (models.CoachingAssessment, error) {
	emotion, err := PromptForEmotion()
	if err != nil {
		return models.CoachingAssessment{}, err
	}
	behaviors, err := PromptForBehaviors()
	if err != nil {
		return models.CoachingAssessment{}, err
	}
	advice, err := PromptForAdvice()
	if err != nil {
		return models.CoachingAssessment{}, err
	}
	return models.CoachingAssessment{Emotion: emotion, Behaviors: behaviors, Advice: advice}, nil
}

// labelToValue reverses Humanize.
func labelToValue(label string) string {
	return strings.ReplaceAll(strings.ToLower(label), " ", "_")
}
