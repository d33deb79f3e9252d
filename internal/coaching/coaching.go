// Package coaching scores a user's read of a generated scenario against the
// emotion and behaviors that actually drove it.
package coaching

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	apperrors "tradecoach/internal/errors"
	"tradecoach/internal/models"
)

// Score weights. A perfect assessment scores 100.
const (
	EmotionPoints       = 60
	BehaviorPoints      = 30
	AdvicePoints        = 10
	ExtraBehaviorCost   = 5
	MinAdviceCharacters = 20
)

// Validate checks the assessment uses known emotions and behaviors.
func Validate(a models.CoachingAssessment) error {
	if !a.Emotion.Valid() {
		return apperrors.NewValidationError("emotion", a.Emotion, "unknown emotion")
	}
	for _, b := range a.Behaviors {
		if !b.Valid() {
			return apperrors.NewValidationError("behaviors", b, "unknown behavior")
		}
	}
	return nil
}

// Evaluate scores an assessment against the run's emotional state.
func Evaluate(state models.TraderState, a models.CoachingAssessment) (models.CoachingResult, error) {
	if err := Validate(a); err != nil {
		return models.CoachingResult{}, err
	}

	actual := state.CurrentEmotionalState
	res := models.CoachingResult{
		ActualEmotion:    actual.Primary,
		EmotionCorrect:   a.Emotion == actual.Primary,
		MatchedBehaviors: []models.TradingBehavior{},
		MissedBehaviors:  []models.TradingBehavior{},
		ExtraBehaviors:   []models.TradingBehavior{},
	}

	if res.EmotionCorrect {
		res.Score += EmotionPoints
		res.Feedback = append(res.Feedback, fmt.Sprintf("Correct: the trader was driven by %s.", actual.Primary))
	} else {
		res.Feedback = append(res.Feedback, fmt.Sprintf("The dominant emotion was %s, not %s.", actual.Primary, a.Emotion))
	}

	guessed := make(map[models.TradingBehavior]bool, len(a.Behaviors))
	for _, b := range a.Behaviors {
		guessed[b] = true
	}
	expected := make(map[models.TradingBehavior]bool, len(actual.Behaviors))
	for _, b := range actual.Behaviors {
		expected[b] = true
		if guessed[b] {
			res.MatchedBehaviors = append(res.MatchedBehaviors, b)
		} else {
			res.MissedBehaviors = append(res.MissedBehaviors, b)
		}
	}
	for b := range guessed {
		if !expected[b] {
			res.ExtraBehaviors = append(res.ExtraBehaviors, b)
		}
	}
	sortBehaviors(res.ExtraBehaviors)

	if len(actual.Behaviors) > 0 {
		pts := float64(BehaviorPoints*len(res.MatchedBehaviors)) / float64(len(actual.Behaviors))
		pts -= float64(ExtraBehaviorCost * len(res.ExtraBehaviors))
		res.Score += int(math.Max(0, math.Round(pts)))
	}
	res.Feedback = append(res.Feedback, behaviorFeedback(res))

	if adviceLength(a.Advice) >= MinAdviceCharacters {
		res.Score += AdvicePoints
		res.Feedback = append(res.Feedback, "Advice recorded.")
	} else {
		res.Feedback = append(res.Feedback, fmt.Sprintf("Advice needs at least %d characters to count.", MinAdviceCharacters))
	}

	return res, nil
}

// NewSession scores the assessment and wraps it with an id and timestamp.
func NewSession(state models.TraderState, a models.CoachingAssessment, now time.Time) (models.CoachingSession, error) {
	res, err := Evaluate(state, a)
	if err != nil {
		return models.CoachingSession{}, err
	}
	return models.CoachingSession{
		ID:         uuid.NewString(),
		ScenarioID: state.ScenarioID,
		TraderID:   state.TraderID,
		Assessment: a,
		Result:     res,
		Timestamp:  now.UTC(),
	}, nil
}

func behaviorFeedback(res models.CoachingResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Spotted %d of %d behaviors.", len(res.MatchedBehaviors), len(res.MatchedBehaviors)+len(res.MissedBehaviors))
	if len(res.MissedBehaviors) > 0 {
		fmt.Fprintf(&b, " Missed: %s.", joinBehaviors(res.MissedBehaviors))
	}
	if len(res.ExtraBehaviors) > 0 {
		fmt.Fprintf(&b, " Not present: %s.", joinBehaviors(res.ExtraBehaviors))
	}
	return b.String()
}

func joinBehaviors(list []models.TradingBehavior) string {
	parts := make([]string, len(list))
	for i, b := range list {
		parts[i] = strings.ReplaceAll(string(b), "_", " ")
	}
	return strings.Join(parts, ", ")
}

// sortBehaviors orders behaviors by their position in AllBehaviors so output
// is stable regardless of map iteration.
func sortBehaviors(list []models.TradingBehavior) {
	rank := make(map[models.TradingBehavior]int)
	for i, b := range models.AllBehaviors() {
		rank[b] = i
	}
	sort.Slice(list, func(i, j int) bool { return rank[list[i]] < rank[list[j]] })
}

func adviceLength(s string) int {
	n := 0
	for _, r := range s {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}
