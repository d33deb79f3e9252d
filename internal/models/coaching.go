package models

import "time"

// CoachingAssessment is the user's read of a generated scenario.
type CoachingAssessment struct {
	Emotion   EmotionType       `json:"emotion"`
	Behaviors []TradingBehavior `json:"behaviors"`
	Advice    string            `json:"advice"`
}

// CoachingResult is the score of an assessment against the ground truth.
type CoachingResult struct {
	Score            int               `json:"score"` // 0-100
	EmotionCorrect   bool              `json:"emotionCorrect"`
	ActualEmotion    EmotionType       `json:"actualEmotion"`
	MatchedBehaviors []TradingBehavior `json:"matchedBehaviors"`
	MissedBehaviors  []TradingBehavior `json:"missedBehaviors"`
	ExtraBehaviors   []TradingBehavior `json:"extraBehaviors"`
	Feedback         []string          `json:"feedback"`
}

// CoachingSession records one scored assessment. It is returned to the
// caller and never stored.
type CoachingSession struct {
	ID         string             `json:"id"`
	ScenarioID string             `json:"scenarioId"`
	TraderID   string             `json:"traderId"`
	Assessment CoachingAssessment `json:"assessment"`
	Result     CoachingResult     `json:"result"`
	Timestamp  time.Time          `json:"timestamp"`
}
