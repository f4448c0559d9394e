package model

// Answer records one response to one question within one session.
// The composite unique index enforces the one-answer-per-(session,
// question) invariant against concurrent submissions; the service-level
// check alone would race.
// swagger:model Answer
type Answer struct {
	BaseModel
	QuizSessionID       uint `gorm:"index;uniqueIndex:idx_session_question;type:bigint unsigned;not null" json:"quizSessionId"`
	QuestionID          uint `gorm:"index;uniqueIndex:idx_session_question;type:bigint unsigned;not null" json:"questionId"`
	SelectedOption      int  `gorm:"not null" json:"selectedOption"`
	IsCorrect           bool `gorm:"not null" json:"isCorrect"`
	ResponseTimeSeconds *int `json:"responseTimeSeconds,omitempty"`
}

func (Answer) TableName() string {
	return "answers"
}
