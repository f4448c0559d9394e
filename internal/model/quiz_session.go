package model

import "time"

const (
	SessionInProgress = "in_progress"
	SessionCompleted  = "completed"
	// SessionAbandoned is recognized by the completion guard but no
	// operation currently assigns it.
	SessionAbandoned = "abandoned"
)

// swagger:model QuizSession
type QuizSession struct {
	BaseModel
	UserName          *string    `gorm:"size:100" json:"userName,omitempty"`
	StartedAt         time.Time  `json:"startedAt"`
	EndedAt           *time.Time `json:"endedAt,omitempty"`
	TotalScore        int        `gorm:"default:0" json:"totalScore"`
	QuestionsAnswered int        `gorm:"default:0" json:"questionsAnswered"`
	QuestionsCorrect  int        `gorm:"default:0" json:"questionsCorrect"`
	Status            string     `gorm:"size:20;default:in_progress" json:"status"`
	TotalTimeSeconds  *int       `json:"totalTimeSeconds,omitempty"`
}

func (QuizSession) TableName() string {
	return "quiz_sessions"
}
