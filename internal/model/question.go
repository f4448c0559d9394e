package model

// Question represents one quiz item. Deactivated questions stay in the
// table and remain referenced by historical answers.
// swagger:model Question
type Question struct {
	BaseModel
	Text          string     `gorm:"type:text;not null" json:"text"`
	Options       StringList `gorm:"type:json;not null" json:"options"` // 3-5 entries
	CorrectOption int        `gorm:"not null" json:"correctOption"`
	Explanation   *string    `gorm:"type:text" json:"explanation,omitempty"`
	Category      string     `gorm:"size:50;not null;index" json:"category"`
	Difficulty    string     `gorm:"size:20;not null;index" json:"difficulty"`
	IsActive      bool       `gorm:"default:true" json:"isActive"`
}

func (Question) TableName() string {
	return "questions"
}
