package repository

import (
	"quiz_backend/internal/model"

	"gorm.io/gorm"
)

type AnswerRepository struct {
	DB *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) *AnswerRepository {
	return &AnswerRepository{DB: db}
}

func (r *AnswerRepository) Create(answer *model.Answer) error {
	return r.DB.Create(answer).Error
}

func (r *AnswerRepository) FindByID(id uint) (*model.Answer, error) {
	var a model.Answer
	err := r.DB.First(&a, "id = ?", id).Error
	return &a, err
}

// ListBySession returns a session's answers in insertion order.
func (r *AnswerRepository) ListBySession(sessionID uint) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.DB.Where("quiz_session_id = ?", sessionID).Order("id asc").Find(&answers).Error
	return answers, err
}

// FindBySessionAndQuestion looks up an existing answer for the
// (session, question) pair; gorm.ErrRecordNotFound means none exists.
func (r *AnswerRepository) FindBySessionAndQuestion(sessionID, questionID uint) (*model.Answer, error) {
	var a model.Answer
	err := r.DB.Where("quiz_session_id = ? AND question_id = ?", sessionID, questionID).First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// All returns every recorded answer; the statistics engine aggregates
// over a full snapshot.
func (r *AnswerRepository) All() ([]model.Answer, error) {
	var answers []model.Answer
	err := r.DB.Order("id asc").Find(&answers).Error
	return answers, err
}

func (r *AnswerRepository) Update(answer *model.Answer) error {
	return r.DB.Save(answer).Error
}
