package repository

import (
	"quiz_backend/internal/model"

	"gorm.io/gorm"
)

type QuizSessionRepository struct {
	DB *gorm.DB
}

func NewQuizSessionRepository(db *gorm.DB) *QuizSessionRepository {
	return &QuizSessionRepository{DB: db}
}

func (r *QuizSessionRepository) Create(session *model.QuizSession) error {
	return r.DB.Create(session).Error
}

func (r *QuizSessionRepository) FindByID(id uint) (*model.QuizSession, error) {
	var s model.QuizSession
	err := r.DB.First(&s, "id = ?", id).Error
	return &s, err
}

func (r *QuizSessionRepository) List(skip, limit int) ([]model.QuizSession, error) {
	var sessions []model.QuizSession
	err := r.DB.Offset(skip).Limit(limit).Find(&sessions).Error
	return sessions, err
}

func (r *QuizSessionRepository) ListCompleted() ([]model.QuizSession, error) {
	var sessions []model.QuizSession
	err := r.DB.Where("status = ?", model.SessionCompleted).Find(&sessions).Error
	return sessions, err
}

// Update writes the finalized counters, score, end time and status in a
// single statement.
func (r *QuizSessionRepository) Update(session *model.QuizSession) error {
	return r.DB.Save(session).Error
}

// Delete removes the session and its answers in one transaction so no
// orphaned answers survive.
func (r *QuizSessionRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("quiz_session_id = ?", id).Delete(&model.Answer{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&model.QuizSession{}, "id = ?", id).Error
	})
}
