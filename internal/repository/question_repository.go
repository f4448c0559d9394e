package repository

import (
	"quiz_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) Create(question *model.Question) error {
	return r.DB.Create(question).Error
}

// CreateBatch persists all questions in one transaction: either every
// row is written or none is.
func (r *QuestionRepository) CreateBatch(questions []*model.Question) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		for _, q := range questions {
			if err := tx.Create(q).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindByID returns the question regardless of its active flag.
func (r *QuestionRepository) FindByID(id uint) (*model.Question, error) {
	var q model.Question
	err := r.DB.First(&q, "id = ?", id).Error
	return &q, err
}

// ListActive returns active questions, optionally filtered by exact
// category / difficulty match. Filters are not normalized.
func (r *QuestionRepository) ListActive(category, difficulty string, skip, limit int) ([]model.Question, error) {
	query := r.DB.Where("is_active = ?", true)

	if category != "" {
		query = query.Where("category = ?", category)
	}
	if difficulty != "" {
		query = query.Where("difficulty = ?", difficulty)
	}

	var questions []model.Question
	err := query.Offset(skip).Limit(limit).Find(&questions).Error
	return questions, err
}

// AllActive returns the full active pool, used for random sampling.
func (r *QuestionRepository) AllActive() ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Where("is_active = ?", true).Find(&questions).Error
	return questions, err
}

// All returns every question, active or not. Statistics read across the
// whole table because deactivated questions keep their answer history.
func (r *QuestionRepository) All() ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) CountActive() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Question{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}

func (r *QuestionRepository) Update(question *model.Question) error {
	return r.DB.Save(question).Error
}

// Deactivate flips the active flag; the row is never removed.
func (r *QuestionRepository) Deactivate(question *model.Question) error {
	return r.DB.Model(question).Update("is_active", false).Error
}
