package service

import (
	"errors"
	"fmt"
	"math/rand"

	"quiz_backend/internal/model"
	"quiz_backend/internal/repository"
	"quiz_backend/internal/util"

	"gorm.io/gorm"
)

const (
	minOptions = 3
	maxOptions = 5
)

type QuestionService struct {
	Repo *repository.QuestionRepository
}

func NewQuestionService(repo *repository.QuestionRepository) *QuestionService {
	return &QuestionService{Repo: repo}
}

type QuestionReq struct {
	Text          string   `json:"text" binding:"required"`
	Options       []string `json:"options" binding:"required"`
	CorrectOption *int     `json:"correctOption" binding:"required"`
	Explanation   *string  `json:"explanation"`
	Category      string   `json:"category" binding:"required"`
	Difficulty    string   `json:"difficulty" binding:"required"`
}

type QuestionUpdateReq struct {
	Text          *string   `json:"text"`
	Options       *[]string `json:"options"`
	CorrectOption *int      `json:"correctOption"`
	Explanation   *string   `json:"explanation"`
	Category      *string   `json:"category"`
	Difficulty    *string   `json:"difficulty"`
	IsActive      *bool     `json:"isActive"`
}

// BulkItemError marks which item of a bulk payload failed validation.
// Nothing has been persisted when it is returned.
type BulkItemError struct {
	Index int
	Err   error
}

func (e *BulkItemError) Error() string {
	return fmt.Sprintf("question %d: %v", e.Index, e.Err)
}

func (e *BulkItemError) Unwrap() error {
	return e.Err
}

// ValidateQuestionPayload checks option count, correct-option range and
// the category/difficulty vocabularies before anything is persisted.
func ValidateQuestionPayload(req QuestionReq) error {
	if len(req.Options) < minOptions || len(req.Options) > maxOptions {
		return util.ErrInvalidOptionCount
	}
	if req.CorrectOption == nil || *req.CorrectOption < 0 || *req.CorrectOption >= len(req.Options) {
		return util.ErrCorrectOptionRange
	}
	if !util.IsAllowedCategory(req.Category) {
		return util.ErrInvalidCategory
	}
	if !util.IsAllowedDifficulty(req.Difficulty) {
		return util.ErrInvalidDifficulty
	}
	return nil
}

func questionFromReq(req QuestionReq) *model.Question {
	return &model.Question{
		Text:          req.Text,
		Options:       model.StringList(req.Options),
		CorrectOption: *req.CorrectOption,
		Explanation:   req.Explanation,
		Category:      req.Category,
		Difficulty:    req.Difficulty,
		IsActive:      true,
	}
}

func (s *QuestionService) Create(req QuestionReq) (*model.Question, error) {
	if err := ValidateQuestionPayload(req); err != nil {
		return nil, err
	}

	q := questionFromReq(req)
	if err := s.Repo.Create(q); err != nil {
		return nil, err
	}
	return q, nil
}

// CreateBulk validates every payload up front, failing fast with a
// BulkItemError naming the first bad item. Persistence is one
// transaction: a storage failure rolls back the entire batch.
func (s *QuestionService) CreateBulk(reqs []QuestionReq) ([]*model.Question, error) {
	questions := make([]*model.Question, 0, len(reqs))
	for i, req := range reqs {
		if err := ValidateQuestionPayload(req); err != nil {
			return nil, &BulkItemError{Index: i, Err: err}
		}
		questions = append(questions, questionFromReq(req))
	}

	if err := s.Repo.CreateBatch(questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *QuestionService) List(category, difficulty string, skip, limit int) ([]model.Question, error) {
	return s.Repo.ListActive(category, difficulty, skip, limit)
}

// Random draws up to limit active questions without replacement. A limit
// above the active pool size is capped silently.
func (s *QuestionService) Random(limit int) ([]model.Question, error) {
	pool, err := s.Repo.AllActive()
	if err != nil {
		return nil, err
	}
	return SampleQuestions(pool, limit), nil
}

// SampleQuestions picks limit entries at random without replacement.
func SampleQuestions(pool []model.Question, limit int) []model.Question {
	if limit > len(pool) {
		limit = len(pool)
	}
	if limit <= 0 {
		return []model.Question{}
	}

	shuffled := make([]model.Question, len(pool))
	copy(shuffled, pool)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:limit]
}

func (s *QuestionService) Get(id uint) (*model.Question, error) {
	q, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuestionNotFound
	}
	if err != nil {
		return nil, err
	}
	return q, nil
}

// Update applies a partial payload. Validation runs only on fields that
// are present; a new correctOption is checked against the new options
// when both are supplied, otherwise against the stored ones.
func (s *QuestionService) Update(id uint, req QuestionUpdateReq) (*model.Question, error) {
	q, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if err := ValidateQuestionUpdate(q, req); err != nil {
		return nil, err
	}

	if req.Text != nil {
		q.Text = *req.Text
	}
	if req.Options != nil {
		q.Options = model.StringList(*req.Options)
	}
	if req.CorrectOption != nil {
		q.CorrectOption = *req.CorrectOption
	}
	if req.Explanation != nil {
		q.Explanation = req.Explanation
	}
	if req.Category != nil {
		q.Category = *req.Category
	}
	if req.Difficulty != nil {
		q.Difficulty = *req.Difficulty
	}
	if req.IsActive != nil {
		q.IsActive = *req.IsActive
	}

	if err := s.Repo.Update(q); err != nil {
		return nil, err
	}
	return q, nil
}

// ValidateQuestionUpdate checks the fields present in a partial payload
// against the stored question.
func ValidateQuestionUpdate(q *model.Question, req QuestionUpdateReq) error {
	if req.Options != nil {
		if len(*req.Options) < minOptions || len(*req.Options) > maxOptions {
			return util.ErrInvalidOptionCount
		}
	}
	if req.CorrectOption != nil {
		optionCount := len(q.Options)
		if req.Options != nil {
			optionCount = len(*req.Options)
		}
		if *req.CorrectOption < 0 || *req.CorrectOption >= optionCount {
			return util.ErrCorrectOptionRange
		}
	}
	if req.Category != nil && !util.IsAllowedCategory(*req.Category) {
		return util.ErrInvalidCategory
	}
	if req.Difficulty != nil && !util.IsAllowedDifficulty(*req.Difficulty) {
		return util.ErrInvalidDifficulty
	}
	return nil
}

// Deactivate soft-deletes the question; repeating it is a no-op.
func (s *QuestionService) Deactivate(id uint) (*model.Question, error) {
	q, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if err := s.Repo.Deactivate(q); err != nil {
		return nil, err
	}
	q.IsActive = false
	return q, nil
}
