package service

import (
	"errors"

	"quiz_backend/internal/model"
	"quiz_backend/internal/repository"
	"quiz_backend/internal/util"

	"gorm.io/gorm"
)

type AnswerService struct {
	Repo         *repository.AnswerRepository
	QuestionRepo *repository.QuestionRepository
	SessionRepo  *repository.QuizSessionRepository
}

func NewAnswerService(repo *repository.AnswerRepository, questionRepo *repository.QuestionRepository, sessionRepo *repository.QuizSessionRepository) *AnswerService {
	return &AnswerService{Repo: repo, QuestionRepo: questionRepo, SessionRepo: sessionRepo}
}

type AnswerReq struct {
	QuizSessionID       uint `json:"quizSessionId" binding:"required"`
	QuestionID          uint `json:"questionId" binding:"required"`
	SelectedOption      *int `json:"selectedOption" binding:"required"`
	ResponseTimeSeconds *int `json:"responseTimeSeconds"`
}

type AnswerUpdateReq struct {
	SelectedOption      *int `json:"selectedOption"`
	ResponseTimeSeconds *int `json:"responseTimeSeconds"`
}

// Create records a response. Correctness is derived here by comparing
// the selected index against the question's stored correct index.
func (s *AnswerService) Create(req AnswerReq) (*model.Answer, error) {
	if _, err := s.SessionRepo.FindByID(req.QuizSessionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSessionNotFound
		}
		return nil, err
	}

	question, err := s.QuestionRepo.FindByID(req.QuestionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}

	// The unique index on (quiz_session_id, question_id) backs this
	// check under concurrent submissions.
	if _, err := s.Repo.FindBySessionAndQuestion(req.QuizSessionID, req.QuestionID); err == nil {
		return nil, util.ErrAlreadyAnswered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if *req.SelectedOption < 0 || *req.SelectedOption >= len(question.Options) {
		return nil, util.ErrSelectedOptionRange
	}

	answer := &model.Answer{
		QuizSessionID:       req.QuizSessionID,
		QuestionID:          req.QuestionID,
		SelectedOption:      *req.SelectedOption,
		IsCorrect:           *req.SelectedOption == question.CorrectOption,
		ResponseTimeSeconds: req.ResponseTimeSeconds,
	}

	if err := s.Repo.Create(answer); err != nil {
		return nil, err
	}
	return answer, nil
}

func (s *AnswerService) ListBySession(sessionID uint) ([]model.Answer, error) {
	return s.Repo.ListBySession(sessionID)
}

func (s *AnswerService) Get(id uint) (*model.Answer, error) {
	answer, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrAnswerNotFound
	}
	if err != nil {
		return nil, err
	}
	return answer, nil
}

// Update corrects an existing answer. The selection is re-validated
// against the question as currently stored and correctness is
// recomputed; the already-answered rule does not apply here.
func (s *AnswerService) Update(id uint, req AnswerUpdateReq) (*model.Answer, error) {
	answer, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	question, err := s.QuestionRepo.FindByID(answer.QuestionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}

	if req.SelectedOption != nil {
		if *req.SelectedOption < 0 || *req.SelectedOption >= len(question.Options) {
			return nil, util.ErrSelectedOptionRange
		}
		answer.SelectedOption = *req.SelectedOption
	}
	answer.IsCorrect = answer.SelectedOption == question.CorrectOption

	if req.ResponseTimeSeconds != nil {
		answer.ResponseTimeSeconds = req.ResponseTimeSeconds
	}

	if err := s.Repo.Update(answer); err != nil {
		return nil, err
	}
	return answer, nil
}
