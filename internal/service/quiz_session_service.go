package service

import (
	"errors"
	"time"

	"quiz_backend/internal/model"
	"quiz_backend/internal/repository"
	"quiz_backend/internal/util"

	"gorm.io/gorm"
)

// PointsPerCorrectAnswer is the score awarded per correct answer at
// session finalization.
const PointsPerCorrectAnswer = 10

type QuizSessionService struct {
	Repo       *repository.QuizSessionRepository
	AnswerRepo *repository.AnswerRepository
}

func NewQuizSessionService(repo *repository.QuizSessionRepository, answerRepo *repository.AnswerRepository) *QuizSessionService {
	return &QuizSessionService{Repo: repo, AnswerRepo: answerRepo}
}

type QuizSessionReq struct {
	UserName *string `json:"userName"`
}

func (s *QuizSessionService) Create(req QuizSessionReq) (*model.QuizSession, error) {
	session := &model.QuizSession{
		UserName:  req.UserName,
		StartedAt: time.Now(),
		Status:    model.SessionInProgress,
	}
	if err := s.Repo.Create(session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *QuizSessionService) List(skip, limit int) ([]model.QuizSession, error) {
	return s.Repo.List(skip, limit)
}

func (s *QuizSessionService) Get(id uint) (*model.QuizSession, error) {
	session, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return session, nil
}

// Complete finalizes the session exactly once. The in_progress →
// completed transition is one-way; any other current status is a
// conflict and nothing is mutated.
func (s *QuizSessionService) Complete(id uint) (*model.QuizSession, error) {
	session, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if session.Status != model.SessionInProgress {
		return nil, util.ErrSessionNotInProgress
	}

	answers, err := s.AnswerRepo.ListBySession(session.ID)
	if err != nil {
		return nil, err
	}

	FinalizeSession(session, answers, time.Now())

	if err := s.Repo.Update(session); err != nil {
		return nil, err
	}
	return session, nil
}

// FinalizeSession computes the aggregate fields of a finished session
// from its answers and stamps the end time.
func FinalizeSession(session *model.QuizSession, answers []model.Answer, now time.Time) {
	correct := 0
	for _, a := range answers {
		if a.IsCorrect {
			correct++
		}
	}

	session.QuestionsAnswered = len(answers)
	session.QuestionsCorrect = correct
	session.TotalScore = correct * PointsPerCorrectAnswer
	session.EndedAt = &now

	if !session.StartedAt.IsZero() {
		elapsed := int(now.Sub(session.StartedAt).Seconds())
		session.TotalTimeSeconds = &elapsed
	}

	session.Status = model.SessionCompleted
}

// Delete hard-deletes the session together with its answers.
func (s *QuizSessionService) Delete(id uint) error {
	session, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.Repo.Delete(session.ID)
}
