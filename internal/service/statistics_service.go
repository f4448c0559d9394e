package service

import (
	"sort"

	"quiz_backend/internal/model"
	"quiz_backend/internal/repository"
)

// StatisticsService derives read-only metrics from stored questions,
// sessions and answers. All computation happens in pure functions over
// in-memory snapshots so the engine can be tested without a database.
type StatisticsService struct {
	QuestionRepo *repository.QuestionRepository
	SessionRepo  *repository.QuizSessionRepository
	AnswerRepo   *repository.AnswerRepository
	SessionSvc   *QuizSessionService
}

func NewStatisticsService(questionRepo *repository.QuestionRepository, sessionRepo *repository.QuizSessionRepository, answerRepo *repository.AnswerRepository, sessionSvc *QuizSessionService) *StatisticsService {
	return &StatisticsService{
		QuestionRepo: questionRepo,
		SessionRepo:  sessionRepo,
		AnswerRepo:   answerRepo,
		SessionSvc:   sessionSvc,
	}
}

type GlobalStats struct {
	TotalActiveQuestions  int64              `json:"totalActiveQuestions"`
	CompletedSessions     int                `json:"completedSessions"`
	AverageCorrectAnswers float64            `json:"averageCorrectAnswers"`
	HardestCategories     map[string]float64 `json:"hardestCategories"`
}

type SessionAnswerDetail struct {
	QuestionText   string   `json:"questionText"`
	Options        []string `json:"options"`
	CorrectOption  int      `json:"correctOption"`
	SelectedOption int      `json:"selectedOption"`
	IsCorrect      bool     `json:"isCorrect"`
}

type SessionStats struct {
	FinalScore                 int                   `json:"finalScore"`
	AccuracyPercent            float64               `json:"accuracyPercent"`
	AverageResponseTimeSeconds float64               `json:"averageResponseTimeSeconds"`
	Answers                    []SessionAnswerDetail `json:"answers"`
}

type QuestionDifficulty struct {
	QuestionText   string  `json:"questionText"`
	TimesAnswered  int     `json:"timesAnswered"`
	IncorrectCount int     `json:"incorrectCount"`
	ErrorRate      float64 `json:"errorRate"`
}

func (s *StatisticsService) Global() (*GlobalStats, error) {
	activeCount, err := s.QuestionRepo.CountActive()
	if err != nil {
		return nil, err
	}

	completed, err := s.SessionRepo.ListCompleted()
	if err != nil {
		return nil, err
	}

	questions, err := s.QuestionRepo.All()
	if err != nil {
		return nil, err
	}

	answers, err := s.AnswerRepo.All()
	if err != nil {
		return nil, err
	}

	stats := ComputeGlobalStats(questions, completed, answers)
	stats.TotalActiveQuestions = activeCount
	return stats, nil
}

// ComputeGlobalStats averages correct-answer counts across completed
// sessions and, per category, the error rates of its answered
// questions. Categories whose questions were never answered are
// omitted.
func ComputeGlobalStats(questions []model.Question, completed []model.QuizSession, answers []model.Answer) *GlobalStats {
	avgCorrect := 0.0
	if len(completed) > 0 {
		sum := 0
		for _, session := range completed {
			sum += session.QuestionsCorrect
		}
		avgCorrect = float64(sum) / float64(len(completed))
	}

	byQuestion := groupAnswersByQuestion(answers)

	type categoryRates struct {
		sum   float64
		count int
	}
	rates := make(map[string]*categoryRates)

	for _, q := range questions {
		recorded := byQuestion[q.ID]
		if len(recorded) == 0 {
			continue
		}
		incorrect := 0
		for _, a := range recorded {
			if !a.IsCorrect {
				incorrect++
			}
		}
		r, ok := rates[q.Category]
		if !ok {
			r = &categoryRates{}
			rates[q.Category] = r
		}
		r.sum += float64(incorrect) / float64(len(recorded))
		r.count++
	}

	hardest := make(map[string]float64, len(rates))
	for category, r := range rates {
		hardest[category] = r.sum / float64(r.count)
	}

	return &GlobalStats{
		CompletedSessions:     len(completed),
		AverageCorrectAnswers: avgCorrect,
		HardestCategories:     hardest,
	}
}

func (s *StatisticsService) Session(id uint) (*SessionStats, error) {
	session, err := s.SessionSvc.Get(id)
	if err != nil {
		return nil, err
	}

	answers, err := s.AnswerRepo.ListBySession(session.ID)
	if err != nil {
		return nil, err
	}

	questions, err := s.QuestionRepo.All()
	if err != nil {
		return nil, err
	}

	return ComputeSessionStats(session, answers, questions), nil
}

// ComputeSessionStats builds the per-session summary. Answers without a
// recorded response time are excluded from the mean entirely, not
// counted as zero. The detail list preserves answer insertion order.
func ComputeSessionStats(session *model.QuizSession, answers []model.Answer, questions []model.Question) *SessionStats {
	byID := make(map[uint]model.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	accuracy := 0.0
	if session.QuestionsAnswered > 0 {
		accuracy = float64(session.QuestionsCorrect) / float64(session.QuestionsAnswered) * 100
	}

	timeSum := 0
	timeCount := 0
	details := make([]SessionAnswerDetail, 0, len(answers))

	for _, a := range answers {
		if a.ResponseTimeSeconds != nil {
			timeSum += *a.ResponseTimeSeconds
			timeCount++
		}

		q := byID[a.QuestionID]
		details = append(details, SessionAnswerDetail{
			QuestionText:   q.Text,
			Options:        q.Options,
			CorrectOption:  q.CorrectOption,
			SelectedOption: a.SelectedOption,
			IsCorrect:      a.IsCorrect,
		})
	}

	avgTime := 0.0
	if timeCount > 0 {
		avgTime = float64(timeSum) / float64(timeCount)
	}

	return &SessionStats{
		FinalScore:                 session.TotalScore,
		AccuracyPercent:            accuracy,
		AverageResponseTimeSeconds: avgTime,
		Answers:                    details,
	}
}

func (s *StatisticsService) DifficultQuestions() ([]QuestionDifficulty, error) {
	questions, err := s.QuestionRepo.All()
	if err != nil {
		return nil, err
	}

	answers, err := s.AnswerRepo.All()
	if err != nil {
		return nil, err
	}

	return RankDifficultQuestions(questions, answers), nil
}

// RankDifficultQuestions computes the error rate of every answered
// question and sorts descending. The sort is stable; ties keep the
// snapshot order.
func RankDifficultQuestions(questions []model.Question, answers []model.Answer) []QuestionDifficulty {
	byQuestion := groupAnswersByQuestion(answers)

	ranking := make([]QuestionDifficulty, 0, len(questions))
	for _, q := range questions {
		recorded := byQuestion[q.ID]
		if len(recorded) == 0 {
			continue
		}
		incorrect := 0
		for _, a := range recorded {
			if !a.IsCorrect {
				incorrect++
			}
		}
		ranking = append(ranking, QuestionDifficulty{
			QuestionText:   q.Text,
			TimesAnswered:  len(recorded),
			IncorrectCount: incorrect,
			ErrorRate:      float64(incorrect) / float64(len(recorded)),
		})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].ErrorRate > ranking[j].ErrorRate
	})
	return ranking
}

func (s *StatisticsService) Categories() (map[string]*float64, error) {
	questions, err := s.QuestionRepo.All()
	if err != nil {
		return nil, err
	}

	answers, err := s.AnswerRepo.All()
	if err != nil {
		return nil, err
	}

	return ComputeCategoryAccuracy(questions, answers), nil
}

// ComputeCategoryAccuracy reports, for every category present among all
// questions, the fraction of correct answers to that category's
// questions. A category with no recorded answers is reported with a
// null accuracy, not omitted. This deliberately differs from the
// global-statistics treatment.
func ComputeCategoryAccuracy(questions []model.Question, answers []model.Answer) map[string]*float64 {
	byQuestion := groupAnswersByQuestion(answers)

	type tally struct {
		correct int
		total   int
	}
	tallies := make(map[string]*tally)

	for _, q := range questions {
		t, ok := tallies[q.Category]
		if !ok {
			t = &tally{}
			tallies[q.Category] = t
		}
		for _, a := range byQuestion[q.ID] {
			t.total++
			if a.IsCorrect {
				t.correct++
			}
		}
	}

	result := make(map[string]*float64, len(tallies))
	for category, t := range tallies {
		if t.total == 0 {
			result[category] = nil
			continue
		}
		accuracy := float64(t.correct) / float64(t.total)
		result[category] = &accuracy
	}
	return result
}

func groupAnswersByQuestion(answers []model.Answer) map[uint][]model.Answer {
	grouped := make(map[uint][]model.Answer)
	for _, a := range answers {
		grouped[a.QuestionID] = append(grouped[a.QuestionID], a)
	}
	return grouped
}
