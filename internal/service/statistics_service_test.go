package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quiz_backend/internal/model"
	"quiz_backend/internal/service"
)

func question(id uint, text, category string) model.Question {
	return model.Question{
		BaseModel:     model.BaseModel{ID: id},
		Text:          text,
		Options:       model.StringList{"A", "B", "C"},
		CorrectOption: 0,
		Category:      category,
		Difficulty:    "medio",
		IsActive:      true,
	}
}

func answer(questionID uint, correct bool) model.Answer {
	return model.Answer{QuestionID: questionID, IsCorrect: correct}
}

func TestComputeGlobalStats(t *testing.T) {
	t.Run("no completed sessions", func(t *testing.T) {
		stats := service.ComputeGlobalStats(nil, nil, nil)

		assert.Equal(t, 0, stats.CompletedSessions)
		assert.Zero(t, stats.AverageCorrectAnswers)
		assert.Empty(t, stats.HardestCategories)
	})

	t.Run("average correct across completed sessions", func(t *testing.T) {
		completed := []model.QuizSession{
			{QuestionsCorrect: 4},
			{QuestionsCorrect: 2},
		}

		stats := service.ComputeGlobalStats(nil, completed, nil)

		assert.Equal(t, 2, stats.CompletedSessions)
		assert.InDelta(t, 3.0, stats.AverageCorrectAnswers, 1e-9)
	})

	t.Run("unanswered categories are omitted", func(t *testing.T) {
		questions := []model.Question{
			question(1, "q1", "historia"),
			question(2, "q2", "historia"),
			question(3, "q3", "arte"),
		}
		// q1 answered wrong twice and right once; q2 and q3 never answered
		answers := []model.Answer{
			answer(1, false),
			answer(1, false),
			answer(1, true),
		}

		stats := service.ComputeGlobalStats(questions, nil, answers)

		require.Contains(t, stats.HardestCategories, "historia")
		assert.NotContains(t, stats.HardestCategories, "arte")
		// q2 has no answers, so only q1's 2/3 error rate counts
		assert.InDelta(t, 2.0/3.0, stats.HardestCategories["historia"], 1e-9)
	})

	t.Run("per-question rates averaged within category", func(t *testing.T) {
		questions := []model.Question{
			question(1, "q1", "ciencia"),
			question(2, "q2", "ciencia"),
		}
		// q1: 100% error, q2: 0% error → category averages to 50%
		answers := []model.Answer{
			answer(1, false),
			answer(2, true),
			answer(2, true),
			answer(2, true),
		}

		stats := service.ComputeGlobalStats(questions, nil, answers)

		assert.InDelta(t, 0.5, stats.HardestCategories["ciencia"], 1e-9)
	})
}

func TestComputeSessionStats(t *testing.T) {
	questions := []model.Question{
		question(1, "primera", "historia"),
		question(2, "segunda", "ciencia"),
	}

	t.Run("no answers guards division by zero", func(t *testing.T) {
		session := &model.QuizSession{TotalScore: 0}

		stats := service.ComputeSessionStats(session, nil, questions)

		assert.Zero(t, stats.AccuracyPercent)
		assert.Zero(t, stats.AverageResponseTimeSeconds)
		assert.Empty(t, stats.Answers)
	})

	t.Run("null response times excluded from the mean", func(t *testing.T) {
		session := &model.QuizSession{
			TotalScore:        10,
			QuestionsAnswered: 3,
			QuestionsCorrect:  1,
		}
		answers := []model.Answer{
			{QuestionID: 1, SelectedOption: 0, IsCorrect: true, ResponseTimeSeconds: intPtr(4)},
			{QuestionID: 2, SelectedOption: 1, IsCorrect: false, ResponseTimeSeconds: nil},
			{QuestionID: 2, SelectedOption: 2, IsCorrect: false, ResponseTimeSeconds: intPtr(8)},
		}

		stats := service.ComputeSessionStats(session, answers, questions)

		// (4+8)/2, the null is not treated as zero
		assert.InDelta(t, 6.0, stats.AverageResponseTimeSeconds, 1e-9)
		assert.InDelta(t, 100.0/3.0, stats.AccuracyPercent, 1e-9)
		assert.Equal(t, 10, stats.FinalScore)
	})

	t.Run("detail preserves answer order and question data", func(t *testing.T) {
		session := &model.QuizSession{QuestionsAnswered: 2, QuestionsCorrect: 1}
		answers := []model.Answer{
			{QuestionID: 2, SelectedOption: 1, IsCorrect: false},
			{QuestionID: 1, SelectedOption: 0, IsCorrect: true},
		}

		stats := service.ComputeSessionStats(session, answers, questions)

		require.Len(t, stats.Answers, 2)
		assert.Equal(t, "segunda", stats.Answers[0].QuestionText)
		assert.Equal(t, []string{"A", "B", "C"}, stats.Answers[0].Options)
		assert.Equal(t, 0, stats.Answers[0].CorrectOption)
		assert.Equal(t, 1, stats.Answers[0].SelectedOption)
		assert.False(t, stats.Answers[0].IsCorrect)

		assert.Equal(t, "primera", stats.Answers[1].QuestionText)
		assert.True(t, stats.Answers[1].IsCorrect)
	})
}

func TestRankDifficultQuestions(t *testing.T) {
	questions := []model.Question{
		question(1, "easy one", "general"),
		question(2, "hard one", "general"),
		question(3, "never answered", "general"),
	}
	answers := []model.Answer{
		answer(1, true),
		answer(1, false),
		answer(2, false),
		answer(2, false),
		answer(2, true),
	}

	ranking := service.RankDifficultQuestions(questions, answers)

	require.Len(t, ranking, 2, "unanswered questions are excluded")

	assert.Equal(t, "hard one", ranking[0].QuestionText)
	assert.Equal(t, 3, ranking[0].TimesAnswered)
	assert.Equal(t, 2, ranking[0].IncorrectCount)
	assert.InDelta(t, 2.0/3.0, ranking[0].ErrorRate, 1e-9)

	assert.Equal(t, "easy one", ranking[1].QuestionText)
	assert.InDelta(t, 0.5, ranking[1].ErrorRate, 1e-9)
}

func TestRankDifficultQuestionsStableTies(t *testing.T) {
	questions := []model.Question{
		question(1, "first", "general"),
		question(2, "second", "general"),
	}
	answers := []model.Answer{
		answer(1, false),
		answer(2, false),
	}

	ranking := service.RankDifficultQuestions(questions, answers)

	require.Len(t, ranking, 2)
	assert.Equal(t, "first", ranking[0].QuestionText)
	assert.Equal(t, "second", ranking[1].QuestionText)
}

func TestComputeCategoryAccuracy(t *testing.T) {
	questions := []model.Question{
		question(1, "q1", "historia"),
		question(2, "q2", "historia"),
		question(3, "q3", "arte"),
	}
	// historia: q1 answered wrong twice, right once; q2 never answered.
	// arte: no answers at all.
	answers := []model.Answer{
		answer(1, false),
		answer(1, false),
		answer(1, true),
	}

	accuracy := service.ComputeCategoryAccuracy(questions, answers)

	require.Contains(t, accuracy, "historia")
	require.Contains(t, accuracy, "arte")

	require.NotNil(t, accuracy["historia"])
	assert.InDelta(t, 1.0/3.0, *accuracy["historia"], 1e-9)

	// zero-answer category reported explicitly with null accuracy
	assert.Nil(t, accuracy["arte"])
}

func TestComputeCategoryAccuracyIncludesInactiveQuestions(t *testing.T) {
	inactive := question(1, "retired", "ciencia")
	inactive.IsActive = false

	accuracy := service.ComputeCategoryAccuracy(
		[]model.Question{inactive},
		[]model.Answer{answer(1, true)},
	)

	require.NotNil(t, accuracy["ciencia"])
	assert.InDelta(t, 1.0, *accuracy["ciencia"], 1e-9)
}
