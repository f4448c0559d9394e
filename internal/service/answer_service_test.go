package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quiz_backend/internal/service"
	"quiz_backend/internal/util"
)

func TestAnswerServiceCreate(t *testing.T) {
	env := newTestEnv(t)

	question, err := env.questions.Create(validQuestionReq())
	require.NoError(t, err)
	session, err := env.sessions.Create(service.QuizSessionReq{UserName: strPtr("ana")})
	require.NoError(t, err)

	first, err := env.answers.Create(service.AnswerReq{
		QuizSessionID:       session.ID,
		QuestionID:          question.ID,
		SelectedOption:      intPtr(1),
		ResponseTimeSeconds: intPtr(7),
	})
	require.NoError(t, err)
	assert.True(t, first.IsCorrect)

	t.Run("same question answered twice is a conflict", func(t *testing.T) {
		_, err := env.answers.Create(service.AnswerReq{
			QuizSessionID:  session.ID,
			QuestionID:     question.ID,
			SelectedOption: intPtr(0),
		})
		require.ErrorIs(t, err, util.ErrAlreadyAnswered)

		// the stored answer keeps its original selection
		stored, err := env.answers.Get(first.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, stored.SelectedOption)
		assert.True(t, stored.IsCorrect)

		list, err := env.answers.ListBySession(session.ID)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("selection out of range", func(t *testing.T) {
		other, err := env.sessions.Create(service.QuizSessionReq{})
		require.NoError(t, err)

		_, err = env.answers.Create(service.AnswerReq{
			QuizSessionID:  other.ID,
			QuestionID:     question.ID,
			SelectedOption: intPtr(3),
		})
		require.ErrorIs(t, err, util.ErrSelectedOptionRange)
	})

	t.Run("unknown session", func(t *testing.T) {
		_, err := env.answers.Create(service.AnswerReq{
			QuizSessionID:  9999,
			QuestionID:     question.ID,
			SelectedOption: intPtr(0),
		})
		require.ErrorIs(t, err, util.ErrSessionNotFound)
	})
}
