package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quiz_backend/internal/model"
	"quiz_backend/internal/service"
	"quiz_backend/internal/util"
)

func intPtr(v int) *int { return &v }

func validQuestionReq() service.QuestionReq {
	return service.QuestionReq{
		Text:          "¿Capital de Francia?",
		Options:       []string{"Madrid", "París", "Roma"},
		CorrectOption: intPtr(1),
		Category:      "geografia",
		Difficulty:    "facil",
	}
}

func TestValidateQuestionPayload(t *testing.T) {
	tests := map[string]struct {
		mutate  func(*service.QuestionReq)
		wantErr error
	}{
		"valid": {
			mutate:  func(r *service.QuestionReq) {},
			wantErr: nil,
		},
		"too few options": {
			mutate:  func(r *service.QuestionReq) { r.Options = []string{"A", "B"} },
			wantErr: util.ErrInvalidOptionCount,
		},
		"too many options": {
			mutate:  func(r *service.QuestionReq) { r.Options = []string{"A", "B", "C", "D", "E", "F"} },
			wantErr: util.ErrInvalidOptionCount,
		},
		"five options allowed": {
			mutate: func(r *service.QuestionReq) {
				r.Options = []string{"A", "B", "C", "D", "E"}
				r.CorrectOption = intPtr(4)
			},
			wantErr: nil,
		},
		"correct option negative": {
			mutate:  func(r *service.QuestionReq) { r.CorrectOption = intPtr(-1) },
			wantErr: util.ErrCorrectOptionRange,
		},
		"correct option past end": {
			mutate:  func(r *service.QuestionReq) { r.CorrectOption = intPtr(3) },
			wantErr: util.ErrCorrectOptionRange,
		},
		"accented category accepted": {
			mutate:  func(r *service.QuestionReq) { r.Category = "Geografía" },
			wantErr: nil,
		},
		"unknown category": {
			mutate:  func(r *service.QuestionReq) { r.Category = "deportes" },
			wantErr: util.ErrInvalidCategory,
		},
		"uppercase difficulty accepted": {
			mutate:  func(r *service.QuestionReq) { r.Difficulty = "FÁCIL" },
			wantErr: nil,
		},
		"unknown difficulty": {
			mutate:  func(r *service.QuestionReq) { r.Difficulty = "extrema" },
			wantErr: util.ErrInvalidDifficulty,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			req := validQuestionReq()
			tt.mutate(&req)

			err := service.ValidateQuestionPayload(req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateQuestionUpdate(t *testing.T) {
	stored := &model.Question{
		Text:          "stored",
		Options:       model.StringList{"A", "B", "C"},
		CorrectOption: 0,
		Category:      "historia",
		Difficulty:    "medio",
	}

	newOptions := []string{"A", "B", "C", "D"}
	badOptions := []string{"A"}

	tests := map[string]struct {
		req     service.QuestionUpdateReq
		wantErr error
	}{
		"empty update": {
			req: service.QuestionUpdateReq{},
		},
		"correct option against stored options": {
			req:     service.QuestionUpdateReq{CorrectOption: intPtr(2)},
			wantErr: nil,
		},
		"correct option out of stored range": {
			req:     service.QuestionUpdateReq{CorrectOption: intPtr(3)},
			wantErr: util.ErrCorrectOptionRange,
		},
		"correct option valid against new options": {
			req:     service.QuestionUpdateReq{Options: &newOptions, CorrectOption: intPtr(3)},
			wantErr: nil,
		},
		"new options too short": {
			req:     service.QuestionUpdateReq{Options: &badOptions},
			wantErr: util.ErrInvalidOptionCount,
		},
		"invalid category": {
			req:     service.QuestionUpdateReq{Category: strPtr("desconocida")},
			wantErr: util.ErrInvalidCategory,
		},
		"invalid difficulty": {
			req:     service.QuestionUpdateReq{Difficulty: strPtr("injugable")},
			wantErr: util.ErrInvalidDifficulty,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := service.ValidateQuestionUpdate(stored, tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func strPtr(s string) *string { return &s }

func TestSampleQuestions(t *testing.T) {
	pool := []model.Question{
		{Text: "q1"}, {Text: "q2"}, {Text: "q3"},
	}

	t.Run("limit below pool size", func(t *testing.T) {
		got := service.SampleQuestions(pool, 2)
		require.Len(t, got, 2)
	})

	t.Run("limit above pool size is capped", func(t *testing.T) {
		got := service.SampleQuestions(pool, 10)
		require.Len(t, got, len(pool))
	})

	t.Run("no duplicates in a draw", func(t *testing.T) {
		got := service.SampleQuestions(pool, 3)
		seen := map[string]bool{}
		for _, q := range got {
			assert.False(t, seen[q.Text], "question drawn twice: %s", q.Text)
			seen[q.Text] = true
		}
	})

	t.Run("empty pool", func(t *testing.T) {
		got := service.SampleQuestions(nil, 5)
		require.Empty(t, got)
	})

	t.Run("zero limit", func(t *testing.T) {
		got := service.SampleQuestions(pool, 0)
		require.Empty(t, got)
	})
}

func TestBulkItemError(t *testing.T) {
	err := &service.BulkItemError{Index: 2, Err: util.ErrInvalidOptionCount}

	assert.EqualError(t, err, "question 2: options must contain between 3 and 5 entries")
	assert.ErrorIs(t, err, util.ErrInvalidOptionCount)
}
