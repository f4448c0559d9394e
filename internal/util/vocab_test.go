package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"quiz_backend/internal/util"
)

func TestNormalizeText(t *testing.T) {
	tests := map[string]struct {
		in   string
		want string
	}{
		"lowercase passthrough": {in: "ciencia", want: "ciencia"},
		"uppercase":             {in: "CIENCIA", want: "ciencia"},
		"accented":              {in: "Ciéncia", want: "ciencia"},
		"multiple diacritics":   {in: "tëcnólogía", want: "tecnologia"},
		"empty":                 {in: "", want: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, util.NormalizeText(tt.in))
		})
	}
}

func TestIsAllowedCategory(t *testing.T) {
	tests := map[string]struct {
		in   string
		want bool
	}{
		"exact member":       {in: "historia", want: true},
		"uppercase member":   {in: "CIENCIA", want: true},
		"accented member":    {in: "ciéncia", want: true},
		"english member":     {in: "science", want: true},
		"unknown":            {in: "deportes", want: false},
		"empty":              {in: "", want: false},
		"member with spaces": {in: " historia ", want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, util.IsAllowedCategory(tt.in))
		})
	}
}

func TestIsAllowedDifficulty(t *testing.T) {
	tests := map[string]struct {
		in   string
		want bool
	}{
		"spanish member":   {in: "facil", want: true},
		"accented member":  {in: "fácil", want: true},
		"uppercase member": {in: "DIFICIL", want: true},
		"english member":   {in: "medium", want: true},
		"unknown":          {in: "imposible", want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, util.IsAllowedDifficulty(tt.in))
		})
	}
}
