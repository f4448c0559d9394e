package util

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// AllowedCategories 与 AllowedDifficulties 是题目词汇表，
// 匹配时两侧都经过 NormalizeText。
var (
	AllowedCategories = []string{
		"tecnologia",
		"historia",
		"ciencia",
		"general",
		"math",
		"science",
		"history",
		"geografia",
		"arte",
	}

	AllowedDifficulties = []string{
		"facil",
		"medio",
		"dificil",
		"easy",
		"medium",
		"hard",
	}
)

var stripMarks = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// NormalizeText lowercases s and strips diacritics, so that
// "Ciéncia" and "ciencia" compare equal.
func NormalizeText(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

func normalizedSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[NormalizeText(v)] = true
	}
	return set
}

var (
	categorySet   = normalizedSet(AllowedCategories)
	difficultySet = normalizedSet(AllowedDifficulties)
)

// IsAllowedCategory reports whether s normalizes to a known category.
func IsAllowedCategory(s string) bool {
	return categorySet[NormalizeText(s)]
}

// IsAllowedDifficulty reports whether s normalizes to a known difficulty.
func IsAllowedDifficulty(s string) bool {
	return difficultySet[NormalizeText(s)]
}
