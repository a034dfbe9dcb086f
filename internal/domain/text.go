package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize trims surrounding whitespace and applies full Unicode case folding.
// It is the single normalization point for titles, priorities and categories.
func Normalize(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// TitleCase upper-cases the first letter of each word for display.
func TitleCase(s string) string {
	return cases.Title(language.Und).String(s)
}
