package domain

import (
	"strings"
)

// CleanText trims surrounding whitespace and compresses inner runs of
// whitespace into a single space. Case is preserved.
func CleanText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// NormalizeCategory lowercases and cleans a category, falling back to
// DefaultCategory when empty.
func NormalizeCategory(category string) string {
	c := strings.ToLower(CleanText(category))
	if c == "" {
		return DefaultCategory
	}
	return c
}
