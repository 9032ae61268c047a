// view/summary_card.go
package view

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
)

// SummaryCard is a bordered panel with an optional heading
type SummaryCard struct {
	ID          string `json:"id"`
	Heading     string `json:"heading,omitempty"`
	Description string `json:"description"`
}

// TestID identifies the rendered card, e.g. "test suite-summary-container" for "TestSuite"
func (c SummaryCard) TestID() string {
	return LowerCase(c.ID) + "-summary-container"
}

func (c SummaryCard) Render(styles Styles) string {
	lines := make([]string, 0, 2)
	if c.Heading != "" {
		lines = append(lines, styles.Heading.Render(c.Heading))
	}
	lines = append(lines, styles.Body.Render(c.Description))
	return styles.Card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// LowerCase splits s into words and joins them lower-cased with single spaces.
// Word boundaries are separators, lower-to-upper transitions, letter/digit
// transitions and the last capital of an acronym followed by a lower-case letter.
func LowerCase(s string) string {
	s = strings.NewReplacer("'", "", "’", "").Replace(s)
	words := make([]string, 0, 4)
	runes := []rune(s)
	start := -1
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			if start >= 0 {
				words = append(words, string(runes[start:i]))
				start = -1
			}
			continue
		}
		if start >= 0 && isWordBoundary(runes, i) {
			words = append(words, string(runes[start:i]))
			start = i
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		words = append(words, string(runes[start:]))
	}
	return strings.ToLower(strings.Join(words, " "))
}

func isWordBoundary(runes []rune, i int) bool {
	prev, cur := runes[i-1], runes[i]
	switch {
	case unicode.IsDigit(prev) != unicode.IsDigit(cur):
		return true
	case unicode.IsLower(prev) && unicode.IsUpper(cur):
		return true
	case unicode.IsUpper(prev) && unicode.IsUpper(cur) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
		return true
	}
	return false
}
