// Package grading holds the presentation rules for scores and names used by
// reports and the demo seed.
package grading

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrScoreOutOfScale is returned for scores outside 0..100.
var ErrScoreOutOfScale = errors.New("score must be between 0 and 100")

// LetterGrade maps a 0..100 score to A-F.
func LetterGrade(score int) (string, error) {
	if score < 0 || score > 100 {
		return "", fmt.Errorf("%w, got %d", ErrScoreOutOfScale, score)
	}

	switch {
	case score >= 90:
		return "A", nil
	case score >= 80:
		return "B", nil
	case score >= 70:
		return "C", nil
	case score >= 60:
		return "D", nil
	default:
		return "F", nil
	}
}

// FormatFullName trims and title-cases both parts: ("  ivan", "PETROV ") => "Ivan Petrov".
func FormatFullName(first, last string) string {
	title := cases.Title(language.Und)
	return title.String(strings.TrimSpace(first)) + " " + title.String(strings.TrimSpace(last))
}
