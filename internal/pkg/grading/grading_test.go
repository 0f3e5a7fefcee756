package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLetterGrade(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, "A"},
		{90, "A"},
		{89, "B"},
		{80, "B"},
		{75, "C"},
		{60, "D"},
		{59, "F"},
		{0, "F"},
	}
	for _, tt := range tests {
		got, err := LetterGrade(tt.score)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "score %d", tt.score)
	}
}

func TestLetterGradeOutOfScale(t *testing.T) {
	for _, score := range []int{-1, 101, 150} {
		_, err := LetterGrade(score)
		assert.ErrorIs(t, err, ErrScoreOutOfScale)
	}
}

func TestFormatFullName(t *testing.T) {
	assert.Equal(t, "Ivan Petrov", FormatFullName("  ivan", "PETROV "))
	assert.Equal(t, "Anna Smith", FormatFullName("anna", "smith"))
}
