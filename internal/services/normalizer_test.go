package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleAnalysisText = `Overall impression:
A well-structured resume with strong technical depth.

Key strengths:
- Solid backend experience with Go and Postgres
- Clear quantified achievements
- Consistent formatting throughout

Areas for improvement:
- Add a short professional summary
- Include more role-specific keywords

ATS compatibility score: 85`

func TestNormalizeAnalysisText_FullDocument(t *testing.T) {
	result := NormalizeAnalysisText(sampleAnalysisText)

	assert.Equal(t, 85, result.Score)
	assert.Equal(t, "A well-structured resume with strong technical depth.", result.Summary)

	require.Len(t, result.Strengths, 3)
	require.Len(t, result.Improvements, 2)

	// Bullet markers stripped, source order preserved.
	assert.Equal(t, "Solid backend experience with Go and Postgres", result.Strengths[0])
	assert.Equal(t, "Consistent formatting throughout", result.Strengths[2])
	assert.Equal(t, "Add a short professional summary", result.Improvements[0])
	assert.Equal(t, "Include more role-specific keywords", result.Improvements[1])
}

func TestNormalizeAnalysisText_DefaultScore(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"no score line", "Overall impression:\nFine resume.\n"},
		{"score line without integer", "ATS compatibility score: unknown"},
		{"empty input", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeAnalysisText(tt.text)
			assert.Equal(t, 70, result.Score)
		})
	}
}

func TestNormalizeAnalysisText_NoCuePhrases(t *testing.T) {
	result := NormalizeAnalysisText("The model decided to freestyle.\n- a stray bullet\nNothing matches.")

	assert.Equal(t, 70, result.Score)
	assert.Empty(t, result.Summary)
	assert.Empty(t, result.Strengths)
	assert.Empty(t, result.Improvements)
}

func TestNormalizeAnalysisText_FirstSummaryLineWins(t *testing.T) {
	text := `Overall impression:
First summary line.
Second summary line.`

	result := NormalizeAnalysisText(text)
	assert.Equal(t, "First summary line.", result.Summary)
}

func TestNormalizeAnalysisText_SummarySkipsHeadingLikeLines(t *testing.T) {
	text := `Overall impression:
Note: this line has a colon and is skipped.
The actual summary.`

	result := NormalizeAnalysisText(text)
	assert.Equal(t, "The actual summary.", result.Summary)
}

func TestNormalizeAnalysisText_BulletsOutsideListSectionsIgnored(t *testing.T) {
	text := `Overall impression:
- this bullet is under summary and must be ignored

Key strengths:
• Unicode bullets work too

ATS compatibility score: 60`

	result := NormalizeAnalysisText(text)

	assert.Equal(t, 60, result.Score)
	require.Len(t, result.Strengths, 1)
	assert.Equal(t, "Unicode bullets work too", result.Strengths[0])
	assert.Empty(t, result.Improvements)
}

func TestNormalizeAnalysisText_Idempotent(t *testing.T) {
	first := NormalizeAnalysisText(sampleAnalysisText)
	second := NormalizeAnalysisText(sampleAnalysisText)

	assert.Equal(t, first, second)
}

func TestNormalizeAnalysisText_ScoreTakesFirstInteger(t *testing.T) {
	result := NormalizeAnalysisText("ATS compatibility score: 72 out of 100")
	assert.Equal(t, 72, result.Score)
}
