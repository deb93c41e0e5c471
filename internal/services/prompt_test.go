package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildTextAnalysisPrompt_ContainsNormalizerCues(t *testing.T) {
	prompt := NewPromptBuilder().BuildTextAnalysisPrompt()

	// The normalizer keys on these headings verbatim; the prompt must ask
	// for them in exactly that form.
	assert.Contains(t, prompt, cueSummary)
	assert.Contains(t, prompt, cueStrengths)
	assert.Contains(t, prompt, cueImprovements)
	assert.Contains(t, prompt, cueScore)
}

func TestBuildStructuredAnalysisPrompt_EnumeratesFacets(t *testing.T) {
	prompt := NewPromptBuilder().BuildStructuredAnalysisPrompt()

	assert.Contains(t, prompt, "Overall impression")
	assert.Contains(t, prompt, "strengths")
	assert.Contains(t, prompt, "improvement")
	assert.Contains(t, prompt, "ATS compatibility")
	assert.Contains(t, prompt, "skills")
	assert.Contains(t, prompt, "0-100")
}
