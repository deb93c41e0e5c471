package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-analyzer/internal/models"
)

type fakeGemini struct {
	analysisJSON  []byte
	analysisErr   error
	textAnalysis  *models.TextAnalysis
	textErr       error
	analysisCalls int
	textCalls     int
}

func (f *fakeGemini) GenerateAnalysis(ctx context.Context, pdfBytes []byte) ([]byte, error) {
	f.analysisCalls++
	return f.analysisJSON, f.analysisErr
}

func (f *fakeGemini) GenerateAnalysisText(ctx context.Context, pdfBytes []byte) (*models.TextAnalysis, error) {
	f.textCalls++
	if f.textErr != nil {
		return nil, f.textErr
	}
	return f.textAnalysis, nil
}

func (f *fakeGemini) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	return []float32{0.1, 0.2}, nil
}

func writeResume(t *testing.T, dir, filename string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, filename), []byte("%PDF-1.4 resume"), 0644))
}

func TestAnalyzeResume_StructuredSuccess(t *testing.T) {
	dir := t.TempDir()
	writeResume(t, dir, "resume.pdf")

	gemini := &fakeGemini{analysisJSON: validAnalysisJSON(t, nil)}
	analyzer := NewAnalyzerService(NewStorageService(dir), gemini, "structured", time.Minute)

	result, err := analyzer.AnalyzeResume(context.Background(), "resume.pdf")
	require.NoError(t, err)

	assert.Equal(t, models.ModeStructured, result.Mode)
	require.NotNil(t, result.Structured)
	assert.Nil(t, result.Text)
	assert.Nil(t, result.Normalized)
	assert.Equal(t, 82, result.Structured.Overall.Score)
	assert.Equal(t, 1, gemini.analysisCalls)
}

func TestAnalyzeResume_MissingFileFailsFast(t *testing.T) {
	gemini := &fakeGemini{analysisJSON: validAnalysisJSON(t, nil)}
	analyzer := NewAnalyzerService(NewStorageService(t.TempDir()), gemini, "structured", time.Minute)

	_, err := analyzer.AnalyzeResume(context.Background(), "vanished.pdf")
	require.Error(t, err)

	assert.Equal(t, models.ErrTypeNotFound, models.ErrorType(err))
	// A file that cannot be located must never cost a model call.
	assert.Equal(t, 0, gemini.analysisCalls)
	assert.Equal(t, 0, gemini.textCalls)
}

func TestAnalyzeResume_MalformedStructuredResponseIsHardError(t *testing.T) {
	dir := t.TempDir()
	writeResume(t, dir, "resume.pdf")

	raw := validAnalysisJSON(t, func(m map[string]interface{}) {
		m["overall"].(map[string]interface{})["score"] = 101
	})
	gemini := &fakeGemini{analysisJSON: raw}
	analyzer := NewAnalyzerService(NewStorageService(dir), gemini, "structured", time.Minute)

	result, err := analyzer.AnalyzeResume(context.Background(), "resume.pdf")
	require.Error(t, err)
	// No partial or degraded result is synthesized.
	assert.Nil(t, result)
	assert.Equal(t, models.ErrTypeSchema, models.ErrorType(err))
}

func TestAnalyzeResume_AIFailurePropagatesWithoutRetry(t *testing.T) {
	dir := t.TempDir()
	writeResume(t, dir, "resume.pdf")

	gemini := &fakeGemini{analysisErr: models.NewAIError("rate limited", nil)}
	analyzer := NewAnalyzerService(NewStorageService(dir), gemini, "structured", time.Minute)

	_, err := analyzer.AnalyzeResume(context.Background(), "resume.pdf")
	require.Error(t, err)

	assert.Equal(t, models.ErrTypeAI, models.ErrorType(err))
	assert.Equal(t, 1, gemini.analysisCalls)
}

func TestAnalyzeResume_TextMode(t *testing.T) {
	dir := t.TempDir()
	writeResume(t, dir, "resume.pdf")

	gemini := &fakeGemini{
		textAnalysis: &models.TextAnalysis{
			Text: sampleAnalysisText,
			SafetyRatings: []models.SafetyRating{
				{Category: "HARM_CATEGORY_HATE_SPEECH", Probability: "NEGLIGIBLE"},
			},
		},
	}
	analyzer := NewAnalyzerService(NewStorageService(dir), gemini, "text", time.Minute)

	result, err := analyzer.AnalyzeResume(context.Background(), "resume.pdf")
	require.NoError(t, err)

	assert.Equal(t, models.ModeText, result.Mode)
	assert.Nil(t, result.Structured)
	require.NotNil(t, result.Text)
	require.NotNil(t, result.Normalized)
	assert.Equal(t, 85, result.Normalized.Score)
	assert.Len(t, result.Normalized.Strengths, 3)
	assert.Equal(t, 1, gemini.textCalls)
	assert.Equal(t, 0, gemini.analysisCalls)
}

func TestNewAnalyzerService_UnknownModeFallsBackToStructured(t *testing.T) {
	dir := t.TempDir()
	writeResume(t, dir, "resume.pdf")

	gemini := &fakeGemini{analysisJSON: validAnalysisJSON(t, nil)}
	analyzer := NewAnalyzerService(NewStorageService(dir), gemini, "yaml", time.Minute)

	result, err := analyzer.AnalyzeResume(context.Background(), "resume.pdf")
	require.NoError(t, err)
	assert.Equal(t, models.ModeStructured, result.Mode)
}
