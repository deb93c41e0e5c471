package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"alfredoptarigan/resume-analyzer/internal/models"
)

type AnalyzerService interface {
	AnalyzeResume(ctx context.Context, filename string) (*models.AnalysisResult, error)
}

type analyzerService struct {
	storage StorageService
	gemini  GeminiService
	mode    models.AnalysisMode
	timeout time.Duration
}

func NewAnalyzerService(
	storage StorageService,
	gemini GeminiService,
	mode string,
	timeout time.Duration,
) AnalyzerService {
	analysisMode := models.AnalysisMode(mode)
	if analysisMode != models.ModeText {
		analysisMode = models.ModeStructured
	}

	return &analyzerService{
		storage: storage,
		gemini:  gemini,
		mode:    analysisMode,
		timeout: timeout,
	}
}

// AnalyzeResume implements AnalyzerService. It reads a stored resume and
// produces the critique for the configured strategy. The file check happens
// before anything else so a vanished file never costs a model call.
func (a *analyzerService) AnalyzeResume(ctx context.Context, filename string) (*models.AnalysisResult, error) {
	filePath := a.storage.GetFilePath(filename)

	if !a.storage.FileExists(filename) {
		return nil, models.NewNotFoundError(fmt.Sprintf("Resume file not found: %s", filename))
	}

	pdfBytes, err := os.ReadFile(filePath)
	if err != nil {
		return nil, models.NewStorageError(fmt.Sprintf("failed to read resume file %s", filename), err)
	}

	log.Printf("🤖 Analyzing resume %s (%d bytes, mode=%s)\n", filename, len(pdfBytes), a.mode)

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	if a.mode == models.ModeText {
		return a.analyzeText(ctx, pdfBytes)
	}

	return a.analyzeStructured(ctx, pdfBytes)
}

func (a *analyzerService) analyzeStructured(ctx context.Context, pdfBytes []byte) (*models.AnalysisResult, error) {
	raw, err := a.gemini.GenerateAnalysis(ctx, pdfBytes)
	if err != nil {
		return nil, err
	}

	// A malformed structured response fails the whole operation. No partial
	// or degraded result is synthesized from it.
	if err := ValidateAnalysisJSON(raw); err != nil {
		return nil, err
	}

	var analysis models.ResumeAnalysis
	if err := json.Unmarshal(raw, &analysis); err != nil {
		return nil, models.NewSchemaError("failed to decode analysis response", err)
	}

	return &models.AnalysisResult{
		Mode:       models.ModeStructured,
		Structured: &analysis,
	}, nil
}

func (a *analyzerService) analyzeText(ctx context.Context, pdfBytes []byte) (*models.AnalysisResult, error) {
	textAnalysis, err := a.gemini.GenerateAnalysisText(ctx, pdfBytes)
	if err != nil {
		return nil, err
	}

	return &models.AnalysisResult{
		Mode:       models.ModeText,
		Text:       textAnalysis,
		Normalized: NormalizeAnalysisText(textAnalysis.Text),
	}, nil
}
