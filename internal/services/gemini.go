package services

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"alfredoptarigan/resume-analyzer/internal/models"
)

type GeminiService interface {
	GenerateAnalysis(ctx context.Context, pdfBytes []byte) ([]byte, error)
	GenerateAnalysisText(ctx context.Context, pdfBytes []byte) (*models.TextAnalysis, error)
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

type geminiService struct {
	client     *genai.Client
	modelName  string
	embedModel string
	prompts    *PromptBuilder
}

func NewGeminiService(apiKey, modelName, embedModel string) (GeminiService, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:     client,
		modelName:  modelName,
		embedModel: embedModel,
		prompts:    NewPromptBuilder(),
	}, nil
}

// safetySettings is the fixed, non-negotiable content policy sent with every
// analysis request: hate speech blocked at low sensitivity, dangerous
// content at medium.
func (g *geminiService) safetySettings() []*genai.SafetySetting {
	return []*genai.SafetySetting{
		{
			Category:  genai.HarmCategoryHateSpeech,
			Threshold: genai.HarmBlockThresholdBlockLowAndAbove,
		},
		{
			Category:  genai.HarmCategoryDangerousContent,
			Threshold: genai.HarmBlockThresholdBlockMediumAndAbove,
		},
	}
}

func (g *geminiService) resumeContents(instruction string, pdfBytes []byte) []*genai.Content {
	return []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(instruction),
			genai.NewPartFromBytes(pdfBytes, "application/pdf"),
		}, genai.RoleUser),
	}
}

// GenerateAnalysis implements GeminiService. It requests structured output
// conforming to the analysis schema and returns the raw JSON response. The
// call is never retried: the model is non-deterministic and each call is
// billable, so a retry risks duplicate charges for a divergent result.
func (g *geminiService) GenerateAnalysis(ctx context.Context, pdfBytes []byte) ([]byte, error) {
	config := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](0.2),
		MaxOutputTokens:  8192,
		SafetySettings:   g.safetySettings(),
		ResponseMIMEType: "application/json",
		ResponseSchema:   resumeAnalysisSchema(),
	}

	contents := g.resumeContents(g.prompts.BuildStructuredAnalysisPrompt(), pdfBytes)

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, contents, config)
	if err != nil {
		return nil, models.NewAIError("failed to generate analysis", err)
	}

	if resp == nil {
		return nil, models.NewAIError("no response generated (nil response)", nil)
	}

	text := resp.Text()
	if text == "" {
		return nil, models.NewAIError("no content in analysis response", nil)
	}

	return []byte(text), nil
}

// GenerateAnalysisText implements GeminiService. It requests prose output
// and captures the model-reported safety classification per harm category.
func (g *geminiService) GenerateAnalysisText(ctx context.Context, pdfBytes []byte) (*models.TextAnalysis, error) {
	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0.2),
		MaxOutputTokens: 8192,
		SafetySettings:  g.safetySettings(),
	}

	contents := g.resumeContents(g.prompts.BuildTextAnalysisPrompt(), pdfBytes)

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, contents, config)
	if err != nil {
		return nil, models.NewAIError("failed to generate analysis text", err)
	}

	if resp == nil {
		return nil, models.NewAIError("no response generated (nil response)", nil)
	}

	text := resp.Text()
	if text == "" {
		return nil, models.NewAIError("no text content in response", nil)
	}

	analysis := &models.TextAnalysis{
		Text:          text,
		SafetyRatings: []models.SafetyRating{},
	}

	if len(resp.Candidates) > 0 {
		for _, rating := range resp.Candidates[0].SafetyRatings {
			if rating == nil {
				continue
			}
			analysis.SafetyRatings = append(analysis.SafetyRatings, models.SafetyRating{
				Category:         string(rating.Category),
				Probability:      string(rating.Probability),
				ProbabilityScore: rating.ProbabilityScore,
				Severity:         string(rating.Severity),
				SeverityScore:    rating.SeverityScore,
				Blocked:          rating.Blocked,
			})
		}
	}

	return analysis, nil
}

// GenerateEmbedding implements GeminiService.
func (g *geminiService) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	// Truncate text if too long (max ~10000 tokens for embedding)
	if len(text) > 40000 {
		text = text[:40000]
	}

	result, err := g.client.Models.EmbedContent(ctx, g.embedModel, genai.Text(text), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	if result == nil || len(result.Embeddings) == 0 {
		return nil, fmt.Errorf("empty embedding result")
	}

	return result.Embeddings[0].Values, nil
}
