package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/repositories"
	"alfredoptarigan/resume-analyzer/internal/services"
)

type SimilarHandler struct {
	docRepo   repositories.DocumentRepository
	pdfParser services.PDFParserService
	gemini    services.GeminiService
	qdrant    services.QdrantService
}

func NewSimilarHandler(
	docRepo repositories.DocumentRepository,
	pdfParser services.PDFParserService,
	gemini services.GeminiService,
	qdrant services.QdrantService,
) *SimilarHandler {
	return &SimilarHandler{
		docRepo:   docRepo,
		pdfParser: pdfParser,
		gemini:    gemini,
		qdrant:    qdrant,
	}
}

// HandleGetSimilar handles GET /resumes/:filename/similar. It embeds the
// stored resume's text and returns the closest previously indexed resumes,
// excluding the resume itself.
func (h *SimilarHandler) HandleGetSimilar(c *fiber.Ctx) error {
	filename := c.Params("filename")

	limit := 5
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 && v <= 20 {
		limit = v
	}

	doc, err := h.docRepo.FindByFilename(filename)
	if err != nil {
		return errorResponse(c, fiber.StatusNotFound, models.NewNotFoundError("Resume not found"))
	}

	text, err := h.pdfParser.ExtractText(doc.FilePath)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, models.NewStorageError("failed to read resume text", err))
	}

	embedding, err := h.gemini.GenerateEmbedding(c.Context(), services.CleanText(text))
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, models.NewAIError("failed to embed resume", err))
	}

	matches, err := h.qdrant.SearchSimilarResumes(c.Context(), embedding, doc.Filename, limit)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, err)
	}

	if matches == nil {
		matches = []models.SimilarResume{}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    matches,
	})
}
