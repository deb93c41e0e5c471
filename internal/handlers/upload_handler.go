package handlers

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/repositories"
	"alfredoptarigan/resume-analyzer/internal/services"
)

type UploadHandler struct {
	docRepo        repositories.DocumentRepository
	storageService services.StorageService
	analyzer       services.AnalyzerService
	worker         services.Worker
	maxFileSize    int64
}

func NewUploadHandler(
	docRepo repositories.DocumentRepository,
	storageService services.StorageService,
	analyzer services.AnalyzerService,
	worker services.Worker,
	maxFileSize int64,
) *UploadHandler {
	return &UploadHandler{
		docRepo:        docRepo,
		storageService: storageService,
		analyzer:       analyzer,
		worker:         worker,
		maxFileSize:    maxFileSize,
	}
}

// HandleUpload handles POST /upload: validate the multipart upload, persist
// the file, run the AI analysis, and answer with the critique. Steps are
// strictly sequential within the request; nothing is shared across requests.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, models.NewValidationError("No file uploaded"))
	}

	if file.Size > h.maxFileSize {
		return errorResponse(c, fiber.StatusBadRequest, models.NewValidationError(
			fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		))
	}

	filename, filePath, err := h.storageService.SaveResume(file)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, err)
	}

	log.Printf("📄 Resume saved: %s (%d bytes)\n", filename, file.Size)

	analysis, err := h.analyzer.AnalyzeResume(c.Context(), filename)
	if err != nil {
		log.Printf("❌ Analysis failed for %s: %v\n", filename, err)
		return errorResponse(c, fiber.StatusBadRequest, err)
	}

	// The document record feeds the similarity index and is best-effort: the
	// analysis response never depends on it. It is created only after a
	// successful analysis, so the index poller never picks up a resume whose
	// analysis failed.
	doc := &models.Document{
		ID:               uuid.New(),
		Filename:         filename,
		OriginalFileName: file.Filename,
		MimeType:         file.Header.Get("Content-Type"),
		ByteSize:         file.Size,
		FilePath:         filePath,
		IndexStatus:      models.IndexPending,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
	if err := h.docRepo.Create(doc); err != nil {
		log.Printf("⚠️  Failed to record document %s: %v\n", filename, err)
	} else {
		h.worker.EnqueueJob(doc.ID)
	}

	return c.Status(fiber.StatusOK).JSON(models.UploadResponse{
		Filename: filename,
		FileSize: file.Size,
		Success:  true,
		Analysis: analysis,
	})
}
