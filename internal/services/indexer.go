package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/repositories"
)

const (
	chunkMaxSize = 1000
	chunkOverlap = 150
)

// IndexerService feeds analyzed resumes into the similarity index. It runs
// off the request path: indexing failures are recorded on the document but
// never affect an upload response.
type IndexerService interface {
	IndexResume(ctx context.Context, docID uuid.UUID) error
	IndexOutstanding(ctx context.Context, batchSize int) (indexed, failed int)
}

type indexerService struct {
	docRepo   repositories.DocumentRepository
	gemini    GeminiService
	qdrant    QdrantService
	pdfParser PDFParserService
	chunker   TextChunker
}

func NewIndexerService(
	docRepo repositories.DocumentRepository,
	gemini GeminiService,
	qdrant QdrantService,
	pdfParser PDFParserService,
) IndexerService {
	return &indexerService{
		docRepo:   docRepo,
		gemini:    gemini,
		qdrant:    qdrant,
		pdfParser: pdfParser,
		chunker:   NewTextChunker(),
	}
}

// IndexResume implements IndexerService.
func (s *indexerService) IndexResume(ctx context.Context, docID uuid.UUID) error {
	doc, err := s.docRepo.FindByID(docID)
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}

	if doc.IndexStatus == models.IndexComplete {
		return nil
	}

	log.Printf("🔍 Indexing resume %s\n", doc.Filename)

	text, err := s.pdfParser.ExtractText(doc.FilePath)
	if err != nil {
		s.docRepo.UpdateIndexStatus(docID, models.IndexFailed)
		return fmt.Errorf("failed to extract text from %s: %w", doc.Filename, err)
	}

	chunks := s.chunker.ChunkText(CleanText(text), chunkMaxSize, chunkOverlap)
	if len(chunks) == 0 {
		s.docRepo.UpdateIndexStatus(docID, models.IndexFailed)
		return fmt.Errorf("no indexable text in %s", doc.Filename)
	}

	for i, chunk := range chunks {
		embedding, err := s.gemini.GenerateEmbedding(ctx, chunk)
		if err != nil {
			s.docRepo.UpdateIndexStatus(docID, models.IndexFailed)
			return fmt.Errorf("failed to embed chunk %d of %s: %w", i, doc.Filename, err)
		}

		if err := s.qdrant.UpsertResumeChunk(ctx, doc.Filename, i, chunk, embedding); err != nil {
			s.docRepo.UpdateIndexStatus(docID, models.IndexFailed)
			return fmt.Errorf("failed to upsert chunk %d of %s: %w", i, doc.Filename, err)
		}
	}

	if err := s.docRepo.UpdateIndexStatus(docID, models.IndexComplete); err != nil {
		return fmt.Errorf("failed to mark document indexed: %w", err)
	}

	log.Printf("✅ Indexed resume %s (%d chunks)\n", doc.Filename, len(chunks))
	return nil
}

// IndexOutstanding implements IndexerService. It drains documents that are
// still pending or whose previous indexing attempt failed. Each document is
// attempted at most once per call, so a document whose status cannot be
// updated does not loop forever.
func (s *indexerService) IndexOutstanding(ctx context.Context, batchSize int) (indexed, failed int) {
	attempted := make(map[uuid.UUID]bool)

	for _, status := range []models.IndexStatus{models.IndexFailed, models.IndexPending} {
		for {
			docs, err := s.docRepo.FindByIndexStatus(status, batchSize)
			if err != nil {
				log.Printf("⚠️  Failed to fetch %s documents: %v\n", status, err)
				break
			}

			progressed := false
			for _, doc := range docs {
				if attempted[doc.ID] {
					continue
				}
				attempted[doc.ID] = true
				progressed = true

				if err := s.IndexResume(ctx, doc.ID); err != nil {
					log.Printf("❌ Failed to index %s: %v\n", doc.Filename, err)
					failed++
					continue
				}
				indexed++
			}

			if !progressed {
				break
			}
		}
	}

	return indexed, failed
}
