package main

import (
	"context"
	"log"

	"alfredoptarigan/resume-analyzer/internal/config"
	"alfredoptarigan/resume-analyzer/internal/repositories"
	"alfredoptarigan/resume-analyzer/internal/services"
)

// Re-runs similarity indexing for documents still marked pending or whose
// previous attempt failed, e.g. after Qdrant downtime left uploads unindexed.
func main() {
	log.Println("🚀 Starting resume reindex...")

	cfg := config.Load()
	database := config.NewDatabase(cfg)
	docRepo := repositories.NewDocumentRepository(database)

	geminiService, err := services.NewGeminiService(
		cfg.Gemini.APIKey,
		cfg.Gemini.Model,
		cfg.Gemini.EmbedModel,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini: %v", err)
	}

	qdrantService, err := services.NewQdrantService(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
	}

	if err := qdrantService.InitCollection(); err != nil {
		log.Fatalf("❌ Failed to initialize collection: %v", err)
	}

	pdfParser := services.NewPDFParserService()
	indexer := services.NewIndexerService(docRepo, geminiService, qdrantService, pdfParser)

	indexed, failed := indexer.IndexOutstanding(context.Background(), 50)
	log.Printf("✅ Reindex complete: %d indexed, %d failed\n", indexed, failed)
}
