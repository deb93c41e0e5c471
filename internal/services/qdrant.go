package services

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"

	"alfredoptarigan/resume-analyzer/internal/models"
)

type QdrantService interface {
	InitCollection() error
	UpsertResumeChunk(ctx context.Context, filename string, chunkIndex int, text string, embedding []float32) error
	SearchSimilarResumes(ctx context.Context, queryEmbedding []float32, excludeFilename string, limit int) ([]models.SimilarResume, error)
	DeleteResume(ctx context.Context, filename string) error
}

type qdrantService struct {
	client         *qdrant.Client
	collectionName string
	vectorSize     uint64
}

func NewQdrantService(urlStr, apiKey, collectionName string) (QdrantService, error) {
	// Parse URL to extract host, port, and TLS usage
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsed.Hostname()
	useTLS := parsed.Scheme == "https"

	// For gRPC client, use port 6334 by default (gRPC port)
	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &qdrantService{
		client:         client,
		collectionName: collectionName,
		vectorSize:     768, // text-embedding-004 vector size
	}, nil
}

// InitCollection implements QdrantService.
func (q *qdrantService) InitCollection() error {
	ctx := context.Background()

	exists, err := q.client.CollectionExists(ctx, q.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}

	if exists {
		log.Println("✅ Collection already exists")
		return nil
	}

	err = q.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: q.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     q.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})

	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	log.Printf("✅ Qdrant collection '%s' created successfully\n", q.collectionName)
	return nil
}

// UpsertResumeChunk implements QdrantService.
func (q *qdrantService) UpsertResumeChunk(ctx context.Context, filename string, chunkIndex int, text string, embedding []float32) error {
	excerpt := text
	if len(excerpt) > 300 {
		excerpt = excerpt[:300]
	}

	point := &qdrant.PointStruct{
		Id:      chunkPointID(),
		Vectors: qdrant.NewVectors(embedding...),
		Payload: qdrant.NewValueMap(map[string]interface{}{
			"filename": filename,
			"chunk":    chunkIndex,
			"excerpt":  excerpt,
		}),
	}

	_, err := q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.collectionName,
		Points:         []*qdrant.PointStruct{point},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert point: %w", err)
	}

	return nil
}

// chunkPointID assigns a fresh point ID carrying the full UUID, so two chunk
// upserts can never collide on a truncated numeric ID.
func chunkPointID() *qdrant.PointId {
	return qdrant.NewID(uuid.NewString())
}

// SearchSimilarResumes implements QdrantService. Results are deduplicated
// per resume, keeping the best-scoring chunk of each.
func (q *qdrantService) SearchSimilarResumes(ctx context.Context, queryEmbedding []float32, excludeFilename string, limit int) ([]models.SimilarResume, error) {
	var filter *qdrant.Filter
	if excludeFilename != "" {
		filter = &qdrant.Filter{
			MustNot: []*qdrant.Condition{
				qdrant.NewMatch("filename", excludeFilename),
			},
		}
	}

	// Over-fetch because several chunks of the same resume may match.
	fetchLimit := uint64(limit * 4)

	searchResult, err := q.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: q.collectionName,
		Query:          qdrant.NewQuery(queryEmbedding...),
		Filter:         filter,
		Limit:          qdrant.PtrOf(fetchLimit),
		WithPayload:    qdrant.NewWithPayload(true),
	})

	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	seen := make(map[string]bool)
	var results []models.SimilarResume

	for _, point := range searchResult {
		payload := point.Payload

		match := models.SimilarResume{Score: point.Score}

		if filename, ok := payload["filename"]; ok {
			if val, ok := filename.GetKind().(*qdrant.Value_StringValue); ok {
				match.Filename = val.StringValue
			}
		}

		if excerpt, ok := payload["excerpt"]; ok {
			if val, ok := excerpt.GetKind().(*qdrant.Value_StringValue); ok {
				match.Excerpt = val.StringValue
			}
		}

		if match.Filename == "" || seen[match.Filename] {
			continue
		}

		seen[match.Filename] = true
		results = append(results, match)

		if len(results) >= limit {
			break
		}
	}

	return results, nil
}

// DeleteResume implements QdrantService.
func (q *qdrantService) DeleteResume(ctx context.Context, filename string) error {
	filter := &qdrant.Filter{
		Must: []*qdrant.Condition{
			qdrant.NewMatch("filename", filename),
		},
	}

	_, err := q.client.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: q.collectionName,
		Points: &qdrant.PointsSelector{
			PointsSelectorOneOf: &qdrant.PointsSelector_Filter{
				Filter: filter,
			},
		},
	})

	if err != nil {
		return fmt.Errorf("failed to delete resume points: %w", err)
	}

	return nil
}
