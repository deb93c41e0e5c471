package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/repositories"
)

// Worker drains the indexing queue in the background. A poller re-enqueues
// documents still marked pending, so an index job lost to a crash is picked
// up again on the next tick.
type Worker interface {
	Start(ctx context.Context)
	Stop()
	EnqueueJob(docID uuid.UUID)
}

type worker struct {
	docRepo      repositories.DocumentRepository
	indexer      IndexerService
	jobQueue     chan uuid.UUID
	concurrency  int
	pollInterval time.Duration
	wg           sync.WaitGroup
	stopChan     chan struct{}
}

func NewWorker(
	docRepo repositories.DocumentRepository,
	indexer IndexerService,
	concurrency int,
	pollInterval time.Duration,
) Worker {
	return &worker{
		docRepo:      docRepo,
		indexer:      indexer,
		jobQueue:     make(chan uuid.UUID, 100),
		concurrency:  concurrency,
		pollInterval: pollInterval,
		stopChan:     make(chan struct{}),
	}
}

// Start implements Worker.
func (w *worker) Start(ctx context.Context) {
	log.Printf("🚀 Starting indexer with %d concurrent workers\n", w.concurrency)

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.processJobs(ctx, i+1)
	}

	w.wg.Add(1)
	go w.pollPendingDocuments(ctx)
}

// Stop implements Worker.
func (w *worker) Stop() {
	log.Println("🛑 Stopping indexer...")
	close(w.stopChan)
	w.wg.Wait()
	log.Println("✅ Indexer stopped")
}

// EnqueueJob implements Worker. A full queue drops the job instead of
// blocking the caller; the dropped document stays pending and the poller
// picks it up on a later tick.
func (w *worker) EnqueueJob(docID uuid.UUID) {
	select {
	case w.jobQueue <- docID:
		log.Printf("📥 Index job %s enqueued\n", docID)
	default:
		log.Printf("⚠️  Index queue full, dropping job %s\n", docID)
	}
}

func (w *worker) processJobs(ctx context.Context, workerID int) {
	defer w.wg.Done()

	for {
		select {
		case <-w.stopChan:
			log.Printf("👷 Indexer #%d stopped\n", workerID)
			return
		case docID := <-w.jobQueue:
			if err := w.indexer.IndexResume(ctx, docID); err != nil {
				log.Printf("❌ Indexer #%d failed to index %s: %v\n", workerID, docID, err)
			}
		}
	}
}

func (w *worker) pollPendingDocuments(ctx context.Context) {
	defer w.wg.Done()
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopChan:
			return
		case <-ticker.C:
			pending, err := w.docRepo.FindByIndexStatus(models.IndexPending, 10)
			if err != nil {
				log.Printf("⚠️  Failed to fetch pending documents: %v\n", err)
				continue
			}

			for _, doc := range pending {
				w.EnqueueJob(doc.ID)
			}
		}
	}
}
