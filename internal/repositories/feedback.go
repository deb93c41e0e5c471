package repositories

import (
	"fmt"

	"alfredoptarigan/resume-analyzer/internal/config"
	"alfredoptarigan/resume-analyzer/internal/models"
)

type FeedbackRepository interface {
	Create(feedback *models.Feedback) error
	FindLatest(limit int) ([]models.Feedback, error)
}

type feedbackRepository struct {
	database *config.Database
}

func NewFeedbackRepository(database *config.Database) FeedbackRepository {
	return &feedbackRepository{database: database}
}

// Create implements FeedbackRepository.
func (r *feedbackRepository) Create(feedback *models.Feedback) error {
	db, err := r.database.Get()
	if err != nil {
		return err
	}

	if err := db.Create(feedback).Error; err != nil {
		return fmt.Errorf("failed to create feedback: %w", err)
	}

	return nil
}

// FindLatest implements FeedbackRepository. Entries come back newest-first.
func (r *feedbackRepository) FindLatest(limit int) ([]models.Feedback, error) {
	db, err := r.database.Get()
	if err != nil {
		return nil, err
	}

	var feedbacks []models.Feedback
	if err := db.Order("created_at DESC").Limit(limit).Find(&feedbacks).Error; err != nil {
		return nil, fmt.Errorf("failed to find feedback: %w", err)
	}

	return feedbacks, nil
}
