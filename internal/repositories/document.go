package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/resume-analyzer/internal/config"
	"alfredoptarigan/resume-analyzer/internal/models"
)

type DocumentRepository interface {
	Create(document *models.Document) error
	FindByID(id uuid.UUID) (*models.Document, error)
	FindByFilename(filename string) (*models.Document, error)
	FindByIndexStatus(status models.IndexStatus, limit int) ([]models.Document, error)
	UpdateIndexStatus(id uuid.UUID, status models.IndexStatus) error
}

type documentRepository struct {
	database *config.Database
}

func NewDocumentRepository(database *config.Database) DocumentRepository {
	return &documentRepository{database: database}
}

// Create implements DocumentRepository.
func (d *documentRepository) Create(document *models.Document) error {
	db, err := d.database.Get()
	if err != nil {
		return err
	}

	if err := db.Create(document).Error; err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}

	return nil
}

// FindByID implements DocumentRepository.
func (d *documentRepository) FindByID(id uuid.UUID) (*models.Document, error) {
	db, err := d.database.Get()
	if err != nil {
		return nil, err
	}

	var doc models.Document
	if err := db.Where("id = ?", id).First(&doc).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("document not found: %w", err)
		}

		return nil, fmt.Errorf("failed to find document: %w", err)
	}

	return &doc, nil
}

// FindByFilename implements DocumentRepository.
func (d *documentRepository) FindByFilename(filename string) (*models.Document, error) {
	db, err := d.database.Get()
	if err != nil {
		return nil, err
	}

	var doc models.Document
	if err := db.Where("filename = ?", filename).First(&doc).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("document not found: %w", err)
		}

		return nil, fmt.Errorf("failed to find document: %w", err)
	}

	return &doc, nil
}

// FindByIndexStatus implements DocumentRepository.
func (d *documentRepository) FindByIndexStatus(status models.IndexStatus, limit int) ([]models.Document, error) {
	db, err := d.database.Get()
	if err != nil {
		return nil, err
	}

	var docs []models.Document
	err = db.
		Where("index_status = ?", status).
		Order("created_at ASC").
		Limit(limit).
		Find(&docs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find %s documents: %w", status, err)
	}

	return docs, nil
}

// UpdateIndexStatus implements DocumentRepository.
func (d *documentRepository) UpdateIndexStatus(id uuid.UUID, status models.IndexStatus) error {
	db, err := d.database.Get()
	if err != nil {
		return err
	}

	result := db.Model(&models.Document{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"index_status": status,
			"updated_at":   time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update index status: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("document not found")
	}

	return nil
}
