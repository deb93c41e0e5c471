package models

import (
	"time"

	"github.com/google/uuid"
)

type IndexStatus string

const (
	IndexPending  IndexStatus = "pending"
	IndexComplete IndexStatus = "indexed"
	IndexFailed   IndexStatus = "failed"
)

// Document records an uploaded resume. The uploads area is append-only:
// stored files are never overwritten or deleted by this service.
type Document struct {
	ID               uuid.UUID   `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Filename         string      `gorm:"type:text;uniqueIndex" json:"filename"`
	OriginalFileName string      `gorm:"type:text" json:"original_filename"`
	MimeType         string      `gorm:"type:text" json:"mime_type"`
	ByteSize         int64       `gorm:"not null" json:"byte_size"`
	FilePath         string      `gorm:"type:text" json:"file_path"`
	IndexStatus      IndexStatus `gorm:"not null;default:'pending'" json:"index_status"`
	CreatedAt        time.Time   `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt        time.Time   `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (d *Document) TableName() string {
	return "documents"
}
