package services

import (
	"fmt"
	"io"
	"math/rand/v2"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"alfredoptarigan/resume-analyzer/internal/models"
)

// Client-declared MIME types accepted as PDF. Browsers are inconsistent
// here, so a .pdf extension alone also admits the file.
var acceptedPDFTypes = map[string]bool{
	"application/pdf":     true,
	"application/x-pdf":   true,
	"application/acrobat": true,
	"application/vnd.pdf": true,
	"text/pdf":            true,
	"text/x-pdf":          true,
}

type StorageService interface {
	SaveResume(file *multipart.FileHeader) (string, string, error)
	GetFilePath(filename string) string
	FileExists(filename string) bool
	EnsureUploadDir() error
}

type storageService struct {
	uploadPath string
}

func NewStorageService(uploadPath string) StorageService {
	return &storageService{
		uploadPath: uploadPath,
	}
}

func (s *storageService) EnsureUploadDir() error {
	if err := os.MkdirAll(s.uploadPath, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	return nil
}

// SaveResume validates the upload and persists its bytes unmodified under a
// collision-resistant name. It returns the stored name and full path.
func (s *storageService) SaveResume(file *multipart.FileHeader) (string, string, error) {
	mimeType := file.Header.Get("Content-Type")

	validMimeType := acceptedPDFTypes[mimeType]
	validExtension := strings.HasSuffix(strings.ToLower(file.Filename), ".pdf")

	if !validMimeType && !validExtension {
		received := mimeType
		if received == "" {
			received = "unknown"
		}
		return "", "", models.NewValidationError(
			fmt.Sprintf("Invalid file format. Only PDF files are allowed. Received file type: %s", received),
		)
	}

	filename := fmt.Sprintf("%d-%d-%s", time.Now().UnixMilli(), rand.IntN(1_000_000_000), file.Filename)
	filePath := filepath.Join(s.uploadPath, filename)

	src, err := file.Open()
	if err != nil {
		return "", "", models.NewStorageError("failed to open uploaded file", err)
	}
	defer src.Close()

	dst, err := os.Create(filePath)
	if err != nil {
		return "", "", models.NewStorageError("failed to create destination file", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", "", models.NewStorageError("failed to save file", err)
	}

	return filename, filePath, nil
}

func (s *storageService) GetFilePath(filename string) string {
	return filepath.Join(s.uploadPath, filename)
}

func (s *storageService) FileExists(filename string) bool {
	_, err := os.Stat(s.GetFilePath(filename))
	return err == nil
}
