package services

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-analyzer/internal/models"
)

func makeFileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="resume"; filename="%s"`, filename))
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}

	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	return form.File["resume"][0]
}

func TestSaveResume_AcceptsPDFMimeType(t *testing.T) {
	storage := NewStorageService(t.TempDir())
	content := []byte("%PDF-1.4 fake resume bytes")

	file := makeFileHeader(t, "resume.pdf", "application/pdf", content)

	filename, filePath, err := storage.SaveResume(file)
	require.NoError(t, err)
	assert.NotEmpty(t, filename)

	// Stored bytes must be recoverable unmodified.
	saved, err := os.ReadFile(filePath)
	require.NoError(t, err)
	assert.Equal(t, content, saved)
}

func TestSaveResume_AcceptsExtensionDespiteWrongMimeType(t *testing.T) {
	// A text file renamed to .pdf with MIME text/plain is deliberately
	// accepted: client-declared MIME types are unreliable, so either check
	// passing admits the file.
	storage := NewStorageService(t.TempDir())
	file := makeFileHeader(t, "resume.pdf", "text/plain", []byte("plain text"))

	_, _, err := storage.SaveResume(file)
	assert.NoError(t, err)
}

func TestSaveResume_AcceptsAlternatePDFMimeTypes(t *testing.T) {
	storage := NewStorageService(t.TempDir())

	for _, mimeType := range []string{"application/x-pdf", "application/acrobat", "text/x-pdf"} {
		t.Run(mimeType, func(t *testing.T) {
			// No .pdf extension, so only the MIME check can admit it.
			file := makeFileHeader(t, "resume", mimeType, []byte("content"))
			_, _, err := storage.SaveResume(file)
			assert.NoError(t, err)
		})
	}
}

func TestSaveResume_RejectsNonPDF(t *testing.T) {
	storage := NewStorageService(t.TempDir())
	file := makeFileHeader(t, "resume.txt", "text/plain", []byte("not a pdf"))

	_, _, err := storage.SaveResume(file)
	require.Error(t, err)
	assert.Equal(t, models.ErrTypeValidation, models.ErrorType(err))
	assert.Contains(t, err.Error(), "text/plain")
}

func TestSaveResume_RejectsEmptyMimeTypeAsUnknown(t *testing.T) {
	storage := NewStorageService(t.TempDir())
	file := makeFileHeader(t, "resume.docx", "", []byte("not a pdf"))

	_, _, err := storage.SaveResume(file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown")
}

func TestSaveResume_GeneratesUniqueFilenames(t *testing.T) {
	storage := NewStorageService(t.TempDir())

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		file := makeFileHeader(t, "resume.pdf", "application/pdf", []byte("bytes"))
		filename, _, err := storage.SaveResume(file)
		require.NoError(t, err)
		assert.False(t, seen[filename], "filename %s generated twice", filename)
		seen[filename] = true
	}
}

func TestFileExists(t *testing.T) {
	storage := NewStorageService(t.TempDir())

	file := makeFileHeader(t, "resume.pdf", "application/pdf", []byte("bytes"))
	filename, _, err := storage.SaveResume(file)
	require.NoError(t, err)

	assert.True(t, storage.FileExists(filename))
	assert.False(t, storage.FileExists("missing.pdf"))
}

func TestEnsureUploadDir_Idempotent(t *testing.T) {
	dir := t.TempDir() + "/uploads"
	storage := NewStorageService(dir)

	require.NoError(t, storage.EnsureUploadDir())
	require.NoError(t, storage.EnsureUploadDir())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
