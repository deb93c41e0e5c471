package models

// UploadResponse is the success payload of POST /upload.
type UploadResponse struct {
	Filename string          `json:"filename"`
	FileSize int64           `json:"fileSize"`
	Success  bool            `json:"success"`
	Analysis *AnalysisResult `json:"analysis"`
}

// ErrorDetails accompanies every error payload so failures can be traced.
type ErrorDetails struct {
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
}

// ErrorResponse is the failure payload of POST /upload and the similarity
// endpoint.
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details ErrorDetails `json:"details"`
}

// SimilarResume is one entry of the similarity listing.
type SimilarResume struct {
	Filename string  `json:"filename"`
	Score    float32 `json:"score"`
	Excerpt  string  `json:"excerpt,omitempty"`
}
