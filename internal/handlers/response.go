package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-analyzer/internal/models"
)

// errorResponse writes the structured error payload shared by the upload and
// similarity endpoints: a human-readable message plus a type tag and
// timestamp to aid debugging.
func errorResponse(c *fiber.Ctx, status int, err error) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Error: err.Error(),
		Details: models.ErrorDetails{
			Type:      models.ErrorType(err),
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	})
}
