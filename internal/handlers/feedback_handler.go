package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/repositories"
)

// feedbackListLimit caps GET /feedback at the six newest entries.
const feedbackListLimit = 6

type FeedbackHandler struct {
	feedbackRepo repositories.FeedbackRepository
}

func NewFeedbackHandler(feedbackRepo repositories.FeedbackRepository) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackRepo: feedbackRepo,
	}
}

// HandleList handles GET /feedback.
func (h *FeedbackHandler) HandleList(c *fiber.Ctx) error {
	feedbacks, err := h.feedbackRepo.FindLatest(feedbackListLimit)
	if err != nil {
		log.Printf("❌ Failed to fetch feedback: %v\n", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to fetch feedback",
		})
	}

	if feedbacks == nil {
		feedbacks = []models.Feedback{}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    feedbacks,
	})
}

// HandleCreate handles POST /feedback.
func (h *FeedbackHandler) HandleCreate(c *fiber.Ctx) error {
	var req models.CreateFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request payload",
		})
	}

	if req.HasMissingFields() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Missing required fields",
		})
	}

	if problems := req.Validate(); problems != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Validation error",
			"errors":  problems,
		})
	}

	feedback := req.ToFeedback()
	if err := h.feedbackRepo.Create(feedback); err != nil {
		log.Printf("❌ Failed to create feedback: %v\n", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to submit feedback",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    feedback,
	})
}
