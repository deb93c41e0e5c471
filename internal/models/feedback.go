package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type Feedback struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	Email     string    `gorm:"type:text;not null" json:"email"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comment   string    `gorm:"type:text;not null" json:"comment"`
	CreatedAt time.Time `gorm:"type:timestamp;default:now()" json:"createdAt"`
}

func (Feedback) TableName() string {
	return "feedbacks"
}

// Rating accepts both JSON numbers and numeric strings, since clients send
// the star-widget value either way.
type Rating int

func (r *Rating) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*r = 0
		return nil
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("rating must be a number, got %q", s)
	}

	*r = Rating(int(value))
	return nil
}

type CreateFeedbackRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Rating  Rating `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required"`
}

// HasMissingFields reports whether any of the four required fields is absent.
func (r *CreateFeedbackRequest) HasMissingFields() bool {
	return r.Name == "" || r.Email == "" || r.Rating == 0 || r.Comment == ""
}

// Validate validates the request and returns field-level messages.
func (r *CreateFeedbackRequest) Validate() []string {
	validate := validator.New()

	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	var messages []string
	for _, fieldErr := range validationErrors {
		field := strings.ToLower(fieldErr.Field())
		switch fieldErr.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required", field))
		case "email":
			messages = append(messages, fmt.Sprintf("%s must be a valid email address", field))
		case "min", "max":
			messages = append(messages, fmt.Sprintf("%s must be between 1 and 5", field))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid", field))
		}
	}

	return messages
}

// ToFeedback builds the persisted entry with a server-assigned timestamp.
func (r *CreateFeedbackRequest) ToFeedback() *Feedback {
	return &Feedback{
		ID:        uuid.New(),
		Name:      r.Name,
		Email:     r.Email,
		Rating:    int(r.Rating),
		Comment:   r.Comment,
		CreatedAt: time.Now(),
	}
}
