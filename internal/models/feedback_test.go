package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRating_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Rating
		wantErr bool
	}{
		{"number", `{"rating": 5}`, 5, false},
		{"numeric string", `{"rating": "4"}`, 4, false},
		{"float truncates", `{"rating": 3.7}`, 3, false},
		{"null", `{"rating": null}`, 0, false},
		{"empty string", `{"rating": ""}`, 0, false},
		{"non-numeric string", `{"rating": "five"}`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload struct {
				Rating Rating `json:"rating"`
			}
			err := json.Unmarshal([]byte(tt.input), &payload)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, payload.Rating)
		})
	}
}

func validFeedbackRequest() CreateFeedbackRequest {
	return CreateFeedbackRequest{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Rating:  5,
		Comment: "Very helpful analysis.",
	}
}

func TestCreateFeedbackRequest_Validate(t *testing.T) {
	req := validFeedbackRequest()
	assert.Nil(t, req.Validate())
}

func TestCreateFeedbackRequest_RatingOutOfRange(t *testing.T) {
	for _, rating := range []Rating{6, -1} {
		req := validFeedbackRequest()
		req.Rating = rating

		problems := req.Validate()
		require.NotNil(t, problems, "rating %d must be rejected", rating)
		assert.Contains(t, problems[0], "rating")
	}
}

func TestCreateFeedbackRequest_InvalidEmail(t *testing.T) {
	req := validFeedbackRequest()
	req.Email = "not-an-email"

	problems := req.Validate()
	require.NotNil(t, problems)
	assert.Contains(t, problems[0], "email")
}

func TestCreateFeedbackRequest_HasMissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *CreateFeedbackRequest)
	}{
		{"missing name", func(r *CreateFeedbackRequest) { r.Name = "" }},
		{"missing email", func(r *CreateFeedbackRequest) { r.Email = "" }},
		{"missing rating", func(r *CreateFeedbackRequest) { r.Rating = 0 }},
		{"missing comment", func(r *CreateFeedbackRequest) { r.Comment = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validFeedbackRequest()
			tt.mutate(&req)
			assert.True(t, req.HasMissingFields())
		})
	}

	req := validFeedbackRequest()
	assert.False(t, req.HasMissingFields())
}

func TestCreateFeedbackRequest_ToFeedback(t *testing.T) {
	req := validFeedbackRequest()
	feedback := req.ToFeedback()

	assert.NotEqual(t, feedback.ID.String(), "00000000-0000-0000-0000-000000000000")
	assert.Equal(t, "Ada Lovelace", feedback.Name)
	assert.Equal(t, 5, feedback.Rating)
	assert.False(t, feedback.CreatedAt.IsZero())
}
