package dto

import (
	"time"

	"talentboard/internal/models"
)

// SendMessageRequest is the payload of the send-message action.
// FromCompanyID is optional; when present it must match the session company.
type SendMessageRequest struct {
	Content       string `json:"content" validate:"required"`
	PostID        string `json:"postId" validate:"required"`
	ToStudentID   string `json:"toStudentId" validate:"required"`
	FromCompanyID string `json:"fromCompanyId,omitempty"`
}

// CompanySummary is the embedded company block on message reads.
type CompanySummary struct {
	ID    string  `json:"id"`
	Name  string  `json:"name,omitempty"`
	Email string  `json:"email"`
	Image *string `json:"image,omitempty"`
}

type MessageResponse struct {
	ID            string          `json:"id"`
	Content       string          `json:"content"`
	FromCompanyID string          `json:"fromCompanyId"`
	ToStudentID   string          `json:"toStudentId"`
	PostID        string          `json:"postId"`
	CreatedAt     time.Time       `json:"createdAt"`
	Viewed        bool            `json:"viewed"`
	Company       *CompanySummary `json:"company,omitempty"`
}

// SendMessageResponse mirrors the action boundary: a success string plus
// the created message.
type SendMessageResponse struct {
	Success string          `json:"success"`
	Message MessageResponse `json:"message"`
}

func NewMessageResponse(message *models.Message) MessageResponse {
	resp := MessageResponse{
		ID:            message.ID,
		Content:       message.Content,
		FromCompanyID: message.FromCompanyID,
		ToStudentID:   message.ToStudentID,
		PostID:        message.PostID,
		CreatedAt:     message.CreatedAt,
		Viewed:        message.Viewed,
	}
	if message.Company != nil {
		resp.Company = &CompanySummary{
			ID:    message.Company.ID,
			Name:  message.Company.Name,
			Email: message.Company.Email,
			Image: message.Company.Image,
		}
	}
	return resp
}
