package dto

import (
	"time"

	"talentboard/internal/models"
)

// LoginRequest carries company credentials. Code is an optional one-time
// code field accepted for forward compatibility; nothing consumes it yet.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Code     string `json:"code,omitempty"`
}

// RegisterRequest is the company registration payload. The
// password/confirmPassword equality refinement lives in the auth service
// so the failure can be attached to the confirmPassword field.
type RegisterRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	Name            string `json:"name" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// LoginResponse carries the session token and the authenticated company.
type LoginResponse struct {
	AccessToken string     `json:"access_token"`
	Company     CompanyDTO `json:"company"`
}

// CompanyDTO never exposes the password hash.
type CompanyDTO struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Image     *string   `json:"image,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func NewCompanyDTO(company *models.Company) CompanyDTO {
	return CompanyDTO{
		ID:        company.ID,
		Email:     company.Email,
		Name:      company.Name,
		Image:     company.Image,
		CreatedAt: company.CreatedAt,
	}
}
