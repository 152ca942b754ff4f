package services

import "talentboard/internal/email"

// ServiceContainer groups the application services for dependency wiring.
type ServiceContainer struct {
	AuthService    AuthService
	PostService    PostService
	MessageService MessageService
	EmailService   email.Provider
}
