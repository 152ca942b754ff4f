package services

import (
	"talentboard/internal/email"
	"talentboard/internal/logger"
	"talentboard/internal/models"
	"talentboard/internal/repositories"
	"talentboard/internal/services/dto"
	"talentboard/pkg/apperrors"

	"gorm.io/gorm"
)

var (
	ErrNoSession          = apperrors.NewUnauthorizedError("Unauthorized: No valid session found")
	ErrInvalidMessageData = apperrors.NewBadRequestError("Invalid message data!")
	ErrSenderMismatch     = apperrors.NewForbiddenError("Cannot send a message on behalf of another company")
)

type MessageService interface {
	Send(db *gorm.DB, companyID string, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	MarkViewed(db *gorm.DB, messageID string) error
}

type MessageServiceImpl struct {
	messageRepo   repositories.MessageRepository
	postRepo      repositories.PostRepository
	studentRepo   repositories.StudentRepository
	companyRepo   repositories.CompanyRepository
	emailProvider email.Provider
}

func NewMessageService(
	messageRepo repositories.MessageRepository,
	postRepo repositories.PostRepository,
	studentRepo repositories.StudentRepository,
	companyRepo repositories.CompanyRepository,
	emailProvider email.Provider,
) MessageService {
	return &MessageServiceImpl{
		messageRepo:   messageRepo,
		postRepo:      postRepo,
		studentRepo:   studentRepo,
		companyRepo:   companyRepo,
		emailProvider: emailProvider,
	}
}

// Send validates and persists a message from the authenticated company to
// the student behind a post.
func (s *MessageServiceImpl) Send(db *gorm.DB, companyID string, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	if companyID == "" {
		return nil, ErrNoSession
	}

	// The sender id defaults to the session company and must match it when
	// supplied; a message may not be attributed to another company.
	if req.FromCompanyID == "" {
		req.FromCompanyID = companyID
	}
	if req.FromCompanyID != companyID {
		return nil, ErrSenderMismatch
	}

	// Referential checks: post and student must exist.
	if _, err := s.postRepo.FindByID(db, req.PostID); err != nil {
		if apperrors.Is(err, repositories.ErrPostNotFound) {
			return nil, ErrInvalidMessageData
		}
		return nil, apperrors.InternalError(err)
	}
	student, err := s.studentRepo.FindByID(db, req.ToStudentID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrStudentNotFound) {
			return nil, ErrInvalidMessageData
		}
		return nil, apperrors.InternalError(err)
	}

	message := &models.Message{
		Content:       req.Content,
		FromCompanyID: req.FromCompanyID,
		ToStudentID:   req.ToStudentID,
		PostID:        req.PostID,
		Viewed:        false,
	}

	if err := s.messageRepo.Create(db, message); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notifyStudent(db, student, message)

	return &dto.SendMessageResponse{
		Success: "Message sent successfully!",
		Message: dto.NewMessageResponse(message),
	}, nil
}

// MarkViewed flips the student-side read flag on a message.
func (s *MessageServiceImpl) MarkViewed(db *gorm.DB, messageID string) error {
	if err := s.messageRepo.MarkViewed(db, messageID); err != nil {
		if apperrors.Is(err, repositories.ErrMessageNotFound) {
			return apperrors.NewNotFoundError("message", "Message not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// notifyStudent emails the student about the new message. Delivery is
// fire-and-forget; a failure is logged, never returned.
func (s *MessageServiceImpl) notifyStudent(db *gorm.DB, student *models.Student, message *models.Message) {
	if s.emailProvider == nil {
		return
	}

	companyName := "A company"
	if company, err := s.companyRepo.FindByID(db, message.FromCompanyID); err == nil {
		companyName = company.Name
	}

	to := student.Email
	studentName := student.Firstname
	content := message.Content

	go func() {
		if err := s.emailProvider.SendNewMessageNotification(to, studentName, companyName, content); err != nil {
			logger.Warn("Failed to send new message notification", "error", err, "student_email", to)
		}
	}()
}
