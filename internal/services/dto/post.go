package dto

import (
	"fmt"
	"strings"
	"time"

	"talentboard/internal/models"
)

// PostFilterRequest is the inbound post filter. The education, work
// experience and skill sub-filters are validated but only
// isActive/studentId/createdAt bounds reach the storage query.
type PostFilterRequest struct {
	IsActive        *bool                  `json:"isActive" form:"is_active"`
	StudentID       string                 `json:"studentId" form:"student_id"`
	CreatedAtBefore *time.Time             `json:"createdAtBefore" form:"created_at_before"`
	CreatedAtAfter  *time.Time             `json:"createdAtAfter" form:"created_at_after"`
	Education       []EducationFilter      `json:"education,omitempty" validate:"omitempty,dive"`
	WorkExperiences []WorkExperienceFilter `json:"workExperiences,omitempty" validate:"omitempty,dive"`
	Skills          []SkillFilter          `json:"skills,omitempty" validate:"omitempty,dive"`
}

type EducationFilter struct {
	Degree           string `json:"degree" validate:"required"`
	Institution      string `json:"institution" validate:"required"`
	YearOfGraduation int    `json:"yearOfGraduation" validate:"required"`
}

type WorkExperienceFilter struct {
	Company   string `json:"company" validate:"required"`
	Position  string `json:"position" validate:"required"`
	Location  string `json:"location" validate:"required"`
	StartDate string `json:"startDate" validate:"required"`
	EndDate   string `json:"endDate" validate:"required"`
}

type SkillFilter struct {
	SkillName string `json:"skillName" validate:"required"`
	Level     string `json:"level" validate:"required,is-skill-level"`
}

// StudentDTO always serializes image, null when absent.
type StudentDTO struct {
	ID        string  `json:"id"`
	Firstname string  `json:"firstname"`
	Surname   string  `json:"surname"`
	Email     string  `json:"email"`
	Image     *string `json:"image"`
}

type PostResponse struct {
	ID              string                  `json:"id"`
	Content         string                  `json:"content"`
	IsActive        bool                    `json:"isActive"`
	CreatedAt       time.Time               `json:"createdAt"`
	UpdatedAt       time.Time               `json:"updatedAt"`
	StudentID       string                  `json:"studentId"`
	Student         StudentDTO              `json:"student"`
	Messages        []MessageResponse       `json:"messages,omitempty"`
	Education       []models.Education      `json:"education,omitempty"`
	WorkExperiences []models.WorkExperience `json:"workExperiences,omitempty"`
	Skills          []models.Skill          `json:"skills,omitempty"`
	HasSentMessage  bool                    `json:"hasSentMessage"`
}

// PostDetail is the detail-page view: the post plus whether the viewing
// company may still open the message form.
type PostDetail struct {
	PostResponse
	CanSendMessage bool `json:"canSendMessage"`
}

// PostRow is one row of the listing grid, with the CV summaries already
// concatenated the way the table renders them.
type PostRow struct {
	ID               string `json:"id"`
	StudentFirstName string `json:"studentFirstName"`
	StudentSurname   string `json:"studentSurname"`
	HasSentMessage   bool   `json:"hasSentMessage"`
	Education        string `json:"education"`
	WorkExperiences  string `json:"workExperiences"`
	Skills           string `json:"skills"`
}

func NewStudentDTO(student *models.Student) StudentDTO {
	dto := StudentDTO{
		ID:        student.ID,
		Firstname: student.Firstname,
		Surname:   student.Surname,
		Email:     student.Email,
		Image:     student.Image,
	}
	// Coerce an empty image to an explicit null.
	if dto.Image != nil && *dto.Image == "" {
		dto.Image = nil
	}
	return dto
}

// NewPostResponse maps a loaded post; hasSentMessage is derived from the
// preloaded (company-scoped) messages being non-empty.
func NewPostResponse(post *models.Post) PostResponse {
	messages := make([]MessageResponse, 0, len(post.Messages))
	for i := range post.Messages {
		messages = append(messages, NewMessageResponse(&post.Messages[i]))
	}

	return PostResponse{
		ID:              post.ID,
		Content:         post.Content,
		IsActive:        post.IsActive,
		CreatedAt:       post.CreatedAt,
		UpdatedAt:       post.UpdatedAt,
		StudentID:       post.StudentID,
		Student:         NewStudentDTO(&post.Student),
		Messages:        messages,
		Education:       post.Educations,
		WorkExperiences: post.WorkExperiences,
		Skills:          post.Skills,
		HasSentMessage:  len(post.Messages) > 0,
	}
}

// NewPostRow flattens a post into a grid row.
func NewPostRow(post PostResponse) PostRow {
	educations := make([]string, 0, len(post.Education))
	for _, edu := range post.Education {
		educations = append(educations, fmt.Sprintf("%s at %s (%d)", edu.Degree, edu.Institution, edu.YearOfGraduation))
	}

	experiences := make([]string, 0, len(post.WorkExperiences))
	for _, work := range post.WorkExperiences {
		experiences = append(experiences, fmt.Sprintf("%s at %s", work.Position, work.Company))
	}

	skills := make([]string, 0, len(post.Skills))
	for _, skill := range post.Skills {
		skills = append(skills, fmt.Sprintf("%s (%s)", skill.SkillName, skill.Level))
	}

	return PostRow{
		ID:               post.ID,
		StudentFirstName: post.Student.Firstname,
		StudentSurname:   post.Student.Surname,
		HasSentMessage:   post.HasSentMessage,
		Education:        strings.Join(educations, "\n"),
		WorkExperiences:  strings.Join(experiences, "\n"),
		Skills:           strings.Join(skills, "\n"),
	}
}
