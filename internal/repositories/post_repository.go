package repositories

import (
	"errors"
	"time"

	"talentboard/internal/models"

	"gorm.io/gorm"
)

var ErrPostNotFound = errors.New("post not found")

// PostFilter restricts FindWithFilter. CompanyID does not filter posts; it
// scopes the preloaded messages to the requesting company.
type PostFilter struct {
	IsActive        *bool
	StudentID       string
	CreatedAtBefore *time.Time
	CreatedAtAfter  *time.Time
	CompanyID       string
}

type PostRepository interface {
	FindWithFilter(db *gorm.DB, filter PostFilter) ([]models.Post, error)
	FindByID(db *gorm.DB, id string) (*models.Post, error)
}

type PostRepositoryImpl struct{}

func NewPostRepository() PostRepository {
	return &PostRepositoryImpl{}
}

// createdAtClause resolves the creation-time bound for a filter. When both
// bounds are supplied only the after bound survives; the after assignment
// overwrites the before one, last write wins.
func createdAtClause(filter PostFilter) (string, time.Time, bool) {
	cond := ""
	var at time.Time
	ok := false

	if filter.CreatedAtBefore != nil {
		cond, at, ok = "created_at < ?", *filter.CreatedAtBefore, true
	}
	if filter.CreatedAtAfter != nil {
		cond, at, ok = "created_at > ?", *filter.CreatedAtAfter, true
	}
	return cond, at, ok
}

func (r *PostRepositoryImpl) FindWithFilter(db *gorm.DB, filter PostFilter) ([]models.Post, error) {
	query := db.Model(&models.Post{})

	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.StudentID != "" {
		query = query.Where("student_id = ?", filter.StudentID)
	}
	if cond, at, ok := createdAtClause(filter); ok {
		query = query.Where(cond, at)
	}

	// Messages are scoped to the requesting company so the caller can derive
	// the has-sent-message flag; without a company, all messages are loaded.
	if filter.CompanyID != "" {
		query = query.Preload("Messages", "from_company_id = ?", filter.CompanyID)
	} else {
		query = query.Preload("Messages")
	}

	var posts []models.Post
	err := query.
		Preload("Student").
		Preload("Educations").
		Preload("WorkExperiences").
		Preload("Skills").
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

func (r *PostRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Post, error) {
	var post models.Post
	err := db.
		Preload("Student").
		Preload("Messages").
		Preload("Messages.Company").
		Preload("Educations").
		Preload("WorkExperiences").
		Preload("Skills").
		First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}
