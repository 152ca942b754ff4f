package services

import (
	"talentboard/internal/repositories"
	"talentboard/internal/services/dto"
	"talentboard/pkg/apperrors"

	"gorm.io/gorm"
)

var ErrPostNotFound = apperrors.NewNotFoundError("post", "Post not found")

type PostService interface {
	// GetAllPosts returns posts matching the filter, each annotated with
	// whether the requesting company has already messaged it.
	GetAllPosts(db *gorm.DB, companyID string, req *dto.PostFilterRequest) ([]dto.PostResponse, error)

	// GetStudentPost returns one post with all relations and whether the
	// requesting company may still send a message.
	GetStudentPost(db *gorm.DB, postID, companyID string) (*dto.PostDetail, error)
}

type PostServiceImpl struct {
	postRepo repositories.PostRepository
}

func NewPostService(postRepo repositories.PostRepository) PostService {
	return &PostServiceImpl{
		postRepo: postRepo,
	}
}

func (s *PostServiceImpl) GetAllPosts(db *gorm.DB, companyID string, req *dto.PostFilterRequest) ([]dto.PostResponse, error) {
	// The education/work/skill sub-filters are validated upstream but do not
	// reach the storage query; only these fields translate into clauses.
	filter := repositories.PostFilter{
		IsActive:        req.IsActive,
		StudentID:       req.StudentID,
		CreatedAtBefore: req.CreatedAtBefore,
		CreatedAtAfter:  req.CreatedAtAfter,
		CompanyID:       companyID,
	}

	posts, err := s.postRepo.FindWithFilter(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.PostResponse, 0, len(posts))
	for i := range posts {
		responses = append(responses, dto.NewPostResponse(&posts[i]))
	}
	return responses, nil
}

func (s *PostServiceImpl) GetStudentPost(db *gorm.DB, postID, companyID string) (*dto.PostDetail, error) {
	post, err := s.postRepo.FindByID(db, postID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPostNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	detail := dto.PostDetail{
		PostResponse: dto.NewPostResponse(post),
	}

	// The detail view loads every message, so the sent flag must check the
	// sender rather than the list being non-empty.
	hasSent := false
	for _, message := range detail.Messages {
		if message.FromCompanyID == companyID {
			hasSent = true
			break
		}
	}
	detail.HasSentMessage = hasSent
	detail.CanSendMessage = !hasSent

	return &detail, nil
}
