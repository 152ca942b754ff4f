package handlers

import (
	"net/http"

	"talentboard/internal/middleware"
	"talentboard/internal/services"
	"talentboard/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	*BaseHandler
	postService services.PostService
}

func NewPostHandler(base *BaseHandler, postService services.PostService) *PostHandler {
	return &PostHandler{
		BaseHandler: base,
		postService: postService,
	}
}

// RegisterRoutes registers the post routes. All of them require an
// authenticated company.
func (h *PostHandler) RegisterRoutes(rg *gin.RouterGroup) {
	posts := rg.Group("/posts")
	posts.Use(middleware.AuthMiddleware())
	{
		posts.GET("", h.ListPosts)
		posts.GET("/:postId", h.GetPost)
	}
}

// ListPosts returns grid-ready rows for the listing page: student name,
// message-sent flag, and concatenated CV summaries.
func (h *PostHandler) ListPosts(c *gin.Context) {
	companyID, ok := h.GetAndAuthorizeCompanyID(c)
	if !ok {
		return
	}

	var req dto.PostFilterRequest
	req.IsActive = ParseQueryBool(c, "is_active")
	req.StudentID = c.Query("student_id")

	before, err := ParseQueryTime(c, "created_at_before")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	after, err := ParseQueryTime(c, "created_at_after")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	req.CreatedAtBefore = before
	req.CreatedAtAfter = after

	if !h.validate(c, &req) {
		return
	}

	db := h.GetDB(c)

	posts, err := h.postService.GetAllPosts(db, companyID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	rows := make([]dto.PostRow, 0, len(posts))
	for _, post := range posts {
		rows = append(rows, dto.NewPostRow(post))
	}

	c.JSON(http.StatusOK, gin.H{
		"posts": rows,
		"total": len(rows),
	})
}

// GetPost returns the detail view for one post.
func (h *PostHandler) GetPost(c *gin.Context) {
	companyID, ok := h.GetAndAuthorizeCompanyID(c)
	if !ok {
		return
	}

	postID := c.Param("postId")

	db := h.GetDB(c)

	detail, err := h.postService.GetStudentPost(db, postID, companyID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}
