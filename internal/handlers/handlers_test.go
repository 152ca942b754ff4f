package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"talentboard/internal/auth"
	"talentboard/internal/config"
	"talentboard/internal/handlers"
	"talentboard/internal/middleware"
	"talentboard/internal/routes"
	"talentboard/internal/services"
	"talentboard/internal/services/dto"
	"talentboard/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.JWT.Secret = "handler_test_secret_12345"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg
}

// Fake services: each call is routed to the function field, so tests
// control the behavior per case.

type fakeAuthService struct {
	registerFn   func(req *dto.RegisterRequest) error
	loginFn      func(req *dto.LoginRequest) (*dto.LoginResponse, error)
	getCompanyFn func(companyID string) (*dto.CompanyDTO, error)
}

func (s *fakeAuthService) Register(db *gorm.DB, req *dto.RegisterRequest) error {
	return s.registerFn(req)
}

func (s *fakeAuthService) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	return s.loginFn(req)
}

func (s *fakeAuthService) GetCompany(db *gorm.DB, companyID string) (*dto.CompanyDTO, error) {
	return s.getCompanyFn(companyID)
}

type fakePostService struct {
	getAllFn func(companyID string, req *dto.PostFilterRequest) ([]dto.PostResponse, error)
	getOneFn func(postID, companyID string) (*dto.PostDetail, error)
}

func (s *fakePostService) GetAllPosts(db *gorm.DB, companyID string, req *dto.PostFilterRequest) ([]dto.PostResponse, error) {
	return s.getAllFn(companyID, req)
}

func (s *fakePostService) GetStudentPost(db *gorm.DB, postID, companyID string) (*dto.PostDetail, error) {
	return s.getOneFn(postID, companyID)
}

type fakeMessageService struct {
	sendFn       func(companyID string, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	markViewedFn func(messageID string) error
}

func (s *fakeMessageService) Send(db *gorm.DB, companyID string, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	return s.sendFn(companyID, req)
}

func (s *fakeMessageService) MarkViewed(db *gorm.DB, messageID string) error {
	return s.markViewedFn(messageID)
}

func newTestRouter(authSvc services.AuthService, postSvc services.PostService, msgSvc services.MessageService) *gin.Engine {
	base := handlers.NewBaseHandler(validator.New())

	appHandlers := &handlers.AppHandlers{
		AuthHandler:    handlers.NewAuthHandler(base, authSvc),
		PostHandler:    handlers.NewPostHandler(base, postSvc),
		MessageHandler: handlers.NewMessageHandler(base, msgSvc),
	}

	router := gin.New()
	router.Use(middleware.DBMiddleware(func() *gorm.DB { return nil }))
	routes.RegisterRoutes(router, appHandlers)
	return router
}

func performRequest(router *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	var reqBody *strings.Reader
	if body != "" {
		reqBody = strings.NewReader(body)
	} else {
		reqBody = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func companyToken(t *testing.T, companyID string) string {
	token, err := auth.GenerateToken(companyID)
	assert.NoError(t, err)
	return token
}

func TestRegisterEndpoint_Success(t *testing.T) {
	var captured *dto.RegisterRequest
	authSvc := &fakeAuthService{
		registerFn: func(req *dto.RegisterRequest) error {
			captured = req
			return nil
		},
	}
	router := newTestRouter(authSvc, &fakePostService{}, &fakeMessageService{})

	body := `{"email":"hr@acme.com","password":"password123","name":"Acme","confirmPassword":"password123"}`
	w := performRequest(router, http.MethodPost, "/api/v1/auth/register", "", body)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Company created!")
	assert.NotNil(t, captured)
	assert.Equal(t, "hr@acme.com", captured.Email)
}

func TestRegisterEndpoint_ValidationFailure(t *testing.T) {
	authSvc := &fakeAuthService{
		registerFn: func(req *dto.RegisterRequest) error {
			t.Fatal("service must not be reached on an invalid payload")
			return nil
		},
	}
	router := newTestRouter(authSvc, &fakePostService{}, &fakeMessageService{})

	body := `{"email":"not-an-email","password":"123","name":"","confirmPassword":""}`
	w := performRequest(router, http.MethodPost, "/api/v1/auth/register", "", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email")
	assert.Contains(t, w.Body.String(), "confirmPassword")
}

func TestRegisterEndpoint_DuplicateEmail(t *testing.T) {
	authSvc := &fakeAuthService{
		registerFn: func(req *dto.RegisterRequest) error {
			return services.ErrEmailAlreadyInUse
		},
	}
	router := newTestRouter(authSvc, &fakePostService{}, &fakeMessageService{})

	body := `{"email":"hr@acme.com","password":"password123","name":"Acme","confirmPassword":"password123"}`
	w := performRequest(router, http.MethodPost, "/api/v1/auth/register", "", body)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Email already in use")
}

func TestLoginEndpoint(t *testing.T) {
	authSvc := &fakeAuthService{
		loginFn: func(req *dto.LoginRequest) (*dto.LoginResponse, error) {
			if req.Password != "password123" {
				return nil, services.ErrInvalidCredentials
			}
			return &dto.LoginResponse{
				AccessToken: "test-token",
				Company:     dto.CompanyDTO{ID: "c1", Email: req.Email, Name: "Acme"},
			}, nil
		},
	}
	router := newTestRouter(authSvc, &fakePostService{}, &fakeMessageService{})

	w := performRequest(router, http.MethodPost, "/api/v1/auth/login", "", `{"email":"hr@acme.com","password":"password123"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "access_token")

	w = performRequest(router, http.MethodPost, "/api/v1/auth/login", "", `{"email":"hr@acme.com","password":"WRONG"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid email or password")
}

func TestMeEndpoint_RequiresToken(t *testing.T) {
	router := newTestRouter(&fakeAuthService{}, &fakePostService{}, &fakeMessageService{})

	w := performRequest(router, http.MethodGet, "/api/v1/auth/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMeEndpoint_ReturnsCompany(t *testing.T) {
	authSvc := &fakeAuthService{
		getCompanyFn: func(companyID string) (*dto.CompanyDTO, error) {
			return &dto.CompanyDTO{ID: companyID, Email: "hr@acme.com", Name: "Acme"}, nil
		},
	}
	router := newTestRouter(authSvc, &fakePostService{}, &fakeMessageService{})

	w := performRequest(router, http.MethodGet, "/api/v1/auth/me", companyToken(t, "c1"), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "hr@acme.com")
}

func TestListPostsEndpoint_RequiresToken(t *testing.T) {
	router := newTestRouter(&fakeAuthService{}, &fakePostService{}, &fakeMessageService{})

	w := performRequest(router, http.MethodGet, "/api/v1/posts", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authorization header missing or invalid")
}

func TestListPostsEndpoint_ReturnsGridRows(t *testing.T) {
	postSvc := &fakePostService{
		getAllFn: func(companyID string, req *dto.PostFilterRequest) ([]dto.PostResponse, error) {
			assert.Equal(t, "c1", companyID)
			return []dto.PostResponse{
				{
					ID:             "p1",
					Student:        dto.StudentDTO{Firstname: "Jane", Surname: "Doe"},
					HasSentMessage: true,
				},
			}, nil
		},
	}
	router := newTestRouter(&fakeAuthService{}, postSvc, &fakeMessageService{})

	w := performRequest(router, http.MethodGet, "/api/v1/posts", companyToken(t, "c1"), "")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Posts []dto.PostRow `json:"posts"`
		Total int           `json:"total"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, "Jane", resp.Posts[0].StudentFirstName)
	assert.True(t, resp.Posts[0].HasSentMessage)
}

func TestListPostsEndpoint_ParsesQueryFilters(t *testing.T) {
	postSvc := &fakePostService{
		getAllFn: func(companyID string, req *dto.PostFilterRequest) ([]dto.PostResponse, error) {
			assert.NotNil(t, req.IsActive)
			assert.True(t, *req.IsActive)
			assert.Equal(t, "s1", req.StudentID)
			assert.NotNil(t, req.CreatedAtAfter)
			assert.Nil(t, req.CreatedAtBefore)
			return []dto.PostResponse{}, nil
		},
	}
	router := newTestRouter(&fakeAuthService{}, postSvc, &fakeMessageService{})

	path := "/api/v1/posts?is_active=true&student_id=s1&created_at_after=2024-06-01T00:00:00Z"
	w := performRequest(router, http.MethodGet, path, companyToken(t, "c1"), "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListPostsEndpoint_RejectsBadTimestamp(t *testing.T) {
	router := newTestRouter(&fakeAuthService{}, &fakePostService{}, &fakeMessageService{})

	path := "/api/v1/posts?created_at_after=yesterday"
	w := performRequest(router, http.MethodGet, path, companyToken(t, "c1"), "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "RFC3339")
}

func TestGetPostEndpoint_NotFound(t *testing.T) {
	postSvc := &fakePostService{
		getOneFn: func(postID, companyID string) (*dto.PostDetail, error) {
			return nil, services.ErrPostNotFound
		},
	}
	router := newTestRouter(&fakeAuthService{}, postSvc, &fakeMessageService{})

	w := performRequest(router, http.MethodGet, "/api/v1/posts/missing", companyToken(t, "c1"), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Post not found")
}

func TestGetPostEndpoint_Detail(t *testing.T) {
	postSvc := &fakePostService{
		getOneFn: func(postID, companyID string) (*dto.PostDetail, error) {
			assert.Equal(t, "p1", postID)
			return &dto.PostDetail{
				PostResponse: dto.PostResponse{
					ID:      "p1",
					Content: "Post content",
					Student: dto.StudentDTO{Firstname: "Jane", Surname: "Doe"},
				},
				CanSendMessage: true,
			}, nil
		},
	}
	router := newTestRouter(&fakeAuthService{}, postSvc, &fakeMessageService{})

	w := performRequest(router, http.MethodGet, "/api/v1/posts/p1", companyToken(t, "c1"), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"canSendMessage":true`)
}

func TestSendMessageEndpoint_Success(t *testing.T) {
	msgSvc := &fakeMessageService{
		sendFn: func(companyID string, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
			assert.Equal(t, "c1", companyID)
			return &dto.SendMessageResponse{
				Success: "Message sent successfully!",
				Message: dto.MessageResponse{ID: "m1", Content: req.Content, FromCompanyID: companyID},
			}, nil
		},
	}
	router := newTestRouter(&fakeAuthService{}, &fakePostService{}, msgSvc)

	body := `{"content":"Hello","postId":"p1","toStudentId":"s1"}`
	w := performRequest(router, http.MethodPost, "/api/v1/messages", companyToken(t, "c1"), body)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Message sent successfully!")
}

func TestSendMessageEndpoint_MissingFields(t *testing.T) {
	msgSvc := &fakeMessageService{
		sendFn: func(companyID string, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
			t.Fatal("service must not be reached on an invalid payload")
			return nil, nil
		},
	}
	router := newTestRouter(&fakeAuthService{}, &fakePostService{}, msgSvc)

	w := performRequest(router, http.MethodPost, "/api/v1/messages", companyToken(t, "c1"), `{"content":"Hello"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "postId")
	assert.Contains(t, w.Body.String(), "toStudentId")
}

func TestSendMessageEndpoint_SenderMismatch(t *testing.T) {
	msgSvc := &fakeMessageService{
		sendFn: func(companyID string, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
			return nil, services.ErrSenderMismatch
		},
	}
	router := newTestRouter(&fakeAuthService{}, &fakePostService{}, msgSvc)

	body := `{"content":"Hello","postId":"p1","toStudentId":"s1","fromCompanyId":"other"}`
	w := performRequest(router, http.MethodPost, "/api/v1/messages", companyToken(t, "c1"), body)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestMarkViewedEndpoint(t *testing.T) {
	var viewedID string
	msgSvc := &fakeMessageService{
		markViewedFn: func(messageID string) error {
			viewedID = messageID
			return nil
		},
	}
	router := newTestRouter(&fakeAuthService{}, &fakePostService{}, msgSvc)

	w := performRequest(router, http.MethodPatch, "/api/v1/messages/m1/viewed", companyToken(t, "c1"), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "m1", viewedID)
}
