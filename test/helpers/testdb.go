package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"talentboard/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateCompany inserts a company, hashing the password if a raw one was
// supplied in PasswordHash.
func CreateCompany(t *testing.T, db *gorm.DB, company *models.Company) error {
	if company.ID == "" {
		company.ID = uuid.NewString()
	}
	if company.PasswordHash != "" && !strings.HasPrefix(company.PasswordHash, "$2a$") {
		hashed, err := bcrypt.GenerateFromPassword([]byte(company.PasswordHash), bcrypt.DefaultCost)
		if err != nil {
			t.Fatalf("Failed to hash password: %v", err)
		}
		company.PasswordHash = string(hashed)
	}

	result := db.Create(company)
	if result.Error != nil {
		t.Logf("Failed to create company %s: %v", company.Email, result.Error)
		return result.Error
	}
	return nil
}

// CreateAndLoginCompany creates a company with a unique email and logs it
// in through the API, returning the bearer token.
func CreateAndLoginCompany(t *testing.T, ts *TestServer, tx *gorm.DB) (string, *models.Company) {
	email := fmt.Sprintf("company_%d@test.com", time.Now().UnixNano())
	password := "password123"

	company := &models.Company{
		Email:        email,
		PasswordHash: password,
		Name:         "Test Company Inc.",
	}
	err := CreateCompany(t, tx, company)
	assert.NoError(t, err, "Creating a test company must not fail")

	loginBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Login must succeed. Response: "+bodyStr)

	var loginResponse struct {
		Token string `json:"access_token"`
	}
	err = json.Unmarshal([]byte(bodyStr), &loginResponse)
	assert.NoError(t, err)
	assert.NotEmpty(t, loginResponse.Token)

	return loginResponse.Token, company
}

// CreateStudent inserts a student with a unique email.
func CreateStudent(t *testing.T, db *gorm.DB) *models.Student {
	student := &models.Student{
		BaseModel: models.BaseModel{ID: uuid.NewString()},
		Firstname: "Test",
		Surname:   "Student",
		Email:     fmt.Sprintf("student_%d@test.com", time.Now().UnixNano()),
	}
	if err := db.Create(student).Error; err != nil {
		t.Fatalf("Failed to create test student: %v", err)
	}
	return student
}

// CreatePost inserts an active post for the student, with one education,
// one work experience and one skill attached.
func CreatePost(t *testing.T, db *gorm.DB, studentID string, content string) *models.Post {
	post := &models.Post{
		BaseModel: models.BaseModel{ID: uuid.NewString()},
		Content:   content,
		IsActive:  true,
		StudentID: studentID,
	}
	if err := db.Create(post).Error; err != nil {
		t.Fatalf("Failed to create test post: %v", err)
	}

	education := &models.Education{
		BaseModel:        models.BaseModel{ID: uuid.NewString()},
		PostID:           post.ID,
		Degree:           "BSc Computer Science",
		Institution:      "Test University",
		YearOfGraduation: 2023,
	}
	if err := db.Create(education).Error; err != nil {
		t.Fatalf("Failed to create test education: %v", err)
	}

	experience := &models.WorkExperience{
		BaseModel: models.BaseModel{ID: uuid.NewString()},
		PostID:    post.ID,
		Company:   "Acme Corp",
		Position:  "Intern",
		Location:  "Berlin",
		StartDate: "2023-01",
		EndDate:   "2023-06",
	}
	if err := db.Create(experience).Error; err != nil {
		t.Fatalf("Failed to create test work experience: %v", err)
	}

	skill := &models.Skill{
		BaseModel: models.BaseModel{ID: uuid.NewString()},
		PostID:    post.ID,
		SkillName: "Go",
		Level:     models.SkillLevelAdvanced,
	}
	if err := db.Create(skill).Error; err != nil {
		t.Fatalf("Failed to create test skill: %v", err)
	}

	return post
}

// CreateMessage inserts a message from the company to the student's post.
func CreateMessage(t *testing.T, db *gorm.DB, companyID, studentID, postID, content string) *models.Message {
	message := &models.Message{
		BaseModel:     models.BaseModel{ID: uuid.NewString()},
		Content:       content,
		FromCompanyID: companyID,
		ToStudentID:   studentID,
		PostID:        postID,
	}
	if err := db.Create(message).Error; err != nil {
		t.Fatalf("Failed to create test message: %v", err)
	}
	return message
}
