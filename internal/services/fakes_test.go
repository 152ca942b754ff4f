package services

import (
	"fmt"
	"sync"

	"talentboard/internal/models"
	"talentboard/internal/repositories"

	"gorm.io/gorm"
)

// In-memory repository fakes. The db argument is ignored; tests pass nil.

type fakeCompanyRepo struct {
	companies map[string]*models.Company // keyed by ID
	nextID    int
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: make(map[string]*models.Company)}
}

func (r *fakeCompanyRepo) FindByID(db *gorm.DB, id string) (*models.Company, error) {
	if company, ok := r.companies[id]; ok {
		return company, nil
	}
	return nil, repositories.ErrCompanyNotFound
}

func (r *fakeCompanyRepo) FindByEmail(db *gorm.DB, email string) (*models.Company, error) {
	for _, company := range r.companies {
		if company.Email == email {
			return company, nil
		}
	}
	return nil, repositories.ErrCompanyNotFound
}

func (r *fakeCompanyRepo) Create(db *gorm.DB, company *models.Company) error {
	for _, existing := range r.companies {
		if existing.Email == company.Email {
			return repositories.ErrCompanyAlreadyExists
		}
	}
	if company.ID == "" {
		r.nextID++
		company.ID = fmt.Sprintf("company-%d", r.nextID)
	}
	r.companies[company.ID] = company
	return nil
}

type fakeStudentRepo struct {
	students map[string]*models.Student
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{students: make(map[string]*models.Student)}
}

func (r *fakeStudentRepo) FindByID(db *gorm.DB, id string) (*models.Student, error) {
	if student, ok := r.students[id]; ok {
		return student, nil
	}
	return nil, repositories.ErrStudentNotFound
}

type fakePostRepo struct {
	posts      map[string]*models.Post
	lastFilter repositories.PostFilter
	listResult []models.Post
	listErr    error
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[string]*models.Post)}
}

func (r *fakePostRepo) FindWithFilter(db *gorm.DB, filter repositories.PostFilter) ([]models.Post, error) {
	r.lastFilter = filter
	return r.listResult, r.listErr
}

func (r *fakePostRepo) FindByID(db *gorm.DB, id string) (*models.Post, error) {
	if post, ok := r.posts[id]; ok {
		return post, nil
	}
	return nil, repositories.ErrPostNotFound
}

type fakeMessageRepo struct {
	messages []*models.Message
	nextID   int
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{}
}

func (r *fakeMessageRepo) Create(db *gorm.DB, message *models.Message) error {
	r.nextID++
	message.ID = fmt.Sprintf("message-%d", r.nextID)
	r.messages = append(r.messages, message)
	return nil
}

func (r *fakeMessageRepo) FindByID(db *gorm.DB, id string) (*models.Message, error) {
	for _, message := range r.messages {
		if message.ID == id {
			return message, nil
		}
	}
	return nil, repositories.ErrMessageNotFound
}

func (r *fakeMessageRepo) ExistsFromCompany(db *gorm.DB, postID, companyID string) (bool, error) {
	for _, message := range r.messages {
		if message.PostID == postID && message.FromCompanyID == companyID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeMessageRepo) MarkViewed(db *gorm.DB, messageID string) error {
	for _, message := range r.messages {
		if message.ID == messageID {
			message.Viewed = true
			return nil
		}
	}
	return repositories.ErrMessageNotFound
}

// fakeEmailProvider records notifications; safe for the async send path.
type fakeEmailProvider struct {
	mu            sync.Mutex
	notifications []string // recipient addresses
}

func (p *fakeEmailProvider) Send(to, subject, htmlBody string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.notifications = append(p.notifications, to)
	return nil
}

func (p *fakeEmailProvider) SendNewMessageNotification(to, studentName, companyName, content string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.notifications = append(p.notifications, to)
	return nil
}

func (p *fakeEmailProvider) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.notifications)
}
