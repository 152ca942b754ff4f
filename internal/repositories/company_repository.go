package repositories

import (
	"errors"

	"talentboard/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCompanyNotFound      = errors.New("company not found")
	ErrCompanyAlreadyExists = errors.New("company already exists")
)

type CompanyRepository interface {
	FindByID(db *gorm.DB, id string) (*models.Company, error)
	FindByEmail(db *gorm.DB, email string) (*models.Company, error)
	Create(db *gorm.DB, company *models.Company) error
}

type CompanyRepositoryImpl struct{}

func NewCompanyRepository() CompanyRepository {
	return &CompanyRepositoryImpl{}
}

func (r *CompanyRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Company, error) {
	var company models.Company
	err := db.First(&company, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.Company, error) {
	var company models.Company
	err := db.First(&company, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepositoryImpl) Create(db *gorm.DB, company *models.Company) error {
	// Email uniqueness is checked explicitly, not left to the unique index.
	var existing models.Company
	if err := db.Where("email = ?", company.Email).First(&existing).Error; err == nil {
		return ErrCompanyAlreadyExists
	}

	return db.Create(company).Error
}
