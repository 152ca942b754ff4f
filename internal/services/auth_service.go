package services

import (
	"net/http"

	"talentboard/internal/auth"
	"talentboard/internal/models"
	"talentboard/internal/repositories"
	"talentboard/internal/services/dto"
	"talentboard/pkg/apperrors"

	"gorm.io/gorm"
)

var (
	// ErrInvalidCredentials deliberately does not reveal whether the email
	// or the password was wrong.
	ErrInvalidCredentials = apperrors.New(apperrors.CodeInvalidCredentials, "auth", "Invalid email or password", http.StatusUnauthorized)
	ErrEmailAlreadyInUse  = apperrors.NewConflictError("company", "Email already in use")
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) error
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
	GetCompany(db *gorm.DB, companyID string) (*dto.CompanyDTO, error)
}

type AuthServiceImpl struct {
	companyRepo repositories.CompanyRepository
}

func NewAuthService(companyRepo repositories.CompanyRepository) AuthService {
	return &AuthServiceImpl{
		companyRepo: companyRepo,
	}
}

// Register creates a company account with a bcrypt-hashed password.
func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) error {
	if req.Password != req.ConfirmPassword {
		return apperrors.ValidationError(map[string]string{
			"confirmPassword": "Passwords don't match",
		})
	}

	if err := auth.ValidatePassword(req.Password); err != nil {
		return apperrors.ValidationError(map[string]string{
			"password": err.Error(),
		})
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return apperrors.InternalError(err)
	}

	company := &models.Company{
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Name:         req.Name,
	}

	if err := s.companyRepo.Create(db, company); err != nil {
		if apperrors.Is(err, repositories.ErrCompanyAlreadyExists) {
			return ErrEmailAlreadyInUse
		}
		return apperrors.InternalError(err)
	}

	return nil
}

// Login verifies credentials and issues a session token.
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	company, err := s.companyRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	// A record without a stored hash can never authenticate.
	if company.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}

	if !auth.CheckPasswordHash(req.Password, company.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := auth.GenerateToken(company.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken: accessToken,
		Company:     dto.NewCompanyDTO(company),
	}, nil
}

// GetCompany resolves the authenticated principal for /auth/me.
func (s *AuthServiceImpl) GetCompany(db *gorm.DB, companyID string) (*dto.CompanyDTO, error) {
	company, err := s.companyRepo.FindByID(db, companyID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.NewNotFoundError("company", "Company not found")
		}
		return nil, apperrors.InternalError(err)
	}

	companyDTO := dto.NewCompanyDTO(company)
	return &companyDTO, nil
}
