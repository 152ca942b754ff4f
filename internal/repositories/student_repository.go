package repositories

import (
	"errors"

	"talentboard/internal/models"

	"gorm.io/gorm"
)

var ErrStudentNotFound = errors.New("student not found")

type StudentRepository interface {
	FindByID(db *gorm.DB, id string) (*models.Student, error)
}

type StudentRepositoryImpl struct{}

func NewStudentRepository() StudentRepository {
	return &StudentRepositoryImpl{}
}

func (r *StudentRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Student, error) {
	var student models.Student
	err := db.First(&student, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return &student, nil
}
