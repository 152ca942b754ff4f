package repositories

import (
	"errors"
	"time"

	"talentboard/internal/models"

	"gorm.io/gorm"
)

var ErrMessageNotFound = errors.New("message not found")

type MessageRepository interface {
	Create(db *gorm.DB, message *models.Message) error
	FindByID(db *gorm.DB, id string) (*models.Message, error)
	ExistsFromCompany(db *gorm.DB, postID, companyID string) (bool, error)
	MarkViewed(db *gorm.DB, messageID string) error
}

type MessageRepositoryImpl struct{}

func NewMessageRepository() MessageRepository {
	return &MessageRepositoryImpl{}
}

func (r *MessageRepositoryImpl) Create(db *gorm.DB, message *models.Message) error {
	return db.Create(message).Error
}

func (r *MessageRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Message, error) {
	var message models.Message
	err := db.Preload("Company").First(&message, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}
	return &message, nil
}

func (r *MessageRepositoryImpl) ExistsFromCompany(db *gorm.DB, postID, companyID string) (bool, error) {
	var count int64
	err := db.Model(&models.Message{}).
		Where("post_id = ? AND from_company_id = ?", postID, companyID).
		Count(&count).Error
	return count > 0, err
}

func (r *MessageRepositoryImpl) MarkViewed(db *gorm.DB, messageID string) error {
	result := db.Model(&models.Message{}).Where("id = ?", messageID).Updates(map[string]interface{}{
		"viewed":     true,
		"updated_at": time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMessageNotFound
	}
	return nil
}
