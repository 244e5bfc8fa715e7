package repository

import (
	"gorm.io/gorm"

	"github.com/yukikurage/freelance-marketplace-api/internal/database"
	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"github.com/yukikurage/freelance-marketplace-api/internal/utils"
)

// GormMessageRepository is a GORM implementation of MessageRepository
type GormMessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &GormMessageRepository{db: db}
}

func (r *GormMessageRepository) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

func (r *GormMessageRepository) ListForUser(userID string) ([]models.Message, error) {
	var messages []models.Message
	if err := r.db.Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at ASC").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func betweenScope(a, b string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)", a, b, b, a)
	}
}

// ListThread pages through the conversation between a and b
func (r *GormMessageRepository) ListThread(a, b string, params utils.PaginationParams) ([]models.Message, int64, error) {
	var total int64
	if err := r.db.Model(&models.Message{}).Scopes(betweenScope(a, b)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var messages []models.Message
	if err := r.db.Scopes(betweenScope(a, b), database.Paginate(params)).
		Order("created_at ASC").
		Find(&messages).Error; err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}

func (r *GormMessageRepository) MarkThreadRead(readerID, otherID string) (int64, error) {
	result := r.db.Model(&models.Message{}).
		Where("sender_id = ? AND receiver_id = ? AND is_read = ?", otherID, readerID, false).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}

func (r *GormMessageRepository) CountUnread(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Message{}).
		Where("receiver_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}
