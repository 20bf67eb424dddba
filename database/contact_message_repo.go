package database

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio-backend/models"
)

type ContactMessageRepo struct {
	db *gorm.DB
}

func NewContactMessageRepo(db *gorm.DB) *ContactMessageRepo {
	return &ContactMessageRepo{db}
}

// FindAll returns all contact messages, newest first.
func (r *ContactMessageRepo) FindAll(ctx context.Context) ([]*models.ContactMessage, error) {
	var messages []*models.ContactMessage
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&messages).Error
	return messages, err
}

// Add inserts a new contact message into the database
func (r *ContactMessageRepo) Add(ctx context.Context, message *models.ContactMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

// UpdateStatus sets the read/unread status of a message. Status is the only
// mutable column.
func (r *ContactMessageRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	res := r.db.WithContext(ctx).
		Model(&models.ContactMessage{}).
		Where("id = ?", id).
		UpdateColumn("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a contact message by id
func (r *ContactMessageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.ContactMessage{}, "id = ?", id).Error
}
