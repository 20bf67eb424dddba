package database

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio-backend/models"
)

type GalleryCommentRepo struct {
	db *gorm.DB
}

func NewGalleryCommentRepo(db *gorm.DB) *GalleryCommentRepo {
	return &GalleryCommentRepo{db}
}

// FindByGalleryID returns the comments on one gallery item, newest first.
func (r *GalleryCommentRepo) FindByGalleryID(ctx context.Context, galleryID uuid.UUID) ([]*models.GalleryComment, error) {
	var comments []*models.GalleryComment
	err := r.db.WithContext(ctx).
		Where("gallery_id = ?", galleryID).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

// Add inserts a new gallery comment into the database
func (r *GalleryCommentRepo) Add(ctx context.Context, comment *models.GalleryComment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// Delete removes a gallery comment by id
func (r *GalleryCommentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.GalleryComment{}, "id = ?", id).Error
}
