package database

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio-backend/models"
)

type GalleryRepo struct {
	db *gorm.DB
}

func NewGalleryRepo(db *gorm.DB) *GalleryRepo {
	return &GalleryRepo{db}
}

// FindAll returns all gallery items ordered by date, newest first.
func (r *GalleryRepo) FindAll(ctx context.Context) ([]*models.GalleryItem, error) {
	var items []*models.GalleryItem
	err := r.db.WithContext(ctx).Order("date DESC").Find(&items).Error
	return items, err
}

// FindByID returns a gallery item by its ID
func (r *GalleryRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.GalleryItem, error) {
	var item models.GalleryItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Add inserts a new gallery item into the database
func (r *GalleryRepo) Add(ctx context.Context, item *models.GalleryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// Update overwrites an existing gallery item.
func (r *GalleryRepo) Update(ctx context.Context, item *models.GalleryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// Delete removes a gallery item by id. Comments on the item cascade.
func (r *GalleryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.GalleryItem{}, "id = ?", id).Error
}

// IncrementLikes bumps the like counter in a single atomic UPDATE, avoiding
// the read-modify-write race between concurrent likers, and returns the new
// count.
func (r *GalleryRepo) IncrementLikes(ctx context.Context, id uuid.UUID) (int, error) {
	res := r.db.WithContext(ctx).
		Model(&models.GalleryItem{}).
		Where("id = ?", id).
		UpdateColumn("likes", gorm.Expr("likes + ?", 1))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}

	var item models.GalleryItem
	if err := r.db.WithContext(ctx).Select("likes").First(&item, "id = ?", id).Error; err != nil {
		return 0, err
	}
	return item.Likes, nil
}
