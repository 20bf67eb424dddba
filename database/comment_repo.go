package database

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio-backend/models"
)

type CommentRepo struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *CommentRepo {
	return &CommentRepo{db}
}

// FindAll returns all site-wide comments in display order: pinned first,
// then newest first.
func (r *CommentRepo) FindAll(ctx context.Context) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.WithContext(ctx).
		Order("is_pinned DESC").
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

// FindByID returns a comment by its ID
func (r *CommentRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.WithContext(ctx).First(&comment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// Add inserts a new comment into the database
func (r *CommentRepo) Add(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// SetPinned pins or unpins a comment.
func (r *CommentRepo) SetPinned(ctx context.Context, id uuid.UUID, pinned bool) error {
	res := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("id = ?", id).
		UpdateColumn("is_pinned", pinned)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IncrementLikes bumps the like counter in a single atomic UPDATE and
// returns the new count.
func (r *CommentRepo) IncrementLikes(ctx context.Context, id uuid.UUID) (int, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("id = ?", id).
		UpdateColumn("likes", gorm.Expr("likes + ?", 1))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}

	var comment models.Comment
	if err := r.db.WithContext(ctx).Select("likes").First(&comment, "id = ?", id).Error; err != nil {
		return 0, err
	}
	return comment.Likes, nil
}

// Delete removes a comment by id
func (r *CommentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Comment{}, "id = ?", id).Error
}
