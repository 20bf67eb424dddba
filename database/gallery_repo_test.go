package database

import (
	"context"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"portfolio-backend/models"
)

func TestGalleryRepoCRUD(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB(t)
	CleanupTestDB(t, db)
	repo := NewGalleryRepo(db)
	ctx := context.Background()

	item := models.GalleryItem{
		Title:     "Hackathon",
		MediaURL:  "u1.jpg",
		MediaURLs: pq.StringArray{"u1.jpg", "u2.jpg"},
		Type:      models.MediaTypeImage,
		Date:      time.Now(),
	}
	require.NoError(t, repo.Add(ctx, &item))
	require.NotEqual(t, item.ID.String(), "00000000-0000-0000-0000-000000000000")

	got, err := repo.FindByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hackathon", got.Title)
	assert.Equal(t, pq.StringArray{"u1.jpg", "u2.jpg"}, got.MediaURLs)
	assert.Equal(t, 0, got.Likes)

	got.Description = "Team photos"
	require.NoError(t, repo.Update(ctx, got))

	updated, err := repo.FindByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Team photos", updated.Description)

	require.NoError(t, repo.Delete(ctx, item.ID))
	_, err = repo.FindByID(ctx, item.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGalleryRepoFindAllOrderedByDate(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB(t)
	CleanupTestDB(t, db)
	repo := NewGalleryRepo(db)
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	older := models.GalleryItem{Title: "older", Type: models.MediaTypeImage, Date: base}
	newer := models.GalleryItem{Title: "newer", Type: models.MediaTypeImage, Date: base.AddDate(0, 1, 0)}
	require.NoError(t, repo.Add(ctx, &older))
	require.NoError(t, repo.Add(ctx, &newer))

	items, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "newer", items[0].Title)
	assert.Equal(t, "older", items[1].Title)
}

func TestGalleryRepoIncrementLikes(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB(t)
	CleanupTestDB(t, db)
	repo := NewGalleryRepo(db)
	ctx := context.Background()

	item := models.GalleryItem{Title: "likeable", Type: models.MediaTypeImage, Date: time.Now()}
	require.NoError(t, repo.Add(ctx, &item))

	likes, err := repo.IncrementLikes(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, likes)

	likes, err = repo.IncrementLikes(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, likes)
}

func TestGalleryRepoIncrementLikesMissingItem(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB(t)
	CleanupTestDB(t, db)
	repo := NewGalleryRepo(db)

	item := models.GalleryItem{Title: "gone", Type: models.MediaTypeImage, Date: time.Now()}
	require.NoError(t, repo.Add(context.Background(), &item))
	require.NoError(t, repo.Delete(context.Background(), item.ID))

	_, err := repo.IncrementLikes(context.Background(), item.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGalleryCommentRepoScopedNewestFirst(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB(t)
	CleanupTestDB(t, db)
	galleryRepo := NewGalleryRepo(db)
	commentRepo := NewGalleryCommentRepo(db)
	ctx := context.Background()

	first := models.GalleryItem{Title: "first", Type: models.MediaTypeImage, Date: time.Now()}
	second := models.GalleryItem{Title: "second", Type: models.MediaTypeImage, Date: time.Now()}
	require.NoError(t, galleryRepo.Add(ctx, &first))
	require.NoError(t, galleryRepo.Add(ctx, &second))

	early := models.GalleryComment{GalleryID: first.ID, Name: "ann", Content: "early", CreatedAt: time.Now().Add(-time.Hour)}
	late := models.GalleryComment{GalleryID: first.ID, Name: "bob", Content: "late", CreatedAt: time.Now()}
	other := models.GalleryComment{GalleryID: second.ID, Name: "cat", Content: "elsewhere"}
	require.NoError(t, commentRepo.Add(ctx, &early))
	require.NoError(t, commentRepo.Add(ctx, &late))
	require.NoError(t, commentRepo.Add(ctx, &other))

	comments, err := commentRepo.FindByGalleryID(ctx, first.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2, "comments from other items must not leak in")
	assert.Equal(t, "late", comments[0].Content)
	assert.Equal(t, "early", comments[1].Content)

	require.NoError(t, commentRepo.Delete(ctx, late.ID))
	comments, err = commentRepo.FindByGalleryID(ctx, first.ID)
	require.NoError(t, err)
	assert.Len(t, comments, 1)
}
