package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"portfolio-backend/models"
)

func TestContactMessageRepoStatusWorkflow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB(t)
	CleanupTestDB(t, db)
	repo := NewContactMessageRepo(db)
	ctx := context.Background()

	msg := models.ContactMessage{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Message: "Hi there",
		Status:  models.StatusUnread,
	}
	require.NoError(t, repo.Add(ctx, &msg))

	require.NoError(t, repo.UpdateStatus(ctx, msg.ID, models.StatusRead))

	messages, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, models.StatusRead, messages[0].Status)
}

func TestContactMessageRepoUpdateStatusMissing(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB(t)
	CleanupTestDB(t, db)
	repo := NewContactMessageRepo(db)

	msg := models.ContactMessage{Name: "x", Email: "x@example.com", Message: "m"}
	require.NoError(t, repo.Add(context.Background(), &msg))
	require.NoError(t, repo.Delete(context.Background(), msg.ID))

	err := repo.UpdateStatus(context.Background(), msg.ID, models.StatusRead)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestContactMessageRepoDeleteRemovesFromList(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB(t)
	CleanupTestDB(t, db)
	repo := NewContactMessageRepo(db)
	ctx := context.Background()

	keep := models.ContactMessage{Name: "keep", Email: "keep@example.com", Message: "m"}
	drop := models.ContactMessage{Name: "drop", Email: "drop@example.com", Message: "m"}
	require.NoError(t, repo.Add(ctx, &keep))
	require.NoError(t, repo.Add(ctx, &drop))

	require.NoError(t, repo.Delete(ctx, drop.ID))

	messages, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, keep.ID, messages[0].ID)
}
