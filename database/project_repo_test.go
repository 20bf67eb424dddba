package database

import (
	"context"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"portfolio-backend/models"
)

func TestProjectRepoCRUDWithTags(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB(t)
	CleanupTestDB(t, db)
	repo := NewProjectRepo(db)
	ctx := context.Background()

	project := models.Project{
		Title:       "Demo",
		Description: "A demo project",
		Tags:        pq.StringArray(models.ParseTags("A, B, B, ")),
	}
	require.NoError(t, repo.Add(ctx, &project))

	got, err := repo.FindByID(ctx, project.ID)
	require.NoError(t, err)
	// Duplicates and blanks handled by the parse rule, not deduplicated.
	assert.Equal(t, pq.StringArray{"A", "B", "B"}, got.Tags)

	got.Featured = true
	require.NoError(t, repo.Update(ctx, got))

	updated, err := repo.FindByID(ctx, project.ID)
	require.NoError(t, err)
	assert.True(t, updated.Featured)

	require.NoError(t, repo.Delete(ctx, project.ID))
	_, err = repo.FindByID(ctx, project.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCertificateRepoDeleteAfterConfirm(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB(t)
	CleanupTestDB(t, db)
	repo := NewCertificateRepo(db)
	ctx := context.Background()

	cert := models.Certificate{Title: "Cloud Cert", Issuer: "Acme"}
	require.NoError(t, repo.Add(ctx, &cert))

	// Cancelling the confirmation means no call fires; the list is unchanged.
	certificates, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, certificates, 1)

	// Confirmed delete: a subsequent list no longer contains the id.
	require.NoError(t, repo.Delete(ctx, cert.ID))
	certificates, err = repo.FindAll(ctx)
	require.NoError(t, err)
	for _, c := range certificates {
		assert.NotEqual(t, cert.ID, c.ID)
	}
	assert.Empty(t, certificates)
}
