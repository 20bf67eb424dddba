package database

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio-backend/models"
)

type CertificateRepo struct {
	db *gorm.DB
}

func NewCertificateRepo(db *gorm.DB) *CertificateRepo {
	return &CertificateRepo{db}
}

// FindAll returns all certificates ordered by issue date, newest first.
func (r *CertificateRepo) FindAll(ctx context.Context) ([]*models.Certificate, error) {
	var certificates []*models.Certificate
	err := r.db.WithContext(ctx).Order("issue_date DESC").Find(&certificates).Error
	return certificates, err
}

// FindByID returns a certificate by its ID
func (r *CertificateRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Certificate, error) {
	var certificate models.Certificate
	if err := r.db.WithContext(ctx).First(&certificate, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &certificate, nil
}

// Add inserts a new certificate into the database
func (r *CertificateRepo) Add(ctx context.Context, certificate *models.Certificate) error {
	return r.db.WithContext(ctx).Create(certificate).Error
}

// Update overwrites an existing certificate.
func (r *CertificateRepo) Update(ctx context.Context, certificate *models.Certificate) error {
	return r.db.WithContext(ctx).Save(certificate).Error
}

// Delete removes a certificate from the database by id
func (r *CertificateRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Certificate{}, "id = ?", id).Error
}
