package database

import (
	"gorm.io/gorm"

	"portfolio-backend/models"
)

type Database struct {
	projectRepo        *ProjectRepo
	certificateRepo    *CertificateRepo
	galleryRepo        *GalleryRepo
	galleryCommentRepo *GalleryCommentRepo
	contactMessageRepo *ContactMessageRepo
	commentRepo        *CommentRepo
}

// New initializes a new Database struct with each repository using a shared
// GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		projectRepo:        NewProjectRepo(db),
		certificateRepo:    NewCertificateRepo(db),
		galleryRepo:        NewGalleryRepo(db),
		galleryCommentRepo: NewGalleryCommentRepo(db),
		contactMessageRepo: NewContactMessageRepo(db),
		commentRepo:        NewCommentRepo(db),
	}
}

// Migrate creates or updates the schema for every table the service owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Project{},
		&models.Certificate{},
		&models.GalleryItem{},
		&models.GalleryComment{},
		&models.ContactMessage{},
		&models.Comment{},
	)
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) CertificateRepo() *CertificateRepo {
	return d.certificateRepo
}

func (d Database) GalleryRepo() *GalleryRepo {
	return d.galleryRepo
}

func (d Database) GalleryCommentRepo() *GalleryCommentRepo {
	return d.galleryCommentRepo
}

func (d Database) ContactMessageRepo() *ContactMessageRepo {
	return d.contactMessageRepo
}

func (d Database) CommentRepo() *CommentRepo {
	return d.commentRepo
}
