package api

import (
	"portfolio-backend/config"
	"portfolio-backend/database"
	"portfolio-backend/services"
	"portfolio-backend/storage"
)

// initializeHandlers creates and returns all handlers organized in a
// routeHandlers struct
func initializeHandlers(db database.Database, uploader *storage.Uploader, notifier *services.ContactNotifier, cfg config.Config) *routeHandlers {
	return &routeHandlers{
		authHandler:           newAuthHandler(cfg),
		projectHandler:        newProjectHandler(db.ProjectRepo()),
		certificateHandler:    newCertificateHandler(db.CertificateRepo()),
		galleryHandler:        newGalleryHandler(db.GalleryRepo(), db.GalleryCommentRepo()),
		contactMessageHandler: newContactMessageHandler(db.ContactMessageRepo(), notifier),
		commentHandler:        newCommentHandler(db.CommentRepo()),
		uploadHandler:         newUploadHandler(uploader),
	}
}
