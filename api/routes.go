package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// setupRoutes wires the public surface and the admin mutation surface. Every
// mutation of site content goes through the authenticated group; the public
// group is read-only except for the interactions the site explicitly allows
// (likes, gallery comments, guestbook entries, the contact form).
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware, startupTime time.Time) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(HTTPLoggingMiddleware)

		r.Get("/health", healthCheck(startupTime))
		r.Post("/admin/login", handlers.authHandler.login())

		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/project/{projectID}", handlers.projectHandler.getProject())

		r.Get("/certificates", handlers.certificateHandler.getAllCertificates())
		r.Get("/certificate/{certificateID}", handlers.certificateHandler.getCertificate())

		r.Get("/gallery", handlers.galleryHandler.getAllItems())
		r.Get("/gallery-item/{galleryItemID}", handlers.galleryHandler.getItem())
		r.Post("/gallery-item/{galleryItemID}/like", handlers.galleryHandler.likeItem())
		r.Get("/gallery-item/{galleryItemID}/comments", handlers.galleryHandler.getItemComments())
		r.Post("/gallery-item/{galleryItemID}/comments", handlers.galleryHandler.postItemComment())

		r.Get("/comments", handlers.commentHandler.getAllComments())
		r.Post("/comment", handlers.commentHandler.createComment())
		r.Post("/comment/{commentID}/like", handlers.commentHandler.likeComment())

		r.Post("/contact", handlers.contactMessageHandler.sendMessage())
	})

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.authenticate)
		r.Use(HTTPLoggingMiddleware)

		r.Post("/project", handlers.projectHandler.createProject())
		r.Put("/project/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/project/{projectID}", handlers.projectHandler.deleteProject())

		r.Post("/certificate", handlers.certificateHandler.createCertificate())
		r.Put("/certificate/{certificateID}", handlers.certificateHandler.updateCertificate())
		r.Delete("/certificate/{certificateID}", handlers.certificateHandler.deleteCertificate())

		r.Post("/gallery-item", handlers.galleryHandler.createItem())
		r.Put("/gallery-item/{galleryItemID}", handlers.galleryHandler.updateItem())
		r.Delete("/gallery-item/{galleryItemID}", handlers.galleryHandler.deleteItem())
		r.Delete("/gallery-comment/{commentID}", handlers.galleryHandler.deleteItemComment())

		r.Get("/contact-messages", handlers.contactMessageHandler.getAllMessages())
		r.Put("/contact-message/{messageID}/status", handlers.contactMessageHandler.updateMessageStatus())
		r.Delete("/contact-message/{messageID}", handlers.contactMessageHandler.deleteMessage())

		r.Put("/comment/{commentID}/pin", handlers.commentHandler.togglePin())
		r.Delete("/comment/{commentID}", handlers.commentHandler.deleteComment())

		r.Post("/upload/{kind}", handlers.uploadHandler.upload())
	})
}

// healthCheck reports liveness and time since startup.
func healthCheck(startupTime time.Time) http.HandlerFunc {
	responder := NewResponder(log.With().Str("handlerName", "health").Logger())
	return func(w http.ResponseWriter, r *http.Request) {
		responder.WriteJSON(w, map[string]string{
			"status": "ok",
			"uptime": time.Since(startupTime).Round(time.Second).String(),
		})
	}
}
