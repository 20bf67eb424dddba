package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"portfolio-backend/database"
	"portfolio-backend/errs"
	"portfolio-backend/models"
)

type galleryHandler struct {
	responder          Responder
	logger             zerolog.Logger
	galleryRepo        *database.GalleryRepo
	galleryCommentRepo *database.GalleryCommentRepo
}

func newGalleryHandler(galleryRepo *database.GalleryRepo, galleryCommentRepo *database.GalleryCommentRepo) galleryHandler {
	logger := log.With().Str("handlerName", "galleryHandler").Logger()

	return galleryHandler{
		responder:          NewResponder(logger),
		logger:             logger,
		galleryRepo:        galleryRepo,
		galleryCommentRepo: galleryCommentRepo,
	}
}

// getAllItems returns every gallery item, newest date first.
func (h galleryHandler) getAllItems() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := h.galleryRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "gallery items", err))
			return
		}
		h.responder.WriteJSON(w, items)
	}
}

func (h galleryHandler) getItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID, err := uuid.Parse(chi.URLParam(r, "galleryItemID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid galleryItemID"))
			return
		}

		item, err := h.galleryRepo.FindByID(r.Context(), itemID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "gallery item", err))
			return
		}

		h.responder.WriteJSON(w, item)
	}
}

// validateItem checks the writable fields and normalizes the cover/carousel
// relationship before the item hits the database.
func (h galleryHandler) validateItem(item *models.GalleryItem) error {
	if item.Title == "" {
		return errs.NewMissingRequiredFieldError("title")
	}
	if item.Type == "" {
		item.Type = models.MediaTypeImage
	}
	if !models.ValidMediaType(item.Type) {
		return errs.NewInvalidFieldError("type", "must be image or video")
	}
	if item.Date.IsZero() {
		item.Date = time.Now()
	}
	item.Normalize()
	return nil
}

func (h galleryHandler) createItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var item models.GalleryItem
		if err := decodeBody(r, &item); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.validateItem(&item); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.galleryRepo.Add(r.Context(), &item); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "gallery item", err))
			return
		}

		h.responder.WriteCreated(w, item)
	}
}

func (h galleryHandler) updateItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID, err := uuid.Parse(chi.URLParam(r, "galleryItemID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid galleryItemID"))
			return
		}

		existing, err := h.galleryRepo.FindByID(r.Context(), itemID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "gallery item", err))
			return
		}

		var item models.GalleryItem
		if err := decodeBody(r, &item); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		item.ID = itemID
		// Likes are only ever changed through the like endpoint.
		item.Likes = existing.Likes

		if err := h.validateItem(&item); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.galleryRepo.Update(r.Context(), &item); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "gallery item", err))
			return
		}

		h.responder.WriteJSON(w, item)
	}
}

func (h galleryHandler) deleteItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID, err := uuid.Parse(chi.URLParam(r, "galleryItemID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid galleryItemID"))
			return
		}

		if _, err := h.galleryRepo.FindByID(r.Context(), itemID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "gallery item", err))
			return
		}

		if err := h.galleryRepo.Delete(r.Context(), itemID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "gallery item", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "gallery item deleted successfully",
		})
	}
}

// likeItem atomically bumps the like counter and returns the authoritative
// new count so clients can reconcile their optimistic update.
func (h galleryHandler) likeItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID, err := uuid.Parse(chi.URLParam(r, "galleryItemID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid galleryItemID"))
			return
		}

		likes, err := h.galleryRepo.IncrementLikes(r.Context(), itemID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("like", "gallery item", err))
			return
		}

		h.responder.WriteJSON(w, map[string]int{"likes": likes})
	}
}

// getItemComments lists comments on one item, newest first.
func (h galleryHandler) getItemComments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID, err := uuid.Parse(chi.URLParam(r, "galleryItemID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid galleryItemID"))
			return
		}

		comments, err := h.galleryCommentRepo.FindByGalleryID(r.Context(), itemID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "gallery comments", err))
			return
		}

		h.responder.WriteJSON(w, comments)
	}
}

// postItemComment stores an anonymous-named comment and returns the stored
// record, whose id and timestamp are authoritative for the client's
// optimistic prepend.
func (h galleryHandler) postItemComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID, err := uuid.Parse(chi.URLParam(r, "galleryItemID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid galleryItemID"))
			return
		}

		var body struct {
			Name    string `json:"name"`
			Content string `json:"content"`
		}
		if err := decodeBody(r, &body); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		name := strings.TrimSpace(body.Name)
		content := strings.TrimSpace(body.Content)
		if name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}
		if content == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("content"))
			return
		}

		if _, err := h.galleryRepo.FindByID(r.Context(), itemID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "gallery item", err))
			return
		}

		comment := models.GalleryComment{
			GalleryID: itemID,
			Name:      name,
			Content:   content,
		}
		if err := h.galleryCommentRepo.Add(r.Context(), &comment); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "gallery comment", err))
			return
		}

		h.responder.WriteCreated(w, comment)
	}
}

func (h galleryHandler) deleteItemComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		commentID, err := uuid.Parse(chi.URLParam(r, "commentID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid commentID"))
			return
		}

		if err := h.galleryCommentRepo.Delete(r.Context(), commentID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "gallery comment", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "gallery comment deleted successfully",
		})
	}
}
