package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"portfolio-backend/database"
	"portfolio-backend/errs"
	"portfolio-backend/models"
)

type commentHandler struct {
	responder   Responder
	logger      zerolog.Logger
	commentRepo *database.CommentRepo
}

func newCommentHandler(commentRepo *database.CommentRepo) commentHandler {
	logger := log.With().Str("handlerName", "commentHandler").Logger()

	return commentHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		commentRepo: commentRepo,
	}
}

// getAllComments returns the guestbook in display order: pinned first, then
// newest first.
func (h commentHandler) getAllComments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		comments, err := h.commentRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "comments", err))
			return
		}
		h.responder.WriteJSON(w, comments)
	}
}

func (h commentHandler) createComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Name     string `json:"name"`
			Message  string `json:"message"`
			PhotoURL string `json:"photo_url"`
		}
		if err := decodeBody(r, &body); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		name := strings.TrimSpace(body.Name)
		message := strings.TrimSpace(body.Message)
		if name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}
		if message == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("message"))
			return
		}

		comment := models.Comment{
			Name:     name,
			Message:  message,
			PhotoURL: strings.TrimSpace(body.PhotoURL),
		}
		if err := h.commentRepo.Add(r.Context(), &comment); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "comment", err))
			return
		}

		h.responder.WriteCreated(w, comment)
	}
}

// likeComment atomically bumps the like counter and returns the new count.
func (h commentHandler) likeComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		commentID, err := uuid.Parse(chi.URLParam(r, "commentID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid commentID"))
			return
		}

		likes, err := h.commentRepo.IncrementLikes(r.Context(), commentID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("like", "comment", err))
			return
		}

		h.responder.WriteJSON(w, map[string]int{"likes": likes})
	}
}

// togglePin flips a comment's pinned flag and reports the new state.
func (h commentHandler) togglePin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		commentID, err := uuid.Parse(chi.URLParam(r, "commentID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid commentID"))
			return
		}

		comment, err := h.commentRepo.FindByID(r.Context(), commentID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "comment", err))
			return
		}

		pinned := !comment.IsPinned
		if err := h.commentRepo.SetPinned(r.Context(), commentID, pinned); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "comment", err))
			return
		}

		h.responder.WriteJSON(w, map[string]bool{"is_pinned": pinned})
	}
}

func (h commentHandler) deleteComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		commentID, err := uuid.Parse(chi.URLParam(r, "commentID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid commentID"))
			return
		}

		if err := h.commentRepo.Delete(r.Context(), commentID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "comment", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "comment deleted successfully",
		})
	}
}
