package api

import (
	"context"
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
	"portfolio-backend/services"
)

type contactMessageHandler struct {
	responder          Responder
	logger             zerolog.Logger
	contactMessageRepo *database.ContactMessageRepo
	notifier           *services.ContactNotifier
}

func newContactMessageHandler(contactMessageRepo *database.ContactMessageRepo, notifier *services.ContactNotifier) contactMessageHandler {
	logger := log.With().Str("handlerName", "contactMessageHandler").Logger()

	return contactMessageHandler{
		responder:          NewResponder(logger),
		logger:             logger,
		contactMessageRepo: contactMessageRepo,
		notifier:           notifier,
	}
}

// sendMessage is the public contact form endpoint. The message lands unread;
// the owner notification is best-effort and never fails the request.
func (h contactMessageHandler) sendMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Name    string `json:"name"`
			Email   string `json:"email"`
			Message string `json:"message"`
		}
		if err := decodeBody(r, &body); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		name := strings.TrimSpace(body.Name)
		email := strings.TrimSpace(body.Email)
		text := strings.TrimSpace(body.Message)
		switch {
		case name == "":
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		case email == "":
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("email"))
			return
		case !strings.Contains(email, "@"):
			h.responder.WriteError(w, errs.NewInvalidFieldError("email", "not a valid email address"))
			return
		case text == "":
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("message"))
			return
		}

		message := models.ContactMessage{
			Name:    name,
			Email:   email,
			Message: text,
			Status:  models.StatusUnread,
		}
		if err := h.contactMessageRepo.Add(r.Context(), &message); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "contact message", err))
			return
		}

		go func(msg models.ContactMessage) {
			ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
			defer cancel()
			if err := h.notifier.Notify(ctx, msg); err != nil {
				h.logger.Error().Err(err).Str("messageID", msg.ID.String()).Msg("contact notification failed")
			}
		}(message)

		h.responder.WriteCreated(w, message)
	}
}

// getAllMessages lists every contact message for the admin inbox, newest
// first.
func (h contactMessageHandler) getAllMessages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages, err := h.contactMessageRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "contact messages", err))
			return
		}
		h.responder.WriteJSON(w, messages)
	}
}

func (h contactMessageHandler) updateMessageStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messageID, err := uuid.Parse(chi.URLParam(r, "messageID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid messageID"))
			return
		}

		var body struct {
			Status string `json:"status"`
		}
		if err := decodeBody(r, &body); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if !models.ValidStatus(body.Status) {
			h.responder.WriteError(w, errs.NewInvalidFieldError("status", "must be unread or read"))
			return
		}

		if err := h.contactMessageRepo.UpdateStatus(r.Context(), messageID, body.Status); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "contact message", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{"status": body.Status})
	}
}

func (h contactMessageHandler) deleteMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messageID, err := uuid.Parse(chi.URLParam(r, "messageID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid messageID"))
			return
		}

		if err := h.contactMessageRepo.Delete(r.Context(), messageID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "contact message", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "contact message deleted successfully",
		})
	}
}
