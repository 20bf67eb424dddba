package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"portfolio-backend/database"
	"portfolio-backend/errs"
	"portfolio-backend/models"
)

type certificateHandler struct {
	responder       Responder
	logger          zerolog.Logger
	certificateRepo *database.CertificateRepo
}

func newCertificateHandler(certificateRepo *database.CertificateRepo) certificateHandler {
	logger := log.With().Str("handlerName", "certificateHandler").Logger()

	return certificateHandler{
		responder:       NewResponder(logger),
		logger:          logger,
		certificateRepo: certificateRepo,
	}
}

// getAllCertificates returns every certificate, newest issue date first.
func (h certificateHandler) getAllCertificates() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		certificates, err := h.certificateRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "certificates", err))
			return
		}
		h.responder.WriteJSON(w, certificates)
	}
}

func (h certificateHandler) getCertificate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		certificateID, err := uuid.Parse(chi.URLParam(r, "certificateID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid certificateID"))
			return
		}

		certificate, err := h.certificateRepo.FindByID(r.Context(), certificateID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "certificate", err))
			return
		}

		h.responder.WriteJSON(w, certificate)
	}
}

func (h certificateHandler) createCertificate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var certificate models.Certificate
		if err := decodeBody(r, &certificate); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if certificate.Title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}
		if certificate.Issuer == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("issuer"))
			return
		}

		if err := h.certificateRepo.Add(r.Context(), &certificate); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "certificate", err))
			return
		}

		h.responder.WriteCreated(w, certificate)
	}
}

func (h certificateHandler) updateCertificate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		certificateID, err := uuid.Parse(chi.URLParam(r, "certificateID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid certificateID"))
			return
		}

		if _, err := h.certificateRepo.FindByID(r.Context(), certificateID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "certificate", err))
			return
		}

		var certificate models.Certificate
		if err := decodeBody(r, &certificate); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		certificate.ID = certificateID

		if certificate.Title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}

		if err := h.certificateRepo.Update(r.Context(), &certificate); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "certificate", err))
			return
		}

		h.responder.WriteJSON(w, certificate)
	}
}

func (h certificateHandler) deleteCertificate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		certificateID, err := uuid.Parse(chi.URLParam(r, "certificateID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid certificateID"))
			return
		}

		if _, err := h.certificateRepo.FindByID(r.Context(), certificateID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "certificate", err))
			return
		}

		if err := h.certificateRepo.Delete(r.Context(), certificateID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "certificate", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "certificate deleted successfully",
		})
	}
}
