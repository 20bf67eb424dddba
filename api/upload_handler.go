package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"portfolio-backend/errs"
	"portfolio-backend/storage"
)

// uploadService is the slice of storage.Uploader the handler needs.
type uploadService interface {
	UploadBatch(ctx context.Context, kind storage.Kind, files []storage.BatchFile) storage.BatchResult
}

type uploadHandler struct {
	responder Responder
	logger    zerolog.Logger
	uploader  uploadService
}

func newUploadHandler(uploader uploadService) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()

	return uploadHandler{
		responder: NewResponder(logger),
		logger:    logger,
		uploader:  uploader,
	}
}

// upload accepts one or more multipart files under the "files" field and
// stores each independently. The response always reports the full outcome:
// uploaded URLs plus per-file failures, so a mixed batch is visible to the
// caller instead of collapsing into a single error.
func (h uploadHandler) upload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kindStr := chi.URLParam(r, "kind")
		if !storage.ValidKind(kindStr) {
			h.responder.WriteError(w, errs.NewUnknownUploadKindError(kindStr))
			return
		}
		kind := storage.Kind(kindStr)

		// In-memory threshold matches the kind's ceiling; oversized files
		// still reach Validate with their real size and fail with a proper
		// error.
		if err := r.ParseMultipartForm(storage.MaxSize(kind)); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed multipart request"))
			return
		}
		defer r.MultipartForm.RemoveAll()

		headers := r.MultipartForm.File["files"]
		if len(headers) == 0 {
			headers = r.MultipartForm.File["file"]
		}
		if len(headers) == 0 {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("files"))
			return
		}

		var files []storage.BatchFile
		for _, fh := range headers {
			f, err := fh.Open()
			if err != nil {
				h.logger.Error().Err(err).Str("file", fh.Filename).Msg("failed to open multipart file")
				h.responder.WriteError(w, errs.NewBadRequestError("failed to read uploaded file"))
				return
			}
			defer f.Close()

			files = append(files, storage.BatchFile{
				Name:        fh.Filename,
				ContentType: fh.Header.Get("Content-Type"),
				Size:        fh.Size,
				Body:        f,
			})
		}

		result := h.uploader.UploadBatch(r.Context(), kind, files)

		if len(result.Uploaded) == 0 {
			h.responder.WriteJSONStatus(w, http.StatusBadRequest, result)
			return
		}
		h.responder.WriteJSON(w, result)
	}
}
