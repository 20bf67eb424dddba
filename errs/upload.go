package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Upload & Storage Specific Errors
var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrFileTooLarge         = errors.New("file exceeds size limit")
	ErrUnknownUploadKind    = errors.New("unknown upload kind")
	ErrStorageWrite         = errors.New("storage write failed")
)

func NewUnsupportedMediaTypeError(contentType, wantPrefix string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnsupportedMediaType,
		err:        ErrUnsupportedMediaType,
		Details:    fmt.Sprintf("Unsupported media type: %s. Expected %s*", contentType, wantPrefix),
		Field:      "content_type",
	}
}

func NewFileTooLargeError(size, maxSize int64) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusRequestEntityTooLarge,
		err:        ErrFileTooLarge,
		Details:    fmt.Sprintf("File size %d exceeds maximum allowed size of %d bytes", size, maxSize),
		Field:      "file_size",
	}
}

func NewUnknownUploadKindError(kind string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrUnknownUploadKind,
		Details:    fmt.Sprintf("Unknown upload kind: %s", kind),
		Field:      "kind",
	}
}

func NewStorageWriteError(bucket, key string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrStorageWrite,
		Details:    fmt.Sprintf("Failed to write object %s to bucket %s", key, bucket),
		Cause:      cause,
	}
}
