// Package storage writes uploaded media to the hosted store's S3-compatible
// buckets and issues the public URLs the rest of the site links to.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"portfolio-backend/config"
	"portfolio-backend/errs"
)

// Kind names an upload destination together with its validation rules.
type Kind string

const (
	KindProjectImage     Kind = "project-image"
	KindCertificateImage Kind = "certificate-image"
	KindCertificatePDF   Kind = "certificate-pdf"
	KindGalleryImage     Kind = "gallery-image"
	KindGalleryVideo     Kind = "gallery-video"
)

type rule struct {
	bucket     string
	prefix     string
	mimePrefix string
	maxSize    int64
}

const mb = 1 << 20

var rules = map[Kind]rule{
	KindProjectImage:     {bucket: "project-images", prefix: "projects/", mimePrefix: "image/", maxSize: 5 * mb},
	KindCertificateImage: {bucket: "certificate-images", prefix: "certificates/", mimePrefix: "image/", maxSize: 5 * mb},
	KindCertificatePDF:   {bucket: "certificates", prefix: "pdfs/", mimePrefix: "application/pdf", maxSize: 10 * mb},
	KindGalleryImage:     {bucket: "gallery-media", prefix: "images/", mimePrefix: "image/", maxSize: 10 * mb},
	KindGalleryVideo:     {bucket: "gallery-media", prefix: "videos/", mimePrefix: "video/", maxSize: 50 * mb},
}

// ValidKind reports whether s names a known upload kind.
func ValidKind(s string) bool {
	_, ok := rules[Kind(s)]
	return ok
}

// MaxSize returns the size ceiling for an upload kind, or 0 for an unknown
// kind.
func MaxSize(kind Kind) int64 {
	return rules[kind].maxSize
}

// Validate checks an upload against its kind's MIME prefix and size ceiling
// before any byte leaves the process.
func Validate(kind Kind, contentType string, size int64) error {
	r, ok := rules[kind]
	if !ok {
		return errs.NewUnknownUploadKindError(string(kind))
	}
	if !strings.HasPrefix(contentType, r.mimePrefix) {
		return errs.NewUnsupportedMediaTypeError(contentType, r.mimePrefix)
	}
	if size > r.maxSize {
		return errs.NewFileTooLargeError(size, r.maxSize)
	}
	return nil
}

// ObjectKey builds a collision-resistant object key for an uploaded file:
// the kind's folder prefix, a millisecond timestamp, a random suffix, and
// the original file extension.
func ObjectKey(kind Kind, filename string) string {
	r := rules[kind]
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s%d-%s%s", r.prefix, time.Now().UnixMilli(), suffix, path.Ext(filename))
}

// S3API is the slice of the S3 client the uploader needs.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type Uploader struct {
	client     S3API
	publicBase string
	logger     zerolog.Logger
}

// New builds an Uploader against the store's S3-compatible endpoint.
// Required config: STORAGE_S3_ENDPOINT, STORAGE_ACCESS_KEY,
// STORAGE_SECRET_KEY, STORAGE_PUBLIC_BASE_URL.
func New(ctx context.Context, cfg config.Config) (*Uploader, error) {
	endpoint := cfg.String("STORAGE_S3_ENDPOINT", "")
	publicBase := cfg.String("STORAGE_PUBLIC_BASE_URL", "")
	if endpoint == "" || publicBase == "" {
		return nil, fmt.Errorf("storage endpoint and public base URL must be configured")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.String("STORAGE_REGION", "us-east-1")),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.String("STORAGE_ACCESS_KEY", ""),
			cfg.String("STORAGE_SECRET_KEY", ""),
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("loading storage credentials: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	return &Uploader{
		client:     client,
		publicBase: strings.TrimSuffix(publicBase, "/"),
		logger:     log.With().Str("component", "storage").Logger(),
	}, nil
}

// PublicURL returns the stable, publicly resolvable URL for a stored object.
func (u *Uploader) PublicURL(bucket, key string) string {
	return fmt.Sprintf("%s/%s/%s", u.publicBase, bucket, key)
}

// Upload validates one file, writes it to the kind's bucket under a fresh
// object key, and returns the public URL. There are no retries; a failed
// write surfaces as a storage error.
func (u *Uploader) Upload(ctx context.Context, kind Kind, filename, contentType string, size int64, body io.Reader) (string, error) {
	if err := Validate(kind, contentType, size); err != nil {
		return "", err
	}

	r := rules[kind]
	key := ObjectKey(kind, filename)

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(r.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		u.logger.Error().Err(err).Str("bucket", r.bucket).Str("key", key).Msg("object write failed")
		return "", errs.NewStorageWriteError(r.bucket, key, err)
	}

	return u.PublicURL(r.bucket, key), nil
}

// BatchFile is one file in a multi-file upload.
type BatchFile struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

// FileFailure records why a single file in a batch was not stored.
type FileFailure struct {
	Name  string `json:"name"`
	Error string `json:"error"`
}

// BatchResult aggregates the independent outcomes of a multi-file upload.
type BatchResult struct {
	Uploaded []string      `json:"uploaded"`
	Failed   []FileFailure `json:"failed"`
}

// Partial reports a mixed outcome: some files stored, some not.
func (b BatchResult) Partial() bool {
	return len(b.Uploaded) > 0 && len(b.Failed) > 0
}

// UploadBatch uploads each file independently. A file that fails validation
// or storage never aborts the rest of the batch; its failure is recorded and
// the batch moves on.
func (u *Uploader) UploadBatch(ctx context.Context, kind Kind, files []BatchFile) BatchResult {
	var result BatchResult
	for _, f := range files {
		url, err := u.Upload(ctx, kind, f.Name, f.ContentType, f.Size, f.Body)
		if err != nil {
			result.Failed = append(result.Failed, FileFailure{Name: f.Name, Error: err.Error()})
			continue
		}
		result.Uploaded = append(result.Uploaded, url)
	}
	return result
}
