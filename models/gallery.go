package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Media types accepted for a gallery item.
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// GalleryItem represents a single entry in the activity gallery. MediaURL is
// the cover shown in list views; MediaURLs carries the full carousel when an
// item has more than one slide.
type GalleryItem struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title       string         `json:"title" gorm:"type:text;not null"`
	Description string         `json:"description" gorm:"type:text"`
	MediaURL    string         `json:"media_url" gorm:"type:text"`
	MediaURLs   pq.StringArray `json:"media_urls" gorm:"type:text[]"`
	Type        string         `json:"type" gorm:"type:text;not null;default:image"`
	Date        time.Time      `json:"date" gorm:"type:timestamptz;not null"`
	Likes       int            `json:"likes" gorm:"not null;default:0"`
}

func (GalleryItem) TableName() string { return "gallery" }

// ValidMediaType reports whether t is one of the accepted media types.
func ValidMediaType(t string) bool {
	return t == MediaTypeImage || t == MediaTypeVideo
}

// Normalize keeps the cover consistent with the carousel: when MediaURLs is
// non-empty the cover is always its first element, and when only a cover was
// supplied the carousel is backfilled from it.
func (g *GalleryItem) Normalize() {
	if len(g.MediaURLs) > 0 {
		g.MediaURL = g.MediaURLs[0]
	} else if g.MediaURL != "" {
		g.MediaURLs = pq.StringArray{g.MediaURL}
	}
}

// Slides returns the carousel media list, falling back to a single-element
// list built from the cover for legacy rows without MediaURLs.
func (g *GalleryItem) Slides() []string {
	if len(g.MediaURLs) > 0 {
		return g.MediaURLs
	}
	if g.MediaURL != "" {
		return []string{g.MediaURL}
	}
	return nil
}

// NextSlide advances a carousel index, wrapping past the last slide.
func NextSlide(current, total int) int {
	if total <= 0 {
		return 0
	}
	return (current + 1) % total
}

// PrevSlide steps a carousel index back, wrapping before the first slide.
func PrevSlide(current, total int) int {
	if total <= 0 {
		return 0
	}
	return (current - 1 + total) % total
}
