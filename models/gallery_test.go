package models

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeCoverConsistency(t *testing.T) {
	t.Run("cover follows first carousel entry", func(t *testing.T) {
		item := GalleryItem{
			MediaURL:  "stale-cover.jpg",
			MediaURLs: pq.StringArray{"u1.jpg", "u2.jpg", "u3.jpg"},
		}
		item.Normalize()
		assert.Equal(t, "u1.jpg", item.MediaURL)
	})

	t.Run("carousel backfilled from lone cover", func(t *testing.T) {
		item := GalleryItem{MediaURL: "cover.jpg"}
		item.Normalize()
		assert.Equal(t, pq.StringArray{"cover.jpg"}, item.MediaURLs)
		assert.Equal(t, "cover.jpg", item.MediaURL)
	})

	t.Run("empty item untouched", func(t *testing.T) {
		var item GalleryItem
		item.Normalize()
		assert.Empty(t, item.MediaURL)
		assert.Empty(t, item.MediaURLs)
	})
}

func TestSlides(t *testing.T) {
	multi := GalleryItem{MediaURL: "u1.jpg", MediaURLs: pq.StringArray{"u1.jpg", "u2.jpg"}}
	assert.Equal(t, []string{"u1.jpg", "u2.jpg"}, multi.Slides())

	// Legacy row: only the single cover column populated.
	legacy := GalleryItem{MediaURL: "cover.jpg"}
	assert.Equal(t, []string{"cover.jpg"}, legacy.Slides())

	var empty GalleryItem
	assert.Nil(t, empty.Slides())
}

func TestSlideWraparound(t *testing.T) {
	const n = 5

	// Calling next n times from index 0 returns to index 0.
	idx := 0
	for i := 0; i < n; i++ {
		idx = NextSlide(idx, n)
	}
	assert.Equal(t, 0, idx)

	// Previous from index 0 wraps to the last slide.
	assert.Equal(t, n-1, PrevSlide(0, n))

	// Open an item with three slides, click next twice: index 2.
	idx = 0
	idx = NextSlide(idx, 3)
	idx = NextSlide(idx, 3)
	assert.Equal(t, 2, idx)

	slides := []string{"u1", "u2", "u3"}
	assert.Equal(t, "u3", slides[idx])

	// Degenerate lists never index out of range.
	assert.Equal(t, 0, NextSlide(0, 0))
	assert.Equal(t, 0, PrevSlide(0, 0))
	assert.Equal(t, 0, NextSlide(0, 1))
	assert.Equal(t, 0, PrevSlide(0, 1))
}

func TestValidMediaType(t *testing.T) {
	assert.True(t, ValidMediaType(MediaTypeImage))
	assert.True(t, ValidMediaType(MediaTypeVideo))
	assert.False(t, ValidMediaType("gif"))
	assert.False(t, ValidMediaType(""))
}
