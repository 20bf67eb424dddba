package models

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Comment is a site-wide guestbook comment. Pinned comments are listed
// before everything else, newest first within each group.
type Comment struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name      string    `json:"name" gorm:"type:text;not null"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	PhotoURL  string    `json:"photo_url" gorm:"type:text"`
	Likes     int       `json:"likes" gorm:"not null;default:0"`
	IsPinned  bool      `json:"is_pinned" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"created_at" gorm:"type:timestamptz;not null;default:CURRENT_TIMESTAMP"`
}

func (Comment) TableName() string { return "comments" }

// SortComments orders comments in display order: pinned first, then newest
// first within each group. This mirrors the ordering the comment repo asks
// the database for.
func SortComments(comments []Comment) {
	sort.SliceStable(comments, func(i, j int) bool {
		if comments[i].IsPinned != comments[j].IsPinned {
			return comments[i].IsPinned
		}
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
}
