package models

import (
	"time"

	"github.com/google/uuid"
)

// GalleryComment is an anonymous-named comment scoped to one gallery item.
// Comments are only ever created and deleted, never edited.
type GalleryComment struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	GalleryID uuid.UUID `json:"gallery_id" gorm:"type:uuid;not null;index"`
	Name      string    `json:"name" gorm:"type:text;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"type:timestamptz;not null;default:CURRENT_TIMESTAMP"`

	Gallery *GalleryItem `json:"-" gorm:"foreignKey:GalleryID;references:ID;constraint:OnDelete:CASCADE"`
}

func (GalleryComment) TableName() string { return "gallery_comments" }
