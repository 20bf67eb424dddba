package models

import (
	"time"

	"github.com/google/uuid"
)

// Message statuses. Status is the only column an admin can change on a
// message besides deleting it.
const (
	StatusUnread = "unread"
	StatusRead   = "read"
)

// ContactMessage is a message submitted through the public contact form.
type ContactMessage struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name      string    `json:"name" gorm:"type:text;not null"`
	Email     string    `json:"email" gorm:"type:text;not null"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	Status    string    `json:"status" gorm:"type:text;not null;default:unread"`
	CreatedAt time.Time `json:"created_at" gorm:"type:timestamptz;not null;default:CURRENT_TIMESTAMP"`
}

func (ContactMessage) TableName() string { return "contact_messages" }

// ValidStatus reports whether s is an accepted message status.
func ValidStatus(s string) bool {
	return s == StatusUnread || s == StatusRead
}
