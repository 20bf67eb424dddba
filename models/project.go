package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Project represents a portfolio project card.
type Project struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title       string         `json:"title" gorm:"type:text;not null"`
	Description string         `json:"description" gorm:"type:text;not null"`
	ImageURL    string         `json:"image_url" gorm:"type:text"`
	DemoURL     string         `json:"demo_url" gorm:"type:text"`
	GithubURL   string         `json:"github_url" gorm:"type:text"`
	Tags        pq.StringArray `json:"tags" gorm:"type:text[]"`
	Featured    bool           `json:"featured" gorm:"not null;default:false"`
	CreatedAt   time.Time      `json:"created_at" gorm:"type:timestamptz;not null;default:CURRENT_TIMESTAMP"`
}

func (Project) TableName() string { return "projects" }

// ParseTags converts the comma-separated edit representation into the stored
// list: split on commas, trim whitespace, drop empty entries. Duplicates are
// kept as-is.
func ParseTags(s string) []string {
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// JoinTags renders a tag list back into its comma-separated edit form.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}
