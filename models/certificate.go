package models

import (
	"time"

	"github.com/google/uuid"
)

// Certificate represents an earned certification or award.
type Certificate struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title         string    `json:"title" gorm:"type:text;not null"`
	Issuer        string    `json:"issuer" gorm:"type:text;not null"`
	IssueDate     time.Time `json:"issue_date" gorm:"type:timestamptz;not null"`
	CredentialURL string    `json:"credential_url" gorm:"type:text"`
	ImageURL      string    `json:"image_url" gorm:"type:text"`
}

func (Certificate) TableName() string { return "certificates" }
