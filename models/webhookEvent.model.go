package models

import (
	"time"

	"gorm.io/gorm"
)

// WebhookEvent records every processed payment-processor event. The unique
// index on EventID is what makes webhook reconciliation idempotent: a
// duplicate delivery fails the insert and is acknowledged as a no-op.
type WebhookEvent struct {
	gorm.Model
	EventID     string    `gorm:"not null;uniqueIndex" json:"eventId"`
	Type        string    `gorm:"not null" json:"type"`
	ProcessedAt time.Time `gorm:"not null" json:"processedAt"`
}
