package models

import "time"

// Credential stores the single provider API key the service persists.
// There is at most one row; saving a new key replaces the previous one.
type Credential struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
