package models

import "time"

// Base contains common columns for all tables. Rows carry a serial primary
// key and a creation timestamp; they are never soft-deleted or versioned.
type Base struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
}
