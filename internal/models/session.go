package models

import "time"

// Session stores issued login sessions so tokens can be revoked on logout.
type Session struct {
	ID        string    `gorm:"primaryKey;size:64"` // UUID
	Username  string    `gorm:"size:64;index;not null"`
	ExpiresAt time.Time `gorm:"index;not null"`
	Revoked   bool      `gorm:"index;not null"`
	CreatedAt time.Time
}

func (Session) TableName() string { return "sessions" }
