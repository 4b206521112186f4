package models

import "time"

// Session is an opaque bearer token row. Expired rows are treated as
// absent by lookups but are never reaped automatically.
type Session struct {
	BaseModel
	UserID    string    `gorm:"not null;index"`
	Token     string    `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
}

// Expired reports whether the session is past its expiry at the given
// instant. The boundary instant itself is still valid.
func (s *Session) Expired(now time.Time) bool {
	return s.ExpiresAt.Before(now)
}
