package models

import "time"

// Session is the server-side half of a login. The bearer token only carries
// its ID, so deleting the row revokes the token.
type Session struct {
	ID        string      `gorm:"type:varchar(36);primaryKey"`
	Kind      AccountKind `gorm:"type:varchar(20);not null"`
	AccountID uint        `gorm:"not null;index"`
	Name      string      `gorm:"size:100"`
	Email     string      `gorm:"size:100"`
	ExpiresAt time.Time   `gorm:"not null;index"`
	CreatedAt time.Time   `gorm:"autoCreateTime"`
}

func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
