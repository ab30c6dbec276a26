package domain

import (
	"time"

	"github.com/google/uuid"
)

// ShortLink maps a short code to a target URL.
type ShortLink struct {
	Code      string
	TargetURL string
	CreatedBy uuid.UUID
	ExpiresAt *time.Time
	Hits      int64
	CreatedAt time.Time
}

// IsExpired reports whether the link has expired relative to now.
func (l *ShortLink) IsExpired(now time.Time) bool {
	return l.ExpiresAt != nil && !l.ExpiresAt.After(now)
}
