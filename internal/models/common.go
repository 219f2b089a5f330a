package models

import "time"

// AuditFields holds the lifecycle timestamp columns shared by both tables.
type AuditFields struct {
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"` // Nullable; soft-delete marker
}
