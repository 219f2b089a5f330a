package domain

import "time"

// AuditFields holds the standard lifecycle timestamps shared by all entities.
// DeletedAt marks soft deletion; rows are never physically removed.
type AuditFields struct {
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// IsDeleted reports whether the entity has been soft-deleted.
func (a AuditFields) IsDeleted() bool {
	return a.DeletedAt != nil
}
