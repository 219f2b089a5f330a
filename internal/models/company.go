package models

import "time"

// Company is the row shape of the company table.
// Optional contact columns are nullable in the schema and mapped through
// sql.Null* at scan time; here they are plain strings with "" as absent.
type Company struct {
	ID           int64     `db:"id"`
	UUID         string    `db:"uuid"`
	CUIT         string    `db:"cuit"`
	BusinessName string    `db:"business_name"`
	AdhesionDate time.Time `db:"adhesion_date"`
	Address      string    `db:"address"`       // Nullable
	ContactEmail string    `db:"contact_email"` // Nullable
	ContactPhone string    `db:"contact_phone"` // Nullable
	IsActive     bool      `db:"is_active"`
	AuditFields
}
