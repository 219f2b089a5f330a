package domain

import (
	"strconv"

	"github.com/google/uuid"
)

// IDKind tags the interpretation of an externally supplied identifier.
type IDKind int

const (
	IDInvalid IDKind = iota
	IDNumeric
	IDUUID
)

// EntityID is the parsed form of a path identifier that may be either the
// storage-assigned numeric id or the business-facing UUID. Repositories accept
// this tagged value instead of re-classifying raw strings in every query.
type EntityID struct {
	Kind    IDKind
	Numeric int64
	UUID    string
}

// ParseEntityID classifies an identifier string. Anything that is neither a
// base-10 integer nor an RFC 4122 UUID comes back tagged IDInvalid.
func ParseEntityID(raw string) EntityID {
	if raw == "" {
		return EntityID{Kind: IDInvalid}
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return EntityID{Kind: IDNumeric, Numeric: n}
	}
	if u, err := uuid.Parse(raw); err == nil {
		return EntityID{Kind: IDUUID, UUID: u.String()}
	}
	return EntityID{Kind: IDInvalid}
}

// IsValid reports whether the identifier parsed as numeric or UUID.
func (e EntityID) IsValid() bool {
	return e.Kind != IDInvalid
}

// SplitEntityIDs partitions a batch of raw identifiers into numeric ids and
// UUIDs, dropping invalid entries. Used for mixed-key membership queries.
func SplitEntityIDs(raw []string) (numeric []int64, uuids []string) {
	for _, r := range raw {
		id := ParseEntityID(r)
		switch id.Kind {
		case IDNumeric:
			numeric = append(numeric, id.Numeric)
		case IDUUID:
			uuids = append(uuids, id.UUID)
		}
	}
	return numeric, uuids
}
