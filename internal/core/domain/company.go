package domain

import (
	"strings"
	"time"
)

// Company is a registered business that owns bank transfers.
// CUIT is always held in the canonical dashed form XX-XXXXXXXX-X.
type Company struct {
	ID           int64  `json:"id"`
	UUID         string `json:"uuid"`
	CUIT         string `json:"cuit"`
	BusinessName string `json:"businessName"`
	AdhesionDate time.Time
	Address      string `json:"address,omitempty"`
	ContactEmail string `json:"contactEmail,omitempty"`
	ContactPhone string `json:"contactPhone,omitempty"`
	IsActive     bool   `json:"isActive"`
	AuditFields
}

// NormalizeCUIT strips every non-digit character and re-inserts the canonical
// dashes. Inputs already in dashed form and digits-only inputs converge on the
// same representation.
func NormalizeCUIT(cuit string) string {
	digits := keepDigits(cuit)
	if len(digits) != 11 {
		return cuit
	}
	return digits[0:2] + "-" + digits[2:10] + "-" + digits[10:11]
}

// SetCUIT stores the CUIT in canonical dashed form regardless of input format.
func (c *Company) SetCUIT(cuit string) {
	c.CUIT = NormalizeCUIT(cuit)
}

// SetBusinessName trims surrounding whitespace and escapes characters that
// could be reinterpreted as markup when the name is rendered elsewhere.
func (c *Company) SetBusinessName(name string) {
	c.BusinessName = SanitizeText(name)
}

// SanitizeText escapes markup-significant characters and trims whitespace.
func SanitizeText(input string) string {
	replacer := strings.NewReplacer(
		"<", "&lt;",
		">", "&gt;",
		"'", "&#39;",
		`"`, "&quot;",
		";", "&#59;",
	)
	return strings.TrimSpace(replacer.Replace(input))
}

func keepDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
