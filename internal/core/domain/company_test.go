package domain_test

import (
	"testing"

	"github.com/ledger-ar/company_transfers_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeCUIT(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "digits only",
			in:   "30716595549",
			want: "30-71659554-9",
		},
		{
			name: "already dashed",
			in:   "30-71659554-9",
			want: "30-71659554-9",
		},
		{
			name: "mixed separators",
			in:   "30.71659554/9",
			want: "30-71659554-9",
		},
		{
			name: "individual cuit",
			in:   "20123456786",
			want: "20-12345678-6",
		},
		{
			name: "wrong length passes through untouched",
			in:   "12345",
			want: "12345",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.NormalizeCUIT(tt.in))
		})
	}
}

func TestCompany_SetCUIT_Canonicalizes(t *testing.T) {
	var c domain.Company
	c.SetCUIT("30716595549")
	assert.Equal(t, "30-71659554-9", c.CUIT)

	// Re-setting with the canonical form is a no-op.
	c.SetCUIT(c.CUIT)
	assert.Equal(t, "30-71659554-9", c.CUIT)
}

func TestCompany_SetBusinessName_Sanitizes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "trims whitespace",
			in:   "  TechSolutions SA  ",
			want: "TechSolutions SA",
		},
		{
			name: "escapes markup characters",
			in:   `<script>alert("x")</script>`,
			want: "&lt;script&gt;alert(&quot;x&quot;)&lt;/script&gt;",
		},
		{
			name: "escapes quotes and semicolons",
			in:   "O'Brien & Co; Ltd",
			want: "O&#39;Brien & Co&#59; Ltd",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c domain.Company
			c.SetBusinessName(tt.in)
			assert.Equal(t, tt.want, c.BusinessName)
		})
	}
}

func TestAuditFields_IsDeleted(t *testing.T) {
	var c domain.Company
	assert.False(t, c.IsDeleted())
}
