package domain_test

import (
	"testing"

	"github.com/ledger-ar/company_transfers_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestParseEntityID(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want domain.IDKind
	}{
		{name: "numeric id", in: "42", want: domain.IDNumeric},
		{name: "uuid", in: "f47ac10b-58cc-4372-a567-0e02b2c3d479", want: domain.IDUUID},
		{name: "uppercase uuid", in: "F47AC10B-58CC-4372-A567-0E02B2C3D479", want: domain.IDUUID},
		{name: "empty", in: "", want: domain.IDInvalid},
		{name: "garbage", in: "not-an-id", want: domain.IDInvalid},
		{name: "negative numeric still numeric", in: "-1", want: domain.IDNumeric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.ParseEntityID(tt.in)
			assert.Equal(t, tt.want, got.Kind)
			assert.Equal(t, tt.want != domain.IDInvalid, got.IsValid())
		})
	}
}

func TestParseEntityID_NormalizesUUIDCase(t *testing.T) {
	got := domain.ParseEntityID("F47AC10B-58CC-4372-A567-0E02B2C3D479")
	assert.Equal(t, "f47ac10b-58cc-4372-a567-0e02b2c3d479", got.UUID)
}

func TestSplitEntityIDs(t *testing.T) {
	numeric, uuids := domain.SplitEntityIDs([]string{
		"7",
		"f47ac10b-58cc-4372-a567-0e02b2c3d479",
		"bogus",
		"13",
	})

	assert.Equal(t, []int64{7, 13}, numeric)
	assert.Equal(t, []string{"f47ac10b-58cc-4372-a567-0e02b2c3d479"}, uuids)
}
