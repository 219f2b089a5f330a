package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasValidCUITCheckDigit(t *testing.T) {
	tests := []struct {
		name string
		cuit string
		want bool
	}{
		{name: "valid dashed company cuit", cuit: "30-71659554-9", want: true},
		{name: "valid plain company cuit", cuit: "30716595549", want: true},
		{name: "valid individual cuit", cuit: "20-12345678-6", want: true},
		{name: "wrong check digit", cuit: "30-71659554-8", want: false},
		{name: "too short", cuit: "30-7165955-9", want: false},
		{name: "empty", cuit: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasValidCUITCheckDigit(tt.cuit))
		})
	}
}

func TestMatchesCUITPattern(t *testing.T) {
	assert.True(t, MatchesCUITPattern("30-71659554-9"))
	assert.True(t, MatchesCUITPattern("30716595549"))
	assert.False(t, MatchesCUITPattern("99-71659554-9"), "unknown entity prefix")
	assert.False(t, MatchesCUITPattern("30-716595549"), "half-dashed form")
}

func TestIsValidBusinessName(t *testing.T) {
	assert.True(t, IsValidBusinessName("TechSolutions S.A."))
	assert.True(t, IsValidBusinessName("O'Brien & Co (Arg)"))
	assert.False(t, IsValidBusinessName("ab"), "below minimum length")
	assert.False(t, IsValidBusinessName("Bad<Name>"), "markup characters")
}

func TestIsValidAccountNumber(t *testing.T) {
	tests := []struct {
		name    string
		account string
		want    bool
	}{
		{name: "plain digits", account: "1234567890", want: true},
		{name: "separators stripped before length check", account: "1234-5678", want: true},
		{name: "too short", account: "1234", want: false},
		{name: "too long", account: "123456789012345678901", want: false},
		{name: "all same digit", account: "1111111111", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidAccountNumber(tt.account))
		})
	}
}

func TestIsAllowedCurrency(t *testing.T) {
	assert.True(t, IsAllowedCurrency("ARS"))
	assert.True(t, IsAllowedCurrency("usd"), "case insensitive")
	assert.False(t, IsAllowedCurrency("XXX"))
	assert.False(t, IsAllowedCurrency(""))
}

func TestIsSafeText(t *testing.T) {
	assert.True(t, IsSafeText("Pago de servicios mensuales"))
	assert.False(t, IsSafeText("<script>alert(1)</script>"))
	assert.False(t, IsSafeText("javascript:void(0)"))
	assert.False(t, IsSafeText("x' OR 1=1 --;"))
}

func TestErrors_Check(t *testing.T) {
	var errs Errors
	errs.Check(true, "ok", "should not appear")
	errs.Check(false, "amount", "must be positive")
	errs.Check(false, "currency", "not allowed")

	assert.Len(t, errs, 2)
	assert.Equal(t, []string{"amount: must be positive", "currency: not allowed"}, errs.Messages())
}
