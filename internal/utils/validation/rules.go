// Package validation holds the small reusable predicates the request DTOs
// compose into per-field validators. Binding tags catch shape problems
// (presence, basic types); these rules carry the business constraints and
// let a DTO report every failed field at once.
package validation

import (
	"regexp"
	"strings"
)

// FieldError is a single failed constraint on a named input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors collects field failures across a whole DTO.
type Errors []FieldError

// Check records a failure when ok is false.
func (e *Errors) Check(ok bool, field, message string) {
	if !ok {
		*e = append(*e, FieldError{Field: field, Message: message})
	}
}

// Messages flattens the collected failures for error wrapping.
func (e Errors) Messages() []string {
	out := make([]string, len(e))
	for i, fe := range e {
		out[i] = fe.Field + ": " + fe.Message
	}
	return out
}

var (
	cuitPattern         = regexp.MustCompile(`^(20|23|24|25|26|27|30|33|34)(-\d{8}-\d{1}|\d{9})$`)
	businessNamePattern = regexp.MustCompile(`^[a-zA-Z0-9\s\.,&()'-]+$`)
	phonePattern        = regexp.MustCompile(`^(\+)?[0-9]{8,15}$`)
	allSameDigit        = regexp.MustCompile(`^(0{2,}|1{2,}|2{2,}|3{2,}|4{2,}|5{2,}|6{2,}|7{2,}|8{2,}|9{2,})$`)
	nonDigit            = regexp.MustCompile(`\D`)

	// Script and SQL-injection style fragments rejected in free-text fields.
	unsafeTextPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)<script`),
		regexp.MustCompile(`(?i)javascript:`),
		regexp.MustCompile(`(?i)ondblclick|onclick|onmouseover|onload|onerror`),
		regexp.MustCompile(`(?i)(%27)|(')|(--)|(%23)|(#)`),
		regexp.MustCompile(`(?i)((%3D)|(=))[^\n]*((%27)|(')|(--)|(%3B)|(;))`),
	}
)

// cuitMultipliers weight the ten leading digits for the mod-11 check digit.
var cuitMultipliers = [10]int{5, 4, 3, 2, 7, 6, 5, 4, 3, 2}

// allowedCurrencies is the ISO-4217 allow-list accepted on transfers.
var allowedCurrencies = map[string]struct{}{
	"ARS": {}, "USD": {}, "EUR": {}, "GBP": {}, "JPY": {}, "BRL": {}, "CLP": {},
	"UYU": {}, "PYG": {}, "BOB": {}, "COP": {}, "PEN": {}, "VES": {}, "MXN": {},
	"CAD": {}, "AUD": {}, "NZD": {}, "CHF": {}, "CNY": {}, "HKD": {}, "SGD": {},
	"INR": {}, "ZAR": {}, "RUB": {}, "TRY": {}, "SEK": {}, "NOK": {}, "DKK": {},
}

// MatchesCUITPattern checks the dashed-or-plain CUIT shape with a valid
// entity-type prefix.
func MatchesCUITPattern(cuit string) bool {
	return cuitPattern.MatchString(cuit)
}

// HasValidCUITCheckDigit verifies the mod-11 check digit over the ten leading
// digits. A result of 11 maps to 0 and 10 maps to 9 before comparison.
func HasValidCUITCheckDigit(cuit string) bool {
	digits := nonDigit.ReplaceAllString(cuit, "")
	if len(digits) != 11 {
		return false
	}
	sum := 0
	for i, m := range cuitMultipliers {
		sum += int(digits[i]-'0') * m
	}
	check := 11 - sum%11
	switch check {
	case 11:
		check = 0
	case 10:
		check = 9
	}
	return check == int(digits[10]-'0')
}

// IsValidBusinessName checks length bounds and the permitted character set.
func IsValidBusinessName(name string) bool {
	n := len(strings.TrimSpace(name))
	if n < 3 || n > 100 {
		return false
	}
	return businessNamePattern.MatchString(name)
}

// IsValidPhone accepts 8-15 digits with an optional leading plus sign.
func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// IsValidAccountNumber requires 5-20 digits after stripping separators and
// rejects accounts made of a single repeated digit.
func IsValidAccountNumber(account string) bool {
	digits := nonDigit.ReplaceAllString(account, "")
	if len(digits) < 5 || len(digits) > 20 {
		return false
	}
	return !allSameDigit.MatchString(digits)
}

// IsAllowedCurrency checks the code against the ISO-4217 allow-list,
// case-insensitively.
func IsAllowedCurrency(code string) bool {
	_, ok := allowedCurrencies[strings.ToUpper(code)]
	return ok
}

// IsSafeText screens a free-text field against the injection blocklist.
func IsSafeText(text string) bool {
	for _, p := range unsafeTextPatterns {
		if p.MatchString(text) {
			return false
		}
	}
	return true
}
