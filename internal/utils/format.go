package utils

import "strings"

// MaskAccountNumber redacts everything but the last four digits of an account
// number, replacing the prefix with '*' characters of equal count.
// Accounts of length <= 4 have nothing to redact and come back unchanged.
// Example: "123456789012" returns "********9012"; "1234" returns "1234".
func MaskAccountNumber(account string) string {
	if account == "" {
		return ""
	}
	if len(account) <= 4 {
		return account
	}
	return strings.Repeat("*", len(account)-4) + account[len(account)-4:]
}
