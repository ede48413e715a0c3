// Package email holds helpers for email addresses.
package email

import (
	"strings"
	"unicode"
)

// DisplayName derives a name from the local part of address:
// "jane.doe+news@example.com" becomes "Jane Doe". Tags after '+' are ignored.
// It returns "" when the local part has no letters or digits.
func DisplayName(address string) string {
	local := address
	if at := strings.LastIndexByte(address, '@'); at >= 0 {
		local = address[:at]
	}
	if plus := strings.IndexByte(local, '+'); plus >= 0 {
		local = local[:plus]
	}

	parts := strings.FieldsFunc(local, func(r rune) bool {
		return r == '.' || r == '_' || r == '-'
	})
	for i, p := range parts {
		parts[i] = capitalize(p)
	}
	return strings.Join(parts, " ")
}

func capitalize(s string) string {
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
