package validation

import "strings"

const specialChars = `!@#$%^&*(),.?":{}|<>`

// HasSpecialChar reports whether s contains at least one character from
// the special set required of passwords.
func HasSpecialChar(s string) bool {
	return strings.ContainsAny(s, specialChars)
}
