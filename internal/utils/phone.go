package utils

import "strings"

// maxPhoneDigits caps the stored phone number length.
const maxPhoneDigits = 20

// NormalizePhoneNumber strips all non-digit characters and truncates to 20
// digits. Applied both on entry and before persistence so the stored value
// and the compared value are always in the same form.
func NormalizePhoneNumber(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			if b.Len() == maxPhoneDigits {
				break
			}
		}
	}
	return b.String()
}
