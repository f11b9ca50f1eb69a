package slug

import "strings"

// Make lowercases the input and collapses every run of characters
// outside [a-z0-9] into a single hyphen, for use in file names.
func Make(input string) string {
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(input) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
		default:
			pendingDash = true
		}
	}
	if b.Len() == 0 {
		return "untitled"
	}
	return b.String()
}
