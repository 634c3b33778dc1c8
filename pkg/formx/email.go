package formx

import "regexp"

// emailPattern is "something@something.something" with no whitespace and no
// extra '@'. Whitespace covers what browsers treat as such: ASCII spaces,
// vertical tab, Unicode separators and the BOM.
var emailPattern = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)

// IsValidEmail is a permissive syntactic check, not a deliverability check.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}
