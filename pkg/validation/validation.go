package validation

import (
	"regexp"
	"strings"
)

var zipcodeRegex = regexp.MustCompile(`^\d{5}(-\d{4})?$`)

// IsZipcode reports whether s looks like a 5 or 9 digit US ZIP code
func IsZipcode(s string) bool {
	return zipcodeRegex.MatchString(strings.TrimSpace(s))
}

// IsValidUnits validates the widget units attribute
func IsValidUnits(units string) bool {
	return units == "F" || units == "C"
}

// IsNotEmpty checks if string is not empty after trimming
func IsNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// TrimAndValidate trims string and validates it's not empty
func TrimAndValidate(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}
