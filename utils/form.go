// utils/form.go
package utils

import "strings"

// Tokens accepted as "checked" from HTML checkbox submissions. Browsers send
// "on" for a checked box and omit the field entirely when unchecked.
var checkboxTruthy = map[string]bool{
	"on":   true,
	"true": true,
	"1":    true,
	"yes":  true,
}

// ParseCheckbox maps a submitted checkbox value to a bool. Any value outside
// the accepted token set, including an absent field, is false.
func ParseCheckbox(value string) bool {
	return checkboxTruthy[strings.ToLower(strings.TrimSpace(value))]
}

// ContactRedirectTarget builds the post-contact redirect: back to the
// referring page with a single #contact fragment appended, or the index when
// the referrer is unknown.
func ContactRedirectTarget(referrer string) string {
	if referrer == "" {
		return "/#contact"
	}
	return strings.TrimSuffix(referrer, "#contact") + "#contact"
}
