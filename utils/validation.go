// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

// ValidateEmail checks the rough shape of an email address
func ValidateEmail(email string) bool {
	regex := `^[^@\s]+@[^@\s]+\.[^@\s]+$`
	match, _ := regexp.MatchString(regex, strings.TrimSpace(email))
	return match
}
