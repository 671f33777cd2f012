package utils

import "strings"

// SanitizeEmail lowercases and trims an email so it can be used as a record key.
func SanitizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func SanitizeString(s string) string {
	return strings.TrimSpace(s)
}
