// Package user identifies the person running trench, for log records
package user

import (
	"os"
	"os/user"
)

// currentUser is swapped in tests
var currentUser = user.Current

// Operator returns the name recorded against log entries.
// It tries, in order: the OS account, $USER, then "unknown".
func Operator() string {
	if u, err := currentUser(); err == nil && u.Username != "" {
		return u.Username
	}
	if username := os.Getenv("USER"); username != "" {
		return username
	}
	return "unknown"
}
