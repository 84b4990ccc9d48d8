package utils

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// IsDuplicateKeyError reports whether a storage failure came from a unique
// constraint. The engine-side check-then-act sequences treat these as the
// conflict they guard against rather than a generic storage failure.
func IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint failed")
}

// IsDigits reports whether s is a plain base-10 integer token
func IsDigits(s string) bool {
	return numericPattern.MatchString(s)
}
