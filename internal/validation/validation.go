// Package validation holds the statically defined schemas applied to every
// untrusted payload before it reaches a domain service. Each validator
// returns a typed input or a field-keyed error set; nothing touches hashing
// or the store until validation has passed.
package validation

import (
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/spec-kit/patient-portal/pkg/util"
)

type fieldErrors map[string]string

func (f fieldErrors) add(field, message string) {
	f[field] = message
}

func (f fieldErrors) err(message string) error {
	if len(f) == 0 {
		return nil
	}
	details := make(map[string]any, len(f))
	for field, msg := range f {
		details[field] = msg
	}
	return apperrors.NewValidationError(message, details)
}

func validEmail(s string) bool {
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

func validUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// parseDate accepts a calendar date or a full RFC 3339 timestamp.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func required(f fieldErrors, field, value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		f.add(field, field+" is required")
	}
	return value
}
