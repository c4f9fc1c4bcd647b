package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"bonehealth-backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrNotFound             = errors.New("record not found")
	ErrDuplicateKey         = errors.New("translation key already exists")
	ErrDuplicateTranslation = errors.New("translation already exists for this key and language")
	ErrStoreUnavailable     = errors.New("store unavailable")
)

// ValidationError describes one rejected input field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

func validateLanguage(code string) error {
	if !models.IsSupportedLanguage(code) {
		return invalid("languageCode", "unsupported language code %q", code)
	}
	return nil
}

func validateStatus(status string) error {
	if status != "" && !models.IsValidStatus(status) {
		return invalid("status", "must be one of pending, approved, rejected; got %q", status)
	}
	return nil
}

func validateKeyName(name string) error {
	if strings.TrimSpace(name) == "" {
		return invalid("keyName", "is required")
	}
	return nil
}

// storeError classifies driver failures. Connectivity problems and timeouts
// become ErrStoreUnavailable; everything else is wrapped unchanged.
func storeError(op string, err error) error {
	if err == nil {
		return nil
	}
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, driver.ErrBadConn) || errors.As(err, &netErr) {
		return fmt.Errorf("%s: %w: %v", op, ErrStoreUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
