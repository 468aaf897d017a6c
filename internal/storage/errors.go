package storage

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Sentinel errors so the protocol layer can distinguish conflicts and
// missing rows from generic storage faults.
var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrSlotTaken      = errors.New("appointment slot already taken")
)

// translateDuplicate maps a uniqueness violation onto the given conflict
// sentinel. GORM's TranslateError covers the common path; the message check
// keeps detection working when the driver reports the raw SQLite error.
func translateDuplicate(err error, conflict error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return conflict
	}
	return err
}

func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
