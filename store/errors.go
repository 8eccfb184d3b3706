package store

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Error kinds returned by every store operation. Callers branch with
// errors.Is; the HTTP layer translates them into status codes.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrConstraint   = errors.New("constraint violation")
	ErrStorage      = errors.New("storage failure")
)

// classify maps a gorm error onto a store error kind. Already-classified
// errors pass through unchanged, so it is safe on the result of
// db.Transaction even when the closure returned a classified error.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrNotFound),
		errors.Is(err, ErrConstraint), errors.Is(err, ErrStorage):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", ErrConstraint, err)
	case strings.Contains(strings.ToLower(err.Error()), "constraint"):
		// Fallback for drivers without error translation.
		return fmt.Errorf("%w: %v", ErrConstraint, err)
	default:
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
}
