package converter

import (
	"errors"
	"fmt"

	"unitshift/internal/units"
)

// CategoryMismatchError reports a conversion request whose units do not both
// belong to the requested category. It always indicates a wiring bug in the
// caller, never bad user input.
type CategoryMismatchError struct {
	Category units.Category
	From     units.Unit
	To       units.Unit
	Err      error
}

func (e *CategoryMismatchError) Error() string {
	return fmt.Sprintf("cannot convert %s to %s within %s: %v", e.From, e.To, e.Category, e.Err)
}

// Unwrap exposes the underlying registry error so callers can match
// *units.UnitNotInCategoryError or *units.UnknownCategoryError.
func (e *CategoryMismatchError) Unwrap() error { return e.Err }

func (e *CategoryMismatchError) ErrorKind() string { return units.KindContract }

// IsUserError reports whether err was caused by user input and can be shown
// inline. Contract violations and unclassified errors return false.
func IsUserError(err error) bool {
	var classifier units.ErrorClassifier
	if errors.As(err, &classifier) {
		return classifier.ErrorKind() == units.KindUser
	}
	return false
}
