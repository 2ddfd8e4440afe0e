package units

import "fmt"

// Error kinds returned by ErrorKind. User errors come from bad input and are
// safe to show inline; contract errors mean a caller wired the wrong
// category or unit and should be logged loudly.
const (
	KindUser     = "user"
	KindContract = "contract"
)

// ErrorClassifier is implemented by errors that declare whether they were
// caused by user input or by a broken caller.
type ErrorClassifier interface {
	ErrorKind() string
}

// UnknownCategoryError reports a category outside the closed set, or a
// category name that could not be resolved.
type UnknownCategoryError struct {
	Category Category
	Input    string
}

func (e *UnknownCategoryError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("unknown category %q", e.Input)
	}
	return fmt.Sprintf("unknown category %s", e.Category)
}

// ErrorKind classifies the failure. A name typed by a user is user input; an
// out-of-range enum value is a contract violation.
func (e *UnknownCategoryError) ErrorKind() string {
	if e.Input != "" {
		return KindUser
	}
	return KindContract
}

// UnitNotInCategoryError reports a unit that does not belong to the requested
// category.
type UnitNotInCategoryError struct {
	Unit     Unit
	Category Category
}

func (e *UnitNotInCategoryError) Error() string {
	return fmt.Sprintf("unit %s does not belong to category %s", e.Unit, e.Category)
}

func (e *UnitNotInCategoryError) ErrorKind() string { return KindContract }

// UnknownUnitError reports a unit name or symbol that ParseUnit could not
// resolve.
type UnknownUnitError struct {
	Input string
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("unknown unit %q", e.Input)
}

func (e *UnknownUnitError) ErrorKind() string { return KindUser }
