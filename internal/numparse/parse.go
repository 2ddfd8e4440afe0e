package numparse

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrEmpty reports that there is no value to convert.
var ErrEmpty = errors.New("empty value")

// InvalidNumberError carries the raw input that failed to parse.
type InvalidNumberError struct {
	Input  string
	Reason string
}

func (e *InvalidNumberError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid number %q", e.Input)
	}
	return fmt.Sprintf("invalid number %q: %s", e.Input, e.Reason)
}

// ErrorKind marks parse failures as caused by user input.
func (e *InvalidNumberError) ErrorKind() string { return "user" }

// Parse converts raw into a finite float64. Surrounding whitespace is
// ignored. Empty input returns ErrEmpty; anything outside the accepted
// grammar returns *InvalidNumberError.
func Parse(raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, ErrEmpty
	}
	if reason := scan(trimmed); reason != "" {
		return 0, &InvalidNumberError{Input: raw, Reason: reason}
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, &InvalidNumberError{Input: raw, Reason: "out of range"}
		}
		return 0, &InvalidNumberError{Input: raw, Reason: err.Error()}
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, &InvalidNumberError{Input: raw, Reason: "not finite"}
	}
	if value == 0 {
		// Normalise "-0" so downstream formatting never prints a signed zero.
		value = 0
	}
	return value, nil
}

// scan checks the grammar and returns a short reason when it is violated.
func scan(value string) string {
	digits := 0
	points := 0
	for i, r := range value {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
			points++
			if points > 1 {
				return "multiple decimal points"
			}
		case r == '-' && i == 0:
		case r == '-':
			return "misplaced minus sign"
		default:
			return fmt.Sprintf("unexpected character %q", r)
		}
	}
	if digits == 0 {
		return "no digits"
	}
	return ""
}
