package main

import "unitshift/internal/converter"

const (
	exitFailure   = 1
	exitUserInput = 2
)

// exitCode separates bad input (unparseable values, unknown units) from
// operational failures so scripts can tell them apart.
func exitCode(err error) int {
	if converter.IsUserError(err) {
		return exitUserInput
	}
	return exitFailure
}
