package main

import (
	"fmt"
	"strings"

	"unitshift/internal/units"
)

// categoryConflictError reports a typed unit that belongs to a different
// category than the one requested on the command line.
type categoryConflictError struct {
	unit  units.Unit
	owner units.Category
	want  units.Category
}

func (e *categoryConflictError) Error() string {
	return fmt.Sprintf("%s (%s) is a %s unit, not %s", e.unit.Symbol(), e.unit.Name(), e.owner, e.want)
}

func (e *categoryConflictError) ErrorKind() string { return units.KindUser }

// resolveUnit parses a user-typed unit and checks it against category when
// one was given. An empty category is inferred from the unit.
func resolveUnit(raw string, category units.Category) (units.Unit, units.Category, error) {
	unit, err := units.ParseUnit(raw)
	if err != nil {
		return 0, 0, err
	}
	owner, _ := units.CategoryOf(unit)
	if category.Valid() && owner != category {
		return 0, 0, &categoryConflictError{unit: unit, owner: owner, want: category}
	}
	return unit, owner, nil
}

// resolveCategory parses the --category flag. An empty flag yields the zero
// Category, meaning "infer from the source unit".
func resolveCategory(raw string) (units.Category, error) {
	if strings.TrimSpace(raw) == "" {
		return 0, nil
	}
	return units.ParseCategory(raw)
}

// resolvePair resolves both units of a conversion and rejects pairs that
// span categories before they reach the engine.
func resolvePair(fromRaw, toRaw, categoryRaw string) (units.Unit, units.Unit, units.Category, error) {
	category, err := resolveCategory(categoryRaw)
	if err != nil {
		return 0, 0, 0, err
	}
	from, category, err := resolveUnit(fromRaw, category)
	if err != nil {
		return 0, 0, 0, err
	}
	to, _, err := resolveUnit(toRaw, category)
	if err != nil {
		return 0, 0, 0, err
	}
	return from, to, category, nil
}
