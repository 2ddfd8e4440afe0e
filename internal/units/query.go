package units

// Categories returns every category in display order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// UnitsOf returns the units of c in their fixed display order. The returned
// slice is a copy and may be modified by the caller.
func UnitsOf(c Category) ([]Unit, error) {
	if !c.Valid() {
		return nil, &UnknownCategoryError{Category: c}
	}
	src := categoryTable[c].units
	out := make([]Unit, len(src))
	copy(out, src)
	return out, nil
}

// SpecOf returns the conversion spec that maps u to the base unit of c.
func SpecOf(c Category, u Unit) (ConversionSpec, error) {
	if err := Check(c, u); err != nil {
		return ConversionSpec{}, err
	}
	return unitTable[u].spec, nil
}

// BaseUnitOf returns the designated base unit of c.
func BaseUnitOf(c Category) (Unit, error) {
	if !c.Valid() {
		return 0, &UnknownCategoryError{Category: c}
	}
	return categoryTable[c].base, nil
}

// DisplayNameOf returns the human-readable label of u, e.g. "Kilogram".
func DisplayNameOf(c Category, u Unit) (string, error) {
	if err := Check(c, u); err != nil {
		return "", err
	}
	return unitTable[u].name, nil
}

// CategoryOf returns the category u belongs to.
func CategoryOf(u Unit) (Category, bool) {
	if !u.Valid() {
		return 0, false
	}
	return unitTable[u].category, true
}

// Check returns nil when u belongs to c.
func Check(c Category, u Unit) error {
	if !c.Valid() {
		return &UnknownCategoryError{Category: c}
	}
	if !u.Valid() || unitTable[u].category != c {
		return &UnitNotInCategoryError{Unit: u, Category: c}
	}
	return nil
}
