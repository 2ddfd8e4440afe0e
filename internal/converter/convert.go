package converter

import "unitshift/internal/units"

// Value converts v from one unit to another within category c.
//
// Both units must belong to c, otherwise a *CategoryMismatchError is
// returned. Converting a unit to itself returns v unchanged, without a round
// trip through the base unit.
func Value(v float64, from, to units.Unit, c units.Category) (float64, error) {
	fromSpec, toSpec, err := specs(from, to, c)
	if err != nil {
		return 0, err
	}
	if from == to {
		return v, nil
	}
	return apply(v, fromSpec, toSpec), nil
}

func specs(from, to units.Unit, c units.Category) (units.ConversionSpec, units.ConversionSpec, error) {
	fromSpec, err := units.SpecOf(c, from)
	if err != nil {
		return units.ConversionSpec{}, units.ConversionSpec{}, &CategoryMismatchError{Category: c, From: from, To: to, Err: err}
	}
	toSpec, err := units.SpecOf(c, to)
	if err != nil {
		return units.ConversionSpec{}, units.ConversionSpec{}, &CategoryMismatchError{Category: c, From: from, To: to, Err: err}
	}
	return fromSpec, toSpec, nil
}

func apply(v float64, fromSpec, toSpec units.ConversionSpec) float64 {
	fromFactor, fromLinear := fromSpec.Factor()
	toFactor, toLinear := toSpec.Factor()
	if fromLinear && toLinear {
		base := v * fromFactor
		return base / toFactor
	}
	return toSpec.FromBase(fromSpec.ToBase(v))
}
