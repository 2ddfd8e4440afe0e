package units

import "fmt"

// Unit is a concrete measurement unit. Every unit belongs to exactly one
// Category. The zero value is not a valid unit.
type Unit uint8

const (
	// Length, base Meter.
	Millimeter Unit = iota + 1
	Centimeter
	Meter
	Kilometer
	Inch
	Foot
	Yard
	Mile

	// Weight, base Kilogram.
	Milligram
	Gram
	Kilogram
	Ounce
	Pound
	Stone
	Tonne

	// Temperature, base Celsius.
	Celsius
	Fahrenheit
	Kelvin
	Rankine

	// Volume, base Liter. Imperial-looking units are US customary.
	Milliliter
	Liter
	CubicMeter
	FluidOunce
	Cup
	Pint
	Quart
	Gallon

	// Area, base SquareMeter.
	SquareMillimeter
	SquareCentimeter
	SquareMeter
	SquareKilometer
	SquareInch
	SquareFoot
	SquareYard
	Acre
	Hectare

	// Energy, base Joule.
	Joule
	Kilojoule
	Calorie
	Kilocalorie
	BTU
	KilowattHour

	// Power, base Watt.
	Watt
	Kilowatt
	Megawatt
	Horsepower
	BTUPerHour

	unitCount = int(BTUPerHour) + 1
)

// Valid reports whether u is a registered unit.
func (u Unit) Valid() bool {
	return u >= Millimeter && u <= BTUPerHour
}

// Symbol returns the short symbol used to label the unit, e.g. "kg".
func (u Unit) Symbol() string {
	if !u.Valid() {
		return ""
	}
	return unitTable[u].symbol
}

// Name returns the human-readable label, e.g. "Kilogram".
func (u Unit) Name() string {
	if !u.Valid() {
		return ""
	}
	return unitTable[u].name
}

// String returns the unit symbol.
func (u Unit) String() string {
	if !u.Valid() {
		return fmt.Sprintf("Unit(%d)", uint8(u))
	}
	return unitTable[u].symbol
}
