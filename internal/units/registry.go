package units

import "fmt"

type unitEntry struct {
	category Category
	symbol   string // display symbol
	name     string // display name
	spec     ConversionSpec
	aliases  []string // extra spellings accepted by ParseUnit
}

type categoryEntry struct {
	name    string
	base    Unit
	units   []Unit // display order
	aliases []string
}

// Temperature pivots through Celsius.
func identity(v float64) float64 { return v }

func fahrenheitToCelsius(v float64) float64 { return (v - 32) * 5 / 9 }
func celsiusToFahrenheit(v float64) float64 { return v*9/5 + 32 }
func kelvinToCelsius(v float64) float64     { return v - 273.15 }
func celsiusToKelvin(v float64) float64     { return v + 273.15 }
func rankineToCelsius(v float64) float64    { return (v - 491.67) * 5 / 9 }
func celsiusToRankine(v float64) float64    { return v*9/5 + 491.67 }

var unitTable = [unitCount]unitEntry{
	Millimeter: {Length, "mm", "Millimeter", LinearSpec(0.001), []string{"millimetre", "millimetres"}},
	Centimeter: {Length, "cm", "Centimeter", LinearSpec(0.01), []string{"centimetre", "centimetres"}},
	Meter:      {Length, "m", "Meter", LinearSpec(1), []string{"metre", "metres"}},
	Kilometer:  {Length, "km", "Kilometer", LinearSpec(1000), []string{"kilometre", "kilometres"}},
	Inch:       {Length, "in", "Inch", LinearSpec(0.0254), []string{"inches", "\""}},
	Foot:       {Length, "ft", "Foot", LinearSpec(0.3048), []string{"feet", "'"}},
	Yard:       {Length, "yd", "Yard", LinearSpec(0.9144), nil},
	Mile:       {Length, "mi", "Mile", LinearSpec(1609.344), nil},

	Milligram: {Weight, "mg", "Milligram", LinearSpec(1e-6), []string{"milligramme"}},
	Gram:      {Weight, "g", "Gram", LinearSpec(0.001), []string{"gramme"}},
	Kilogram:  {Weight, "kg", "Kilogram", LinearSpec(1), []string{"kilogramme", "kilo", "kilos"}},
	Ounce:     {Weight, "oz", "Ounce", LinearSpec(0.028349523125), nil},
	Pound:     {Weight, "lb", "Pound", LinearSpec(0.45359237), []string{"lbs"}},
	Stone:     {Weight, "st", "Stone", LinearSpec(6.35029318), nil},
	Tonne:     {Weight, "t", "Tonne", LinearSpec(1000), []string{"metric ton", "metric tons"}},

	Celsius:    {Temperature, "°C", "Celsius", AffineSpec(identity, identity), []string{"c", "degc", "deg c", "centigrade"}},
	Fahrenheit: {Temperature, "°F", "Fahrenheit", AffineSpec(fahrenheitToCelsius, celsiusToFahrenheit), []string{"f", "degf", "deg f"}},
	Kelvin:     {Temperature, "K", "Kelvin", AffineSpec(kelvinToCelsius, celsiusToKelvin), nil},
	Rankine:    {Temperature, "°R", "Rankine", AffineSpec(rankineToCelsius, celsiusToRankine), []string{"r", "degr", "deg r"}},

	Milliliter: {Volume, "ml", "Milliliter", LinearSpec(0.001), []string{"millilitre", "millilitres"}},
	Liter:      {Volume, "l", "Liter", LinearSpec(1), []string{"litre", "litres"}},
	CubicMeter: {Volume, "m³", "Cubic Meter", LinearSpec(1000), []string{"cubic metre", "cubic metres"}},
	FluidOunce: {Volume, "fl oz", "Fluid Ounce", LinearSpec(0.0295735295625), []string{"floz", "fl. oz"}},
	Cup:        {Volume, "cup", "Cup", LinearSpec(0.2365882365), nil},
	Pint:       {Volume, "pt", "Pint", LinearSpec(0.473176473), nil},
	Quart:      {Volume, "qt", "Quart", LinearSpec(0.946352946), nil},
	Gallon:     {Volume, "gal", "Gallon", LinearSpec(3.785411784), nil},

	SquareMillimeter: {Area, "mm²", "Square Millimeter", LinearSpec(1e-6), []string{"sq mm"}},
	SquareCentimeter: {Area, "cm²", "Square Centimeter", LinearSpec(1e-4), []string{"sq cm"}},
	SquareMeter:      {Area, "m²", "Square Meter", LinearSpec(1), []string{"sq m", "square metre", "square metres"}},
	SquareKilometer:  {Area, "km²", "Square Kilometer", LinearSpec(1e6), []string{"sq km"}},
	SquareInch:       {Area, "in²", "Square Inch", LinearSpec(0.00064516), []string{"sq in", "square inches"}},
	SquareFoot:       {Area, "ft²", "Square Foot", LinearSpec(0.09290304), []string{"sq ft", "square feet"}},
	SquareYard:       {Area, "yd²", "Square Yard", LinearSpec(0.83612736), []string{"sq yd"}},
	Acre:             {Area, "acre", "Acre", LinearSpec(4046.8564224), []string{"ac"}},
	Hectare:          {Area, "ha", "Hectare", LinearSpec(10000), nil},

	Joule:        {Energy, "J", "Joule", LinearSpec(1), nil},
	Kilojoule:    {Energy, "kJ", "Kilojoule", LinearSpec(1000), nil},
	Calorie:      {Energy, "cal", "Calorie", LinearSpec(4.184), nil},
	Kilocalorie:  {Energy, "kcal", "Kilocalorie", LinearSpec(4184), nil},
	BTU:          {Energy, "BTU", "British Thermal Unit", LinearSpec(1055.05585262), []string{"btus"}},
	KilowattHour: {Energy, "kWh", "Kilowatt Hour", LinearSpec(3.6e6), []string{"kilowatt-hour", "kilowatt-hours"}},

	Watt:       {Power, "W", "Watt", LinearSpec(1), nil},
	Kilowatt:   {Power, "kW", "Kilowatt", LinearSpec(1000), nil},
	Megawatt:   {Power, "MW", "Megawatt", LinearSpec(1e6), nil},
	Horsepower: {Power, "hp", "Horsepower", LinearSpec(745.69987158227022), nil},
	BTUPerHour: {Power, "BTU/h", "BTU per Hour", LinearSpec(0.29307107017), []string{"btu/hr", "btuh"}},
}

var categoryTable = [categoryCount]categoryEntry{
	Length: {
		name:    "Length",
		base:    Meter,
		units:   []Unit{Millimeter, Centimeter, Meter, Kilometer, Inch, Foot, Yard, Mile},
		aliases: []string{"distance"},
	},
	Weight: {
		name:    "Weight",
		base:    Kilogram,
		units:   []Unit{Milligram, Gram, Kilogram, Ounce, Pound, Stone, Tonne},
		aliases: []string{"mass"},
	},
	Temperature: {
		name:    "Temperature",
		base:    Celsius,
		units:   []Unit{Celsius, Fahrenheit, Kelvin, Rankine},
		aliases: []string{"temp"},
	},
	Volume: {
		name:  "Volume",
		base:  Liter,
		units: []Unit{Milliliter, Liter, CubicMeter, FluidOunce, Cup, Pint, Quart, Gallon},
	},
	Area: {
		name:  "Area",
		base:  SquareMeter,
		units: []Unit{SquareMillimeter, SquareCentimeter, SquareMeter, SquareKilometer, SquareInch, SquareFoot, SquareYard, Acre, Hectare},
	},
	Energy: {
		name:  "Energy",
		base:  Joule,
		units: []Unit{Joule, Kilojoule, Calorie, Kilocalorie, BTU, KilowattHour},
	},
	Power: {
		name:  "Power",
		base:  Watt,
		units: []Unit{Watt, Kilowatt, Megawatt, Horsepower, BTUPerHour},
	},
}

var categoryOrder = []Category{Length, Weight, Temperature, Volume, Area, Energy, Power}

func init() {
	if err := checkTables(); err != nil {
		panic(err)
	}
	buildIndexes()
}

// checkTables verifies the cross references between the unit and category
// tables.
func checkTables() error {
	owner := make(map[Unit]Category, unitCount)
	for _, c := range categoryOrder {
		entry := categoryTable[c]
		if entry.name == "" {
			return fmt.Errorf("units: category %d has no table entry", c)
		}
		baseListed := false
		for _, u := range entry.units {
			if !u.Valid() {
				return fmt.Errorf("units: category %s lists invalid unit %d", entry.name, u)
			}
			if prev, dup := owner[u]; dup {
				return fmt.Errorf("units: unit %s listed by both %s and %s", unitTable[u].symbol, prev, entry.name)
			}
			owner[u] = c
			if unitTable[u].category != c {
				return fmt.Errorf("units: unit %s is listed by %s but declares %s", unitTable[u].symbol, entry.name, unitTable[u].category)
			}
			if u == entry.base {
				baseListed = true
			}
		}
		if !baseListed {
			return fmt.Errorf("units: base unit of %s is not among its units", entry.name)
		}
		if !unitTable[entry.base].spec.identity() {
			return fmt.Errorf("units: base unit %s of %s is not an identity conversion", unitTable[entry.base].symbol, entry.name)
		}
	}
	for u := Millimeter; u.Valid(); u++ {
		entry := unitTable[u]
		if entry.symbol == "" || entry.name == "" {
			return fmt.Errorf("units: unit %d has no table entry", u)
		}
		if _, ok := owner[u]; !ok {
			return fmt.Errorf("units: unit %s belongs to no category", entry.symbol)
		}
		if factor, ok := entry.spec.Factor(); ok && !(factor > 0) {
			return fmt.Errorf("units: unit %s has non-positive factor %v", entry.symbol, factor)
		}
		if entry.spec.Kind() == Affine && entry.category != Temperature {
			return fmt.Errorf("units: unit %s uses an affine spec outside temperature", entry.symbol)
		}
	}
	return nil
}
