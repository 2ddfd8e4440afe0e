package units

import (
	"errors"
	"testing"
)

func TestParseUnit(t *testing.T) {
	tests := []struct {
		input string
		want  Unit
	}{
		// Symbols
		{"mm", Millimeter},
		{"km", Kilometer},
		{"kg", Kilogram},
		{"°C", Celsius},
		{"°F", Fahrenheit},
		{"K", Kelvin},
		{"°R", Rankine},
		{"m³", CubicMeter},
		{"fl oz", FluidOunce},
		{"km²", SquareKilometer},
		{"kWh", KilowattHour},
		{"BTU/h", BTUPerHour},
		// Case and whitespace
		{"KG", Kilogram},
		{"  kwh ", KilowattHour},
		{"fl   OZ", FluidOunce},
		{"KWH", KilowattHour},
		{"L", Liter},
		{"btu/H", BTUPerHour},
		{"C", Celsius},
		// Compatibility forms
		{"℃", Celsius},
		{"℉", Fahrenheit},
		{"m3", CubicMeter},
		{"ft2", SquareFoot},
		{"ｋｍ", Kilometer},
		// Names, plurals, aliases
		{"kilogram", Kilogram},
		{"Kilograms", Kilogram},
		{"metre", Meter},
		{"feet", Foot},
		{"celsius", Celsius},
		{"c", Celsius},
		{"lbs", Pound},
		{"square feet", SquareFoot},
		{"british thermal unit", BTU},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseUnit(tt.input)
			if err != nil {
				t.Fatalf("ParseUnit(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseUnit(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseUnitUnknown(t *testing.T) {
	for _, input := range []string{"", " ", "parsec", "kgs/m"} {
		_, err := ParseUnit(input)
		var unknown *UnknownUnitError
		if !errors.As(err, &unknown) {
			t.Fatalf("ParseUnit(%q): expected UnknownUnitError, got %v", input, err)
		}
		if unknown.Input != input {
			t.Fatalf("expected input %q to be retained, got %q", input, unknown.Input)
		}
		if unknown.ErrorKind() != KindUser {
			t.Fatalf("expected user kind, got %q", unknown.ErrorKind())
		}
	}
}

func TestParseUnitKeepsPrefixCase(t *testing.T) {
	// Each input is the symbol of a unit 10^9 or more away from the folded
	// match, or of a unit outside the table.
	for _, input := range []string{"mW", "mw", "Mm", "Ml", "Kwh", "Kg", "Mg", "T", "G", "k"} {
		t.Run(input, func(t *testing.T) {
			u, err := ParseUnit(input)
			var unknown *UnknownUnitError
			if !errors.As(err, &unknown) {
				t.Fatalf("ParseUnit(%q) = %s, %v; want UnknownUnitError", input, u, err)
			}
		})
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input string
		want  Category
	}{
		{"length", Length},
		{"Distance", Length},
		{"WEIGHT", Weight},
		{"mass", Weight},
		{"temp", Temperature},
		{"volume", Volume},
		{"area", Area},
		{"energy", Energy},
		{"power", Power},
	}
	for _, tt := range tests {
		got, err := ParseCategory(tt.input)
		if err != nil {
			t.Fatalf("ParseCategory(%q): %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseCategory(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}

	_, err := ParseCategory("currency")
	var unknown *UnknownCategoryError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownCategoryError, got %v", err)
	}
	if unknown.ErrorKind() != KindUser {
		t.Fatalf("expected typed category names to be user errors, got %q", unknown.ErrorKind())
	}
}

func TestCheckTablesPasses(t *testing.T) {
	if err := checkTables(); err != nil {
		t.Fatalf("checkTables: %v", err)
	}
}

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"  Fl  Oz ", "fl oz"},
		{"℃", "°c"},
		{"m²", "m2"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := normalizeKey(tt.input); got != tt.want {
			t.Errorf("normalizeKey(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
