package converter_test

import (
	"errors"
	"math"
	"testing"

	"unitshift/internal/converter"
	"unitshift/internal/units"
)

var sampleValues = []float64{-1234.5, -40, -1, -0.001, 0, 0.000123, 1, 3.14159, 100, 98765.4321, 1e9}

func allPairs(t *testing.T, c units.Category, fn func(a, b units.Unit)) {
	t.Helper()
	list, err := units.UnitsOf(c)
	if err != nil {
		t.Fatalf("UnitsOf(%s): %v", c, err)
	}
	for _, a := range list {
		for _, b := range list {
			fn(a, b)
		}
	}
}

func TestValueIdentityIsExact(t *testing.T) {
	for _, c := range units.Categories() {
		list, _ := units.UnitsOf(c)
		for _, u := range list {
			for _, v := range append(sampleValues, 0.1+0.2, math.Pi*1e-7) {
				got, err := converter.Value(v, u, u, c)
				if err != nil {
					t.Fatalf("Value(%v, %s, %s): %v", v, u, u, err)
				}
				if got != v {
					t.Fatalf("identity drifted for %s: got %v want %v", u, got, v)
				}
			}
		}
	}
}

func TestValueRoundTrip(t *testing.T) {
	for _, c := range units.Categories() {
		c := c
		t.Run(c.String(), func(t *testing.T) {
			allPairs(t, c, func(a, b units.Unit) {
				for _, v := range sampleValues {
					there, err := converter.Value(v, a, b, c)
					if err != nil {
						t.Fatalf("Value(%v, %s, %s): %v", v, a, b, err)
					}
					back, err := converter.Value(there, b, a, c)
					if err != nil {
						t.Fatalf("Value(%v, %s, %s): %v", there, b, a, err)
					}
					if c == units.Temperature {
						// Affine hops mix offsets with scaling, so allow an
						// absolute slack as well as a relative one.
						if math.Abs(back-v) > 1e-9*math.Max(1, math.Abs(v)) {
							t.Errorf("%s->%s->%s: %v became %v", a, b, a, v, back)
						}
						continue
					}
					if v == 0 {
						if back != 0 {
							t.Errorf("%s->%s->%s: 0 became %v", a, b, a, back)
						}
						continue
					}
					if rel := math.Abs(back-v) / math.Abs(v); rel > 1e-9 {
						t.Errorf("%s->%s->%s: %v became %v (rel %g)", a, b, a, v, back, rel)
					}
				}
			})
		})
	}
}

func TestValueMonotonic(t *testing.T) {
	for _, c := range units.Categories() {
		allPairs(t, c, func(a, b units.Unit) {
			for i := 1; i < len(sampleValues); i++ {
				lo, err := converter.Value(sampleValues[i-1], a, b, c)
				if err != nil {
					t.Fatalf("Value: %v", err)
				}
				hi, err := converter.Value(sampleValues[i], a, b, c)
				if err != nil {
					t.Fatalf("Value: %v", err)
				}
				if !(lo < hi) {
					t.Errorf("%s->%s not increasing: f(%v)=%v, f(%v)=%v", a, b, sampleValues[i-1], lo, sampleValues[i], hi)
				}
			}
		})
	}
}

func TestValueKnownVectors(t *testing.T) {
	tests := []struct {
		value    float64
		from, to units.Unit
		category units.Category
		want     float64
	}{
		{1, units.Kilometer, units.Meter, units.Length, 1000},
		{12, units.Inch, units.Foot, units.Length, 1},
		{1, units.Mile, units.Foot, units.Length, 5280},
		{1, units.Pound, units.Ounce, units.Weight, 16},
		{1, units.Stone, units.Pound, units.Weight, 14},
		{1, units.Gallon, units.Quart, units.Volume, 4},
		{1, units.Hectare, units.SquareMeter, units.Area, 10000},
		{1, units.KilowattHour, units.Kilojoule, units.Energy, 3600},
		{1, units.Kilocalorie, units.Calorie, units.Energy, 1000},
		{1, units.Megawatt, units.Kilowatt, units.Power, 1000},
		{0, units.Celsius, units.Fahrenheit, units.Temperature, 32},
		{100, units.Celsius, units.Fahrenheit, units.Temperature, 212},
		{-40, units.Fahrenheit, units.Celsius, units.Temperature, -40},
		{0, units.Kelvin, units.Celsius, units.Temperature, -273.15},
		{0, units.Rankine, units.Kelvin, units.Temperature, 0},
	}
	for _, tt := range tests {
		got, err := converter.Value(tt.value, tt.from, tt.to, tt.category)
		if err != nil {
			t.Fatalf("Value(%v %s -> %s): %v", tt.value, tt.from, tt.to, err)
		}
		if math.Abs(got-tt.want) > 1e-9*math.Max(1, math.Abs(tt.want)) {
			t.Errorf("Value(%v %s -> %s) = %v, want %v", tt.value, tt.from, tt.to, got, tt.want)
		}
	}
}

func TestValueRejectsForeignUnits(t *testing.T) {
	_, err := converter.Value(1, units.Meter, units.Kilogram, units.Length)
	var mismatch *converter.CategoryMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected CategoryMismatchError, got %v", err)
	}
	var notIn *units.UnitNotInCategoryError
	if !errors.As(err, &notIn) {
		t.Fatalf("expected UnitNotInCategoryError in chain, got %v", err)
	}
	if notIn.Unit != units.Kilogram {
		t.Fatalf("expected kilogram to be reported, got %s", notIn.Unit)
	}
	if converter.IsUserError(err) {
		t.Fatal("category mismatch must not be classified as a user error")
	}

	// Same unit still has to belong to the category.
	if _, err := converter.Value(1, units.Kilogram, units.Kilogram, units.Length); !errors.As(err, &mismatch) {
		t.Fatalf("expected mismatch for identity outside category, got %v", err)
	}

	_, err = converter.Value(1, units.Meter, units.Meter, units.Category(0))
	var unknown *units.UnknownCategoryError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownCategoryError in chain, got %v", err)
	}
}
