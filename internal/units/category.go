package units

import "fmt"

// Category is a physical quantity class that units are grouped under.
// The zero value is not a valid category.
type Category uint8

const (
	Length Category = iota + 1
	Weight
	Temperature
	Volume
	Area
	Energy
	Power

	categoryCount = int(Power) + 1
)

// Valid reports whether c is one of the closed set of categories.
func (c Category) Valid() bool {
	return c >= Length && c <= Power
}

// String returns the display name of the category.
func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", uint8(c))
	}
	return categoryTable[c].name
}
