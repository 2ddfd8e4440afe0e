// Package converter maps a value from one unit to another unit of the same
// category.
//
// Every conversion is routed through the category's base unit: linear units
// multiply by their factor on the way in and divide on the way out, while
// temperature units apply their affine pair with Celsius as the pivot. The
// numeric core (Value) is a pure function and never sees strings; Engine
// composes it with the value parser and the formatting policy to give form
// consumers ready-to-display text.
//
// Nothing here holds mutable state. An Engine may be shared freely between
// goroutines and identical inputs always produce identical output.
package converter
