// Package units holds the immutable registry of measurement categories and
// the units that belong to them.
//
// Each category (length, weight, temperature, volume, area, energy, power)
// owns an ordered list of units and exactly one base unit. Every unit carries
// a ConversionSpec describing how to reach that base: a single multiplicative
// factor for most categories, or an affine pair of functions for temperature,
// which pivots through Celsius.
//
// The tables are built once at package initialisation and never change, so
// every lookup here is safe for concurrent use without locking. Consumers
// should discover units through UnitsOf rather than iterating the enum values
// directly, because UnitsOf carries the display order used to lay out input
// fields.
package units
