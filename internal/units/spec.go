package units

import "fmt"

// SpecKind tags the variant held by a ConversionSpec.
type SpecKind uint8

const (
	// Linear specs scale by a single positive factor: base = value * factor.
	Linear SpecKind = iota + 1
	// Affine specs carry an explicit pair of inverse functions. Only
	// temperature uses them.
	Affine
)

func (k SpecKind) String() string {
	switch k {
	case Linear:
		return "linear"
	case Affine:
		return "affine"
	default:
		return fmt.Sprintf("SpecKind(%d)", uint8(k))
	}
}

// ConversionSpec describes how a unit relates to its category's base unit.
// It is a closed variant: construct it with LinearSpec or AffineSpec.
type ConversionSpec struct {
	kind     SpecKind
	factor   float64
	toBase   func(float64) float64
	fromBase func(float64) float64
}

// LinearSpec returns a spec where base = value * factorToBase.
func LinearSpec(factorToBase float64) ConversionSpec {
	return ConversionSpec{kind: Linear, factor: factorToBase}
}

// AffineSpec returns a spec backed by an explicit inverse function pair.
func AffineSpec(toBase, fromBase func(float64) float64) ConversionSpec {
	return ConversionSpec{kind: Affine, toBase: toBase, fromBase: fromBase}
}

// Kind reports which variant the spec holds.
func (s ConversionSpec) Kind() SpecKind {
	return s.kind
}

// Factor returns the multiplicative factor of a linear spec. ok is false for
// affine specs.
func (s ConversionSpec) Factor() (factor float64, ok bool) {
	if s.kind != Linear {
		return 0, false
	}
	return s.factor, true
}

// ToBase converts v, expressed in the spec's unit, to the base unit.
func (s ConversionSpec) ToBase(v float64) float64 {
	switch s.kind {
	case Linear:
		return v * s.factor
	case Affine:
		return s.toBase(v)
	}
	panic(fmt.Sprintf("units: conversion spec has no kind (%d)", s.kind))
}

// FromBase converts v, expressed in the base unit, to the spec's unit.
func (s ConversionSpec) FromBase(v float64) float64 {
	switch s.kind {
	case Linear:
		return v / s.factor
	case Affine:
		return s.fromBase(v)
	}
	panic(fmt.Sprintf("units: conversion spec has no kind (%d)", s.kind))
}

// identity reports whether the spec leaves values unchanged. Affine pairs are
// probed at a handful of points since functions cannot be compared.
func (s ConversionSpec) identity() bool {
	switch s.kind {
	case Linear:
		return s.factor == 1
	case Affine:
		for _, probe := range []float64{-40, 0, 1, 100, 273.15} {
			if s.toBase(probe) != probe || s.fromBase(probe) != probe {
				return false
			}
		}
		return true
	}
	return false
}
