// Package numparse validates and parses the raw numeric text typed into a
// conversion field.
//
// The grammar is deliberately narrow: an optional leading minus sign, digits,
// and at most one decimal point. Exponents, thousands separators, and a
// leading plus sign are rejected so that what the user sees is exactly what is
// converted. An empty field is reported with ErrEmpty rather than a parse
// error, since clearing a field before typing a new value is the common state
// of a form and should not surface as a mistake.
package numparse
