package converter

import (
	"math"
	"strconv"
	"strings"
)

// DefaultPrecision is the number of fractional digits kept in formatted
// results before trailing zeros are trimmed.
const DefaultPrecision = 6

// MaxPrecision bounds the precision accepted by Format.
const MaxPrecision = 12

// maxFractionDigits caps the decimals written for tiny magnitudes. Values
// below 1e-40 print as "0".
const maxFractionDigits = 40

// Format renders v in fixed-point notation, trimming trailing zeros and a
// dangling decimal point. Magnitudes of 1 or more keep precision fractional
// digits; smaller magnitudes keep precision significant digits, so 4e-7
// prints as "0.0000004" rather than "0". Results never use scientific
// notation and a rounded negative zero prints as "0".
func Format(v float64, precision int) string {
	precision = clampPrecision(precision)
	return trim(strconv.FormatFloat(v, 'f', fractionDigits(v, precision), 64))
}

// fractionDigits adds one decimal per leading zero after the point when
// |v| < 1.
func fractionDigits(v float64, precision int) int {
	abs := math.Abs(v)
	if precision == 0 || abs == 0 || abs >= 1 || !finite(v) {
		return precision
	}
	leadingZeros := -int(math.Floor(math.Log10(abs))) - 1
	return min(precision+leadingZeros, maxFractionDigits)
}

// FormatExact renders the shortest representation that parses back to v
// exactly, still without scientific notation.
func FormatExact(v float64) string {
	return trim(strconv.FormatFloat(v, 'f', -1, 64))
}

func clampPrecision(precision int) int {
	switch {
	case precision < 0:
		return 0
	case precision > MaxPrecision:
		return MaxPrecision
	default:
		return precision
	}
}

func trim(s string) string {
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}

// finite reports whether v can be displayed.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
