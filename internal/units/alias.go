package units

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Index maps built at init time from the tables. Symbols are indexed twice:
// once as written, and once folded for input typed in another case.
var (
	unitBySymbol  map[string]Unit
	unitByKey     map[string]Unit
	symbolOnly    map[string]bool
	categoryByKey map[string]Category
)

func buildIndexes() {
	unitBySymbol = make(map[string]Unit, unitCount)
	unitByKey = make(map[string]Unit, unitCount*4)
	symbolOnly = make(map[string]bool, unitCount)
	for u := Millimeter; u.Valid(); u++ {
		entry := unitTable[u]
		addKey(unitBySymbol, symbolKey(entry.symbol), u)
		key := normalizeKey(entry.symbol)
		addKey(unitByKey, key, u)
		symbolOnly[key] = true
	}
	for u := Millimeter; u.Valid(); u++ {
		entry := unitTable[u]
		for _, name := range append([]string{entry.name, entry.name + "s"}, entry.aliases...) {
			key := normalizeKey(name)
			addKey(unitByKey, key, u)
			delete(symbolOnly, key)
		}
	}

	categoryByKey = make(map[string]Category, categoryCount*2)
	for _, c := range categoryOrder {
		entry := categoryTable[c]
		for _, key := range append([]string{entry.name}, entry.aliases...) {
			addKey(categoryByKey, normalizeKey(key), c)
		}
	}
}

func addKey[T comparable](index map[string]T, key string, value T) {
	if key == "" {
		return
	}
	if prev, ok := index[key]; ok && prev != value {
		panic(fmt.Sprintf("units: key %q maps to both %v and %v", key, prev, value))
	}
	index[key] = value
}

// symbolKey applies Unicode compatibility normalization (℃, superscript
// digits, full-width letters) and collapses inner whitespace, keeping case.
func symbolKey(value string) string {
	value = norm.NFKC.String(strings.TrimSpace(value))
	return strings.Join(strings.Fields(value), " ")
}

// normalizeKey is symbolKey plus case folding, used for names and aliases.
func normalizeKey(value string) string {
	return symbolKey(cases.Fold().String(symbolKey(value)))
}

// prefixLetters are leading symbol letters whose other case names a
// different prefix or unit: m/M milli/mega, k/K kilo/kelvin, g/G gram/giga,
// t/T tonne/tera, p/P pico/peta.
const prefixLetters = "mkgtp"

// caseCompatible reports whether input may be read as symbol despite a case
// difference. "mW" is not "MW" and "Mm" is not "mm"; all-caps input of two
// or more letters such as "KG" is accepted.
func caseCompatible(input, symbol string) bool {
	in, _ := utf8.DecodeRuneInString(input)
	sym, _ := utf8.DecodeRuneInString(symbol)
	if in == sym {
		return true
	}
	if utf8.RuneCountInString(input) > 1 && !strings.ContainsFunc(input, unicode.IsLower) {
		return true
	}
	return !strings.ContainsRune(prefixLetters, unicode.ToLower(sym))
}

// ParseUnit resolves a symbol, name, or alias to a unit. Symbols match as
// written first; names and aliases ignore case, so "°C", "℃", and "celsius"
// all resolve to Celsius and "m3" resolves to CubicMeter. A symbol typed in
// another case is rejected when the case change alters an SI prefix.
func ParseUnit(value string) (Unit, error) {
	if u, ok := unitBySymbol[symbolKey(value)]; ok {
		return u, nil
	}
	key := normalizeKey(value)
	if u, ok := unitByKey[key]; ok {
		if !symbolOnly[key] || caseCompatible(symbolKey(value), u.Symbol()) {
			return u, nil
		}
	}
	return 0, &UnknownUnitError{Input: value}
}

// ParseCategory resolves a category name or alias such as "mass".
func ParseCategory(value string) (Category, error) {
	if c, ok := categoryByKey[normalizeKey(value)]; ok {
		return c, nil
	}
	return 0, &UnknownCategoryError{Input: value}
}
