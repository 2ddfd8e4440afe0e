package converter

import (
	"errors"
	"log/slog"

	"unitshift/internal/logging"
	"unitshift/internal/numparse"
	"unitshift/internal/units"
)

// Reading is one field of a category form: a unit and its formatted value.
type Reading struct {
	Unit   units.Unit `json:"-"`
	Symbol string     `json:"unit"`
	Name   string     `json:"name"`
	Value  string     `json:"value"`
	Source bool       `json:"source,omitempty"`
}

// Engine composes the value parser, the converter, and the formatting policy
// behind the query surface consumed by form front ends.
type Engine struct {
	logger    *slog.Logger
	precision int
	strict    bool
}

// Option configures an Engine (Functional Option Pattern).
type Option func(*Engine)

// WithLogger sets the logger used to report contract violations.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithPrecision sets the number of fractional digits kept in results.
// Values outside [0, MaxPrecision] are clamped.
func WithPrecision(precision int) Option {
	return func(e *Engine) {
		e.precision = clampPrecision(precision)
	}
}

// WithStrict makes contract violations panic after they are logged, so wiring
// bugs crash loudly during development.
func WithStrict(strict bool) Option {
	return func(e *Engine) {
		e.strict = strict
	}
}

// NewEngine builds an Engine with DefaultPrecision and a no-op logger unless
// options say otherwise.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		logger:    logging.NewNop(),
		precision: DefaultPrecision,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = logging.NewComponentLogger(e.logger, "converter")
	return e
}

// Precision returns the configured number of fractional digits.
func (e *Engine) Precision() int {
	return e.precision
}

// Categories lists every category in display order.
func (e *Engine) Categories() []units.Category {
	return units.Categories()
}

// UnitsOf lists the units of c in display order.
func (e *Engine) UnitsOf(c units.Category) ([]units.Unit, error) {
	list, err := units.UnitsOf(c)
	if err != nil {
		return nil, e.violation(err, c)
	}
	return list, nil
}

// DisplayNameOf returns the human-readable label of u within c.
func (e *Engine) DisplayNameOf(c units.Category, u units.Unit) (string, error) {
	name, err := units.DisplayNameOf(c, u)
	if err != nil {
		return "", e.violation(err, c)
	}
	return name, nil
}

// Convert parses raw and converts it from one unit to another within c.
//
// Empty input means there is nothing to convert yet: Convert returns "" and
// a nil error. Malformed input returns *numparse.InvalidNumberError, which is
// safe to show inline. Units outside c return *CategoryMismatchError; the
// violation is logged at error level and panics in strict mode.
func (e *Engine) Convert(raw string, from, to units.Unit, c units.Category) (string, error) {
	fromSpec, toSpec, err := specs(from, to, c)
	if err != nil {
		return "", e.violation(err, c)
	}
	v, err := numparse.Parse(raw)
	if errors.Is(err, numparse.ErrEmpty) {
		return "", nil
	}
	if err != nil {
		e.logger.Debug("rejected input", logging.String("input", raw), logging.Error(err))
		return "", err
	}
	if from == to {
		return FormatExact(v), nil
	}
	result := apply(v, fromSpec, toSpec)
	if !finite(result) {
		return "", &numparse.InvalidNumberError{Input: raw, Reason: "result out of range"}
	}
	return Format(result, e.precision), nil
}

// Siblings converts raw, typed into the from field, into every unit of c in
// display order. This is the "one keystroke repopulates the whole form"
// flow. The source unit echoes the parsed input exactly. Empty input yields
// readings with empty values so a form can clear its fields.
func (e *Engine) Siblings(raw string, from units.Unit, c units.Category) ([]Reading, error) {
	list, err := units.UnitsOf(c)
	if err != nil {
		return nil, e.violation(err, c)
	}
	if err := units.Check(c, from); err != nil {
		return nil, e.violation(&CategoryMismatchError{Category: c, From: from, To: from, Err: err}, c)
	}

	readings := make([]Reading, 0, len(list))
	for _, u := range list {
		value, err := e.Convert(raw, from, u, c)
		if err != nil {
			return nil, err
		}
		readings = append(readings, Reading{
			Unit:   u,
			Symbol: u.Symbol(),
			Name:   u.Name(),
			Value:  value,
			Source: u == from,
		})
	}
	return readings, nil
}

func (e *Engine) violation(err error, c units.Category) error {
	logging.ErrorWithContext(e.logger, "conversion contract violated", "category_mismatch",
		logging.String(logging.FieldCategory, c.String()),
		logging.String(logging.FieldErrorHint, "request only units listed by UnitsOf for the selected category"),
		logging.Error(err),
	)
	if e.strict {
		panic(err)
	}
	return err
}
