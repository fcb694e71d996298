package temperature

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// =============================================================================
// Temperature
// =============================================================================

// Temperature is a magnitude on a particular scale.
type Temperature struct {
	Value float64
	Scale Scale
}

// In returns the equivalent temperature on the target scale.
// It panics if either scale is invalid.
func (t Temperature) In(target Scale) Temperature {
	if !target.Valid() {
		panic(fmt.Sprintf("temperature: invalid scale %d", int(target)))
	}
	if t.Scale == target {
		return t
	}
	for _, e := range t.Scale.variant().edges {
		if e.to == target {
			return Temperature{Value: e.convert(t.Value), Scale: target}
		}
	}
	panic(fmt.Sprintf("temperature: no conversion from %s to %s", t.Scale, target))
}

// String formats the temperature with the shortest exact value, e.g. "25°C".
// Very large and very small magnitudes use exponent notation ("1e+307K").
func (t Temperature) String() string {
	format := byte('f')
	if abs := math.Abs(t.Value); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		format = 'g'
	}
	return strconv.FormatFloat(t.Value, format, -1, 64) + t.Scale.Symbol()
}

// Display formats the value with a fixed number of decimals followed by the
// unit symbol, e.g. Display(2) on 298.15 K is "298.15K".
func (t Temperature) Display(precision int) string {
	return strconv.FormatFloat(t.Value, 'f', precision, 64) + t.Scale.Symbol()
}

// =============================================================================
// Conversion
// =============================================================================

// Conversion is the result of converting one reading into the other two scales.
type Conversion struct {
	Source  Temperature
	Derived [2]Temperature
}

// Readings returns the source reading followed by the derived readings.
func (c Conversion) Readings() []Temperature {
	return []Temperature{c.Source, c.Derived[0], c.Derived[1]}
}

// Get returns the reading on the given scale.
func (c Conversion) Get(s Scale) (Temperature, bool) {
	for _, r := range c.Readings() {
		if r.Scale == s {
			return r, true
		}
	}
	return Temperature{}, false
}

// Title describes the conversion for chart headings.
func (c Conversion) Title() string {
	return "Temperature Conversion from " + c.Source.String()
}

// ConvertTemperature converts t into the other two scales.
// It panics if t carries an invalid scale.
func ConvertTemperature(t Temperature) Conversion {
	v := t.Scale.variant()
	conv := Conversion{Source: t}
	for i, e := range v.edges {
		conv.Derived[i] = Temperature{Value: e.convert(t.Value), Scale: e.to}
	}
	return conv
}

// Convert resolves unit with ParseScale and converts value into the other two
// scales. An unrecognized unit yields an *UnrecognizedUnitError and no result.
func Convert(value float64, unit string) (Conversion, error) {
	s, err := ParseScale(unit)
	if err != nil {
		return Conversion{}, err
	}
	return ConvertTemperature(Temperature{Value: value, Scale: s}), nil
}

// ParseValue parses a temperature magnitude. Surrounding whitespace is
// ignored; NaN and infinities are rejected.
func ParseValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, &InvalidNumberError{Input: s, Err: err}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &InvalidNumberError{Input: s, Err: errNotFinite}
	}
	return v, nil
}
