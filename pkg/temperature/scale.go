package temperature

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// =============================================================================
// Scale
// =============================================================================

// Scale identifies a temperature scale. The zero value means "unset" and is
// never returned by ParseScale.
type Scale int

// Supported scales.
const (
	Celsius Scale = iota + 1
	Fahrenheit
	Kelvin
)

// edge is a conversion out of a scale into another one.
type edge struct {
	to      Scale
	convert func(float64) float64
	formula string
}

// variant is one row of the scale table: the scale's labels and its two
// outgoing conversions, in the order the derived readings are reported.
type variant struct {
	name   string
	abbrev string
	symbol string
	edges  [2]edge
}

var variants = [...]variant{
	Celsius: {
		name:   "Celsius",
		abbrev: "C",
		symbol: "°C",
		edges: [2]edge{
			{to: Fahrenheit, convert: CelsiusToFahrenheit, formula: "F = C * 9/5 + 32"},
			{to: Kelvin, convert: CelsiusToKelvin, formula: "K = C + 273.15"},
		},
	},
	Fahrenheit: {
		name:   "Fahrenheit",
		abbrev: "F",
		symbol: "°F",
		edges: [2]edge{
			{to: Celsius, convert: FahrenheitToCelsius, formula: "C = (F - 32) * 5/9"},
			{to: Kelvin, convert: FahrenheitToKelvin, formula: "K = (F - 32) * 5/9 + 273.15"},
		},
	},
	Kelvin: {
		name:   "Kelvin",
		abbrev: "K",
		symbol: "K",
		edges: [2]edge{
			{to: Celsius, convert: KelvinToCelsius, formula: "C = K - 273.15"},
			{to: Fahrenheit, convert: KelvinToFahrenheit, formula: "F = (K - 273.15) * 9/5 + 32"},
		},
	},
}

// labels maps every accepted unit label, case folded, to its scale.
var labels = func() map[string]Scale {
	m := make(map[string]Scale, 2*len(variants))
	fold := cases.Fold()
	for _, s := range Scales() {
		v := variants[s]
		m[fold.String(v.name)] = s
		m[fold.String(v.abbrev)] = s
	}
	return m
}()

// Scales returns the supported scales in declaration order.
func Scales() []Scale {
	return []Scale{Celsius, Fahrenheit, Kelvin}
}

// ParseScale resolves a unit label to a Scale. Matching ignores case and
// surrounding whitespace and accepts the full name or the one-letter
// abbreviation ("celsius"/"c", "fahrenheit"/"f", "kelvin"/"k").
func ParseScale(unit string) (Scale, error) {
	key := cases.Fold().String(strings.TrimSpace(unit))
	if s, ok := labels[key]; ok {
		return s, nil
	}
	return 0, &UnrecognizedUnitError{Unit: unit}
}

// Valid reports whether s is one of the supported scales.
func (s Scale) Valid() bool {
	return s >= Celsius && s <= Kelvin
}

// Name returns the full scale name, e.g. "Celsius".
func (s Scale) Name() string {
	return s.variant().name
}

// Abbrev returns the one-letter abbreviation, e.g. "C".
func (s Scale) Abbrev() string {
	return s.variant().abbrev
}

// Symbol returns the unit symbol, e.g. "°C" or "K".
func (s Scale) Symbol() string {
	return s.variant().symbol
}

// Labels returns the unit labels ParseScale accepts for s, lowercase.
func (s Scale) Labels() []string {
	v := s.variant()
	return []string{strings.ToLower(v.name), strings.ToLower(v.abbrev)}
}

// Formulas describes the conversions out of s, e.g. "K = C + 273.15".
func (s Scale) Formulas() []string {
	v := s.variant()
	return []string{v.edges[0].formula, v.edges[1].formula}
}

// String returns the scale name, or Scale(n) for values outside the enumeration.
func (s Scale) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Scale(%d)", int(s))
	}
	return s.Name()
}

// MarshalText encodes the scale as its lowercase name.
func (s Scale) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("temperature: cannot marshal %s", s)
	}
	return []byte(strings.ToLower(s.Name())), nil
}

// UnmarshalText decodes any label accepted by ParseScale. Empty input
// leaves the scale unset.
func (s *Scale) UnmarshalText(text []byte) error {
	if strings.TrimSpace(string(text)) == "" {
		*s = 0
		return nil
	}
	parsed, err := ParseScale(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s Scale) variant() variant {
	if !s.Valid() {
		panic(fmt.Sprintf("temperature: invalid scale %d", int(s)))
	}
	return variants[s]
}
