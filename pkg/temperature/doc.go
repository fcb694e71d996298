// Package temperature converts magnitudes between the Celsius, Fahrenheit
// and Kelvin scales.
//
// This package contains:
//   - The six affine conversion formulas (CelsiusToFahrenheit, ...)
//   - The Scale enumeration and its variant table
//   - Temperature and Conversion value types
//   - Input parsing (ParseValue, ParseScale) and its two error kinds
//
// Everything here is pure and safe for concurrent use. Rendering and
// prompting live in the CLI packages.
package temperature
