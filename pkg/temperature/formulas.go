package temperature

// absoluteZeroCelsius is 0 K expressed in degrees Celsius.
const absoluteZeroCelsius = 273.15

// CelsiusToFahrenheit converts degrees Celsius to degrees Fahrenheit.
func CelsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}

// CelsiusToKelvin converts degrees Celsius to kelvin.
func CelsiusToKelvin(c float64) float64 {
	return c + absoluteZeroCelsius
}

// FahrenheitToCelsius converts degrees Fahrenheit to degrees Celsius.
func FahrenheitToCelsius(f float64) float64 {
	return (f - 32) * 5 / 9
}

// FahrenheitToKelvin converts degrees Fahrenheit to kelvin.
func FahrenheitToKelvin(f float64) float64 {
	return (f-32)*5/9 + absoluteZeroCelsius
}

// KelvinToCelsius converts kelvin to degrees Celsius.
func KelvinToCelsius(k float64) float64 {
	return k - absoluteZeroCelsius
}

// KelvinToFahrenheit converts kelvin to degrees Fahrenheit.
func KelvinToFahrenheit(k float64) float64 {
	return (k-absoluteZeroCelsius)*9/5 + 32
}
