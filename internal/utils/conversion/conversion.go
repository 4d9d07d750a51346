// Package conversion holds the money arithmetic shared by the rate provider
// and the calculator.
package conversion

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// MoneyPlaces is the number of decimal places every displayed amount keeps.
const MoneyPlaces = 2

// RoundTo rounds value to the given number of decimal places, half away from
// zero, the way round(value*10^places)/10^places does on floats. The scaled
// float is rounded, so 1.005 (stored as 1.00499...) rounds to 1.
// Non-finite values are returned unchanged.
func RoundTo(value float64, places int32) float64 {
	if !isFinite(value) {
		return value
	}
	scaled := value * math.Pow10(int(places))
	if !isFinite(scaled) {
		return value
	}
	return decimal.NewFromFloat(scaled).Round(0).Shift(-places).InexactFloat64()
}

// Convert returns amount*rate rounded to MoneyPlaces.
// Example: Convert(2.5, 100) returns 250
// Example: Convert(10, 95.5) returns 955
func Convert(amount, rate float64) float64 {
	return RoundTo(amount*rate, MoneyPlaces)
}

// Reciprocal returns 1/quote rounded to MoneyPlaces. ok is false when quote
// is not a positive finite number.
func Reciprocal(quote float64) (rate float64, ok bool) {
	if !isFinite(quote) || quote <= 0 {
		return 0, false
	}
	return RoundTo(1/quote, MoneyPlaces), true
}

// ParseAmount coerces user-entered amount text to a number. Blank, invalid and
// non-finite input yields 0. A comma is accepted as the decimal separator.
func ParseAmount(text string) float64 {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}
	text = strings.ReplaceAll(text, " ", "")
	text = strings.Replace(text, ",", ".", 1)
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || !isFinite(v) {
		return 0
	}
	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
