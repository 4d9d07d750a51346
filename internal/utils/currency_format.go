package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var displayLanguage = language.Russian

// FormatMoney formats an amount for display with locale digit grouping and
// exactly two fraction digits.
// Example: 12345.5 returns "12 345,50" (grouped with a no-break space)
func FormatMoney(amount float64) string {
	return FormatMoneyIn(displayLanguage, amount)
}

// FormatMoneyIn is FormatMoney for an explicit language.
func FormatMoneyIn(tag language.Tag, amount float64) string {
	p := message.NewPrinter(tag)
	return p.Sprint(number.Decimal(amount, number.Scale(2)))
}
