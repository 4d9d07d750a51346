package domain

import "strings"

// LocalCurrency is the currency every display rate is expressed in.
const LocalCurrency = "RUB"

// Currency describes a foreign currency the desk is willing to display.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // e.g., "USD"
	Name         string `json:"name"`         // e.g., "Доллар США"
	Flag         string `json:"flag"`         // e.g., "🇺🇸"
}

// currencyCatalog is the static code -> (name, flag) table. Its order is the
// order of every snapshot built from it.
var currencyCatalog = []Currency{
	{CurrencyCode: "USD", Name: "Доллар США", Flag: "🇺🇸"},
	{CurrencyCode: "EUR", Name: "Евро", Flag: "🇪🇺"},
	{CurrencyCode: "AED", Name: "Дирхам ОАЭ", Flag: "🇦🇪"},
	{CurrencyCode: "GBP", Name: "Фунт стерлингов", Flag: "🇬🇧"},
	{CurrencyCode: "JPY", Name: "Японская иена", Flag: "🇯🇵"},
	{CurrencyCode: "CNY", Name: "Китайский юань", Flag: "🇨🇳"},
	{CurrencyCode: "CHF", Name: "Швейцарский франк", Flag: "🇨🇭"},
	{CurrencyCode: "CAD", Name: "Канадский доллар", Flag: "🇨🇦"},
	{CurrencyCode: "AUD", Name: "Австралийский доллар", Flag: "🇦🇺"},
	{CurrencyCode: "KRW", Name: "Южнокорейская вона", Flag: "🇰🇷"},
	{CurrencyCode: "TRY", Name: "Турецкая лира", Flag: "🇹🇷"},
	{CurrencyCode: "INR", Name: "Индийская рупия", Flag: "🇮🇳"},
	{CurrencyCode: "BYN", Name: "Белорусский рубль", Flag: "🇧🇾"},
	{CurrencyCode: "KZT", Name: "Казахстанский тенге", Flag: "🇰🇿"},
	{CurrencyCode: "UZS", Name: "Узбекский сум", Flag: "🇺🇿"},
}

var catalogIndex = func() map[string]int {
	idx := make(map[string]int, len(currencyCatalog))
	for i, c := range currencyCatalog {
		idx[c.CurrencyCode] = i
	}
	return idx
}()

// SupportedCurrencies returns a copy of the static catalog in display order.
func SupportedCurrencies() []Currency {
	out := make([]Currency, len(currencyCatalog))
	copy(out, currencyCatalog)
	return out
}

// LookupCurrency finds a catalog entry by code, ignoring case.
func LookupCurrency(code string) (Currency, bool) {
	i, ok := catalogIndex[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return Currency{}, false
	}
	return currencyCatalog[i], true
}

// IsSupportedCurrency reports whether code is in the static catalog.
func IsSupportedCurrency(code string) bool {
	_, ok := LookupCurrency(code)
	return ok
}
