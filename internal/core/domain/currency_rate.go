package domain

import (
	"strings"
	"time"
)

// CurrencyRate is the price of one unit of Code expressed in the local currency.
type CurrencyRate struct {
	Code string  `json:"code"`
	Name string  `json:"name"`
	Rate float64 `json:"rate"` // always > 0
	Flag string  `json:"flag"`
}

// SnapshotSource tells where a snapshot's rates came from.
type SnapshotSource string

const (
	SourceLive     SnapshotSource = "live"
	SourceFallback SnapshotSource = "fallback"
)

// Snapshot is the complete set of rates produced by one fetch. It is replaced,
// never mutated.
type Snapshot struct {
	Rates     []CurrencyRate `json:"rates"`
	Source    SnapshotSource `json:"source"`
	FetchedAt time.Time      `json:"fetchedAt"`
}

// IsFallback reports whether the snapshot is the static fallback table.
func (s Snapshot) IsFallback() bool {
	return s.Source == SourceFallback
}

// Lookup returns the entry for code, ignoring case.
func (s Snapshot) Lookup(code string) (CurrencyRate, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, r := range s.Rates {
		if r.Code == code {
			return r, true
		}
	}
	return CurrencyRate{}, false
}

// Codes lists the currency codes in snapshot order.
func (s Snapshot) Codes() []string {
	codes := make([]string, len(s.Rates))
	for i, r := range s.Rates {
		codes[i] = r.Code
	}
	return codes
}

// RateQuotes is a raw response from a rate source: 1 Base = Rates[code] code.
type RateQuotes struct {
	Base  string
	Date  string
	Rates map[string]float64
}

// fallbackRates are known-stale but plausible rates shown when the live
// fetch fails.
var fallbackRates = []struct {
	Code string
	Rate float64
}{
	{"USD", 95.50},
	{"EUR", 103.20},
	{"AED", 26.00},
	{"GBP", 119.80},
	{"JPY", 0.64},
	{"CNY", 13.20},
	{"CHF", 107.30},
	{"CAD", 70.40},
}

// FallbackSnapshot builds a fresh copy of the fallback table.
func FallbackSnapshot(now time.Time) Snapshot {
	rates := make([]CurrencyRate, 0, len(fallbackRates))
	for _, fr := range fallbackRates {
		c, _ := LookupCurrency(fr.Code)
		rates = append(rates, CurrencyRate{
			Code: fr.Code,
			Name: c.Name,
			Rate: fr.Rate,
			Flag: c.Flag,
		})
	}
	return Snapshot{
		Rates:     rates,
		Source:    SourceFallback,
		FetchedAt: now,
	}
}

// Conversion is the result of converting Amount of Code into LocalCurrency.
type Conversion struct {
	Code          string  `json:"code"`
	Amount        float64 `json:"amount"`
	Rate          float64 `json:"rate"`
	Result        float64 `json:"result"`
	LocalCurrency string  `json:"localCurrency"`
}
