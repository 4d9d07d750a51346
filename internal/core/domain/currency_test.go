package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/fx_desk/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportedCurrencies_OrderAndSize(t *testing.T) {
	currencies := domain.SupportedCurrencies()
	require.Len(t, currencies, 15)
	assert.Equal(t, "USD", currencies[0].CurrencyCode)
	assert.Equal(t, "UZS", currencies[len(currencies)-1].CurrencyCode)

	seen := make(map[string]bool)
	for _, c := range currencies {
		assert.False(t, seen[c.CurrencyCode], "duplicate code %s", c.CurrencyCode)
		seen[c.CurrencyCode] = true
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Flag)
	}
}

func TestSupportedCurrencies_ReturnsCopy(t *testing.T) {
	currencies := domain.SupportedCurrencies()
	currencies[0].Name = "changed"

	c, ok := domain.LookupCurrency("USD")
	require.True(t, ok)
	assert.Equal(t, "Доллар США", c.Name)
}

func TestLookupCurrency(t *testing.T) {
	tests := []struct {
		name string
		code string
		want bool
	}{
		{name: "upper case", code: "EUR", want: true},
		{name: "lower case with spaces", code: " gbp ", want: true},
		{name: "local currency is not listed", code: "RUB", want: false},
		{name: "unknown", code: "XXX", want: false},
		{name: "empty", code: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := domain.LookupCurrency(tt.code)
			assert.Equal(t, tt.want, ok)
			assert.Equal(t, tt.want, domain.IsSupportedCurrency(tt.code))
		})
	}
}

func TestFallbackSnapshot(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	snap := domain.FallbackSnapshot(now)

	assert.True(t, snap.IsFallback())
	assert.Equal(t, now, snap.FetchedAt)
	assert.Equal(t, []string{"USD", "EUR", "AED", "GBP", "JPY", "CNY", "CHF", "CAD"}, snap.Codes())

	usd, ok := snap.Lookup("usd")
	require.True(t, ok)
	assert.Equal(t, 95.50, usd.Rate)
	assert.Equal(t, "Доллар США", usd.Name)
	assert.Equal(t, "🇺🇸", usd.Flag)

	for _, r := range snap.Rates {
		assert.Greater(t, r.Rate, 0.0, r.Code)
		assert.True(t, domain.IsSupportedCurrency(r.Code), r.Code)
	}
}

func TestFallbackSnapshot_IndependentCopies(t *testing.T) {
	first := domain.FallbackSnapshot(time.Now())
	first.Rates[0].Rate = 1

	second := domain.FallbackSnapshot(time.Now())
	assert.Equal(t, 95.50, second.Rates[0].Rate)
}

func TestSnapshot_LookupMissing(t *testing.T) {
	snap := domain.Snapshot{Rates: []domain.CurrencyRate{{Code: "USD", Rate: 90}}}

	_, ok := snap.Lookup("EUR")
	assert.False(t, ok)
	assert.False(t, snap.IsFallback())
}
