package services_test

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/SscSPs/fx_desk/internal/apperrors"
	"github.com/SscSPs/fx_desk/internal/core/domain"
	"github.com/SscSPs/fx_desk/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock RateSource ---
type MockRateSource struct {
	mock.Mock
}

func (m *MockRateSource) FetchQuotes(ctx context.Context, base string) (*domain.RateQuotes, error) {
	args := m.Called(ctx, base)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateQuotes), args.Error(1)
}

// --- Test Suite ---
type RateProviderTestSuite struct {
	suite.Suite
	mockSource *MockRateSource
	provider   *services.RateProvider
	now        time.Time
}

func (suite *RateProviderTestSuite) SetupTest() {
	suite.mockSource = new(MockRateSource)
	suite.now = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	suite.provider = services.NewRateProvider(suite.mockSource,
		services.WithClock(func() time.Time { return suite.now }))
}

func quotes(rates map[string]float64) *domain.RateQuotes {
	return &domain.RateQuotes{Base: "RUB", Date: "2024-03-01", Rates: rates}
}

// --- Test Cases ---

func (suite *RateProviderTestSuite) TestFetchRates_ReciprocalOfQuote() {
	ctx := context.Background()
	suite.mockSource.On("FetchQuotes", ctx, "RUB").Return(quotes(map[string]float64{"USD": 0.0105}), nil).Once()

	snap := suite.provider.FetchRates(ctx)

	suite.Equal(domain.SourceLive, snap.Source)
	suite.Equal(suite.now, snap.FetchedAt)
	suite.Require().Len(snap.Rates, 1)
	suite.Equal(domain.CurrencyRate{Code: "USD", Name: "Доллар США", Rate: 95.24, Flag: "🇺🇸"}, snap.Rates[0])
	suite.mockSource.AssertExpectations(suite.T())
}

// The source is assumed to quote FOREIGN units per 1 LOCAL. If it ever
// switched to LOCAL per FOREIGN, this is the value that would be shown.
func (suite *RateProviderTestSuite) TestFetchRates_AssumesForeignPerLocalQuoting() {
	ctx := context.Background()
	suite.mockSource.On("FetchQuotes", ctx, "RUB").Return(quotes(map[string]float64{"USD": 95.24}), nil).Once()

	snap := suite.provider.FetchRates(ctx)

	usd, ok := snap.Lookup("USD")
	suite.Require().True(ok)
	suite.Equal(0.01, usd.Rate)
}

func (suite *RateProviderTestSuite) TestFetchRates_CatalogOrderAndFiltering() {
	ctx := context.Background()
	suite.mockSource.On("FetchQuotes", ctx, "RUB").Return(quotes(map[string]float64{
		"EUR": 0.0097,
		"XAU": 0.0000051, // not in the catalog
		"RUB": 1,         // not in the catalog
		"USD": 0.0105,
		"JPY": 1.5625,
	}), nil).Once()

	snap := suite.provider.FetchRates(ctx)

	suite.Equal([]string{"USD", "EUR", "JPY"}, snap.Codes())
	jpy, _ := snap.Lookup("JPY")
	suite.Equal(0.64, jpy.Rate)
	eur, _ := snap.Lookup("EUR")
	suite.Equal(103.09, eur.Rate)
	for _, r := range snap.Rates {
		suite.True(domain.IsSupportedCurrency(r.Code))
		suite.Greater(r.Rate, 0.0)
	}
}

func (suite *RateProviderTestSuite) TestFetchRates_UnusableQuotesOmitted() {
	ctx := context.Background()
	suite.mockSource.On("FetchQuotes", ctx, "RUB").Return(quotes(map[string]float64{
		"USD": 0.0105,
		"EUR": 0,
		"GBP": -0.008,
		"UZS": 1000, // rounds to 0.00
		"CHF": math.Inf(1),
	}), nil).Once()

	snap := suite.provider.FetchRates(ctx)

	suite.Equal([]string{"USD"}, snap.Codes())
}

func (suite *RateProviderTestSuite) TestFetchRates_SourceErrorFallsBack() {
	ctx := context.Background()
	suite.mockSource.On("FetchQuotes", ctx, "RUB").
		Return(nil, fmt.Errorf("%w: connection refused", apperrors.ErrRateSourceUnavailable)).Once()

	snap := suite.provider.FetchRates(ctx)

	suite.Equal(domain.FallbackSnapshot(suite.now), snap)
	suite.NotEmpty(snap.Rates)
	suite.mockSource.AssertExpectations(suite.T())
}

func (suite *RateProviderTestSuite) TestFetchRates_NoSupportedCurrenciesFallsBack() {
	ctx := context.Background()
	suite.mockSource.On("FetchQuotes", ctx, "RUB").Return(quotes(map[string]float64{"XAU": 0.0000051}), nil).Once()

	snap := suite.provider.FetchRates(ctx)

	suite.True(snap.IsFallback())
	suite.Equal(domain.FallbackSnapshot(suite.now).Codes(), snap.Codes())
}

func (suite *RateProviderTestSuite) TestFetchRates_NilQuotesFallsBack() {
	ctx := context.Background()
	suite.mockSource.On("FetchQuotes", ctx, "RUB").Return(nil, nil).Once()

	snap := suite.provider.FetchRates(ctx)

	suite.True(snap.IsFallback())
}

func (suite *RateProviderTestSuite) TestFetchRates_SequentialCallsAreIndependent() {
	ctx := context.Background()
	suite.mockSource.On("FetchQuotes", ctx, "RUB").Return(quotes(map[string]float64{"USD": 0.0105, "EUR": 0.0097}), nil).Once()
	suite.mockSource.On("FetchQuotes", ctx, "RUB").Return(quotes(map[string]float64{"GBP": 0.0083}), nil).Once()
	suite.mockSource.On("FetchQuotes", ctx, "RUB").Return(nil, apperrors.ErrRateSourceUnavailable).Once()

	first := suite.provider.FetchRates(ctx)
	second := suite.provider.FetchRates(ctx)
	third := suite.provider.FetchRates(ctx)

	suite.Equal([]string{"USD", "EUR"}, first.Codes())
	suite.Equal([]string{"GBP"}, second.Codes())
	suite.True(third.IsFallback())
	suite.Len(third.Rates, 8)
	suite.mockSource.AssertExpectations(suite.T())
}

func (suite *RateProviderTestSuite) TestFetchRates_UsesConfiguredLocalCurrency() {
	ctx := context.Background()
	provider := services.NewRateProvider(suite.mockSource, services.WithLocalCurrency("kzt"))
	suite.mockSource.On("FetchQuotes", ctx, "KZT").Return(quotes(map[string]float64{"USD": 0.0021}), nil).Once()

	snap := provider.FetchRates(ctx)

	suite.Equal("KZT", provider.LocalCurrency())
	suite.Equal([]string{"USD"}, snap.Codes())
	suite.mockSource.AssertExpectations(suite.T())
}

func TestRateProvider_NilSourceFallsBack(t *testing.T) {
	snap := services.NewRateProvider(nil).FetchRates(context.Background())
	assert.True(t, snap.IsFallback())
}

func TestBuildDisplayRates_EmptyQuotes(t *testing.T) {
	assert.Empty(t, services.BuildDisplayRates(nil))
	assert.Empty(t, services.BuildDisplayRates(map[string]float64{}))
}

// --- Run Test Suite ---
func TestRateProviderTestSuite(t *testing.T) {
	suite.Run(t, new(RateProviderTestSuite))
}
