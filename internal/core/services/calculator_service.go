package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/SscSPs/fx_desk/internal/apperrors"
	"github.com/SscSPs/fx_desk/internal/core/domain"
	"github.com/SscSPs/fx_desk/internal/utils/conversion"
)

var quickAmounts = []float64{1, 10, 100, 1000}

// CalculatorService converts user-entered amounts with a snapshot's rates.
type CalculatorService struct {
	BaseService
	localCurrency string
}

// NewCalculatorService creates a new CalculatorService.
func NewCalculatorService(localCurrency string) *CalculatorService {
	if localCurrency == "" {
		localCurrency = domain.LocalCurrency
	}
	return &CalculatorService{localCurrency: localCurrency}
}

// Convert converts amountText of code into the local currency. Invalid amount
// text counts as 0.
func (s *CalculatorService) Convert(ctx context.Context, snapshot domain.Snapshot, code, amountText string) (*domain.Conversion, error) {
	rate, ok := snapshot.Lookup(code)
	if !ok {
		return nil, fmt.Errorf("%w: currency '%s' is not in the current rates", apperrors.ErrNotFound, code)
	}

	amount := conversion.ParseAmount(amountText)
	result := conversion.Convert(amount, rate.Rate)

	s.LogDebug(ctx, "Converted amount",
		slog.String("code", rate.Code),
		slog.Float64("amount", amount),
		slog.Float64("rate", rate.Rate),
		slog.Float64("result", result))

	return &domain.Conversion{
		Code:          rate.Code,
		Amount:        amount,
		Rate:          rate.Rate,
		Result:        result,
		LocalCurrency: s.localCurrency,
	}, nil
}

// QuickAmounts returns the preset amounts offered next to the amount input.
func (s *CalculatorService) QuickAmounts() []float64 {
	out := make([]float64, len(quickAmounts))
	copy(out, quickAmounts)
	return out
}

// Swap returns the conversion result as the next amount text, so the result
// can be fed back into Convert for the same currency.
func (s *CalculatorService) Swap(c *domain.Conversion) string {
	if c == nil {
		return "0"
	}
	return strconv.FormatFloat(c.Result, 'f', -1, 64)
}
