package services

import (
	"context"

	"github.com/SscSPs/fx_desk/internal/core/domain"
)

// RateProviderSvc produces rate snapshots. It never reports an error: when the
// live source fails it returns the fallback table.
type RateProviderSvc interface {
	// FetchRates fetches a fresh snapshot of display rates.
	FetchRates(ctx context.Context) domain.Snapshot
}

// CalculatorSvc converts amounts using a snapshot.
type CalculatorSvc interface {
	// Convert converts the amount text of code into the local currency.
	Convert(ctx context.Context, snapshot domain.Snapshot, code, amountText string) (*domain.Conversion, error)

	// QuickAmounts returns the preset amounts offered to the user.
	QuickAmounts() []float64

	// Swap returns the result of c as the next amount text.
	Swap(c *domain.Conversion) string
}
