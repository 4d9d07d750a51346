package ports

import (
	"context"

	"github.com/SscSPs/fx_desk/internal/core/domain"
)

// RateSource fetches raw quotes against a base currency from a remote provider.
// Implementations wrap every failure with apperrors.ErrRateSourceUnavailable.
type RateSource interface {
	FetchQuotes(ctx context.Context, base string) (*domain.RateQuotes, error)
}

// LeadNotifier hands a validated lead to whoever follows it up.
type LeadNotifier interface {
	NotifyLead(ctx context.Context, lead domain.Lead) error
}
