package dto

import (
	"time"

	"github.com/SscSPs/fx_desk/internal/core/domain"
)

// CurrencyRateResponse defines a single display rate.
type CurrencyRateResponse struct {
	Code string  `json:"code"`
	Name string  `json:"name"`
	Flag string  `json:"flag"`
	Rate float64 `json:"rate"`
}

// SnapshotResponse defines the data printed for a rates snapshot.
type SnapshotResponse struct {
	LocalCurrency string                 `json:"localCurrency"`
	Source        string                 `json:"source"`
	FetchedAt     time.Time              `json:"fetchedAt"`
	Rates         []CurrencyRateResponse `json:"rates"`
}

// ToSnapshotResponse converts a domain.Snapshot to SnapshotResponse DTO
func ToSnapshotResponse(snap domain.Snapshot, localCurrency string) SnapshotResponse {
	res := SnapshotResponse{
		LocalCurrency: localCurrency,
		Source:        string(snap.Source),
		FetchedAt:     snap.FetchedAt,
		Rates:         make([]CurrencyRateResponse, len(snap.Rates)),
	}
	for i, r := range snap.Rates {
		res.Rates[i] = CurrencyRateResponse{
			Code: r.Code,
			Name: r.Name,
			Flag: r.Flag,
			Rate: r.Rate,
		}
	}
	return res
}

// ConversionResponse defines the data printed for a conversion.
type ConversionResponse struct {
	From          string  `json:"from"`
	Amount        float64 `json:"amount"`
	Rate          float64 `json:"rate"`
	Result        float64 `json:"result"`
	LocalCurrency string  `json:"localCurrency"`
	Source        string  `json:"source"`
}

// ToConversionResponse converts a domain.Conversion to ConversionResponse DTO
func ToConversionResponse(c *domain.Conversion, source domain.SnapshotSource) ConversionResponse {
	return ConversionResponse{
		From:          c.Code,
		Amount:        c.Amount,
		Rate:          c.Rate,
		Result:        c.Result,
		LocalCurrency: c.LocalCurrency,
		Source:        string(source),
	}
}
