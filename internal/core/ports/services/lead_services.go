package services

import (
	"context"

	"github.com/SscSPs/fx_desk/internal/core/domain"
	"github.com/SscSPs/fx_desk/internal/dto"
)

// LeadSvc accepts business inquiries from legal entities.
type LeadSvc interface {
	// SubmitLead validates the request and forwards the resulting lead.
	SubmitLead(ctx context.Context, req dto.CreateLeadRequest) (*domain.Lead, error)
}
