package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/fx_desk/internal/apperrors"
	"github.com/SscSPs/fx_desk/internal/core/domain"
	"github.com/SscSPs/fx_desk/internal/core/ports"
	"github.com/SscSPs/fx_desk/internal/dto"
	"github.com/SscSPs/fx_desk/internal/utils/validation"
	"github.com/google/uuid"
)

// LeadService validates business inquiries and forwards them to a notifier.
type LeadService struct {
	BaseService
	notifier  ports.LeadNotifier
	validator *validation.Validator
}

// NewLeadService creates a new LeadService.
func NewLeadService(notifier ports.LeadNotifier) *LeadService {
	return &LeadService{
		notifier:  notifier,
		validator: validation.New(),
	}
}

// SubmitLead validates req and hands the resulting lead to the notifier.
// Delivery is attempted once; the caller may resubmit on failure.
func (s *LeadService) SubmitLead(ctx context.Context, req dto.CreateLeadRequest) (*domain.Lead, error) {
	req = req.Normalized()
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	lead, err := dto.ToDomainLead(req, uuid.NewString(), time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("%w: monthly volume: %v", apperrors.ErrValidation, err)
	}

	if err := s.notifier.NotifyLead(ctx, lead); err != nil {
		s.LogError(ctx, err, "Failed to deliver lead",
			slog.String("lead_id", lead.LeadID))
		return nil, fmt.Errorf("%w: %w", apperrors.ErrLeadDelivery, err)
	}

	s.LogInfo(ctx, "Lead submitted",
		slog.String("lead_id", lead.LeadID),
		slog.String("company", lead.CompanyName))
	return &lead, nil
}
