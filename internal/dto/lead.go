package dto

import (
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/fx_desk/internal/core/domain"
)

// CreateLeadRequest defines the data a legal entity submits with an inquiry.
type CreateLeadRequest struct {
	CompanyName   string `json:"companyName" validate:"required,min=2,max=200"`
	INN           string `json:"inn" validate:"required,inn"`
	ContactPerson string `json:"contactPerson" validate:"required,min=2,max=100"`
	Email         string `json:"email" validate:"required,email,max=255"`
	Phone         string `json:"phone" validate:"required,ru_phone"`
	Telegram      string `json:"telegram" validate:"omitempty,telegram"`
	MonthlyVolume string `json:"monthlyVolume" validate:"required,positive_digits"`
	Comment       string `json:"comment" validate:"omitempty,max=1000"`
}

// Normalized returns a copy with surrounding whitespace trimmed from every field.
func (r CreateLeadRequest) Normalized() CreateLeadRequest {
	return CreateLeadRequest{
		CompanyName:   strings.TrimSpace(r.CompanyName),
		INN:           strings.TrimSpace(r.INN),
		ContactPerson: strings.TrimSpace(r.ContactPerson),
		Email:         strings.TrimSpace(r.Email),
		Phone:         strings.TrimSpace(r.Phone),
		Telegram:      strings.TrimSpace(r.Telegram),
		MonthlyVolume: strings.TrimSpace(r.MonthlyVolume),
		Comment:       strings.TrimSpace(r.Comment),
	}
}

// ToDomainLead converts a validated request into a domain.Lead.
func ToDomainLead(r CreateLeadRequest, leadID string, submittedAt time.Time) (domain.Lead, error) {
	volume, err := strconv.ParseInt(r.MonthlyVolume, 10, 64)
	if err != nil {
		return domain.Lead{}, err
	}
	return domain.Lead{
		LeadID:        leadID,
		CompanyName:   r.CompanyName,
		INN:           r.INN,
		ContactPerson: r.ContactPerson,
		Email:         r.Email,
		Phone:         r.Phone,
		Telegram:      r.Telegram,
		MonthlyVolume: volume,
		Comment:       r.Comment,
		SubmittedAt:   submittedAt,
	}, nil
}

// LeadResponse defines the data returned after a lead is accepted.
type LeadResponse struct {
	LeadID      string    `json:"leadID"`
	CompanyName string    `json:"companyName"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// ToLeadResponse converts a domain.Lead to LeadResponse DTO
func ToLeadResponse(lead *domain.Lead) LeadResponse {
	return LeadResponse{
		LeadID:      lead.LeadID,
		CompanyName: lead.CompanyName,
		SubmittedAt: lead.SubmittedAt,
	}
}
