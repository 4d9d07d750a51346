package notify

import (
	"context"
	"log/slog"

	"github.com/SscSPs/fx_desk/internal/core/domain"
	"github.com/SscSPs/fx_desk/internal/core/ports"
	"github.com/SscSPs/fx_desk/internal/platform/logging"
)

// LogNotifier records leads in the structured log. It is used when no email
// delivery is configured.
type LogNotifier struct{}

var _ ports.LeadNotifier = LogNotifier{}

// NotifyLead writes the lead to the logger carried by ctx.
func (LogNotifier) NotifyLead(ctx context.Context, lead domain.Lead) error {
	logging.FromContext(ctx).Info("New lead received",
		slog.String("lead_id", lead.LeadID),
		slog.String("company", lead.CompanyName),
		slog.String("inn", lead.INN),
		slog.String("contact_person", lead.ContactPerson),
		slog.String("email", lead.Email),
		slog.String("phone", lead.Phone),
		slog.String("telegram", lead.Telegram),
		slog.Int64("monthly_volume", lead.MonthlyVolume),
		slog.String("comment", lead.Comment),
		slog.Time("submitted_at", lead.SubmittedAt),
	)
	return nil
}
