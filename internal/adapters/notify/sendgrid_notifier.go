package notify

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/SscSPs/fx_desk/internal/core/domain"
	"github.com/SscSPs/fx_desk/internal/core/ports"
	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// mailSender is the part of the SendGrid client the notifier uses.
type mailSender interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// SendGridConfig holds the addresses used for lead emails.
type SendGridConfig struct {
	APIKey   string
	To       string
	From     string
	FromName string
}

// SendGridNotifier emails every lead to the sales inbox.
type SendGridNotifier struct {
	cfg    SendGridConfig
	client mailSender
}

var _ ports.LeadNotifier = (*SendGridNotifier)(nil)

// NewSendGridNotifier creates a notifier backed by the SendGrid v3 API.
func NewSendGridNotifier(cfg SendGridConfig) *SendGridNotifier {
	return &SendGridNotifier{cfg: cfg, client: sendgrid.NewSendClient(cfg.APIKey)}
}

// NotifyLead sends one email describing the lead.
func (n *SendGridNotifier) NotifyLead(ctx context.Context, lead domain.Lead) error {
	from := mail.NewEmail(n.cfg.FromName, n.cfg.From)
	to := mail.NewEmail("", n.cfg.To)
	subject := fmt.Sprintf("Новая заявка: %s (ИНН %s)", lead.CompanyName, lead.INN)
	plain := leadText(lead)

	message := mail.NewSingleEmail(from, subject, to, plain, leadHTML(plain))
	if lead.Email != "" {
		message.SetReplyTo(mail.NewEmail(lead.ContactPerson, lead.Email))
	}

	resp, err := n.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: %d %s", resp.StatusCode, resp.Body)
	}
	return nil
}

func leadText(lead domain.Lead) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Компания: %s\n", lead.CompanyName)
	fmt.Fprintf(&b, "ИНН: %s\n", lead.INN)
	fmt.Fprintf(&b, "Контактное лицо: %s\n", lead.ContactPerson)
	fmt.Fprintf(&b, "Email: %s\n", lead.Email)
	fmt.Fprintf(&b, "Телефон: %s\n", lead.Phone)
	if lead.Telegram != "" {
		fmt.Fprintf(&b, "Telegram: %s\n", lead.Telegram)
	}
	fmt.Fprintf(&b, "Объем в месяц: %d\n", lead.MonthlyVolume)
	if lead.Comment != "" {
		fmt.Fprintf(&b, "Комментарий: %s\n", lead.Comment)
	}
	fmt.Fprintf(&b, "Заявка: %s от %s\n", lead.LeadID, lead.SubmittedAt.Format("2006-01-02 15:04 MST"))
	return b.String()
}

func leadHTML(plain string) string {
	lines := strings.Split(strings.TrimRight(plain, "\n"), "\n")
	for i, l := range lines {
		lines[i] = html.EscapeString(l)
	}
	return "<p>" + strings.Join(lines, "<br>") + "</p>"
}
