package cli

import (
	"errors"
	"fmt"

	"github.com/SscSPs/fx_desk/internal/dto"
	"github.com/SscSPs/fx_desk/internal/utils/validation"
	"github.com/spf13/cobra"
)

func newLeadCmd(app func() *App) *cobra.Command {
	var req dto.CreateLeadRequest

	cmd := &cobra.Command{
		Use:   "lead",
		Short: "Submit a business inquiry for a legal entity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			ctx := a.Context(cmd.Context())

			lead, err := a.Services.Leads.SubmitLead(ctx, req)
			if err != nil {
				var verrs validation.Errors
				if errors.As(err, &verrs) {
					w := cmd.ErrOrStderr()
					for _, fe := range verrs {
						fmt.Fprintf(w, "%s: %s\n", fe.Field, fe.Message)
					}
				}
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Заявка отправлена! Мы свяжемся с вами в ближайшее время.")
			return writeJSON(out, dto.ToLeadResponse(lead))
		},
	}

	f := cmd.Flags()
	f.StringVar(&req.CompanyName, "company", "", "company name")
	f.StringVar(&req.INN, "inn", "", "taxpayer number (10 or 12 digits)")
	f.StringVar(&req.ContactPerson, "contact", "", "contact person full name")
	f.StringVar(&req.Email, "email", "", "contact email")
	f.StringVar(&req.Phone, "phone", "", "contact phone")
	f.StringVar(&req.Telegram, "telegram", "", "Telegram @username (optional)")
	f.StringVar(&req.MonthlyVolume, "volume", "", "expected monthly volume")
	f.StringVar(&req.Comment, "comment", "", "comment (optional)")
	return cmd
}
