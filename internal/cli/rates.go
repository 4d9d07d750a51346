package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/SscSPs/fx_desk/internal/dto"
	"github.com/SscSPs/fx_desk/internal/utils"
	"github.com/spf13/cobra"
)

func newRatesCmd(app func() *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "rates",
		Short: "Show the current exchange rates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			ctx := a.Context(cmd.Context())
			snap := a.Services.Rates.FetchRates(ctx)
			res := dto.ToSnapshotResponse(snap, a.Config.LocalCurrency)

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, res)
			}

			if snap.IsFallback() {
				fmt.Fprintln(out, "Курсы недоступны, показаны справочные значения.")
			}
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			for _, r := range res.Rates {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s %s\n", r.Flag, r.Code, r.Name, utils.FormatMoney(r.Rate), res.LocalCurrency)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the snapshot as JSON")
	return cmd
}
