package cli

import (
	"fmt"
	"strconv"

	"github.com/SscSPs/fx_desk/internal/core/domain"
	"github.com/SscSPs/fx_desk/internal/dto"
	"github.com/SscSPs/fx_desk/internal/utils"
	"github.com/spf13/cobra"
)

const defaultAmount = "1"

func newConvertCmd(app func() *App) *cobra.Command {
	var (
		from   string
		quick  bool
		swap   bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "convert [amount]",
		Short: "Convert an amount of a foreign currency into the local currency",
		Long: `Convert an amount of a foreign currency into the local currency.
The amount defaults to 1. --quick converts each preset amount instead, and
--swap converts again using the result as the next amount.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			ctx := a.Context(cmd.Context())
			calc := a.Services.Calculator
			snap := a.Services.Rates.FetchRates(ctx)

			amountText := defaultAmount
			if len(args) == 1 {
				amountText = args[0]
			}

			var inputs []string
			if quick {
				for _, q := range calc.QuickAmounts() {
					inputs = append(inputs, strconv.FormatFloat(q, 'f', -1, 64))
				}
			} else {
				inputs = []string{amountText}
			}

			var convs []*domain.Conversion
			for _, in := range inputs {
				conv, err := calc.Convert(ctx, snap, from, in)
				if err != nil {
					return err
				}
				convs = append(convs, conv)
			}

			if swap {
				conv, err := calc.Convert(ctx, snap, from, calc.Swap(convs[0]))
				if err != nil {
					return err
				}
				convs = append(convs, conv)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				res := make([]dto.ConversionResponse, len(convs))
				for i, c := range convs {
					res[i] = dto.ToConversionResponse(c, snap.Source)
				}
				if len(res) == 1 {
					return writeJSON(out, res[0])
				}
				return writeJSON(out, res)
			}

			if snap.IsFallback() {
				fmt.Fprintln(out, "Курсы недоступны, расчет по справочным значениям.")
			}
			for _, c := range convs {
				fmt.Fprintf(out, "%s %s = %s %s (курс %s)\n",
					utils.FormatMoney(c.Amount), c.Code,
					utils.FormatMoney(c.Result), c.LocalCurrency,
					utils.FormatMoney(c.Rate))
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&from, "from", "USD", "currency to convert from")
	f.BoolVar(&quick, "quick", false, "convert each preset amount")
	f.BoolVar(&swap, "swap", false, "convert again using the result as the amount")
	f.BoolVar(&asJSON, "json", false, "print the result as JSON")
	cmd.MarkFlagsMutuallyExclusive("quick", "swap")
	return cmd
}
