package cli

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"

	"github.com/SscSPs/fx_desk/internal/adapters/exchangerate"
	"github.com/SscSPs/fx_desk/internal/adapters/notify"
	"github.com/SscSPs/fx_desk/internal/core/ports"
	"github.com/SscSPs/fx_desk/internal/core/services"
	"github.com/SscSPs/fx_desk/internal/platform/config"
	"github.com/SscSPs/fx_desk/internal/platform/logging"
	"github.com/spf13/cobra"
)

// App is what every command needs at run time.
type App struct {
	Config   *config.Config
	Logger   *slog.Logger
	Services *services.Container
}

// NewApp builds the application from configuration: a JSON/text logger on
// stderr, the ExchangeRate-API client and the lead notifier.
func NewApp(cfg *config.Config, logOut io.Writer) *App {
	level, format := logSettings(cfg)
	logger := logging.NewLogger(logOut, level, format)

	var notifier ports.LeadNotifier = notify.LogNotifier{}
	if cfg.LeadEmailEnabled() {
		notifier = notify.NewSendGridNotifier(notify.SendGridConfig{
			APIKey:   cfg.SendGridAPIKey,
			To:       cfg.LeadNotifyTo,
			From:     cfg.LeadNotifyFrom,
			FromName: cfg.LeadNotifyFromName,
		})
	}

	source := exchangerate.NewClient(cfg.RatesAPIURL, cfg.RatesHTTPTimeout)

	return &App{
		Config:   cfg,
		Logger:   logger,
		Services: services.NewContainer(cfg.LocalCurrency, source, notifier),
	}
}

// logSettings returns the configured log level and format. Production always
// logs JSON at info level or above.
func logSettings(cfg *config.Config) (level, format string) {
	level, format = cfg.LogLevel, cfg.LogFormat
	if cfg.IsProduction {
		format = "json"
		if logging.ParseLevel(level) < slog.LevelInfo {
			level = "info"
		}
	}
	return level, format
}

// Context returns ctx carrying the application logger.
func (a *App) Context(ctx context.Context) context.Context {
	return logging.WithLogger(ctx, a.Logger)
}

// NewRootCmd creates the fx_desk command tree. When app is nil it is built
// from configuration before any subcommand runs.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "fx_desk",
		Short:         "Currency rates, conversion and business inquiries",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app != nil {
				return nil
			}
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			app = NewApp(cfg, os.Stderr)
			slog.SetDefault(app.Logger)
			return nil
		},
	}

	appFn := func() *App { return app }
	root.AddCommand(
		newRatesCmd(appFn),
		newConvertCmd(appFn),
		newLeadCmd(appFn),
	)
	return root
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
