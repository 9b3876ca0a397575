package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	bookform "github.com/goliatone/go-bookform"
	"github.com/goliatone/go-bookform/internal/config"
	"github.com/goliatone/go-bookform/internal/logging"
	"github.com/goliatone/go-bookform/pkg/booking"
	"github.com/goliatone/go-bookform/pkg/render"
)

// app carries what every subcommand needs once the root command has loaded
// the configuration.
type app struct {
	v      *viper.Viper
	cfg    config.Config
	logger *slog.Logger
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	a := &app{v: config.New(), logger: logging.Discard()}

	root := &cobra.Command{
		Use:   "booking-cli",
		Short: "Travel booking form",
		Long: `booking-cli collects a travel booking through the booking form.
- fill: answer the form interactively, one field at a time.
- check: validate a YAML or JSON file and print the booking when it is valid.
- destinations: list the destination catalog, optionally filtered.
- fields: show the form registry.
Settings come from --config, then BOOKFORM_* environment variables, then flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd.Context())
		},
	}

	flags := root.PersistentFlags()
	flags.StringP("config", "c", "", "configuration file (YAML)")
	flags.StringP("output", "o", config.OutputPretty, "output format: pretty, json or yaml")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.String("registry", "", "OpenAPI document declaring the form (defaults to the embedded one)")
	flags.String("templates", "", "directory with receipt templates overriding the embedded ones")
	_ = a.v.BindPFlag("config", flags.Lookup("config"))
	_ = a.v.BindPFlag("output", flags.Lookup("output"))
	_ = a.v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("registry", flags.Lookup("registry"))
	_ = a.v.BindPFlag("templates", flags.Lookup("templates"))

	root.AddCommand(
		newFillCommand(a),
		newCheckCommand(a),
		newDestinationsCommand(a),
		newFieldsCommand(a),
	)
	return root
}

func (a *app) load(ctx context.Context) error {
	path := strings.TrimSpace(a.v.GetString("config"))
	if err := config.ReadFile(a.v, path); err != nil {
		return err
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	level, _ := logging.ParseLevel(cfg.Log.Level)
	a.cfg = cfg
	a.logger = logging.NewCommandLogger(level)
	if ctx == nil {
		ctx = context.Background()
	}
	a.logger.DebugContext(ctx, "config loaded",
		slog.String("config", path),
		slog.String("output", cfg.Output),
		slog.String("registry", cfg.Registry),
	)
	return nil
}

// newForm builds a BookingForm from the loaded configuration.
func (a *app) newForm(ctx context.Context) (*booking.BookingForm, error) {
	opts, err := a.formOptions(ctx)
	if err != nil {
		return nil, err
	}
	return booking.New(opts...)
}

func (a *app) formOptions(ctx context.Context) ([]booking.Option, error) {
	opts := append(a.cfg.BookingOptions(),
		booking.WithLogger(a.logger),
		booking.WithMessages(render.DefaultCatalog().Merge(a.cfg.MessageOverrides())),
	)
	if a.cfg.Registry != "" {
		doc, err := bookform.LoadDocument(ctx, a.cfg.Registry)
		if err != nil {
			return nil, err
		}
		opts = append(opts, booking.WithDocument(doc))
	}
	return opts, nil
}
