package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	bookform "github.com/goliatone/go-bookform"
	"github.com/goliatone/go-bookform/internal/config"
	"github.com/goliatone/go-bookform/pkg/model"
	"github.com/goliatone/go-bookform/pkg/renderers/tui"
	"github.com/goliatone/go-bookform/pkg/widgets"
)

var errInvalidBooking = errors.New("booking is not valid")

func newFillCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fill",
		Short: "Fill in a booking interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := commandContext(cmd)
			f, err := a.newForm(ctx)
			if err != nil {
				return err
			}
			defer f.Close()

			renderer, err := tui.New(tui.WithPromptDriver(tui.NewSurveyDriver(cmd.ErrOrStderr())))
			if err != nil {
				return err
			}
			submission, err := renderer.Fill(ctx, f)
			if err != nil {
				return err
			}
			return a.writeSubmission(cmd.OutOrStdout(), submission, f.Receipt(submission))
		},
	}
}

func newCheckCommand(a *app) *cobra.Command {
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Validate a booking stored as YAML or JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := readValues(args[0])
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(commandContext(cmd), timeout)
			defer cancel()
			opts, err := a.formOptions(ctx)
			if err != nil {
				return err
			}
			result, err := bookform.Check(ctx, values, opts...)
			if err != nil {
				return err
			}
			if a.cfg.Output == config.OutputPretty {
				a.writeStates(cmd.OutOrStdout(), result)
			}
			if !result.Valid {
				if a.cfg.Output != config.OutputPretty {
					if err := a.writeData(cmd.OutOrStdout(), result); err != nil {
						return err
					}
				}
				return errInvalidBooking
			}
			return a.writeSubmission(cmd.OutOrStdout(), *result.Submission, *result.Receipt)
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "how long to wait for the email check")
	return cmd
}

func newDestinationsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "destinations [search]",
		Short: "List destinations, filtered by a case-insensitive search",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.newForm(commandContext(cmd))
			if err != nil {
				return err
			}
			defer f.Close()
			if len(args) == 1 {
				f.SetSearch(args[0])
			}
			return a.writeList(cmd.OutOrStdout(), f.FilteredDestinations())
		},
	}
}

func newFieldsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "Show the fields the booking form declares",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := a.newForm(commandContext(cmd))
			if err != nil {
				return err
			}
			defer f.Close()

			form := f.Model()
			if err := widgets.NewRegistry().Decorate(&form); err != nil {
				return err
			}
			fields := form.Fields
			if a.cfg.Output != config.OutputPretty {
				return a.writeData(cmd.OutOrStdout(), fields)
			}
			tw := table.NewWriter()
			tw.SetOutputMirror(cmd.OutOrStdout())
			tw.AppendHeader(table.Row{"Field", "Type", "Widget", "Required", "Rules", "Async"})
			appendFieldRows(tw, "", fields)
			tw.Render()
			return nil
		},
	}
}

func appendFieldRows(tw table.Writer, prefix string, fields []model.Field) {
	for _, field := range fields {
		name := field.Name
		if prefix != "" {
			name = prefix + "." + name
		}
		tw.AppendRow(table.Row{name, field.Type, field.Metadata["widget"], field.Required, describeRules(field), strings.Join(field.AsyncValidators, ", ")})
		if field.Items != nil {
			appendFieldRows(tw, name+"[]", field.Items.Nested)
		}
		appendFieldRows(tw, name, field.Nested)
	}
}

func describeRules(field model.Field) string {
	parts := make([]string, 0, len(field.Validations)+1)
	if len(field.Enum) > 0 {
		options := make([]string, 0, len(field.Enum))
		for _, option := range field.Enum {
			options = append(options, fmt.Sprint(option))
		}
		parts = append(parts, "one of "+strings.Join(options, "|"))
	}
	for _, rule := range field.Validations {
		switch {
		case rule.Params["value"] != "":
			parts = append(parts, rule.Kind+"="+rule.Params["value"])
		case rule.Params["pattern"] != "":
			parts = append(parts, rule.Kind+"="+rule.Params["pattern"])
		default:
			parts = append(parts, rule.Kind)
		}
	}
	return strings.Join(parts, ", ")
}

// readValues decodes a YAML or JSON booking file. JSON is valid YAML, so
// one decoder serves both.
func readValues(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var values map[string]any
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if values == nil {
		values = map[string]any{}
	}
	return values, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
