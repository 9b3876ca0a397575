package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	bookform "github.com/goliatone/go-bookform"
	"github.com/goliatone/go-bookform/internal/config"
	"github.com/goliatone/go-bookform/pkg/booking"
	"github.com/goliatone/go-bookform/pkg/render"
)

// writeData prints v as JSON or YAML according to the output setting.
func (a *app) writeData(w io.Writer, v any) error {
	switch a.cfg.Output {
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
}

func (a *app) writeSubmission(w io.Writer, submission booking.Submission, receipt render.Receipt) error {
	if a.cfg.Output != config.OutputPretty {
		return a.writeData(w, submission)
	}
	receipts, err := render.NewReceipts(render.WithReceiptDir(a.cfg.Templates))
	if err != nil {
		return err
	}
	_, err = receipts.Render(w, receipt)
	return err
}

// writeStates prints every control with its value, status and message.
func (a *app) writeStates(w io.Writer, result bookform.Result) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"Field", "Value", "Status", "Message"})
	for _, state := range result.States {
		tw.AppendRow(table.Row{state.Path, fmt.Sprint(state.Value), state.Status, state.Message})
	}
	tw.Render()
	fmt.Fprintln(w)
}

func (a *app) writeList(w io.Writer, items []string) error {
	if a.cfg.Output != config.OutputPretty {
		return a.writeData(w, items)
	}
	for _, item := range items {
		if _, err := fmt.Fprintln(w, item); err != nil {
			return err
		}
	}
	return nil
}
