package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-numeric-input/pkg/controls"
	"github.com/goliatone/go-numeric-input/pkg/numeric"
)

type renderOptions struct {
	name      string
	label     string
	value     string
	maxLength int
	preset    string
	config    string
}

func newRenderCmd(a *app) *cobra.Command {
	opts := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a single numeric input element",
		Example: `  numericinput render --name price --preset czk
  numericinput render --name qty --config '{"precision":0,"allowNegative":true}'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := controls.NewNumericInput(opts.name, opts.label, opts.maxLength)
			if opts.value != "" {
				input.SetValue(opts.value)
			}
			if opts.preset != "" {
				store, err := a.presets()
				if err != nil {
					return err
				}
				preset, err := store.Lookup(opts.preset)
				if err != nil {
					return err
				}
				input.Configuration().Overlay(preset)
			}
			if strings.TrimSpace(opts.config) != "" {
				cfg, err := numeric.FromJSON([]byte(opts.config))
				if err != nil {
					return err
				}
				input.Configuration().Overlay(cfg)
			}

			el, err := input.Control()
			if err != nil {
				return err
			}
			markup, err := el.HTML()
			if err != nil {
				return err
			}
			a.logger.Debug().Str("name", opts.name).Int("attributes", len(el.Attrs())).Msg("Rendered numeric input")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), markup)
			return err
		},
	}
	cmd.Flags().StringVar(&opts.name, "name", "amount", "Field name")
	cmd.Flags().StringVar(&opts.label, "label", "", "Field label")
	cmd.Flags().StringVar(&opts.value, "value", "", "Initial value")
	cmd.Flags().IntVar(&opts.maxLength, "max-length", 0, "Maximum input length")
	cmd.Flags().StringVar(&opts.preset, "preset", "", "Preset to start from")
	cmd.Flags().StringVar(&opts.config, "config", "", "JSON object with configuration overrides")
	return cmd
}
