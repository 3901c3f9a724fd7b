package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-numeric-input/internal/prompt"
)

type promptOutput struct {
	Configuration any               `json:"configuration"`
	Attributes    map[string]string `json:"attributes"`
}

func newPromptCmd(a *app) *cobra.Command {
	return newPromptCmdWithDriver(a, nil)
}

func newPromptCmdWithDriver(a *app, driver prompt.PromptDriver) *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Build a configuration interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.presets()
			if err != nil {
				return err
			}
			d := driver
			if d == nil {
				d = prompt.NewSurveyDriver(cmd.ErrOrStderr())
			}
			cfg, err := prompt.Configure(cmd.Context(), d, store)
			if err != nil {
				return err
			}
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(promptOutput{
				Configuration: cfg.Resolve(),
				Attributes:    cfg.AttributeMap(),
			})
		},
	}
}
