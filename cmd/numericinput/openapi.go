package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-numeric-input/pkg/openapi"
	"github.com/goliatone/go-numeric-input/pkg/render"
	"github.com/goliatone/go-numeric-input/pkg/renderers/vanilla"
)

func newOpenAPICmd(a *app) *cobra.Command {
	var (
		operation  string
		list       bool
		validate   bool
		omitAssets bool
		runtimeURL string
	)
	cmd := &cobra.Command{
		Use:   "openapi <document>",
		Short: "Render the request body of an OpenAPI operation as a form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			parser := openapi.New(openapi.WithValidation(validate))

			if list {
				ids, err := parser.Operations(cmd.Context(), data)
				if err != nil {
					return err
				}
				for _, id := range ids {
					fmt.Fprintln(cmd.OutOrStdout(), id)
				}
				return nil
			}
			if operation == "" {
				return errors.New("--operation is required unless --list is set")
			}

			fields, err := parser.Fields(cmd.Context(), data, operation)
			if err != nil {
				return err
			}
			a.logger.Debug().Str("operation", operation).Int("fields", len(fields)).Msg("Extracted fields")

			store, err := a.presets()
			if err != nil {
				return err
			}
			renderer, err := vanilla.New(vanilla.WithPresets(store), vanilla.WithRuntimeURL(runtimeURL))
			if err != nil {
				return err
			}
			out, err := renderer.Render(cmd.Context(), fields, render.RenderOptions{OmitAssets: omitAssets})
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().StringVarP(&operation, "operation", "o", "", "Operation ID to render")
	cmd.Flags().BoolVar(&list, "list", false, "List operation IDs instead of rendering")
	cmd.Flags().BoolVar(&validate, "validate", false, "Validate the document before rendering")
	cmd.Flags().BoolVar(&omitAssets, "omit-assets", false, "Do not emit script tags")
	cmd.Flags().StringVar(&runtimeURL, "runtime-url", "", "URL the numeric runtime is served from")
	return cmd
}
