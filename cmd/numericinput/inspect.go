package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-numeric-input/pkg/activator"
)

func newInspectCmd(a *app) *cobra.Command {
	var markerClass string
	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Show the masking options the runtime would read from HTML",
		Long: `inspect parses HTML (from a file or stdin), finds every numeric input and
prints the options passed to the masking library as JSON. Elements whose
attributes cannot be read are reported on stderr and make the command fail.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			data, err := readInput(cmd, path)
			if err != nil {
				return err
			}

			recorder := &activator.Recorder{}
			_, report, err := activator.ActivateHTML(cmd.Context(), bytes.NewReader(data), recorder,
				activator.WithLogger(a.logger),
				activator.WithMarkerClass(markerClass),
			)
			if err != nil {
				return err
			}

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(recorder.Calls()); err != nil {
				return err
			}
			a.logger.Info().Int("found", report.Found).Int("activated", report.Activated).Msg("Inspection finished")
			if len(report.Failures) > 0 {
				return fmt.Errorf("%d element(s) could not be read: %w", len(report.Failures), report.Err())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&markerClass, "marker", "", "Marker class to look for (default formgen-numeric-input)")
	return cmd
}
