package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-numeric-input/pkg/presets"
)

type app struct {
	verbose     bool
	presetsPath string
	logger      zerolog.Logger
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{logger: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "numericinput",
		Short: "Render and inspect numeric/currency inputs",
		Long: `numericinput renders numeric inputs carrying data-maskmoney-* attributes,
inspects rendered markup the way the browser runtime reads it, and builds
field configurations from presets, prompts or OpenAPI documents.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.logger = newLogger(cmd.ErrOrStderr(), a.verbose)
			a.logger.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&a.presetsPath, "presets", "", "Directory with preset YAML/JSON files (default: built-in presets)")

	root.AddCommand(
		newRenderCmd(a),
		newInspectCmd(a),
		newPromptCmd(a),
		newOpenAPICmd(a),
	)
	return root
}

func newLogger(out io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

func (a *app) presets() (*presets.Store, error) {
	if a.presetsPath == "" {
		return presets.Default()
	}
	store, err := presets.LoadFS(os.DirFS(a.presetsPath))
	if err != nil {
		return nil, fmt.Errorf("load presets from %s: %w", a.presetsPath, err)
	}
	a.logger.Debug().Str("path", a.presetsPath).Strs("presets", store.Names()).Msg("Loaded presets")
	return store, nil
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}
