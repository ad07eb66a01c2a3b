// Package cli implements the coverforge command-line interface.
//
// Two commands are provided: serve, which runs the editor API (and
// optionally the framebuffer display), and render, which produces a single
// PNG from a preset file without starting any server. All commands support
// --verbose for debug-level logging; loggers travel through the command
// context.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the coverforge CLI and returns an error if any command
// fails.
func Execute() error {
	var verbose bool
	var configPath string

	root := &cobra.Command{
		Use:          "coverforge",
		Short:        "coverforge composes book covers from a photo, a tint and text",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "coverforge.toml", "path to the TOML config file")

	root.AddCommand(newServeCmd(&configPath))
	root.AddCommand(newRenderCmd(&configPath))

	return root.ExecuteContext(context.Background())
}
