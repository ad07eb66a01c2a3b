package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/quartopress/coverforge/internal/app"
	"github.com/quartopress/coverforge/internal/config"
	"github.com/quartopress/coverforge/internal/display"
	"github.com/quartopress/coverforge/internal/preset"
	"github.com/quartopress/coverforge/internal/web"
)

func newServeCmd(configPath *string) *cobra.Command {
	var withDisplay bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the cover editor API, and optionally the framebuffer display",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if withDisplay {
				cfg.Display.Enabled = true
			}

			a := app.New(cfg, logger)
			a.LoadAssets()

			presets, err := preset.NewFileStore(cfg.PresetDir)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := web.NewHTTPServer(cfg.Listen, a, presets, logger)
			srv.DevMode = cfg.DevMode
			if err := srv.Start(ctx); err != nil {
				return err
			}
			defer srv.Stop()

			if cfg.Display.Enabled {
				d := &display.Display{
					Device:     cfg.Display.Device,
					PanelWidth: cfg.Display.PanelWidth,
					Margin:     cfg.Display.Margin,
					Model:      a.Model,
					Render:     a.RenderDisplay,
					Revision:   a.Revision,
					EditorURL:  srv.URL(),
					Log:        logger,
				}
				if err := d.Start(); err != nil {
					// The editor API is useful on its own; run headless.
					logger.Warn("display unavailable, continuing headless", "err", err)
				} else {
					defer d.Stop()
					go d.RunLoop(ctx)
				}
			}

			<-ctx.Done()
			return nil
		},
	}

	cmd.Flags().BoolVar(&withDisplay, "display", false, "force the framebuffer display on")
	return cmd
}
