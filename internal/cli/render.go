package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quartopress/coverforge/internal/app"
	"github.com/quartopress/coverforge/internal/config"
	"github.com/quartopress/coverforge/internal/preset"
)

func newRenderCmd(configPath *string) *cobra.Command {
	var fieldsPath string
	var outPath string
	var width int

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one cover PNG from a preset file and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			a := app.New(cfg, logger)
			a.LoadAssets()

			if fieldsPath != "" {
				data, err := os.ReadFile(fieldsPath)
				if err != nil {
					return fmt.Errorf("read fields %s: %w", fieldsPath, err)
				}
				fields, err := preset.Unmarshal(data)
				if err != nil {
					return err
				}
				a.SetFields(fields)
			}

			var png []byte
			if width > 0 {
				png, err = a.RenderPreviewPNG(width)
			} else {
				png, err = a.ExportPNG()
			}
			if err != nil {
				return err
			}

			if err := os.WriteFile(outPath, png, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}
			logger.Info("cover written", "path", outPath, "bytes", len(png))
			return nil
		},
	}

	cmd.Flags().StringVarP(&fieldsPath, "fields", "f", "", "preset JSON with the five text fields")
	cmd.Flags().StringVarP(&outPath, "out", "o", "cover.png", "output PNG path")
	cmd.Flags().IntVarP(&width, "width", "w", 0, "target width in pixels (0 = native export resolution)")
	return cmd
}
