package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/wcagcheck/internal/config"
	"github.com/jmylchreest/wcagcheck/internal/palette"
)

type paletteOptions struct {
	set     string
	light   bool
	png     string
	columns int
	swatch  int
	format  string
}

func newPaletteCmd(root *rootOptions) *cobra.Command {
	defaults := palette.DefaultRenderOptions()
	opts := paletteOptions{
		set:     "balanced",
		columns: defaults.Columns,
		swatch:  defaults.SwatchSize,
		format:  config.FormatText,
	}

	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Show a built-in colour palette",
		Long: `Print one of the built-in palettes used to pick scheme colours:

  balanced  256 colours in 8 rows of 32
  websafe   the 216 web-safe colours

With --png the palette is rendered as a swatch grid image instead.`,
		Example: `  wcagcheck palette --set websafe
  wcagcheck palette --light --format json
  wcagcheck palette --png palette.png --columns 16 --swatch 24`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var ov config.Overrides
			if cmd.Flags().Changed("format") {
				ov.Format = &opts.format
			}
			cfg, err := root.settings(ov)
			if err != nil {
				return err
			}

			p, err := palette.ByName(opts.set)
			if err != nil {
				return err
			}
			if opts.light {
				p = p.Light()
			}

			if opts.png != "" {
				return writePalettePNG(root, cmd, p, opts)
			}

			if cfg.Format == config.FormatJSON {
				data, err := p.ToJSON()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			pr := newPrinter(cmd.OutOrStdout())
			if pr.styled {
				pr.printf("%s", swatchGrid(p, opts.columns))
				return nil
			}
			pr.printf("%s", p.String())
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.set, "set", opts.set, "palette name (balanced, websafe)")
	flags.BoolVar(&opts.light, "light", false, "only colours with luminance above 0.5")
	flags.StringVar(&opts.png, "png", "", "render the palette to this PNG file")
	flags.IntVar(&opts.columns, "columns", opts.columns, "swatches per row")
	flags.IntVar(&opts.swatch, "swatch", opts.swatch, "swatch size in pixels for --png")
	flags.StringVarP(&opts.format, "format", "f", opts.format, "output format (text, json)")

	return cmd
}

func writePalettePNG(root *rootOptions, cmd *cobra.Command, p *palette.Palette, opts paletteOptions) error {
	f, err := os.Create(filepath.Clean(opts.png))
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", opts.png, err)
	}
	defer f.Close()

	if err := p.WritePNG(f, palette.RenderOptions{Columns: opts.columns, SwatchSize: opts.swatch}); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.png, err)
	}
	root.infof(cmd, "Wrote %d colours to %s\n", p.Len(), opts.png)
	return nil
}

// swatchGrid renders the palette as rows of coloured blocks.
func swatchGrid(p *palette.Palette, columns int) string {
	if columns < 1 {
		columns = 1
	}
	var b strings.Builder
	for i, c := range p.All() {
		b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render("  "))
		if (i+1)%columns == 0 || i == p.Len()-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
