package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/wcagcheck/internal/colour"
	"github.com/jmylchreest/wcagcheck/internal/config"
	"github.com/jmylchreest/wcagcheck/internal/contrast"
)

type checkOutput struct {
	Foreground colour.Color `json:"foreground"`
	Background colour.Color `json:"background"`
	contrast.Result
}

func newCheckCmd(root *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "check FOREGROUND BACKGROUND",
		Short: "Report the contrast ratio of a colour pair",
		Long: `Report the WCAG contrast ratio of two colours and whether it meets the
normal text (4.5:1) and large text (3:1) thresholds.

Colours are six-digit hex codes with an optional leading '#'.`,
		Example: `  wcagcheck check '#767676' '#FFFFFF'
  wcagcheck check 777777 fff000 --format json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var ov config.Overrides
			if cmd.Flags().Changed("format") {
				ov.Format = &format
			}
			cfg, err := root.settings(ov)
			if err != nil {
				return err
			}

			fg, bg, err := parsePair(args)
			if err != nil {
				return err
			}
			res := contrast.Evaluate(fg, bg)
			root.logger.Debug("evaluated pair", "foreground", fg.Hex(), "background", bg.Hex(), "ratio", res.Ratio)

			if cfg.Format == config.FormatJSON {
				return writeJSON(cmd.OutOrStdout(), checkOutput{Foreground: fg, Background: bg, Result: res})
			}

			p := newPrinter(cmd.OutOrStdout())
			p.printf("Foreground:  %s\n", p.swatch(fg))
			p.printf("Background:  %s\n", p.swatch(bg))
			if s := p.sample(fg, bg); s != "" {
				p.printf("Sample:      %s\n", s)
			}
			p.printf("Contrast:    %s\n", formatRatio(res.Ratio))
			p.printf("Normal text: %s (%s)\n", p.verdict(res.PassesNormalText), formatRatio(contrast.NormalTextThreshold))
			p.printf("Large text:  %s (%s)\n", p.verdict(res.PassesLargeText), formatRatio(contrast.LargeTextThreshold))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", config.FormatText, "output format (text, json)")
	return cmd
}

// parsePair parses foreground and background hex arguments.
func parsePair(args []string) (colour.Color, colour.Color, error) {
	fg, err := colour.ParseHex(args[0])
	if err != nil {
		return colour.Color{}, colour.Color{}, fmt.Errorf("foreground: %w", err)
	}
	bg, err := colour.ParseHex(args[1])
	if err != nil {
		return colour.Color{}, colour.Color{}, fmt.Errorf("background: %w", err)
	}
	return fg, bg, nil
}
