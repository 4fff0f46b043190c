package cli

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/wcagcheck/internal/colour"
	"github.com/jmylchreest/wcagcheck/internal/config"
	"github.com/jmylchreest/wcagcheck/internal/contrast"
	"github.com/jmylchreest/wcagcheck/internal/correct"
)

var (
	_ pflag.Value = (*contrast.Target)(nil)
	_ pflag.Value = (*correct.Role)(nil)
)

// errUnreachable is returned when no lightness meets the target.
var errUnreachable = errors.New("target contrast is unreachable by adjusting lightness")

type correctOutput struct {
	Foreground colour.Color    `json:"foreground"`
	Background colour.Color    `json:"background"`
	Target     contrast.Target `json:"target"`
	Threshold  float64         `json:"threshold"`
	correct.Outcome
}

type correctOptions struct {
	target        contrast.Target
	adjust        correct.Role
	tolerance     float64
	maxIterations int
	format        string
}

func newCorrectCmd(root *rootOptions) *cobra.Command {
	opts := correctOptions{
		target:        contrast.Normal,
		adjust:        correct.Foreground,
		tolerance:     correct.DefaultTolerance,
		maxIterations: correct.DefaultMaxIterations,
		format:        config.FormatText,
	}

	cmd := &cobra.Command{
		Use:   "correct FOREGROUND BACKGROUND",
		Short: "Find the nearest compliant colour",
		Long: `Adjust the lightness of one colour of a pair until the pair meets the
target contrast ratio. Hue and saturation are preserved.

The colour is darkened when its partner is lighter and lightened otherwise.
If even pure black or white at that hue cannot meet the target, the extreme is
printed and the command fails.`,
		Example: `  wcagcheck correct '#777777' '#FFFFFF'
  wcagcheck correct '#FFFFFF' '#5A96C8' --adjust background
  wcagcheck correct FFFF00 FFFFFF --target large --format json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			var ov config.Overrides
			if flags.Changed("target") {
				ov.Target = &opts.target
			}
			if flags.Changed("tolerance") {
				ov.Tolerance = &opts.tolerance
			}
			if flags.Changed("max-iterations") {
				ov.MaxIterations = &opts.maxIterations
			}
			if flags.Changed("format") {
				ov.Format = &opts.format
			}
			cfg, err := root.settings(ov)
			if err != nil {
				return err
			}

			fg, bg, err := parsePair(args)
			if err != nil {
				return err
			}

			corrector := cfg.Corrector().WithLogger(root.logger.Named("correct"))
			outcome := corrector.Correct(fg, bg, cfg.Target, opts.adjust)

			if cfg.Format == config.FormatJSON {
				if err := writeJSON(cmd.OutOrStdout(), correctOutput{
					Foreground: fg,
					Background: bg,
					Target:     cfg.Target,
					Threshold:  cfg.Target.Threshold(),
					Outcome:    outcome,
				}); err != nil {
					return err
				}
			} else {
				printCorrection(newPrinter(cmd.OutOrStdout()), fg, bg, cfg.Target, outcome)
			}

			if !outcome.Reached {
				return errUnreachable
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.VarP(&opts.target, "target", "t", "contrast target (normal, large)")
	flags.VarP(&opts.adjust, "adjust", "a", "colour to adjust (foreground, background)")
	flags.Float64Var(&opts.tolerance, "tolerance", opts.tolerance, "stop once the ratio is within this much of the target")
	flags.IntVar(&opts.maxIterations, "max-iterations", opts.maxIterations, "maximum bisection steps")
	flags.StringVarP(&opts.format, "format", "f", opts.format, "output format (text, json)")

	return cmd
}

func printCorrection(p printer, fg, bg colour.Color, target contrast.Target, o correct.Outcome) {
	original, partner := fg, bg
	if o.Adjusted == correct.Background {
		original, partner = bg, fg
	}

	p.printf("Adjusted:    %s\n", o.Adjusted)
	p.printf("Original:    %s\n", p.swatch(original))
	p.printf("Corrected:   %s\n", p.swatch(o.Color))
	p.printf("Against:     %s\n", p.swatch(partner))

	newFg, newBg := o.Color, bg
	if o.Adjusted == correct.Background {
		newFg, newBg = fg, o.Color
	}
	if s := p.sample(newFg, newBg); s != "" {
		p.printf("Sample:      %s\n", s)
	}

	p.printf("Contrast:    %s (was %s)\n", formatRatio(o.Ratio), formatRatio(contrast.Ratio(fg, bg)))
	p.printf("Target:      %s %s %s\n", target, formatRatio(target.Threshold()), p.verdict(o.Reached))
	p.printf("Iterations:  %d\n", o.Iterations)
}
