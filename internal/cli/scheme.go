package cli

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jmylchreest/wcagcheck/internal/config"
	"github.com/jmylchreest/wcagcheck/internal/contrast"
	"github.com/jmylchreest/wcagcheck/internal/palette"
	"github.com/jmylchreest/wcagcheck/internal/scheme"
)

// defaultSource labels the built-in scheme in output.
const defaultSource = "(default)"

// schemeTargets holds the threshold flags shared by scheme subcommands.
type schemeTargets struct {
	text      contrast.Target
	component contrast.Target
}

func (t *schemeTargets) register(cmd *cobra.Command) {
	t.text = contrast.Normal
	t.component = contrast.Large
	cmd.Flags().VarP(&t.text, "target", "t", "contrast target for button text (normal, large)")
	cmd.Flags().Var(&t.component, "component-target", "contrast target for button fills against the app background (normal, large)")
}

func (t *schemeTargets) overrides(cmd *cobra.Command) config.Overrides {
	var ov config.Overrides
	if cmd.Flags().Changed("target") {
		ov.Target = &t.text
	}
	if cmd.Flags().Changed("component-target") {
		ov.ComponentTarget = &t.component
	}
	return ov
}

func newSchemeCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scheme",
		Short: "Audit, fix and generate button colour schemes",
		Long: `Work with button colour schemes: a light application background plus a
text and fill colour for each of the default, hover, focused, active and
disabled states.

Scheme files are JSON, YAML or TOML, chosen by extension, and may be
compressed with xz (.xz), gzip (.gz) or bzip2 (.bz2, read only).`,
	}

	cmd.AddCommand(newSchemeCheckCmd(root))
	cmd.AddCommand(newSchemeFixCmd(root))
	cmd.AddCommand(newSchemeRandomCmd(root))
	return cmd
}

type schemeAudit struct {
	Source    string         `json:"source"`
	Compliant bool           `json:"compliant"`
	Checks    []scheme.Check `json:"checks"`
}

func newSchemeCheckCmd(root *rootOptions) *cobra.Command {
	var (
		targets schemeTargets
		format  string
	)

	cmd := &cobra.Command{
		Use:   "check [FILE...]",
		Short: "Audit schemes for contrast compliance",
		Long: `Check every state of one or more schemes: button text against the button
fill, and the button fill against the application background. With no files
the built-in scheme is checked.

Exits non-zero if any scheme has a failing check.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ov := targets.overrides(cmd)
			if cmd.Flags().Changed("format") {
				ov.Format = &format
			}
			cfg, err := root.settings(ov)
			if err != nil {
				return err
			}

			audits, err := auditFiles(cmd, args, cfg)
			if err != nil {
				return err
			}

			failing := 0
			for _, a := range audits {
				if !a.Compliant {
					failing++
				}
			}

			if cfg.Format == config.FormatJSON {
				if err := writeJSON(cmd.OutOrStdout(), audits); err != nil {
					return err
				}
			} else {
				p := newPrinter(cmd.OutOrStdout())
				for i, a := range audits {
					if i > 0 {
						p.printf("\n")
					}
					printAudit(p, a)
				}
			}

			if failing > 0 {
				return fmt.Errorf("%d of %d schemes are not compliant", failing, len(audits))
			}
			return nil
		},
	}

	targets.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", config.FormatText, "output format (text, json)")
	return cmd
}

// auditFiles loads and audits each file concurrently, preserving argument
// order in the result.
func auditFiles(cmd *cobra.Command, paths []string, cfg config.Config) ([]schemeAudit, error) {
	if len(paths) == 0 {
		report := scheme.Audit(scheme.Default(), cfg.Target, cfg.ComponentTarget)
		return []schemeAudit{{Source: defaultSource, Compliant: report.Compliant(), Checks: report.Checks}}, nil
	}

	audits := make([]schemeAudit, len(paths))
	g, _ := errgroup.WithContext(cmd.Context())
	g.SetLimit(8)
	for i, path := range paths {
		g.Go(func() error {
			s, err := scheme.Load(path)
			if err != nil {
				return err
			}
			report := scheme.Audit(s, cfg.Target, cfg.ComponentTarget)
			audits[i] = schemeAudit{Source: path, Compliant: report.Compliant(), Checks: report.Checks}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return audits, nil
}

func printAudit(p printer, a schemeAudit) {
	p.printf("%s: %s\n\n", a.Source, p.verdict(a.Compliant))

	table := NewTable([]string{"STATE", "CHECK", "FOREGROUND", "BACKGROUND", "RATIO", "TARGET", "RESULT"})
	table.AlignRight(4)
	for _, c := range a.Checks {
		table.AddRow([]string{
			string(c.State),
			string(c.Kind),
			p.swatch(c.Foreground),
			p.swatch(c.Background),
			formatRatio(c.Result.Ratio),
			c.Target.String(),
			p.verdict(c.Passed()),
		})
	}
	p.printf("%s", table.Render())
}

func newSchemeFixCmd(root *rootOptions) *cobra.Command {
	var (
		targets schemeTargets
		output  string
	)

	cmd := &cobra.Command{
		Use:   "fix [FILE]",
		Short: "Correct a scheme so every state is compliant",
		Long: `Correct each state of a scheme: the text colour against its fill, then the
fill against the application background, re-correcting the text if the fill
changed. The application background is never changed.

With no file the built-in scheme is fixed. The result is written to --output,
or to stdout as JSON.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.settings(targets.overrides(cmd))
			if err != nil {
				return err
			}

			s := scheme.Default()
			source := defaultSource
			if len(args) == 1 {
				source = args[0]
				if s, err = scheme.Load(source); err != nil {
					return err
				}
			}

			fixer := scheme.NewFixer(cfg.Corrector(), cfg.Target, cfg.ComponentTarget, root.logger.Named("fix"))
			fixed, fixes := fixer.Fix(s)

			report := scheme.Audit(fixed, cfg.Target, cfg.ComponentTarget)
			for _, c := range report.Failures() {
				root.logger.Warn("check still failing after fix",
					"state", string(c.State), "kind", string(c.Kind), "ratio", c.Result.Ratio)
			}
			root.infof(cmd, "Applied %d fixes to %s\n", fixes, source)

			return writeScheme(cmd, fixed, output)
		},
	}

	targets.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the scheme to this file (.json, .yaml, .toml, optionally .xz or .gz)")
	return cmd
}

func newSchemeRandomCmd(root *rootOptions) *cobra.Command {
	var (
		targets schemeTargets
		seed    uint64
		set     string
		output  string
	)

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate a random compliant scheme",
		Long: `Generate a scheme from palette colours: a light application background and
darker button fills, each corrected until the scheme is compliant.

The same --seed always produces the same scheme.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.settings(targets.overrides(cmd))
			if err != nil {
				return err
			}

			p, err := palette.ByName(set)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("seed") {
				seed = rand.Uint64()
			}
			root.logger.Debug("generating scheme", "seed", seed, "palette", p.Name)

			fixer := scheme.NewFixer(cfg.Corrector(), cfg.Target, cfg.ComponentTarget, root.logger.Named("random"))
			s := fixer.Random(rand.New(rand.NewPCG(seed, seed)), p)

			return writeScheme(cmd, s, output)
		},
	}

	targets.register(cmd)
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (default: random)")
	cmd.Flags().StringVar(&set, "set", "balanced", "palette to draw colours from (balanced, websafe)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the scheme to this file (.json, .yaml, .toml, optionally .xz or .gz)")
	return cmd
}

// writeScheme saves s to path, or prints it as JSON when path is empty.
func writeScheme(cmd *cobra.Command, s scheme.Scheme, path string) error {
	if path == "" {
		data, err := scheme.Encode(s, scheme.FormatJSON)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	return scheme.Save(path, s)
}
