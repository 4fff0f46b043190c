// Package cli provides the command-line interface for wcagcheck.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/wcagcheck/internal/config"
	"github.com/jmylchreest/wcagcheck/internal/version"
)

// rootOptions carries global flags and the state resolved from them before
// any subcommand runs.
type rootOptions struct {
	verbose    bool
	quiet      bool
	configPath string

	cfg    config.Config
	logger hclog.Logger
}

// NewRootCmd builds the wcagcheck command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{
		cfg:    config.Default(),
		logger: hclog.NewNullLogger(),
	}

	cmd := &cobra.Command{
		Use:   "wcagcheck",
		Short: "WCAG 2.2 contrast checker and corrector",
		Long: `wcagcheck evaluates colour pairs against the WCAG 2.2 AA contrast
thresholds (4.5:1 for normal text, 3:1 for large text and UI components) and
finds the nearest compliant colour by adjusting lightness while keeping hue
and saturation.

It can also audit and repair button colour schemes covering the default,
hover, focused, active and disabled states.`,
		Version:      version.GetInfo().Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.init(cmd)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	cmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress non-error output")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/wcagcheck/config.yaml)")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.SetVersionTemplate(version.String() + "\n")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newCheckCmd(opts))
	cmd.AddCommand(newCorrectCmd(opts))
	cmd.AddCommand(newSchemeCmd(opts))
	cmd.AddCommand(newPaletteCmd(opts))

	return cmd
}

func (o *rootOptions) init(cmd *cobra.Command) error {
	level := hclog.Warn
	switch {
	case o.verbose:
		level = hclog.Debug
	case o.quiet:
		level = hclog.Off
	}
	o.logger = hclog.New(&hclog.LoggerOptions{
		Name:   "wcagcheck",
		Output: cmd.ErrOrStderr(),
		Level:  level,
	})

	cfg, path, err := config.Resolve(o.configPath, os.Getenv)
	if err != nil {
		return err
	}
	if path != "" {
		o.logger.Debug("loaded config file", "path", path)
	}
	o.cfg = cfg
	return nil
}

// settings applies command-line overrides on top of the resolved config and
// validates the result.
func (o *rootOptions) settings(ov config.Overrides) (config.Config, error) {
	cfg := o.cfg.Apply(ov)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// infof writes progress text to stderr unless --quiet is set.
func (o *rootOptions) infof(cmd *cobra.Command, format string, args ...any) {
	if o.quiet {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), format, args...)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
