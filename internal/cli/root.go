// Package cli provides Cobra command definitions for pwconf.
package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/chazuruo/pwconf/internal/config"
	"github.com/chazuruo/pwconf/internal/emitter"
)

// NewRootCommand creates the pwconf root command. Running it writes
// playwright.config.js next to the binary. Extra emitter options are
// applied after the ones derived from settings.
func NewRootCommand(opts ...emitter.Option) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pwconf",
		Short: "Write the Playwright test configuration",
		Long: `pwconf writes playwright.config.js into the directory that contains
the pwconf binary, replacing any existing file, and reports the number of
bytes written.

The configuration targets http://localhost:8009 and runs an authentication
setup project before the chromium project.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEmit(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	cmd.CompletionOptions.DisableDefaultCmd = true

	return cmd
}

func runEmit(stdout, stderr io.Writer, extra []emitter.Option) error {
	// Settings only shape logging and styling, so a bad file never blocks the write.
	cfg, settingsErr := config.LoadWithDefaults()
	if settingsErr != nil {
		cfg = config.DefaultConfig()
	}

	logger := newLogger(cfg, stderr)
	if settingsErr != nil {
		logger.Warn().Err(settingsErr).Msg("ignoring pwconf settings; using defaults")
	}

	opts := append([]emitter.Option{
		emitter.WithLogger(logger),
		emitter.WithColor(cfg.Output.Color),
	}, extra...)
	e := emitter.New(opts...)

	res, err := e.Emit()
	if err != nil {
		return err
	}

	return e.Report(stdout, res.Bytes, res.Path)
}
