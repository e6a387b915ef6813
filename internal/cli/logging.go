package cli

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/chazuruo/pwconf/internal/config"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
}

// newLogger builds the stderr logger described by cfg.
// Unknown levels fall back to warn.
func newLogger(cfg *config.Config, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.WarnLevel
	}

	out := w
	if cfg.Log.Format == "console" {
		out = zerolog.ConsoleWriter{Out: w, NoColor: !cfg.Output.Color}
	}

	return zerolog.New(out).With().Timestamp().Logger().Level(level)
}
