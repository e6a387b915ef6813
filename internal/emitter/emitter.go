// Package emitter writes the project's Playwright test-runner configuration.
//
// The configuration text is a fixed literal compiled into the binary. It is
// always written to playwright.config.js in the directory that holds the
// running executable, replacing whatever was there before.
package emitter

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	pwerrors "github.com/chazuruo/pwconf/internal/errors"
)

// FileName is the name of the emitted file.
const FileName = "playwright.config.js"

//go:embed playwright.config.js
var configText string

// Result describes a completed emission.
type Result struct {
	// Path is the absolute path of the written file.
	Path string
	// Bytes is the number of bytes written.
	Bytes int
}

// Emitter resolves the output path and writes the config text there.
type Emitter struct {
	log   zerolog.Logger
	dir   func() (string, error)
	color bool
}

// Option configures an Emitter.
type Option func(*Emitter)

// WithLogger sets the diagnostic logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Emitter) { e.log = l }
}

// WithDir pins the output directory instead of the executable's directory.
func WithDir(dir string) Option {
	return func(e *Emitter) {
		e.dir = func() (string, error) { return dir, nil }
	}
}

// WithColor toggles styling of the report line.
func WithColor(enabled bool) Option {
	return func(e *Emitter) { e.color = enabled }
}

// New creates an Emitter that targets the running executable's directory.
func New(opts ...Option) *Emitter {
	e := &Emitter{
		log:   zerolog.Nop(),
		dir:   executableDir,
		color: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// executableDir returns the directory containing the running binary,
// with symlinks resolved. The working directory plays no part.
func executableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("resolve executable symlinks: %w", err)
	}
	return filepath.Dir(exe), nil
}

// BuildConfigText returns the literal Playwright configuration.
func BuildConfigText() string {
	return configText
}

// ResolveOutputPath returns the absolute path of the file to write.
func (e *Emitter) ResolveOutputPath() (string, error) {
	dir, err := e.dir()
	if err != nil {
		return "", &pwerrors.EmitError{Op: "resolve", Err: err}
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", &pwerrors.EmitError{Op: "resolve", Path: dir, Err: err}
	}

	path := filepath.Join(abs, FileName)
	e.log.Debug().Str("path", path).Msg("resolved output path")
	return path, nil
}

// WriteConfig creates or truncates path and writes text to it.
// It returns the number of bytes written. The file handle is always
// closed; a close failure is reported only if the write succeeded.
func (e *Emitter) WriteConfig(path, text string) (n int, err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return 0, &pwerrors.EmitError{Op: "write", Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &pwerrors.EmitError{Op: "close", Path: path, Err: cerr}
		}
	}()

	n, err = f.WriteString(text)
	if err != nil {
		return n, &pwerrors.EmitError{Op: "write", Path: path, Err: err}
	}

	e.log.Debug().Int("bytes", n).Str("path", path).Msg("wrote config")
	return n, nil
}

// Report prints the one-line confirmation for a successful write.
func (e *Emitter) Report(w io.Writer, bytes int, path string) error {
	mark := "✓"
	if e.color {
		// The renderer drops ANSI codes when w is not a terminal.
		mark = lipgloss.NewRenderer(w).NewStyle().
			Foreground(lipgloss.Color("2")).
			Render(mark)
	}

	if _, err := fmt.Fprintf(w, "%s Wrote %d bytes to %s\n", mark, bytes, path); err != nil {
		return pwerrors.Wrap(err, "report")
	}
	return nil
}

// Emit resolves the output path and writes the config text to it.
func (e *Emitter) Emit() (Result, error) {
	path, err := e.ResolveOutputPath()
	if err != nil {
		return Result{}, err
	}

	n, err := e.WriteConfig(path, BuildConfigText())
	return Result{Path: path, Bytes: n}, err
}
