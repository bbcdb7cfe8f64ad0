package diagnostics

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// ANSI fragments used for colored output. Kept minimal on purpose: a code
// highlight is enough to scan a wall of compiler output.
const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
	ansiDim    = "\x1b[2m"
)

// ColorMode controls whether Render emits ANSI escapes.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ColorEnabled resolves a ColorMode against the output handle. ColorAuto
// enables color only when f is a terminal.
func ColorEnabled(mode ColorMode, f *os.File) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		if f == nil {
			return false
		}
		fd := f.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
}

// Render writes one diagnostic to w.
func Render(w io.Writer, d Diagnostic, color bool) error {
	if !color {
		_, err := fmt.Fprintln(w, d.String())
		return err
	}
	tint := ansiRed
	if d.Severity == SeverityWarning {
		tint = ansiYellow
	}
	if _, err := fmt.Fprintf(w, "%s%s[%s]%s %sat %s:%s %s\n",
		tint, d.Severity, d.Code, ansiReset,
		ansiDim, d.Span, ansiReset,
		d.Message,
	); err != nil {
		return err
	}
	for _, hint := range d.Hints {
		if _, err := fmt.Fprintf(w, "  %shint:%s %s\n", ansiDim, ansiReset, hint); err != nil {
			return err
		}
	}
	return nil
}

// RenderAll writes diagnostics in order, errors and warnings interleaved as
// given.
func RenderAll(w io.Writer, ds []Diagnostic, color bool) error {
	for _, d := range ds {
		if err := Render(w, d, color); err != nil {
			return err
		}
	}
	return nil
}
