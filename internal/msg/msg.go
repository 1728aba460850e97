// Package msg prints user-facing status output to stderr.
//
// Informational messages are suppressed in silent mode; warnings and errors
// are always shown.
package msg

import (
	"io"
	"os"

	"github.com/fatih/color"
)

// Printer writes colourized status messages.
type Printer struct {
	silent bool
	out    io.Writer
}

// New returns a Printer writing to stderr.
func New(silent bool) *Printer {
	return &Printer{silent: silent, out: os.Stderr}
}

// NewWriter returns a Printer writing to the given writer; used in tests.
func NewWriter(silent bool, out io.Writer) *Printer {
	return &Printer{silent: silent, out: out}
}

// Infof prints a cyan status line unless silent.
func (p *Printer) Infof(format string, args ...interface{}) {
	if p.silent {
		return
	}
	color.New(color.FgCyan).Fprintf(p.out, format+"\n", args...)
}

// Successf prints a green success line unless silent.
func (p *Printer) Successf(format string, args ...interface{}) {
	if p.silent {
		return
	}
	color.New(color.FgGreen).Fprintf(p.out, "✓ "+format+"\n", args...)
}

// Warnf prints a yellow warning line. Warnings are shown even in silent mode.
func (p *Printer) Warnf(format string, args ...interface{}) {
	color.New(color.FgYellow).Fprintf(p.out, "⚠ "+format+"\n", args...)
}

// Errorf prints a red error line.
func (p *Printer) Errorf(format string, args ...interface{}) {
	color.New(color.FgRed).Fprintf(p.out, "✗ "+format+"\n", args...)
}
