// Package diagnostics renders evaluation failures for humans and maps
// them to process exit codes.
package diagnostics

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/funvibe/rinha/internal/config"
	"github.com/funvibe/rinha/internal/evaluator"
	"github.com/funvibe/rinha/internal/parser"
)

// Exit codes
const (
	ExitOK           = 0
	ExitRuntimeError = 1
	ExitInputError   = 2
)

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
	ansiRed   = "\x1b[31m"
	ansiDim   = "\x1b[2m"
)

// Printer writes diagnostics to an error stream.
type Printer struct {
	w     io.Writer
	color bool
}

// NewPrinter returns a printer for w. With mode "auto", color is used only
// when w is a terminal and NO_COLOR is unset.
func NewPrinter(w io.Writer, mode string) *Printer {
	return &Printer{w: w, color: useColor(w, mode)}
}

func useColor(w io.Writer, mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	// NO_COLOR convention: https://no-color.org/
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Kind names the error class shown to the user.
func Kind(err error) string {
	var malformed *parser.MalformedInputError
	if errors.As(err, &malformed) {
		return string(evaluator.MalformedInputError)
	}
	if kind := evaluator.KindOf(err); kind != "" {
		return string(kind)
	}
	return "Error"
}

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var malformed *parser.MalformedInputError
	var unreadable *parser.ReadError
	if errors.As(err, &malformed) || errors.As(err, &unreadable) {
		return ExitInputError
	}
	if evaluator.KindOf(err) == evaluator.MalformedInputError {
		return ExitInputError
	}
	// Everything else failed while the program ran, e.g. a print that
	// could not be written.
	return ExitRuntimeError
}

// Report writes err: kind, location, message, then the call stack.
func (p *Printer) Report(err error) {
	if err == nil {
		return
	}
	var rt *evaluator.RuntimeError
	if errors.As(err, &rt) {
		fmt.Fprintf(p.w, "%s%s\n", p.paint(ansiBold+ansiRed, string(rt.Kind)), rt.Detail())
		if trace := rt.Trace(); trace != "" {
			fmt.Fprint(p.w, p.paint(ansiDim, trace))
		}
		return
	}
	var malformed *parser.MalformedInputError
	if errors.As(err, &malformed) {
		fmt.Fprintf(p.w, "%s at %s\n", p.paint(ansiBold+ansiRed, Kind(err)), malformed.Error())
		return
	}
	fmt.Fprintf(p.w, "%s: %s\n", p.paint(ansiBold+ansiRed, "error"), err.Error())
}

func (p *Printer) paint(code, s string) string {
	if !p.color {
		return s
	}
	return code + s + ansiReset
}
