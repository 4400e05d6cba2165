package evaluator

import (
	"fmt"
	"strings"

	"github.com/funvibe/rinha/internal/ast"
)

// tailCall is returned from a tail position instead of performing the call,
// so the caller's trampoline in ApplyFunction can run it without growing
// the Go stack. It never escapes the evaluator.
type tailCall struct {
	Func     *Closure
	Args     []Value
	Location ast.Location
}

func (tc *tailCall) Type() ValueType { return TAIL_CALL_VAL }
func (tc *tailCall) Inspect() string { return "TailCall" }
func (tc *tailCall) value()          {}

// ErrorKind classifies runtime failures.
type ErrorKind string

const (
	MalformedInputError  ErrorKind = "MalformedInputError"
	UnboundVariableError ErrorKind = "UnboundVariableError"
	TypeError            ErrorKind = "TypeError"
	ArityError           ErrorKind = "ArityError"
	DivisionByZeroError  ErrorKind = "DivisionByZeroError"
	OverflowError        ErrorKind = "OverflowError"
	RecursionLimitError  ErrorKind = "RecursionLimitError"
	CancelledError       ErrorKind = "CancelledError"
)

// RuntimeError aborts evaluation. Location is the innermost term that
// failed; StackTrace lists active calls, innermost first.
type RuntimeError struct {
	Kind       ErrorKind
	Message    string
	Location   ast.Location
	StackTrace []StackFrame

	located bool
}

// StackFrame for error stack traces
type StackFrame struct {
	Name     string
	Location ast.Location
}

func (e *RuntimeError) Error() string {
	return string(e.Kind) + e.Detail()
}

// Detail is the error text after the kind: location (when known) and message.
func (e *RuntimeError) Detail() string {
	if e.located {
		return fmt.Sprintf(" at %s: %s", e.Location, e.Message)
	}
	return ": " + e.Message
}

// Trace renders the stack trace, one frame per line.
func (e *RuntimeError) Trace() string {
	var b strings.Builder
	for _, frame := range e.StackTrace {
		fmt.Fprintf(&b, "  at %s (%s)\n", frame.Name, frame.Location)
	}
	return b.String()
}
