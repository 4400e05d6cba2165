package evaluator

import (
	"errors"
	"fmt"

	"github.com/funvibe/rinha/internal/ast"
)

func newError(kind ErrorKind, format string, a ...interface{}) *RuntimeError {
	return &RuntimeError{Kind: kind, Message: fmt.Sprintf(format, a...)}
}

func newErrorAt(loc ast.Location, kind ErrorKind, format string, a ...interface{}) *RuntimeError {
	err := newError(kind, format, a...)
	err.Location = loc
	err.located = true
	return err
}

// KindOf returns the kind of a runtime error, or "" for other errors.
func KindOf(err error) ErrorKind {
	var rt *RuntimeError
	if errors.As(err, &rt) {
		return rt.Kind
	}
	return ""
}

// locate fills in the location of the innermost failing term.
func locate(err error, term ast.Term) {
	var rt *RuntimeError
	if errors.As(err, &rt) && !rt.located && term != nil {
		rt.Location = term.Loc()
		rt.located = true
	}
}

// PushCall adds a call frame to the stack
func (e *Evaluator) PushCall(name string, loc ast.Location) {
	e.CallStack = append(e.CallStack, CallFrame{Name: name, Location: loc})
}

// PopCall removes the top call frame
func (e *Evaluator) PopCall() {
	if len(e.CallStack) > 0 {
		e.CallStack = e.CallStack[:len(e.CallStack)-1]
	}
}

// replaceCall swaps the top frame when a tail call reuses it.
func (e *Evaluator) replaceCall(name string, loc ast.Location) {
	if len(e.CallStack) > 0 {
		e.CallStack[len(e.CallStack)-1] = CallFrame{Name: name, Location: loc}
	}
}

// withStack attaches the current call stack, innermost first, to a runtime
// error that does not have one yet.
func (e *Evaluator) withStack(err error) error {
	var rt *RuntimeError
	if !errors.As(err, &rt) || rt.StackTrace != nil || len(e.CallStack) == 0 {
		return err
	}
	rt.StackTrace = make([]StackFrame, len(e.CallStack))
	for i, frame := range e.CallStack {
		rt.StackTrace[len(e.CallStack)-1-i] = StackFrame{Name: frame.Name, Location: frame.Location}
	}
	return err
}
