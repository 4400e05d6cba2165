package evaluator

import (
	"context"
	"fmt"
	"io"
	"os"

	"fortio.org/log"

	"github.com/funvibe/rinha/internal/ast"
	"github.com/funvibe/rinha/internal/config"
)

// CallFrame represents a single frame in the call stack
type CallFrame struct {
	Name     string // Closure self-name or <anonymous>
	Location ast.Location
}

// Evaluator walks a term tree. It is not safe for concurrent use; the
// Cache it points to is.
type Evaluator struct {
	// Context for cancellation, checked on every call. Optional.
	Context context.Context

	// Out receives one line per print.
	Out io.Writer

	// Cache memoizes side-effect-free calls. nil disables memoization.
	Cache *Cache

	// MaxDepth bounds nested non-tail calls; 0 means unbounded (the host
	// stack is then the only limit).
	MaxDepth int

	// TailCalls makes calls in tail position reuse the current Go frame.
	TailCalls bool

	// CallStack for stack traces on errors
	CallStack []CallFrame

	// effects counts prints. A call may be cached only if the counter is
	// unchanged between its start and its result.
	effects uint64

	depth int
	calls uint64
}

func New() *Evaluator {
	return &Evaluator{
		Out:       os.Stdout,
		Cache:     NewCache(),
		MaxDepth:  config.DefaultMaxDepth,
		TailCalls: true,
	}
}

// Calls returns how many closure bodies have been evaluated, counting each
// iteration of a tail-call loop. Cache hits are not counted.
func (e *Evaluator) Calls() uint64 { return e.calls }

// Effects returns how many prints have run.
func (e *Evaluator) Effects() uint64 { return e.effects }

// Eval evaluates term in env.
func (e *Evaluator) Eval(term ast.Term, env *Environment) (Value, error) {
	return e.eval(term, env, false)
}

// eval evaluates term; with tail set, a call in tail position returns a
// *tailCall for the enclosing ApplyFunction loop instead of recursing.
func (e *Evaluator) eval(term ast.Term, env *Environment, tail bool) (Value, error) {
	obj, err := e.evalCore(term, env, tail)
	if err != nil {
		locate(err, term)
		return nil, err
	}
	return obj, nil
}

func (e *Evaluator) evalCore(term ast.Term, env *Environment, tail bool) (Value, error) {
	switch node := term.(type) {
	case *ast.Int:
		return &Integer{Value: node.Value}, nil
	case *ast.Str:
		return &String{Value: node.Value}, nil
	case *ast.Bool:
		return nativeBoolToBoolean(node.Value), nil
	case *ast.Var:
		return e.evalVar(node, env)
	case *ast.Let:
		return e.evalLet(node, env, tail)
	case *ast.If:
		return e.evalIf(node, env, tail)
	case *ast.Binary:
		left, err := e.eval(node.LHS, env, false)
		if err != nil {
			return nil, err
		}
		right, err := e.eval(node.RHS, env, false)
		if err != nil {
			return nil, err
		}
		return EvalBinary(node.Op, left, right)
	case *ast.Function:
		return &Closure{
			Name:       node.Name,
			Parameters: node.Parameters,
			Body:       node.Body,
			Env:        env, // Closure
			Location:   node.Location,
		}, nil
	case *ast.Call:
		return e.evalCallExpression(node, env, tail)
	case *ast.Print:
		return e.evalPrint(node, env)
	case *ast.Tuple:
		first, err := e.eval(node.First, env, false)
		if err != nil {
			return nil, err
		}
		second, err := e.eval(node.Second, env, false)
		if err != nil {
			return nil, err
		}
		return &Tuple{First: first, Second: second}, nil
	case *ast.First:
		t, err := e.evalTupleOperand(node.Value, env, "first")
		if err != nil {
			return nil, err
		}
		return t.First, nil
	case *ast.Second:
		t, err := e.evalTupleOperand(node.Value, env, "second")
		if err != nil {
			return nil, err
		}
		return t.Second, nil
	}
	return nil, newError(MalformedInputError, "unknown term: %s", ast.Kind(term))
}

func (e *Evaluator) evalVar(node *ast.Var, env *Environment) (Value, error) {
	if val, ok := env.Get(node.Name); ok {
		return val, nil
	}
	return nil, newError(UnboundVariableError, "unbound variable: %s", node.Name)
}

// evalLet evaluates Next in a child frame; the child is unreachable once
// Next returns, so the binding never leaks past the Let.
func (e *Evaluator) evalLet(node *ast.Let, env *Environment, tail bool) (Value, error) {
	val, err := e.eval(node.Value, env, false)
	if err != nil {
		return nil, err
	}
	if log.LogDebug() {
		log.Debugf("let %s = %s", node.Name, val.Inspect())
	}
	return e.eval(node.Next, env.Extend(node.Name, val), tail)
}

func (e *Evaluator) evalIf(node *ast.If, env *Environment, tail bool) (Value, error) {
	cond, err := e.eval(node.Condition, env, false)
	if err != nil {
		return nil, err
	}
	b, ok := cond.(*Boolean)
	if !ok {
		return nil, newErrorAt(node.Condition.Loc(), TypeError, "condition must be %s, got %s", BOOLEAN_VAL, cond.Type())
	}
	if b.Value {
		return e.eval(node.Then, env, tail)
	}
	return e.eval(node.Otherwise, env, tail)
}

func (e *Evaluator) evalPrint(node *ast.Print, env *Environment) (Value, error) {
	val, err := e.eval(node.Value, env, false)
	if err != nil {
		return nil, err
	}
	e.effects++
	if _, err := fmt.Fprintln(e.Out, val.Inspect()); err != nil {
		return nil, fmt.Errorf("print: %w", err)
	}
	return val, nil
}

func (e *Evaluator) evalTupleOperand(operand ast.Term, env *Environment, name string) (*Tuple, error) {
	val, err := e.eval(operand, env, false)
	if err != nil {
		return nil, err
	}
	t, ok := val.(*Tuple)
	if !ok {
		return nil, newErrorAt(operand.Loc(), TypeError, "%s expects a %s, got %s", name, TUPLE_VAL, val.Type())
	}
	return t, nil
}
