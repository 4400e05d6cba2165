package evaluator

import (
	"github.com/funvibe/rinha/internal/ast"
)

func (e *Evaluator) evalCallExpression(node *ast.Call, env *Environment, tail bool) (Value, error) {
	callee, err := e.eval(node.Callee, env, false)
	if err != nil {
		return nil, err
	}
	fn, ok := callee.(*Closure)
	if !ok {
		return nil, newErrorAt(node.Callee.Loc(), TypeError, "cannot call a value of type %s", callee.Type())
	}

	args, err := e.evalArguments(node.Arguments, env)
	if err != nil {
		return nil, err
	}
	if err := checkArity(fn, args, node.Location); err != nil {
		return nil, err
	}

	if tail && e.TailCalls {
		return &tailCall{Func: fn, Args: args, Location: node.Location}, nil
	}
	return e.ApplyFunction(fn, args, node.Location)
}

// evalArguments evaluates strictly, left to right, stopping at the first error.
func (e *Evaluator) evalArguments(terms []ast.Term, env *Environment) ([]Value, error) {
	args := make([]Value, len(terms))
	for i, t := range terms {
		v, err := e.eval(t, env, false)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

func checkArity(fn *Closure, args []Value, loc ast.Location) error {
	if len(args) != len(fn.Parameters) {
		return newErrorAt(loc, ArityError, "%s expects %d argument(s), got %d",
			fn.displayName(), len(fn.Parameters), len(args))
	}
	return nil
}
