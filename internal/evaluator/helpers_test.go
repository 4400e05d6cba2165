package evaluator

import (
	"bytes"
	"testing"

	"github.com/funvibe/rinha/internal/ast"
)

// Term builders for tests.

func num(v int32) ast.Term     { return &ast.Int{Value: v} }
func str(s string) ast.Term    { return &ast.Str{Value: s} }
func boolean(b bool) ast.Term  { return &ast.Bool{Value: b} }
func ref(name string) ast.Term { return &ast.Var{Name: name} }

func bin(lhs ast.Term, op ast.BinaryOp, rhs ast.Term) ast.Term {
	return &ast.Binary{Op: op, LHS: lhs, RHS: rhs}
}

// let binds name; a Function value takes name as its self-name, as the
// decoder does.
func let(name string, value, next ast.Term) ast.Term {
	if fn, ok := value.(*ast.Function); ok && fn.Name == "" {
		fn.Name = name
	}
	return &ast.Let{Name: name, Value: value, Next: next}
}

func lambda(body ast.Term, params ...string) *ast.Function {
	return &ast.Function{Parameters: params, Body: body}
}

func call(callee ast.Term, args ...ast.Term) ast.Term {
	return &ast.Call{Callee: callee, Arguments: args}
}

func iff(cond, then, otherwise ast.Term) ast.Term {
	return &ast.If{Condition: cond, Then: then, Otherwise: otherwise}
}

func printOf(v ast.Term) ast.Term  { return &ast.Print{Value: v} }
func tuple(a, b ast.Term) ast.Term { return &ast.Tuple{First: a, Second: b} }
func first(v ast.Term) ast.Term    { return &ast.First{Value: v} }
func second(v ast.Term) ast.Term   { return &ast.Second{Value: v} }

// fibProgram defines the naive recursive fib and calls it on n.
func fibProgram(next ast.Term) ast.Term {
	n := ref("n")
	body := iff(bin(n, ast.Lt, num(2)),
		n,
		bin(call(ref("fib"), bin(n, ast.Sub, num(1))), ast.Add, call(ref("fib"), bin(n, ast.Sub, num(2)))))
	return let("fib", lambda(body, "n"), next)
}

// countProgram defines a tail-recursive counter: count(n, acc) = count(n-1, acc+1).
func countProgram(next ast.Term) ast.Term {
	body := iff(bin(ref("n"), ast.Eq, num(0)),
		ref("acc"),
		call(ref("count"), bin(ref("n"), ast.Sub, num(1)), bin(ref("acc"), ast.Add, num(1))))
	return let("count", lambda(body, "n", "acc"), next)
}

func newTestEvaluator(memo bool) (*Evaluator, *bytes.Buffer) {
	var out bytes.Buffer
	e := New()
	e.Out = &out
	if !memo {
		e.Cache = nil
	}
	return e, &out
}

// evalTerm runs term on a fresh evaluator and returns the value and output.
func evalTerm(t *testing.T, memo bool, term ast.Term) (Value, string, error) {
	t.Helper()
	e, out := newTestEvaluator(memo)
	v, err := e.Eval(term, NewEnvironment())
	return v, out.String(), err
}

func mustEval(t *testing.T, memo bool, term ast.Term) (Value, string) {
	t.Helper()
	v, out, err := evalTerm(t, memo, term)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return v, out
}

func wantKind(t *testing.T, err error, kind ErrorKind) *RuntimeError {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s, got no error", kind)
	}
	rt, ok := err.(*RuntimeError)
	if !ok {
		t.Fatalf("expected *RuntimeError, got %T: %v", err, err)
	}
	if rt.Kind != kind {
		t.Fatalf("kind = %s, want %s (%v)", rt.Kind, kind, err)
	}
	return rt
}
