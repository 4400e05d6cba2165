package evaluator

import (
	"fortio.org/log"

	"github.com/funvibe/rinha/internal/ast"
)

// pendingCall is a cache key waiting for the result of a tail-call chain.
type pendingCall struct {
	fn      *Closure
	args    []Value
	hash    uint64
	effects uint64 // print counter when this call started
}

// ApplyFunction calls fn with args. Calls in tail position of the body are
// run by the loop below rather than by recursion.
//
// Every call with key-eligible arguments first looks up the cache. On a miss
// the call becomes pending; when the chain produces its final value, each
// pending call is stored only if no print ran since that call started.
func (e *Evaluator) ApplyFunction(fn *Closure, args []Value, loc ast.Location) (Value, error) {
	if err := checkArity(fn, args, loc); err != nil {
		return nil, err
	}

	e.depth++
	defer func() { e.depth-- }()
	if e.MaxDepth > 0 && e.depth > e.MaxDepth {
		return nil, e.withStack(newErrorAt(loc, RecursionLimitError, "maximum recursion depth %d exceeded", e.MaxDepth))
	}

	e.PushCall(fn.displayName(), loc)
	defer e.PopCall()

	var pending []pendingCall
	var result Value
	for {
		if err := e.checkCancelled(loc); err != nil {
			return nil, e.withStack(err)
		}

		if e.Cache != nil {
			if h, ok := HashArgs(args); ok {
				if cached, hit := e.Cache.lookupHashed(fn, h, args); hit {
					if log.LogVerbose() {
						log.LogVf("cache hit: %s%s", fn.displayName(), argsString(args))
					}
					result = cached
					break
				}
				pending = append(pending, pendingCall{fn: fn, args: args, hash: h, effects: e.effects})
			}
		}

		e.calls++
		val, err := e.eval(fn.Body, fn.callFrame(args), e.TailCalls)
		if err != nil {
			return nil, e.withStack(err)
		}

		if tc, ok := val.(*tailCall); ok {
			fn, args = tc.Func, tc.Args
			e.replaceCall(fn.displayName(), tc.Location)
			continue
		}
		result = val
		break
	}

	for _, p := range pending {
		if p.effects == e.effects {
			e.Cache.storeHashed(p.fn, p.hash, p.args, result)
		}
	}
	return result, nil
}

func (e *Evaluator) checkCancelled(loc ast.Location) error {
	if e.Context == nil {
		return nil
	}
	select {
	case <-e.Context.Done():
		return newErrorAt(loc, CancelledError, "execution cancelled: %v", e.Context.Err())
	default:
		return nil
	}
}

func argsString(args []Value) string {
	s := "("
	for i, a := range args {
		if i > 0 {
			s += ", "
		}
		s += a.Inspect()
	}
	return s + ")"
}
