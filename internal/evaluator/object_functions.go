package evaluator

import (
	"github.com/funvibe/rinha/internal/ast"
	"github.com/funvibe/rinha/internal/config"
)

// Closure is a function value paired with the frame it was defined in.
// Closures compare by identity: the *Closure pointer is the cache key
// component, never the name.
type Closure struct {
	Name       string // self-name, empty for anonymous functions
	Parameters []string
	Body       ast.Term
	Env        *Environment
	Location   ast.Location
}

func (c *Closure) Type() ValueType { return CLOSURE_VAL }

// Inspect never walks Env: a recursive closure's frame can reach the
// closure itself.
func (c *Closure) Inspect() string { return config.ClosurePlaceholder }
func (c *Closure) value()          {}

func (c *Closure) displayName() string {
	if c.Name == "" {
		return "<anonymous>"
	}
	return c.Name
}

// callFrame builds the environment a call runs in: the captured frame,
// then the self-binding, then the parameters (which may shadow it).
func (c *Closure) callFrame(args []Value) *Environment {
	env := c.Env
	if c.Name != "" {
		env = env.Extend(c.Name, c)
	}
	for i, p := range c.Parameters {
		env = env.Extend(p, args[i])
	}
	return env
}
