package evaluator

// Environment is one immutable binding plus a link to the enclosing frame.
// Extend never mutates the receiver, so a frame can be shared by every
// closure and child created from it without locking.
type Environment struct {
	name  string
	value Value
	outer *Environment
}

// NewEnvironment returns an empty root frame.
func NewEnvironment() *Environment {
	return &Environment{}
}

// NewEnclosedEnvironment binds name to val in a new child of outer.
func NewEnclosedEnvironment(outer *Environment, name string, val Value) *Environment {
	return &Environment{name: name, value: val, outer: outer}
}

// Extend returns a child frame binding name to val.
func (e *Environment) Extend(name string, val Value) *Environment {
	return NewEnclosedEnvironment(e, name, val)
}

// Get looks up name, innermost binding first.
func (e *Environment) Get(name string) (Value, bool) {
	for env := e; env != nil; env = env.outer {
		if env.value != nil && env.name == name {
			return env.value, true
		}
	}
	return nil, false
}
