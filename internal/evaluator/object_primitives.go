package evaluator

import (
	"strconv"
)

// Integer is a 32-bit signed integer. Arithmetic on it is checked; see
// expressions_operators.go.
type Integer struct {
	Value int32
}

func (i *Integer) Type() ValueType { return INTEGER_VAL }
func (i *Integer) Inspect() string { return strconv.FormatInt(int64(i.Value), 10) }
func (i *Integer) value()          {}

// String
type String struct {
	Value string
}

func (s *String) Type() ValueType { return STRING_VAL }
func (s *String) Inspect() string { return s.Value }
func (s *String) value()          {}

// Boolean
type Boolean struct {
	Value bool
}

func (b *Boolean) Type() ValueType { return BOOLEAN_VAL }
func (b *Boolean) Inspect() string { return strconv.FormatBool(b.Value) }
func (b *Boolean) value()          {}

// Tuple is an immutable pair.
type Tuple struct {
	First  Value
	Second Value
}

func (t *Tuple) Type() ValueType { return TUPLE_VAL }
func (t *Tuple) Inspect() string {
	return "(" + t.First.Inspect() + ", " + t.Second.Inspect() + ")"
}
func (t *Tuple) value() {}
