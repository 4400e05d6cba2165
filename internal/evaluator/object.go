package evaluator

type ValueType string

const (
	INTEGER_VAL ValueType = "Int"
	STRING_VAL  ValueType = "Str"
	BOOLEAN_VAL ValueType = "Bool"
	TUPLE_VAL   ValueType = "Tuple"
	CLOSURE_VAL ValueType = "Closure"

	// Never visible to programs; see tailCall.
	TAIL_CALL_VAL ValueType = "TailCall"
)

// Value is a runtime value. The set of kinds is closed: the unexported
// marker keeps implementations inside this package.
type Value interface {
	Type() ValueType
	Inspect() string
	value()
}

var (
	TRUE  = &Boolean{Value: true}
	FALSE = &Boolean{Value: false}
)

func nativeBoolToBoolean(b bool) *Boolean {
	if b {
		return TRUE
	}
	return FALSE
}
