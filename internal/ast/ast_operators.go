package ast

// BinaryOp enumerates the operators of a Binary term.
type BinaryOp int

const (
	Add BinaryOp = iota
	Sub
	Mul
	Div
	Rem
	Eq
	Neq
	Lt
	Gt
	Lte
	Gte
	And
	Or
)

var binaryOpNames = [...]string{
	Add: "Add",
	Sub: "Sub",
	Mul: "Mul",
	Div: "Div",
	Rem: "Rem",
	Eq:  "Eq",
	Neq: "Neq",
	Lt:  "Lt",
	Gt:  "Gt",
	Lte: "Lte",
	Gte: "Gte",
	And: "And",
	Or:  "Or",
}

var binaryOpSymbols = [...]string{
	Add: "+",
	Sub: "-",
	Mul: "*",
	Div: "/",
	Rem: "%",
	Eq:  "==",
	Neq: "!=",
	Lt:  "<",
	Gt:  ">",
	Lte: "<=",
	Gte: ">=",
	And: "&&",
	Or:  "||",
}

// String returns the interchange-format name of the operator.
func (op BinaryOp) String() string {
	if op < 0 || int(op) >= len(binaryOpNames) {
		return "BinaryOp(?)"
	}
	return binaryOpNames[op]
}

// Symbol returns the source-level spelling of the operator.
func (op BinaryOp) Symbol() string {
	if op < 0 || int(op) >= len(binaryOpSymbols) {
		return "?"
	}
	return binaryOpSymbols[op]
}

// ParseBinaryOp maps an interchange-format name back to its operator.
func ParseBinaryOp(name string) (BinaryOp, bool) {
	for i, n := range binaryOpNames {
		if n == name {
			return BinaryOp(i), true
		}
	}
	return 0, false
}
