package ast

// Int is an integer literal. Literals are 32-bit signed.
type Int struct {
	Value    int32
	Location Location
}

func (n *Int) Accept(v Visitor) { v.VisitInt(n) }
func (n *Int) Loc() Location    { return n.Location }
func (n *Int) termNode()        {}

// Str is a string literal.
type Str struct {
	Value    string
	Location Location
}

func (n *Str) Accept(v Visitor) { v.VisitStr(n) }
func (n *Str) Loc() Location    { return n.Location }
func (n *Str) termNode()        {}

// Bool is a boolean literal.
type Bool struct {
	Value    bool
	Location Location
}

func (n *Bool) Accept(v Visitor) { v.VisitBool(n) }
func (n *Bool) Loc() Location    { return n.Location }
func (n *Bool) termNode()        {}

// Var references a binding by name.
type Var struct {
	Name     string
	Location Location
}

func (n *Var) Accept(v Visitor) { v.VisitVar(n) }
func (n *Var) Loc() Location    { return n.Location }
func (n *Var) termNode()        {}

// Function is an anonymous function literal.
// Name is the optional self-name; when set, the body can call the
// function recursively through it.
type Function struct {
	Parameters []string
	Body       Term
	Name       string
	Location   Location
}

func (n *Function) Accept(v Visitor) { v.VisitFunction(n) }
func (n *Function) Loc() Location    { return n.Location }
func (n *Function) termNode()        {}

// Call applies Callee to Arguments, evaluated left to right.
type Call struct {
	Callee    Term
	Arguments []Term
	Location  Location
}

func (n *Call) Accept(v Visitor) { v.VisitCall(n) }
func (n *Call) Loc() Location    { return n.Location }
func (n *Call) termNode()        {}

// Let binds Name to Value while evaluating Next.
type Let struct {
	Name     string
	Value    Term
	Next     Term
	Location Location
}

func (n *Let) Accept(v Visitor) { v.VisitLet(n) }
func (n *Let) Loc() Location    { return n.Location }
func (n *Let) termNode()        {}

// If evaluates exactly one of Then or Otherwise.
type If struct {
	Condition Term
	Then      Term
	Otherwise Term
	Location  Location
}

func (n *If) Accept(v Visitor) { v.VisitIf(n) }
func (n *If) Loc() Location    { return n.Location }
func (n *If) termNode()        {}

// Binary applies Op to LHS and RHS.
type Binary struct {
	Op       BinaryOp
	LHS      Term
	RHS      Term
	Location Location
}

func (n *Binary) Accept(v Visitor) { v.VisitBinary(n) }
func (n *Binary) Loc() Location    { return n.Location }
func (n *Binary) termNode()        {}

// Print writes the display form of Value and yields Value.
type Print struct {
	Value    Term
	Location Location
}

func (n *Print) Accept(v Visitor) { v.VisitPrint(n) }
func (n *Print) Loc() Location    { return n.Location }
func (n *Print) termNode()        {}

// Tuple builds a pair.
type Tuple struct {
	First    Term
	Second   Term
	Location Location
}

func (n *Tuple) Accept(v Visitor) { v.VisitTuple(n) }
func (n *Tuple) Loc() Location    { return n.Location }
func (n *Tuple) termNode()        {}

// First projects the first component of a tuple.
type First struct {
	Value    Term
	Location Location
}

func (n *First) Accept(v Visitor) { v.VisitFirst(n) }
func (n *First) Loc() Location    { return n.Location }
func (n *First) termNode()        {}

// Second projects the second component of a tuple.
type Second struct {
	Value    Term
	Location Location
}

func (n *Second) Accept(v Visitor) { v.VisitSecond(n) }
func (n *Second) Loc() Location    { return n.Location }
func (n *Second) termNode()        {}
