package ast

import "fmt"

// Location is a byte span inside the source file the front-end parsed.
type Location struct {
	Start    int
	End      int
	Filename string
}

func (l Location) String() string {
	if l.Filename == "" {
		return fmt.Sprintf("%d-%d", l.Start, l.End)
	}
	return fmt.Sprintf("%s:%d-%d", l.Filename, l.Start, l.End)
}

// IsZero reports whether the location was never set.
func (l Location) IsZero() bool {
	return l.Start == 0 && l.End == 0 && l.Filename == ""
}

// Term is the base interface for all AST nodes.
// The set of implementations is closed: only this package can add one.
type Term interface {
	Accept(v Visitor)
	Loc() Location
	termNode()
}

// File is the root of an AST interchange document.
type File struct {
	Name       string
	Expression Term
	Location   Location
}

// Visitor walks the closed set of Term kinds.
type Visitor interface {
	VisitInt(n *Int)
	VisitStr(n *Str)
	VisitBool(n *Bool)
	VisitVar(n *Var)
	VisitFunction(n *Function)
	VisitCall(n *Call)
	VisitLet(n *Let)
	VisitIf(n *If)
	VisitBinary(n *Binary)
	VisitPrint(n *Print)
	VisitTuple(n *Tuple)
	VisitFirst(n *First)
	VisitSecond(n *Second)
}

// Kind returns the interchange-format tag of a term ("Int", "Let", ...).
func Kind(t Term) string {
	switch t.(type) {
	case *Int:
		return "Int"
	case *Str:
		return "Str"
	case *Bool:
		return "Bool"
	case *Var:
		return "Var"
	case *Function:
		return "Function"
	case *Call:
		return "Call"
	case *Let:
		return "Let"
	case *If:
		return "If"
	case *Binary:
		return "Binary"
	case *Print:
		return "Print"
	case *Tuple:
		return "Tuple"
	case *First:
		return "First"
	case *Second:
		return "Second"
	}
	return fmt.Sprintf("%T", t)
}
