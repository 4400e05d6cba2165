package prettyprinter

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/funvibe/rinha/internal/ast"
)

// --- Code Printer (Output looks like rinha source code) ---

// Operator precedence (higher = binds tighter)
var operatorPrecedence = map[ast.BinaryOp]int{
	ast.Or:  1,
	ast.And: 2,
	ast.Eq:  3,
	ast.Neq: 3,
	ast.Lt:  4,
	ast.Gt:  4,
	ast.Lte: 4,
	ast.Gte: 4,
	ast.Add: 7,
	ast.Sub: 7,
	ast.Mul: 8,
	ast.Div: 8,
	ast.Rem: 8,
}

func getPrecedence(op ast.BinaryOp) int {
	if p, ok := operatorPrecedence[op]; ok {
		return p
	}
	return 10
}

type CodePrinter struct {
	buf    bytes.Buffer
	indent int
}

func NewCodePrinter() *CodePrinter {
	return &CodePrinter{}
}

// Print renders a term as source text.
func Print(t ast.Term) string {
	p := NewCodePrinter()
	p.printExpr(t, 0, false)
	return p.String()
}

func (p *CodePrinter) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString("  ")
	}
}

// printExpr prints a term, adding parentheses only if needed.
// All binary operators are left-associative.
func (p *CodePrinter) printExpr(t ast.Term, parentPrec int, isRight bool) {
	if t == nil {
		p.write("<???>")
		return
	}
	b, ok := t.(*ast.Binary)
	if !ok {
		if parentPrec > 0 && isBlock(t) {
			p.printGrouped(t)
			return
		}
		t.Accept(p)
		return
	}
	prec := getPrecedence(b.Op)
	needParens := prec < parentPrec || (prec == parentPrec && isRight)
	if needParens {
		p.write("(")
	}
	p.printExpr(b.LHS, prec, false)
	p.write(" " + b.Op.Symbol() + " ")
	p.printExpr(b.RHS, prec, true)
	if needParens {
		p.write(")")
	}
}

// isBlock reports terms that extend as far right as possible and so need
// parentheses inside an operator expression.
func isBlock(t ast.Term) bool {
	switch t.(type) {
	case *ast.Let, *ast.If, *ast.Function:
		return true
	}
	return false
}

func (p *CodePrinter) printGrouped(t ast.Term) {
	p.write("(")
	t.Accept(p)
	p.write(")")
}

func (p *CodePrinter) printList(terms []ast.Term) {
	for i, t := range terms {
		if i > 0 {
			p.write(", ")
		}
		p.printExpr(t, 0, false)
	}
}

func (p *CodePrinter) String() string {
	return p.buf.String()
}

func (p *CodePrinter) write(s string) {
	p.buf.WriteString(s)
}

func (p *CodePrinter) writeln() {
	p.buf.WriteByte('\n')
	p.writeIndent()
}

func (p *CodePrinter) VisitInt(n *ast.Int)   { p.write(strconv.FormatInt(int64(n.Value), 10)) }
func (p *CodePrinter) VisitStr(n *ast.Str)   { p.write(strconv.Quote(n.Value)) }
func (p *CodePrinter) VisitBool(n *ast.Bool) { p.write(strconv.FormatBool(n.Value)) }
func (p *CodePrinter) VisitVar(n *ast.Var)   { p.write(n.Name) }

func (p *CodePrinter) VisitFunction(n *ast.Function) {
	p.write("fn (" + strings.Join(n.Parameters, ", ") + ") => {")
	p.indent++
	p.writeln()
	p.printExpr(n.Body, 0, false)
	p.indent--
	p.writeln()
	p.write("}")
}

func (p *CodePrinter) VisitCall(n *ast.Call) {
	switch n.Callee.(type) {
	case *ast.Var, *ast.Call:
		p.printExpr(n.Callee, 0, false)
	default:
		p.printGrouped(n.Callee)
	}
	p.write("(")
	p.printList(n.Arguments)
	p.write(")")
}

func (p *CodePrinter) VisitLet(n *ast.Let) {
	p.write("let " + n.Name + " = ")
	if _, nested := n.Value.(*ast.Let); nested {
		p.printGrouped(n.Value)
	} else {
		p.printExpr(n.Value, 0, false)
	}
	p.write(";")
	p.writeln()
	p.printExpr(n.Next, 0, false)
}

func (p *CodePrinter) VisitIf(n *ast.If) {
	p.write("if (")
	p.printExpr(n.Condition, 0, false)
	p.write(") {")
	p.indent++
	p.writeln()
	p.printExpr(n.Then, 0, false)
	p.indent--
	p.writeln()
	p.write("} else {")
	p.indent++
	p.writeln()
	p.printExpr(n.Otherwise, 0, false)
	p.indent--
	p.writeln()
	p.write("}")
}

func (p *CodePrinter) VisitBinary(n *ast.Binary) {
	p.printExpr(n, 0, false)
}

func (p *CodePrinter) VisitPrint(n *ast.Print) {
	p.write("print(")
	p.printExpr(n.Value, 0, false)
	p.write(")")
}

func (p *CodePrinter) VisitTuple(n *ast.Tuple) {
	p.write("(")
	p.printExpr(n.First, 0, false)
	p.write(", ")
	p.printExpr(n.Second, 0, false)
	p.write(")")
}

func (p *CodePrinter) VisitFirst(n *ast.First) {
	p.write("first(")
	p.printExpr(n.Value, 0, false)
	p.write(")")
}

func (p *CodePrinter) VisitSecond(n *ast.Second) {
	p.write("second(")
	p.printExpr(n.Value, 0, false)
	p.write(")")
}
