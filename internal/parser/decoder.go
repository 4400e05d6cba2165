package parser

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/funvibe/rinha/internal/ast"
)

// MalformedInputError reports an AST document that cannot be decoded.
// Line and Column point into the interchange file, not the original source.
type MalformedInputError struct {
	File    string
	Line    int
	Column  int
	Message string
}

func (e *MalformedInputError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s", e.File, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.File, e.Message)
}

// Decode decodes an AST document. JSON is accepted directly since every
// JSON document is also YAML; decoding through yaml.Node keeps positions
// for error reporting.
func Decode(data []byte, filename string) (*ast.File, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &MalformedInputError{File: filename, Message: err.Error()}
	}
	d := &decoder{file: filename}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, d.errorf(&doc, "empty document")
	}
	if alias := findAlias(&doc); alias != nil {
		return nil, d.errorf(alias, "aliases are not allowed: the AST must be a plain tree")
	}
	return d.decodeFile(doc.Content[0])
}

// findAlias returns the first alias node in document order. Content never
// includes an alias target, so the walk is finite even for cyclic anchors.
func findAlias(n *yaml.Node) *yaml.Node {
	if n.Kind == yaml.AliasNode {
		return n
	}
	for _, c := range n.Content {
		if a := findAlias(c); a != nil {
			return a
		}
	}
	return nil
}

type decoder struct {
	file string
}

func (d *decoder) errorf(n *yaml.Node, format string, a ...interface{}) error {
	return &MalformedInputError{File: d.file, Line: n.Line, Column: n.Column, Message: fmt.Sprintf(format, a...)}
}

// object is a decoded mapping node with its fields by key.
type object struct {
	node   *yaml.Node
	fields map[string]*yaml.Node
}

func (d *decoder) object(n *yaml.Node, what string) (*object, error) {
	if n.Kind != yaml.MappingNode {
		return nil, d.errorf(n, "%s must be an object", what)
	}
	o := &object{node: n, fields: make(map[string]*yaml.Node, len(n.Content)/2)}
	for i := 0; i+1 < len(n.Content); i += 2 {
		o.fields[n.Content[i].Value] = n.Content[i+1]
	}
	return o, nil
}

func (d *decoder) field(o *object, key, what string) (*yaml.Node, error) {
	n, ok := o.fields[key]
	if !ok {
		return nil, d.errorf(o.node, "%s: missing field %q", what, key)
	}
	return n, nil
}

func (d *decoder) decodeFile(n *yaml.Node) (*ast.File, error) {
	o, err := d.object(n, "file")
	if err != nil {
		return nil, err
	}
	f := &ast.File{Name: d.file}
	if name, ok := o.fields["name"]; ok {
		if f.Name, err = d.scalarString(name, "file name"); err != nil {
			return nil, err
		}
	}
	if loc, ok := o.fields["location"]; ok {
		if f.Location, err = d.decodeLocation(loc); err != nil {
			return nil, err
		}
	}
	expr, err := d.field(o, "expression", "file")
	if err != nil {
		return nil, err
	}
	if f.Expression, err = d.decodeTerm(expr); err != nil {
		return nil, err
	}
	return f, nil
}

func (d *decoder) decodeLocation(n *yaml.Node) (ast.Location, error) {
	var loc ast.Location
	o, err := d.object(n, "location")
	if err != nil {
		return loc, err
	}
	if v, ok := o.fields["start"]; ok {
		if loc.Start, err = d.scalarInt(v, "location start"); err != nil {
			return loc, err
		}
	}
	if v, ok := o.fields["end"]; ok {
		if loc.End, err = d.scalarInt(v, "location end"); err != nil {
			return loc, err
		}
	}
	if v, ok := o.fields["filename"]; ok {
		if loc.Filename, err = d.scalarString(v, "location filename"); err != nil {
			return loc, err
		}
	}
	return loc, nil
}

func (d *decoder) scalar(n *yaml.Node, tag, what string) (string, error) {
	if n.Kind != yaml.ScalarNode || n.ShortTag() != tag {
		return "", d.errorf(n, "%s must be %s", what, tagName(tag))
	}
	return n.Value, nil
}

func (d *decoder) scalarString(n *yaml.Node, what string) (string, error) {
	return d.scalar(n, "!!str", what)
}

func (d *decoder) scalarInt(n *yaml.Node, what string) (int, error) {
	s, err := d.scalar(n, "!!int", what)
	if err != nil {
		return 0, err
	}
	i, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return 0, d.errorf(n, "%s: %v", what, err)
	}
	return int(i), nil
}

func (d *decoder) scalarBool(n *yaml.Node, what string) (bool, error) {
	s, err := d.scalar(n, "!!bool", what)
	if err != nil {
		return false, err
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, d.errorf(n, "%s: %v", what, err)
	}
	return b, nil
}

// identifier decodes {"text": "x"}; a bare string is accepted too.
func (d *decoder) identifier(n *yaml.Node, what string) (string, error) {
	if n.Kind == yaml.ScalarNode {
		return d.scalarString(n, what)
	}
	o, err := d.object(n, what)
	if err != nil {
		return "", err
	}
	text, err := d.field(o, "text", what)
	if err != nil {
		return "", err
	}
	return d.scalarString(text, what)
}

func tagName(tag string) string {
	switch tag {
	case "!!str":
		return "a string"
	case "!!int":
		return "an integer"
	case "!!bool":
		return "a boolean"
	}
	return tag
}

func (d *decoder) decodeTerm(n *yaml.Node) (ast.Term, error) {
	o, err := d.object(n, "term")
	if err != nil {
		return nil, err
	}
	kindNode, err := d.field(o, "kind", "term")
	if err != nil {
		return nil, err
	}
	kind, err := d.scalarString(kindNode, "term kind")
	if err != nil {
		return nil, err
	}
	var loc ast.Location
	if l, ok := o.fields["location"]; ok {
		if loc, err = d.decodeLocation(l); err != nil {
			return nil, err
		}
	}

	switch kind {
	case "Int":
		return d.decodeInt(o, loc)
	case "Str":
		v, err := d.field(o, "value", kind)
		if err != nil {
			return nil, err
		}
		s, err := d.scalarString(v, "Str value")
		if err != nil {
			return nil, err
		}
		return &ast.Str{Value: s, Location: loc}, nil
	case "Bool":
		v, err := d.field(o, "value", kind)
		if err != nil {
			return nil, err
		}
		b, err := d.scalarBool(v, "Bool value")
		if err != nil {
			return nil, err
		}
		return &ast.Bool{Value: b, Location: loc}, nil
	case "Var":
		v, err := d.field(o, "text", kind)
		if err != nil {
			return nil, err
		}
		name, err := d.scalarString(v, "Var text")
		if err != nil {
			return nil, err
		}
		return &ast.Var{Name: name, Location: loc}, nil
	case "Function":
		return d.decodeFunction(o, loc)
	case "Call":
		return d.decodeCall(o, loc)
	case "Let":
		return d.decodeLet(o, loc)
	case "If":
		terms, err := d.subterms(o, kind, "condition", "then", "otherwise")
		if err != nil {
			return nil, err
		}
		return &ast.If{Condition: terms[0], Then: terms[1], Otherwise: terms[2], Location: loc}, nil
	case "Binary":
		return d.decodeBinary(o, loc)
	case "Print":
		terms, err := d.subterms(o, kind, "value")
		if err != nil {
			return nil, err
		}
		return &ast.Print{Value: terms[0], Location: loc}, nil
	case "Tuple":
		terms, err := d.subterms(o, kind, "first", "second")
		if err != nil {
			return nil, err
		}
		return &ast.Tuple{First: terms[0], Second: terms[1], Location: loc}, nil
	case "First":
		terms, err := d.subterms(o, kind, "value")
		if err != nil {
			return nil, err
		}
		return &ast.First{Value: terms[0], Location: loc}, nil
	case "Second":
		terms, err := d.subterms(o, kind, "value")
		if err != nil {
			return nil, err
		}
		return &ast.Second{Value: terms[0], Location: loc}, nil
	}
	return nil, d.errorf(kindNode, "unknown term kind %q", kind)
}

// subterms decodes the named child terms in order.
func (d *decoder) subterms(o *object, kind string, keys ...string) ([]ast.Term, error) {
	terms := make([]ast.Term, len(keys))
	for i, key := range keys {
		n, err := d.field(o, key, kind)
		if err != nil {
			return nil, err
		}
		if terms[i], err = d.decodeTerm(n); err != nil {
			return nil, err
		}
	}
	return terms, nil
}

func (d *decoder) decodeInt(o *object, loc ast.Location) (ast.Term, error) {
	v, err := d.field(o, "value", "Int")
	if err != nil {
		return nil, err
	}
	s, err := d.scalar(v, "!!int", "Int value")
	if err != nil {
		return nil, err
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
			return nil, d.errorf(v, "integer literal %s out of 32-bit range", s)
		}
		return nil, d.errorf(v, "integer literal %s is not a decimal integer", s)
	}
	if i > math.MaxInt32 || i < math.MinInt32 {
		return nil, d.errorf(v, "integer literal %s out of 32-bit range", s)
	}
	return &ast.Int{Value: int32(i), Location: loc}, nil
}

func (d *decoder) decodeFunction(o *object, loc ast.Location) (ast.Term, error) {
	params, err := d.field(o, "parameters", "Function")
	if err != nil {
		return nil, err
	}
	if params.Kind != yaml.SequenceNode {
		return nil, d.errorf(params, "Function parameters must be a list")
	}
	fn := &ast.Function{Parameters: make([]string, 0, len(params.Content)), Location: loc}
	seen := make(map[string]bool, len(params.Content))
	for _, p := range params.Content {
		name, err := d.identifier(p, "parameter")
		if err != nil {
			return nil, err
		}
		if seen[name] {
			return nil, d.errorf(p, "duplicate parameter %q", name)
		}
		seen[name] = true
		fn.Parameters = append(fn.Parameters, name)
	}
	if n, ok := o.fields["name"]; ok {
		if fn.Name, err = d.identifier(n, "function name"); err != nil {
			return nil, err
		}
	}
	body, err := d.subterms(o, "Function", "value")
	if err != nil {
		return nil, err
	}
	fn.Body = body[0]
	return fn, nil
}

func (d *decoder) decodeCall(o *object, loc ast.Location) (ast.Term, error) {
	callee, err := d.subterms(o, "Call", "callee")
	if err != nil {
		return nil, err
	}
	argsNode, err := d.field(o, "arguments", "Call")
	if err != nil {
		return nil, err
	}
	if argsNode.Kind != yaml.SequenceNode {
		return nil, d.errorf(argsNode, "Call arguments must be a list")
	}
	call := &ast.Call{Callee: callee[0], Arguments: make([]ast.Term, len(argsNode.Content)), Location: loc}
	for i, a := range argsNode.Content {
		if call.Arguments[i], err = d.decodeTerm(a); err != nil {
			return nil, err
		}
	}
	return call, nil
}

// decodeLet gives a directly bound Function the Let's name as its self-name,
// which is how recursive definitions are written in the interchange format.
func (d *decoder) decodeLet(o *object, loc ast.Location) (ast.Term, error) {
	nameNode, err := d.field(o, "name", "Let")
	if err != nil {
		return nil, err
	}
	name, err := d.identifier(nameNode, "Let name")
	if err != nil {
		return nil, err
	}
	terms, err := d.subterms(o, "Let", "value", "next")
	if err != nil {
		return nil, err
	}
	if fn, ok := terms[0].(*ast.Function); ok && fn.Name == "" {
		fn.Name = name
	}
	return &ast.Let{Name: name, Value: terms[0], Next: terms[1], Location: loc}, nil
}

func (d *decoder) decodeBinary(o *object, loc ast.Location) (ast.Term, error) {
	opNode, err := d.field(o, "op", "Binary")
	if err != nil {
		return nil, err
	}
	opName, err := d.scalarString(opNode, "Binary op")
	if err != nil {
		return nil, err
	}
	op, ok := ast.ParseBinaryOp(opName)
	if !ok {
		return nil, d.errorf(opNode, "unknown binary operator %q", opName)
	}
	terms, err := d.subterms(o, "Binary", "lhs", "rhs")
	if err != nil {
		return nil, err
	}
	return &ast.Binary{Op: op, LHS: terms[0], RHS: terms[1], Location: loc}, nil
}
