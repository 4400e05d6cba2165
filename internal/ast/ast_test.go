package ast

import "testing"

func TestBinaryOpNames(t *testing.T) {
	for op := Add; op <= Or; op++ {
		parsed, ok := ParseBinaryOp(op.String())
		if !ok || parsed != op {
			t.Errorf("ParseBinaryOp(%q) = %v, %v", op.String(), parsed, ok)
		}
		if op.Symbol() == "?" {
			t.Errorf("%s has no symbol", op)
		}
	}
	if _, ok := ParseBinaryOp("Pow"); ok {
		t.Error("ParseBinaryOp accepted Pow")
	}
	if got := BinaryOp(99).String(); got != "BinaryOp(?)" {
		t.Errorf("out of range String() = %q", got)
	}
}

func TestLocation(t *testing.T) {
	tests := []struct {
		loc  Location
		want string
		zero bool
	}{
		{Location{}, "0-0", true},
		{Location{Start: 3, End: 9}, "3-9", false},
		{Location{Start: 3, End: 9, Filename: "a.rinha"}, "a.rinha:3-9", false},
	}
	for _, tt := range tests {
		if got := tt.loc.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
		if got := tt.loc.IsZero(); got != tt.zero {
			t.Errorf("%s: IsZero() = %v", tt.want, got)
		}
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		term Term
		want string
	}{
		{&Int{}, "Int"},
		{&Str{}, "Str"},
		{&Bool{}, "Bool"},
		{&Var{}, "Var"},
		{&Function{}, "Function"},
		{&Call{}, "Call"},
		{&Let{}, "Let"},
		{&If{}, "If"},
		{&Binary{}, "Binary"},
		{&Print{}, "Print"},
		{&Tuple{}, "Tuple"},
		{&First{}, "First"},
		{&Second{}, "Second"},
	}
	for _, tt := range tests {
		if got := Kind(tt.term); got != tt.want {
			t.Errorf("Kind(%T) = %q, want %q", tt.term, got, tt.want)
		}
	}
}

func TestLoc(t *testing.T) {
	loc := Location{Start: 1, End: 2, Filename: "f"}
	for _, term := range []Term{&Int{Location: loc}, &Let{Location: loc}, &Second{Location: loc}} {
		if term.Loc() != loc {
			t.Errorf("%s.Loc() = %s", Kind(term), term.Loc())
		}
	}
}
