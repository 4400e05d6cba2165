package evaluator

import "testing"

func TestInspect(t *testing.T) {
	tests := []struct {
		val  Value
		want string
	}{
		{&Integer{Value: -2147483648}, "-2147483648"},
		{&String{Value: "a \"quoted\" word"}, "a \"quoted\" word"},
		{TRUE, "true"},
		{FALSE, "false"},
		{&Tuple{First: &Integer{Value: 1}, Second: &Tuple{First: TRUE, Second: &String{Value: "x"}}}, "(1, (true, x))"},
		{&Closure{Name: "f"}, "<#closure>"},
		{&Tuple{First: &Closure{}, Second: &Integer{Value: 2}}, "(<#closure>, 2)"},
	}
	for _, tt := range tests {
		if got := tt.val.Inspect(); got != tt.want {
			t.Errorf("Inspect() = %q, want %q", got, tt.want)
		}
	}
}

func TestValuesEqual(t *testing.T) {
	f := &Closure{Name: "f"}
	g := &Closure{Name: "f"}
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"same int", &Integer{Value: 3}, &Integer{Value: 3}, true},
		{"different int", &Integer{Value: 3}, &Integer{Value: 4}, false},
		{"int vs string", &Integer{Value: 1}, &String{Value: "1"}, false},
		{"strings", &String{Value: "a"}, &String{Value: "a"}, true},
		{"bools", TRUE, &Boolean{Value: true}, true},
		{"nested tuples", &Tuple{First: &Integer{Value: 1}, Second: &Tuple{First: TRUE, Second: FALSE}},
			&Tuple{First: &Integer{Value: 1}, Second: &Tuple{First: TRUE, Second: FALSE}}, true},
		{"tuples differ", &Tuple{First: &Integer{Value: 1}, Second: TRUE},
			&Tuple{First: &Integer{Value: 1}, Second: FALSE}, false},
		{"closure identity", f, f, true},
		{"distinct closures", f, g, false},
		{"nil", nil, TRUE, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValuesEqual(tt.a, tt.b); got != tt.want {
				t.Errorf("ValuesEqual() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHashArgs(t *testing.T) {
	hash := func(args ...Value) uint64 {
		t.Helper()
		h, ok := HashArgs(args)
		if !ok {
			t.Fatalf("HashArgs(%v) not eligible", args)
		}
		return h
	}

	if hash(&Integer{Value: 1}, &String{Value: "x"}) != hash(&Integer{Value: 1}, &String{Value: "x"}) {
		t.Error("equal arguments hash differently")
	}
	if hash(&Integer{Value: 1}) == hash(&String{Value: "1"}) {
		t.Error("Int 1 and Str \"1\" share a hash")
	}
	if hash(&String{Value: "ab"}, &String{Value: "c"}) == hash(&String{Value: "a"}, &String{Value: "bc"}) {
		t.Error("string boundaries are not part of the hash")
	}
	if hash(&Integer{Value: 1}, &Integer{Value: 2}) == hash(&Integer{Value: 2}, &Integer{Value: 1}) {
		t.Error("argument order is not part of the hash")
	}
	if hash() == hash(&Integer{Value: 0}) {
		t.Error("arity is not part of the hash")
	}

	if _, ok := HashArgs([]Value{&Integer{Value: 1}, &Closure{}}); ok {
		t.Error("closure argument must be ineligible")
	}
	if _, ok := HashValue(&Tuple{First: TRUE, Second: &Tuple{First: &Closure{}, Second: TRUE}}); ok {
		t.Error("tuple holding a closure must be ineligible")
	}
}
