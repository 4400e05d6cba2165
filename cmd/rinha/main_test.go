package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/funvibe/rinha/internal/diagnostics"
)

func runProgram(t *testing.T, path string, opts options) (stdout, stderr string, code int) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(context.Background(), path, &out, &errOut, opts)
	return out.String(), errOut.String(), code
}

func defaultOptions() options {
	return options{MaxDepth: -1}
}

func TestGoldenPrograms(t *testing.T) {
	tests := []struct {
		name       string
		wantCode   int
		wantStderr string // prefix of the first stderr line, empty for none
	}{
		{"fib", diagnostics.ExitOK, ""},
		{"print_let", diagnostics.ExitOK, ""},
		{"tuple", diagnostics.ExitOK, ""},
		{"closure", diagnostics.ExitOK, ""},
		{"repeated_print", diagnostics.ExitOK, ""},
		{"count", diagnostics.ExitOK, ""},
		{"overflow", diagnostics.ExitRuntimeError, "OverflowError at overflow.rinha:6-20: integer overflow: 2147483647 + 1"},
		{"arity", diagnostics.ExitRuntimeError, "ArityError at arity.rinha:30-34: f expects 2 argument(s), got 1"},
		{"malformed", diagnostics.ExitInputError, "MalformedInputError at "},
	}

	for _, tt := range tests {
		path := filepath.Join("testdata", tt.name+".json")
		want, err := os.ReadFile(filepath.Join("testdata", tt.name+".want"))
		if err != nil {
			t.Fatalf("reading golden output: %v", err)
		}
		for _, memo := range []bool{true, false} {
			name := tt.name
			if !memo {
				name += "/no-memo"
			}
			t.Run(name, func(t *testing.T) {
				opts := defaultOptions()
				opts.NoMemo = !memo
				stdout, stderr, code := runProgram(t, path, opts)
				if stdout != string(want) {
					t.Errorf("stdout = %q, want %q", stdout, want)
				}
				if code != tt.wantCode {
					t.Errorf("exit code = %d, want %d (stderr %q)", code, tt.wantCode, stderr)
				}
				if tt.wantStderr == "" {
					if stderr != "" {
						t.Errorf("unexpected stderr %q", stderr)
					}
					return
				}
				if !strings.HasPrefix(stderr, tt.wantStderr) {
					t.Errorf("stderr = %q, want prefix %q", stderr, tt.wantStderr)
				}
			})
		}
	}
}

func TestMalformedInputPosition(t *testing.T) {
	_, stderr, _ := runProgram(t, filepath.Join("testdata", "malformed.json"), defaultOptions())
	if !strings.Contains(stderr, "malformed.json:4:13: unknown term kind \"Loop\"") {
		t.Errorf("stderr = %q, want line and column of the bad kind", stderr)
	}
}

func TestCyclicAliasInput(t *testing.T) {
	stdout, stderr, code := runProgram(t, filepath.Join("testdata", "cyclic.yaml"), defaultOptions())
	if code != diagnostics.ExitInputError {
		t.Errorf("exit code = %d, want %d", code, diagnostics.ExitInputError)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want nothing", stdout)
	}
	if !strings.Contains(stderr, "cyclic.yaml:4:10: aliases are not allowed") {
		t.Errorf("stderr = %q", stderr)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestFailedPrintIsRuntimeError(t *testing.T) {
	var errOut bytes.Buffer
	code := run(context.Background(), filepath.Join("testdata", "fib.json"), failingWriter{}, &errOut, defaultOptions())
	if code != diagnostics.ExitRuntimeError {
		t.Errorf("exit code = %d, want %d (stderr %q)", code, diagnostics.ExitRuntimeError, errOut.String())
	}
}

func TestMissingFile(t *testing.T) {
	stdout, stderr, code := runProgram(t, filepath.Join("testdata", "nope.json"), defaultOptions())
	if code != diagnostics.ExitInputError {
		t.Errorf("exit code = %d, want %d", code, diagnostics.ExitInputError)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want nothing", stdout)
	}
	if !strings.HasPrefix(stderr, "error: reading ") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestMaxDepthFlag(t *testing.T) {
	opts := defaultOptions()
	opts.MaxDepth = 3
	opts.NoMemo = true
	_, stderr, code := runProgram(t, filepath.Join("testdata", "fib.json"), opts)
	if code != diagnostics.ExitRuntimeError {
		t.Errorf("exit code = %d, want %d", code, diagnostics.ExitRuntimeError)
	}
	if !strings.HasPrefix(stderr, "RecursionLimitError") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestStatsFlag(t *testing.T) {
	opts := defaultOptions()
	opts.Stats = true
	stdout, stderr, code := runProgram(t, filepath.Join("testdata", "fib.json"), opts)
	if code != diagnostics.ExitOK || stdout != "55\n" {
		t.Fatalf("run = %q, %d", stdout, code)
	}
	if !strings.Contains(stderr, "calls: ") || !strings.Contains(stderr, "cache: ") {
		t.Errorf("stderr = %q, want call and cache statistics", stderr)
	}
}

func TestFormatFlag(t *testing.T) {
	opts := defaultOptions()
	opts.Format = true
	stdout, stderr, code := runProgram(t, filepath.Join("testdata", "fib.json"), opts)
	want := `let fib = fn (n) => {
  if (n < 2) {
    n
  } else {
    fib(n - 1) + fib(n - 2)
  }
};
print(fib(10))
`
	if code != diagnostics.ExitOK || stderr != "" {
		t.Fatalf("exit code %d, stderr %q", code, stderr)
	}
	if stdout != want {
		t.Errorf("formatted =\n%s\nwant\n%s", stdout, want)
	}
}

func TestExplicitConfig(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(cfg, []byte("max_depth: 2\ncolor: never\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	opts := defaultOptions()
	opts.ConfigPath = cfg
	opts.NoMemo = true
	_, stderr, code := runProgram(t, filepath.Join("testdata", "fib.json"), opts)
	if code != diagnostics.ExitRuntimeError || !strings.HasPrefix(stderr, "RecursionLimitError") {
		t.Errorf("code %d, stderr %q: config max_depth not applied", code, stderr)
	}
}

func TestBadConfig(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(cfg, []byte("memoise: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	opts := defaultOptions()
	opts.ConfigPath = cfg
	_, _, code := runProgram(t, filepath.Join("testdata", "fib.json"), opts)
	if code != diagnostics.ExitInputError {
		t.Errorf("exit code = %d, want %d", code, diagnostics.ExitInputError)
	}
}

func TestCancelledRun(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out, errOut bytes.Buffer
	code := run(ctx, filepath.Join("testdata", "fib.json"), &out, &errOut, defaultOptions())
	if code != diagnostics.ExitRuntimeError {
		t.Errorf("exit code = %d, want %d", code, diagnostics.ExitRuntimeError)
	}
	if !strings.HasPrefix(errOut.String(), "CancelledError") {
		t.Errorf("stderr = %q", errOut.String())
	}
}
