// Package lisptest evaluates sequences of lisp source lines against fresh
// environments and compares the printed results.
package lisptest

import (
	"fmt"
	"io"
	"io/ioutil"
	"testing"

	"github.com/catwell/ownlisp/lisp"
	"github.com/catwell/ownlisp/parser"
)

// Runner is a test runner.
type Runner struct {
	// Stdout receives the output of print and load.  When Stdout is nil the
	// output is discarded.
	Stdout io.Writer
}

// NewEnv returns a root environment with the default builtins and a parser
// configured for load.
func (r *Runner) NewEnv() (*lisp.LEnv, error) {
	stdout := r.Stdout
	if stdout == nil {
		stdout = ioutil.Discard
	}
	env := lisp.NewEnv(nil)
	lerr := lisp.InitializeUserEnv(env,
		lisp.WithReader(parser.NewReader()),
		lisp.WithStdout(stdout),
	)
	if lerr.Type == lisp.LError {
		return nil, fmt.Errorf("failed to initialize lisp environment: %w", lisp.GoError(lerr))
	}
	return env, nil
}

// EvalLine parses line the way the REPL does and evaluates it in env.
func EvalLine(env *lisp.LEnv, line string) (*lisp.LVal, error) {
	v, err := parser.ParseLine("test", []byte(line))
	if err != nil {
		return nil, err
	}
	return env.Eval(v), nil
}

// TestSequence is a sequence of lisp expressions which are evaluated sequentially
// by a lisp.LEnv.
type TestSequence []struct {
	Expr   string // a line of lisp source
	Result string // the evaluated result
}

// TestSuite is a set of named TestSequences
type TestSuite []struct {
	Name string
	TestSequence
}

// RunTestSuite runs each TestSequence in tests on isolated lisp.LEnvs.
func RunTestSuite(t *testing.T, tests TestSuite) {
	r := &Runner{}
	r.RunTestSuite(t, tests)
}

// RunTestSuite runs each TestSequence in tests on isolated lisp.LEnvs.
func (r *Runner) RunTestSuite(t *testing.T, tests TestSuite) {
	for i, test := range tests {
		env, err := r.NewEnv()
		if err != nil {
			t.Fatal(err)
		}
		for j, expr := range test.TestSequence {
			v, err := EvalLine(env, expr.Expr)
			if err != nil {
				t.Errorf("test %d %q: expr %d: parse error: %v", i, test.Name, j, err)
				continue
			}
			result := v.String()
			if result != expr.Result {
				t.Errorf("test %d %q: expr %d: expected result %s (got %s)", i, test.Name, j, expr.Result, result)
			}
		}
	}
}
