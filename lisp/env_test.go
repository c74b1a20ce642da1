package lisp

import (
	"bytes"
	"errors"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/catwell/ownlisp/syntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEnv(t *testing.T, config ...Config) *LEnv {
	env := NewEnv(nil)
	lerr := InitializeUserEnv(env, config...)
	require.False(t, lerr.IsError(), "%v", lerr)
	return env
}

func TestEnvGetPut(t *testing.T) {
	root := NewEnv(nil)
	child := NewEnv(root)
	root.Put(Symbol("a"), Number(1))
	child.Put(Symbol("b"), Number(2))

	assert.Equal(t, "1", child.Get(Symbol("a")).String())
	assert.Equal(t, "2", child.Get(Symbol("b")).String())
	assert.Equal(t, ErrnoUnbound, root.Get(Symbol("b")).Errno)
	assert.Equal(t, ErrnoBadType, root.Get(Number(1)).Errno)

	// Get returns copies.
	q := QExpr(Number(1))
	root.Put(Symbol("q"), q)
	got := child.Get(Symbol("q"))
	got.Append(Number(2))
	assert.Equal(t, "{1}", root.Get(Symbol("q")).String())

	child.Put(Symbol("a"), Number(3))
	assert.Equal(t, "3", child.Get(Symbol("a")).String())
	assert.Equal(t, "1", root.Get(Symbol("a")).String())

	child.PutGlobal(Symbol("c"), Number(4))
	assert.Equal(t, "4", root.Get(Symbol("c")).String())
	assert.Equal(t, []string{"a", "c", "q"}, root.Names())

	assert.Panics(t, func() { root.Put(String("x"), Number(1)) })
	assert.Panics(t, func() { root.Put(Symbol("x"), nil) })
}

func TestEnvCopy(t *testing.T) {
	parent := NewEnv(nil)
	env := NewEnv(parent)
	env.Put(Symbol("x"), QExpr(Number(1)))

	cp := env.Copy()
	assert.NotEqual(t, env.ID, cp.ID)
	assert.Same(t, parent, cp.Parent)
	cp.Put(Symbol("y"), Number(2))
	cp.Scope["x"].Append(Number(2))
	assert.Equal(t, []string{"x"}, env.Names())
	assert.Equal(t, "{1}", env.Get(Symbol("x")).String())

	var nilenv *LEnv
	assert.Nil(t, nilenv.Copy())
}

func TestAddBuiltins(t *testing.T) {
	env := testEnv(t)
	for _, name := range []string{
		"==", "!=", "+", "-", "*", "/", "%", "min", "max", "<", "<=", ">", ">=",
		"list", "head", "tail", "eval", "join", "cons", "len", "init",
		"def", "=", `\`, "if", "!", "&&", "||", "load", "print", "error",
	} {
		v := env.Get(Symbol(name))
		if assert.Equal(t, LBuiltin, v.Type, name) {
			assert.Equal(t, name, v.Str)
		}
	}
	assert.Panics(t, func() { env.AddBuiltins() })
}

func TestRegisterDefaultBuiltin(t *testing.T) {
	saved := userBuiltins
	defer func() { userBuiltins = saved }()

	RegisterDefaultBuiltin("answer", func(env *LEnv, args *LVal) *LVal {
		return Number(42)
	})
	env := testEnv(t)
	v := env.Eval(SExpr(Symbol("answer"), Number(0)))
	assert.Equal(t, "42", v.String())
}

func TestEvalSExpr(t *testing.T) {
	env := testEnv(t)

	v := env.Eval(SExpr(Symbol("+"), Number(1), SExpr(Symbol("*"), Number(2), Number(3))))
	assert.Equal(t, "7", v.String())

	v = env.Eval(SExpr())
	assert.True(t, v.IsNil())

	v = env.Eval(SExpr(Number(5)))
	assert.Equal(t, "5", v.String())

	v = env.Eval(QExpr(Symbol("undefined")))
	assert.Equal(t, "{undefined}", v.String())

	v = env.Eval(SExpr(Number(1), Number(2)))
	assert.Equal(t, ErrnoBadOp, v.Errno)

	v = env.EvalSExpr(QExpr(Number(1)))
	assert.Equal(t, ErrnoBadSExpr, v.Errno)

	v = env.Eval(SExpr(Symbol("nope"), Number(1)))
	assert.Equal(t, ErrnoUnbound, v.Errno)
}

func TestEvalStopsAtFirstError(t *testing.T) {
	var out bytes.Buffer
	env := testEnv(t, WithStdout(&out))
	v := env.Eval(SExpr(
		Symbol("list"),
		SExpr(Symbol("/"), Number(1), Number(0)),
		SExpr(Symbol("print"), String("late")),
	))
	assert.Equal(t, ErrnoDivZero, v.Errno)
	assert.Empty(t, out.String())
}

func TestConfig(t *testing.T) {
	var out, errout, logout bytes.Buffer
	env := testEnv(t,
		WithStdout(&out),
		WithStderr(&errout),
		WithLogger(log.New(&logout, "", 0)),
	)
	rt := env.runtime()
	assert.Same(t, &out, rt.Stdout)
	assert.Same(t, &errout, rt.Stderr)

	child := NewEnv(env)
	assert.Same(t, rt, child.runtime())

	lerr := InitializeUserEnv(NewEnv(nil), func(env *LEnv) *LVal {
		return Error("bad config")
	})
	assert.Equal(t, "ERROR bad config", lerr.String())
}

func TestLoadNode(t *testing.T) {
	var out, logout bytes.Buffer
	tree := syntax.List(syntax.TagRoot, 0,
		syntax.List(syntax.TagSExpr, 0,
			syntax.Leaf(syntax.TagSymbol, "def", 1),
			syntax.List(syntax.TagQExpr, 5, syntax.Leaf(syntax.TagSymbol, "x", 6)),
			syntax.Leaf(syntax.TagNumber, "3", 9),
		),
		syntax.List(syntax.TagSExpr, 12,
			syntax.Leaf(syntax.TagSymbol, "nope", 13),
		),
		syntax.List(syntax.TagSExpr, 19,
			syntax.Leaf(syntax.TagSymbol, "print", 20),
			syntax.Leaf(syntax.TagSymbol, "x", 26),
		),
	)
	env := testEnv(t,
		WithReader(readerFunc(func(name string) (*syntax.Node, error) { return tree, nil })),
		WithStdout(&out),
		WithLogger(log.New(&logout, "", 0)),
	)
	v := env.LoadString("tree", "ignored")
	assert.True(t, v.IsNil())
	assert.Equal(t, "ERROR unbound symbol\n3\n", out.String())
	assert.True(t, strings.HasPrefix(logout.String(), "load tree: 3 forms\n"), logout.String())
}

type readerFunc func(name string) (*syntax.Node, error)

func (fn readerFunc) Read(name string, r io.Reader) (*syntax.Node, error) {
	return fn(name)
}

func TestLoadReadError(t *testing.T) {
	env := testEnv(t, WithReader(readerFunc(func(name string) (*syntax.Node, error) {
		return nil, errors.New(name + ": broken")
	})))
	v := env.LoadString("src", "")
	assert.Equal(t, ErrnoLoad, v.Errno)
	assert.Equal(t, "ERROR src: broken", v.String())

	v = env.LoadFile("/nonexistent/ownlisp/file.lisp")
	assert.Equal(t, ErrnoLoad, v.Errno)
}
