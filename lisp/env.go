package lisp

import (
	"fmt"
	"sort"
	"sync/atomic"
)

var envCount uint64

func getEnvID() uint {
	return uint(atomic.AddUint64(&envCount, 1))
}

// LEnv is a lisp environment.
type LEnv struct {
	ID      uint
	Scope   map[string]*LVal
	Parent  *LEnv
	Runtime *Runtime
}

// NewEnv returns initializes and returns a new LEnv.  The parent is not
// owned by the returned environment.
func NewEnv(parent *LEnv) *LEnv {
	return &LEnv{
		ID:     getEnvID(),
		Scope:  make(map[string]*LVal),
		Parent: parent,
	}
}

// Copy returns a new LEnv with a deep copy of env.Scope but a shared parent
// and runtime (not quite a deep copy).
func (env *LEnv) Copy() *LEnv {
	if env == nil {
		return nil
	}
	cp := &LEnv{}
	*cp = *env
	cp.ID = getEnvID()
	cp.Scope = make(map[string]*LVal, len(env.Scope))
	for k, v := range env.Scope {
		cp.Scope[k] = v.Copy()
	}
	return cp
}

// Get takes an LSymbol k and returns a copy of the LVal it is bound to in env
// or its closest ancestor that binds k.
func (env *LEnv) Get(k *LVal) *LVal {
	if k.Type != LSymbol {
		return ErrorKind(ErrnoBadType)
	}
	for e := env; e != nil; e = e.Parent {
		v, ok := e.Scope[k.Str]
		if ok {
			return v.Copy()
		}
	}
	return ErrorKind(ErrnoUnbound)
}

// Put takes an LSymbol k and binds it to v in env, replacing any existing
// binding.  Put takes ownership of v.
func (env *LEnv) Put(k, v *LVal) {
	if k.Type != LSymbol {
		panic(fmt.Sprintf("binding key is not a symbol: %v", k.Type))
	}
	if v == nil {
		panic("nil value")
	}
	env.Scope[k.Str] = v
}

// PutGlobal takes an LSymbol k and binds it to v in root environment (global
// scope).
func (env *LEnv) PutGlobal(k, v *LVal) {
	env.root().Put(k, v)
}

func (env *LEnv) root() *LEnv {
	for env.Parent != nil {
		env = env.Parent
	}
	return env
}

// Names returns the sorted names bound locally in env.
func (env *LEnv) Names() []string {
	keys := make([]string, 0, len(env.Scope))
	for k := range env.Scope {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (env *LEnv) equalScope(other *LEnv) bool {
	if env == nil || other == nil {
		return len(env.scope()) == len(other.scope())
	}
	if len(env.Scope) != len(other.Scope) {
		return false
	}
	for k, v := range env.Scope {
		w, ok := other.Scope[k]
		if !ok || !v.Equal(w) {
			return false
		}
	}
	return true
}

func (env *LEnv) scope() map[string]*LVal {
	if env == nil {
		return nil
	}
	return env.Scope
}

// AddBuiltins binds the given funs to their names in env.  When called with no
// arguments AddBuiltins adds the DefaultBuiltins to env.
func (env *LEnv) AddBuiltins(funs ...LBuiltinDef) {
	if len(funs) == 0 {
		funs = DefaultBuiltins()
	}
	for _, f := range funs {
		k := Symbol(f.Name())
		if _, exists := env.Scope[k.Str]; exists {
			panic("symbol already defined: " + f.Name())
		}
		env.Put(k, Builtin(f.Name(), f.Eval))
	}
}

// Eval evaluates v in the context (scope) of env and returns the resulting
// LVal.  Eval takes ownership of v.
func (env *LEnv) Eval(v *LVal) *LVal {
	switch v.Type {
	case LSymbol:
		return env.Get(v)
	case LSExpr:
		return env.EvalSExpr(v)
	default:
		return v
	}
}

// EvalSExpr evaluates s and returns the resulting LVal.
//
// The cells of s are evaluated left to right.  The first error stops
// evaluation and is returned, so later cells are never evaluated.
func (env *LEnv) EvalSExpr(s *LVal) *LVal {
	if s.Type != LSExpr {
		return ErrorKind(ErrnoBadSExpr)
	}
	for i := range s.Cells {
		s.Cells[i] = env.Eval(s.Cells[i])
		if s.Cells[i].Type == LError {
			return s.Cells[i]
		}
	}
	switch len(s.Cells) {
	case 0:
		return SExpr()
	case 1:
		// A parenthesized value is not a call.
		return s.Pop(0)
	}
	f := s.Pop(0)
	return env.Call(f, s)
}

// Call invokes fun with the list args.  Call takes ownership of args.
func (env *LEnv) Call(fun *LVal, args *LVal) *LVal {
	switch fun.Type {
	case LBuiltin:
		return fun.Builtin(env, args)
	case LLambda:
		return env.callLambda(fun, args)
	default:
		return ErrorKind(ErrnoBadOp)
	}
}
