package lisp

import (
	"bytes"
	"fmt"
)

// LBuiltinDef is a built-in function
type LBuiltinDef interface {
	Name() string
	Eval(env *LEnv, args *LVal) *LVal
}

type langBuiltin struct {
	name string
	fun  LBuiltinFunc
}

func (fun *langBuiltin) Name() string {
	return fun.name
}

func (fun *langBuiltin) Eval(env *LEnv, args *LVal) *LVal {
	return fun.fun(env, args)
}

var userBuiltins []*langBuiltin
var langBuiltins = []*langBuiltin{
	{"==", builtinEq},
	{"!=", builtinNEq},
	{"+", builtinAdd},
	{"-", builtinSub},
	{"*", builtinMul},
	{"/", builtinDiv},
	{"%", builtinMod},
	{"min", builtinMin},
	{"max", builtinMax},
	{"<", builtinLT},
	{"<=", builtinLEq},
	{">", builtinGT},
	{">=", builtinGEq},
	{"list", builtinList},
	{"head", builtinHead},
	{"tail", builtinTail},
	{"eval", builtinEval},
	{"join", builtinJoin},
	{"cons", builtinCons},
	{"len", builtinLen},
	{"init", builtinInit},
	{"def", builtinDef},
	{"=", builtinDefLocal},
	{`\`, builtinLambda},
	{"if", builtinIf},
	{"!", builtinNot},
	{"&&", builtinAnd},
	{"||", builtinOr},
	{"load", builtinLoad},
	{"print", builtinPrint},
	{"error", builtinError},
}

// RegisterDefaultBuiltin adds the given function to the list returned by
// DefaultBuiltins.
func RegisterDefaultBuiltin(name string, fn LBuiltinFunc) {
	userBuiltins = append(userBuiltins, &langBuiltin{name, fn})
}

// DefaultBuiltins returns the default set of LBuiltinDefs added to LEnv
// objects when LEnv.AddBuiltins is called without arguments.
func DefaultBuiltins() []LBuiltinDef {
	ops := make([]LBuiltinDef, len(langBuiltins)+len(userBuiltins))
	for i := range langBuiltins {
		ops[i] = langBuiltins[i]
	}
	offset := len(langBuiltins)
	for i := range userBuiltins {
		ops[offset+i] = userBuiltins[i]
	}
	return ops
}

func builtinEq(env *LEnv, args *LVal) *LVal {
	return compareEqual(args, false)
}

func builtinNEq(env *LEnv, args *LVal) *LVal {
	return compareEqual(args, true)
}

// compareEqual compares every argument after the first with the first.  With
// negate false the result is true when all are equal.  With negate true the
// result is true when none is equal.
func compareEqual(args *LVal, negate bool) *LVal {
	if args.Len() < 2 {
		return ErrorKind(ErrnoBadArity)
	}
	fst := args.Pop(0)
	if fst.Type == LError {
		return fst
	}
	for args.Len() > 0 {
		cur := args.Pop(0)
		if cur.Type == LError {
			return cur
		}
		if fst.Equal(cur) == negate {
			return Bool(false)
		}
	}
	return Bool(true)
}

// foldNumbers applies op to an accumulator starting at init and each
// argument in order.
func foldNumbers(args *LVal, init int64, op func(acc, x int64) int64) *LVal {
	acc := init
	for args.Len() > 0 {
		x, lerr := args.PopType(LNumber)
		if lerr != nil {
			return lerr
		}
		acc = op(acc, x.Num)
	}
	return Number(acc)
}

func builtinAdd(env *LEnv, args *LVal) *LVal {
	return foldNumbers(args, 0, func(acc, x int64) int64 { return acc + x })
}

func builtinMul(env *LEnv, args *LVal) *LVal {
	return foldNumbers(args, 1, func(acc, x int64) int64 { return acc * x })
}

func builtinSub(env *LEnv, args *LVal) *LVal {
	var init int64
	if args.Len() > 1 {
		fst, lerr := args.PopType(LNumber)
		if lerr != nil {
			return lerr
		}
		init = fst.Num
	}
	return foldNumbers(args, init, func(acc, x int64) int64 { return acc - x })
}

// divide pops exactly two numbers and applies op unless the divisor is 0.
func divide(args *LVal, op func(a, b int64) int64) *LVal {
	if args.Len() != 2 {
		return ErrorKind(ErrnoBadArity)
	}
	a, lerr := args.PopType(LNumber)
	if lerr != nil {
		return lerr
	}
	b, lerr := args.PopType(LNumber)
	if lerr != nil {
		return lerr
	}
	if b.Num == 0 {
		return ErrorKind(ErrnoDivZero)
	}
	return Number(op(a.Num, b.Num))
}

func builtinDiv(env *LEnv, args *LVal) *LVal {
	return divide(args, func(a, b int64) int64 { return a / b })
}

func builtinMod(env *LEnv, args *LVal) *LVal {
	return divide(args, func(a, b int64) int64 { return a % b })
}

// pickNumber returns the argument x for which better(x, picked) held against
// every previously picked number.
func pickNumber(args *LVal, better func(x, picked int64) bool) *LVal {
	if args.Len() < 1 {
		return ErrorKind(ErrnoBadArity)
	}
	r, lerr := args.PopType(LNumber)
	if lerr != nil {
		return lerr
	}
	for args.Len() > 0 {
		c, lerr := args.PopType(LNumber)
		if lerr != nil {
			return lerr
		}
		if better(c.Num, r.Num) {
			r = c
		}
	}
	return r
}

func builtinMin(env *LEnv, args *LVal) *LVal {
	return pickNumber(args, func(x, picked int64) bool { return x < picked })
}

func builtinMax(env *LEnv, args *LVal) *LVal {
	return pickNumber(args, func(x, picked int64) bool { return x > picked })
}

// compareOrder returns true if ok holds for every consecutive pair of
// arguments.  Arguments after the first failing pair are not checked.
func compareOrder(args *LVal, ok func(a, b int64) bool) *LVal {
	if args.Len() < 2 {
		return ErrorKind(ErrnoBadArity)
	}
	prev, lerr := args.PopType(LNumber)
	if lerr != nil {
		return lerr
	}
	for args.Len() > 0 {
		cur, lerr := args.PopType(LNumber)
		if lerr != nil {
			return lerr
		}
		if !ok(prev.Num, cur.Num) {
			return Bool(false)
		}
		prev = cur
	}
	return Bool(true)
}

func builtinLT(env *LEnv, args *LVal) *LVal {
	return compareOrder(args, func(a, b int64) bool { return a < b })
}

func builtinLEq(env *LEnv, args *LVal) *LVal {
	return compareOrder(args, func(a, b int64) bool { return a <= b })
}

func builtinGT(env *LEnv, args *LVal) *LVal {
	return compareOrder(args, func(a, b int64) bool { return a > b })
}

func builtinGEq(env *LEnv, args *LVal) *LVal {
	return compareOrder(args, func(a, b int64) bool { return a >= b })
}

func builtinList(env *LEnv, args *LVal) *LVal {
	return QExpr(args.Cells...)
}

// popList pops the only argument, which must be a Q-expression.
func popList(args *LVal) (*LVal, *LVal) {
	if args.Len() != 1 {
		return nil, ErrorKind(ErrnoBadArity)
	}
	return args.PopType(LQExpr)
}

// popNonEmptyList pops the only argument, which must be a non-empty
// Q-expression.
func popNonEmptyList(args *LVal) (*LVal, *LVal) {
	q, lerr := popList(args)
	if lerr != nil {
		return nil, lerr
	}
	if q.Len() == 0 {
		return nil, ErrorKind(ErrnoEmpty)
	}
	return q, nil
}

func builtinHead(env *LEnv, args *LVal) *LVal {
	q, lerr := popNonEmptyList(args)
	if lerr != nil {
		return lerr
	}
	q.Cells = q.Cells[:1]
	return q
}

func builtinTail(env *LEnv, args *LVal) *LVal {
	q, lerr := popNonEmptyList(args)
	if lerr != nil {
		return lerr
	}
	q.Pop(0)
	return q
}

func builtinInit(env *LEnv, args *LVal) *LVal {
	q, lerr := popNonEmptyList(args)
	if lerr != nil {
		return lerr
	}
	q.Pop(q.Len() - 1)
	return q
}

func builtinLen(env *LEnv, args *LVal) *LVal {
	q, lerr := popList(args)
	if lerr != nil {
		return lerr
	}
	return Number(int64(q.Len()))
}

func builtinEval(env *LEnv, args *LVal) *LVal {
	q, lerr := popList(args)
	if lerr != nil {
		return lerr
	}
	q.Type = LSExpr
	return env.Eval(q)
}

func builtinJoin(env *LEnv, args *LVal) *LVal {
	if args.Len() < 2 {
		return ErrorKind(ErrnoBadArity)
	}
	r, lerr := args.PopType(LQExpr)
	if lerr != nil {
		return lerr
	}
	for args.Len() > 0 {
		q, lerr := args.PopType(LQExpr)
		if lerr != nil {
			return lerr
		}
		r.Cells = append(r.Cells, q.Cells...)
	}
	return r
}

func builtinCons(env *LEnv, args *LVal) *LVal {
	if args.Len() != 2 {
		return ErrorKind(ErrnoBadArity)
	}
	x := args.Pop(0)
	if x.Type == LError {
		return x
	}
	q, lerr := args.PopType(LQExpr)
	if lerr != nil {
		return lerr
	}
	q.Prepend(x)
	return q
}

// define binds a list of symbols to the values that follow it using put.
func define(args *LVal, put func(k, v *LVal)) *LVal {
	if args.Len() < 1 {
		return ErrorKind(ErrnoBadArity)
	}
	syms, lerr := args.PopType(LQExpr)
	if lerr != nil {
		return lerr
	}
	for _, sym := range syms.Cells {
		if sym.Type != LSymbol {
			return ErrorKind(ErrnoBadType)
		}
	}
	if syms.Len() != args.Len() {
		return ErrorKind(ErrnoBadArity)
	}
	for i, sym := range syms.Cells {
		put(sym, args.Cells[i])
	}
	args.Cells = nil
	return SExpr()
}

func builtinDef(env *LEnv, args *LVal) *LVal {
	return define(args, env.PutGlobal)
}

func builtinDefLocal(env *LEnv, args *LVal) *LVal {
	return define(args, env.Put)
}

func builtinLambda(env *LEnv, args *LVal) *LVal {
	if args.Len() != 2 {
		return ErrorKind(ErrnoBadArity)
	}
	formals, lerr := args.PopType(LQExpr)
	if lerr != nil {
		return lerr
	}
	body, lerr := args.PopType(LQExpr)
	if lerr != nil {
		return lerr
	}
	lerr = checkFormals(formals)
	if lerr != nil {
		return lerr
	}
	return Lambda(formals, body)
}

func builtinIf(env *LEnv, args *LVal) *LVal {
	if args.Len() != 3 {
		return ErrorKind(ErrnoBadArity)
	}
	cond, lerr := args.PopType(LBoolean)
	if lerr != nil {
		return lerr
	}
	then, lerr := args.PopType(LQExpr)
	if lerr != nil {
		return lerr
	}
	els, lerr := args.PopType(LQExpr)
	if lerr != nil {
		return lerr
	}
	branch := els
	if cond.Bool {
		branch = then
	}
	branch.Type = LSExpr
	return env.EvalSExpr(branch)
}

func builtinNot(env *LEnv, args *LVal) *LVal {
	if args.Len() != 1 {
		return ErrorKind(ErrnoBadArity)
	}
	b, lerr := args.PopType(LBoolean)
	if lerr != nil {
		return lerr
	}
	return Bool(!b.Bool)
}

// foldBool returns the first argument equal to dominant without checking
// the arguments after it.  If no argument is dominant the opposite value is
// returned.
func foldBool(args *LVal, dominant bool) *LVal {
	for args.Len() > 0 {
		b, lerr := args.PopType(LBoolean)
		if lerr != nil {
			return lerr
		}
		if b.Bool == dominant {
			return b
		}
	}
	return Bool(!dominant)
}

func builtinAnd(env *LEnv, args *LVal) *LVal {
	return foldBool(args, false)
}

func builtinOr(env *LEnv, args *LVal) *LVal {
	return foldBool(args, true)
}

func builtinLoad(env *LEnv, args *LVal) *LVal {
	if args.Len() != 1 {
		return ErrorKind(ErrnoBadArity)
	}
	path, lerr := args.PopType(LString)
	if lerr != nil {
		return lerr
	}
	return env.LoadFile(path.Str)
}

func builtinPrint(env *LEnv, args *LVal) *LVal {
	var buf bytes.Buffer
	for i, c := range args.Cells {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(c.String())
	}
	buf.WriteString("\n")
	rt := env.runtime()
	_, err := rt.Stdout.Write(buf.Bytes())
	if err != nil {
		fmt.Fprintln(rt.Stderr, err)
	}
	return SExpr()
}

func builtinError(env *LEnv, args *LVal) *LVal {
	if args.Len() != 1 {
		return ErrorKind(ErrnoBadArity)
	}
	msg, lerr := args.PopType(LString)
	if lerr != nil {
		return lerr
	}
	return Error(msg.Str)
}
