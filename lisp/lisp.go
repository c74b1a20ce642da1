package lisp

import (
	"bytes"
	"fmt"
	"strconv"
)

// LValType is the type of an LVal
type LValType uint

// Possible LValType values
const (
	LInvalid LValType = iota
	LNumber
	LBoolean
	LError
	LSymbol
	LString
	LBuiltin
	LLambda
	LSExpr
	LQExpr
)

var lvalTypeStrings = []string{
	LInvalid: "INVALID",
	LNumber:  "number",
	LBoolean: "boolean",
	LError:   "error",
	LSymbol:  "symbol",
	LString:  "string",
	LBuiltin: "builtin",
	LLambda:  "lambda",
	LSExpr:   "sexpr",
	LQExpr:   "qexpr",
}

func (t LValType) String() string {
	if int(t) >= len(lvalTypeStrings) {
		return lvalTypeStrings[LInvalid]
	}
	return lvalTypeStrings[t]
}

// LBuiltinFunc is a native function that executes a lisp builtin.  The
// function owns args and may consume its cells.
type LBuiltinFunc func(env *LEnv, args *LVal) *LVal

// LVal is a lisp value.  Type determines which of the remaining fields carry
// meaning.
type LVal struct {
	Type LValType

	// Num is the value of an LNumber.
	Num int64

	// Bool is the value of an LBoolean.
	Bool bool

	// Str is the name of an LSymbol or LBuiltin, the text of an LString, or
	// the message of an LError.
	Str string

	// Errno classifies an LError.
	Errno Errno

	// Cells holds the elements of an LSExpr or LQExpr.
	Cells []*LVal

	// Builtin is the native function of an LBuiltin.
	Builtin LBuiltinFunc

	// Variables needed for lambda values
	Env     *LEnv
	Formals *LVal
	Body    *LVal
}

// Number returns an LVal representing the number x.
func Number(x int64) *LVal {
	return &LVal{
		Type: LNumber,
		Num:  x,
	}
}

// Bool returns an LVal representing the boolean b.
func Bool(b bool) *LVal {
	return &LVal{
		Type: LBoolean,
		Bool: b,
	}
}

// Symbol returns an LVal resprenting the symbol s
func Symbol(s string) *LVal {
	return &LVal{
		Type: LSymbol,
		Str:  s,
	}
}

// String returns an LVal representing the string s.
func String(s string) *LVal {
	return &LVal{
		Type: LString,
		Str:  s,
	}
}

// SExpr returns an LVal representing an S-expression, a symbolic expression.
// The returned value takes ownership of cells.
func SExpr(cells ...*LVal) *LVal {
	return &LVal{
		Type:  LSExpr,
		Cells: cells,
	}
}

// QExpr returns an LVal representing an Q-expression, a quoted expression, a
// list.  The returned value takes ownership of cells.
func QExpr(cells ...*LVal) *LVal {
	return &LVal{
		Type:  LQExpr,
		Cells: cells,
	}
}

// Builtin returns an LVal representing the native function fn.  The name is
// only used to compare builtins and in debugging output.
func Builtin(name string, fn LBuiltinFunc) *LVal {
	return &LVal{
		Type:    LBuiltin,
		Str:     name,
		Builtin: fn,
	}
}

// Lambda returns anonymous function that has formals as arguments and the
// given body, which may reference symbols specified in the list of formals.
// The function gets a fresh private environment without a parent.  Lambda
// takes ownership of formals and body, which must both be Q-expressions.
func Lambda(formals *LVal, body *LVal) *LVal {
	return &LVal{
		Type:    LLambda,
		Env:     NewEnv(nil),
		Formals: formals,
		Body:    body,
	}
}

// Copy creates a deep copy of the receiver.  The copy shares no mutable
// state with v, except the parent of a lambda's private environment.
func (v *LVal) Copy() *LVal {
	if v == nil {
		return nil
	}
	cp := &LVal{}
	*cp = *v                 // shallow copy of all fields
	cp.Cells = v.copyCells() // deep copy of v.Cells
	cp.Env = v.Env.Copy()    // deepish copy of v.Env
	cp.Formals = v.Formals.Copy()
	cp.Body = v.Body.Copy()
	return cp
}

func (v *LVal) copyCells() []*LVal {
	if len(v.Cells) == 0 {
		return nil
	}
	cells := make([]*LVal, len(v.Cells))
	for i := range cells {
		cells[i] = v.Cells[i].Copy()
	}
	return cells
}

// IsError returns true if v is an LError.
func (v *LVal) IsError() bool {
	return v.Type == LError
}

// IsNil returns true if v is the empty S-expression, the value of
// expressions evaluated only for their side effects.
func (v *LVal) IsNil() bool {
	return v.Type == LSExpr && len(v.Cells) == 0
}

// Equal returns true if v and other are structurally equal.  Values of
// different types are never equal.  Lambdas are equal when their formals,
// bodies and bound variables are equal.
func (v *LVal) Equal(other *LVal) bool {
	if v == nil || other == nil {
		return v == other
	}
	if v.Type != other.Type {
		return false
	}
	switch v.Type {
	case LNumber:
		return v.Num == other.Num
	case LBoolean:
		return v.Bool == other.Bool
	case LError:
		return v.Errno == other.Errno && v.Str == other.Str
	case LSymbol, LString:
		return v.Str == other.Str
	case LBuiltin:
		return v.Str == other.Str
	case LLambda:
		return v.Formals.Equal(other.Formals) &&
			v.Body.Equal(other.Body) &&
			v.Env.equalScope(other.Env)
	case LSExpr, LQExpr:
		return cellsEqual(v.Cells, other.Cells)
	default:
		return false
	}
}

func cellsEqual(a, b []*LVal) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func (v *LVal) String() string {
	switch v.Type {
	case LNumber:
		return strconv.FormatInt(v.Num, 10)
	case LBoolean:
		return strconv.FormatBool(v.Bool)
	case LError:
		return "ERROR " + v.Str
	case LSymbol:
		return v.Str
	case LString:
		return strconv.Quote(v.Str)
	case LBuiltin:
		return "<builtin>"
	case LLambda:
		return fmt.Sprintf(`(\ %v %v)`, v.Formals, v.Body)
	case LSExpr:
		return exprString(v, "(", ")")
	case LQExpr:
		return exprString(v, "{", "}")
	default:
		return fmt.Sprintf("%#v", v)
	}
}

func exprString(v *LVal, left string, right string) string {
	if len(v.Cells) == 0 {
		return left + right
	}
	var buf bytes.Buffer
	buf.WriteString(left)
	for i, c := range v.Cells {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(c.String())
	}
	buf.WriteString(right)
	return buf.String()
}
