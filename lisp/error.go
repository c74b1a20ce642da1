package lisp

import (
	"errors"
	"fmt"
)

// Errno is an error code
type Errno int

// Posible Errno values
const (
	ErrnoUser Errno = iota
	ErrnoBadOp
	ErrnoDivZero
	ErrnoBadNum
	ErrnoBadArity
	ErrnoBadSExpr
	ErrnoBadType
	ErrnoEmpty
	ErrnoBadFunc
	ErrnoUnbound
	// ErrnoOverflow is reserved.  Arithmetic wraps around on overflow.
	ErrnoOverflow
	ErrnoBadString
	ErrnoLoad
)

var errnoStrings = []string{
	ErrnoUser:      "error",
	ErrnoBadOp:     "bad operator",
	ErrnoDivZero:   "division by zero",
	ErrnoBadNum:    "bad number",
	ErrnoBadArity:  "bad arity",
	ErrnoBadSExpr:  "bad S-Expression",
	ErrnoBadType:   "bad type",
	ErrnoEmpty:     "empty list",
	ErrnoBadFunc:   "bad function",
	ErrnoUnbound:   "unbound symbol",
	ErrnoOverflow:  "overflow",
	ErrnoBadString: "bad string",
	ErrnoLoad:      "load failed",
}

func (n Errno) String() string {
	if n < 0 || int(n) >= len(errnoStrings) {
		return errnoStrings[ErrnoUser]
	}
	return errnoStrings[n]
}

// ErrorKind returns an LError of kind n whose message is the description of
// n.
func ErrorKind(n Errno) *LVal {
	return &LVal{
		Type:  LError,
		Errno: n,
		Str:   n.String(),
	}
}

// Error returns an LError with kind ErrnoUser and message msg.
func Error(msg string) *LVal {
	return &LVal{
		Type:  LError,
		Errno: ErrnoUser,
		Str:   msg,
	}
}

// Errorf returns an LError of kind n with a formatted message.
func Errorf(n Errno, format string, v ...interface{}) *LVal {
	return &LVal{
		Type:  LError,
		Errno: n,
		Str:   fmt.Sprintf(format, v...),
	}
}

// ErrorVal implements the error interface so that lisp errors can be returned
// to go callers.
type ErrorVal LVal

// Error implements the error interface.
func (e *ErrorVal) Error() string {
	return e.Str
}

// Is reports whether target is an ErrorVal of the same kind.
func (e *ErrorVal) Is(target error) bool {
	var other *ErrorVal
	if !errors.As(target, &other) {
		return false
	}
	return other.Errno == e.Errno
}

// GoError returns an error that represents v.  If v is not LError then nil
// is returned.
func GoError(v *LVal) error {
	if v == nil || v.Type != LError {
		return nil
	}
	return (*ErrorVal)(v)
}
