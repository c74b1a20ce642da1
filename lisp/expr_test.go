package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPop(t *testing.T) {
	v := QExpr(Number(1), Number(2), Number(3))
	x := v.Pop(1)
	assert.Equal(t, "2", x.String())
	assert.Equal(t, "{1 3}", v.String())
	x = v.Pop(1)
	assert.Equal(t, "3", x.String())
	x = v.Pop(0)
	assert.Equal(t, "1", x.String())
	assert.Equal(t, 0, v.Len())
	assert.Panics(t, func() { v.Pop(0) })
}

func TestAppendPrepend(t *testing.T) {
	v := QExpr()
	v.Append(Number(2))
	v.Prepend(Number(1))
	v.Append(Number(3))
	v.Prepend(Number(0))
	assert.Equal(t, "{0 1 2 3}", v.String())
}

func TestPopType(t *testing.T) {
	v := SExpr(Number(1), Symbol("a"), ErrorKind(ErrnoDivZero))

	x, lerr := v.PopType(LNumber)
	require.Nil(t, lerr)
	assert.Equal(t, "1", x.String())

	x, lerr = v.PopType(LNumber)
	assert.Nil(t, x)
	require.NotNil(t, lerr)
	assert.Equal(t, ErrnoBadType, lerr.Errno)

	x, lerr = v.PopType(LNumber)
	assert.Nil(t, x)
	require.NotNil(t, lerr)
	assert.Equal(t, ErrnoDivZero, lerr.Errno)

	x, lerr = v.PopType(LNumber)
	assert.Nil(t, x)
	require.NotNil(t, lerr)
	assert.Equal(t, ErrnoBadArity, lerr.Errno)
}
