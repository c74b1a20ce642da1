package lisp

// Len returns the number of cells in v.
func (v *LVal) Len() int {
	return len(v.Cells)
}

// Append adds x to the end of v.Cells and takes ownership of it.
func (v *LVal) Append(x *LVal) {
	v.Cells = append(v.Cells, x)
}

// Prepend inserts x at the front of v.Cells and takes ownership of it.
func (v *LVal) Prepend(x *LVal) {
	v.Cells = append(v.Cells, nil)
	copy(v.Cells[1:], v.Cells)
	v.Cells[0] = x
}

// Pop removes the cell at index i and returns it.  The order of the remaining
// cells is preserved.  Pop panics if i is out of range.
func (v *LVal) Pop(i int) *LVal {
	x := v.Cells[i]
	copy(v.Cells[i:], v.Cells[i+1:])
	v.Cells[len(v.Cells)-1] = nil
	v.Cells = v.Cells[:len(v.Cells)-1]
	return x
}

// PopType pops the first cell of v and checks that it has type t.  When the
// check passes the cell is returned with a nil error.  Otherwise the returned
// error is the popped cell if it already was an LError, or a bad type error.
// Callers must check lerr before using x.
func (v *LVal) PopType(t LValType) (x *LVal, lerr *LVal) {
	if len(v.Cells) == 0 {
		return nil, ErrorKind(ErrnoBadArity)
	}
	x = v.Pop(0)
	if x.Type == LError {
		return nil, x
	}
	if x.Type != t {
		return nil, ErrorKind(ErrnoBadType)
	}
	return x, nil
}
