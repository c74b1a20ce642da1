package lisp

// bindState is the outcome of binding arguments to the formals of a lambda.
type bindState int

const (
	// bindPartial means formals remain unbound and the lambda is returned as
	// a new function awaiting the rest of its arguments.
	bindPartial bindState = iota
	// bindComplete means every formal is bound and the body can be evaluated.
	bindComplete
)

// checkFormals verifies that formals only contains symbols and that the
// variadic marker, if present, is followed by exactly one symbol.
func checkFormals(formals *LVal) *LVal {
	for _, c := range formals.Cells {
		if c.Type != LSymbol {
			return ErrorKind(ErrnoBadType)
		}
	}
	for i, c := range formals.Cells {
		if c.Str == VarArgSymbol && i != len(formals.Cells)-2 {
			return ErrorKind(ErrnoBadFunc)
		}
	}
	return nil
}

// bindFormals consumes args, binding each one to the next formal of fun in
// the private environment of fun.  Both fun.Formals and args are consumed so
// fun must be owned by the caller.
func bindFormals(fun *LVal, args *LVal) (bindState, *LVal) {
	for args.Len() > 0 {
		if fun.Formals.Len() == 0 {
			return bindPartial, ErrorKind(ErrnoBadArity)
		}
		sym := fun.Formals.Pop(0)
		if sym.Type != LSymbol {
			return bindPartial, ErrorKind(ErrnoBadType)
		}
		if sym.Str == VarArgSymbol {
			if fun.Formals.Len() == 0 {
				return bindPartial, ErrorKind(ErrnoBadFunc)
			}
			rest := fun.Formals.Pop(0)
			fun.Env.Put(rest, QExpr(args.Cells...))
			args.Cells = nil
			break
		}
		fun.Env.Put(sym, args.Pop(0))
	}

	// The variadic formal is bound even when no arguments are left for it.
	if fun.Formals.Len() > 0 && fun.Formals.Cells[0].Str == VarArgSymbol {
		if fun.Formals.Len() < 2 {
			return bindPartial, ErrorKind(ErrnoBadFunc)
		}
		fun.Formals.Pop(0)
		rest := fun.Formals.Pop(0)
		fun.Env.Put(rest, QExpr())
	}

	if fun.Formals.Len() == 0 {
		return bindComplete, nil
	}
	return bindPartial, nil
}

// callLambda binds args to the formals of a copy of fun.  When all formals
// are bound the body is evaluated with the caller's environment as parent of
// the private environment.  Otherwise the partially applied copy is returned.
func (env *LEnv) callLambda(fun *LVal, args *LVal) *LVal {
	fun = fun.Copy()
	if fun.Env == nil {
		fun.Env = NewEnv(nil)
	}
	state, lerr := bindFormals(fun, args)
	if lerr != nil {
		return lerr
	}
	if state == bindPartial {
		return fun
	}
	fun.Env.Parent = env
	body := SExpr(fun.Body.Cells...)
	return fun.Env.Eval(body)
}
