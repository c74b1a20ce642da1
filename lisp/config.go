package lisp

import (
	"io"
	"log"
)

// Config is a function that configures a root environment or its runtime.
type Config func(env *LEnv) *LVal

// WithReader returns a Config that makes environments use r to parse source
// streams.  There is no default Reader for an environment.
func WithReader(r Reader) Config {
	return func(env *LEnv) *LVal {
		env.root().runtime().Reader = r
		return SExpr()
	}
}

// WithStdout returns a Config that makes environments write program output
// to w instead of the default, os.Stdout.
func WithStdout(w io.Writer) Config {
	return func(env *LEnv) *LVal {
		env.root().runtime().Stdout = w
		return SExpr()
	}
}

// WithStderr returns a Config that makes environments write debugging output
// to w instead of the default, os.Stderr.
func WithStderr(w io.Writer) Config {
	return func(env *LEnv) *LVal {
		env.root().runtime().Stderr = w
		return SExpr()
	}
}

// WithLogger returns a Config that makes environments log debugging
// information to l.  By default nothing is logged.
func WithLogger(l *log.Logger) Config {
	return func(env *LEnv) *LVal {
		env.root().runtime().Logger = l
		return SExpr()
	}
}

// InitializeUserEnv creates the runtime of the root environment env, binds
// the default builtins and applies the given configs in order.  The first
// error returned by a Config is returned.
func InitializeUserEnv(env *LEnv, config ...Config) *LVal {
	env = env.root()
	env.Runtime = StandardRuntime()
	env.AddBuiltins()
	for _, fn := range config {
		lerr := fn(env)
		if lerr.Type == LError {
			return lerr
		}
	}
	return SExpr()
}
