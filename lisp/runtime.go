package lisp

import (
	"io"
	"io/ioutil"
	"log"
	"os"
)

// Runtime holds the collaborators of a root environment: the source reader
// used by the load builtin and the streams used for output and diagnostics.
type Runtime struct {
	Reader Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *log.Logger
}

// StandardRuntime returns a Runtime that writes to the process's standard
// streams and discards log output.
func StandardRuntime() *Runtime {
	return &Runtime{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Logger: log.New(ioutil.Discard, "", 0),
	}
}

// runtime returns the Runtime of env, creating a standard one if env has
// none.  Only root environments carry a Runtime.
func (env *LEnv) runtime() *Runtime {
	root := env.root()
	if root.Runtime == nil {
		root.Runtime = StandardRuntime()
	}
	return root.Runtime
}

func (rt *Runtime) logf(format string, v ...interface{}) {
	if rt.Logger != nil {
		rt.Logger.Printf(format, v...)
	}
}
