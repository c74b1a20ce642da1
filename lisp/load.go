package lisp

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Load reads source code from r using the runtime's Reader and evaluates
// each top-level form in env.  Errors produced by forms are printed and do
// not stop the evaluation of later forms.  Load returns an error only when
// the source cannot be read or parsed.
func (env *LEnv) Load(name string, r io.Reader) *LVal {
	rt := env.runtime()
	if rt.Reader == nil {
		return Errorf(ErrnoLoad, "%s: no reader configured", name)
	}
	root, err := rt.Reader.Read(name, r)
	if err != nil {
		return Errorf(ErrnoLoad, "%v", err)
	}
	rt.logf("load %s: %d forms", name, len(root.Children))
	for _, form := range ReadForms(root) {
		rt.logf("read %v: %v", form.Type, form)
		result := env.Eval(form)
		if result.Type == LError {
			fmt.Fprintln(rt.Stdout, result)
		}
	}
	return SExpr()
}

// LoadString parses source and evaluates its forms in env.
func (env *LEnv) LoadString(name, source string) *LVal {
	return env.Load(name, strings.NewReader(source))
}

// LoadFile opens the file at path and evaluates its forms in env.
func (env *LEnv) LoadFile(path string) *LVal {
	f, err := os.Open(path)
	if err != nil {
		return Errorf(ErrnoLoad, "%v", err)
	}
	defer f.Close()
	return env.Load(path, f)
}
