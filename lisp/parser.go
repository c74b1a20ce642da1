package lisp

import (
	"io"

	"github.com/catwell/ownlisp/syntax"
)

// Reader abstracts a parser implementation so that it may be implemented in a
// separate package as an optional/swappable component.
type Reader interface {
	// Read the contents of r and return the syntax tree of its top-level
	// forms.  The name identifies the source in syntax errors.
	Read(name string, r io.Reader) (*syntax.Node, error)
}
