package lisp

import (
	"strconv"
	"strings"

	"github.com/catwell/ownlisp/syntax"
)

// Read converts a syntax tree into an LVal.  The root of a tree becomes an
// S-expression of its top-level forms, which is how a line of input is
// evaluated.  Comments produce no value.  Malformed literals are converted to
// LError values in place.
func Read(n *syntax.Node) *LVal {
	switch n.Tag {
	case syntax.TagNumber:
		return readNumber(n.Contents)
	case syntax.TagSymbol:
		switch n.Contents {
		case "true":
			return Bool(true)
		case "false":
			return Bool(false)
		}
		return Symbol(n.Contents)
	case syntax.TagString:
		return readString(n.Contents)
	case syntax.TagQExpr:
		return readCells(QExpr(), n)
	case syntax.TagSExpr, syntax.TagRoot:
		return readCells(SExpr(), n)
	default:
		return Errorf(ErrnoBadSExpr, "unexpected syntax node: %v", n.Tag)
	}
}

// ReadForms converts the children of a root syntax node into a slice of
// top-level forms.
func ReadForms(root *syntax.Node) []*LVal {
	return readCells(SExpr(), root).Cells
}

func readCells(v *LVal, n *syntax.Node) *LVal {
	for _, c := range n.Children {
		if c.Tag == syntax.TagComment {
			continue
		}
		v.Append(Read(c))
	}
	return v
}

// readString unquotes a string literal.  String literals may span lines but
// a backslash may not escape a raw newline.
func readString(lit string) *LVal {
	var buf strings.Builder
	for i := 0; i < len(lit); i++ {
		switch c := lit[i]; c {
		case '\\':
			if i+1 < len(lit) && lit[i+1] == '\n' {
				return ErrorKind(ErrnoBadString)
			}
			buf.WriteByte(c)
			if i+1 < len(lit) {
				i++
				buf.WriteByte(lit[i])
			}
		case '\n':
			buf.WriteString(`\n`)
		default:
			buf.WriteByte(c)
		}
	}
	s, err := strconv.Unquote(buf.String())
	if err != nil {
		return ErrorKind(ErrnoBadString)
	}
	return String(s)
}

func readNumber(s string) *LVal {
	x, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return ErrorKind(ErrnoBadNum)
	}
	return Number(x)
}
