/*
Package parser provides a lisp parser.

	input  := <expr>*
	expr   := <comment> | <string> | <number> | <symbol> | <sexpr> | <qexpr>
	sexpr  := '(' <expr>* ')'
	qexpr  := '{' <expr>* '}'
	number := /-?[0-9]+/
	string := '"' <strcontent> '"'
	strcontent := /[^"\\]+/ | '\' /./
	symbol := /[a-zA-Z0-9_+\-*\/%\\=<>!&|]+/
	comment := ';' /[^\n]+/ | ';'

The parser produces an untyped syntax tree.  Converting the tree into lisp
values is the job of lisp.Read.
*/
package parser

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"unicode"

	"github.com/catwell/ownlisp/lisp"
	"github.com/catwell/ownlisp/syntax"
	parsec "github.com/prataprc/goparsec"
)

// ErrIncomplete is wrapped by a SyntaxError when the input ends inside an
// unterminated list or string.  A REPL can read more input and try again.
var ErrIncomplete = errors.New("unexpected end of input")

// SyntaxError describes the location of invalid source.
type SyntaxError struct {
	Name string
	Line int
	Col  int
	Err  error
}

func (e *SyntaxError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%d:%d: syntax error: %v", e.Line, e.Col, e.Err)
	}
	return fmt.Sprintf("%s:%d:%d: syntax error: %v", e.Name, e.Line, e.Col, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// IsIncomplete returns true if err indicates that more input is needed to
// complete an expression.
func IsIncomplete(err error) bool {
	return errors.Is(err, ErrIncomplete)
}

// Reader implements lisp.Reader.
type Reader struct{}

var _ lisp.Reader = (*Reader)(nil)

// NewReader returns a new lisp.Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read implements lisp.Reader.
func (*Reader) Read(name string, r io.Reader) (*syntax.Node, error) {
	text, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return Parse(name, text)
}

// Parse parses every expression in text and returns a root syntax node
// containing them.
func Parse(name string, text []byte) (*syntax.Node, error) {
	s := parsec.NewScanner(text)
	parser := newParsecParser()

	root := syntax.List(syntax.TagRoot, 0)
	node, s := parser(s)
	for node != nil {
		for _, c := range cleanParsecNodeList([]parsec.ParsecNode{node}) {
			n, ok := c.(*syntax.Node)
			if !ok {
				return nil, fmt.Errorf("unexpected parse node: %T", c)
			}
			root.Children = append(root.Children, n)
		}
		node, s = parser(s)
	}
	cursor := s.GetCursor()
	if len(bytes.TrimSpace(text[cursor:])) != 0 {
		return nil, syntaxError(name, text, cursor)
	}
	return root, nil
}

// ParseLVal parses LVal values from text and returns the top-level forms.
func ParseLVal(text []byte) ([]*lisp.LVal, error) {
	root, err := Parse("", text)
	if err != nil {
		return nil, err
	}
	return lisp.ReadForms(root), nil
}

// ParseLine parses text as a single line of interactive input.  The forms in
// text are returned as one S-expression, so "+ 1 2" is a call to "+".
func ParseLine(name string, text []byte) (*lisp.LVal, error) {
	root, err := Parse(name, text)
	if err != nil {
		return nil, err
	}
	return lisp.Read(root), nil
}

// syntaxError reports the first unparsed token following offset.
func syntaxError(name string, text []byte, offset int) error {
	rest := bytes.TrimLeftFunc(text[offset:], unicode.IsSpace)
	line, col := position(text, len(text)-len(rest))
	err := &SyntaxError{Name: name, Line: line, Col: col}
	if unterminated(text) {
		err.Err = ErrIncomplete
		return err
	}
	err.Err = fmt.Errorf("unexpected %q", rest[:1])
	return err
}

// position returns the 1-based line and column of offset in text.
func position(text []byte, offset int) (line, col int) {
	line, col = 1, 1
	for _, c := range text[:offset] {
		if c == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return line, col
}

// unterminated returns true if text ends inside a string literal or with
// more opening than closing brackets.
func unterminated(text []byte) bool {
	depth := 0
	inString := false
	inComment := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case inComment:
			if c == '\n' {
				inComment = false
			}
		case inString:
			switch c {
			case '\\':
				i++
			case '"':
				inString = false
			}
		case c == ';':
			inComment = true
		case c == '"':
			inString = true
		case c == '(' || c == '{':
			depth++
		case c == ')' || c == '}':
			depth--
		}
	}
	return inString || depth > 0
}

func newParsecParser() parsec.Parser {
	openP := parsec.Atom("(", "OPENP")
	closeP := parsec.Atom(")", "CLOSEP")
	openB := parsec.Atom("{", "OPENB")
	closeB := parsec.Atom("}", "CLOSEB")
	comment := parsec.Token(`;([^\n]*[^\s])?`, "COMMENT")
	str := parsec.Token(`"(?:[^"\\]|\\.)*"`, "STRING")
	number := parsec.Token(`-?[0-9]+`, "NUMBER")
	symbol := parsec.Token(`[a-zA-Z0-9_+\-*/%\\=<>!&|]+`, "SYMBOL")
	term := parsec.OrdChoice(termNode, // terminal token
		comment,
		str,
		number,
		symbol, // symbol comes last because it swallows numbers
	)
	var expr parsec.Parser // forward declaration allows for recursive parsing
	sexprList := parsec.Kleene(nil, &expr)
	qexprList := parsec.Kleene(nil, &expr)
	sexpr := parsec.And(listNode(syntax.TagSExpr), openP, sexprList, closeP)
	qexpr := parsec.And(listNode(syntax.TagQExpr), openB, qexprList, closeB)
	expr = parsec.OrdChoice(nil, term, sexpr, qexpr)
	return expr
}

var termTags = map[string]syntax.Tag{
	"COMMENT": syntax.TagComment,
	"STRING":  syntax.TagString,
	"NUMBER":  syntax.TagNumber,
	"SYMBOL":  syntax.TagSymbol,
}

func termNode(nodes []parsec.ParsecNode) parsec.ParsecNode {
	nodes = cleanParsecNodeList(nodes)
	if len(nodes) == 0 {
		return nil
	}
	term, ok := nodes[0].(*parsec.Terminal)
	if !ok {
		return nil
	}
	tag, ok := termTags[term.Name]
	if !ok {
		panic(fmt.Sprintf("unknown terminal: %s", term.Name))
	}
	return syntax.Leaf(tag, term.Value, term.Position)
}

func listNode(tag syntax.Tag) parsec.Nodify {
	return func(nodes []parsec.ParsecNode) parsec.ParsecNode {
		nodes = cleanParsecNodeList(nodes)
		list := syntax.List(tag, 0)
		// We don't want terminal parsec nodes for the brackets
		for i, c := range nodes {
			switch c := c.(type) {
			case *syntax.Node:
				list.Children = append(list.Children, c)
			case *parsec.Terminal:
				if i == 0 {
					list.Pos = c.Position
				}
			}
		}
		return list
	}
}

func cleanParsecNodeList(lis []parsec.ParsecNode) []parsec.ParsecNode {
	var nodes []parsec.ParsecNode
	for _, n := range lis {
		switch node := n.(type) {
		case []parsec.ParsecNode:
			nodes = append(nodes, cleanParsecNodeList(node)...)
		default:
			nodes = append(nodes, node)
		}
	}
	return nodes
}
