// Package syntax defines the untyped syntax tree exchanged between a parser
// and the lisp tree reader.
package syntax

import (
	"bytes"
	"fmt"
)

// Tag identifies the kind of a syntax tree Node.
type Tag uint

// Possible Tag values
const (
	TagInvalid Tag = iota
	TagRoot
	TagNumber
	TagSymbol
	TagString
	TagComment
	TagSExpr
	TagQExpr
)

var tagStrings = []string{
	TagInvalid: "INVALID",
	TagRoot:    "root",
	TagNumber:  "number",
	TagSymbol:  "symbol",
	TagString:  "string",
	TagComment: "comment",
	TagSExpr:   "sexpr",
	TagQExpr:   "qexpr",
}

func (t Tag) String() string {
	if int(t) >= len(tagStrings) {
		return tagStrings[TagInvalid]
	}
	return tagStrings[t]
}

// Node is a node in a syntax tree.  Leaf nodes carry the source text of their
// token in Contents, string literals included with their quotes and escapes.
// List nodes (root, sexpr, qexpr) carry their elements in Children.
type Node struct {
	Tag      Tag
	Contents string
	Pos      int
	Children []*Node
}

// Leaf returns a leaf node.
func Leaf(tag Tag, contents string, pos int) *Node {
	return &Node{Tag: tag, Contents: contents, Pos: pos}
}

// List returns a list node containing children.
func List(tag Tag, pos int, children ...*Node) *Node {
	return &Node{Tag: tag, Pos: pos, Children: children}
}

// IsList returns true if n holds children rather than token contents.
func (n *Node) IsList() bool {
	switch n.Tag {
	case TagRoot, TagSExpr, TagQExpr:
		return true
	}
	return false
}

// String renders the tree in a compact debugging format.
func (n *Node) String() string {
	if !n.IsList() {
		return fmt.Sprintf("%v:%s", n.Tag, n.Contents)
	}
	var buf bytes.Buffer
	buf.WriteString(n.Tag.String())
	buf.WriteString("[")
	for i, c := range n.Children {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(c.String())
	}
	buf.WriteString("]")
	return buf.String()
}
