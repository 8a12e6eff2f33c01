package ofximport

import (
	"encoding/xml"
	"errors"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/rockstardevs/decimal"
)

// Node is a single tag in a parsed OFX document tree.
//
// Tag names are stored upper cased. A node holds either nested child tags or
// a scalar text payload; all branching on which of the two a node carries is
// kept within the accessors here so callers never inspect node kind directly.
type Node struct {
	Name     string
	Text     string
	Children []*Node
}

// NewTree parses well formed XML from the given reader into a document tree.
// The returned node is a virtual root holding the top level tags.
func NewTree(reader io.Reader) (*Node, error) {
	var (
		decoder = xml.NewDecoder(reader)
		root    = &Node{}
		open    = []*Node{root}
	)
	for {
		token, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		switch t := token.(type) {
		case xml.StartElement:
			node := &Node{Name: strings.ToUpper(t.Name.Local)}
			parent := open[len(open)-1]
			parent.Children = append(parent.Children, node)
			open = append(open, node)
		case xml.EndElement:
			if len(open) == 1 {
				return nil, errors.New("error - unbalanced closing tag")
			}
			open = open[:len(open)-1]
		case xml.CharData:
			open[len(open)-1].Text += string(t)
		}
	}
	return root, nil
}

// Find returns the first descendant with the given tag name, in document
// order, or nil if none exists. The name match is case insensitive.
func (n *Node) Find(name string) *Node {
	if n == nil {
		return nil
	}
	name = strings.ToUpper(name)
	for _, child := range n.Children {
		if child.Name == name {
			return child
		}
		if found := child.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every descendant whose tag name matches the given pattern,
// in document order. Different institutions nest transactions under
// differently named wrapper tags, so locating them requires a pattern rather
// than an exact name.
func (n *Node) FindAll(pattern *regexp.Regexp) []*Node {
	if n == nil {
		return nil
	}
	var matched []*Node
	for _, child := range n.Children {
		if pattern.MatchString(child.Name) {
			matched = append(matched, child)
		}
		matched = append(matched, child.FindAll(pattern)...)
	}
	return matched
}

// FindAllNamed returns every descendant with the given tag name, in document
// order.
func (n *Node) FindAllNamed(name string) []*Node {
	if n == nil {
		return nil
	}
	name = strings.ToUpper(name)
	var matched []*Node
	for _, child := range n.Children {
		if child.Name == name {
			matched = append(matched, child)
		}
		matched = append(matched, child.FindAllNamed(name)...)
	}
	return matched
}

// TextContent returns the node's trimmed scalar text payload, or nil if the
// node is missing or holds nested tags instead of text.
func (n *Node) TextContent() *string {
	if n == nil || len(n.Children) > 0 {
		return nil
	}
	text := strings.TrimSpace(n.Text)
	return &text
}

// ChildText finds the named descendant and returns its trimmed text content,
// or nil if the descendant is missing or malformed.
func (n *Node) ChildText(name string) *string {
	return n.Find(name).TextContent()
}

// ChildUnescaped is ChildText with XML/HTML entity escaping reversed.
// A missing child short circuits to nil.
func (n *Node) ChildUnescaped(name string) *string {
	value := n.ChildText(name)
	if value == nil {
		return nil
	}
	unescaped := UnescapeText(*value)
	return &unescaped
}

// ChildTime finds the named descendant and parses its text as an OFX
// timestamp. A missing child short circuits to nil without error.
func (n *Node) ChildTime(name string) (*time.Time, error) {
	value := n.ChildText(name)
	if value == nil {
		return nil, nil
	}
	return ParseDate(*value)
}

// ChildDecimal finds the named descendant and parses its text as an
// arbitrary precision decimal. A missing child short circuits to nil
// without error.
func (n *Node) ChildDecimal(name string) (*decimal.Decimal, error) {
	value := n.ChildText(name)
	if value == nil {
		return nil, nil
	}
	number, err := decimal.NewFromString(*value)
	if err != nil {
		return nil, err
	}
	return &number, nil
}
