// Package htmlnode defines the element tree produced by Markdown conversion
// and its serialization to HTML.
//
// A Node is either a leaf, carrying a text value with an optional tag and
// attributes, or a parent, carrying an ordered list of children under a
// required tag. Use Text, Leaf and Parent to build nodes; they always
// produce a valid node.
package htmlnode

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for serialization.
var (
	ErrMissingValue    = errors.New("leaf node has no value")
	ErrMissingTag      = errors.New("parent node has no tag")
	ErrMissingChildren = errors.New("parent node has no children")
	ErrInvalidNode     = errors.New("invalid node")
)

// Kind discriminates the two node variants.
type Kind int

const (
	KindInvalid Kind = iota
	KindLeaf
	KindParent
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindParent:
		return "parent"
	default:
		return "invalid"
	}
}

// Attribute is a single name="value" pair rendered on a leaf tag.
type Attribute struct {
	Name  string
	Value string
}

// Node is one element of the HTML tree.
//
// Leaf nodes use Value (nil means absent) and never Children.
// Parent nodes use Children (nil means absent, empty is valid) and never Value.
// Attrs are only rendered on leaf tags.
type Node struct {
	Kind     Kind
	Tag      string // empty on a leaf means raw text
	Value    *string
	Children []*Node
	Attrs    []Attribute
}

// Text creates an untagged leaf holding raw text.
func Text(value string) *Node {
	return Leaf("", value)
}

// Leaf creates a leaf with the given tag, value and attributes.
func Leaf(tag, value string, attrs ...Attribute) *Node {
	n := &Node{Kind: KindLeaf, Tag: tag, Value: &value}
	if len(attrs) > 0 {
		n.Attrs = append([]Attribute(nil), attrs...)
	}
	return n
}

// Parent creates a parent with the given tag and children.
// The children slice is never nil, so a parent without children is valid.
func Parent(tag string, children ...*Node) *Node {
	kids := make([]*Node, 0, len(children))
	kids = append(kids, children...)
	return &Node{Kind: KindParent, Tag: tag, Children: kids}
}

// IsLeaf reports whether n is a leaf node.
func (n *Node) IsLeaf() bool { return n != nil && n.Kind == KindLeaf }

// IsParent reports whether n is a parent node.
func (n *Node) IsParent() bool { return n != nil && n.Kind == KindParent }

// Validate checks the leaf/parent payload invariant for n and its subtree.
// It does not check for missing tags or values; ToHTML reports those.
func (n *Node) Validate() error {
	if n == nil {
		return fmt.Errorf("%w: nil node", ErrInvalidNode)
	}
	switch n.Kind {
	case KindLeaf:
		if n.Children != nil {
			return fmt.Errorf("%w: leaf %q has children", ErrInvalidNode, n.Tag)
		}
		return nil
	case KindParent:
		if n.Value != nil {
			return fmt.Errorf("%w: parent %q has a value", ErrInvalidNode, n.Tag)
		}
		for _, c := range n.Children {
			if err := c.Validate(); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidNode, n.Kind)
	}
}

// ToHTML serializes n and its subtree.
func (n *Node) ToHTML() (string, error) {
	var sb strings.Builder
	if err := n.write(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// String renders n, returning an empty string on error.
func (n *Node) String() string {
	s, _ := n.ToHTML()
	return s
}

func (n *Node) write(sb *strings.Builder) error {
	if n == nil {
		return fmt.Errorf("%w: nil node", ErrInvalidNode)
	}
	switch n.Kind {
	case KindLeaf:
		return n.writeLeaf(sb)
	case KindParent:
		return n.writeParent(sb)
	default:
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidNode, n.Kind)
	}
}

func (n *Node) writeLeaf(sb *strings.Builder) error {
	if n.Value == nil {
		return fmt.Errorf("%w: tag %q", ErrMissingValue, n.Tag)
	}
	if n.Tag == "" {
		sb.WriteString(*n.Value)
		return nil
	}
	sb.WriteByte('<')
	sb.WriteString(n.Tag)
	writeAttrs(sb, n.Attrs)
	sb.WriteByte('>')
	sb.WriteString(*n.Value)
	sb.WriteString("</")
	sb.WriteString(n.Tag)
	sb.WriteByte('>')
	return nil
}

func (n *Node) writeParent(sb *strings.Builder) error {
	if n.Tag == "" {
		return ErrMissingTag
	}
	if n.Children == nil {
		return fmt.Errorf("%w: tag %q", ErrMissingChildren, n.Tag)
	}
	sb.WriteByte('<')
	sb.WriteString(n.Tag)
	sb.WriteByte('>')
	for _, c := range n.Children {
		if err := c.write(sb); err != nil {
			return err
		}
	}
	sb.WriteString("</")
	sb.WriteString(n.Tag)
	sb.WriteByte('>')
	return nil
}

// AttrsHTML renders attributes as ` name="value"` pairs in order.
// Values are not escaped.
func AttrsHTML(attrs []Attribute) string {
	var sb strings.Builder
	writeAttrs(&sb, attrs)
	return sb.String()
}

func writeAttrs(sb *strings.Builder, attrs []Attribute) {
	for _, a := range attrs {
		sb.WriteByte(' ')
		sb.WriteString(a.Name)
		sb.WriteString(`="`)
		sb.WriteString(a.Value)
		sb.WriteByte('"')
	}
}
