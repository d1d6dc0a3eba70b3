package md2site

import (
	"github.com/alnah/go-md2site/internal/block"
	"github.com/alnah/go-md2site/internal/htmlnode"
	"github.com/alnah/go-md2site/internal/inline"
)

// ParseOption configures MarkdownToTree.
type ParseOption func(*block.Options)

// Lenient keeps unmatched inline delimiters as plain text instead of
// failing with ErrUnbalancedDelimiter.
func Lenient() ParseOption {
	return func(o *block.Options) {
		o.Inline.Lenient = true
	}
}

// WithCodeRenderer transforms the body of every fenced code block before
// it becomes the value of the code leaf.
func WithCodeRenderer(fn func(code string) (string, error)) ParseOption {
	return func(o *block.Options) {
		o.Code = fn
	}
}

// MarkdownToTree parses a Markdown document into a div node holding one
// child per block, in source order.
//
// Blocks are separated by blank lines and classified as heading, code
// fence, quote, unordered list, ordered list or paragraph. Inline text
// supports **bold**, *italic*, `code`, [links](url) and ![images](url),
// without nesting.
func MarkdownToTree(markdown string, opts ...ParseOption) (*Node, error) {
	var o block.Options
	for _, opt := range opts {
		opt(&o)
	}
	return block.DocumentToTree(markdown, o)
}

// Render serializes a node and its descendants to HTML.
// Values and attributes are written as is, without escaping.
func Render(n *Node) (string, error) {
	if n == nil {
		return "", ErrInvalidNode
	}
	return n.ToHTML()
}

// ExtractTitle returns the text of the first line starting with "# ".
// Returns ErrMissingTitle when the document has none.
func ExtractTitle(markdown string) (string, error) {
	return block.ExtractTitle(markdown)
}

// Text returns a raw text leaf.
func Text(value string) *Node {
	return htmlnode.Text(value)
}

// Leaf returns a tagged leaf with optional attributes.
func Leaf(tag, value string, attrs ...Attribute) *Node {
	return htmlnode.Leaf(tag, value, attrs...)
}

// Parent returns a tagged node holding children. With no children the
// node renders as an empty element.
func Parent(tag string, children ...*Node) *Node {
	return htmlnode.Parent(tag, children...)
}

// InlineNodes converts one line of inline Markdown into leaf nodes.
func InlineNodes(text string, opts ...ParseOption) ([]*Node, error) {
	var o block.Options
	for _, opt := range opts {
		opt(&o)
	}
	return inline.Children(text, o.Inline)
}
