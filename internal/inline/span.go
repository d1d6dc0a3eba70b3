// Package inline splits a run of Markdown text into typed spans (plain,
// bold, italic, code, link, image) and turns them into HTML leaf nodes.
//
// Splitting is a fixed sequence of passes over the spans still typed Plain:
// images, links, then the "**", "*" and "`" delimiters. There is no escape
// mechanism and no nesting: a span produced by one pass is never split again.
package inline

import (
	"errors"
	"fmt"

	"github.com/alnah/go-md2site/internal/htmlnode"
)

// Sentinel errors for inline parsing.
var (
	ErrUnbalancedDelimiter = errors.New("unbalanced inline delimiter")
	ErrUnknownTextType     = errors.New("unknown text type")
)

// TextType is the inline style of a Span.
type TextType int

const (
	Plain TextType = iota
	Bold
	Italic
	Code
	Link
	Image
)

var textTypeNames = [...]string{
	Plain:  "plain",
	Bold:   "bold",
	Italic: "italic",
	Code:   "code",
	Link:   "link",
	Image:  "image",
}

// String returns the lowercase type name.
func (t TextType) String() string {
	if t < 0 || int(t) >= len(textTypeNames) {
		return fmt.Sprintf("TextType(%d)", int(t))
	}
	return textTypeNames[t]
}

// Span is a contiguous run of inline text with one style.
// URL is set only for Link and Image spans.
type Span struct {
	Type TextType
	Text string
	URL  string
}

// String formats the span for test failures and debug logs.
func (s Span) String() string {
	if s.URL != "" {
		return fmt.Sprintf("%s(%q, %q)", s.Type, s.Text, s.URL)
	}
	return fmt.Sprintf("%s(%q)", s.Type, s.Text)
}

// ToNode converts a span to its HTML leaf.
func ToNode(s Span) (*htmlnode.Node, error) {
	switch s.Type {
	case Plain:
		return htmlnode.Text(s.Text), nil
	case Bold:
		return htmlnode.Leaf("b", s.Text), nil
	case Italic:
		return htmlnode.Leaf("i", s.Text), nil
	case Code:
		return htmlnode.Leaf("code", s.Text), nil
	case Link:
		return htmlnode.Leaf("a", s.Text, htmlnode.Attribute{Name: "href", Value: s.URL}), nil
	case Image:
		return htmlnode.Leaf("img", "",
			htmlnode.Attribute{Name: "src", Value: s.URL},
			htmlnode.Attribute{Name: "alt", Value: s.Text},
		), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownTextType, int(s.Type))
	}
}
