package block

import (
	"fmt"
	"strings"

	"github.com/alnah/go-md2site/internal/htmlnode"
	"github.com/alnah/go-md2site/internal/inline"
)

// CodeRenderer produces the value of the code leaf for a fenced block.
// It receives the fence content with markers removed and whitespace trimmed.
type CodeRenderer func(code string) (string, error)

// Options controls block conversion.
type Options struct {
	Inline inline.Options
	Code   CodeRenderer // nil keeps code verbatim
}

// DocumentToTree converts a whole document into a div holding one
// subtree per block, in source order.
func DocumentToTree(document string, opts Options) (*htmlnode.Node, error) {
	blocks := Parse(document)
	children := make([]*htmlnode.Node, 0, len(blocks))
	for i, b := range blocks {
		n, err := ToNode(b, opts)
		if err != nil {
			return nil, fmt.Errorf("block %d (%s): %w", i+1, b.Type, err)
		}
		children = append(children, n)
	}
	return htmlnode.Parent("div", children...), nil
}

// ToNode converts a classified block into its HTML subtree.
func ToNode(b Block, opts Options) (*htmlnode.Node, error) {
	switch b.Type {
	case Heading:
		return headingNode(b, opts)
	case CodeFence:
		return codeNode(b, opts)
	case Quote:
		return quoteNode(b, opts)
	case UnorderedList:
		return listNode(b, "ul", unorderedItem, opts)
	case OrderedList:
		return listNode(b, "ol", orderedItem, opts)
	case Paragraph:
		return inlineParent("p", b.Text, opts)
	default:
		return nil, fmt.Errorf("%w: %s", ErrNoMatchingBlockType, b.Type)
	}
}

func headingNode(b Block, opts Options) (*htmlnode.Node, error) {
	level := b.Level
	if level == 0 {
		level = HeadingLevel(b.Text)
	}
	if level == 0 {
		return nil, fmt.Errorf("%w: heading without '#' prefix", ErrNoMatchingBlockType)
	}
	return inlineParent(fmt.Sprintf("h%d", level), b.Text[level+1:], opts)
}

func codeNode(b Block, opts Options) (*htmlnode.Node, error) {
	text := b.Text
	if len(text) < minimumFenceLength {
		return nil, fmt.Errorf("%w: code fence too short", ErrNoMatchingBlockType)
	}
	code := strings.TrimSpace(text[len(fenceMarker) : len(text)-len(fenceMarker)])
	if opts.Code != nil {
		rendered, err := opts.Code(code)
		if err != nil {
			return nil, fmt.Errorf("rendering code: %w", err)
		}
		code = rendered
	}
	return htmlnode.Parent("pre", htmlnode.Leaf("code", code)), nil
}

func quoteNode(b Block, opts Options) (*htmlnode.Node, error) {
	lines := strings.Split(b.Text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimPrefix(l, quotePrefix)
	}
	return inlineParent("blockquote", strings.Join(lines, "\n"), opts)
}

func listNode(b Block, tag string, item func(string) string, opts Options) (*htmlnode.Node, error) {
	lines := strings.Split(b.Text, "\n")
	items := make([]*htmlnode.Node, 0, len(lines))
	for _, l := range lines {
		li, err := inlineParent("li", item(l), opts)
		if err != nil {
			return nil, err
		}
		items = append(items, li)
	}
	return htmlnode.Parent(tag, items...), nil
}

func unorderedItem(line string) string {
	if len(line) < listMarkerWidth {
		return ""
	}
	return line[listMarkerWidth:]
}

func orderedItem(line string) string {
	return orderedPattern.ReplaceAllString(line, "")
}

func inlineParent(tag, text string, opts Options) (*htmlnode.Node, error) {
	children, err := inline.Children(text, opts.Inline)
	if err != nil {
		return nil, err
	}
	return htmlnode.Parent(tag, children...), nil
}
