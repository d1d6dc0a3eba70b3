// Package block splits a Markdown document into blank-line separated
// blocks, classifies each block, and converts it into an htmlnode subtree.
//
// A code block needs separate opening and closing "```" markers, so a block
// of only "```" or "````" is a paragraph, not an empty code block.
package block

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Sentinel errors for block conversion.
var (
	ErrMissingTitle        = errors.New("no H1 heading found")
	ErrNoMatchingBlockType = errors.New("no matching block type")
)

// Separator is the blank line between two blocks.
const Separator = "\n\n"

// fenceMarker opens and closes a code block.
const fenceMarker = "```"

// Type is the structural kind of a block.
type Type int

const (
	Paragraph Type = iota
	Heading
	CodeFence
	Quote
	UnorderedList
	OrderedList
)

var typeNames = [...]string{
	Paragraph:     "paragraph",
	Heading:       "heading",
	CodeFence:     "code",
	Quote:         "quote",
	UnorderedList: "unordered_list",
	OrderedList:   "ordered_list",
}

// String returns the block type name.
func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// Line prefix patterns.
var (
	headingPattern   = regexp.MustCompile(`^(#{1,6}) `)
	unorderedPattern = regexp.MustCompile(`^[-*] `)
	orderedPattern   = regexp.MustCompile(`^\d+\. `)
)

const (
	quotePrefix     = "> "
	listMarkerWidth = 2
	// A fence needs distinct opening and closing markers.
	minimumFenceLength = 2 * len(fenceMarker)
)

// Block is one trimmed, classified unit of a document.
type Block struct {
	Text  string
	Type  Type
	Level int // heading level, 0 for other types
}

// Split breaks a document on blank lines. Each block is trimmed and
// empty or whitespace-only blocks are dropped.
func Split(document string) []string {
	raw := strings.Split(document, Separator)
	blocks := make([]string, 0, len(raw))
	for _, b := range raw {
		b = strings.TrimSpace(b)
		if b == "" {
			continue
		}
		blocks = append(blocks, b)
	}
	return blocks
}

// Parse splits and classifies a document.
func Parse(document string) []Block {
	texts := Split(document)
	blocks := make([]Block, 0, len(texts))
	for _, text := range texts {
		blocks = append(blocks, New(text))
	}
	return blocks
}

// New classifies text as a Block.
func New(text string) Block {
	b := Block{Text: text, Type: Classify(text)}
	if b.Type == Heading {
		b.Level = HeadingLevel(text)
	}
	return b
}

// Classify returns the type of a trimmed block. Checks run in order:
// heading, code fence, quote, unordered list, ordered list, paragraph.
// Quotes and lists require every line to match.
func Classify(text string) Type {
	if headingPattern.MatchString(text) {
		return Heading
	}
	if len(text) >= minimumFenceLength &&
		strings.HasPrefix(text, fenceMarker) && strings.HasSuffix(text, fenceMarker) {
		return CodeFence
	}

	lines := strings.Split(text, "\n")
	switch {
	case allLines(lines, func(l string) bool { return strings.HasPrefix(l, quotePrefix) }):
		return Quote
	case allLines(lines, unorderedPattern.MatchString):
		return UnorderedList
	case allLines(lines, orderedPattern.MatchString):
		return OrderedList
	default:
		return Paragraph
	}
}

// HeadingLevel returns the number of leading '#' characters of a heading
// block, or 0 if text is not a heading.
func HeadingLevel(text string) int {
	m := headingPattern.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	return len(m[1])
}

// ExtractTitle returns the text of the first line starting with "# ".
func ExtractTitle(document string) (string, error) {
	for _, line := range strings.Split(document, "\n") {
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(line[2:]), nil
		}
	}
	return "", ErrMissingTitle
}

func allLines(lines []string, match func(string) bool) bool {
	for _, l := range lines {
		if !match(l) {
			return false
		}
	}
	return true
}
