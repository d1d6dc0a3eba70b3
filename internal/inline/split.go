package inline

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/alnah/go-md2site/internal/htmlnode"
)

// Inline delimiters, applied longest first.
const (
	BoldDelimiter   = "**"
	ItalicDelimiter = "*"
	CodeDelimiter   = "`"
)

// Precompiled patterns for image and link syntax.
// Brackets and parentheses cannot nest, so each match is the shortest one.
var (
	imagePattern = regexp.MustCompile(`!\[([^\[\]]*)\]\(([^()]*)\)`)
	linkPattern  = regexp.MustCompile(`\[([^\[\]]*)\]\(([^()]*)\)`)
)

// Options controls inline parsing.
type Options struct {
	// Lenient accepts an odd number of delimiters. The trailing fragment
	// keeps the original type and starts with the unmatched delimiter.
	// When false, an odd count fails with ErrUnbalancedDelimiter.
	Lenient bool
}

// Ref is an alt-text or link-text and URL pair found in Markdown.
type Ref struct {
	Text string
	URL  string
}

// Parse splits text into spans.
func Parse(text string, opts Options) ([]Span, error) {
	spans := []Span{{Type: Plain, Text: text}}
	spans = SplitImages(spans)
	spans = SplitLinks(spans)

	var err error
	for _, d := range []struct {
		delim string
		typ   TextType
	}{
		{BoldDelimiter, Bold},
		{ItalicDelimiter, Italic},
		{CodeDelimiter, Code},
	} {
		spans, err = SplitDelimiter(spans, d.delim, d.typ, opts)
		if err != nil {
			return nil, err
		}
	}
	return spans, nil
}

// Children parses text and converts each span to an HTML leaf.
func Children(text string, opts Options) ([]*htmlnode.Node, error) {
	spans, err := Parse(text, opts)
	if err != nil {
		return nil, err
	}
	nodes := make([]*htmlnode.Node, 0, len(spans))
	for _, s := range spans {
		n, err := ToNode(s)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

// SplitDelimiter splits every Plain span on delim. Fragments alternate
// between the span's own type and typ; empty fragments are dropped.
func SplitDelimiter(spans []Span, delim string, typ TextType, opts Options) ([]Span, error) {
	out := make([]Span, 0, len(spans))
	for _, s := range spans {
		if s.Type != Plain {
			out = append(out, s)
			continue
		}

		parts := strings.Split(s.Text, delim)
		unmatched := len(parts)%2 == 0
		if unmatched && !opts.Lenient {
			return nil, fmt.Errorf("%w: %q in %q", ErrUnbalancedDelimiter, delim, s.Text)
		}

		for i, part := range parts {
			if unmatched && i == len(parts)-1 {
				out = append(out, Span{Type: s.Type, Text: delim + part})
				continue
			}
			if part == "" {
				continue
			}
			if i%2 == 0 {
				out = append(out, Span{Type: s.Type, Text: part})
			} else {
				out = append(out, Span{Type: typ, Text: part})
			}
		}
	}
	return out, nil
}

// SplitImages replaces every ![alt](url) in Plain spans with an Image span.
func SplitImages(spans []Span) []Span {
	return splitPattern(spans, imagePattern, Image)
}

// SplitLinks replaces every [text](url) in Plain spans with a Link span.
// Run it after SplitImages so image syntax is never read as a link.
func SplitLinks(spans []Span) []Span {
	return splitPattern(spans, linkPattern, Link)
}

// ExtractImages returns the (alt, url) pairs of every image in text.
func ExtractImages(text string) []Ref {
	return extract(text, imagePattern)
}

// ExtractLinks returns the (text, url) pairs of every link in text.
// Image syntax also matches; strip images first if that matters.
func ExtractLinks(text string) []Ref {
	return extract(text, linkPattern)
}

func extract(text string, re *regexp.Regexp) []Ref {
	matches := re.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	refs := make([]Ref, 0, len(matches))
	for _, m := range matches {
		refs = append(refs, Ref{Text: m[1], URL: m[2]})
	}
	return refs
}

func splitPattern(spans []Span, re *regexp.Regexp, typ TextType) []Span {
	out := make([]Span, 0, len(spans))
	for _, s := range spans {
		if s.Type != Plain {
			out = append(out, s)
			continue
		}

		matches := re.FindAllStringSubmatchIndex(s.Text, -1)
		if len(matches) == 0 {
			out = append(out, s)
			continue
		}

		last := 0
		for _, m := range matches {
			if m[0] > last {
				out = append(out, Span{Type: Plain, Text: s.Text[last:m[0]]})
			}
			out = append(out, Span{
				Type: typ,
				Text: s.Text[m[2]:m[3]],
				URL:  s.Text[m[4]:m[5]],
			})
			last = m[1]
		}
		if last < len(s.Text) {
			out = append(out, Span{Type: Plain, Text: s.Text[last:]})
		}
	}
	return out
}
