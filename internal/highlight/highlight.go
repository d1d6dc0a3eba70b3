// Package highlight renders fenced code as class-based chroma HTML.
//
// A Highlighter is built once per style and is safe for concurrent use.
// Its Code method matches block.CodeRenderer so the native engine can
// highlight code fences without depending on chroma itself.
package highlight

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// ErrUnknownStyle indicates the style name is not registered with chroma.
var ErrUnknownStyle = errors.New("unknown highlight style")

// CSSFileName is the stylesheet written next to generated pages.
const CSSFileName = "chroma.css"

// Highlighter formats code with one chroma style.
type Highlighter struct {
	style     *chroma.Style
	formatter *html.Formatter
}

// New returns a Highlighter for the named chroma style.
func New(styleName string) (*Highlighter, error) {
	if !KnownStyle(styleName) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, styleName)
	}
	return &Highlighter{
		style: styles.Get(styleName),
		formatter: html.New(
			html.WithClasses(true),
			html.PreventSurroundingPre(true),
		),
	}, nil
}

// StyleName returns the chroma style name.
func (h *Highlighter) StyleName() string {
	return h.style.Name
}

// Code highlights a code fence body. When the first line names a known
// lexer it selects the lexer and is dropped from the output; otherwise
// chroma guesses from the content.
func (h *Highlighter) Code(code string) (string, error) {
	lexer, body := selectLexer(code)

	it, err := chroma.Coalesce(lexer).Tokenise(nil, body)
	if err != nil {
		return "", fmt.Errorf("tokenising code: %w", err)
	}

	var sb strings.Builder
	if err := h.formatter.Format(&sb, h.style, it); err != nil {
		return "", fmt.Errorf("formatting code: %w", err)
	}
	return sb.String(), nil
}

// WriteCSS writes the stylesheet for the highlighter's classes.
func (h *Highlighter) WriteCSS(w io.Writer) error {
	return h.formatter.WriteCSS(w, h.style)
}

// KnownStyle reports whether chroma registers a style with this name.
func KnownStyle(name string) bool {
	if name == "" {
		return false
	}
	for _, n := range styles.Names() {
		if n == name {
			return true
		}
	}
	return false
}

// Styles lists the registered style names.
func Styles() []string {
	return styles.Names()
}

func selectLexer(code string) (chroma.Lexer, string) {
	first, rest, found := strings.Cut(code, "\n")
	first = strings.TrimSpace(first)
	if found && first != "" && !strings.ContainsAny(first, " \t") {
		if l := lexers.Get(first); l != nil {
			return l, rest
		}
	}

	if l := lexers.Analyse(code); l != nil {
		return l, code
	}
	return lexers.Fallback, code
}
