package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/alnah/go-md2site/internal/block"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// HTMLConverter turns preprocessed Markdown into an HTML fragment.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// NativeConverter builds an element tree with the block and inline
// splitters and serializes it.
type NativeConverter struct {
	opts block.Options
}

// NewNativeConverter creates a NativeConverter. A nil code renderer in
// opts keeps code fences verbatim.
func NewNativeConverter(opts block.Options) *NativeConverter {
	return &NativeConverter{opts: opts}
}

// ToHTML converts content to a single div fragment.
func (c *NativeConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	tree, err := block.DocumentToTree(content, c.opts)
	if err != nil {
		return "", err
	}
	out, err := tree.ToHTML()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	return out, nil
}

// GoldmarkConverter converts Markdown to HTML using goldmark.
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM extensions.
// A non-empty style enables chroma highlighting with CSS classes.
func NewGoldmarkConverter(style string) *GoldmarkConverter {
	extensions := []goldmark.Extender{extension.GFM}
	if style != "" {
		extensions = append(extensions, highlighting.NewHighlighting(
			highlighting.WithStyle(style),
			highlighting.WithFormatOptions(
				chromahtml.WithClasses(true),
			),
		))
	}

	md := goldmark.New(
		goldmark.WithExtensions(extensions...),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
		),
	)
	return &GoldmarkConverter{md: md}
}

// ToHTML converts Markdown content to an HTML fragment.
// Goldmark has no context support, so conversion runs in a goroutine and
// the caller stops waiting on cancellation.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
