package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// byteOrderMark is stripped from the start of a document.
const byteOrderMark = "\uFEFF"

// Line ending normalization.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// blankLine matches a line holding only blanks, so "text\n  \nmore"
// still separates blocks. Blanks after content are kept: "> " and "- "
// lines need theirs to classify.
var blankLine = regexp.MustCompile(`(?m)^[ \t]+$`)

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// SourcePreprocessor normalizes source text before block splitting.
type SourcePreprocessor struct{}

// PreprocessMarkdown strips a byte order mark, converts line endings to
// "\n" and empties lines that hold only blanks.
func (p *SourcePreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	content = strings.TrimPrefix(content, byteOrderMark)
	content = normalizeLineEndings(content)
	content = collapseBlankLines(content)
	return content
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

func collapseBlankLines(content string) string {
	return blankLine.ReplaceAllString(content, "")
}
