package pipeline

import (
	"context"
	"testing"
)

func TestInjectHead(t *testing.T) {
	t.Parallel()

	link := StylesheetLink("/chroma.css")

	tests := []struct {
		name     string
		html     string
		markup   string
		expected string
	}{
		{
			name:     "empty markup returns HTML unchanged",
			html:     "<html><head></head><body>Hello</body></html>",
			markup:   "",
			expected: "<html><head></head><body>Hello</body></html>",
		},
		{
			name:     "injects before </head>",
			html:     "<html><head><title>T</title></head><body>Hello</body></html>",
			markup:   link,
			expected: `<html><head><title>T</title><link href="/chroma.css" rel="stylesheet"></head><body>Hello</body></html>`,
		},
		{
			name:     "injects before </HEAD> mixed case",
			html:     "<html><HEAD></HEAD><body>Hello</body></html>",
			markup:   link,
			expected: `<html><HEAD><link href="/chroma.css" rel="stylesheet"></HEAD><body>Hello</body></html>`,
		},
		{
			name:     "injects after <body> with attributes",
			html:     `<html><body class="main">Hello</body></html>`,
			markup:   link,
			expected: `<html><body class="main"><link href="/chroma.css" rel="stylesheet">Hello</body></html>`,
		},
		{
			name:     "prepends to bare fragment",
			html:     "<p>Hello</p>",
			markup:   link,
			expected: `<link href="/chroma.css" rel="stylesheet"><p>Hello</p>`,
		},
		{
			name:     "only first </head>",
			html:     "<head></head><pre>&lt;/head&gt;</head></pre>",
			markup:   "<meta>",
			expected: "<head><meta></head><pre>&lt;/head&gt;</head></pre>",
		},
	}

	injector := &HeadInjection{}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := injector.InjectHead(context.Background(), tt.html, tt.markup)
			if got != tt.expected {
				t.Errorf("InjectHead() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestInjectHead_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	html := "<html><head></head><body>Hello</body></html>"
	if got := (&HeadInjection{}).InjectHead(ctx, html, "<meta>"); got != html {
		t.Errorf("InjectHead() with cancelled context should return HTML unchanged, got %q", got)
	}
}

func TestStylesheetLink(t *testing.T) {
	t.Parallel()

	if got := StylesheetLink(`/a"b.css`); got != `<link href="/a&#34;b.css" rel="stylesheet">` {
		t.Errorf("StylesheetLink() = %q", got)
	}
}

func TestReferencesStylesheet(t *testing.T) {
	t.Parallel()

	page := `<head><link href="/chroma.css" rel="stylesheet"></head>`
	if !ReferencesStylesheet(page, "/chroma.css") {
		t.Error("ReferencesStylesheet() = false for a linked stylesheet")
	}
	if ReferencesStylesheet(page, "/index.css") {
		t.Error("ReferencesStylesheet() = true for an unlinked stylesheet")
	}
}
