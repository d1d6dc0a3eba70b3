package pipeline

// Notes:
// - Tests RewriteBasePath through its public API plus the two small helpers.
// - Error branches in parseHTML/renderHTML are not covered: the html
//   package does not fail on string input.
// - Element attributes are asserted with goquery so attribute order and
//   serializer formatting do not matter.

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

// ---------------------------------------------------------------------------
// TestRewriteBasePath - Main Function Tests
// ---------------------------------------------------------------------------

func TestRewriteBasePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		html     string
		basePath string
		selector string
		attr     string
		want     string
	}{
		{
			name:     "root relative link",
			html:     `<a href="/x">x</a>`,
			basePath: "/blog",
			selector: "a",
			attr:     "href",
			want:     "/blog/x",
		},
		{
			name:     "root relative image",
			html:     `<img src="/images/logo.png" alt="logo">`,
			basePath: "blog",
			selector: "img",
			attr:     "src",
			want:     "/blog/images/logo.png",
		},
		{
			name:     "stylesheet link",
			html:     `<link rel="stylesheet" href="/index.css">`,
			basePath: "/blog/",
			selector: "link",
			attr:     "href",
			want:     "/blog/index.css",
		},
		{
			name:     "site root",
			html:     `<a href="/">home</a>`,
			basePath: "/blog",
			selector: "a",
			attr:     "href",
			want:     "/blog/",
		},
		{
			name:     "absolute URL unchanged",
			html:     `<a href="https://example.com/x">x</a>`,
			basePath: "/blog",
			selector: "a",
			attr:     "href",
			want:     "https://example.com/x",
		},
		{
			name:     "protocol relative unchanged",
			html:     `<img src="//cdn.example.com/a.png">`,
			basePath: "/blog",
			selector: "img",
			attr:     "src",
			want:     "//cdn.example.com/a.png",
		},
		{
			name:     "anchor unchanged",
			html:     `<a href="#top">top</a>`,
			basePath: "/blog",
			selector: "a",
			attr:     "href",
			want:     "#top",
		},
		{
			name:     "relative path unchanged",
			html:     `<a href="other.html">o</a>`,
			basePath: "/blog",
			selector: "a",
			attr:     "href",
			want:     "other.html",
		},
		{
			name:     "already prefixed unchanged",
			html:     `<a href="/blog/post">p</a>`,
			basePath: "/blog",
			selector: "a",
			attr:     "href",
			want:     "/blog/post",
		},
		{
			name:     "similar prefix is rewritten",
			html:     `<a href="/blogroll">r</a>`,
			basePath: "/blog",
			selector: "a",
			attr:     "href",
			want:     "/blog/blogroll",
		},
		{
			name:     "other attributes untouched",
			html:     `<img src="/a.png" data-src="/b.png">`,
			basePath: "/blog",
			selector: "img",
			attr:     "data-src",
			want:     "/b.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := RewriteBasePath(tt.html, tt.basePath)
			if err != nil {
				t.Fatalf("RewriteBasePath() unexpected error: %v", err)
			}

			doc, err := goquery.NewDocumentFromReader(strings.NewReader(got))
			if err != nil {
				t.Fatalf("parsing result: %v", err)
			}
			val, ok := doc.Find(tt.selector).Attr(tt.attr)
			if !ok {
				t.Fatalf("result %q has no %s[%s]", got, tt.selector, tt.attr)
			}
			if val != tt.want {
				t.Errorf("%s[%s] = %q, want %q", tt.selector, tt.attr, val, tt.want)
			}
		})
	}
}

func TestRewriteBasePath_RootIsNoop(t *testing.T) {
	t.Parallel()

	const in = `<div><a href="/x">x</a></div>`
	for _, base := range []string{"", "/", "  ", "//"} {
		got, err := RewriteBasePath(in, base)
		if err != nil {
			t.Fatalf("RewriteBasePath(%q) unexpected error: %v", base, err)
		}
		if got != in {
			t.Errorf("RewriteBasePath(%q) = %q, want input unchanged", base, got)
		}
	}
}

func TestRewriteBasePath_FullDocument(t *testing.T) {
	t.Parallel()

	in := `<!DOCTYPE html><html><head><link href="/index.css" rel="stylesheet"></head>` +
		`<body><div><p><a href="/about">About</a></p></div></body></html>`

	got, err := RewriteBasePath(in, "/site")
	if err != nil {
		t.Fatalf("RewriteBasePath() unexpected error: %v", err)
	}

	if !strings.HasPrefix(got, "<!DOCTYPE html>") {
		t.Errorf("result should keep the doctype, got %q", got)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(got))
	if err != nil {
		t.Fatalf("parsing result: %v", err)
	}
	if href, _ := doc.Find("head link").Attr("href"); href != "/site/index.css" {
		t.Errorf("link href = %q, want /site/index.css", href)
	}
	if href, _ := doc.Find("body a").Attr("href"); href != "/site/about" {
		t.Errorf("a href = %q, want /site/about", href)
	}
}

func TestRewriteBasePath_Fragment(t *testing.T) {
	t.Parallel()

	got, err := RewriteBasePath(`<div><p><img src="/p.png" alt="i"></img></p></div>`, "/blog")
	if err != nil {
		t.Fatalf("RewriteBasePath() unexpected error: %v", err)
	}
	if strings.Contains(got, "<html") || strings.Contains(got, "<body") {
		t.Errorf("fragment should not be wrapped, got %q", got)
	}
	if !strings.Contains(got, `src="/blog/p.png"`) {
		t.Errorf("result %q should contain rewritten src", got)
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func TestNormalizeBasePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/", ""},
		{"blog", "/blog"},
		{"/blog", "/blog"},
		{"/blog/", "/blog"},
		{" /docs/v2/ ", "/docs/v2"},
	}
	for _, tt := range tests {
		if got := NormalizeBasePath(tt.in); got != tt.want {
			t.Errorf("NormalizeBasePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsRootRelative(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"/x", true},
		{"/", true},
		{"//cdn/x", false},
		{"x", false},
		{"", false},
		{"https://x/", false},
		{"#a", false},
	}
	for _, tt := range tests {
		if got := isRootRelative(tt.in); got != tt.want {
			t.Errorf("isRootRelative(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
