package inline

// Notes:
// - Unbalanced delimiter input is tested in both modes. Lenient output is
//   asserted only for single-pass cases; combinations that cross passes
//   (e.g. an unmatched "**" later split on "*") are not pinned down.

import (
	"errors"
	"reflect"
	"testing"
)

// ---------------------------------------------------------------------------
// TestParse - Full inline pipeline
// ---------------------------------------------------------------------------

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []Span
	}{
		{
			name:  "bold italic and code",
			input: "This is **bold** and *italic* and `code`.",
			want: []Span{
				{Type: Plain, Text: "This is "},
				{Type: Bold, Text: "bold"},
				{Type: Plain, Text: " and "},
				{Type: Italic, Text: "italic"},
				{Type: Plain, Text: " and "},
				{Type: Code, Text: "code"},
				{Type: Plain, Text: "."},
			},
		},
		{
			name:  "single image without surrounding text",
			input: "![alt](http://x/y.png)",
			want:  []Span{{Type: Image, Text: "alt", URL: "http://x/y.png"}},
		},
		{
			name:  "link between text",
			input: "see [docs](https://go.dev) now",
			want: []Span{
				{Type: Plain, Text: "see "},
				{Type: Link, Text: "docs", URL: "https://go.dev"},
				{Type: Plain, Text: " now"},
			},
		},
		{
			name:  "image is not reinterpreted as link",
			input: "![a](u) and [b](v)",
			want: []Span{
				{Type: Image, Text: "a", URL: "u"},
				{Type: Plain, Text: " and "},
				{Type: Link, Text: "b", URL: "v"},
			},
		},
		{
			name:  "several images on one line",
			input: "![one](1.png)![two](2.png) end",
			want: []Span{
				{Type: Image, Text: "one", URL: "1.png"},
				{Type: Image, Text: "two", URL: "2.png"},
				{Type: Plain, Text: " end"},
			},
		},
		{
			name:  "delimiters inside link text are kept",
			input: "[**x**](u)",
			want:  []Span{{Type: Link, Text: "**x**", URL: "u"}},
		},
		{
			name:  "code only",
			input: "`a`",
			want:  []Span{{Type: Code, Text: "a"}},
		},
		{
			name:  "plain text only",
			input: "nothing special",
			want:  []Span{{Type: Plain, Text: "nothing special"}},
		},
		{
			name:  "empty input",
			input: "",
			want:  []Span{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tt.input, Options{})
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse_Unbalanced(t *testing.T) {
	t.Parallel()

	inputs := []string{"a *b", "**open", "x ` y", "2 * 3 = 6"}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(in, Options{})
			if !errors.Is(err, ErrUnbalancedDelimiter) {
				t.Errorf("Parse(%q) error = %v, want %v", in, err, ErrUnbalancedDelimiter)
			}
		})
	}
}

func TestParse_Lenient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []Span
	}{
		{
			name:  "unmatched italic keeps plain type",
			input: "a *b",
			want:  []Span{{Type: Plain, Text: "a "}, {Type: Plain, Text: "*b"}},
		},
		{
			name:  "trailing delimiter is kept",
			input: "x`",
			want:  []Span{{Type: Plain, Text: "x"}, {Type: Plain, Text: "`"}},
		},
		{
			name:  "matched pair before unmatched one",
			input: "`a` b `c",
			want: []Span{
				{Type: Code, Text: "a"},
				{Type: Plain, Text: " b "},
				{Type: Plain, Text: "`c"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tt.input, Options{Lenient: true})
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestSplitDelimiter - Single delimiter pass
// ---------------------------------------------------------------------------

func TestSplitDelimiter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		in    []Span
		delim string
		typ   TextType
		want  []Span
	}{
		{
			name:  "bold in the middle",
			in:    []Span{{Type: Plain, Text: "a **b** c"}},
			delim: "**",
			typ:   Bold,
			want:  []Span{{Type: Plain, Text: "a "}, {Type: Bold, Text: "b"}, {Type: Plain, Text: " c"}},
		},
		{
			name:  "delimited text at both ends drops empty fragments",
			in:    []Span{{Type: Plain, Text: "`x`"}},
			delim: "`",
			typ:   Code,
			want:  []Span{{Type: Code, Text: "x"}},
		},
		{
			name:  "non plain spans pass through",
			in:    []Span{{Type: Bold, Text: "*keep*"}, {Type: Plain, Text: "*i*"}},
			delim: "*",
			typ:   Italic,
			want:  []Span{{Type: Bold, Text: "*keep*"}, {Type: Italic, Text: "i"}},
		},
		{
			name:  "multiple pairs",
			in:    []Span{{Type: Plain, Text: "*a* and *b*"}},
			delim: "*",
			typ:   Italic,
			want:  []Span{{Type: Italic, Text: "a"}, {Type: Plain, Text: " and "}, {Type: Italic, Text: "b"}},
		},
		{
			name:  "empty pair is dropped",
			in:    []Span{{Type: Plain, Text: "a ** b"}},
			delim: "*",
			typ:   Italic,
			want:  []Span{{Type: Plain, Text: "a "}, {Type: Plain, Text: " b"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := SplitDelimiter(tt.in, tt.delim, tt.typ, Options{})
			if err != nil {
				t.Fatalf("SplitDelimiter() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitDelimiter() = %v, want %v", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestExtract - Image and link reference extraction
// ---------------------------------------------------------------------------

func TestExtractImages(t *testing.T) {
	t.Parallel()

	got := ExtractImages("a ![rick](https://i.imgur.com/a.gif) b ![obi](https://i.imgur.com/b.jpeg)")
	want := []Ref{
		{Text: "rick", URL: "https://i.imgur.com/a.gif"},
		{Text: "obi", URL: "https://i.imgur.com/b.jpeg"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractImages() = %v, want %v", got, want)
	}

	if got := ExtractImages("no images [here](x)"); got != nil {
		t.Errorf("ExtractImages() = %v, want nil", got)
	}
}

func TestExtractLinks(t *testing.T) {
	t.Parallel()

	got := ExtractLinks("[to boot dev](https://www.boot.dev) and [to youtube](https://www.youtube.com/@bootdotdev)")
	want := []Ref{
		{Text: "to boot dev", URL: "https://www.boot.dev"},
		{Text: "to youtube", URL: "https://www.youtube.com/@bootdotdev"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractLinks() = %v, want %v", got, want)
	}
}

// ---------------------------------------------------------------------------
// TestChildren - Spans to HTML leaves
// ---------------------------------------------------------------------------

func TestChildren(t *testing.T) {
	t.Parallel()

	nodes, err := Children("**b** [l](/u) ![i](/p.png)", Options{})
	if err != nil {
		t.Fatalf("Children() unexpected error: %v", err)
	}

	var got string
	for _, n := range nodes {
		s, err := n.ToHTML()
		if err != nil {
			t.Fatalf("ToHTML() unexpected error: %v", err)
		}
		got += s
	}

	want := `<b>b</b> <a href="/u">l</a> <img src="/p.png" alt="i"></img>`
	if got != want {
		t.Errorf("Children() rendered %q, want %q", got, want)
	}
}

func TestChildren_Unbalanced(t *testing.T) {
	t.Parallel()

	if _, err := Children("a *b", Options{}); !errors.Is(err, ErrUnbalancedDelimiter) {
		t.Errorf("Children() error = %v, want %v", err, ErrUnbalancedDelimiter)
	}
}
