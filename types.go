package md2site

import (
	"github.com/sirupsen/logrus"

	"github.com/alnah/go-md2site/internal/htmlnode"
	"github.com/alnah/go-md2site/internal/pipeline"
)

// Node is an element of the HTML tree built from Markdown.
// A node is either a leaf holding a value or a parent holding children.
type Node = htmlnode.Node

// Attribute is one name="value" pair of a leaf node.
type Attribute = htmlnode.Attribute

// Template placeholders, substituted by Convert.
const (
	TitlePlaceholder   = pipeline.TitlePlaceholder
	ContentPlaceholder = pipeline.ContentPlaceholder
)

// Engine selects the Markdown to HTML implementation.
type Engine string

// Engine constants.
const (
	// EngineNative builds the element tree with the package's own block
	// and inline rules. Output is stable and minimal.
	EngineNative Engine = "native"

	// EngineGoldmark renders through goldmark with GitHub Flavored Markdown.
	// Use it for documents the native rules do not cover, such as tables or
	// nested emphasis.
	EngineGoldmark Engine = "goldmark"
)

func (e Engine) valid() bool {
	switch e {
	case EngineNative, EngineGoldmark:
		return true
	}
	return false
}

// Input contains conversion parameters.
type Input struct {
	Markdown string // Markdown content (required)
	Title    string // Page title (optional, default: text of the first "# " heading)
}

// Result holds the output of a conversion.
type Result struct {
	Title   string // Title substituted into the template
	Content string // HTML fragment for the Markdown body
	HTML    []byte // Complete page
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	engine          Engine
	lenient         bool
	highlightStyle  string
	basePath        string
	assetPath       string
	templateName    string
	templateContent string
}

// WithTemplate sets the page template content directly.
// The template must contain {{ Title }} and {{ Content }}.
func WithTemplate(content string) Option {
	return func(c *Converter) {
		c.cfg.templateContent = content
	}
}

// WithTemplateName selects a template by name, or by file path when the
// value contains a path separator or ends in ".html".
// Names resolve through the asset directory first, then the built-in set.
func WithTemplateName(name string) Option {
	return func(c *Converter) {
		c.cfg.templateName = name
	}
}

// WithAssetPath sets a directory holding templates/{name}.html files.
// Missing templates fall back to the built-in ones.
func WithAssetPath(dir string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = dir
	}
}

// WithEngine selects the Markdown engine. Defaults to EngineNative.
func WithEngine(e Engine) Option {
	return func(c *Converter) {
		c.cfg.engine = e
	}
}

// WithLenientDelimiters keeps unmatched *, ** and ` as plain text instead
// of failing with ErrUnbalancedDelimiter. Only affects EngineNative.
func WithLenientDelimiters(lenient bool) Option {
	return func(c *Converter) {
		c.cfg.lenient = lenient
	}
}

// WithHighlight enables syntax highlighting of code blocks with the named
// chroma style. Output uses CSS classes; see Converter.WriteHighlightCSS.
func WithHighlight(style string) Option {
	return func(c *Converter) {
		c.cfg.highlightStyle = style
	}
}

// WithBasePath prefixes root-relative URLs in generated pages, for sites
// served under a sub-path such as "/blog".
// With a base path set, the page is parsed and re-serialized as HTML5, so
// Result.HTML differs from the plain rendering beyond the URLs: text is
// escaped, void elements such as img lose their closing tag, and a full
// document gains any head or body element it lacks.
// Result.Content is not rewritten.
func WithBasePath(prefix string) Option {
	return func(c *Converter) {
		c.cfg.basePath = pipeline.NormalizeBasePath(prefix)
	}
}

// WithLogger sets the logger used for debug output.
// Panics if l is nil (programmer error).
func WithLogger(l *logrus.Logger) Option {
	if l == nil {
		panic("md2site: WithLogger logger must not be nil")
	}
	return func(c *Converter) {
		c.logger = l
	}
}

// WithAssetLoader sets a custom template loader.
// Takes precedence over WithAssetPath.
func WithAssetLoader(loader AssetLoader) Option {
	return func(c *Converter) {
		c.publicAssetLoader = loader
	}
}
