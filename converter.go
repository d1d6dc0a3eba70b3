package md2site

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/alnah/go-md2site/internal/assets"
	"github.com/alnah/go-md2site/internal/block"
	"github.com/alnah/go-md2site/internal/highlight"
	"github.com/alnah/go-md2site/internal/inline"
	"github.com/alnah/go-md2site/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.SourcePreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.NativeConverter)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.HeadInjector         = (*pipeline.HeadInjection)(nil)
	_ assets.TemplateLoader         = (*publicToInternalAdapter)(nil)
	_ AssetLoader                   = (*assetLoaderAdapter)(nil)
)

// Converter turns Markdown documents into complete HTML pages.
// Create with NewConverter(). A Converter is immutable and safe for
// concurrent use.
type Converter struct {
	cfg               converterConfig
	assetLoader       assets.TemplateLoader
	publicAssetLoader AssetLoader
	preprocessor      pipeline.MarkdownPreprocessor
	htmlConverter     pipeline.HTMLConverter
	highlighter       *highlight.Highlighter
	headInjector      pipeline.HeadInjector
	template          string
	logger            *logrus.Logger
}

// NewConverter creates a Converter with default configuration: native
// engine, strict delimiters, built-in template, no highlighting.
// Returns error if the template cannot be loaded or an option is invalid.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:          converterConfig{engine: EngineNative},
		assetLoader:  assets.NewBuiltin(),
		preprocessor: &pipeline.SourcePreprocessor{},
		headInjector: &pipeline.HeadInjection{},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = discardLogger()
	}

	c.cfg.engine = Engine(strings.ToLower(string(c.cfg.engine)))
	if !c.cfg.engine.valid() {
		return nil, fmt.Errorf("%w: %q (must be %s or %s)", ErrInvalidEngine, c.cfg.engine, EngineNative, EngineGoldmark)
	}

	// Handle WithAssetPath: resolve to internal loader
	if c.cfg.assetPath != "" {
		resolver, err := assets.NewResolver(c.cfg.assetPath)
		if err != nil {
			return nil, convertAssetError(err)
		}
		c.assetLoader = resolver
	}

	// Handle WithAssetLoader (public interface): wrap to internal interface
	if c.publicAssetLoader != nil {
		c.assetLoader = &publicToInternalAdapter{pub: c.publicAssetLoader}
	}

	if err := c.resolveTemplate(); err != nil {
		return nil, err
	}

	if c.cfg.highlightStyle != "" {
		h, err := highlight.New(c.cfg.highlightStyle)
		if err != nil {
			return nil, err
		}
		c.highlighter = h
	}

	// Create HTML converter if not injected (e.g., by tests)
	if c.htmlConverter == nil {
		c.htmlConverter = c.newHTMLConverter()
	}

	return c, nil
}

func (c *Converter) newHTMLConverter() pipeline.HTMLConverter {
	if c.cfg.engine == EngineGoldmark {
		return pipeline.NewGoldmarkConverter(c.cfg.highlightStyle)
	}
	opts := block.Options{Inline: inline.Options{Lenient: c.cfg.lenient}}
	if c.highlighter != nil {
		opts.Code = c.highlighter.Code
	}
	return pipeline.NewNativeConverter(opts)
}

// resolveTemplate loads and validates the page template.
// Called during NewConverter() after options are applied and the asset
// loader is configured.
func (c *Converter) resolveTemplate() error {
	tmpl := c.cfg.templateContent
	if tmpl == "" {
		var err error
		tmpl, err = assets.ResolveTemplate(c.assetLoader, c.cfg.templateName)
		if err != nil {
			return fmt.Errorf("loading template: %w", convertAssetError(err))
		}
	}
	if err := pipeline.ValidateTemplate(tmpl); err != nil {
		return err
	}
	c.template = tmpl
	return nil
}

// Convert runs the full pipeline and returns the generated page.
// The context is used for cancellation.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if strings.TrimSpace(input.Markdown) == "" {
		return nil, ErrEmptyMarkdown
	}

	md := c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	title := input.Title
	if title == "" {
		title, err = block.ExtractTitle(md)
		if err != nil {
			return nil, err
		}
	}

	content, err := c.htmlConverter.ToHTML(ctx, md)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	page, err := pipeline.ApplyTemplate(c.template, title, content)
	if err != nil {
		return nil, err
	}

	// Link the highlight stylesheet unless the template already does.
	if c.highlighter != nil && !pipeline.ReferencesStylesheet(page, highlightCSSHref) {
		page = c.headInjector.InjectHead(ctx, page, pipeline.StylesheetLink(highlightCSSHref))
	}

	if c.cfg.basePath != "" {
		page, err = pipeline.RewriteBasePath(page, c.cfg.basePath)
		if err != nil {
			return nil, fmt.Errorf("rewriting base path: %w", err)
		}
	}

	c.logger.WithFields(logrus.Fields{
		"title":  title,
		"engine": c.cfg.engine,
		"bytes":  len(page),
	}).Debug("converted page")

	return &Result{
		Title:   title,
		Content: content,
		HTML:    []byte(page),
	}, nil
}

// highlightCSSHref is where WriteHighlightCSS output is served from.
const highlightCSSHref = "/" + highlight.CSSFileName

// Engine reports the Markdown engine in use.
func (c *Converter) Engine() Engine {
	return c.cfg.engine
}

// Highlighting reports whether code blocks are highlighted.
func (c *Converter) Highlighting() bool {
	return c.highlighter != nil
}

// WriteHighlightCSS writes the stylesheet for the highlight style.
// Writes nothing when highlighting is off.
func (c *Converter) WriteHighlightCSS(w io.Writer) error {
	if c.highlighter == nil {
		return nil
	}
	return c.highlighter.WriteCSS(w)
}

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
