// Package md2site converts Markdown documents into HTML pages built from a
// template, for small static sites.
//
// # Quick Start
//
// Create a converter and convert markdown:
//
//	conv, err := md2site.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, md2site.Input{
//	    Markdown: "# Hello\n\nWorld",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("index.html", result.HTML, 0644)
//
// The result holds the complete page (result.HTML), the body fragment
// (result.Content) and the title taken from the first "# " heading.
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Source normalization (byte order mark, line endings, trailing blanks)
//  2. Markdown to HTML fragment, with the native engine or goldmark
//  3. Template substitution of {{ Title }} and {{ Content }}
//  4. Base path rewriting of root-relative URLs (optional)
//
// # Element Tree
//
// The native engine builds a tree of nodes before rendering. The tree is
// available directly:
//
//	tree, err := md2site.MarkdownToTree("# Title\n\nSome *text*.")
//	html, err := md2site.Render(tree)
//	// <div><h1>Title</h1><p>Some <i>text</i>.</p></div>
//
// Unmatched inline delimiters such as a lone "*" are an error by default.
// Pass md2site.Lenient() or WithLenientDelimiters(true) to keep them as text.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := md2site.NewConverter(
//	    md2site.WithEngine(md2site.EngineGoldmark),
//	    md2site.WithHighlight("monokai"),
//	    md2site.WithBasePath("/blog"),
//	    md2site.WithAssetPath("/path/to/theme"),
//	    md2site.WithTemplateName("post"),
//	)
//
// With highlighting enabled, code blocks carry chroma CSS classes; write the
// matching stylesheet with Converter.WriteHighlightCSS.
//
// # Custom Templates
//
// Override the built-in template using an asset directory or AssetLoader:
//
//	loader, err := md2site.NewAssetLoader("/path/to/theme")
//	conv, err := md2site.NewConverter(md2site.WithAssetLoader(loader))
//
// Asset directory structure:
//
//	theme/
//	└── templates/
//	    ├── default.html
//	    └── post.html
//
// A template must contain both {{ Title }} and {{ Content }}.
package md2site
