package pipeline

import (
	"context"
	"html"
	"strings"
)

// HeadInjector adds markup to the document head of a rendered page.
type HeadInjector interface {
	InjectHead(ctx context.Context, htmlContent, markup string) string
}

// HeadInjection inserts markup where a <head> element would hold it.
type HeadInjection struct{}

// InjectHead inserts markup into HTML content.
// Tries </head> first, then <body>, then prepends to the HTML.
func (h *HeadInjection) InjectHead(ctx context.Context, htmlContent, markup string) string {
	if markup == "" || ctx.Err() != nil {
		return htmlContent
	}

	lowerHTML := strings.ToLower(htmlContent)

	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + markup + htmlContent[idx:]
	}

	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		if closeIdx := strings.Index(htmlContent[idx:], ">"); closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + markup + htmlContent[insertPos:]
		}
	}

	return markup + htmlContent
}

// StylesheetLink returns a <link rel="stylesheet"> element for href.
func StylesheetLink(href string) string {
	return `<link href="` + html.EscapeString(href) + `" rel="stylesheet">`
}

// ReferencesStylesheet reports whether htmlContent already links href.
func ReferencesStylesheet(htmlContent, href string) bool {
	return strings.Contains(htmlContent, `href="`+href+`"`)
}
