package pipeline

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// urlAttrs lists the attributes rewritten per element.
var urlAttrs = map[string]string{
	"a":      "href",
	"link":   "href",
	"img":    "src",
	"script": "src",
	"source": "src",
}

// NormalizeBasePath returns prefix with a single leading slash and no
// trailing slash. The site root ("", "/") normalizes to "".
func NormalizeBasePath(prefix string) string {
	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		return ""
	}
	return "/" + prefix
}

// RewriteBasePath prefixes root-relative URLs with basePath so a site can
// be served below a sub-path. If basePath normalizes to the root, returns
// the HTML unchanged.
//
// Rewrites a[href], link[href], img[src], script[src] and source[src]
// values that start with a single "/". URLs with a scheme, protocol
// relative URLs, anchors, relative paths and URLs already under basePath
// are left alone.
func RewriteBasePath(htmlContent, basePath string) (string, error) {
	basePath = NormalizeBasePath(basePath)
	if basePath == "" {
		return htmlContent, nil
	}

	doc, isFragment, err := parseHTML(htmlContent)
	if err != nil {
		return "", err
	}

	rewriteNode(doc, basePath)

	return renderHTML(doc, isFragment)
}

// parseHTML parses HTML content, handling both full documents and fragments.
// Returns the parsed node, whether it was a fragment, and any error.
func parseHTML(content string) (*html.Node, bool, error) {
	trimmed := strings.ToLower(strings.TrimSpace(content))

	if strings.HasPrefix(trimmed, "<!doctype") || strings.HasPrefix(trimmed, "<html") {
		doc, err := html.Parse(strings.NewReader(content))
		return doc, false, err
	}

	// Fragment: parse with body context to avoid wrapping
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return nil, true, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}

	return container, true, nil
}

// renderHTML renders the document back to string.
// For fragments, only renders the children (avoids adding <html><body> wrapper).
func renderHTML(doc *html.Node, isFragment bool) (string, error) {
	var buf strings.Builder

	if isFragment {
		for c := doc.FirstChild; c != nil; c = c.NextSibling {
			if err := html.Render(&buf, c); err != nil {
				return "", err
			}
		}
		return buf.String(), nil
	}

	if err := html.Render(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func rewriteNode(n *html.Node, basePath string) {
	if n.Type == html.ElementNode {
		if key, ok := urlAttrs[n.Data]; ok {
			rewriteAttr(n, key, basePath)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewriteNode(c, basePath)
	}
}

func rewriteAttr(n *html.Node, key, basePath string) {
	for i, attr := range n.Attr {
		if attr.Key != key || !isRootRelative(attr.Val) {
			continue
		}
		if attr.Val == basePath || strings.HasPrefix(attr.Val, basePath+"/") {
			continue
		}
		n.Attr[i].Val = basePath + attr.Val
	}
}

// isRootRelative reports whether u starts with "/" but is not protocol
// relative ("//host/...").
func isRootRelative(u string) bool {
	return strings.HasPrefix(u, "/") && !strings.HasPrefix(u, "//")
}
