package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// defaultLoader serves the package-level LoadTemplate.
var defaultLoader = NewBuiltin()

// LoadTemplate loads a template by name using the built-in templates.
// Returns ErrTemplateNotFound if the template does not exist.
// Returns ErrInvalidTemplateName if the name contains path separators or traversal.
func LoadTemplate(name string) (string, error) {
	return defaultLoader.LoadTemplate(name)
}

// IsTemplatePath reports whether ref names a file rather than a template
// name: it contains a path separator or ends in ".html".
func IsTemplatePath(ref string) bool {
	return strings.ContainsAny(ref, `/\`) || strings.HasSuffix(strings.ToLower(ref), ".html")
}

// ResolveTemplate returns the content a template reference points to.
// A path is read from disk; a name goes through loader. An empty ref
// selects DefaultTemplateName.
func ResolveTemplate(loader TemplateLoader, ref string) (string, error) {
	if ref == "" {
		ref = DefaultTemplateName
	}
	if !IsTemplatePath(ref) {
		return loader.LoadTemplate(ref)
	}

	content, err := os.ReadFile(filepath.Clean(ref)) // #nosec G304 -- user-provided template path
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, ref)
		}
		return "", fmt.Errorf("%w: %v", ErrTemplateRead, err)
	}
	return string(content), nil
}
