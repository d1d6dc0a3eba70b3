package assets

import (
	"errors"
	"fmt"
	"regexp"
)

// DefaultTemplateName is the name of the built-in page template.
const DefaultTemplateName = "default"

// templateExt is appended to a template name to form its file name.
const templateExt = ".html"

var (
	ErrTemplateNotFound    = errors.New("template not found")
	ErrInvalidTemplateName = errors.New("invalid template name")
	ErrInvalidThemeDir     = errors.New("invalid theme directory")
	ErrTemplateRead        = errors.New("failed to read template")
	// ErrThemeEscape reports a template file that resolves outside its theme,
	// usually through a symlink.
	ErrThemeEscape = errors.New("template escapes theme directory")
)

// TemplateLoader loads page templates by name (without the .html extension).
type TemplateLoader interface {
	LoadTemplate(name string) (string, error)
}

var templateNameRE = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// checkTemplateName rejects names that could not be a plain file stem:
// empty names, separators, dots and leading punctuation.
func checkTemplateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidTemplateName)
	}
	if !templateNameRE.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidTemplateName, name)
	}
	return nil
}
