package pipeline

import (
	"errors"
	"fmt"
	"strings"
)

// Template placeholders.
const (
	TitlePlaceholder   = "{{ Title }}"
	ContentPlaceholder = "{{ Content }}"
)

// ErrInvalidTemplate indicates a page template lacks a placeholder.
var ErrInvalidTemplate = errors.New("invalid page template")

// ValidateTemplate checks that tmpl contains both placeholders.
func ValidateTemplate(tmpl string) error {
	var missing []string
	if !strings.Contains(tmpl, TitlePlaceholder) {
		missing = append(missing, TitlePlaceholder)
	}
	if !strings.Contains(tmpl, ContentPlaceholder) {
		missing = append(missing, ContentPlaceholder)
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidTemplate, strings.Join(missing, " and "))
	}
	return nil
}

// ApplyTemplate replaces every title and content placeholder in tmpl.
// Substituted values are never expanded again.
func ApplyTemplate(tmpl, title, content string) (string, error) {
	if err := ValidateTemplate(tmpl); err != nil {
		return "", err
	}
	parts := strings.Split(tmpl, ContentPlaceholder)
	for i, p := range parts {
		parts[i] = strings.ReplaceAll(p, TitlePlaceholder, title)
	}
	return strings.Join(parts, content), nil
}
