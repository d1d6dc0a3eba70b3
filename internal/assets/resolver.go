package assets

import (
	"errors"
	"slices"
)

// Resolver looks a template up in an optional theme first and falls back
// to the built-in set when the theme does not have it.
type Resolver struct {
	theme   *Theme
	builtin *Builtin
}

// NewResolver returns a Resolver over themeDir. An empty themeDir serves
// only the built-in templates.
func NewResolver(themeDir string) (*Resolver, error) {
	r := &Resolver{builtin: NewBuiltin()}
	if themeDir == "" {
		return r, nil
	}
	theme, err := OpenTheme(themeDir)
	if err != nil {
		return nil, err
	}
	r.theme = theme
	return r, nil
}

// Theme returns the configured theme, or nil.
func (r *Resolver) Theme() *Theme {
	return r.theme
}

func (r *Resolver) LoadTemplate(name string) (string, error) {
	if r.theme == nil {
		return r.builtin.LoadTemplate(name)
	}

	content, err := r.theme.LoadTemplate(name)
	if !errors.Is(err, ErrTemplateNotFound) {
		return content, err
	}
	return r.builtin.LoadTemplate(name)
}

// Names lists every template name the resolver can load, sorted and
// without duplicates.
func (r *Resolver) Names() ([]string, error) {
	names := r.builtin.Names()
	if r.theme != nil {
		themed, err := r.theme.Names()
		if err != nil {
			return nil, err
		}
		names = append(names, themed...)
	}
	slices.Sort(names)
	return slices.Compact(names), nil
}

var _ TemplateLoader = (*Resolver)(nil)
