package assets

import (
	"embed"
	"fmt"
	"path"
	"slices"
	"strings"
)

//go:embed templates/*.html
var builtinFS embed.FS

// Builtin serves the templates compiled into the binary.
type Builtin struct{}

func NewBuiltin() *Builtin {
	return &Builtin{}
}

func (b *Builtin) LoadTemplate(name string) (string, error) {
	if err := checkTemplateName(name); err != nil {
		return "", err
	}
	content, err := builtinFS.ReadFile(path.Join("templates", name+templateExt))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}
	return string(content), nil
}

// Names lists the built-in template names in sorted order.
func (b *Builtin) Names() []string {
	entries, err := builtinFS.ReadDir("templates")
	if err != nil {
		return nil
	}
	var names []string
	for _, entry := range entries {
		if stem, ok := strings.CutSuffix(entry.Name(), templateExt); ok {
			names = append(names, stem)
		}
	}
	slices.Sort(names)
	return names
}

var _ TemplateLoader = (*Builtin)(nil)
