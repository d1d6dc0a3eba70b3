package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alnah/go-md2site/internal/fileutil"
)

// Theme is a directory on disk holding templates/{name}.html files.
type Theme struct {
	dir string
}

// OpenTheme checks that dir is a readable directory and returns a Theme
// rooted at its resolved absolute path.
func OpenTheme(dir string) (*Theme, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidThemeDir)
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidThemeDir, err)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}

	info, err := os.Stat(abs)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: %s does not exist", ErrInvalidThemeDir, dir)
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrInvalidThemeDir, err)
	case !info.IsDir():
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInvalidThemeDir, dir)
	}
	if _, err := os.ReadDir(abs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidThemeDir, err)
	}

	return &Theme{dir: abs}, nil
}

// Dir returns the resolved theme directory.
func (t *Theme) Dir() string {
	return t.dir
}

func (t *Theme) templatePath(name string) string {
	return filepath.Join(t.dir, "templates", name+templateExt)
}

// LoadTemplate reads templates/{name}.html. The file, after symlink
// resolution, must stay inside the theme directory.
func (t *Theme) LoadTemplate(name string) (string, error) {
	if err := checkTemplateName(name); err != nil {
		return "", err
	}

	file := t.templatePath(name)
	if resolved, err := filepath.EvalSymlinks(file); err == nil {
		inside, err := fileutil.IsWithin(t.dir, resolved)
		if err != nil || !inside {
			return "", fmt.Errorf("%w: %s", ErrThemeEscape, name)
		}
	}

	content, err := os.ReadFile(file) // #nosec G304 -- name checked, containment verified
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %q in %s", ErrTemplateNotFound, name, t.dir)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRead, err)
	}
	return string(content), nil
}

// Names lists the loadable template names in the theme, sorted. A theme
// without a templates directory has none.
func (t *Theme) Names() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(t.dir, "templates"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateRead, err)
	}

	var names []string
	for _, entry := range entries {
		stem, ok := strings.CutSuffix(entry.Name(), templateExt)
		if !ok || entry.IsDir() || checkTemplateName(stem) != nil {
			continue
		}
		names = append(names, stem)
	}
	slices.Sort(names)
	return names, nil
}

var _ TemplateLoader = (*Theme)(nil)
