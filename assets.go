package md2site

import (
	"errors"

	"github.com/alnah/go-md2site/internal/assets"
)

// DefaultTemplate is the name of the built-in page template.
const DefaultTemplate = assets.DefaultTemplateName

// AssetLoader defines the contract for loading page templates.
// Implementations may load from filesystem, embedded assets, a database, etc.
//
// The library provides NewAssetLoader() for filesystem-based loading with
// fallback to embedded defaults. Implement this interface for custom backends.
type AssetLoader interface {
	// LoadTemplate loads a page template by name (without .html extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	LoadTemplate(name string) (string, error)
}

// NewAssetLoader creates an AssetLoader over a theme directory holding
// templates/{name}.html files. Theme templates take precedence, with
// fallback to the built-in ones. An empty themeDir serves only the
// built-in templates.
//
// Returns ErrInvalidAssetPath if themeDir is set but not a readable directory.
func NewAssetLoader(themeDir string) (AssetLoader, error) {
	resolver, err := assets.NewResolver(themeDir)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return &assetLoaderAdapter{resolver: resolver}, nil
}

// BuiltinTemplates lists the embedded template names.
func BuiltinTemplates() []string {
	return assets.NewBuiltin().Names()
}

// TemplateNames lists the template names loadable with themeDir as the
// asset path: the built-in ones plus those the theme adds.
func TemplateNames(themeDir string) ([]string, error) {
	resolver, err := assets.NewResolver(themeDir)
	if err != nil {
		return nil, convertAssetError(err)
	}
	names, err := resolver.Names()
	return names, convertAssetError(err)
}

// assetLoaderAdapter wraps the internal resolver to return public errors.
type assetLoaderAdapter struct {
	resolver *assets.Resolver
}

func (a *assetLoaderAdapter) LoadTemplate(name string) (string, error) {
	content, err := a.resolver.LoadTemplate(name)
	if err != nil {
		return "", convertAssetError(err)
	}
	return content, nil
}

// publicToInternalAdapter wraps a public AssetLoader as an assets.TemplateLoader.
type publicToInternalAdapter struct {
	pub AssetLoader
}

func (a *publicToInternalAdapter) LoadTemplate(name string) (string, error) {
	return a.pub.LoadTemplate(name)
}

// convertAssetError maps internal asset errors to public errors.
func convertAssetError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, assets.ErrTemplateNotFound):
		return wrapError(ErrTemplateNotFound, err)
	case errors.Is(err, assets.ErrInvalidThemeDir), errors.Is(err, assets.ErrThemeEscape):
		return wrapError(ErrInvalidAssetPath, err)
	case errors.Is(err, assets.ErrInvalidTemplateName):
		return wrapError(ErrTemplateNotFound, err)
	default:
		return err
	}
}

// wrapError creates a new error that wraps the original with a public sentinel.
// The resulting error preserves the original message via Error() and supports
// errors.Is() matching against the public sentinel via Unwrap().
func wrapError(sentinel, original error) error {
	return &wrappedAssetError{sentinel: sentinel, original: original}
}

type wrappedAssetError struct {
	sentinel error
	original error
}

func (e *wrappedAssetError) Error() string {
	return e.original.Error()
}

// Unwrap returns the public sentinel for errors.Is() matching.
// Internal errors are not exposed since they're in internal/ packages.
func (e *wrappedAssetError) Unwrap() error {
	return e.sentinel
}
