// Package assets loads HTML page templates for site generation.
//
// Three loaders share the TemplateLoader interface:
//
//	Builtin   templates compiled into the binary (default.html)
//	Theme     {dir}/templates/{name}.html on disk
//	Resolver  theme first, then built-in on ErrTemplateNotFound
//
// ResolveTemplate sits in front of a loader: a reference that looks like a
// file path is read directly, anything else is treated as a template name.
//
// Template names are plain file stems. A theme template that resolves
// outside the theme through a symlink is refused with ErrThemeEscape.
package assets
