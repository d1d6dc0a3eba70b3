// Package pipeline implements the Markdown-to-page conversion stages:
//   - source preprocessing (byte order mark, line endings, trailing blanks)
//   - Markdown to HTML fragment via the native tree builder or goldmark
//   - page template substitution
//   - head injection of the highlight stylesheet link
//   - base path rewriting of root-relative URLs
//
// Each stage is a plain function or a small type behind an interface so the
// root md2site package can assemble and test them independently.
package pipeline
