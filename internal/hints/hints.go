// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and, when one was searched, the user config location.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml or run md2site init"

	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "/md2site/") {
			hint += "; or create " + p
			break
		}
	}

	return format(hint)
}

// ForTemplateNotFound returns hints listing the embedded template names.
func ForTemplateNotFound(available []string) string {
	if len(available) == 0 {
		return format("pass a path to an .html file with --template")
	}
	return format("available: " + strings.Join(available, ", ") + "; or pass a path to an .html file")
}

// ForInvalidTemplate reminds which placeholders a template needs.
func ForInvalidTemplate() string {
	return format("templates must contain {{ Title }} and {{ Content }}")
}

// ForUnbalancedDelimiter suggests lenient parsing or the goldmark engine.
func ForUnbalancedDelimiter() string {
	return formatHints([]string{
		"close the delimiter",
		"use --lenient to keep unmatched delimiters as text",
		"or --engine goldmark",
	})
}

// ForMissingTitle explains how a page title is found.
func ForMissingTitle() string {
	return format("start the page with a '# ' heading or set --title")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound returns hints for unknown highlight styles.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
