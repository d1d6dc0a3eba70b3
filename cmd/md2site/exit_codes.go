package main

import (
	"errors"
	"os"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/config"
	"github.com/alnah/go-md2site/internal/fileutil"
)

// Exit codes for the md2site CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Site built
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, template or markdown
	ExitIO      = 3 // File not found, permission denied, write failures
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWriteHTML) ||
		errors.Is(err, ErrCopyStatic) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, fileutil.ErrUnsafeMirror) ||
		errors.Is(err, fileutil.ErrSymlinkCycle) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidEngine) ||
		errors.Is(err, config.ErrInvalidWorkers) ||
		errors.Is(err, config.ErrInvalidStyle) ||
		errors.Is(err, md2site.ErrEmptyMarkdown) ||
		errors.Is(err, md2site.ErrInvalidEngine) ||
		errors.Is(err, md2site.ErrInvalidHighlight) ||
		errors.Is(err, md2site.ErrUnbalancedDelimiter) ||
		errors.Is(err, md2site.ErrUnknownTextType) ||
		errors.Is(err, md2site.ErrMissingTitle) ||
		errors.Is(err, md2site.ErrNoMatchingBlockType) ||
		errors.Is(err, md2site.ErrInvalidTemplate) ||
		errors.Is(err, md2site.ErrTemplateNotFound) ||
		errors.Is(err, md2site.ErrInvalidAssetPath) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidLogLevel) ||
		errors.Is(err, ErrTitleNeedsSinglePage) ||
		errors.Is(err, ErrUnsafeOutput) ||
		errors.Is(err, ErrConfigExists) ||
		errors.Is(err, ErrUnsupportedShell) ||
		errors.Is(err, ErrInvalidFlag) {
		return ExitUsage
	}

	return ExitGeneral
}
