package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/alnah/go-md2site/internal/config"
	"github.com/alnah/go-md2site/internal/fileutil"
)

// Sentinel errors for page discovery.
var (
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// Auto worker sizing bounds.
const (
	minAutoWorkers = 1
	maxAutoWorkers = 8
)

// pageExt is the extension of generated pages.
const pageExt = ".html"

// PageFile represents a single markdown file to generate.
type PageFile struct {
	InputPath  string
	OutputPath string
}

// discoverPages finds every markdown file under contentPath and maps it to
// its page under outputDir. A single file is mapped to outputDir/<name>.html.
// Results are sorted by input path.
func discoverPages(contentPath, outputDir string) ([]PageFile, error) {
	info, err := os.Stat(contentPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validateMarkdownExtension(contentPath); err != nil {
			return nil, err
		}
		return []PageFile{{
			InputPath:  contentPath,
			OutputPath: resolveOutputPath(contentPath, outputDir, ""),
		}}, nil
	}

	var pages []PageFile
	err = filepath.WalkDir(contentPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !isMarkdown(path) {
			return nil
		}
		pages = append(pages, PageFile{
			InputPath:  path,
			OutputPath: resolveOutputPath(path, outputDir, contentPath),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(pages, func(i, j int) bool { return pages[i].InputPath < pages[j].InputPath })
	return pages, nil
}

// resolveOutputPath determines the page path for a markdown file, keeping
// its position relative to baseContentDir.
func resolveOutputPath(inputPath, outputDir, baseContentDir string) string {
	name := fileutil.ReplaceExt(filepath.Base(inputPath), pageExt)

	if baseContentDir != "" {
		if relPath, err := filepath.Rel(baseContentDir, inputPath); err == nil {
			return filepath.Join(outputDir, fileutil.ReplaceExt(relPath, pageExt))
		}
	}

	return filepath.Join(outputDir, name)
}

func isMarkdown(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".md" || ext == ".markdown"
}

// validateMarkdownExtension checks that the file has a .md or .markdown extension.
func validateMarkdownExtension(path string) error {
	if !isMarkdown(path) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}
	return nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > config.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, config.MaxWorkers)
	}
	return nil
}

// resolveWorkers returns n, or half of GOMAXPROCS clamped to
// [minAutoWorkers, maxAutoWorkers] when n is 0.
func resolveWorkers(n int) int {
	if n > 0 {
		return n
	}
	return clampWorkers(runtime.GOMAXPROCS(0) / 2)
}

func clampWorkers(n int) int {
	return max(minAutoWorkers, min(n, maxAutoWorkers))
}
