package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/fileutil"
)

// Sentinel errors for batch operations.
var (
	ErrNoInput      = errors.New("no markdown files found")
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrWriteHTML    = errors.New("failed to write HTML page")
)

// PageConverter is the interface for the conversion service.
type PageConverter interface {
	Convert(ctx context.Context, input md2site.Input) (*md2site.Result, error)
}

// Compile-time interface implementation check.
var _ PageConverter = (*md2site.Converter)(nil)

// PageObserver receives the outcome of every generated page.
type PageObserver interface {
	ObservePage(d time.Duration, err error)
}

// PageResult holds the outcome of a single page.
type PageResult struct {
	InputPath  string
	OutputPath string
	Title      string
	Err        error
	Duration   time.Duration
}

// batchParams holds settings shared by every page of a build.
type batchParams struct {
	workers  int
	title    string // Overrides the extracted title
	template string // Logged only
	log      logrus.FieldLogger
	observer PageObserver
}

// buildBatch generates pages concurrently with a bounded set of workers.
// Results keep the order of pages.
func buildBatch(ctx context.Context, conv PageConverter, pages []PageFile, params *batchParams) []PageResult {
	if len(pages) == 0 {
		return nil
	}

	concurrency := min(max(params.workers, 1), len(pages))

	results := make([]PageResult, len(pages))
	var wg sync.WaitGroup
	jobs := make(chan int, len(pages))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = PageResult{
						InputPath:  pages[idx].InputPath,
						OutputPath: pages[idx].OutputPath,
						Err:        ctx.Err(),
					}
					continue
				}
				results[idx] = buildPage(ctx, conv, pages[idx], params)
				if params.observer != nil {
					params.observer.ObservePage(results[idx].Duration, results[idx].Err)
				}
			}
		}()
	}

	for i := range pages {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// buildPage generates a single page and returns the result.
func buildPage(ctx context.Context, conv PageConverter, p PageFile, params *batchParams) PageResult {
	start := time.Now()
	result := PageResult{
		InputPath:  p.InputPath,
		OutputPath: p.OutputPath,
	}
	finish := func(err error) PageResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	params.log.WithFields(logrus.Fields{
		"from":     p.InputPath,
		"to":       p.OutputPath,
		"template": params.template,
	}).Info("Generating page")

	content, err := os.ReadFile(p.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return finish(fmt.Errorf("%w: %v", ErrReadMarkdown, err))
	}

	page, err := conv.Convert(ctx, md2site.Input{
		Markdown: string(content),
		Title:    params.title,
	})
	if err != nil {
		return finish(err)
	}
	result.Title = page.Title

	if err := os.MkdirAll(filepath.Dir(p.OutputPath), fileutil.DirPerm); err != nil {
		return finish(fmt.Errorf("%w: creating directory: %v", ErrWriteHTML, err))
	}
	if err := fileutil.WriteFileAtomic(p.OutputPath, string(page.HTML)); err != nil {
		return finish(fmt.Errorf("%w: %v", ErrWriteHTML, err))
	}

	return finish(nil)
}

// ResultSummary holds the count of succeeded and failed pages.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed pages.
func countResults(results []PageResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// firstFailure returns the first failed result, or nil.
func firstFailure(results []PageResult) *PageResult {
	for i := range results {
		if results[i].Err != nil {
			return &results[i]
		}
	}
	return nil
}

var (
	failedLabel  = color.New(color.FgRed, color.Bold)
	createdLabel = color.New(color.FgGreen)
)

// printResults outputs page results and returns the failure count.
func printResults(results []PageResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			failedLabel.Fprint(env.Stderr, "FAILED")
			fmt.Fprintf(env.Stderr, " %s: %v\n", r.InputPath, r.Err)
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			createdLabel.Fprint(env.Stdout, "Created")
			fmt.Fprintf(env.Stdout, " %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}
