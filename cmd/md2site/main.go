package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/fatih/color"
	"go.uber.org/automaxprocs/maxprocs"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/config"
	"github.com/alnah/go-md2site/internal/highlight"
	"github.com/alnah/go-md2site/internal/hints"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], DefaultEnv()))
}

// run executes the command line and returns the process exit code.
func run(parent context.Context, args []string, env *Environment) int {
	setMaxProcs(slices.Contains(args, "-v") || slices.Contains(args, "--verbose"), env.Stderr)

	ctx, stop := notifyContext(parent)
	defer stop()

	cmd := newRootCmd(env)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		color.New(color.FgRed).Fprint(env.Stderr, "error: ")
		fmt.Fprintln(env.Stderr, err.Error()+hintFor(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// setMaxProcs configures GOMAXPROCS from the container CPU quota.
// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply and the program continues safely.
func setMaxProcs(verbose bool, w io.Writer) {
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
			fmt.Fprintf(w, format+"\n", args...)
		}))
		return
	}
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...any) {}))
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	var notFound *config.NotFoundError
	switch {
	case errors.As(err, &notFound):
		return hints.ForConfigNotFound(notFound.Tried)
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(nil)
	case errors.Is(err, md2site.ErrTemplateNotFound):
		return hints.ForTemplateNotFound(md2site.BuiltinTemplates())
	case errors.Is(err, md2site.ErrInvalidTemplate):
		return hints.ForInvalidTemplate()
	case errors.Is(err, md2site.ErrUnbalancedDelimiter):
		return hints.ForUnbalancedDelimiter()
	case errors.Is(err, md2site.ErrMissingTitle):
		return hints.ForMissingTitle()
	case errors.Is(err, config.ErrInvalidStyle), errors.Is(err, md2site.ErrInvalidHighlight):
		return hints.ForStyleNotFound(highlight.Styles())
	case errors.Is(err, ErrWriteHTML), errors.Is(err, ErrCopyStatic):
		return hints.ForOutputDirectory()
	}
	return ""
}
