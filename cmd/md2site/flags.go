package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
)

// ErrInvalidLogLevel is returned for an unknown --log-level value.
var ErrInvalidLogLevel = errors.New("invalid log level")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config   string
	envFile  string
	logLevel string
	quiet    bool
	verbose  bool
	noColor  bool
}

// buildFlags holds flags for the build command.
type buildFlags struct {
	output      string
	static      string
	template    string
	assetPath   string
	engine      string
	highlight   string
	basePath    string
	title       string
	metricsFile string
	lenient     bool
	workers     int
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.envFile, "env-file", "", "load MD2SITE_* variables from this file (default .env if present)")
	fs.StringVar(&f.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-page timing and debug logs")
	fs.BoolVar(&f.noColor, "no-color", false, "disable colored output")
}

// addBuildFlags adds build flags to a FlagSet.
func addBuildFlags(fs *flag.FlagSet, f *buildFlags) {
	fs.StringVarP(&f.output, "output", "o", "", "output directory (default \"public\")")
	fs.StringVar(&f.static, "static", "", "static directory mirrored into the output (default \"static\")")
	fs.StringVar(&f.template, "template", "", "template name or path to an .html file")
	fs.StringVar(&f.assetPath, "assets", "", "custom asset directory containing templates/")
	fs.StringVar(&f.engine, "engine", "", "markdown engine: native, goldmark")
	fs.BoolVar(&f.lenient, "lenient", false, "keep unmatched inline delimiters as text")
	fs.StringVar(&f.highlight, "highlight", "", "chroma style for code blocks (empty = off)")
	fs.StringVar(&f.basePath, "base-path", "", "URL prefix for root-relative links, e.g. /blog")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVar(&f.metricsFile, "metrics-file", "", "write build metrics in Prometheus text format")
	fs.StringVar(&f.title, "title", "", "page title, single-file builds only")
}

// apply configures logging and color output from the common flags.
// -q wins over -v, and both win over --log-level.
func (f *commonFlags) apply(l *logrus.Logger) error {
	level, err := logrus.ParseLevel(strings.TrimSpace(f.logLevel))
	if err != nil {
		return fmt.Errorf("%w: %q (use debug, info, warn or error)", ErrInvalidLogLevel, f.logLevel)
	}
	switch {
	case f.quiet:
		level = logrus.ErrorLevel
	case f.verbose:
		level = logrus.DebugLevel
	}
	l.SetLevel(level)

	if f.noColor {
		color.NoColor = true
	}
	return nil
}
