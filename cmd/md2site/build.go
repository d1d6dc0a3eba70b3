package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/config"
	"github.com/alnah/go-md2site/internal/fileutil"
	"github.com/alnah/go-md2site/internal/highlight"
	"github.com/alnah/go-md2site/internal/metrics"
)

// Sentinel errors for the build command.
var (
	ErrCopyStatic           = errors.New("failed to copy static files")
	ErrTitleNeedsSinglePage = errors.New("--title requires a single markdown file")
	ErrUnsafeOutput         = errors.New("output directory would overwrite its sources")
)

// buildError reports a build with failed pages. It unwraps to the first
// failure so exit codes and hints follow the first failure's cause.
type buildError struct {
	failed int
	total  int
	first  PageResult
}

func (e *buildError) Error() string {
	return fmt.Sprintf("%d of %d pages failed; first: %s: %v", e.failed, e.total, e.first.InputPath, e.first.Err)
}

func (e *buildError) Unwrap() error {
	return e.first.Err
}

func newBuildCmd(env *Environment, common *commonFlags) *cobra.Command {
	f := &buildFlags{}
	cmd := &cobra.Command{
		Use:     "build [content]",
		Short:   "Generate the site from Markdown content",
		Long:    buildLong,
		Example: buildExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd.Context(), args, common, f, cmd.Flags(), env)
		},
	}
	addBuildFlags(cmd.Flags(), f)
	registerBuildCompletions(cmd)
	return cmd
}

// runBuild mirrors static files, generates every page, writes the
// highlight stylesheet and metrics, and reports per-page results.
func runBuild(ctx context.Context, args []string, common *commonFlags, f *buildFlags, fs *flag.FlagSet, env *Environment) error {
	log := env.Logger

	src, err := newEnvSource(env, common.envFile)
	if err != nil {
		return err
	}
	warnUnknownEnvVars(src, log)
	envCfg := loadEnvConfig(src, log)

	cfg, cfgPath, err := loadConfig(common.config, envCfg.ConfigPath)
	if err != nil {
		return err
	}
	if cfgPath != "" {
		log.WithField("path", cfgPath).Debug("loaded config")
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(f, fs, args, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	cfg.ApplyDefaults()
	if err := validateWorkers(cfg.Build.Workers); err != nil {
		return err
	}
	if err := checkOutputSafe(cfg); err != nil {
		return err
	}

	conv, err := md2site.NewConverter(converterOptions(cfg, log)...)
	if err != nil {
		return err
	}

	pages, err := discoverPages(cfg.Content, cfg.Output)
	if err != nil {
		return err
	}
	if len(pages) == 0 {
		return fmt.Errorf("%w in %s", ErrNoInput, cfg.Content)
	}
	if f.title != "" && len(pages) > 1 {
		return fmt.Errorf("%w (found %d in %s)", ErrTitleNeedsSinglePage, len(pages), cfg.Content)
	}

	recorder := metrics.NewRecorder()
	start := env.Now()

	if err := prepareOutput(cfg, recorder, log); err != nil {
		return err
	}

	workers := resolveWorkers(cfg.Build.Workers)
	log.WithFields(logrus.Fields{
		"pages":   len(pages),
		"workers": workers,
		"engine":  conv.Engine(),
	}).Debug("building site")

	results := buildBatch(ctx, conv, pages, &batchParams{
		workers:  workers,
		title:    f.title,
		template: cfg.Template,
		log:      log,
		observer: recorder,
	})

	if conv.Highlighting() {
		if err := writeHighlightCSS(conv, cfg.Output); err != nil {
			return err
		}
	}

	failed := printResults(results, common.quiet, common.verbose, env)

	end := env.Now()
	recorder.FinishBuild(end.Sub(start), failed, end)
	if cfg.Build.MetricsFile != "" {
		if err := recorder.WriteFile(cfg.Build.MetricsFile); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
		log.WithField("path", cfg.Build.MetricsFile).Debug("wrote metrics")
	}

	if first := firstFailure(results); first != nil {
		return &buildError{failed: failed, total: len(results), first: *first}
	}
	return nil
}

// loadConfig resolves the config from --config, then MD2SITE_CONFIG, then
// md2site.yaml in the working directory, then defaults.
func loadConfig(flagValue, envValue string) (*config.Config, string, error) {
	name := flagValue
	if name == "" {
		name = envValue
	}
	if name == "" {
		return config.LoadDefault()
	}
	cfg, err := config.LoadConfig(name)
	return cfg, name, err
}

// mergeFlags applies explicitly set build flags over cfg.
// A positional content argument overrides the content directory.
func mergeFlags(f *buildFlags, fs *flag.FlagSet, args []string, cfg *config.Config) {
	if len(args) > 0 {
		cfg.Content = args[0]
	}
	if f.output != "" {
		cfg.Output = f.output
	}
	if f.static != "" {
		cfg.Static = f.static
	}
	if f.template != "" {
		cfg.Template = f.template
	}
	if f.assetPath != "" {
		cfg.Assets.BasePath = f.assetPath
	}
	if f.engine != "" {
		cfg.Markdown.Engine = f.engine
	}
	if fs.Changed("lenient") {
		cfg.Markdown.LenientDelimiters = f.lenient
	}
	if fs.Changed("highlight") {
		cfg.Markdown.Highlight = f.highlight
	}
	if fs.Changed("base-path") {
		cfg.Site.BasePath = f.basePath
	}
	if fs.Changed("workers") {
		cfg.Build.Workers = f.workers
	}
	if f.metricsFile != "" {
		cfg.Build.MetricsFile = f.metricsFile
	}
}

// checkOutputSafe refuses an output directory that is, or contains, the
// content or static directory, since the build clears it. Output inside
// the static directory is refused too: mirroring would copy it into itself.
func checkOutputSafe(cfg *config.Config) error {
	for _, dir := range []string{cfg.Content, cfg.Static} {
		inside, err := fileutil.IsWithin(cfg.Output, dir)
		if err != nil {
			return err
		}
		if inside {
			return fmt.Errorf("%w: %s contains %s", ErrUnsafeOutput, cfg.Output, dir)
		}
	}
	if cfg.Static == "" {
		return nil
	}
	nested, err := fileutil.IsWithin(cfg.Static, cfg.Output)
	if err != nil {
		return err
	}
	if nested {
		return fmt.Errorf("%w: %s is inside static directory %s", ErrUnsafeOutput, cfg.Output, cfg.Static)
	}
	return nil
}

// converterOptions translates cfg into converter options.
func converterOptions(cfg *config.Config, log *logrus.Logger) []md2site.Option {
	opts := []md2site.Option{
		md2site.WithEngine(md2site.Engine(cfg.Markdown.Engine)),
		md2site.WithTemplateName(cfg.Template),
		md2site.WithLenientDelimiters(cfg.Markdown.LenientDelimiters),
		md2site.WithLogger(log),
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, md2site.WithAssetPath(cfg.Assets.BasePath))
	}
	if cfg.Markdown.Highlight != "" {
		opts = append(opts, md2site.WithHighlight(cfg.Markdown.Highlight))
	}
	if cfg.Site.BasePath != "" {
		opts = append(opts, md2site.WithBasePath(cfg.Site.BasePath))
	}
	return opts
}

// prepareOutput mirrors the static directory into the output directory.
// Without a static directory the output directory is only created.
func prepareOutput(cfg *config.Config, recorder *metrics.Recorder, log logrus.FieldLogger) error {
	if !fileutil.DirExists(cfg.Static) {
		log.WithField("static", cfg.Static).Debug("no static directory, skipping copy")
		if err := os.MkdirAll(cfg.Output, fileutil.DirPerm); err != nil {
			return fmt.Errorf("%w: creating %s: %v", ErrWriteHTML, cfg.Output, err)
		}
		return nil
	}

	n, err := fileutil.MirrorDir(cfg.Static, cfg.Output)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCopyStatic, err)
	}
	recorder.SetStaticFiles(n)
	log.WithFields(logrus.Fields{
		"from":  cfg.Static,
		"to":    cfg.Output,
		"files": n,
	}).Info("Copied static files")
	return nil
}

// writeHighlightCSS writes the chroma stylesheet for class-based highlighting.
func writeHighlightCSS(conv *md2site.Converter, outputDir string) error {
	var buf bytes.Buffer
	if err := conv.WriteHighlightCSS(&buf); err != nil {
		return fmt.Errorf("%w: highlight stylesheet: %v", ErrWriteHTML, err)
	}
	path := filepath.Join(outputDir, highlight.CSSFileName)
	if err := fileutil.WriteFileAtomic(path, buf.String()); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteHTML, err)
	}
	return nil
}
