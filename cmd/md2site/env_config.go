package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/alnah/go-md2site/internal/config"
	"github.com/alnah/go-md2site/internal/fileutil"
)

// defaultEnvFile is read when present and --env-file is not given.
const defaultEnvFile = ".env"

const envPrefix = "MD2SITE_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MD2SITE_CONFIG: config file name or path
	ContentDir string // MD2SITE_CONTENT_DIR: markdown source
	StaticDir  string // MD2SITE_STATIC_DIR: static files
	OutputDir  string // MD2SITE_OUTPUT_DIR: generated site
	Template   string // MD2SITE_TEMPLATE: template name or path
	BasePath   string // MD2SITE_BASE_PATH: URL prefix
	Engine     string // MD2SITE_ENGINE: native, goldmark
	Highlight  string // MD2SITE_HIGHLIGHT: chroma style
	Workers    int    // MD2SITE_WORKERS: parallel workers
}

// knownEnvVars lists valid MD2SITE_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MD2SITE_CONFIG":      true,
	"MD2SITE_CONTENT_DIR": true,
	"MD2SITE_STATIC_DIR":  true,
	"MD2SITE_OUTPUT_DIR":  true,
	"MD2SITE_TEMPLATE":    true,
	"MD2SITE_BASE_PATH":   true,
	"MD2SITE_ENGINE":      true,
	"MD2SITE_HIGHLIGHT":   true,
	"MD2SITE_WORKERS":     true,
}

// envSource resolves MD2SITE_* variables from the process environment,
// falling back to values read from a dotenv file.
type envSource struct {
	getenv  func(string) string
	environ func() []string
	file    map[string]string
}

// newEnvSource reads the dotenv file at path. An empty path reads .env
// when it exists; an explicit path must exist.
func newEnvSource(env *Environment, path string) (*envSource, error) {
	src := &envSource{getenv: env.Getenv, environ: env.Environ}

	if path == "" {
		if !fileutil.FileExists(defaultEnvFile) {
			return src, nil
		}
		path = defaultEnvFile
	}

	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("reading env file %s: %w", path, err)
	}
	src.file = vars
	return src, nil
}

// Get returns the process value of key, or the dotenv value when unset.
func (s *envSource) Get(key string) string {
	if v := s.getenv(key); v != "" {
		return v
	}
	return s.file[key]
}

// names returns every MD2SITE_* name visible to Get, sorted.
func (s *envSource) names() []string {
	seen := make(map[string]bool)
	if s.environ != nil {
		for _, kv := range s.environ() {
			name, _, _ := strings.Cut(kv, "=")
			if strings.HasPrefix(name, envPrefix) {
				seen[name] = true
			}
		}
	}
	for name := range s.file {
		if strings.HasPrefix(name, envPrefix) {
			seen[name] = true
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// loadEnvConfig reads configuration from environment variables.
// Returns a struct with all recognized MD2SITE_* values.
func loadEnvConfig(src *envSource, log logrus.FieldLogger) *envConfig {
	cfg := &envConfig{
		ConfigPath: src.Get("MD2SITE_CONFIG"),
		ContentDir: src.Get("MD2SITE_CONTENT_DIR"),
		StaticDir:  src.Get("MD2SITE_STATIC_DIR"),
		OutputDir:  src.Get("MD2SITE_OUTPUT_DIR"),
		Template:   src.Get("MD2SITE_TEMPLATE"),
		BasePath:   src.Get("MD2SITE_BASE_PATH"),
		Engine:     src.Get("MD2SITE_ENGINE"),
		Highlight:  src.Get("MD2SITE_HIGHLIGHT"),
	}

	if workers := src.Get("MD2SITE_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		} else {
			log.WithField("value", workers).Warn("ignoring MD2SITE_WORKERS: not a positive integer")
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MD2SITE_* variables.
// Helps catch typos like MD2SITE_OUTPUT instead of MD2SITE_OUTPUT_DIR.
func warnUnknownEnvVars(src *envSource, log logrus.FieldLogger) {
	for _, name := range src.names() {
		if !knownEnvVars[name] {
			log.Warnf("unknown environment variable %s (typo?)", name)
		}
	}
}

// applyEnvConfig overrides config file values with set environment variables.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.ContentDir != "" {
		cfg.Content = env.ContentDir
	}
	if env.StaticDir != "" {
		cfg.Static = env.StaticDir
	}
	if env.OutputDir != "" {
		cfg.Output = env.OutputDir
	}
	if env.Template != "" {
		cfg.Template = env.Template
	}
	if env.BasePath != "" {
		cfg.Site.BasePath = env.BasePath
	}
	if env.Engine != "" {
		cfg.Markdown.Engine = env.Engine
	}
	if env.Highlight != "" {
		cfg.Markdown.Highlight = env.Highlight
	}
	if env.Workers > 0 {
		cfg.Build.Workers = env.Workers
	}
}
