// Package config loads and validates md2site.yaml site configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2site/internal/fileutil"
	"github.com/alnah/go-md2site/internal/highlight"
	"github.com/alnah/go-md2site/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidEngine   = errors.New("invalid markdown engine")
	ErrInvalidWorkers  = errors.New("invalid worker count")
	ErrInvalidStyle    = errors.New("invalid highlight style")
)

// DefaultConfigName is searched in the working directory when no config
// is named explicitly.
const DefaultConfigName = "md2site"

// Directory and template defaults.
const (
	DefaultContentDir = "content"
	DefaultStaticDir  = "static"
	DefaultOutputDir  = "public"
	DefaultTemplate   = "default"
)

// Markdown engines.
const (
	EngineNative   = "native"
	EngineGoldmark = "goldmark"
)

// MaxWorkers bounds build.workers.
const MaxWorkers = 64

// Field length limits.
const (
	MaxPathLength     = 4096 // PATH_MAX on Linux
	MaxBasePathLength = 2048 // Browser URL limit
	MaxStyleLength    = 50
)

// Config holds all configuration for site generation.
type Config struct {
	Content  string         `yaml:"content"`  // Markdown source file or directory
	Static   string         `yaml:"static"`   // Directory mirrored into Output
	Output   string         `yaml:"output"`   // Generated site directory
	Template string         `yaml:"template"` // Template name or path to an .html file
	Assets   AssetsConfig   `yaml:"assets"`
	Site     SiteConfig     `yaml:"site"`
	Markdown MarkdownConfig `yaml:"markdown"`
	Build    BuildConfig    `yaml:"build"`
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded templates
}

// SiteConfig defines how the generated site is served.
type SiteConfig struct {
	BasePath string `yaml:"basePath"` // URL prefix for root-relative links, e.g. "/blog"
}

// MarkdownConfig selects and tunes the Markdown engine.
type MarkdownConfig struct {
	Engine            string `yaml:"engine"`            // "native" (default) or "goldmark"
	LenientDelimiters bool   `yaml:"lenientDelimiters"` // Keep unmatched delimiters as text
	Highlight         string `yaml:"highlight"`         // chroma style name, empty = off
}

// BuildConfig tunes batch generation.
type BuildConfig struct {
	Workers     int    `yaml:"workers"`     // 0 = auto
	MetricsFile string `yaml:"metricsFile"` // Prometheus textfile output, empty = off
}

// Validate checks field lengths and enumerated values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	paths := []struct{ name, value string }{
		{"content", c.Content},
		{"static", c.Static},
		{"output", c.Output},
		{"template", c.Template},
		{"assets.basePath", c.Assets.BasePath},
		{"build.metricsFile", c.Build.MetricsFile},
	}
	for _, p := range paths {
		if err := validateFieldLength(p.name, p.value, MaxPathLength); err != nil {
			return err
		}
	}
	if err := validateFieldLength("site.basePath", c.Site.BasePath, MaxBasePathLength); err != nil {
		return err
	}
	if err := validateFieldLength("markdown.highlight", c.Markdown.Highlight, MaxStyleLength); err != nil {
		return err
	}

	switch strings.ToLower(c.Markdown.Engine) {
	case "", EngineNative, EngineGoldmark:
	default:
		return fmt.Errorf("%w: markdown.engine %q (must be %s or %s)", ErrInvalidEngine, c.Markdown.Engine, EngineNative, EngineGoldmark)
	}

	if c.Build.Workers < 0 || c.Build.Workers > MaxWorkers {
		return fmt.Errorf("%w: build.workers %d (must be between 0 and %d)", ErrInvalidWorkers, c.Build.Workers, MaxWorkers)
	}

	if c.Markdown.Highlight != "" && !highlight.KnownStyle(c.Markdown.Highlight) {
		return fmt.Errorf("%w: markdown.highlight %q", ErrInvalidStyle, c.Markdown.Highlight)
	}

	if c.Output != "" && c.Static != "" && filepath.Clean(c.Output) == filepath.Clean(c.Static) {
		return fmt.Errorf("output: must differ from static (%s)", c.Output)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is found.
func DefaultConfig() *Config {
	return &Config{
		Content:  DefaultContentDir,
		Static:   DefaultStaticDir,
		Output:   DefaultOutputDir,
		Template: DefaultTemplate,
		Markdown: MarkdownConfig{Engine: EngineNative},
	}
}

// ApplyDefaults fills empty fields with DefaultConfig values and
// lower-cases the engine name.
func (c *Config) ApplyDefaults() {
	d := DefaultConfig()
	if c.Content == "" {
		c.Content = d.Content
	}
	if c.Static == "" {
		c.Static = d.Static
	}
	if c.Output == "" {
		c.Output = d.Output
	}
	if c.Template == "" {
		c.Template = d.Template
	}
	if c.Markdown.Engine == "" {
		c.Markdown.Engine = d.Markdown.Engine
	}
	c.Markdown.Engine = strings.ToLower(c.Markdown.Engine)
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
// Fields absent from the file take their default values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	return loadFile(configPath)
}

// LoadDefault loads md2site.yaml or md2site.yml from the working
// directory. Without either file it returns DefaultConfig and an empty path.
func LoadDefault() (cfg *Config, path string, err error) {
	for _, ext := range configExtensions {
		p := DefaultConfigName + ext
		if fileutil.FileExists(p) {
			cfg, err = loadFile(p)
			return cfg, p, err
		}
	}
	return DefaultConfig(), "", nil
}

func loadFile(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if len(strings.TrimSpace(string(data))) > 0 {
		if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
			return nil, fmt.Errorf("%w: %s: %s", ErrConfigParse, configPath, yamlutil.FormatError(err))
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()

	return &cfg, nil
}

// Marshal renders cfg as YAML, for writing a starter config file.
func Marshal(cfg *Config) ([]byte, error) {
	return yamlutil.Marshal(cfg)
}

var configExtensions = []string{".yaml", ".yml"}

// NotFoundError lists the locations searched for a named config.
type NotFoundError struct {
	Tried []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v: tried %s", ErrConfigNotFound, strings.Join(e.Tried, ", "))
}

func (e *NotFoundError) Unwrap() error {
	return ErrConfigNotFound
}

// UserConfigDir returns the md2site directory under the user config
// directory ($XDG_CONFIG_HOME or the platform equivalent).
func UserConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "md2site"), nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, the user config directory.
func resolveConfigPath(name string) (string, error) {
	triedPaths := make([]string, 0, len(configExtensions)*2)

	for _, ext := range configExtensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	if userDir, err := UserConfigDir(); err == nil {
		for _, ext := range configExtensions {
			userPath := filepath.Join(userDir, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", &NotFoundError{Tried: triedPaths}
}
