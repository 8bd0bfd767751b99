package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"

	"toc-generator/internal/domain/model"
)

// Config contains runtime configuration values.
type Config struct {
	SourceRoot   string `yaml:"source_root"`
	OutputPath   string `yaml:"output_path"`
	TemplatePath string `yaml:"template_path"`
	// PreviewPath enables an HTML rendering of the document when set.
	PreviewPath string `yaml:"preview_path"`

	BaseURL         string `yaml:"base_url"`
	Extension       string `yaml:"extension"`
	ProblemSiteName string `yaml:"problem_site_name"`
	ProblemSiteURL  string `yaml:"problem_site_url"`

	// SuffixOffset is the number of characters skipped before the numeric part of a file name.
	SuffixOffset int `yaml:"suffix_offset"`
	// StrictLabels turns an unmapped category into a fatal error.
	StrictLabels bool           `yaml:"strict_labels"`
	Labels       model.LabelMap `yaml:"labels"`

	// Schedule is a cron spec; empty means generate once and exit.
	Schedule string `yaml:"schedule"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

const (
	// DefaultConfigFile is read from the working directory when no path is given.
	DefaultConfigFile = "toc.yaml"

	defaultTemplatePath    = "template.md"
	defaultBaseURL         = "https://github.com/Tony-Hu/ShuaTi-Online.Judge.Problems.Solving/tree/master/src/main/java"
	defaultExtension       = ".java"
	defaultProblemSiteName = "LintCode"
	defaultProblemSiteURL  = "https://www.lintcode.com/problem/"
	defaultSuffixOffset    = 8
	defaultLogLevel        = "info"
	defaultLogFormat       = "auto"
)

var (
	validLogLevels  = []string{"debug", "info", "warn", "warning", "error"}
	validLogFormats = []string{"auto", "json", "text"}
)

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	paths := PlatformPaths(runtime.GOOS)
	return &Config{
		SourceRoot:      paths.SourceRoot,
		OutputPath:      paths.OutputPath,
		TemplatePath:    defaultTemplatePath,
		BaseURL:         defaultBaseURL,
		Extension:       defaultExtension,
		ProblemSiteName: defaultProblemSiteName,
		ProblemSiteURL:  defaultProblemSiteURL,
		SuffixOffset:    defaultSuffixOffset,
		Labels:          model.DefaultLabels(),
		LogLevel:        defaultLogLevel,
		LogFormat:       defaultLogFormat,
	}
}

// Load builds a Config from defaults, the YAML file at path and environment variables.
// An empty path falls back to DefaultConfigFile if it exists.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			path = DefaultConfigFile
		}
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	// yaml.v3 merges into a non-nil map; a labels section replaces the defaults instead.
	defaults := c.Labels
	c.Labels = nil
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	if c.Labels == nil {
		c.Labels = defaults
	}
	return nil
}

func (c *Config) applyEnv() {
	c.SourceRoot = getenvDefault("TOC_SOURCE_ROOT", c.SourceRoot)
	c.OutputPath = getenvDefault("TOC_OUTPUT_PATH", c.OutputPath)
	c.TemplatePath = getenvDefault("TOC_TEMPLATE_PATH", c.TemplatePath)
	c.PreviewPath = getenvDefault("TOC_PREVIEW_PATH", c.PreviewPath)
	c.BaseURL = getenvDefault("TOC_BASE_URL", c.BaseURL)
	c.Extension = getenvDefault("TOC_EXTENSION", c.Extension)
	c.SuffixOffset = parseIntDefault("TOC_SUFFIX_OFFSET", c.SuffixOffset)
	c.StrictLabels = parseBoolDefault("TOC_STRICT_LABELS", c.StrictLabels)
	c.Schedule = getenvDefault("TOC_SCHEDULE", c.Schedule)
	c.LogLevel = getenvDefault("TOC_LOG_LEVEL", c.LogLevel)
	c.LogFormat = getenvDefault("TOC_LOG_FORMAT", c.LogFormat)
}

// Validate normalises and checks the configuration before any file is touched.
func (c *Config) Validate() error {
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.Extension != "" && !strings.HasPrefix(c.Extension, ".") {
		c.Extension = "." + c.Extension
	}

	var errs []error
	if c.SourceRoot == "" {
		errs = append(errs, errors.New("source root is required"))
	}
	if c.OutputPath == "" {
		errs = append(errs, errors.New("output path is required"))
	}
	if c.TemplatePath == "" {
		errs = append(errs, errors.New("template path is required"))
	}
	if c.Extension == "" {
		errs = append(errs, errors.New("source extension is required"))
	}
	if c.SuffixOffset < 0 {
		errs = append(errs, fmt.Errorf("suffix offset must not be negative, got %d", c.SuffixOffset))
	}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		errs = append(errs, fmt.Errorf("unknown log level %q", c.LogLevel))
	}
	if !contains(validLogFormats, c.LogFormat) {
		errs = append(errs, fmt.Errorf("unknown log format %q", c.LogFormat))
	}
	if c.Schedule != "" {
		if _, err := cron.ParseStandard(c.Schedule); err != nil {
			errs = append(errs, fmt.Errorf("invalid schedule %q: %w", c.Schedule, err))
		}
	}
	if c.Labels == nil {
		c.Labels = model.LabelMap{}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

func getenvDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseIntDefault(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}

func parseBoolDefault(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return fallback
}
