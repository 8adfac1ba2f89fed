// Package config reads the optional phpsanity configuration file.
// Without a configuration file, phpsanity walks the app directory for .php files.
package config

import (
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"regexp"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const (
	DefaultRoot      = "app"
	DefaultExtension = ".php"
)

type Config struct {
	Root        string        `json:"root,omitempty" jsonschema:"description=A directory searched recursively when no file is passed. The default is app"`
	Extension   string        `json:"extension,omitempty" jsonschema:"description=A file name suffix of target files. The default is .php"`
	IgnoreFiles []*IgnoreFile `json:"ignore_files,omitempty" yaml:"ignore_files" jsonschema:"description=Files excluded from the directory search. If files are passed via positional command line arguments, this is ignored"`
}

// SetDefault fills empty fields with default values.
func (c *Config) SetDefault() {
	if c.Root == "" {
		c.Root = DefaultRoot
	}
	if c.Extension == "" {
		c.Extension = DefaultExtension
	}
}

// Ignored reports whether a file found by the directory search is excluded.
func (c *Config) Ignored(filePath string) (bool, error) {
	for _, f := range c.IgnoreFiles {
		matched, err := f.Match(filePath)
		if err != nil {
			return false, err
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}

const (
	formatFixedString = "fixed_string"
	formatGlob        = "glob"
	formatRegexp      = "regexp"
)

type IgnoreFile struct {
	Pattern       string `json:"pattern" jsonschema:"description=A pattern matched against a slash separated file path"`
	PatternFormat string `json:"pattern_format" yaml:"pattern_format" jsonschema:"enum=fixed_string,enum=glob,enum=regexp"`
	patternRegexp *regexp.Regexp
}

func (f *IgnoreFile) Init() error {
	if f.Pattern == "" {
		return errors.New("pattern is required")
	}
	if f.PatternFormat == "" {
		return errors.New("pattern_format is required")
	}
	var err error
	f.patternRegexp, err = initFormat(f.Pattern, f.PatternFormat)
	return err
}

func (f *IgnoreFile) Match(filePath string) (bool, error) {
	return match(filepath.ToSlash(filePath), f.Pattern, f.PatternFormat, f.patternRegexp)
}

func initFormat(value, format string) (*regexp.Regexp, error) {
	switch format {
	case formatFixedString:
		return nil, nil //nolint:nilnil
	case formatGlob:
		if _, err := path.Match(value, "a"); err != nil {
			return nil, fmt.Errorf("parse as a glob: %w", err)
		}
		return nil, nil //nolint:nilnil
	case formatRegexp:
		r, err := regexp.Compile(value)
		if err != nil {
			return nil, fmt.Errorf("compile as a regular expression: %w", err)
		}
		return r, nil
	default:
		return nil, errors.New("pattern_format must be fixed_string, glob, or regexp")
	}
}

func match(value, pattern, format string, r *regexp.Regexp) (bool, error) {
	switch format {
	case formatFixedString:
		return value == pattern, nil
	case formatGlob:
		f, err := path.Match(pattern, value)
		if err != nil {
			return false, fmt.Errorf("match as a glob: %w", err)
		}
		return f, nil
	case formatRegexp:
		if r == nil {
			return false, errors.New("regular expression isn't initialized")
		}
		return r.MatchString(value), nil
	default:
		return false, errors.New("unexpected format: " + format)
	}
}

func getConfigPath(fs afero.Fs) (string, error) {
	for _, p := range []string{".phpsanity.yaml", ".phpsanity.yml", ".github/phpsanity.yaml", ".github/phpsanity.yml"} {
		f, err := afero.Exists(fs, p)
		if err != nil {
			return "", fmt.Errorf("check if %s exists: %w", p, err)
		}
		if f {
			return p, nil
		}
	}
	return "", nil
}

type Finder struct {
	fs afero.Fs
}

func NewFinder(fs afero.Fs) *Finder {
	return &Finder{fs: fs}
}

// Find returns configFilePath if it isn't empty.
// Otherwise it looks for a configuration file in the working directory.
// It returns an empty string if no file is found.
func (f *Finder) Find(configFilePath string) (string, error) {
	if configFilePath != "" {
		return configFilePath, nil
	}
	return getConfigPath(f.fs)
}

type Reader struct {
	fs afero.Fs
}

func NewReader(fs afero.Fs) *Reader {
	return &Reader{fs: fs}
}

// Read decodes a configuration file into cfg and sets default values.
// If configFilePath is empty, only default values are set.
func (r *Reader) Read(cfg *Config, configFilePath string) error {
	if configFilePath != "" {
		if err := r.decode(cfg, configFilePath); err != nil {
			return err
		}
	}
	cfg.SetDefault()
	return nil
}

func (r *Reader) decode(cfg *Config, configFilePath string) error {
	f, err := r.fs.Open(configFilePath)
	if err != nil {
		return fmt.Errorf("open a configuration file: %w", err)
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode a configuration file as YAML: %w", err)
	}
	for _, file := range cfg.IgnoreFiles {
		if err := file.Init(); err != nil {
			return fmt.Errorf("initialize ignore_files: %w", err)
		}
	}
	return nil
}
