// Package config reads the settings of the mirpat command from .mirpat.yaml.
package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"

	"github.com/Masterminds/semver/v3"
	"github.com/coreos/pkg/capnslog"
	"github.com/ztrue/tracerr"
	"gopkg.in/yaml.v2"
)

const DefaultPath = ".mirpat.yaml"

type Config struct {
	LogLevel string `yaml:"log_level,omitempty"`
	// Patterns are globs naming the pattern files to use when none are given
	// on the command line.
	Patterns []string `yaml:"patterns,omitempty"`
	// StrictMeta rejects metavariables not declared by `meta!`. Unset means
	// true.
	StrictMeta *bool `yaml:"strict_meta,omitempty"`
	// Requires is a semantic version constraint on the grammar revision.
	Requires string `yaml:"requires,omitempty"`
}

func Default() *Config {
	return &Config{
		LogLevel: "NOTICE",
		Patterns: []string{"*.mir"},
	}
}

// Load reads the configuration at path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	return Parse(data)
}

// Parse decodes a configuration document, filling in defaults for the fields
// it leaves out.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, tracerr.Wrap(err)
	}
	if _, err := cfg.Level(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path.
func Save(path string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return tracerr.Wrap(err)
	}
	return tracerr.Wrap(ioutil.WriteFile(path, out, 0o644))
}

func (c *Config) Level() (capnslog.LogLevel, error) {
	level, err := capnslog.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, tracerr.Errorf("invalid log_level %q: %v", c.LogLevel, err)
	}
	return level, nil
}

func (c *Config) Strict() bool {
	return c.StrictMeta == nil || *c.StrictMeta
}

// CheckGrammar reports an error when version does not satisfy Requires.
func (c *Config) CheckGrammar(version *semver.Version) error {
	if c.Requires == "" {
		return nil
	}
	constraint, err := semver.NewConstraint(c.Requires)
	if err != nil {
		return tracerr.Errorf("invalid requires %q: %v", c.Requires, err)
	}
	if !constraint.Check(version) {
		return tracerr.Errorf("grammar %s does not satisfy requires %q", version, c.Requires)
	}
	return nil
}

// Files expands Patterns relative to dir. Each file is listed once, sorted.
func (c *Config) Files(dir string) ([]string, error) {
	seen := map[string]bool{}
	var ret []string
	for _, pattern := range c.Patterns {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, tracerr.Errorf("invalid pattern %q: %v", pattern, err)
		}
		for _, match := range matches {
			if !seen[match] {
				seen[match] = true
				ret = append(ret, match)
			}
		}
	}
	sort.Strings(ret)
	return ret, nil
}
