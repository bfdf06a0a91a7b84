// Package config holds the run parameters of pimastat and reads them from a
// YAML file. Keys absent from the file keep their Default value.
package config

import (
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/YuminosukeSato/pimastat/dataset"
	"github.com/YuminosukeSato/pimastat/pkg/errors"
	"github.com/YuminosukeSato/pimastat/pkg/log"
	"github.com/YuminosukeSato/pimastat/selection"
	"gopkg.in/yaml.v3"
)

// Config is a complete set of run parameters.
type Config struct {
	// Name is the dataset name used in logs and reports.
	Name string `yaml:"name"`

	// URL is fetched unless File is set.
	URL string `yaml:"url"`

	// File is a local CSV read instead of URL.
	File string `yaml:"file,omitempty"`

	// CacheFile, when set, receives a copy of the fetched CSV.
	CacheFile string `yaml:"cache_file,omitempty"`

	Columns     []string      `yaml:"columns"`
	Target      string        `yaml:"target"`
	TestRatio   float64       `yaml:"test_ratio"`
	RandomState int64         `yaml:"random_state"`
	Timeout     time.Duration `yaml:"timeout"`
	LogLevel    string        `yaml:"log_level"`
}

// Default returns the parameters of the Pima Indians Diabetes workflow.
func Default() *Config {
	return &Config{
		Name:        "Pima Indian Diabetes Dataset",
		URL:         dataset.DefaultURL,
		Columns:     dataset.ColumnNames(),
		Target:      dataset.TargetColumn,
		TestRatio:   1.0 / 3,
		RandomState: selection.DefaultRandomState,
		Timeout:     dataset.DefaultTimeout,
		LogLevel:    "info",
	}
}

// Load reads a YAML file over Default and validates the result.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	return Parse(content)
}

// Parse decodes YAML over Default and validates the result.
func Parse(content []byte) (*Config, error) {
	c := Default()
	if err := yaml.Unmarshal(content, c); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks that the parameters describe a runnable workflow.
func (c *Config) Validate() error {
	if c.URL == "" && c.File == "" {
		return errors.NewValueError("config", "one of url or file is required")
	}
	if len(c.Columns) == 0 {
		return errors.NewValueError("config", "columns must not be empty")
	}
	if !slices.Contains(c.Columns, c.Target) {
		return errors.NewUnknownColumnError(c.Target, c.Columns)
	}
	if !(c.TestRatio > 0 && c.TestRatio <= 1) {
		return errors.NewInvalidRatioError(c.TestRatio)
	}
	if c.Timeout <= 0 {
		return errors.NewValueError("config", fmt.Sprintf("timeout must be positive, got %s", c.Timeout))
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Source returns the dataset source the config points at.
func (c *Config) Source() dataset.Source {
	if c.File != "" {
		return dataset.FileSource{Path: c.File}
	}
	return dataset.URLSource{URL: c.URL, Timeout: c.Timeout}
}

// LoadOptions returns the loader options implied by the config. The target
// column is always recoded to categorical labels.
func (c *Config) LoadOptions() []dataset.LoadOption {
	opts := []dataset.LoadOption{
		dataset.WithLabelRecoder(c.Target, dataset.DiabetesLabel),
	}
	if c.CacheFile != "" {
		opts = append(opts, dataset.WithCacheFile(c.CacheFile))
	}
	return opts
}

// Marshal encodes the config as YAML.
func (c *Config) Marshal() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, "encoding config")
	}
	return out, nil
}
