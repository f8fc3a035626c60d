// Package config loads run settings from YAML and validates them before
// any input is read.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yech1990/chromwin/internal/genome"
	"github.com/yech1990/chromwin/internal/window"
)

type Config struct {
	WindowLength int      `yaml:"window_length"`
	Input        string   `yaml:"input"`
	OutputDir    string   `yaml:"output_dir"`
	Threshold    int      `yaml:"threshold"`
	Bases        string   `yaml:"bases"`
	Labels       []string `yaml:"labels"`
	Threads      int      `yaml:"threads"`
	FullCoverage bool     `yaml:"full_coverage"`
	Quiet        bool     `yaml:"quiet"`
	LogLevel     string   `yaml:"log_level"`
}

func Default() Config {
	labels := genome.DefaultLabels()
	names := make([]string, len(labels))
	for i, l := range labels {
		names[i] = string(l)
	}
	return Config{
		Input:     "output.txt",
		OutputDir: ".",
		Threshold: window.DefaultThreshold,
		Bases:     window.DefaultBases,
		Labels:    names,
		Threads:   1,
		LogLevel:  "info",
	}
}

// Load reads path over the defaults. Keys missing from the file keep their
// default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file '%s': %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file '%s': %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first setting the run cannot proceed with.
func (c Config) Validate() error {
	if err := window.ValidateLength(c.WindowLength); err != nil {
		return err
	}
	if c.Threshold < 0 {
		return &window.ConfigError{Field: "threshold", Value: c.Threshold, Reason: "must not be negative"}
	}
	if c.Threads < 1 {
		return &window.ConfigError{Field: "threads", Value: c.Threads, Reason: "must be at least 1"}
	}
	if c.Bases == "" {
		return &window.ConfigError{Field: "bases length", Value: 0, Reason: "valid base alphabet is empty"}
	}
	if _, err := c.LabelMatcher(); err != nil {
		return err
	}
	return nil
}

func (c Config) LabelMatcher() (*genome.LabelMatcher, error) {
	labels := make([]genome.Label, len(c.Labels))
	for i, l := range c.Labels {
		labels[i] = genome.Label(l)
	}
	return genome.NewLabelMatcher(labels)
}

func (c Config) Segmenter() *window.Segmenter {
	sg := window.NewSegmenter(window.NewScanner(c.Bases, c.Threshold))
	sg.CoverTail = c.FullCoverage
	return sg
}
