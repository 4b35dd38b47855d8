package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig represents the single-file configuration schema. Nested
// sections mirror the flag groups.
type FileConfig struct {
	Input  string `yaml:"input" json:"input"`
	Output string `yaml:"output" json:"output"`

	Extract struct {
		Attributes []string `yaml:"attributes" json:"attributes"`
		NestedTags []string `yaml:"nestedTags" json:"nestedTags"`
		Selectors  []string `yaml:"selectors" json:"selectors"`
		Separator  string   `yaml:"separator" json:"separator"`
	} `yaml:"extract" json:"extract"`

	Encoding string `yaml:"encoding" json:"encoding"`
	DryRun   bool   `yaml:"dryRun" json:"dryRun"`
	Verbose  bool   `yaml:"verbose" json:"verbose"`
	LogFile  string `yaml:"logFile" json:"logFile"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for any fields
// that are currently unset or still at their flag default. Flags should
// already have been parsed; this lets file config supply defaults while
// preserving explicit flags.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if cfg.InputPath == "" && fc.Input != "" {
		cfg.InputPath = fc.Input
	}
	if cfg.OutputDir == "" && fc.Output != "" {
		cfg.OutputDir = fc.Output
	}
	if equalList(cfg.Attributes, DefaultAttributes) && len(fc.Extract.Attributes) > 0 {
		cfg.Attributes = append([]string{}, fc.Extract.Attributes...)
	}
	if equalList(cfg.NestedTags, DefaultNestedTags) && len(fc.Extract.NestedTags) > 0 {
		cfg.NestedTags = append([]string{}, fc.Extract.NestedTags...)
	}
	if equalList(cfg.HeaderSelectors, DefaultHeaderSelectors) && len(fc.Extract.Selectors) > 0 {
		cfg.HeaderSelectors = append([]string{}, fc.Extract.Selectors...)
	}
	if cfg.Separator == DefaultSeparator && fc.Extract.Separator != "" {
		cfg.Separator = fc.Extract.Separator
	}
	if cfg.Encoding == "" && fc.Encoding != "" {
		cfg.Encoding = fc.Encoding
	}
	if !cfg.DryRun && fc.DryRun {
		cfg.DryRun = true
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
	if cfg.LogFile == "" && fc.LogFile != "" {
		cfg.LogFile = fc.LogFile
	}
}

// ValidateConfig performs minimal schema validation for required settings.
func ValidateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.InputPath) == "" {
		return errors.New("config: input path is required")
	}
	if strings.TrimSpace(cfg.OutputDir) == "" {
		return errors.New("config: output directory is required")
	}
	return nil
}

func equalList(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
