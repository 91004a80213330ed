package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// runConfig holds optional run settings loaded from a --config YAML
// file, decoded with yaml.v3 the way davidkellis-able's interpreter
// module decodes its own run manifests.
type runConfig struct {
	// IndentWidth is the spaces-per-level figure printed in the
	// --dump-tokens header; it does not change the lexer's fixed
	// two-space indent rule or the lexer's error messages.
	IndentWidth int `yaml:"indent_width"`
	// WarningsFatal makes a return statement outside any method body
	// abort the run with an error; when unset, such a return is silently
	// ignored.
	WarningsFatal bool `yaml:"warnings_fatal"`
}

func defaultConfig() runConfig {
	return runConfig{IndentWidth: 2}
}

func loadConfig(path string) (runConfig, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
