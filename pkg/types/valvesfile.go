// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// LoadToolConfig reads a YAML valves file and applies it over the
// defaults, so a partial file only overrides the keys it names. The
// operator edits this file between calls; nothing writes to it during a
// call.
func LoadToolConfig(path string) (ToolConfig, error) {
	cfg := DefaultToolConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading valves file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing valves file %s: %w", path, err)
	}

	if err := cfg.Arxiv.Validate(); err != nil {
		return cfg, fmt.Errorf("valves file %s: arxiv: %w", path, err)
	}
	if err := cfg.SemanticScholar.Validate(); err != nil {
		return cfg, fmt.Errorf("valves file %s: semantic_scholar: %w", path, err)
	}
	return cfg, nil
}

// WriteToolConfig saves the configuration as YAML, creating or
// truncating the file at path.
func WriteToolConfig(path string, cfg ToolConfig) error {
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("encoding valves: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing valves file: %w", err)
	}
	return nil
}
