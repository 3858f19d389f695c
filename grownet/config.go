// Copyright (c) 2024, The GrowNet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grownet

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileConfig is the document shape loaded by LoadConfigFile: a default
// SlotConfig and GrowthPolicy that callers can override from a single
// YAML file instead of hardcoding every tunable in Go.
type FileConfig struct {
	SlotConfig   SlotConfig   `yaml:"slot_config"`
	GrowthPolicy GrowthPolicy `yaml:"growth_policy"`
}

// DefaultFileConfig returns a FileConfig seeded from DefaultSlotConfig and
// DefaultGrowthPolicy, the values LoadConfigFile starts from before
// applying whatever the file overrides.
func DefaultFileConfig() FileConfig {
	return FileConfig{
		SlotConfig:   DefaultSlotConfig(),
		GrowthPolicy: DefaultGrowthPolicy(),
	}
}

// LoadConfigFile reads a YAML document at path and merges it over the
// defaults. A missing or empty field in the file keeps its default value,
// since yaml.Unmarshal only overwrites fields present in the document.
func LoadConfigFile(path string) (FileConfig, error) {
	cfg := DefaultFileConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("grownet: reading config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("grownet: parsing config %q: %w", path, err)
	}
	if err := cfg.SlotConfig.Validate(); err != nil {
		return cfg, fmt.Errorf("grownet: invalid slot_config in %q: %w", path, err)
	}
	return cfg, nil
}
