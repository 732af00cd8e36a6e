package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tailscale/hujson"

	"github.com/katalvlaran/relaypad/relay"
)

// config is the optional HuJSON (JSON with comments and trailing commas)
// config file. Absent fields leave the corresponding option untouched.
type config struct {
	Shallow *int `json:"shallow,omitempty"`
	Deep    *int `json:"deep,omitempty"`
	Workers *int `json:"workers,omitempty"`
}

// loadConfig reads and parses the config file at path.
func loadConfig(path string) (config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the user's own flag
	if err != nil {
		return config{}, fmt.Errorf("cannot read config file: %w", err)
	}

	standardized, err := hujson.Standardize(data)
	if err != nil {
		return config{}, fmt.Errorf("invalid HuJSON in %s: %w", path, err)
	}

	var cfg config
	if err := json.Unmarshal(standardized, &cfg); err != nil {
		return config{}, fmt.Errorf("invalid config in %s: %w", path, err)
	}

	return cfg, nil
}

// apply copies the set fields onto opts.
func (c config) apply(opts *relay.Options) {
	if c.Shallow != nil {
		opts.ShallowDepth = *c.Shallow
	}
	if c.Deep != nil {
		opts.DeepDepth = *c.Deep
	}
	if c.Workers != nil {
		opts.Workers = *c.Workers
	}
}
