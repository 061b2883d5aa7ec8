// Package config manages the configuration for cdxingest.
package config

import (
	"github.com/sbomkit/cdxingest/pkg/cdxingest"
)

var ConfigFileName = "cdxingest.toml"

type Config struct {
	// Debug turns on parse diagnostics. When unset, the CDXINGEST_DEBUG
	// environment variable decides.
	Debug *bool `toml:"Debug,omitempty"`
	// DuplicatePolicy is "overwrite" (the default) or "keep-first".
	DuplicatePolicy string `toml:"DuplicatePolicy,omitempty"`

	// The path to config file that this config was loaded from,
	// set after having successfully parsed the file
	LoadPath string `toml:"-"`
}

// ParserOptions converts the config into options for the parser. The logger
// is left for the caller to set.
func (c Config) ParserOptions() (cdxingest.Options, error) {
	policy, err := cdxingest.ParseDuplicatePolicy(c.DuplicatePolicy)
	if err != nil {
		return cdxingest.Options{}, err
	}

	debug := cdxingest.DebugFromEnv()
	if c.Debug != nil {
		debug = *c.Debug
	}

	return cdxingest.Options{
		Debug:           debug,
		DuplicatePolicy: policy,
	}, nil
}

func (c Config) validate() error {
	_, err := cdxingest.ParseDuplicatePolicy(c.DuplicatePolicy)

	return err
}
