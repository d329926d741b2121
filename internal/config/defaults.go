package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultConfigYAML []byte

// Default returns the built-in configuration, used when no config file is
// found anywhere in the search path.
func Default() Config {
	cfg, err := parse(defaultConfigYAML, "embedded default")
	if err != nil {
		// The embedded document is compiled in; failing to parse it is a
		// programming error, not a runtime condition.
		panic(err)
	}
	return cfg
}
