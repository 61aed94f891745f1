// Package configs provides embedded default configuration files.
package configs

import _ "embed"

// Embedded configuration files for the `chatmsg config` command.

// DefaultConfigBytes holds the presets of config.DefaultConfig.
//
//go:embed config.yml
var DefaultConfigBytes []byte

// MinimalConfigBytes holds a single preset.
//
//go:embed config-minimal.yml
var MinimalConfigBytes []byte
