package config

import (
	_ "embed"
)

//go:embed defaults/client.yaml
var defaultClientYAML []byte

// Default returns the hardcoded fallback configuration, used when even
// the embedded YAML cannot be parsed.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host: "localhost",
			Port: 13050,
			Path: "/",
		},
		Connection: ConnectionConfig{
			AutoReconnect:     false,
			Survive:           false,
			ReconnectAttempts: 3,
			ReconnectDelayMS:  1000,
		},
		Archive: ArchiveConfig{
			Path: "~/.icefloe/games.db",
		},
		Log: LogConfig{
			Level: "info",
		},
		Strategy: "greedy",
	}
}
