// Package config provides YAML-based client configuration loading.
package config

// Config is the full client configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Connection ConnectionConfig `yaml:"connection"`
	Archive    ArchiveConfig    `yaml:"archive"`
	Log        LogConfig        `yaml:"log"`
	Strategy   string           `yaml:"strategy"`
}

// ServerConfig locates the game server.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	Path string `yaml:"path"`
}

// ConnectionConfig is the disconnect policy.
type ConnectionConfig struct {
	AutoReconnect     bool `yaml:"auto_reconnect"`
	Survive           bool `yaml:"survive"`
	ReconnectAttempts int  `yaml:"reconnect_attempts"`
	ReconnectDelayMS  int  `yaml:"reconnect_delay_ms"`
}

// ArchiveConfig controls game persistence. An empty path disables the
// archive.
type ArchiveConfig struct {
	Path string `yaml:"path"`
}

// LogConfig controls log output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}
