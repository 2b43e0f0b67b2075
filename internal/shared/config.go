package shared

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

//go:embed config.example.toml
var exampleConf []byte

// Environment variable names recognized by [Config.ApplyEnv].
const (
	EnvPort     = "TDX_PORT"
	EnvAPIURL   = "TDX_API_URL"
	EnvStateDir = "TDX_STATE_DIR"
)

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Client   ClientConfig   `toml:"client"`
	Database DatabaseConfig `toml:"database"`
	Server   ServerConfig   `toml:"server"`
}

// ClientConfig contains local task store and sync client settings.
type ClientConfig struct {
	StateDir  string `toml:"state_dir"`
	APIURL    string `toml:"api_url"`
	StateFile string `toml:"state_file"`
}

// DatabaseConfig contains sync journal database settings.
type DatabaseConfig struct {
	Path         string `toml:"path"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	// Check if file already exists
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s: %w", path, err)
	}

	// Write the embedded example config to the file
	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// LoadEnv loads variables from a .env file in the working directory, if one exists.
//
// Missing files are not an error; the process environment always wins.
func LoadEnv() {
	_ = godotenv.Load()
}

// ApplyEnv overrides config values with recognized environment variables.
//
// TDX_PORT overrides the server listen port, TDX_API_URL the sync client base
// URL, and TDX_STATE_DIR the client state directory.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvPort); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
	if v := os.Getenv(EnvAPIURL); v != "" {
		c.Client.APIURL = v
	}
	if v := os.Getenv(EnvStateDir); v != "" {
		c.Client.StateDir = v
	}
}

// StatePath returns the absolute path to the JSON task state file.
//
// The state directory defaults to ~/.tdx when unset.
func (c *Config) StatePath() string {
	dir := c.Client.StateDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			dir = "."
		} else {
			dir = filepath.Join(home, ".tdx")
		}
	}

	name := c.Client.StateFile
	if name == "" {
		name = "tasks.json"
	}

	return filepath.Join(dir, name)
}

// JournalPath returns the absolute path to the sync journal database.
//
// Defaults to sync.db in the state directory when unset.
func (c *Config) JournalPath() string {
	if c.Database.Path != "" {
		return c.Database.Path
	}
	return filepath.Join(filepath.Dir(c.StatePath()), "sync.db")
}

// Addr returns the server listen address in host:port form.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
