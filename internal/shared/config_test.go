package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Server.Port != 8080 {
			t.Errorf("expected default port 8080, got %d", config.Server.Port)
		}
		if config.Client.APIURL != "http://localhost:8080" {
			t.Errorf("expected default api url, got %q", config.Client.APIURL)
		}
		if config.Client.StateFile != "tasks.json" {
			t.Errorf("expected default state file, got %q", config.Client.StateFile)
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		t.Run("parses a TOML file", func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			content := `
[client]
state_dir = "/tmp/tdx-test"
api_url = "http://tasks.example.com"

[server]
host = "0.0.0.0"
port = 9000
`
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}

			config, err := LoadConfig(path)
			if err != nil {
				t.Fatalf("failed to load config: %v", err)
			}

			if config.Server.Port != 9000 {
				t.Errorf("expected port 9000, got %d", config.Server.Port)
			}
			if config.Client.APIURL != "http://tasks.example.com" {
				t.Errorf("expected configured api url, got %q", config.Client.APIURL)
			}
		})

		t.Run("missing file", func(t *testing.T) {
			if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
				t.Error("expected error for missing file")
			}
		})

		t.Run("invalid TOML", func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			os.WriteFile(path, []byte("[broken"), 0644)

			if _, err := LoadConfig(path); err == nil {
				t.Error("expected error for invalid TOML")
			}
		})
	})

	t.Run("ApplyEnv", func(t *testing.T) {
		t.Run("overrides port and api url", func(t *testing.T) {
			t.Setenv(EnvPort, "9999")
			t.Setenv(EnvAPIURL, "http://override.example.com")

			config := DefaultConfig()
			config.ApplyEnv()

			if config.Server.Port != 9999 {
				t.Errorf("expected port 9999, got %d", config.Server.Port)
			}
			if config.Client.APIURL != "http://override.example.com" {
				t.Errorf("expected overridden api url, got %q", config.Client.APIURL)
			}
		})

		t.Run("ignores unparsable port", func(t *testing.T) {
			t.Setenv(EnvPort, "not-a-port")

			config := DefaultConfig()
			config.ApplyEnv()

			if config.Server.Port != 8080 {
				t.Errorf("expected default port kept, got %d", config.Server.Port)
			}
		})
	})

	t.Run("Paths", func(t *testing.T) {
		t.Run("StatePath honors state_dir", func(t *testing.T) {
			config := DefaultConfig()
			config.Client.StateDir = "/tmp/tdx-test"

			if got := config.StatePath(); got != "/tmp/tdx-test/tasks.json" {
				t.Errorf("unexpected state path %q", got)
			}
		})

		t.Run("JournalPath defaults beside the state file", func(t *testing.T) {
			config := DefaultConfig()
			config.Client.StateDir = "/tmp/tdx-test"

			if got := config.JournalPath(); got != "/tmp/tdx-test/sync.db" {
				t.Errorf("unexpected journal path %q", got)
			}
		})

		t.Run("Addr joins host and port", func(t *testing.T) {
			config := DefaultConfig()

			if got := config.Addr(); got != "127.0.0.1:8080" {
				t.Errorf("unexpected addr %q", got)
			}
		})
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		t.Run("writes the example config", func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")

			if err := CreateConfigFile(path); err != nil {
				t.Fatalf("failed to create config file: %v", err)
			}

			config, err := LoadConfig(path)
			if err != nil {
				t.Fatalf("created config is not loadable: %v", err)
			}
			if config.Server.Port != 8080 {
				t.Errorf("expected example defaults, got port %d", config.Server.Port)
			}
		})

		t.Run("refuses to overwrite", func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			os.WriteFile(path, []byte(""), 0644)

			if err := CreateConfigFile(path); err == nil {
				t.Error("expected error for existing file")
			}
		})
	})
}
