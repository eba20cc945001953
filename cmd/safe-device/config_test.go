package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "device.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func defaultTestConfig() Config {
	return Config{
		Image:          defaultImage,
		Size:           defaultSize,
		MasterPassword: "1111",
		LogLevel:       "info",
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
name: vault
image: /var/lib/safe/vault.img
size: 512
master_password: "2222"
event_log: /var/log/vault.elog
log_level: debug
sync: true
`)

	fc, err := loadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "vault", fc.Name)
	assert.Equal(t, "/var/lib/safe/vault.img", fc.Image)
	assert.Equal(t, 512, fc.Size)
	assert.Equal(t, "2222", fc.MasterPassword)
	assert.Equal(t, "/var/log/vault.elog", fc.EventLog)
	assert.Equal(t, "debug", fc.LogLevel)
	require.NotNil(t, fc.Sync)
	assert.True(t, *fc.Sync)
}

func TestLoadConfigFileErrors(t *testing.T) {
	_, err := loadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = loadConfigFile(writeConfig(t, "size: [1, 2"))
	assert.Error(t, err)
}

func TestMergeConfig(t *testing.T) {
	sync := true
	fc := &fileConfig{
		Name:           "vault",
		Size:           512,
		MasterPassword: "2222",
		LogLevel:       "debug",
		Sync:           &sync,
	}

	t.Run("file fills unset flags", func(t *testing.T) {
		cfg := defaultTestConfig()
		mergeConfig(&cfg, fc, map[string]bool{})

		assert.Equal(t, "vault", cfg.Name)
		assert.Equal(t, 512, cfg.Size)
		assert.Equal(t, "2222", cfg.MasterPassword)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.True(t, cfg.Sync)
		assert.Equal(t, defaultImage, cfg.Image, "empty file value keeps flag value")
	})

	t.Run("explicit flags win", func(t *testing.T) {
		cfg := defaultTestConfig()
		cfg.Size = 2048
		cfg.LogLevel = "warn"
		mergeConfig(&cfg, fc, map[string]bool{"size": true, "log-level": true, "sync": true})

		assert.Equal(t, 2048, cfg.Size)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.False(t, cfg.Sync)
		assert.Equal(t, "vault", cfg.Name)
	})
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"too small", func(c *Config) { c.Size = 1 }, "at least 2 bytes"},
		{"empty master", func(c *Config) { c.MasterPassword = "" }, "must not be empty"},
		{"bad level", func(c *Config) { c.LogLevel = "trace" }, "unknown log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultTestConfig()
			tt.modify(&cfg)

			err := validateConfig(&cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	applyDefaults(&cfg)
	assert.Equal(t, defaultImage, cfg.Image)
	assert.Equal(t, "safe", cfg.Name)

	cfg = Config{Name: "vault", Image: "v.img"}
	applyDefaults(&cfg)
	assert.Equal(t, "vault", cfg.Name)
	assert.Equal(t, "v.img", cfg.Image)
}
