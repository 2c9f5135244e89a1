package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ssargent/usnjournal/pkg/usn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, "C:", config.Volume)
	assert.Equal(t, 65536, config.BufferSize)
	assert.Equal(t, []string{"all"}, config.Read.Reasons)
	assert.False(t, config.Read.ReturnOnlyOnClose)
	assert.Zero(t, config.Read.Timeout)
	assert.Zero(t, config.Read.BytesToWaitFor)
	assert.Equal(t, "info", config.Logging.Level)
	assert.Equal(t, "text", config.Logging.Format)
	assert.NoError(t, config.Validate())
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "missing volume", mutate: func(c *Config) { c.Volume = "" }, wantErr: "volume is required"},
		{name: "tiny buffer", mutate: func(c *Config) { c.BufferSize = 7 }, wantErr: "buffer_size must be at least 8"},
		{name: "negative timeout", mutate: func(c *Config) { c.Read.Timeout = -time.Second }, wantErr: "read.timeout"},
		{name: "unknown reason", mutate: func(c *Config) { c.Read.Reasons = []string{"nope"} }, wantErr: "read.reasons"},
		{name: "bad log format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: "logging.format"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			config := DefaultConfig()
			tc.mutate(config)

			err := config.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestReasonMask(t *testing.T) {
	config := DefaultConfig()
	mask, err := config.ReasonMask()
	require.NoError(t, err)
	assert.Equal(t, usn.ReasonAll, mask)

	config.Read.Reasons = []string{"file-create", "file-delete"}
	mask, err = config.ReasonMask()
	require.NoError(t, err)
	assert.Equal(t, usn.ReasonFileCreate|usn.ReasonFileDelete, mask)
}

func TestRead_ApplyTo(t *testing.T) {
	base := usn.NewReadRequest(usn.DescriptorV0{JournalData: usn.JournalData{JournalID: 9, FirstUSN: 10}})

	read := Read{
		ReturnOnlyOnClose: true,
		Timeout:           2 * time.Second,
		BytesToWaitFor:    1024,
	}

	got := read.ApplyTo(base, usn.ReasonClose)
	assert.Equal(t, usn.ReasonClose, got.ReasonMask)
	assert.Equal(t, uint32(1), got.ReturnOnlyOnClose)
	assert.Equal(t, uint64(20_000_000), got.Timeout)
	assert.Equal(t, uint64(1024), got.BytesToWaitFor)
	assert.Equal(t, base.StartUSN, got.StartUSN)
	assert.Equal(t, base.JournalID, got.JournalID)
}

func TestLoadConfig(t *testing.T) {
	t.Run("load existing config", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.yaml")

		expectedConfig := &Config{
			Volume:     "D:",
			BufferSize: 4096,
			Read: Read{
				Reasons:           []string{"file-create", "close"},
				ReturnOnlyOnClose: true,
				Timeout:           5 * time.Second,
				BytesToWaitFor:    512,
			},
			Logging: Logging{
				Level:  "debug",
				Format: "json",
			},
		}

		err := SaveConfig(expectedConfig, configPath)
		require.NoError(t, err)

		loadedConfig, err := LoadConfig(configPath)
		require.NoError(t, err)
		assert.Equal(t, expectedConfig, loadedConfig)
	})

	t.Run("missing fields keep defaults", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte("volume: \"E:\"\n"), 0600))

		loadedConfig, err := LoadConfig(configPath)
		require.NoError(t, err)
		assert.Equal(t, "E:", loadedConfig.Volume)
		assert.Equal(t, 65536, loadedConfig.BufferSize)
		assert.Equal(t, "info", loadedConfig.Logging.Level)
	})

	t.Run("unquoted drive letter", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte("volume: E:\n"), 0600))

		_, err := LoadConfig(configPath)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})

	t.Run("load non-existent config", func(t *testing.T) {
		_, err := LoadConfig("/non/existent/config.yaml")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "config file does not exist")
	})

	t.Run("load invalid yaml", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "invalid.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte("volume: [unclosed"), 0600))

		_, err := LoadConfig(configPath)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})
}

func TestSaveConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "dir", "config.yaml")

	config := DefaultConfig()
	err := SaveConfig(config, configPath)
	require.NoError(t, err)

	info, err := os.Stat(configPath)
	require.NoError(t, err)
	if os.PathSeparator == '/' {
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	}

	loadedConfig, err := LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, config, loadedConfig)
}

func TestGetDefaultConfigPath(t *testing.T) {
	path := GetDefaultConfigPath()
	assert.NotEmpty(t, path)
	assert.Contains(t, path, "usnjournal")
}

func TestConfigExists(t *testing.T) {
	tmpDir := t.TempDir()

	existingPath := filepath.Join(tmpDir, "exists.yaml")
	nonExistentPath := filepath.Join(tmpDir, "does-not-exist.yaml")

	err := os.WriteFile(existingPath, []byte("test"), 0644)
	require.NoError(t, err)

	assert.True(t, ConfigExists(existingPath))
	assert.False(t, ConfigExists(nonExistentPath))
}

func TestConfigYAMLMarshalling(t *testing.T) {
	config := &Config{
		Volume:     `\\.\C:`,
		BufferSize: 1 << 20,
		Read: Read{
			Reasons: []string{"rename-new-name"},
			Timeout: 250 * time.Millisecond,
		},
		Logging: Logging{
			Level:  "warn",
			Format: "text",
		},
	}

	data, err := yaml.Marshal(config)
	require.NoError(t, err)
	assert.Contains(t, string(data), "timeout: 250ms")

	var unmarshalled Config
	err = yaml.Unmarshal(data, &unmarshalled)
	require.NoError(t, err)

	assert.Equal(t, config, &unmarshalled)
}

func TestSaveConfigErrorHandling(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("root can create directories anywhere")
	}

	config := DefaultConfig()
	invalidPath := "/invalid/path/that/cannot/be/created/config.yaml"

	err := SaveConfig(config, invalidPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create config directory")
}
