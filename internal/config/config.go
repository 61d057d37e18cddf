package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults applied when neither the config file nor the environment sets a value
const (
	DefaultTranscriptsDir         = "./transcripts"
	DefaultYtDlpBinary            = "yt-dlp"
	DefaultMetadataTimeoutSeconds = 30
	DefaultCaptionTimeoutSeconds  = 45
	DefaultPageSize               = 50
)

// Environment variable overrides
const (
	EnvTranscriptsDir = "MCP_YOUTUBE_TRANSCRIPTS_DIR"
	EnvYtDlpBinary    = "MCP_YOUTUBE_YTDLP"
)

// Config holds all configuration for the application
type Config struct {
	TranscriptsDir         string `yaml:"transcripts_dir"`
	YtDlpBinary            string `yaml:"ytdlp_binary"`
	MetadataTimeoutSeconds int    `yaml:"metadata_timeout_seconds"`
	CaptionTimeoutSeconds  int    `yaml:"caption_timeout_seconds"`
	PageSize               int    `yaml:"page_size"` // listing page size
}

// MetadataTimeout returns the bound for the yt-dlp metadata invocation
func (c *Config) MetadataTimeout() time.Duration {
	return time.Duration(c.MetadataTimeoutSeconds) * time.Second
}

// CaptionTimeout returns the bound for the yt-dlp caption invocation
func (c *Config) CaptionTimeout() time.Duration {
	return time.Duration(c.CaptionTimeoutSeconds) * time.Second
}

// NewConfig loads configuration with the following priority:
// Environment variables > Config file > Defaults. A missing config file is
// not an error; defaults apply.
func NewConfig() (*Config, error) {
	config := &Config{}
	if err := loadConfigFile(config); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	// Apply environment variables (can override config file)
	if dir := os.Getenv(EnvTranscriptsDir); dir != "" {
		config.TranscriptsDir = dir
	}
	if binary := os.Getenv(EnvYtDlpBinary); binary != "" {
		config.YtDlpBinary = binary
	}

	config.applyDefaults()
	return config, nil
}

// InitConfig creates a new configuration file populated with the defaults
func InitConfig() error {
	configDir, err := getConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath, err := getConfigFilePath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("configuration file already exists: %s", configPath)
	}

	yamlContent := fmt.Sprintf(`# mcp-youtube configuration file
# Environment overrides: %s, %s

transcripts_dir: "%s"
ytdlp_binary: "%s"
metadata_timeout_seconds: %d
caption_timeout_seconds: %d
page_size: %d
`, EnvTranscriptsDir, EnvYtDlpBinary,
		DefaultTranscriptsDir, DefaultYtDlpBinary,
		DefaultMetadataTimeoutSeconds, DefaultCaptionTimeoutSeconds, DefaultPageSize)

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetConfigPath returns the path to the configuration file
func GetConfigPath() (string, error) {
	return getConfigFilePath()
}

func (c *Config) applyDefaults() {
	if c.TranscriptsDir == "" {
		c.TranscriptsDir = DefaultTranscriptsDir
	}
	if c.YtDlpBinary == "" {
		c.YtDlpBinary = DefaultYtDlpBinary
	}
	if c.MetadataTimeoutSeconds <= 0 {
		c.MetadataTimeoutSeconds = DefaultMetadataTimeoutSeconds
	}
	if c.CaptionTimeoutSeconds <= 0 {
		c.CaptionTimeoutSeconds = DefaultCaptionTimeoutSeconds
	}
	if c.PageSize <= 0 {
		c.PageSize = DefaultPageSize
	}
}

// getConfigDir returns the configuration directory path (~/.mcp-youtube)
func getConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".mcp-youtube"), nil
}

// getConfigFilePath returns the full path to the config file
func getConfigFilePath() (string, error) {
	configDir, err := getConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.yaml"), nil
}

// loadConfigFile loads configuration from ~/.mcp-youtube/config.yaml
func loadConfigFile(config *Config) error {
	configPath, err := getConfigFilePath()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}
