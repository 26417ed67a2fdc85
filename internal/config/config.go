package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Tools contains external binary locations.
type Tools struct {
	FFmpeg  string `toml:"ffmpeg"`
	FFprobe string `toml:"ffprobe"`
}

// Convert contains configuration for the audio codec conversion plugin.
type Convert struct {
	TargetCodec        string   `toml:"target_codec"`
	Encoder            string   `toml:"encoder"`
	SelectionMode      string   `toml:"selection_mode"`
	SelectedCodecs     []string `toml:"selected_codecs"`
	Advanced           bool     `toml:"advanced"`
	MainOptions        string   `toml:"main_options"`
	AdvancedOptions    string   `toml:"advanced_options"`
	CustomOptions      string   `toml:"custom_options"`
	MaxMuxingQueueSize int      `toml:"max_muxing_queue_size"`
}

// Extract contains configuration for the subtitle extraction plugin.
type Extract struct {
	// Languages is a comma-separated list of language tags to extract.
	// Empty means extract all ASS/SSA streams.
	Languages              string `toml:"languages"`
	IncludeTitleInFileName bool   `toml:"include_title_in_file_name"`
}

// Reorder contains configuration for the audio reorder plugin.
type Reorder struct {
	// SearchString is the language code moved to the first audio stream,
	// ignored when Radarr or Sonarr lookups yield an original language.
	SearchString string `toml:"search_string"`
}

// Radarr contains configuration for movie original-language lookups.
type Radarr struct {
	Enabled        bool   `toml:"enabled"`
	URL            string `toml:"url"`
	APIKey         string `toml:"api_key"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Sonarr contains configuration for series original-language lookups.
type Sonarr struct {
	Enabled        bool   `toml:"enabled"`
	URL            string `toml:"url"`
	APIKey         string `toml:"api_key"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// History contains configuration for the run-history store.
type History struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for streamplan.
type Config struct {
	Tools   Tools   `toml:"tools"`
	Convert Convert `toml:"convert"`
	Extract Extract `toml:"extract"`
	Reorder Reorder `toml:"reorder"`
	Radarr  Radarr  `toml:"radarr"`
	Sonarr  Sonarr  `toml:"sonarr"`
	History History `toml:"history"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/streamplan/config.toml")
}

// Sample returns the embedded sample configuration file contents.
func Sample() string {
	return sampleConfig
}

// CreateSample writes the embedded sample configuration to path.
func CreateSample(path string) error {
	return os.WriteFile(path, []byte(sampleConfig), 0o644)
}

// ExpandPath resolves a leading ~ against the user's home directory.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

// Load locates, parses, and validates a configuration file. The returned
// config has path fields expanded and defaults applied for omitted values.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("streamplan.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

func (c *Config) normalize() error {
	historyPath, err := expandPath(c.History.Path)
	if err != nil {
		return err
	}
	c.History.Path = historyPath

	c.Convert.TargetCodec = strings.ToLower(strings.TrimSpace(c.Convert.TargetCodec))
	c.Convert.Encoder = strings.TrimSpace(c.Convert.Encoder)
	c.Convert.SelectionMode = strings.ToLower(strings.TrimSpace(c.Convert.SelectionMode))
	for i, codec := range c.Convert.SelectedCodecs {
		c.Convert.SelectedCodecs[i] = strings.ToLower(strings.TrimSpace(codec))
	}
	c.Reorder.SearchString = strings.TrimSpace(c.Reorder.SearchString)
	c.Radarr.URL = strings.TrimRight(strings.TrimSpace(c.Radarr.URL), "/")
	c.Sonarr.URL = strings.TrimRight(strings.TrimSpace(c.Sonarr.URL), "/")
	return nil
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", nil
	}
	if trimmed == "~" || strings.HasPrefix(trimmed, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if trimmed == "~" {
			return home, nil
		}
		return filepath.Join(home, trimmed[2:]), nil
	}
	abs, err := filepath.Abs(trimmed)
	if err != nil {
		return "", fmt.Errorf("resolve path %q: %w", path, err)
	}
	return abs, nil
}
