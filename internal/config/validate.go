package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateConvert(); err != nil {
		return err
	}
	if err := c.validateLookup("radarr", c.Radarr.Enabled, c.Radarr.URL, c.Radarr.APIKey, c.Radarr.TimeoutSeconds); err != nil {
		return err
	}
	if err := c.validateLookup("sonarr", c.Sonarr.Enabled, c.Sonarr.URL, c.Sonarr.APIKey, c.Sonarr.TimeoutSeconds); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateConvert() error {
	switch c.Convert.SelectionMode {
	case SelectionModeAll, SelectionModeSelected:
	default:
		return fmt.Errorf("convert.selection_mode must be %q or %q, got %q", SelectionModeAll, SelectionModeSelected, c.Convert.SelectionMode)
	}
	if c.Convert.SelectionMode == SelectionModeSelected && len(c.Convert.SelectedCodecs) == 0 {
		return errors.New("convert.selected_codecs must not be empty in selected mode")
	}
	if c.Convert.TargetCodec == "" {
		return errors.New("convert.target_codec must be set")
	}
	if c.Convert.Encoder == "" {
		return errors.New("convert.encoder must be set")
	}
	if size := c.Convert.MaxMuxingQueueSize; size < 0 || (size > 0 && (size < 1024 || size > 10240)) {
		return fmt.Errorf("convert.max_muxing_queue_size must be between 1024 and 10240, got %d", size)
	}
	return nil
}

func (c *Config) validateLookup(name string, enabled bool, url, apiKey string, timeout int) error {
	if !enabled {
		return nil
	}
	if !strings.HasPrefix(url, "http") {
		return fmt.Errorf("%s.url must start with 'http', got %q", name, url)
	}
	if strings.TrimSpace(apiKey) == "" {
		return fmt.Errorf("%s.api_key is required when %s.enabled is true", name, name)
	}
	if timeout <= 0 {
		return fmt.Errorf("%s.timeout_seconds must be positive, got %d", name, timeout)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "", "console", "json":
		return nil
	default:
		return fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", c.Logging.Format)
	}
}
