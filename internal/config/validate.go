package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateAPI(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateAPI() error {
	if c.API.BaseURL == "" {
		return errors.New("api.base_url must be set (or export BIASLAB_API_BASE)")
	}
	parsed, err := url.Parse(c.API.BaseURL)
	if err != nil {
		return fmt.Errorf("api.base_url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("api.base_url must use http or https, got %q", c.API.BaseURL)
	}
	if c.API.TimeoutSeconds <= 0 {
		return errors.New("api.timeout_seconds must be positive")
	}
	if c.API.ArticleLimit <= 0 {
		return errors.New("api.article_limit must be positive")
	}
	if c.API.HighlightLimit <= 0 {
		return errors.New("api.highlight_limit must be positive")
	}
	if c.API.NarrativeOrder != "asc" && c.API.NarrativeOrder != "desc" {
		return fmt.Errorf("api.narrative_order must be asc or desc, got %q", c.API.NarrativeOrder)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}
