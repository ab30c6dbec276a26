package config

import (
	"fmt"
	"net/url"
	"strings"
)

var casVersions = map[string]bool{"1": true, "2": true, "3": true}

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required")
	}
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0")
	}
	if c.Auth.CookieEnabled && c.Auth.CookieName == "" {
		return fmt.Errorf("auth.cookie_name is required when cookies are enabled")
	}

	if err := c.CAS.validate(); err != nil {
		return fmt.Errorf("cas: %w", err)
	}

	switch strings.ToLower(c.Storage.Backend) {
	case "os", "memory":
	default:
		return fmt.Errorf("storage.backend must be one of os, memory (got %q)", c.Storage.Backend)
	}

	if c.Records.MaxAttachmentBytes <= 0 {
		return fmt.Errorf("records.max_attachment_bytes must be > 0 (got %d)", c.Records.MaxAttachmentBytes)
	}
	if c.Records.QueuePageSize <= 0 {
		return fmt.Errorf("records.queue_page_size must be > 0 (got %d)", c.Records.QueuePageSize)
	}

	if c.Scheduler.Enabled && strings.TrimSpace(c.Scheduler.PurgeLinksSpec) == "" {
		return fmt.Errorf("scheduler.purge_links_spec is required when the scheduler is enabled")
	}

	return nil
}

func (c *CASConfig) validate() error {
	u, err := url.Parse(c.ServerURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("server_url must be an absolute URL (got %q)", c.ServerURL)
	}
	c.ServerURL = strings.TrimRight(c.ServerURL, "/")

	if !casVersions[c.Version] {
		return fmt.Errorf("version must be one of 1, 2, 3 (got %q)", c.Version)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0")
	}

	if c.ServiceBaseURL != "" {
		su, err := url.Parse(c.ServiceBaseURL)
		if err != nil || su.Scheme == "" || su.Host == "" {
			return fmt.Errorf("service_base_url must be an absolute URL (got %q)", c.ServiceBaseURL)
		}
	}

	if c.RedirectURL == "" {
		c.RedirectURL = "/"
	}

	return nil
}
