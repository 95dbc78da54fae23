package config

import (
	"fmt"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.RequestsPerMinute <= 0 {
			return fmt.Errorf("rate_limit.requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute)
		}
		if c.RateLimit.SubmissionsPerMinute <= 0 {
			return fmt.Errorf("rate_limit.submissions_per_minute must be > 0 (got %d)", c.RateLimit.SubmissionsPerMinute)
		}
	}

	if err := c.Poem.validate(); err != nil {
		return fmt.Errorf("poem: %w", err)
	}

	return nil
}

func (p *PoemConfig) validate() error {
	if p.DailyCap < 1 {
		return fmt.Errorf("daily_cap must be >= 1 (got %d)", p.DailyCap)
	}
	if p.PageSize < 1 {
		return fmt.Errorf("page_size must be >= 1 (got %d)", p.PageSize)
	}
	if p.MaxStanzaLength < 1 {
		return fmt.Errorf("max_stanza_length must be >= 1 (got %d)", p.MaxStanzaLength)
	}
	if p.LastDefault < 1 {
		return fmt.Errorf("last_default must be >= 1 (got %d)", p.LastDefault)
	}
	if p.LastMax < p.LastDefault {
		return fmt.Errorf("last_max must be >= last_default (got %d < %d)", p.LastMax, p.LastDefault)
	}

	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return fmt.Errorf("timezone %q: %w", p.Timezone, err)
	}
	p.Location = loc

	return nil
}
