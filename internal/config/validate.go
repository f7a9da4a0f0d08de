package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be in [%d, %d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if err := c.Ledger.validate(); err != nil {
		return fmt.Errorf("ledger: %w", err)
	}

	if err := c.RateLimit.validate(); err != nil {
		return fmt.Errorf("rate_limit: %w", err)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	return nil
}

func (r *RateLimitConfig) validate() error {
	if r.AuthPerMinute <= 0 {
		return fmt.Errorf("auth_per_minute must be > 0 (got %d)", r.AuthPerMinute)
	}
	if r.DonationPerMinute <= 0 {
		return fmt.Errorf("donation_per_minute must be > 0 (got %d)", r.DonationPerMinute)
	}
	if r.CleanupInterval <= 0 {
		return fmt.Errorf("cleanup_interval must be > 0 (got %s)", r.CleanupInterval)
	}
	return nil
}

func (l *LedgerConfig) validate() error {
	if _, err := ParseMinAmount(l.MinAmountRaw); err != nil {
		return fmt.Errorf("min_amount: %w", err)
	}
	if _, err := time.LoadLocation(l.Timezone); err != nil {
		return fmt.Errorf("timezone: %w", err)
	}

	if l.StatsMonths <= 0 {
		return fmt.Errorf("stats_months must be > 0 (got %d)", l.StatsMonths)
	}
	if l.TopFilms <= 0 {
		return fmt.Errorf("top_films must be > 0 (got %d)", l.TopFilms)
	}
	if l.RecentLimit < 0 {
		return fmt.Errorf("recent_limit must be >= 0 (got %d)", l.RecentLimit)
	}
	if l.ListLimit <= 0 || l.ListLimit > l.MaxListLimit {
		return fmt.Errorf("list_limit must be in (0, max_list_limit] (got %d)", l.ListLimit)
	}
	return nil
}

// ParseMinAmount parses the smallest accepted donation. It must be positive
// with at most two decimal places.
func ParseMinAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Decimal{}, fmt.Errorf("empty value")
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid decimal %q: %w", raw, err)
	}
	if !d.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("must be positive (got %s)", raw)
	}
	if !d.Equal(d.Truncate(2)) {
		return decimal.Decimal{}, fmt.Errorf("at most 2 decimal places (got %s)", raw)
	}
	return d, nil
}
