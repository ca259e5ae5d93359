package lookup

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/go-viper/mapstructure/v2"
)

// Built-in cache type names.
const (
	TypeGuavaCache = "guava_cache"
	TypeNullCache  = "none"
)

// GuavaCacheConfig holds the settings of the node-local in-memory cache.
// Zero expiry durations disable expiry.
type GuavaCacheConfig struct {
	Type                  string `mapstructure:"type"`
	MaxSize               int64  `mapstructure:"max_size"`
	ExpireAfterAccess     int64  `mapstructure:"expire_after_access"`
	ExpireAfterAccessUnit string `mapstructure:"expire_after_access_unit"`
	ExpireAfterWrite      int64  `mapstructure:"expire_after_write"`
	ExpireAfterWriteUnit  string `mapstructure:"expire_after_write_unit"`
}

// DecodeGuavaCacheConfig decodes cfg, accepting numbers given as strings.
func DecodeGuavaCacheConfig(cfg CacheConfig) (GuavaCacheConfig, error) {
	var out GuavaCacheConfig
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return out, err
	}
	if err := dec.Decode(map[string]any(cfg)); err != nil {
		return out, err
	}
	if out.MaxSize < 0 {
		return out, fmt.Errorf("max_size must not be negative, got %d", out.MaxSize)
	}
	return out, nil
}

// GuavaCacheSummary summarizes a guava_cache config.
func GuavaCacheSummary(cfg CacheConfig) ([]SummaryLine, error) {
	c, err := DecodeGuavaCacheConfig(cfg)
	if err != nil {
		return nil, err
	}

	access, err := FormatExpiry(c.ExpireAfterAccess, c.ExpireAfterAccessUnit)
	if err != nil {
		return nil, fmt.Errorf("expire_after_access: %w", err)
	}
	write, err := FormatExpiry(c.ExpireAfterWrite, c.ExpireAfterWriteUnit)
	if err != nil {
		return nil, fmt.Errorf("expire_after_write: %w", err)
	}

	return []SummaryLine{
		{Label: "Maximum entries", Value: humanize.Comma(c.MaxSize)},
		{Label: "Expire after access", Value: access},
		{Label: "Expire after write", Value: write},
	}, nil
}

var timeUnits = map[string]string{
	"NANOSECONDS":  "nanosecond",
	"MICROSECONDS": "microsecond",
	"MILLISECONDS": "millisecond",
	"SECONDS":      "second",
	"MINUTES":      "minute",
	"HOURS":        "hour",
	"DAYS":         "day",
}

// FormatExpiry renders an expiry duration such as "60 seconds".
// Zero or negative amounts mean the entry never expires.
func FormatExpiry(amount int64, unit string) (string, error) {
	if amount <= 0 {
		return "Never", nil
	}
	singular, ok := timeUnits[strings.ToUpper(unit)]
	if !ok {
		return "", fmt.Errorf("unknown time unit %q", unit)
	}
	if amount == 1 {
		return "1 " + singular, nil
	}
	return humanize.Comma(amount) + " " + singular + "s", nil
}
