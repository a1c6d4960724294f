package config

import (
	"fmt"
	"strings"
)

// Validate performs range checks on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in [0, 65535] (got %d)", c.Server.Port)
	}
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if err := c.Batch.validate(); err != nil {
		return fmt.Errorf("batch: %w", err)
	}
	return nil
}

func (l *LogConfig) validate() error {
	switch strings.ToLower(strings.TrimSpace(l.Format)) {
	case "json", "text":
	default:
		return fmt.Errorf("format must be json or text (got %q)", l.Format)
	}
	switch strings.ToLower(strings.TrimSpace(l.Level)) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("level must be debug, info, warn or error (got %q)", l.Level)
	}
	return nil
}

func (b *BatchConfig) validate() error {
	if b.Workers < 0 {
		return fmt.Errorf("workers must be >= 0 (got %d)", b.Workers)
	}
	if b.ChunkSize <= 0 {
		return fmt.Errorf("chunk_size must be > 0 (got %d)", b.ChunkSize)
	}
	if b.TopErrors < 0 {
		return fmt.Errorf("top_errors must be >= 0 (got %d)", b.TopErrors)
	}
	if b.ErrorRateWarn < 0 || b.ErrorRateWarn > 1 {
		return fmt.Errorf("error_rate_warn must be in [0, 1] (got %v)", b.ErrorRateWarn)
	}
	return nil
}
