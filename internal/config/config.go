// Package config loads the service configuration from YAML and the
// environment.
package config

import (
	"net"
	"strconv"
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	CORS   CORSConfig   `yaml:"cors"`
	Log    LogConfig    `yaml:"log"`
	Batch  BatchConfig  `yaml:"batch"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// CORSConfig holds CORS settings. List values are comma-separated.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// BatchConfig tunes bulk decoding and slug passes.
type BatchConfig struct {
	// Workers is the number of concurrent chunks; 0 means GOMAXPROCS.
	Workers   int `yaml:"workers"    env:"BATCH_WORKERS"    env-default:"0"`
	ChunkSize int `yaml:"chunk_size" env:"BATCH_CHUNK_SIZE" env-default:"1024"`
	TopErrors int `yaml:"top_errors" env:"BATCH_TOP_ERRORS" env-default:"20"`
	// ErrorRateWarn is the fraction of codes with errors above which a
	// report is logged at warn level.
	ErrorRateWarn float64 `yaml:"error_rate_warn" env:"BATCH_ERROR_RATE_WARN" env-default:"0.01"`
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Origins returns the allowed origins as a list.
func (c CORSConfig) Origins() []string { return splitList(c.AllowedOrigins) }

// Methods returns the allowed methods as a list.
func (c CORSConfig) Methods() []string { return splitList(c.AllowedMethods) }

// Headers returns the allowed request headers as a list.
func (c CORSConfig) Headers() []string { return splitList(c.AllowedHeaders) }

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
