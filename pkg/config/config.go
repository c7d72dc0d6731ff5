// Package config resolves server settings from defaults, an optional YAML
// file, and environment variables. Command-line flags are applied on top by
// the caller.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultMaxExpressionLength is the longest expression the servers accept.
const DefaultMaxExpressionLength = 400

// Config holds the settings for `arith serve`.
type Config struct {
	Host                string `yaml:"host"`
	Port                int    `yaml:"port"`
	GRPCPort            int    `yaml:"grpcPort"`
	MaxExpressionLength int    `yaml:"maxExpressionLength"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Host:                "0.0.0.0",
		Port:                8787,
		GRPCPort:            8788,
		MaxExpressionLength: DefaultMaxExpressionLength,
	}
}

// Load returns the defaults overlaid with the YAML file at path (if path is
// not empty) and then with HOST, PORT, GRPC_PORT and MAX_EXPRESSION_LENGTH.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.Host = envOrDefault("HOST", cfg.Host)

	var err error
	if cfg.Port, err = envInt("PORT", cfg.Port); err != nil {
		return cfg, err
	}
	if cfg.GRPCPort, err = envInt("GRPC_PORT", cfg.GRPCPort); err != nil {
		return cfg, err
	}
	if cfg.MaxExpressionLength, err = envInt("MAX_EXPRESSION_LENGTH", cfg.MaxExpressionLength); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

// Validate checks that ports and limits are usable.
func (c Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.GRPCPort < 0 || c.GRPCPort > 65535 {
		return fmt.Errorf("invalid grpc port %d", c.GRPCPort)
	}
	if c.MaxExpressionLength <= 0 {
		return fmt.Errorf("maxExpressionLength must be positive, got %d", c.MaxExpressionLength)
	}
	return nil
}

// HTTPAddr returns host:port for the REST server.
func (c Config) HTTPAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// GRPCAddr returns host:port for the gRPC server.
func (c Config) GRPCAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.GRPCPort)
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}
