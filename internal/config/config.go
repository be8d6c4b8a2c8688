// Package config loads the settings of the logos command surfaces.
//
// Nothing here reaches the pipeline: every run stays a pure function of its
// input text. The config only shapes output format, servers and caches.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is looked up when no --config flag is given.
const DefaultPath = "logos.yaml"

// Cache backends.
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
	CacheFile   = "file"
)

// Output formats.
const (
	FormatJSON   = "json"
	FormatYAML   = "yaml"
	FormatText   = "text"
	FormatPretty = "pretty"
)

// Config is the root of logos.yaml.
type Config struct {
	LogLevel string       `mapstructure:"log_level" yaml:"log_level"`
	Format   string       `mapstructure:"format" yaml:"format"`
	Server   ServerConfig `mapstructure:"server" yaml:"server"`
	Cache    CacheConfig  `mapstructure:"cache" yaml:"cache"`
	Redis    RedisConfig  `mapstructure:"redis" yaml:"redis"`
	Stream   StreamConfig `mapstructure:"stream" yaml:"stream"`
}

// ServerConfig configures the HTTP and MCP SSE listeners.
type ServerConfig struct {
	Port         int  `mapstructure:"port" yaml:"port"`
	MaxInputSize int  `mapstructure:"max_input_size" yaml:"max_input_size"`
	Metrics      bool `mapstructure:"metrics" yaml:"metrics"`
}

// CacheConfig selects the result store used by servers.
type CacheConfig struct {
	Backend    string        `mapstructure:"backend" yaml:"backend"`
	TTL        time.Duration `mapstructure:"ttl" yaml:"ttl"`
	MaxEntries int           `mapstructure:"max_entries" yaml:"max_entries"`
	// Dir is the result directory of the file backend.
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// RedisConfig is used when Cache.Backend is "redis".
type RedisConfig struct {
	Addr     string `mapstructure:"addr" yaml:"addr"`
	Password string `mapstructure:"password" yaml:"password"`
	DB       int    `mapstructure:"db" yaml:"db"`
	Prefix   string `mapstructure:"prefix" yaml:"prefix"`
}

// StreamConfig configures the chunked file aligner.
type StreamConfig struct {
	ChunkSize int `mapstructure:"chunk_size" yaml:"chunk_size"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel: "info",
		Format:   FormatJSON,
		Server: ServerConfig{
			Port:         8080,
			MaxInputSize: 1 << 20,
			Metrics:      true,
		},
		Cache: CacheConfig{
			Backend:    CacheMemory,
			MaxEntries: 10000,
			Dir:        filepath.Join(".logos", "results"),
		},
		Redis: RedisConfig{
			Addr:   "localhost:6379",
			Prefix: "logos:result:",
		},
		Stream: StreamConfig{
			ChunkSize: 1024,
		},
	}
}

// Load reads a YAML (or JSON) config file and overlays it on Default.
// A missing file is not an error: the defaults are returned.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return Decode(raw)
}

// Decode overlays a generic map (from YAML, flags or MCP arguments) on Default.
// Unknown keys are rejected.
func Decode(raw map[string]any) (Config, error) {
	cfg := Default()

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return Config{}, fmt.Errorf("failed to build config decoder: %w", err)
	}

	if err := decoder.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerations and bounds.
func (c Config) Validate() error {
	switch c.Format {
	case FormatJSON, FormatYAML, FormatText, FormatPretty:
	default:
		return fmt.Errorf("invalid config: unknown format %q", c.Format)
	}

	switch c.Cache.Backend {
	case CacheNone, CacheMemory, CacheRedis, CacheFile:
	default:
		return fmt.Errorf("invalid config: unknown cache backend %q", c.Cache.Backend)
	}

	if c.Stream.ChunkSize <= 0 {
		return fmt.Errorf("invalid config: stream.chunk_size must be positive, got %d", c.Stream.ChunkSize)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid config: server.port out of range: %d", c.Server.Port)
	}
	return nil
}
