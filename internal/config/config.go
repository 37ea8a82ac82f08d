package config

import (
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Source types accepted in the configuration file.
const (
	SourceRedis  = "redis"
	SourceStatic = "static"
	SourceMemory = "memory"
)

// Config is the application configuration. The order of the Sources list
// is the resolver's priority order: the first entry is consulted first.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Resolver ResolverConfig `yaml:"resolver"`
	Sources  []SourceConfig `yaml:"sources"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type ResolverConfig struct {
	QueryTimeout Duration `yaml:"query_timeout"`
	Fallthrough  bool     `yaml:"fallthrough"`
}

// SourceConfig describes one rule source. Options is deliberately loose in
// YAML and decoded per source type, so each adapter owns its own knobs.
type SourceConfig struct {
	Type    string         `yaml:"type"`
	Options map[string]any `yaml:"options"`
}

// RedisOptions are the options for a "redis" source entry.
type RedisOptions struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

// StaticOptions are the options for a "static" source entry.
type StaticOptions struct {
	Path string `mapstructure:"path"`
}

// Redis decodes the entry's options as RedisOptions.
func (s SourceConfig) Redis() (RedisOptions, error) {
	opts := RedisOptions{Addr: "localhost:6379"}
	if err := decodeOptions(s.Options, &opts); err != nil {
		return RedisOptions{}, fmt.Errorf("redis source options: %w", err)
	}
	return opts, nil
}

// Static decodes the entry's options as StaticOptions.
func (s SourceConfig) Static() (StaticOptions, error) {
	var opts StaticOptions
	if err := decodeOptions(s.Options, &opts); err != nil {
		return StaticOptions{}, fmt.Errorf("static source options: %w", err)
	}
	if opts.Path == "" {
		return StaticOptions{}, fmt.Errorf("static source options: path is required")
	}
	return opts, nil
}

func decodeOptions(raw map[string]any, result any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      result,
		ErrorUnused: true,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(raw)
}

// Default returns the configuration used when no file is present: a
// dynamic-first chain is assumed, so operators who want static-first (the
// other reading of the original guide) flip the list in their file.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Addr: ":8080"},
		Resolver: ResolverConfig{
			QueryTimeout: Duration(2 * time.Second),
		},
		Sources: []SourceConfig{
			{Type: SourceRedis},
		},
	}
}

// Load reads a YAML configuration file and applies defaults to anything
// left unset.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Resolver.QueryTimeout == 0 {
		c.Resolver.QueryTimeout = Duration(2 * time.Second)
	}
}

// Validate checks the source list for unknown types.
func (c *Config) Validate() error {
	if len(c.Sources) == 0 {
		return fmt.Errorf("at least one rule source must be configured")
	}
	for i, src := range c.Sources {
		switch src.Type {
		case SourceRedis, SourceStatic, SourceMemory:
		default:
			return fmt.Errorf("source %d: unknown type %q", i, src.Type)
		}
	}
	return nil
}

// Duration wraps time.Duration so values like "500ms" or "2s" parse
// directly from YAML.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}
