package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cyberbull/startupdocs/internal/engine"
)

// Config is the process configuration, loaded from a YAML file.
type Config struct {
	Port      int             `yaml:"port"`
	Engine    engine.Settings `yaml:"engine"`
	History   HistoryConfig   `yaml:"history"`
	Session   SessionConfig   `yaml:"session"`
	Templates TemplatesConfig `yaml:"templates,omitempty"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// HistoryConfig selects the session history backend. The default in-memory
// backend keeps history for the life of the process only; the sqlite
// backend keeps it on disk.
type HistoryConfig struct {
	Backend string `yaml:"backend"` // "memory" or "sqlite"
	Path    string `yaml:"path,omitempty"`
}

type SessionConfig struct {
	// TTL bounds how long an idle session is kept. Zero disables sweeping.
	TTL Duration `yaml:"ttl,omitempty"`
	// SweepEvery is the janitor cron spec.
	SweepEvery string `yaml:"sweep_every,omitempty"`
}

// Duration is a time.Duration that reads from YAML as either a duration
// string ("2h", "90s") or raw nanoseconds, and writes back as a string.
type Duration time.Duration

func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		*d = Duration(n)
		return nil
	}
	dur, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(dur)
	return nil
}

// TemplatesConfig points at an optional override file layered over the
// built-in template table.
type TemplatesConfig struct {
	Path string `yaml:"path,omitempty"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// GenerateTimeout bounds one model call.
const GenerateTimeout = 120 * time.Second

func DefaultConfig() *Config {
	return &Config{
		Port: 8790,
		Engine: engine.Settings{
			Provider: "openai",
			Mode:     string(engine.ModeDirect),
			APIKey:   os.Getenv("STARTUPDOCS_API_KEY"),
		},
		History: HistoryConfig{
			Backend: "memory",
			Path:    ".startupdocs/history.db",
		},
		Session: SessionConfig{
			TTL:        Duration(2 * time.Hour),
			SweepEvery: "@every 10m",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the config at path, falling back to defaults when the file
// does not exist. An empty path means defaults only.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to path.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
