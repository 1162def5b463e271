package gallery

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/lewtec/galeria/internal/domain"
)

// Storage backends
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

const defaultMaxUploadBytes = 10 << 20

type Config struct {
	Meta struct {
		Title       string `yaml:"title"`
		Description string `yaml:"description"`
	} `yaml:"meta"`
	Server  ConfigServer  `yaml:"server"`
	Storage ConfigStorage `yaml:"storage"`
	Upload  ConfigUpload  `yaml:"upload"`
	Log     ConfigLog     `yaml:"log"`
	// Seed fills an empty gallery with placeholder items. Defaults to true.
	Seed *bool `yaml:"seed"`
}

type ConfigServer struct {
	Addr string `yaml:"addr"`
}

type ConfigStorage struct {
	Backend  string `yaml:"backend"`
	Path     string `yaml:"path"`
	Key      string `yaml:"key"`
	RedisURL string `yaml:"redis_url"`
}

type ConfigUpload struct {
	MaxBytes int64 `yaml:"max_bytes"`
}

type ConfigLog struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// DefaultConfig returns the configuration used when no file is given
func DefaultConfig() *Config {
	var ret Config
	ret.applyDefaults()
	return &ret
}

// LoadConfig reads a YAML config file. Relative storage paths are resolved
// against the directory of the file.
func LoadConfig(filename string) (*Config, error) {
	var ret Config
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, &ret); err != nil {
		return nil, fmt.Errorf("while parsing config '%s': %w", filename, err)
	}
	ret.applyDefaults()
	if ret.Storage.Path != "" && ret.Storage.Path != ":memory:" && !filepath.IsAbs(ret.Storage.Path) {
		ret.Storage.Path = filepath.Join(filepath.Dir(filename), ret.Storage.Path)
	}
	if err := ret.Validate(); err != nil {
		return nil, err
	}
	return &ret, nil
}

func (c *Config) applyDefaults() {
	if c.Meta.Title == "" {
		c.Meta.Title = "Heritage Gallery"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = BackendSQLite
	}
	if c.Storage.Key == "" {
		c.Storage.Key = domain.DefaultSlotKey
	}
	if c.Storage.Path == "" {
		switch c.Storage.Backend {
		case BackendSQLite:
			c.Storage.Path = "gallery.db"
		case BackendFile:
			c.Storage.Path = "gallery.json"
		}
	}
	if c.Upload.MaxBytes <= 0 {
		c.Upload.MaxBytes = defaultMaxUploadBytes
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Seed == nil {
		seed := true
		c.Seed = &seed
	}
}

// Validate checks that the configuration can be used to open a gallery
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendSQLite, BackendFile:
		if c.Storage.Path == "" {
			return fmt.Errorf("storage backend %s needs a path", c.Storage.Backend)
		}
	case BackendRedis:
		if c.Storage.RedisURL == "" {
			return fmt.Errorf("storage backend redis needs redis_url")
		}
	case BackendMemory:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Storage.Backend)
	}
	return nil
}

// SeedEnabled reports whether an empty gallery gets placeholder items
func (c *Config) SeedEnabled() bool {
	return c.Seed == nil || *c.Seed
}
