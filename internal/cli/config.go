package cli

import (
	"errors"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/tilestitch/internal/server"
	"github.com/matzehuels/tilestitch/pkg/cache"
	tserr "github.com/matzehuels/tilestitch/pkg/errors"
	"github.com/matzehuels/tilestitch/pkg/pipeline"
	"github.com/matzehuels/tilestitch/pkg/render"
)

// Config is the on-disk configuration.
//
//	[cache]
//	backend = "redis"
//	[cache.redis]
//	addr = "localhost:6379"
//
//	[render]
//	formats = ["png", "svg"]
//	scale = 8
//
//	[server]
//	addr = ":8080"
type Config struct {
	Cache  CacheConfig  `toml:"cache"`
	Render RenderConfig `toml:"render"`
	Server ServerConfig `toml:"server"`
}

// CacheConfig selects the solution cache backend.
type CacheConfig struct {
	Backend string      `toml:"backend"` // file (default), redis, mongo, none
	Dir     string      `toml:"dir"`
	Redis   RedisConfig `toml:"redis"`
	Mongo   MongoConfig `toml:"mongo"`

	// Namespace scopes every key, so several setups can share one backend.
	Namespace string `toml:"namespace"`
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Prefix   string `toml:"prefix"`
}

type MongoConfig struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// RenderConfig holds render defaults.
type RenderConfig struct {
	Formats []string `toml:"formats"`
	Scale   int      `toml:"scale"`
}

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	Addr         string `toml:"addr"`
	MaxBodyBytes int64  `toml:"max_body_bytes"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Cache:  CacheConfig{Backend: cache.BackendFile},
		Render: RenderConfig{Formats: []string{pipeline.DefaultFormat}, Scale: pipeline.DefaultScale},
		Server: ServerConfig{Addr: server.DefaultAddr, MaxBodyBytes: server.DefaultMaxBodyBytes},
	}
}

// LoadConfig reads the config file at path over the defaults. An empty path
// means the default location, which may be absent; an explicit path must
// exist.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	explicit := path != ""
	if !explicit {
		p, err := configFile()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, tserr.Wrap(tserr.ErrCodeFileNotFound, err, "config file %s not found", path)
		}
		return cfg, tserr.Wrap(tserr.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, tserr.New(tserr.ErrCodeInvalidConfig, "unknown config key %q in %s", undecoded[0].String(), path)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	for _, f := range c.Render.Formats {
		if !render.ValidFormat(f) {
			return tserr.New(tserr.ErrCodeInvalidConfig, "render.formats: unknown format %q", f)
		}
	}
	if err := pipeline.ValidateScale(c.Render.Scale); err != nil {
		return tserr.Wrap(tserr.ErrCodeInvalidConfig, err, "render.scale")
	}
	if ns := c.Cache.Namespace; ns != "" {
		if err := tserr.ValidateCacheKey(ns); err != nil {
			return tserr.Wrap(tserr.ErrCodeInvalidConfig, err, "cache.namespace")
		}
	}
	if c.Server.MaxBodyBytes <= 0 {
		return tserr.New(tserr.ErrCodeInvalidConfig, "server.max_body_bytes must be positive")
	}
	return nil
}

// keyer returns the cache keyer for the configured namespace.
func (c CacheConfig) keyer() cache.Keyer {
	if c.Namespace == "" {
		return cache.NewDefaultKeyer()
	}
	return cache.NewScopedKeyer(cache.NewDefaultKeyer(), c.Namespace+":")
}

// cacheConfig converts the file settings to [cache.Config], filling in the
// XDG cache directory for the file backend.
func (c CacheConfig) cacheConfig() (cache.Config, error) {
	cfg := cache.Config{
		Backend: c.Backend,
		Dir:     c.Dir,
		Redis: cache.RedisOptions{
			Addr:     c.Redis.Addr,
			Password: c.Redis.Password,
			DB:       c.Redis.DB,
			Prefix:   c.Redis.Prefix,
		},
		Mongo: cache.MongoOptions{
			URI:        c.Mongo.URI,
			Database:   c.Mongo.Database,
			Collection: c.Mongo.Collection,
		},
	}
	if (cfg.Backend == "" || cfg.Backend == cache.BackendFile) && cfg.Dir == "" {
		dir, err := cacheDir()
		if err != nil {
			return cfg, err
		}
		cfg.Dir = dir
	}
	return cfg, nil
}

// writeConfig encodes cfg as TOML at path.
func writeConfig(path string, cfg Config) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
