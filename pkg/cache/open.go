package cache

import (
	"context"

	tserr "github.com/matzehuels/tilestitch/pkg/errors"
)

// Backend names accepted by [Open].
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendMongo = "mongo"
	BackendNone  = "none"
)

// Config selects and configures a cache backend.
type Config struct {
	Backend string
	// Dir is the FileCache directory.
	Dir   string
	Redis RedisOptions
	Mongo MongoOptions
}

// Open creates the backend named by cfg.Backend. An empty backend means
// [BackendFile].
func Open(ctx context.Context, cfg Config) (Cache, error) {
	switch cfg.Backend {
	case "", BackendFile:
		if cfg.Dir == "" {
			return nil, tserr.New(tserr.ErrCodeInvalidConfig, "file cache needs a directory")
		}
		c, err := NewFileCache(cfg.Dir)
		if err != nil {
			return nil, err
		}
		return c, nil
	case BackendRedis:
		if cfg.Redis.Addr == "" {
			return nil, tserr.New(tserr.ErrCodeInvalidConfig, "redis cache needs an address")
		}
		c, err := NewRedisCache(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		return c, nil
	case BackendMongo:
		if cfg.Mongo.URI == "" {
			return nil, tserr.New(tserr.ErrCodeInvalidConfig, "mongo cache needs a URI")
		}
		c, err := NewMongoCache(ctx, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		return c, nil
	case BackendNone:
		return NewNullCache(), nil
	}
	return nil, tserr.New(tserr.ErrCodeInvalidConfig, "unknown cache backend %q", cfg.Backend)
}
