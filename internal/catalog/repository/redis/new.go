package redis

import (
	"time"

	"catalog-srv/internal/catalog/repository"
	"catalog-srv/pkg/log"
	pkgRedis "catalog-srv/pkg/redis"
)

// Config tunes cache entry lifetimes.
type Config struct {
	ResultTTL time.Duration // list result entries
	FacetTTL  time.Duration // brand facet entry
}

// DefaultConfig returns the default cache lifetimes.
func DefaultConfig() Config {
	return Config{
		ResultTTL: 5 * time.Minute,
		FacetTTL:  10 * time.Minute,
	}
}

type implCacheRepository struct {
	l     log.Logger
	redis pkgRedis.IRedis
	cfg   Config
}

// New - Factory
func New(l log.Logger, redis pkgRedis.IRedis, cfg Config) repository.CacheRepository {
	if cfg.ResultTTL <= 0 {
		cfg.ResultTTL = DefaultConfig().ResultTTL
	}
	if cfg.FacetTTL <= 0 {
		cfg.FacetTTL = DefaultConfig().FacetTTL
	}
	return &implCacheRepository{l: l, redis: redis, cfg: cfg}
}
