package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"catalog-srv/internal/catalog/repository"

	goredis "github.com/redis/go-redis/v9"
)

const brandFacetKey = "catalog:brands"

// =====================================================
// Brand facet cache
// =====================================================

func (r *implCacheRepository) GetBrandFacet(ctx context.Context) ([]string, error) {
	data, err := r.redis.Get(ctx, brandFacetKey)
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, repository.ErrCacheMiss
		}
		return nil, fmt.Errorf("GetBrandFacet: %w", err)
	}

	var brands []string
	if err := json.Unmarshal([]byte(data), &brands); err != nil {
		r.l.Errorf(ctx, "catalog.repository.redis.GetBrandFacet: failed to unmarshal brands: %v", err)
		return nil, fmt.Errorf("GetBrandFacet: %w", err)
	}
	return brands, nil
}

func (r *implCacheRepository) SaveBrandFacet(ctx context.Context, brands []string) error {
	data, err := json.Marshal(brands)
	if err != nil {
		return fmt.Errorf("SaveBrandFacet: %w", err)
	}
	if err := r.redis.Set(ctx, brandFacetKey, data, r.cfg.FacetTTL); err != nil {
		r.l.Errorf(ctx, "catalog.repository.redis.SaveBrandFacet: failed to save to cache: %v", err)
		return fmt.Errorf("SaveBrandFacet: %w", err)
	}
	return nil
}

// =====================================================
// List results cache
// =====================================================

func (r *implCacheRepository) GetListResults(ctx context.Context, cacheKey string) ([]byte, error) {
	data, err := r.redis.Get(ctx, cacheKey)
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, repository.ErrCacheMiss
		}
		return nil, fmt.Errorf("GetListResults: %w", err)
	}
	return []byte(data), nil
}

func (r *implCacheRepository) SaveListResults(ctx context.Context, cacheKey string, data []byte) error {
	if err := r.redis.Set(ctx, cacheKey, data, r.cfg.ResultTTL); err != nil {
		r.l.Errorf(ctx, "catalog.repository.redis.SaveListResults: failed to save to cache: %v", err)
		return fmt.Errorf("SaveListResults: %w", err)
	}
	return nil
}
