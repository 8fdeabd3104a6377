package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"

	"catalog-srv/internal/catalog"
	"catalog-srv/internal/catalog/repository"
)

// generateCacheKey - Cache key for one fully-validated list query. Two inputs
// with the same filters, sort and page hash to the same key.
func (uc *implUseCase) generateCacheKey(input catalog.ListSwitchesInput) string {
	raw, _ := json.Marshal(input)
	hash := sha256.Sum256(raw)
	return fmt.Sprintf("catalog:switches:%x", hash)
}

// resolveBrandFacet - Distinct brands with cache-aside. The facet covers the
// whole catalog so one cached copy serves every query.
func (uc *implUseCase) resolveBrandFacet(ctx context.Context) ([]string, error) {
	if uc.cfg.CacheEnabled && uc.cacheRepo != nil {
		brands, err := uc.cacheRepo.GetBrandFacet(ctx)
		if err == nil {
			uc.l.Debugf(ctx, "catalog.usecase.resolveBrandFacet: cache hit, %d brands", len(brands))
			return brands, nil
		}
		if !errors.Is(err, repository.ErrCacheMiss) {
			uc.l.Warnf(ctx, "catalog.usecase.resolveBrandFacet: cache read failed: %v", err)
		}
	}

	brands, err := uc.repo.DistinctBrands(ctx)
	if err != nil {
		return nil, err
	}

	if uc.cfg.CacheEnabled && uc.cacheRepo != nil {
		if err := uc.cacheRepo.SaveBrandFacet(ctx, brands); err != nil {
			uc.l.Warnf(ctx, "catalog.usecase.resolveBrandFacet: cache save failed: %v", err)
		}
	}

	return brands, nil
}
