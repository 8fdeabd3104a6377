package repository

import (
	"context"

	"catalog-srv/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	// ListSwitches returns one page of switch records matching the options,
	// hydrated with ratings and counts.
	ListSwitches(ctx context.Context, opt ListSwitchesOptions) ([]model.SwitchRecord, error)

	// CountSwitches returns the total number of records matching the options,
	// ignoring pagination.
	CountSwitches(ctx context.Context, opt ListSwitchesOptions) (int64, error)

	// DistinctBrands returns the sorted distinct brand values across the
	// whole catalog, ignoring any filter.
	DistinctBrands(ctx context.Context) ([]string, error)
}

//go:generate mockery --name CacheRepository
type CacheRepository interface {
	GetBrandFacet(ctx context.Context) ([]string, error)
	SaveBrandFacet(ctx context.Context, brands []string) error

	GetListResults(ctx context.Context, cacheKey string) ([]byte, error)
	SaveListResults(ctx context.Context, cacheKey string, data []byte) error
}
