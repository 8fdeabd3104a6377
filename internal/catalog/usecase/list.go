package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"catalog-srv/internal/catalog"
	"catalog-srv/internal/catalog/repository"
	"catalog-srv/internal/model"
	"catalog-srv/pkg/paginator"

	"golang.org/x/sync/errgroup"
)

// ListSwitches - Main catalog query method
// Flow: validate → check results cache → fan out page/count/facet queries →
// fold ratings → assemble output → cache → return
func (uc *implUseCase) ListSwitches(ctx context.Context, input catalog.ListSwitchesInput) (catalog.ListSwitchesOutput, error) {
	// Step 0: Validate input
	if err := uc.validateInput(input); err != nil {
		return catalog.ListSwitchesOutput{}, err
	}

	pq := paginator.PaginateQuery{Page: input.Page, Limit: input.Limit}

	// Step 1: Check results cache
	var cacheKey string
	if uc.cfg.CacheEnabled && uc.cacheRepo != nil {
		cacheKey = uc.generateCacheKey(input)
		if data, err := uc.cacheRepo.GetListResults(ctx, cacheKey); err == nil {
			var cached catalog.ListSwitchesOutput
			if err := json.Unmarshal(data, &cached); err == nil {
				uc.l.Debugf(ctx, "catalog.usecase.ListSwitches: cache hit for key %s", cacheKey)
				return cached, nil
			}
		}
	}

	opt := repository.ListSwitchesOptions{
		Search:        input.Search,
		Brands:        input.Brands,
		Types:         input.Types,
		SoundProfiles: input.SoundProfiles,
		Tactility:     input.Tactility,
		MinForce:      input.MinForce,
		MaxForce:      input.MaxForce,
		MinPrice:      input.MinPrice,
		MaxPrice:      input.MaxPrice,
		AvailableOnly: input.AvailableOnly,
		SortBy:        input.SortBy,
		Limit:         pq.Limit,
		Offset:        pq.Offset(),
	}

	var (
		records []model.SwitchRecord
		total   int64
		brands  []string
	)

	g, gctx := errgroup.WithContext(ctx)

	// Task 1: Current page
	g.Go(func() error {
		res, err := uc.repo.ListSwitches(gctx, opt)
		if err != nil {
			return err
		}
		records = res
		return nil
	})

	// Task 2: Total count (same filter, no pagination)
	g.Go(func() error {
		count, err := uc.repo.CountSwitches(gctx, opt)
		if err != nil {
			return err
		}
		total = count
		return nil
	})

	// Task 3: Brand facet (whole catalog, independent of the filter)
	g.Go(func() error {
		res, err := uc.resolveBrandFacet(gctx)
		if err != nil {
			return err
		}
		brands = res
		return nil
	})

	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "catalog.usecase.ListSwitches: one or more queries failed: %v", err)
		return catalog.ListSwitchesOutput{}, fmt.Errorf("%w: %v", catalog.ErrQueryFailed, err)
	}

	// Step 2: Fold ratings into summaries
	switches := make([]catalog.SwitchSummary, 0, len(records))
	for _, rec := range records {
		switches = append(switches, toSummary(rec))
	}
	if brands == nil {
		brands = []string{}
	}

	output := catalog.ListSwitchesOutput{
		Switches: switches,
		Paginator: paginator.Paginator{
			Total:       total,
			Count:       int64(len(switches)),
			PerPage:     pq.Limit,
			CurrentPage: pq.Page,
		},
		Brands: brands,
	}

	// Step 3: Cache results. A save failure never fails the request.
	if uc.cfg.CacheEnabled && uc.cacheRepo != nil {
		if data, err := json.Marshal(output); err == nil {
			if err := uc.cacheRepo.SaveListResults(ctx, cacheKey, data); err != nil {
				uc.l.Warnf(ctx, "catalog.usecase.ListSwitches: failed to save cache: %v", err)
			}
		}
	}

	uc.l.Infof(ctx, "catalog.usecase.ListSwitches: page=%d, count=%d, total=%d",
		pq.Page, len(switches), total)

	return output, nil
}
