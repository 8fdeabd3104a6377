package usecase

import (
	"fmt"

	"catalog-srv/internal/catalog"
	"catalog-srv/internal/model"
	"catalog-srv/pkg/paginator"
)

// validateInput - Validate list input. All constraints must hold before any
// query runs; the first violation aborts the request.
func (uc *implUseCase) validateInput(input catalog.ListSwitchesInput) error {
	for _, v := range input.Types {
		if !model.SwitchType(v).Valid() {
			return fmt.Errorf("%w: switch type %q", catalog.ErrInvalidEnumValue, v)
		}
	}
	for _, v := range input.SoundProfiles {
		if !model.SoundProfile(v).Valid() {
			return fmt.Errorf("%w: sound profile %q", catalog.ErrInvalidEnumValue, v)
		}
	}
	for _, v := range input.Tactility {
		if !model.Tactility(v).Valid() {
			return fmt.Errorf("%w: tactility %q", catalog.ErrInvalidEnumValue, v)
		}
	}

	switch input.SortBy {
	case catalog.SortByName, catalog.SortByPrice, catalog.SortByForce,
		catalog.SortByRating, catalog.SortByNewest:
	default:
		return fmt.Errorf("%w: sort key %q", catalog.ErrInvalidEnumValue, input.SortBy)
	}

	if input.MinForce != nil && (*input.MinForce < catalog.MinForceBound || *input.MinForce > catalog.MaxForceBound) {
		return fmt.Errorf("%w: minForce %v", catalog.ErrInvalidRange, *input.MinForce)
	}
	if input.MaxForce != nil && (*input.MaxForce < catalog.MinForceBound || *input.MaxForce > catalog.MaxForceBound) {
		return fmt.Errorf("%w: maxForce %v", catalog.ErrInvalidRange, *input.MaxForce)
	}
	if input.MinPrice != nil && *input.MinPrice < 0 {
		return fmt.Errorf("%w: minPrice %v", catalog.ErrInvalidRange, *input.MinPrice)
	}
	if input.MaxPrice != nil && *input.MaxPrice < 0 {
		return fmt.Errorf("%w: maxPrice %v", catalog.ErrInvalidRange, *input.MaxPrice)
	}

	if input.Page < paginator.DefaultPage {
		return fmt.Errorf("%w: page %d", catalog.ErrInvalidRange, input.Page)
	}
	if input.Limit < 1 || input.Limit > paginator.MaxLimit {
		return fmt.Errorf("%w: limit %d", catalog.ErrInvalidRange, input.Limit)
	}

	return nil
}
