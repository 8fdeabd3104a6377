package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"catalog-srv/internal/catalog"
	"catalog-srv/internal/catalog/repository"
	"catalog-srv/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	mu sync.Mutex

	records []model.SwitchRecord
	total   int64
	brands  []string

	listErr   error
	countErr  error
	brandsErr error

	gotListOpt  *repository.ListSwitchesOptions
	gotCountOpt *repository.ListSwitchesOptions
}

func (f *fakeRepository) ListSwitches(_ context.Context, opt repository.ListSwitchesOptions) ([]model.SwitchRecord, error) {
	f.mu.Lock()
	f.gotListOpt = &opt
	f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.records, nil
}

func (f *fakeRepository) CountSwitches(_ context.Context, opt repository.ListSwitchesOptions) (int64, error) {
	f.mu.Lock()
	f.gotCountOpt = &opt
	f.mu.Unlock()
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.total, nil
}

func (f *fakeRepository) DistinctBrands(_ context.Context) ([]string, error) {
	if f.brandsErr != nil {
		return nil, f.brandsErr
	}
	return f.brands, nil
}

type fakeCacheRepository struct {
	mu sync.Mutex

	facet       []string
	facetSaved  []string
	listData    map[string][]byte
	listSaved   int
	facetReads  int
	facetHit    bool
	listReadErr error
}

func (f *fakeCacheRepository) GetBrandFacet(context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.facetReads++
	if !f.facetHit {
		return nil, repository.ErrCacheMiss
	}
	return f.facet, nil
}

func (f *fakeCacheRepository) SaveBrandFacet(_ context.Context, brands []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.facetSaved = brands
	return nil
}

func (f *fakeCacheRepository) GetListResults(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listReadErr != nil {
		return nil, f.listReadErr
	}
	data, ok := f.listData[key]
	if !ok {
		return nil, repository.ErrCacheMiss
	}
	return data, nil
}

func (f *fakeCacheRepository) SaveListResults(_ context.Context, key string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listData == nil {
		f.listData = make(map[string][]byte)
	}
	f.listData[key] = data
	f.listSaved++
	return nil
}

func sampleRecord(id, name string, ratings []int) model.SwitchRecord {
	return model.SwitchRecord{
		Switch: model.Switch{
			ID:           id,
			Name:         name,
			Brand:        "Gateron",
			Type:         model.SwitchTypeLinear,
			Actuation:    2.0,
			Force:        50,
			Travel:       4.0,
			SoundProfile: model.SoundProfileCreamy,
			Tactility:    model.TactilityNone,
			Availability: true,
		},
		Ratings:     ratings,
		ReviewCount: int64(len(ratings)),
	}
}

func TestListSwitches(t *testing.T) {
	ctx := context.Background()

	t.Run("assembles page, pagination and facet", func(t *testing.T) {
		repo := &fakeRepository{
			records: []model.SwitchRecord{
				sampleRecord("sw-1", "Oil King", []int{4, 5}),
				sampleRecord("sw-2", "Ink Black", nil),
			},
			total:  3,
			brands: []string{"Drop", "Gateron"},
		}
		uc := newTestUseCase(t, repo, nil, Config{})

		input := validInput()
		input.Limit = 2

		out, err := uc.ListSwitches(ctx, input)
		require.NoError(t, err)

		require.Len(t, out.Switches, 2)
		assert.Equal(t, 4.5, out.Switches[0].AverageRating)
		assert.Equal(t, float64(0), out.Switches[1].AverageRating)

		assert.EqualValues(t, 3, out.Paginator.Total)
		assert.EqualValues(t, 2, out.Paginator.Count)
		assert.EqualValues(t, 2, out.Paginator.PerPage)
		assert.Equal(t, 1, out.Paginator.CurrentPage)
		assert.Equal(t, 2, out.Paginator.TotalPages())

		assert.Equal(t, []string{"Drop", "Gateron"}, out.Brands)
	})

	t.Run("passes filters and pagination to the repository", func(t *testing.T) {
		repo := &fakeRepository{}
		uc := newTestUseCase(t, repo, nil, Config{})

		input := validInput()
		input.Search = "panda"
		input.Brands = []string{"Drop"}
		input.MinForce = f64(45)
		input.AvailableOnly = true
		input.SortBy = catalog.SortByPrice
		input.Page = 3
		input.Limit = 10

		_, err := uc.ListSwitches(ctx, input)
		require.NoError(t, err)

		require.NotNil(t, repo.gotListOpt)
		assert.Equal(t, "panda", repo.gotListOpt.Search)
		assert.Equal(t, []string{"Drop"}, repo.gotListOpt.Brands)
		assert.Equal(t, f64(45), repo.gotListOpt.MinForce)
		assert.True(t, repo.gotListOpt.AvailableOnly)
		assert.Equal(t, catalog.SortByPrice, repo.gotListOpt.SortBy)
		assert.EqualValues(t, 10, repo.gotListOpt.Limit)
		assert.EqualValues(t, 20, repo.gotListOpt.Offset)

		// Count sees the same filter, pagination aside.
		require.NotNil(t, repo.gotCountOpt)
		assert.Equal(t, "panda", repo.gotCountOpt.Search)
	})

	t.Run("empty page keeps switches and brands non-nil", func(t *testing.T) {
		repo := &fakeRepository{}
		uc := newTestUseCase(t, repo, nil, Config{})

		out, err := uc.ListSwitches(ctx, validInput())
		require.NoError(t, err)

		assert.NotNil(t, out.Switches)
		assert.Empty(t, out.Switches)
		assert.NotNil(t, out.Brands)
		assert.EqualValues(t, 0, out.Paginator.Total)
		assert.Equal(t, 0, out.Paginator.TotalPages())
	})

	t.Run("invalid input never reaches the repository", func(t *testing.T) {
		repo := &fakeRepository{}
		uc := newTestUseCase(t, repo, nil, Config{})

		input := validInput()
		input.Limit = 150

		_, err := uc.ListSwitches(ctx, input)
		assert.ErrorIs(t, err, catalog.ErrInvalidRange)
		assert.Nil(t, repo.gotListOpt)
	})

	t.Run("collapses backend failures into a query error", func(t *testing.T) {
		repo := &fakeRepository{listErr: errors.New("connection refused")}
		uc := newTestUseCase(t, repo, nil, Config{})

		_, err := uc.ListSwitches(ctx, validInput())
		assert.ErrorIs(t, err, catalog.ErrQueryFailed)

		repo = &fakeRepository{brandsErr: errors.New("timeout")}
		uc = newTestUseCase(t, repo, nil, Config{})

		_, err = uc.ListSwitches(ctx, validInput())
		assert.ErrorIs(t, err, catalog.ErrQueryFailed)
	})

	t.Run("serves the brand facet from cache", func(t *testing.T) {
		repo := &fakeRepository{brandsErr: errors.New("must not be called")}
		cache := &fakeCacheRepository{facetHit: true, facet: []string{"Cherry"}}
		uc := newTestUseCase(t, repo, cache, Config{CacheEnabled: true})

		out, err := uc.ListSwitches(ctx, validInput())
		require.NoError(t, err)

		assert.Equal(t, []string{"Cherry"}, out.Brands)
		assert.Equal(t, 1, cache.facetReads)
	})

	t.Run("saves the facet after a cache miss", func(t *testing.T) {
		repo := &fakeRepository{brands: []string{"Akko", "Drop"}}
		cache := &fakeCacheRepository{}
		uc := newTestUseCase(t, repo, cache, Config{CacheEnabled: true})

		out, err := uc.ListSwitches(ctx, validInput())
		require.NoError(t, err)

		assert.Equal(t, []string{"Akko", "Drop"}, out.Brands)
		assert.Equal(t, []string{"Akko", "Drop"}, cache.facetSaved)
	})

	t.Run("serves repeated queries from the results cache", func(t *testing.T) {
		repo := &fakeRepository{
			records: []model.SwitchRecord{sampleRecord("sw-1", "Oil King", []int{5})},
			total:   1,
			brands:  []string{"Gateron"},
		}
		cache := &fakeCacheRepository{}
		uc := newTestUseCase(t, repo, cache, Config{CacheEnabled: true})

		first, err := uc.ListSwitches(ctx, validInput())
		require.NoError(t, err)
		assert.Equal(t, 1, cache.listSaved)

		// Second run must not touch the repository.
		repo.listErr = errors.New("down")
		repo.countErr = errors.New("down")

		second, err := uc.ListSwitches(ctx, validInput())
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("different inputs hash to different cache keys", func(t *testing.T) {
		uc := newTestUseCase(t, &fakeRepository{}, nil, Config{})

		a := validInput()
		b := validInput()
		b.Page = 2

		assert.NotEqual(t, uc.generateCacheKey(a), uc.generateCacheKey(b))

		// Same input, same key.
		assert.Equal(t, uc.generateCacheKey(a), uc.generateCacheKey(validInput()))
	})

	t.Run("cached payload survives a marshal round trip", func(t *testing.T) {
		out := catalog.ListSwitchesOutput{
			Switches: []catalog.SwitchSummary{toSummary(sampleRecord("sw-1", "Oil King", []int{4, 4, 5}))},
			Brands:   []string{"Gateron"},
		}

		data, err := json.Marshal(out)
		require.NoError(t, err)

		var got catalog.ListSwitchesOutput
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, out, got)
	})
}
