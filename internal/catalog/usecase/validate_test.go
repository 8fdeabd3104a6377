package usecase

import (
	"testing"

	"catalog-srv/internal/catalog"
	"catalog-srv/internal/catalog/repository"
	"catalog-srv/pkg/log"

	"github.com/stretchr/testify/assert"
)

func newTestUseCase(t *testing.T, repo *fakeRepository, cache *fakeCacheRepository, cfg Config) *implUseCase {
	t.Helper()
	l := log.Init(log.ZapConfig{Level: "error", Encoding: "console"})

	var cacheRepo repository.CacheRepository
	if cache != nil {
		cacheRepo = cache
	}

	uc := New(repo, cacheRepo, l, cfg)
	return uc.(*implUseCase)
}

func validInput() catalog.ListSwitchesInput {
	return catalog.ListSwitchesInput{
		SortBy: catalog.SortByName,
		Page:   1,
		Limit:  20,
	}
}

func TestValidateInput(t *testing.T) {
	uc := newTestUseCase(t, &fakeRepository{}, nil, Config{})

	t.Run("accepts a fully populated input", func(t *testing.T) {
		input := validInput()
		input.Search = "holy panda"
		input.Brands = []string{"Drop", "Gateron"}
		input.Types = []string{"TACTILE", "LINEAR"}
		input.SoundProfiles = []string{"THOCKY"}
		input.Tactility = []string{"MEDIUM"}
		input.MinForce = f64(45)
		input.MaxForce = f64(67)
		input.MinPrice = f64(0.5)
		input.MaxPrice = f64(1.2)

		assert.NoError(t, uc.validateInput(input))
	})

	t.Run("rejects unknown switch type", func(t *testing.T) {
		input := validInput()
		input.Types = []string{"BOUNCY"}

		err := uc.validateInput(input)
		assert.ErrorIs(t, err, catalog.ErrInvalidEnumValue)
		assert.Contains(t, err.Error(), "BOUNCY")
	})

	t.Run("rejects unknown sound profile", func(t *testing.T) {
		input := validInput()
		input.SoundProfiles = []string{"QUIET", "SQUEAKY"}

		assert.ErrorIs(t, uc.validateInput(input), catalog.ErrInvalidEnumValue)
	})

	t.Run("rejects unknown tactility", func(t *testing.T) {
		input := validInput()
		input.Tactility = []string{"EXTREME"}

		assert.ErrorIs(t, uc.validateInput(input), catalog.ErrInvalidEnumValue)
	})

	t.Run("rejects unknown sort key", func(t *testing.T) {
		input := validInput()
		input.SortBy = "popularity"

		assert.ErrorIs(t, uc.validateInput(input), catalog.ErrInvalidEnumValue)
	})

	t.Run("rejects force outside bounds", func(t *testing.T) {
		input := validInput()
		input.MinForce = f64(300)

		assert.ErrorIs(t, uc.validateInput(input), catalog.ErrInvalidRange)

		input = validInput()
		input.MaxForce = f64(-5)

		assert.ErrorIs(t, uc.validateInput(input), catalog.ErrInvalidRange)
	})

	t.Run("accepts force on the boundary", func(t *testing.T) {
		input := validInput()
		input.MinForce = f64(0)
		input.MaxForce = f64(200)

		assert.NoError(t, uc.validateInput(input))
	})

	t.Run("rejects negative price", func(t *testing.T) {
		input := validInput()
		input.MinPrice = f64(-0.01)

		assert.ErrorIs(t, uc.validateInput(input), catalog.ErrInvalidRange)
	})

	t.Run("rejects page below one", func(t *testing.T) {
		input := validInput()
		input.Page = 0

		assert.ErrorIs(t, uc.validateInput(input), catalog.ErrInvalidRange)
	})

	t.Run("rejects limit outside bounds", func(t *testing.T) {
		input := validInput()
		input.Limit = 0

		assert.ErrorIs(t, uc.validateInput(input), catalog.ErrInvalidRange)

		input = validInput()
		input.Limit = 150

		assert.ErrorIs(t, uc.validateInput(input), catalog.ErrInvalidRange)
	})

	t.Run("accepts min above max as an empty-result query", func(t *testing.T) {
		input := validInput()
		input.MinForce = f64(80)
		input.MaxForce = f64(40)

		assert.NoError(t, uc.validateInput(input))
	})
}

func f64(v float64) *float64 {
	return &v
}
