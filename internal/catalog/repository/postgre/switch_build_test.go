package postgre

import (
	"testing"

	"catalog-srv/internal/catalog"
	"catalog-srv/internal/catalog/repository"

	"github.com/stretchr/testify/assert"
)

func f64(v float64) *float64 { return &v }

func TestBuildListSwitchesWhere(t *testing.T) {
	t.Run("no filters yields empty clause", func(t *testing.T) {
		where, args := buildListSwitchesWhere(repository.ListSwitchesOptions{})
		assert.Empty(t, where)
		assert.Empty(t, args)
	})

	t.Run("search becomes OR group over name, brand, description", func(t *testing.T) {
		where, args := buildListSwitchesWhere(repository.ListSwitchesOptions{Search: "holy panda"})
		assert.Equal(t, "(s.name ILIKE $1 OR s.brand ILIKE $1 OR s.description ILIKE $1)", where)
		assert.Equal(t, []interface{}{"%holy panda%"}, args)
	})

	t.Run("search escapes LIKE metacharacters", func(t *testing.T) {
		_, args := buildListSwitchesWhere(repository.ListSwitchesOptions{Search: "50%_g"})
		assert.Equal(t, []interface{}{`%50\%\_g%`}, args)
	})

	t.Run("all filters combine with AND", func(t *testing.T) {
		where, args := buildListSwitchesWhere(repository.ListSwitchesOptions{
			Search:        "ink",
			Brands:        []string{"Gateron", "Durock"},
			Types:         []string{"LINEAR"},
			SoundProfiles: []string{"THOCKY"},
			Tactility:     []string{"NONE"},
			MinForce:      f64(45),
			MaxForce:      f64(60),
			MinPrice:      f64(0.5),
			MaxPrice:      f64(1.2),
			AvailableOnly: true,
		})

		assert.Equal(t,
			"(s.name ILIKE $1 OR s.brand ILIKE $1 OR s.description ILIKE $1)"+
				" AND s.brand = ANY($2)"+
				" AND s.type = ANY($3)"+
				" AND s.sound_profile = ANY($4)"+
				" AND s.tactility = ANY($5)"+
				" AND s.force >= $6"+
				" AND s.force <= $7"+
				" AND s.price >= $8"+
				" AND s.price <= $9"+
				" AND s.availability = TRUE",
			where)
		assert.Len(t, args, 9)
	})

	t.Run("single force bound constrains independently", func(t *testing.T) {
		where, args := buildListSwitchesWhere(repository.ListSwitchesOptions{MaxForce: f64(55)})
		assert.Equal(t, "s.force <= $1", where)
		assert.Equal(t, []interface{}{55.0}, args)
	})

	t.Run("availability false imposes no constraint", func(t *testing.T) {
		where, _ := buildListSwitchesWhere(repository.ListSwitchesOptions{AvailableOnly: false})
		assert.Empty(t, where)
	})
}

func TestBuildListSwitchesOrderBy(t *testing.T) {
	tests := []struct {
		sortBy string
		want   string
	}{
		{sortBy: catalog.SortByName, want: "s.name ASC"},
		{sortBy: "", want: "s.name ASC"},
		{sortBy: catalog.SortByPrice, want: "s.price ASC NULLS LAST"},
		{sortBy: catalog.SortByForce, want: "s.force ASC"},
		{sortBy: catalog.SortByNewest, want: "s.created_at DESC"},
		// Rating sorts by review volume, not average score.
		{sortBy: catalog.SortByRating, want: "review_count DESC"},
	}

	for _, tt := range tests {
		t.Run("sortBy "+tt.sortBy, func(t *testing.T) {
			assert.Equal(t, tt.want, buildListSwitchesOrderBy(tt.sortBy))
		})
	}
}
