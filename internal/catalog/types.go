package catalog

import (
	"time"

	"catalog-srv/pkg/paginator"
)

// Sort keys accepted by ListSwitches.
const (
	SortByName   = "name"
	SortByPrice  = "price"
	SortByForce  = "force"
	SortByRating = "rating"
	SortByNewest = "newest"
)

// Force bounds accepted by the filter (grams-force).
const (
	MinForceBound = 0
	MaxForceBound = 200
)

// ListSwitchesInput is the validated filter for a catalog search. Nil
// pointers mean "no constraint"; empty slices impose no membership test.
type ListSwitchesInput struct {
	Search        string
	Brands        []string
	Types         []string
	SoundProfiles []string
	Tactility     []string

	MinForce *float64
	MaxForce *float64
	MinPrice *float64
	MaxPrice *float64

	// AvailableOnly constrains to available switches when true. The filter
	// cannot express "only unavailable"; false means no constraint.
	AvailableOnly bool

	SortBy string
	Page   int
	Limit  int64
}

// SwitchSummary is the client-facing shape of one catalog record. Raw review
// ratings are already folded into AverageRating.
type SwitchSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Brand string `json:"brand"`
	Type  string `json:"type"`

	Actuation float64 `json:"actuation"`
	Force     float64 `json:"force"`
	Travel    float64 `json:"travel"`

	SoundProfile string `json:"soundProfile"`
	Tactility    string `json:"tactility"`

	Price        *float64 `json:"price,omitempty"`
	Availability bool     `json:"availability"`

	ImageURL    *string    `json:"imageUrl,omitempty"`
	SoundURL    *string    `json:"soundUrl,omitempty"`
	Description *string    `json:"description,omitempty"`
	ReleaseDate *time.Time `json:"releaseDate,omitempty"`

	AverageRating float64 `json:"averageRating"`
	ReviewCount   int64   `json:"reviewCount"`
	FavoriteCount int64   `json:"favoriteCount"`
}

// ListSwitchesOutput is the assembled result of one catalog search.
type ListSwitchesOutput struct {
	Switches  []SwitchSummary     `json:"switches"`
	Paginator paginator.Paginator `json:"paginator"`

	// Brands is the distinct brand facet over the whole catalog,
	// independent of the active filter.
	Brands []string `json:"brands"`
}
