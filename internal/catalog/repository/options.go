package repository

// ListSwitchesOptions - Options for ListSwitches / CountSwitches queries.
// All provided filters are combined with an AND condition; which filters to
// apply is decided in the UseCase.
type ListSwitchesOptions struct {
	// Filters
	Search        string   // Case-insensitive substring on name, brand, description
	Brands        []string // brand IN (...)
	Types         []string // type IN (...)
	SoundProfiles []string // sound_profile IN (...)
	Tactility     []string // tactility IN (...)

	MinForce *float64 // force >= min
	MaxForce *float64 // force <= max
	MinPrice *float64 // price >= min
	MaxPrice *float64 // price <= max

	AvailableOnly bool // availability = TRUE when set

	// Sorting: one of the catalog sort keys ("name" when empty)
	SortBy string

	// Pagination (ignored by CountSwitches)
	Limit  int64
	Offset int64
}
