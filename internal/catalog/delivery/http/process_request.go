package http

import (
	"catalog-srv/internal/catalog"
	"catalog-srv/pkg/paginator"

	"github.com/gin-gonic/gin"
)

// listSwitchesReq binds the query string of GET /switches. Page and Limit are
// pointers so an omitted parameter (take the default) is distinguishable from
// an explicit zero (reject).
type listSwitchesReq struct {
	Search        string   `form:"search"`
	Brands        []string `form:"brands"`
	Types         []string `form:"types"`
	SoundProfiles []string `form:"soundProfiles"`
	Tactility     []string `form:"tactility"`

	MinForce *float64 `form:"minForce"`
	MaxForce *float64 `form:"maxForce"`
	MinPrice *float64 `form:"minPrice"`
	MaxPrice *float64 `form:"maxPrice"`

	// Availability is a raw string: only the literal "true" restricts the
	// result to available switches, anything else is ignored.
	Availability string `form:"availability"`

	SortBy string `form:"sortBy"`
	Page   *int   `form:"page"`
	Limit  *int64 `form:"limit"`
}

func (h *handler) processListSwitchesRequest(c *gin.Context) (listSwitchesReq, error) {
	var req listSwitchesReq

	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}

	return req, nil
}

func (r listSwitchesReq) toInput() catalog.ListSwitchesInput {
	input := catalog.ListSwitchesInput{
		Search:        r.Search,
		Brands:        r.Brands,
		Types:         r.Types,
		SoundProfiles: r.SoundProfiles,
		Tactility:     r.Tactility,
		MinForce:      r.MinForce,
		MaxForce:      r.MaxForce,
		MinPrice:      r.MinPrice,
		MaxPrice:      r.MaxPrice,
		AvailableOnly: r.Availability == "true",
		SortBy:        r.SortBy,
		Page:          paginator.DefaultPage,
		Limit:         paginator.DefaultLimit,
	}

	if input.SortBy == "" {
		input.SortBy = catalog.SortByName
	}
	if r.Page != nil {
		input.Page = *r.Page
	}
	if r.Limit != nil {
		input.Limit = *r.Limit
	}

	return input
}
