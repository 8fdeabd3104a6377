package http

import (
	"time"

	"catalog-srv/internal/catalog"
	"catalog-srv/pkg/util"
)

// =====================================================
// Response DTOs
// =====================================================

type listSwitchesResp struct {
	Switches   []switchResp   `json:"switches"`
	Pagination paginationResp `json:"pagination"`
	Filters    filtersResp    `json:"filters"`
}

type switchResp struct {
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

type paginationResp struct {
	Page  int   `json:"page"`
	Limit int64 `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

type filtersResp struct {
	Brands []string `json:"brands"`
}

func newSwitchResp(s catalog.SwitchSummary) switchResp {
	return switchResp{
		ID:            s.ID,
		Name:          s.Name,
		Brand:         s.Brand,
		Type:          s.Type,
		Actuation:     s.Actuation,
		Force:         s.Force,
		Travel:        s.Travel,
		SoundProfile:  s.SoundProfile,
		Tactility:     s.Tactility,
		Price:         s.Price,
		Availability:  s.Availability,
		ImageURL:      s.ImageURL,
		SoundURL:      s.SoundURL,
		Description:   s.Description,
		ReleaseDate:   s.ReleaseDate,
		AverageRating: s.AverageRating,
		ReviewCount:   s.ReviewCount,
		FavoriteCount: s.FavoriteCount,
	}
}

func (h *handler) newListSwitchesResp(output catalog.ListSwitchesOutput) listSwitchesResp {
	resp := listSwitchesResp{
		Switches: util.MapSlice(output.Switches, newSwitchResp),
		Pagination: paginationResp{
			Page:  output.Paginator.CurrentPage,
			Limit: output.Paginator.PerPage,
			Total: output.Paginator.Total,
			Pages: output.Paginator.TotalPages(),
		},
		Filters: filtersResp{Brands: output.Brands},
	}

	// An empty page still serializes as [], never null.
	if resp.Switches == nil {
		resp.Switches = []switchResp{}
	}
	if resp.Filters.Brands == nil {
		resp.Filters.Brands = []string{}
	}

	return resp
}
