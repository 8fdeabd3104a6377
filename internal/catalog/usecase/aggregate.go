package usecase

import (
	"math"

	"catalog-srv/internal/catalog"
	"catalog-srv/internal/model"
)

// averageRating - Mean of the review ratings rounded to one decimal place.
// A switch with no reviews scores 0, never NaN.
func averageRating(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	var sum int
	for _, r := range ratings {
		sum += r
	}
	avg := float64(sum) / float64(len(ratings))
	return math.Round(avg*10) / 10
}

// toSummary - Map repository record → client-facing summary. Raw ratings are
// folded into the average here and dropped.
func toSummary(rec model.SwitchRecord) catalog.SwitchSummary {
	return catalog.SwitchSummary{
		ID:    rec.ID,
		Name:  rec.Name,
		Brand: rec.Brand,
		Type:  string(rec.Type),

		Actuation: rec.Actuation,
		Force:     rec.Force,
		Travel:    rec.Travel,

		SoundProfile: string(rec.SoundProfile),
		Tactility:    string(rec.Tactility),

		Price:        rec.Price,
		Availability: rec.Availability,

		ImageURL:    rec.ImageURL,
		SoundURL:    rec.SoundURL,
		Description: rec.Description,
		ReleaseDate: rec.ReleaseDate,

		AverageRating: averageRating(rec.Ratings),
		ReviewCount:   rec.ReviewCount,
		FavoriteCount: rec.FavoriteCount,
	}
}
