package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"catalog-srv/internal/catalog/repository"
	"catalog-srv/internal/model"

	"github.com/lib/pq"
)

// switchColumns is the select list shared by ListSwitches. The count
// subqueries feed both the enriched response fields and the rating sort.
const switchColumns = `
		s.id, s.name, s.brand, s.type, s.actuation, s.force, s.travel,
		s.sound_profile, s.tactility, s.price, s.availability,
		s.image_url, s.sound_url, s.description, s.release_date,
		s.created_at, s.updated_at,
		(SELECT COUNT(*) FROM catalog.reviews r WHERE r.switch_id = s.id) AS review_count,
		(SELECT COUNT(*) FROM catalog.favorites f WHERE f.switch_id = s.id) AS favorite_count`

// ListSwitches - Fetch one page of switch records with ratings and counts
func (r *implRepository) ListSwitches(ctx context.Context, opt repository.ListSwitchesOptions) ([]model.SwitchRecord, error) {
	where, args := buildListSwitchesWhere(opt)

	query := "SELECT" + switchColumns + "\n\tFROM catalog.switches s"
	if where != "" {
		query += " WHERE " + where
	}
	query += " ORDER BY " + buildListSwitchesOrderBy(opt.SortBy)

	args = append(args, opt.Limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, opt.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListSwitches: %w", err)
	}
	defer rows.Close()

	var records []model.SwitchRecord
	for rows.Next() {
		rec, err := scanSwitchRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("ListSwitches scan: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListSwitches: %w", err)
	}

	if err := r.hydrateRatings(ctx, records); err != nil {
		return nil, err
	}

	return records, nil
}

// CountSwitches - Count records matching the filter, ignoring pagination
func (r *implRepository) CountSwitches(ctx context.Context, opt repository.ListSwitchesOptions) (int64, error) {
	where, args := buildListSwitchesWhere(opt)

	query := "SELECT COUNT(*) FROM catalog.switches s"
	if where != "" {
		query += " WHERE " + where
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("CountSwitches: %w", err)
	}
	return total, nil
}

// DistinctBrands - Sorted distinct brands across the whole catalog.
// Deliberately unfiltered; the facet is independent of the active search.
func (r *implRepository) DistinctBrands(ctx context.Context) ([]string, error) {
	query := "SELECT DISTINCT s.brand FROM catalog.switches s ORDER BY s.brand ASC"

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("DistinctBrands: %w", err)
	}
	defer rows.Close()

	var brands []string
	for rows.Next() {
		var brand string
		if err := rows.Scan(&brand); err != nil {
			return nil, fmt.Errorf("DistinctBrands scan: %w", err)
		}
		brands = append(brands, brand)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("DistinctBrands: %w", err)
	}
	return brands, nil
}

// hydrateRatings loads the per-review ratings for a page of records in one
// query and attaches them in place.
func (r *implRepository) hydrateRatings(ctx context.Context, records []model.SwitchRecord) error {
	if len(records) == 0 {
		return nil
	}

	ids := make([]string, len(records))
	index := make(map[string]int, len(records))
	for i, rec := range records {
		ids[i] = rec.ID
		index[rec.ID] = i
	}

	query := "SELECT rv.switch_id, rv.rating FROM catalog.reviews rv WHERE rv.switch_id = ANY($1)"
	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("hydrateRatings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var switchID string
		var rating int
		if err := rows.Scan(&switchID, &rating); err != nil {
			return fmt.Errorf("hydrateRatings scan: %w", err)
		}
		if i, ok := index[switchID]; ok {
			records[i].Ratings = append(records[i].Ratings, rating)
		}
	}
	return rows.Err()
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSwitchRecord(row rowScanner) (model.SwitchRecord, error) {
	var rec model.SwitchRecord
	var price sql.NullFloat64
	var imageURL, soundURL, description sql.NullString
	var releaseDate sql.NullTime

	if err := row.Scan(
		&rec.ID, &rec.Name, &rec.Brand, &rec.Type,
		&rec.Actuation, &rec.Force, &rec.Travel,
		&rec.SoundProfile, &rec.Tactility,
		&price, &rec.Availability,
		&imageURL, &soundURL, &description, &releaseDate,
		&rec.CreatedAt, &rec.UpdatedAt,
		&rec.ReviewCount, &rec.FavoriteCount,
	); err != nil {
		return model.SwitchRecord{}, err
	}

	if price.Valid {
		rec.Price = &price.Float64
	}
	if imageURL.Valid {
		rec.ImageURL = &imageURL.String
	}
	if soundURL.Valid {
		rec.SoundURL = &soundURL.String
	}
	if description.Valid {
		rec.Description = &description.String
	}
	if releaseDate.Valid {
		rec.ReleaseDate = &releaseDate.Time
	}

	return rec, nil
}
