package postgre

import (
	"fmt"
	"strings"

	"catalog-srv/internal/catalog"
	"catalog-srv/internal/catalog/repository"

	"github.com/lib/pq"
)

// buildListSwitchesWhere - Build the WHERE conjunction for ListSwitches and
// CountSwitches. Every provided filter becomes one clause; clauses are joined
// with AND. Returns the clause (without the WHERE keyword) and its args.
func buildListSwitchesWhere(opt repository.ListSwitchesOptions) (string, []interface{}) {
	conds := []string{}
	args := []interface{}{}

	// Free-text search: OR group over name, brand, description. A NULL
	// description never matches this clause but does not exclude the row
	// through other clauses.
	if opt.Search != "" {
		args = append(args, "%"+escapeLike(opt.Search)+"%")
		idx := len(args)
		conds = append(conds, fmt.Sprintf(
			"(s.name ILIKE $%d OR s.brand ILIKE $%d OR s.description ILIKE $%d)", idx, idx, idx))
	}

	// Membership tests
	if len(opt.Brands) > 0 {
		args = append(args, pq.Array(opt.Brands))
		conds = append(conds, fmt.Sprintf("s.brand = ANY($%d)", len(args)))
	}
	if len(opt.Types) > 0 {
		args = append(args, pq.Array(opt.Types))
		conds = append(conds, fmt.Sprintf("s.type = ANY($%d)", len(args)))
	}
	if len(opt.SoundProfiles) > 0 {
		args = append(args, pq.Array(opt.SoundProfiles))
		conds = append(conds, fmt.Sprintf("s.sound_profile = ANY($%d)", len(args)))
	}
	if len(opt.Tactility) > 0 {
		args = append(args, pq.Array(opt.Tactility))
		conds = append(conds, fmt.Sprintf("s.tactility = ANY($%d)", len(args)))
	}

	// Numeric ranges, each bound independently optional
	if opt.MinForce != nil {
		args = append(args, *opt.MinForce)
		conds = append(conds, fmt.Sprintf("s.force >= $%d", len(args)))
	}
	if opt.MaxForce != nil {
		args = append(args, *opt.MaxForce)
		conds = append(conds, fmt.Sprintf("s.force <= $%d", len(args)))
	}
	if opt.MinPrice != nil {
		args = append(args, *opt.MinPrice)
		conds = append(conds, fmt.Sprintf("s.price >= $%d", len(args)))
	}
	if opt.MaxPrice != nil {
		args = append(args, *opt.MaxPrice)
		conds = append(conds, fmt.Sprintf("s.price <= $%d", len(args)))
	}

	// Availability can only be asserted, never negated
	if opt.AvailableOnly {
		conds = append(conds, "s.availability = TRUE")
	}

	if len(conds) == 0 {
		return "", args
	}
	return strings.Join(conds, " AND "), args
}

// buildListSwitchesOrderBy - Map a sort key to its ORDER BY expression.
// "rating" orders by review volume, not average score. No secondary sort
// key; ties fall back to storage order.
func buildListSwitchesOrderBy(sortBy string) string {
	switch sortBy {
	case catalog.SortByPrice:
		return "s.price ASC NULLS LAST"
	case catalog.SortByForce:
		return "s.force ASC"
	case catalog.SortByNewest:
		return "s.created_at DESC"
	case catalog.SortByRating:
		return "review_count DESC"
	default:
		return "s.name ASC"
	}
}

// escapeLike escapes LIKE/ILIKE metacharacters in user input so a search for
// "50%" matches literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
