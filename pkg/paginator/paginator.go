package paginator

import "math"

// Adjust fills in defaults for pagination parameters the caller omitted.
// It does not clamp out-of-range values; bounds are a validation concern.
func (p *PaginateQuery) Adjust() {
	if p.Page == 0 {
		p.Page = DefaultPage
	}
	if p.Limit == 0 {
		p.Limit = DefaultLimit
	}
}

// Offset calculates the database offset for the current page.
func (p PaginateQuery) Offset() int64 {
	return int64(p.Page-1) * p.Limit
}

// TotalPages calculates the total number of pages based on total items and
// items per page. A zero total yields zero pages.
func (p Paginator) TotalPages() int {
	if p.Total == 0 || p.PerPage == 0 {
		return 0
	}
	return int(math.Ceil(float64(p.Total) / float64(p.PerPage)))
}
