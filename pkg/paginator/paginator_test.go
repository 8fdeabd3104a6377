package paginator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdjust(t *testing.T) {
	t.Run("fills defaults when omitted", func(t *testing.T) {
		p := PaginateQuery{}
		p.Adjust()
		assert.Equal(t, DefaultPage, p.Page)
		assert.Equal(t, int64(DefaultLimit), p.Limit)
	})

	t.Run("keeps provided values", func(t *testing.T) {
		p := PaginateQuery{Page: 3, Limit: 50}
		p.Adjust()
		assert.Equal(t, 3, p.Page)
		assert.Equal(t, int64(50), p.Limit)
	})
}

func TestOffset(t *testing.T) {
	tests := []struct {
		name  string
		page  int
		limit int64
		want  int64
	}{
		{name: "first page", page: 1, limit: 20, want: 0},
		{name: "second page", page: 2, limit: 20, want: 20},
		{name: "deep page", page: 7, limit: 25, want: 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PaginateQuery{Page: tt.page, Limit: tt.limit}
			assert.Equal(t, tt.want, p.Offset())
		})
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name    string
		total   int64
		perPage int64
		want    int
	}{
		{name: "exact division", total: 40, perPage: 20, want: 2},
		{name: "partial last page", total: 41, perPage: 20, want: 3},
		{name: "single short page", total: 3, perPage: 20, want: 1},
		{name: "zero total", total: 0, perPage: 20, want: 0},
		{name: "partial last page total 3 limit 2", total: 3, perPage: 2, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Paginator{Total: tt.total, PerPage: tt.perPage}
			assert.Equal(t, tt.want, p.TotalPages())
		})
	}
}
