package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		pageSize   int
		totalItems int
		totalPages int
		hasNext    bool
		hasPrev    bool
	}{
		{name: "empty", page: 1, pageSize: 10, totalItems: 0, totalPages: 0, hasNext: false, hasPrev: false},
		{name: "exact fit", page: 1, pageSize: 10, totalItems: 10, totalPages: 1, hasNext: false, hasPrev: false},
		{name: "one over", page: 1, pageSize: 10, totalItems: 11, totalPages: 2, hasNext: true, hasPrev: false},
		{name: "middle page", page: 2, pageSize: 10, totalItems: 25, totalPages: 3, hasNext: true, hasPrev: true},
		{name: "last page", page: 3, pageSize: 10, totalItems: 25, totalPages: 3, hasNext: false, hasPrev: true},
		{name: "past the end", page: 5, pageSize: 10, totalItems: 25, totalPages: 3, hasNext: false, hasPrev: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.pageSize, tt.totalItems)

			assert.Equal(t, tt.page, p.CurrentPage)
			assert.Equal(t, tt.pageSize, p.PageSize)
			assert.Equal(t, tt.totalItems, p.TotalItems)
			assert.Equal(t, tt.totalPages, p.TotalPages)
			assert.Equal(t, tt.hasNext, p.HasNextPage)
			assert.Equal(t, tt.hasPrev, p.HasPrevPage)
		})
	}
}
