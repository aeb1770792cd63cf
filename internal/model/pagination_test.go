package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationOffset(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		pageSize int
		want     int
	}{
		{"first page", 1, 10, 0},
		{"third page", 3, 10, 20},
		{"page zero clamps to one", 0, 10, 0},
		{"negative page clamps to one", -5, 10, 0},
		{"zero page size", 3, 0, 0},
		{"large page", 100, 25, 2475},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Pagination{Page: tt.page, PageSize: tt.pageSize}
			assert.Equal(t, tt.want, p.Offset())
		})
	}
}

func TestPaginationLimit(t *testing.T) {
	assert.Equal(t, 10, Pagination{Page: 1, PageSize: 10}.Limit())
	assert.Equal(t, 0, Pagination{Page: 1, PageSize: 0}.Limit())
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		limit int
		want  int64
	}{
		{"partial last page", 25, 10, 3},
		{"exact division", 20, 10, 2},
		{"empty table", 0, 10, 0},
		{"zero limit is defined as zero", 10, 0, 0},
		{"single row", 1, 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.total, tt.limit))
		})
	}
}

func TestNewPageInfo(t *testing.T) {
	info := NewPageInfo(Pagination{Page: 2, PageSize: 10}, 25)

	assert.Equal(t, 2, info.Page)
	assert.Equal(t, 10, info.PageSize)
	assert.Equal(t, int64(25), info.Total)
	assert.Equal(t, int64(3), info.TotalPages)
}
