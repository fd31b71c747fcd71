package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paginationFor(t *testing.T, query string) *Pagination {
	t.Helper()

	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return NewPagination(c)
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "", 1, DefaultPageSize, 0},
		{"explicit", "page=3&page_size=10", 3, 10, 20},
		{"zero page", "page=0", 1, DefaultPageSize, 0},
		{"negative page", "page=-2", 1, DefaultPageSize, 0},
		{"garbage page", "page=abc", 1, DefaultPageSize, 0},
		{"zero size", "page_size=0", 1, DefaultPageSize, 0},
		{"size capped", "page_size=5000", 1, MaxPageSize, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := paginationFor(t, tt.query)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
			assert.Equal(t, tt.wantOffset, p.Offset)
		})
	}
}

func TestPaginationSetTotal(t *testing.T) {
	p := paginationFor(t, "page_size=6")

	p.SetTotal(0)
	assert.Equal(t, 0, p.LastPage)

	p.SetTotal(6)
	assert.Equal(t, 1, p.LastPage)

	p.SetTotal(7)
	assert.Equal(t, 2, p.LastPage)

	p.SetTotal(13)
	assert.Equal(t, 3, p.LastPage)
}
