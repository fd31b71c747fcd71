package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// Default and maximum page sizes for list endpoints
const (
	DefaultPageSize = 6
	MaxPageSize     = 100
)

// Pagination represents pagination parameters
type Pagination struct {
	Page     int
	Limit    int
	Offset   int
	Total    int64
	LastPage int
}

// NewPagination creates a new Pagination instance from query parameters
func NewPagination(c *gin.Context) *Pagination {
	pageStr := c.DefaultQuery("page", "1")
	limitStr := c.DefaultQuery("page_size", strconv.Itoa(DefaultPageSize))

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	offset := (page - 1) * limit

	return &Pagination{
		Page:   page,
		Limit:  limit,
		Offset: offset,
	}
}

// SetTotal sets the total number of items and calculates the last page
func (p *Pagination) SetTotal(total int64) {
	p.Total = total
	if p.Limit > 0 {
		p.LastPage = int((total + int64(p.Limit) - 1) / int64(p.Limit))
	}
}
