// Package pagination pages catalogue listings.
package pagination

import (
	"math"

	"gorm.io/gorm"
)

// Page size bounds for listing pages.
const (
	DefaultPageSize = 10
	MaxPageSize     = 50
)

// PageRequest holds pagination parameters parsed from query strings.
type PageRequest struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=50"`
}

// Defaults fills in default values when page or page_size are not provided.
func (p *PageRequest) Defaults() {
	if p.Page == 0 {
		p.Page = 1
	}
	if p.PageSize == 0 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
}

// Offset returns the SQL OFFSET for the current page.
func (p *PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// PageResponse wraps a page of items with the metadata the listing
// template needs for its pager.
type PageResponse[T any] struct {
	Data       []T
	Page       int
	PageSize   int
	TotalItems int64
	TotalPages int
}

// NewPageResponse creates a PageResponse from the given data and total count.
func NewPageResponse[T any](data []T, page, pageSize int, totalItems int64) PageResponse[T] {
	totalPages := int(math.Ceil(float64(totalItems) / float64(pageSize)))
	if data == nil {
		data = []T{}
	}
	return PageResponse[T]{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

// HasPrev reports whether a previous page exists.
func (p PageResponse[T]) HasPrev() bool { return p.Page > 1 }

// HasNext reports whether a following page exists.
func (p PageResponse[T]) HasNext() bool { return p.Page < p.TotalPages }

// PrevPage returns the previous page number.
func (p PageResponse[T]) PrevPage() int { return p.Page - 1 }

// NextPage returns the following page number.
func (p PageResponse[T]) NextPage() int { return p.Page + 1 }

// Paginate returns a GORM scope that applies OFFSET and LIMIT for the given page request.
func Paginate(req PageRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(req.Offset()).Limit(req.PageSize)
	}
}
