package pagination

import (
	"math"
	"strconv"
)

const (
	defaultPage    = 1
	defaultPerPage = 20
	maxPerPage     = 100
)

// Pagination is the metadata returned alongside a page of results.
type Pagination struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrev     bool  `json:"has_prev"`
}

// Params represents input parameters for pagination
type Params struct {
	Page    int `form:"page" json:"page"`
	PerPage int `form:"limit" json:"limit"`
}

// Default returns default pagination values
func Default() *Params {
	return &Params{Page: defaultPage, PerPage: defaultPerPage}
}

// FromQuery builds validated params from raw query values. Unparseable
// values fall back to the defaults.
func FromQuery(page, limit string) *Params {
	p := Default()
	if n, err := strconv.Atoi(page); err == nil {
		p.Page = n
	}
	if n, err := strconv.Atoi(limit); err == nil {
		p.PerPage = n
	}
	p.Validate()
	return p
}

// Validate ensures pagination parameters are within valid ranges
func (p *Params) Validate() {
	if p.Page < 1 {
		p.Page = defaultPage
	}
	if p.PerPage < 1 {
		p.PerPage = defaultPerPage
	}
	if p.PerPage > maxPerPage {
		p.PerPage = maxPerPage
	}
}

// Offset calculates the offset for SQL queries
func (p *Params) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// New creates the response metadata for a page.
func New(page, perPage int, total int64) *Pagination {
	totalPages := 0
	if perPage > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(perPage)))
	}

	return &Pagination{
		CurrentPage: page,
		PerPage:     perPage,
		Total:       total,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}
}

// Result represents a paginated result with items and pagination info
type Result[T any] struct {
	Items      []T         `json:"items"`
	Pagination *Pagination `json:"pagination"`
}

// NewResult creates a new paginated result
func NewResult[T any](items []T, p *Params, total int64) *Result[T] {
	if items == nil {
		items = []T{}
	}
	return &Result[T]{
		Items:      items,
		Pagination: New(p.Page, p.PerPage, total),
	}
}
