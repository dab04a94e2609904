package pagination

import (
	"net/url"
	"strconv"
)

const (
	// DefaultPerPage is the standard page size for product listings.
	DefaultPerPage = 12
	// MaxPerPage caps how many rows any page query can request.
	MaxPerPage = 100
)

// Params holds page pagination inputs from controllers or services.
type Params struct {
	Page    int
	PerPage int
}

// Meta describes the pagination state returned alongside a page of results.
type Meta struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// FromQuery reads page/per_page from request query values.
func FromQuery(values url.Values) Params {
	params := Params{}
	if raw := values.Get("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil {
			params.Page = page
		}
	}
	if raw := values.Get("per_page"); raw != "" {
		if perPage, err := strconv.Atoi(raw); err == nil {
			params.PerPage = perPage
		}
	}
	return params
}

// Normalize enforces the configured defaults and maximum page size.
func (p Params) Normalize() Params {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PerPage <= 0 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	return p
}

// Offset returns the row offset for the normalized page.
func (p Params) Offset() int {
	norm := p.Normalize()
	return (norm.Page - 1) * norm.PerPage
}

// NewMeta computes the pagination metadata for a total row count.
func NewMeta(params Params, total int64) Meta {
	norm := params.Normalize()
	totalPages := int((total + int64(norm.PerPage) - 1) / int64(norm.PerPage))
	if totalPages < 1 {
		totalPages = 1
	}
	return Meta{
		Page:       norm.Page,
		PerPage:    norm.PerPage,
		Total:      total,
		TotalPages: totalPages,
	}
}
