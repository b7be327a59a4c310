// Package pagination shapes paginated listings into page metadata and
// parses page/per_page request parameters.
package pagination

import (
	"math"
	"net/http"
	"strconv"
)

// Defaults applied when a request carries no explicit page size.
const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// Meta carries page metadata for a paginated response.
type Meta struct {
	Total       int `json:"total"`
	LastPage    int `json:"last_page"`
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
}

// NewMeta computes page metadata. An empty result set still has one page.
func NewMeta(page, perPage, total int) Meta {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if page <= 0 {
		page = 1
	}
	lastPage := int(math.Ceil(float64(total) / float64(perPage)))
	if lastPage < 1 {
		lastPage = 1
	}
	return Meta{Total: total, LastPage: lastPage, CurrentPage: page, PerPage: perPage}
}

// Params holds the requested page window.
type Params struct {
	Page    int
	PerPage int
}

// ParseParams reads `page` and `per_page` query parameters, falling back to
// defaultPer and clamping to maxPer. Non-numeric values fall back silently.
func ParseParams(r *http.Request, defaultPer, maxPer int) Params {
	if defaultPer <= 0 {
		defaultPer = DefaultPerPage
	}
	if maxPer <= 0 {
		maxPer = MaxPerPage
	}

	page := atoiDefault(r.URL.Query().Get("page"), 1)
	if page < 1 {
		page = 1
	}
	perPage := atoiDefault(r.URL.Query().Get("per_page"), defaultPer)
	if perPage < 1 {
		perPage = defaultPer
	}
	if perPage > maxPer {
		perPage = maxPer
	}
	return Params{Page: page, PerPage: perPage}
}

// Offset returns the zero-based row offset for the window.
func (p Params) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.PerPage
}

// Meta builds metadata for this window against a total row count.
func (p Params) Meta(total int) Meta {
	return NewMeta(p.Page, p.PerPage, total)
}

func atoiDefault(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
