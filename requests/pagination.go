package requests

import (
	"net/http"
	"strconv"
)

// Pagination is the page/per-page pair extracted from a list request.
type Pagination struct {
	Page    int
	PerPage int
}

// PaginationParams reads `page` and `per_page` from the query string.
// Page floors at 1; per_page falls back to defaultPerPage when absent
// or invalid and is capped at maxPerPage (0 = no cap).
func PaginationParams(r *http.Request, defaultPerPage, maxPerPage int) Pagination {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}
	perPage, err := strconv.Atoi(q.Get("per_page"))
	if err != nil || perPage < 1 {
		perPage = defaultPerPage
	}
	if maxPerPage > 0 && perPage > maxPerPage {
		perPage = maxPerPage
	}
	return Pagination{Page: page, PerPage: perPage}
}

// LimitOffset converts the pagination to SQL LIMIT/OFFSET values.
func (p Pagination) LimitOffset() (limit, offset int) {
	return p.PerPage, (p.Page - 1) * p.PerPage
}
