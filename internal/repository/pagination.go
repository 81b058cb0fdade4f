package repository

// Pagination is the envelope returned by every listing endpoint.
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalItems  int  `json:"totalItems"`
	HasMore     bool `json:"hasMore"`
}

// NewPagination computes the envelope for a page of a collection with total
// items. TotalPages is ceil(total/limit) and HasMore is true exactly when
// pages beyond the current one hold further items.
func NewPagination(page, limit, total int) Pagination {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return Pagination{
		CurrentPage: page,
		TotalPages:  pages,
		TotalItems:  total,
		HasMore:     page*limit < total,
	}
}

// PageBounds normalises raw page/limit query values to the 1/10 defaults and
// returns the SQL offset for the page.
func PageBounds(page, limit int) (p, l, offset int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return page, limit, (page - 1) * limit
}
