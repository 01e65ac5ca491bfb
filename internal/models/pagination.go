package models

// Pagination describes the page window of a listing response
// swagger:model Pagination
type Pagination struct {
	// Current page, 1-based
	// example: 1
	Current int `json:"current"`

	// Total number of pages
	// example: 5
	Pages int64 `json:"pages"`

	// Total number of records
	// example: 83
	Total int64 `json:"total"`
}

// NewPagination computes the page window for a total record count.
func NewPagination(page, limit int, total int64) Pagination {
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return Pagination{Current: page, Pages: pages, Total: total}
}
