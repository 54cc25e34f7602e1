package services

// Page is a requested pagination window. Page is 1-based.
type Page struct {
	Page  int
	Limit int
}

// Skip is the number of rows before the window.
func (p Page) Skip() int {
	return (p.Page - 1) * p.Limit
}

// TotalPages is ceil(total/limit).
func (p Page) TotalPages(total int64) int {
	if p.Limit <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(p.Limit) - 1) / int64(p.Limit))
}

func (p Page) valid() bool {
	return p.Page >= 1 && p.Limit >= 1
}

// Pagination is the metadata returned alongside every list.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

func (p Page) meta(total int64) Pagination {
	return Pagination{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: p.TotalPages(total),
	}
}

// bounds rejects an empty collection with empty and a window past the last
// page with beyond.
func (p Page) bounds(total int64, empty, beyond error) error {
	if total == 0 {
		return empty
	}
	if p.Page > p.TotalPages(total) {
		return beyond
	}
	return nil
}
