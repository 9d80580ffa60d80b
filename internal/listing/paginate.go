// internal/listing/paginate.go
package listing

// Page is one window over a filtered sequence.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PerPage    int `json:"perPage"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
	// Start and End are 1-based positions for "Showing Start to End of Total".
	// Both are 0 when the page is empty.
	Start int `json:"start"`
	End   int `json:"end"`
}

// TotalPages is never less than 1, so an empty result still has a page 1.
func TotalPages(total, perPage int) int {
	if perPage < 1 {
		perPage = 1
	}
	pages := (total + perPage - 1) / perPage
	if pages < 1 {
		return 1
	}
	return pages
}

// ClampPage moves page into [1, TotalPages(total, perPage)].
func ClampPage(page, total, perPage int) int {
	if page < 1 {
		return 1
	}
	if last := TotalPages(total, perPage); page > last {
		return last
	}
	return page
}

// Paginate slices items at the clamped page.
func Paginate[T any](items []T, page, perPage int) Page[T] {
	if perPage < 1 {
		perPage = 1
	}
	total := len(items)
	page = ClampPage(page, total, perPage)

	start := (page - 1) * perPage
	end := start + perPage
	if end > total {
		end = total
	}

	result := Page[T]{
		Items:      make([]T, 0, end-start),
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: TotalPages(total, perPage),
	}
	result.Items = append(result.Items, items[start:end]...)
	if end > start {
		result.Start = start + 1
		result.End = end
	}
	return result
}
