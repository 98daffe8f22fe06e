// Package pagination slices ordered sequences into fixed-size pages.
package pagination

// PageResult is one page of an ordered sequence plus the totals a client
// needs to render pagination controls.
type PageResult[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"totalCount"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

// Paginate returns the 1-based page of size pageSize from items. Both page
// and pageSize must already be validated as positive by the caller. A page
// past the end of the sequence yields empty Items with correct totals.
func Paginate[T any](items []T, page, pageSize int) PageResult[T] {
	total := len(items)
	totalPages := 0
	if total > 0 {
		totalPages = (total-1)/pageSize + 1
	}

	result := PageResult[T]{
		Items:      []T{},
		TotalCount: total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}

	// Checking against totalPages before multiplying keeps (page-1)*pageSize
	// from overflowing when page or pageSize is near the int maximum; a page
	// past the last one is simply empty.
	if page > totalPages {
		return result
	}

	// page <= totalPages bounds start below total, so neither the product
	// nor start+pageSize can wrap here.
	start := (page - 1) * pageSize
	end := start + pageSize
	if end > total {
		end = total
	}

	// Copy so callers cannot grow the page slice into the backing sequence.
	pageItems := make([]T, end-start)
	copy(pageItems, items[start:end])
	result.Items = pageItems
	return result
}
