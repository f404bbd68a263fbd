package models

const DefaultPageLimit = 50

// Pagination describes the window applied to a listing. Total counts the
// filtered set before the window; HasMore signals a further page exists.
type Pagination struct {
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"hasMore"`
}

// PaginateSlice applies a limit/offset window to an already filtered slice.
// A non-positive limit falls back to the default, a negative offset to zero.
func PaginateSlice[T any](items []T, limit, offset int) ([]T, Pagination) {
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if offset < 0 {
		offset = 0
	}

	total := len(items)
	start := offset
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return items[start:end], Pagination{
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: offset+limit < total,
	}
}
