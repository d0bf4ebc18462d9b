// Package query computes pagination windows and task aggregations over full
// store listings.
package query

const (
	// DefaultPage is used when the caller supplies no page or a value below 1.
	DefaultPage = 1
	// DefaultLimit is used when the caller supplies no limit or a value below 1.
	DefaultLimit = 10
)

// NextPage describes the follow-up window of a paginated listing.
type NextPage struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Page is one window of a listed sequence.
type Page[T any] struct {
	Results []T       `json:"results"`
	Next    *NextPage `json:"next,omitempty"`
}

// Paginate slices items to the window [(page-1)*limit, page*limit). Page is
// 1-indexed. Out-of-range pages yield an empty window, never an error. Next is
// set iff page*limit < len(items).
func Paginate[T any](items []T, page, limit int) Page[T] {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	startIndex := (page - 1) * limit
	endIndex := page * limit

	res := Page[T]{Results: []T{}}
	if endIndex < len(items) {
		res.Next = &NextPage{Page: page + 1, Limit: limit}
	}

	if startIndex >= len(items) {
		return res
	}
	if endIndex > len(items) {
		endIndex = len(items)
	}
	res.Results = items[startIndex:endIndex]
	return res
}
