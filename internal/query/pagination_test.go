package query

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func seq(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return items
}

func TestPaginateWindows(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		page      int
		limit     int
		wantLen   int
		wantFirst int
		wantNext  *NextPage
	}{
		{name: "first_page", total: 25, page: 1, limit: 10, wantLen: 10, wantFirst: 0, wantNext: &NextPage{Page: 2, Limit: 10}},
		{name: "middle_page", total: 25, page: 2, limit: 10, wantLen: 10, wantFirst: 10, wantNext: &NextPage{Page: 3, Limit: 10}},
		{name: "last_partial_page", total: 25, page: 3, limit: 10, wantLen: 5, wantFirst: 20, wantNext: nil},
		{name: "exact_fit_last_page", total: 20, page: 2, limit: 10, wantLen: 10, wantFirst: 10, wantNext: nil},
		{name: "out_of_range", total: 25, page: 4, limit: 10, wantLen: 0, wantNext: nil},
		{name: "far_out_of_range", total: 3, page: 100, limit: 10, wantLen: 0, wantNext: nil},
		{name: "single_item_pages", total: 3, page: 2, limit: 1, wantLen: 1, wantFirst: 1, wantNext: &NextPage{Page: 3, Limit: 1}},
		{name: "empty_input", total: 0, page: 1, limit: 10, wantLen: 0, wantNext: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Paginate(seq(tt.total), tt.page, tt.limit)
			require.Len(t, res.Results, tt.wantLen)
			if tt.wantLen > 0 {
				require.Equal(t, tt.wantFirst, res.Results[0])
			}
			require.Equal(t, tt.wantNext, res.Next)
		})
	}
}

func TestPaginateLengthProperty(t *testing.T) {
	// len == min(limit, max(0, total-(page-1)*limit)) and next iff page*limit < total
	for total := 0; total <= 30; total++ {
		items := seq(total)
		for page := 1; page <= 5; page++ {
			for limit := 1; limit <= 12; limit += 3 {
				res := Paginate(items, page, limit)

				want := total - (page-1)*limit
				if want < 0 {
					want = 0
				}
				if want > limit {
					want = limit
				}
				require.Len(t, res.Results, want, "total=%d page=%d limit=%d", total, page, limit)
				require.Equal(t, page*limit < total, res.Next != nil, "total=%d page=%d limit=%d", total, page, limit)
			}
		}
	}
}

func TestPaginateDefaults(t *testing.T) {
	items := seq(15)

	res := Paginate(items, 0, 0)
	require.Len(t, res.Results, DefaultLimit)
	require.Equal(t, 0, res.Results[0])
	require.Equal(t, &NextPage{Page: 2, Limit: DefaultLimit}, res.Next)

	res = Paginate(items, -3, -1)
	require.Len(t, res.Results, DefaultLimit)
}

func TestPaginateEmptyWindowIsNotNil(t *testing.T) {
	res := Paginate(seq(2), 5, 10)
	require.NotNil(t, res.Results)
	require.Empty(t, res.Results)
}
