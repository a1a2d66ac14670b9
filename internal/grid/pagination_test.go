package grid

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestPagination_DisplayOrdinal(t *testing.T) {
	p := Pagination{CurrentPage: 3, ItemsPerPage: 100, TotalItems: 1000}
	require.Equal(t, 204, p.DisplayOrdinal(3), "fourth row of page 3")
	require.Equal(t, 1, Pagination{}.DisplayOrdinal(0), "zero values normalize to page 1")
}

func TestPagination_DisplayOrdinalProperty(t *testing.T) {
	rapid.Check(t, func(r *rapid.T) {
		page := rapid.IntRange(1, 500).Draw(r, "page")
		size := rapid.IntRange(1, 500).Draw(r, "size")
		local := rapid.IntRange(0, size-1).Draw(r, "local")

		p := Pagination{CurrentPage: page, ItemsPerPage: size}
		got := p.DisplayOrdinal(local)
		require.Equal(t, (page-1)*size+local+1, got)

		if local+1 < size {
			require.Equal(t, got+1, p.DisplayOrdinal(local+1), "ordinals are contiguous within a page")
		}
		next := Pagination{CurrentPage: page + 1, ItemsPerPage: size}
		require.Equal(t, p.DisplayOrdinal(size-1)+1, next.DisplayOrdinal(0), "ordinals continue across pages")
	})
}

func TestPagination_Pages(t *testing.T) {
	p := Pagination{CurrentPage: 1, ItemsPerPage: 25, TotalItems: 51}
	require.Equal(t, 3, p.TotalPages())
	require.True(t, p.HasNext())
	require.False(t, p.HasPrev())

	p = p.WithPage(9)
	require.Equal(t, 3, p.CurrentPage)
	require.False(t, p.HasNext())

	require.Equal(t, 1, Pagination{ItemsPerPage: 10}.TotalPages())
}

func TestPagination_WithItemsPerPageKeepsFirstRecord(t *testing.T) {
	p := Pagination{CurrentPage: 3, ItemsPerPage: 10, TotalItems: 100}
	q := p.WithItemsPerPage(25)
	require.Equal(t, 25, q.ItemsPerPage)
	require.Equal(t, 1, q.CurrentPage, "record 21 lives on page 1 of 25")

	q = p.WithItemsPerPage(5)
	require.Equal(t, 5, q.CurrentPage)
}
