package clipboard

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/gridline/internal/grid"
	"github.com/zjrosen/gridline/internal/mocks"
)

func testModel(t *testing.T) *grid.Model {
	t.Helper()
	a, err := grid.NewAdapter([]grid.Column{
		{ID: "name"},
		{ID: "district"},
		{ID: "age", Kind: grid.KindNumber},
		{ID: "profile", Kind: grid.KindComposite, Parts: []string{"name", "district"}},
	}, grid.WithIDField("id"))
	require.NoError(t, err)
	m, err := a.Build([]grid.Record{
		{"id": "1", "name": "Asha", "district": "Pune", "age": 30},
		{"id": "2", "name": "Ravi", "district": "Surat", "age": 41},
		{"id": "3", "name": "Meena", "district": "Agra", "age": 25},
	}, grid.Pagination{CurrentPage: 1, ItemsPerPage: 10})
	require.NoError(t, err)
	return m
}

func p(r, c int) grid.Pos { return grid.Pos{Row: r, Col: c} }

func TestMatrix_DistinctSortedRowsAndColumns(t *testing.T) {
	m := testModel(t)

	cells := []grid.Pos{p(2, 3), p(0, 1), p(2, 1), p(0, 0)}
	require.Equal(t, [][]string{
		{"Asha", "30"},
		{"Meena", "25"},
	}, Matrix(m, cells), "row-number column is excluded and gaps are filled from the model")
}

func TestBridge_Copy(t *testing.T) {
	m := testModel(t)
	ch := mocks.NewMockChannel(t)
	ch.EXPECT().Write("Asha\tPune\nRavi\tSurat").Return(nil).Once()

	text, err := NewBridge(ch).Copy(m, []grid.Pos{p(0, 1), p(0, 2), p(1, 1), p(1, 2)})
	require.NoError(t, err)
	require.Equal(t, "Asha\tPune\nRavi\tSurat", text)
}

func TestBridge_CopyOnlyHeader(t *testing.T) {
	m := testModel(t)
	ch := mocks.NewMockChannel(t)

	_, err := NewBridge(ch).Copy(m, []grid.Pos{p(0, 0)})
	require.ErrorIs(t, err, ErrNothingToCopy)
	ch.AssertNotCalled(t, "Write", mock.Anything)
}

func TestTargets(t *testing.T) {
	m := testModel(t)

	targets, skipped := Targets(m, p(1, 2), [][]string{
		{"Delhi", "50", "ignored composite"},
		{"Kota", "51", "x", "off grid"},
		{"off", "grid"},
	})

	require.Equal(t, []Target{
		{Coord: grid.Coord{Row: 1, Col: "district"}, Value: "Delhi"},
		{Coord: grid.Coord{Row: 1, Col: "age"}, Value: "50"},
		{Coord: grid.Coord{Row: 2, Col: "district"}, Value: "Kota"},
		{Coord: grid.Coord{Row: 2, Col: "age"}, Value: "51"},
	}, targets)
	require.Equal(t, 5, skipped)
}

func TestTargets_HeaderFocusAnchorsAtFirstDataColumn(t *testing.T) {
	m := testModel(t)

	targets, skipped := Targets(m, p(0, 0), [][]string{{"Zara"}})
	require.Zero(t, skipped)
	require.Equal(t, []Target{{Coord: grid.Coord{Row: 0, Col: "name"}, Value: "Zara"}}, targets)
}

func TestBridge_CopyPasteRoundTrip(t *testing.T) {
	m := testModel(t)
	fb := NewFallback(newCache(), "")
	b := NewBridge(fb)

	src := []grid.Pos{p(0, 1), p(0, 2), p(1, 1), p(1, 2)}
	_, err := b.Copy(m, src)
	require.NoError(t, err)

	targets, skipped, err := b.Paste(m, p(1, 1))
	require.NoError(t, err)
	require.Equal(t, 0, skipped)
	require.Len(t, targets, 4)

	want := Matrix(m, src)
	for _, tg := range targets {
		pos, _ := m.PosOf(tg.Coord)
		i, j := pos.Row-1, pos.Col-1
		require.Equal(t, want[i][j], tg.Value)
	}
}
