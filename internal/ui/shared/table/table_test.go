package table

import (
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/gridline/internal/grid"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

// Column spans at zero offset: # 0-2, name 4-9, age 11-13, ok 15-17, city 19-23.
func testModel(t *testing.T) *grid.Model {
	t.Helper()
	cols := []grid.Column{
		{ID: grid.RowNumberColumnID, Header: true, ReadOnly: true, Kind: grid.KindNumber, Width: 3},
		{ID: "name", Kind: grid.KindText, Width: 6},
		{ID: "age", Kind: grid.KindNumber, Width: 3},
		{ID: "ok", Kind: grid.KindCheckbox, Width: 3},
		{ID: "city", Kind: grid.KindText, Width: 5},
	}
	names := []string{"Asha", "Vikramaditya", "Meena", "Ravi", "Zoya", "Kumar"}
	rows := make([]grid.Row, len(names))
	for i, n := range names {
		rows[i] = grid.Row{RecordID: n, Values: map[string]string{
			"name": n, "age": "31", "ok": "true", "city": "Pune",
		}}
	}
	rows[1].Values["ok"] = "false"
	m, err := grid.NewModel(cols, rows, grid.Pagination{CurrentPage: 2, ItemsPerPage: 6, TotalItems: 20})
	require.NoError(t, err)
	return m
}

func plainLines(s string) []string {
	return strings.Split(ansi.Strip(zone.Scan(s)), "\n")
}

func TestView_HeaderAndRows(t *testing.T) {
	g := testModel(t)
	tbl := New("t-").SetSize(24, 4)

	lines := plainLines(tbl.View(g, nil, ""))

	require.Len(t, lines, 4)
	assert.Equal(t, "   │name  │age│ok │city ", lines[0])
	assert.Equal(t, "  7│Asha  │ 31│[x]│Pune ", lines[1])
	assert.Equal(t, "  8│Vikra…│ 31│[ ]│Pune ", lines[2])
	assert.Equal(t, "  9│Meena │ 31│[x]│Pune ", lines[3])
}

func TestView_PadsToHeight(t *testing.T) {
	g := testModel(t)
	lines := plainLines(New("").SetSize(24, 10).View(g, nil, ""))

	assert.Len(t, lines, 10)
	assert.Empty(t, lines[9])
}

func TestView_EditorReplacesEditingCell(t *testing.T) {
	g := testModel(t)
	state := func(p grid.Pos) CellState {
		return CellState{Editing: p == grid.Pos{Row: 0, Col: 1}, Focused: p == grid.Pos{Row: 0, Col: 1}}
	}

	lines := plainLines(New("").SetSize(24, 2).View(g, state, "Sharma"))

	assert.Equal(t, "  7│Sharma│ 31│[x]│Pune ", lines[1])
}

func TestView_Empty(t *testing.T) {
	g, err := grid.NewModel([]grid.Column{{ID: "name", Width: 4}}, nil, grid.Pagination{})
	require.NoError(t, err)

	out := ansi.Strip(New("").SetSize(20, 3).View(g, nil, ""))
	assert.Contains(t, out, "No records")
	assert.Empty(t, New("").View(g, nil, ""), "zero size renders nothing")
}

func TestEnsureVisible_ScrollsRows(t *testing.T) {
	g := testModel(t)
	tbl := New("").SetSize(24, 4) // three data lines

	tbl = tbl.EnsureVisible(g, grid.Pos{Row: 5, Col: 1})
	row, _ := tbl.Offsets()
	assert.Equal(t, 3, row)

	lines := plainLines(tbl.View(g, nil, ""))
	assert.Contains(t, lines[1], " 10│Ravi")

	tbl = tbl.EnsureVisible(g, grid.Pos{Row: 0, Col: 1})
	row, _ = tbl.Offsets()
	assert.Equal(t, 0, row)
}

func TestEnsureVisible_ScrollsColumnsKeepingRowNumbersPinned(t *testing.T) {
	g := testModel(t)
	tbl := New("").SetSize(14, 3)

	tbl = tbl.EnsureVisible(g, grid.Pos{Row: 0, Col: 4})
	_, col := tbl.Offsets()
	assert.Equal(t, 2, col, "ok and city now visible")

	lines := plainLines(tbl.View(g, nil, ""))
	assert.Equal(t, "   │ok │city ", lines[0])

	tbl = tbl.EnsureVisible(g, grid.Pos{Row: 0, Col: 1})
	_, col = tbl.Offsets()
	assert.Zero(t, col)
}

func TestHitTest(t *testing.T) {
	g := testModel(t)
	tbl := New("").SetSize(24, 4).SetOrigin(2, 1)

	tests := []struct {
		name   string
		x, y   int
		want   grid.Pos
		inside bool
	}{
		{"row number", 2, 2, grid.Pos{Row: 0, Col: 0}, true},
		{"name cell", 7, 3, grid.Pos{Row: 1, Col: 1}, true},
		{"gutter belongs left", 12, 3, grid.Pos{Row: 1, Col: 1}, true},
		{"last column", 25, 4, grid.Pos{Row: 2, Col: 4}, true},
		{"header line", 7, 1, grid.Pos{}, false},
		{"left of origin", 1, 3, grid.Pos{}, false},
		{"past width", 26, 3, grid.Pos{}, false},
		{"past height", 7, 5, grid.Pos{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := tbl.HitTest(g, tt.x, tt.y)
			assert.Equal(t, tt.inside, ok)
			if tt.inside {
				assert.Equal(t, tt.want, p)
			}
		})
	}
}

func TestHitTest_FollowsScroll(t *testing.T) {
	g := testModel(t)
	tbl := New("").SetSize(14, 3).EnsureVisible(g, grid.Pos{Row: 4, Col: 4})

	p, ok := tbl.HitTest(g, 5, 1)
	require.True(t, ok)
	assert.Equal(t, grid.Pos{Row: 3, Col: 3}, p)
}

func TestCellAt_FallsBackToGeometry(t *testing.T) {
	g := testModel(t)
	tbl := New("fallback-").SetSize(24, 4)

	p, ok := tbl.CellAt(g, tea.MouseMsg{X: 20, Y: 2})
	require.True(t, ok)
	assert.Equal(t, grid.Pos{Row: 1, Col: 4}, p)
}

func TestDisplay(t *testing.T) {
	cb := grid.Column{Kind: grid.KindCheckbox}
	assert.Equal(t, "[x]", Display(cb, "true"))
	assert.Equal(t, "[ ]", Display(cb, "false"))
	assert.Equal(t, "[ ]", Display(cb, ""))
	assert.Equal(t, "maybe", Display(cb, "maybe"))
	assert.Equal(t, "true", Display(grid.Column{Kind: grid.KindText}, "true"))
}

func TestFit(t *testing.T) {
	tests := []struct {
		in    string
		width int
		align lipgloss.Position
		want  string
	}{
		{"ab", 4, lipgloss.Left, "ab  "},
		{"ab", 4, lipgloss.Right, "  ab"},
		{"ab", 5, lipgloss.Center, " ab  "},
		{"abcdef", 4, lipgloss.Left, "abc…"},
		{"abcdef", 1, lipgloss.Left, "…"},
		{"日本語", 5, lipgloss.Left, "日本…"},
		{"x", 0, lipgloss.Left, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, fit(tt.in, tt.width, tt.align), "fit(%q, %d)", tt.in, tt.width)
	}
}
