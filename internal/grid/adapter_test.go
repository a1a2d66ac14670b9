package grid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanonicalValue(t *testing.T) {
	rec := Record{"name": "Asha", "age": 34, "score": 7.25, "ok": "1", "gender": "F", "district": "Pune", "none": nil}

	tests := []struct {
		name string
		col  Column
		want string
	}{
		{"string", Column{ID: "name"}, "Asha"},
		{"int", Column{ID: "age", Kind: KindNumber}, "34"},
		{"float", Column{ID: "score", Kind: KindNumber}, "7.25"},
		{"field alias", Column{ID: "n", Field: "name"}, "Asha"},
		{"checkbox normalizes", Column{ID: "ok", Kind: KindCheckbox}, "true"},
		{"missing field", Column{ID: "missing"}, ""},
		{"nil value", Column{ID: "none"}, ""},
		{"composite", Column{ID: "p", Kind: KindComposite, Parts: []string{"gender", "district"}}, "F / Pune"},
		{"composite skips empty", Column{ID: "p", Kind: KindComposite, Parts: []string{"none", "district"}}, "Pune"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, CanonicalValue(rec, tt.col))
			require.Equal(t, tt.want, CanonicalValue(rec, tt.col), "must be deterministic")
		})
	}
}

func TestAdapter_Build(t *testing.T) {
	a, err := NewAdapter(peopleColumns(), WithIDField("id"))
	require.NoError(t, err)

	m, err := a.Build(peopleRecords(), Pagination{CurrentPage: 2, ItemsPerPage: 3, TotalItems: 9})
	require.NoError(t, err)

	require.Equal(t, 3, m.RowCount())
	require.Equal(t, 6, m.ColCount(), "row-number column is prepended")

	header, _ := m.Column(0)
	require.True(t, header.Header)
	require.False(t, header.Editable())
	require.Equal(t, "4", m.ValueAt(Pos{Row: 0, Col: 0}))
	require.Equal(t, "6", m.ValueAt(Pos{Row: 2, Col: 0}))

	v, ok := m.Value(Coord{Row: 1, Col: "age"})
	require.True(t, ok)
	require.Equal(t, "41.5", v)

	v, _ = m.Value(Coord{Row: 1, Col: "verified"})
	require.Equal(t, "false", v)

	v, _ = m.Value(Coord{Row: 0, Col: "profile"})
	require.Equal(t, "F / Pune", v)

	require.Equal(t, "p2", m.RecordID(1))
	require.Equal(t, []int{1, 2, 3, 4, 5}, m.DataColumns())
	require.Equal(t, 1, m.FirstDataColumn())

	profile, _ := m.ColumnIndex("profile")
	require.False(t, m.Editable(Pos{Row: 0, Col: profile}), "composite columns are read-only")
}

func TestAdapter_AutoWidth(t *testing.T) {
	a, err := NewAdapter([]Column{{ID: "name", Label: "Name"}, {ID: "x", Width: 12}})
	require.NoError(t, err)

	m, err := a.Build([]Record{{"name": "Ab"}, {"name": "漢字テキスト"}}, Pagination{})
	require.NoError(t, err)

	name, _ := m.Column(1)
	require.Equal(t, 12, name.Width, "wide runes count double")
	fixed, _ := m.Column(2)
	require.Equal(t, 12, fixed.Width)
}

func TestAdapter_FingerprintWithoutIDField(t *testing.T) {
	a, err := NewAdapter(peopleColumns(), WithRowNumbers(false))
	require.NoError(t, err)

	records := peopleRecords()
	m1, err := a.Build(records, Pagination{})
	require.NoError(t, err)
	m2, err := a.Build(records, Pagination{})
	require.NoError(t, err)

	require.Equal(t, 5, m1.ColCount())
	require.NotEmpty(t, m1.RecordID(0))
	require.Equal(t, m1.RecordID(0), m2.RecordID(0), "fingerprints are stable")
	require.NotEqual(t, m1.RecordID(0), m1.RecordID(1))
}

func TestValidateColumns(t *testing.T) {
	tests := []struct {
		name string
		cols []Column
		err  error
	}{
		{"empty", nil, ErrInvalidColumn},
		{"missing id", []Column{{Label: "x"}}, ErrInvalidColumn},
		{"reserved id", []Column{{ID: RowNumberColumnID}}, ErrInvalidColumn},
		{"duplicate", []Column{{ID: "a"}, {ID: "a"}}, ErrDuplicateColumn},
		{"unknown kind", []Column{{ID: "a", Kind: "date"}}, ErrInvalidColumn},
		{"composite without parts", []Column{{ID: "a", Kind: KindComposite}}, ErrInvalidColumn},
		{"status without options", []Column{{ID: "a", Kind: KindStatus}}, ErrInvalidColumn},
		{"valid", peopleColumns(), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateColumns(tt.cols)
			if tt.err == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.err)
		})
	}
}
