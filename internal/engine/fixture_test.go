package engine

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/gridline/internal/cachemanager"
	"github.com/zjrosen/gridline/internal/clipboard"
	"github.com/zjrosen/gridline/internal/flags"
	"github.com/zjrosen/gridline/internal/grid"
	"github.com/zjrosen/gridline/internal/mocks"
	"github.com/zjrosen/gridline/internal/pubsub"
)

var base = time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

// Column indexes of the fixture grid; 0 is the row-number column.
const (
	colName = iota + 1
	colGender
	colAge
	colDistrict
	colProfile
)

func peopleSchema() []grid.Column {
	return []grid.Column{
		{ID: "name", Label: "Name"},
		{ID: "gender", Label: "Gender", Kind: grid.KindStatus, Options: []string{"F", "M", "X"}},
		{ID: "age", Label: "Age", Kind: grid.KindNumber},
		{ID: "district", Label: "District"},
		{ID: "profile", Label: "Profile", Kind: grid.KindComposite, Parts: []string{"gender", "district"}},
	}
}

func peopleRecords() []grid.Record {
	return []grid.Record{
		{"id": "p1", "name": "Asha", "gender": "F", "age": 31, "district": "Pune"},
		{"id": "p2", "name": "Kumar", "gender": "M", "age": 44, "district": "Surat"},
		{"id": "p3", "name": "Meena", "gender": "F", "age": 27, "district": "Agra"},
		{"id": "p4", "name": "Ravi", "gender": "M", "age": 52, "district": "Kota"},
		{"id": "p5", "name": "Zoya", "gender": "F", "age": 38, "district": "Pune"},
	}
}

func buildModel(t *testing.T, records []grid.Record, page grid.Pagination) *grid.Model {
	t.Helper()
	a, err := grid.NewAdapter(peopleSchema(), grid.WithIDField("id"))
	require.NoError(t, err)
	m, err := a.Build(records, page)
	require.NoError(t, err)
	return m
}

type fixture struct {
	e       *Engine
	gw      *mocks.MockGateway
	clip    clipboard.Channel
	clock   *mocks.MockClock
	now     time.Time
	events  *pubsub.Broker[Event]
	flagSet map[string]bool
}

type fixtureOption func(*fixture)

func withFlag(name string, on bool) fixtureOption {
	return func(f *fixture) { f.flagSet[name] = on }
}

func newFixture(t *testing.T, opts ...fixtureOption) *fixture {
	t.Helper()
	f := &fixture{
		gw:      mocks.NewMockGateway(t),
		clock:   mocks.NewMockClock(t),
		now:     base,
		events:  pubsub.NewBroker[Event](),
		flagSet: map[string]bool{},
	}
	for _, opt := range opts {
		opt(f)
	}
	f.clock.EXPECT().Now().RunAndReturn(func() time.Time { return f.now }).Maybe()
	f.clip = clipboard.NewFallback(
		cachemanager.NewInMemoryCacheManager[string, string]("clipboard", cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval),
		clipboard.DefaultKey,
	)

	n := 0
	f.e = New(Options{
		Gateway:   f.gw,
		Clipboard: f.clip,
		Clock:     f.clock,
		Events:    f.events,
		Flags:     flags.New(f.flagSet),
		NewID: func() string {
			n++
			return fmt.Sprintf("t%d", n)
		},
	})
	f.e.Load(buildModel(t, peopleRecords(), grid.Pagination{CurrentPage: 1, ItemsPerPage: 5, TotalItems: 5}), nil)
	t.Cleanup(f.events.Close)
	return f
}

func pos(r, c int) grid.Pos { return grid.Pos{Row: r, Col: c} }

func (f *fixture) focus(p grid.Pos) { f.e.Selection().SetFocus(p) }

func (f *fixture) value(t *testing.T, row int, col string) string {
	t.Helper()
	v, ok := f.e.Model().Value(grid.Coord{Row: row, Col: col})
	require.True(t, ok)
	return v
}
