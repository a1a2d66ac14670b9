package grid

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/mitchellh/hashstructure/v2"

	"github.com/zjrosen/gridline/internal/log"
)

const (
	minAutoWidth = 4
	maxAutoWidth = 40
)

// Adapter turns records into a Model for a fixed column schema.
type Adapter struct {
	columns    []Column
	idField    string
	rowNumbers bool
}

// AdapterOption configures an Adapter.
type AdapterOption func(*Adapter)

// WithIDField names the record field holding the stable record ID.
// Without it records are identified by a content fingerprint.
func WithIDField(field string) AdapterOption {
	return func(a *Adapter) { a.idField = field }
}

// WithRowNumbers prepends the row-number column.
func WithRowNumbers(on bool) AdapterOption {
	return func(a *Adapter) { a.rowNumbers = on }
}

// NewAdapter validates the schema and returns an adapter for it.
func NewAdapter(cols []Column, opts ...AdapterOption) (*Adapter, error) {
	if err := ValidateColumns(cols); err != nil {
		return nil, err
	}
	a := &Adapter{rowNumbers: true}
	for _, opt := range opts {
		opt(a)
	}
	if a.rowNumbers {
		a.columns = append(a.columns, Column{
			ID:       RowNumberColumnID,
			Label:    RowNumberColumnID,
			ReadOnly: true,
			Kind:     KindNumber,
			Header:   true,
		})
	}
	for _, c := range cols {
		if c.Kind == "" {
			c.Kind = KindText
		}
		if c.Kind == KindComposite {
			c.ReadOnly = true
		}
		a.columns = append(a.columns, c)
	}
	return a, nil
}

// Columns returns the mounted schema, row-number column included.
func (a *Adapter) Columns() []Column {
	out := make([]Column, len(a.columns))
	copy(out, a.columns)
	return out
}

// Build maps records for one page into a model. Columns without an
// explicit width are sized to their content.
func (a *Adapter) Build(records []Record, page Pagination) (*Model, error) {
	rows := make([]Row, len(records))
	for i, rec := range records {
		values := make(map[string]string, len(a.columns))
		for _, c := range a.columns {
			if c.Header {
				continue
			}
			values[c.ID] = CanonicalValue(rec, c)
		}
		id, err := a.recordID(rec)
		if err != nil {
			return nil, fmt.Errorf("identifying record %d: %w", i, err)
		}
		rows[i] = Row{Index: i, RecordID: id, Values: values}
	}

	cols := a.Columns()
	page = page.Normalized()
	for i := range cols {
		if cols[i].Width > 0 {
			continue
		}
		cols[i].Width = autoWidth(cols[i], rows, page)
	}

	m, err := NewModel(cols, rows, page)
	if err != nil {
		return nil, err
	}
	log.Debug(log.CatGrid, "model built", "rows", len(rows), "columns", len(cols), "page", page.CurrentPage)
	return m, nil
}

func (a *Adapter) recordID(rec Record) (string, error) {
	if a.idField != "" {
		if v, ok := rec[a.idField]; ok && v != nil {
			return Canonical(v), nil
		}
	}
	return Fingerprint(rec)
}

// Fingerprint returns a content hash identifying a record without an ID field.
func Fingerprint(rec Record) (string, error) {
	h, err := hashstructure.Hash(map[string]any(rec), hashstructure.FormatV2, nil)
	if err != nil {
		return "", fmt.Errorf("hashing record: %w", err)
	}
	return fmt.Sprintf("h%016x", h), nil
}

func autoWidth(c Column, rows []Row, page Pagination) int {
	w := runewidth.StringWidth(c.Title())
	if c.Header {
		last := page.DisplayOrdinal(max(len(rows)-1, 0))
		w = max(w, len(fmt.Sprint(last)))
		return max(w, 3)
	}
	for _, r := range rows {
		w = max(w, runewidth.StringWidth(r.Values[c.ID]))
	}
	return min(max(w, minAutoWidth), maxAutoWidth)
}
