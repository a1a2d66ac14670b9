package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/zjrosen/gridline/internal/grid"
	"github.com/zjrosen/gridline/internal/log"
)

// ErrNoRows is returned when an update matched nothing.
var ErrNoRows = errors.New("no row matched")

// Store reads and writes one table.
type Store struct {
	db      *sql.DB
	dialect Dialect
	table   string
	key     string
	fields  []string
}

// New returns a store over table, identified by key. fields limits the
// selected columns; empty selects all of them.
func New(db *sql.DB, dialect Dialect, table, key string, fields ...string) *Store {
	return &Store{db: db, dialect: dialect, table: table, key: key, fields: fields}
}

func (s *Store) Dialect() Dialect { return s.dialect }
func (s *Store) Key() string { return s.key }

func (s *Store) selectList() string {
	if len(s.fields) == 0 {
		return "*"
	}
	cols := make([]string, 0, len(s.fields)+1)
	hasKey := false
	for _, f := range s.fields {
		hasKey = hasKey || f == s.key
		cols = append(cols, s.dialect.Quote(f))
	}
	if !hasKey {
		cols = append([]string{s.dialect.Quote(s.key)}, cols...)
	}
	return strings.Join(cols, ", ")
}

func (s *Store) pageQuery() string {
	return fmt.Sprintf("SELECT %s FROM %s ORDER BY %s LIMIT %s OFFSET %s",
		s.selectList(),
		s.dialect.QuoteQualified(s.table),
		s.dialect.Quote(s.key),
		s.dialect.Placeholder(1),
		s.dialect.Placeholder(2),
	)
}

func (s *Store) updateQuery(field string) string {
	return fmt.Sprintf("UPDATE %s SET %s = %s WHERE %s = %s",
		s.dialect.QuoteQualified(s.table),
		s.dialect.Quote(field),
		s.dialect.Placeholder(1),
		s.dialect.Quote(s.key),
		s.dialect.Placeholder(2),
	)
}

// Count returns the number of rows in the table.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	q := "SELECT COUNT(*) FROM " + s.dialect.QuoteQualified(s.table)
	if err := s.db.QueryRowContext(ctx, q).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", s.table, err)
	}
	return n, nil
}

// Page loads one page of records, ordered by key, and the table's total.
func (s *Store) Page(ctx context.Context, p grid.Pagination) ([]grid.Record, int, error) {
	total, err := s.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	p = p.Normalized()

	rows, err := s.db.QueryContext(ctx, s.pageQuery(), p.ItemsPerPage, p.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("select %s: %w", s.table, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, 0, err
	}
	var out []grid.Record
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, 0, fmt.Errorf("scan %s: %w", s.table, err)
		}
		rec := make(grid.Record, len(cols))
		for i, c := range cols {
			if b, ok := vals[i].([]byte); ok {
				vals[i] = string(b)
			}
			rec[c] = vals[i]
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	log.Debug(log.CatDB, "page loaded", "table", s.table, "page", p.CurrentPage, "size", p.ItemsPerPage, "rows", len(out), "total", total)
	return out, total, nil
}

// UpdateField sets one field of the record with the given key.
func (s *Store) UpdateField(ctx context.Context, recordID, field string, value any) error {
	res, err := s.db.ExecContext(ctx, s.updateQuery(field), value, recordID)
	if err != nil {
		return fmt.Errorf("update %s.%s: %w", s.table, field, err)
	}
	return checkAffected(res, recordID)
}

// FieldUpdate is one field write.
type FieldUpdate struct {
	RecordID string
	Field    string
	Value    any
}

// UpdateFields applies updates in order, reusing one prepared statement per
// field. Each update succeeds or fails on its own; the result holds one
// error slot per update.
func (s *Store) UpdateFields(ctx context.Context, updates []FieldUpdate) []error {
	errs := make([]error, len(updates))
	stmts := make(map[string]*sql.Stmt)
	defer func() {
		for _, st := range stmts {
			_ = st.Close()
		}
	}()

	for i, u := range updates {
		if err := ctx.Err(); err != nil {
			errs[i] = err
			continue
		}
		st, ok := stmts[u.Field]
		if !ok {
			var err error
			st, err = s.db.PrepareContext(ctx, s.updateQuery(u.Field))
			if err != nil {
				errs[i] = fmt.Errorf("prepare update %s.%s: %w", s.table, u.Field, err)
				continue
			}
			stmts[u.Field] = st
		}
		res, err := st.ExecContext(ctx, u.Value, u.RecordID)
		if err != nil {
			errs[i] = fmt.Errorf("update %s.%s: %w", s.table, u.Field, err)
			continue
		}
		errs[i] = checkAffected(res, u.RecordID)
	}
	return errs
}

func checkAffected(res sql.Result, recordID string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return nil
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNoRows, recordID)
	}
	return nil
}
