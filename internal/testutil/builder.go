package testutil

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
)

// Builder accumulates people and inserts them in order.
type Builder struct {
	t      *testing.T
	db     *sql.DB
	people []personData
}

// NewBuilder creates a builder for the given test database.
func NewBuilder(t *testing.T, db *sql.DB) *Builder {
	t.Helper()
	return &Builder{t: t, db: db}
}

// WithPerson adds a person with optional configuration.
func (b *Builder) WithPerson(id string, opts ...PersonOption) *Builder {
	p := defaultPerson(id)
	for _, opt := range opts {
		opt(&p)
	}
	b.people = append(b.people, p)
	return b
}

// Build inserts all accumulated rows.
func (b *Builder) Build() {
	b.t.Helper()
	for _, p := range b.people {
		_, err := b.db.Exec(
			`INSERT INTO people (id, name, gender, age, district, active, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			p.id, p.name, p.gender, p.age, p.district, p.active, p.createdAt.Unix(),
		)
		require.NoError(b.t, err)
	}
}
