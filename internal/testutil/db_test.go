package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTestDB_CreatesSchema(t *testing.T) {
	db := NewTestDB(t)

	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name = 'people'`).Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestNewTestDB_Isolated(t *testing.T) {
	db1 := NewTestDB(t)
	db2 := NewTestDB(t)

	NewBuilder(t, db1).WithPerson("only-in-1").Build()

	var count int
	require.NoError(t, db2.QueryRow(`SELECT COUNT(*) FROM people`).Scan(&count))
	require.Zero(t, count)
}
