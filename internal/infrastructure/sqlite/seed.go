package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/zjrosen/gridline/internal/log"
)

var (
	seedFirst     = []string{"Asha", "Vikram", "Meena", "Ravi", "Zoya", "Arjun", "Priya", "Kabir", "Nisha", "Dev"}
	seedLast      = []string{"Kumar", "Sharma", "Iyer", "Khan", "Das", "Patel", "Rao"}
	seedDistricts = []string{"Pune", "Surat", "Agra", "Kota", "Jaipur", "Nagpur", "Indore", "Mysuru"}
	seedGenders   = []string{"F", "M", "X"}
)

// Seed inserts n demo people. Values cycle through fixed lists so the same
// n always yields the same names; only the IDs are random.
func (db *DB) Seed(ctx context.Context, n int) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO people (id, name, gender, age, district, active, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare seed: %w", err)
	}
	defer stmt.Close()

	now := time.Now().Unix()
	for i := range n {
		name := seedFirst[i%len(seedFirst)] + " " + seedLast[(i/len(seedFirst))%len(seedLast)]
		_, err := stmt.ExecContext(ctx,
			uuid.NewString(),
			name,
			seedGenders[i%len(seedGenders)],
			18+(i*7)%60,
			seedDistricts[i%len(seedDistricts)],
			i%5 != 0,
			now,
		)
		if err != nil {
			return fmt.Errorf("seed row %d: %w", i, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}
	log.Info(log.CatDB, "seeded demo data", "rows", n)
	return nil
}

// Count returns the number of people.
func (db *DB) Count(ctx context.Context) (int, error) {
	var n int
	err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM people`).Scan(&n)
	return n, err
}
