// SPDX-License-Identifier: MIT

package gas

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// MemoryDSN opens a private in-memory database.
const MemoryDSN = ":memory:"

// Store is a PropertyLookup and InteractionLookup backed by SQLite.
// Records are matched in insertion order, so the first imported record
// that matches an identifier wins, like Catalog. Safe for concurrent use.
type Store struct {
	db *sql.DB
}

var (
	_ PropertyLookup    = (*Store)(nil)
	_ InteractionLookup = (*Store)(nil)
)

// Open opens (or creates) the database at path and applies the schema.
// Use MemoryDSN for a throwaway database.
func Open(path string) (*Store, error) {
	dsn := path
	if path != MemoryDSN {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("Open: create directory: %w", err)
		}
		dsn = path + "?_journal_mode=WAL&_synchronous=NORMAL"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("Open: %w", err)
	}
	// one connection keeps every query on the same in-memory database
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err = s.initSchema(); err != nil {
		db.Close()

		return nil, fmt.Errorf("Open: initialize schema: %w", err)
	}

	return s, nil
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS components (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		casn TEXT NOT NULL,
		tc REAL NOT NULL,
		pc REAL NOT NULL,
		vc REAL NOT NULL,
		mw REAL NOT NULL,
		omega REAL NOT NULL,
		cp_a REAL NOT NULL,
		cp_b REAL NOT NULL,
		cp_c REAL NOT NULL,
		cp_d REAL NOT NULL
	);

	CREATE TABLE IF NOT EXISTS interactions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		casn1 TEXT NOT NULL,
		casn2 TEXT NOT NULL,
		name1 TEXT NOT NULL,
		name2 TEXT NOT NULL,
		k12 REAL NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_components_name ON components(name);
	CREATE INDEX IF NOT EXISTS idx_components_casn ON components(casn);
	CREATE INDEX IF NOT EXISTS idx_interactions_casn ON interactions(casn1, casn2);
	CREATE INDEX IF NOT EXISTS idx_interactions_name ON interactions(name1, name2);
	`
	_, err := s.db.Exec(schema)

	return err
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// ImportComponents appends records in one transaction and returns how many
// were written. Nothing is written if any insert fails.
func (s *Store) ImportComponents(ctx context.Context, cs []Component) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("ImportComponents: begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO components (name, casn, tc, pc, vc, mw, omega, cp_a, cp_b, cp_c, cp_d)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("ImportComponents: prepare: %w", err)
	}
	defer stmt.Close()

	for i, c := range cs {
		h := c.HeatCapacity
		if _, err = stmt.ExecContext(ctx, c.Name, c.CASN, c.CriticalTemperature, c.CriticalPressure,
			c.CriticalVolume, c.MolecularWeight, c.AcentricFactor, h.A, h.B, h.C, h.D); err != nil {
			return 0, fmt.Errorf("ImportComponents: record %d (%q): %w", i, c.Name, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("ImportComponents: commit: %w", err)
	}

	return len(cs), nil
}

// ImportInteractions appends records in one transaction and returns how
// many were written.
func (s *Store) ImportInteractions(ctx context.Context, ips []Interaction) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("ImportInteractions: begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO interactions (casn1, casn2, name1, name2, k12)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("ImportInteractions: prepare: %w", err)
	}
	defer stmt.Close()

	for i, ip := range ips {
		if _, err = stmt.ExecContext(ctx, ip.CASN1, ip.CASN2, ip.Name1, ip.Name2, ip.K12); err != nil {
			return 0, fmt.Errorf("ImportInteractions: record %d: %w", i, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("ImportInteractions: commit: %w", err)
	}

	return len(ips), nil
}

// Import writes every record of c and returns the component and
// interaction counts.
func (s *Store) Import(ctx context.Context, c *Catalog) (components, interactions int, err error) {
	if components, err = s.ImportComponents(ctx, c.Components()); err != nil {
		return 0, 0, fmt.Errorf("Import: %w", err)
	}
	if interactions, err = s.ImportInteractions(ctx, c.Interactions()); err != nil {
		return components, 0, fmt.Errorf("Import: %w", err)
	}

	return components, interactions, nil
}

// ComponentContext returns the first component whose name or CAS number
// equals id.
func (s *Store) ComponentContext(ctx context.Context, id string) (Component, error) {
	if id == "" {
		return Component{}, fmt.Errorf("component %q: %w", id, ErrNotFound)
	}

	var c Component
	h := &c.HeatCapacity
	err := s.db.QueryRowContext(ctx, `
		SELECT name, casn, tc, pc, vc, mw, omega, cp_a, cp_b, cp_c, cp_d
		FROM components
		WHERE name = ? OR casn = ?
		ORDER BY id
		LIMIT 1
	`, id, id).Scan(&c.Name, &c.CASN, &c.CriticalTemperature, &c.CriticalPressure,
		&c.CriticalVolume, &c.MolecularWeight, &c.AcentricFactor, &h.A, &h.B, &h.C, &h.D)
	if errors.Is(err, sql.ErrNoRows) {
		return Component{}, fmt.Errorf("component %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return Component{}, fmt.Errorf("component %q: %w", id, err)
	}

	return c, nil
}

// InteractionContext returns k12 of the first record matching the unordered
// pair {id1, id2} by CAS numbers or by names.
func (s *Store) InteractionContext(ctx context.Context, id1, id2 string) (float64, error) {
	if id1 == "" || id2 == "" {
		return 0, fmt.Errorf("interaction %q/%q: %w", id1, id2, ErrNotFound)
	}

	var k float64
	err := s.db.QueryRowContext(ctx, `
		SELECT k12
		FROM interactions
		WHERE (casn1 = ?1 AND casn2 = ?2) OR (casn1 = ?2 AND casn2 = ?1)
		   OR (name1 = ?1 AND name2 = ?2) OR (name1 = ?2 AND name2 = ?1)
		ORDER BY id
		LIMIT 1
	`, id1, id2).Scan(&k)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("interaction %q/%q: %w", id1, id2, ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("interaction %q/%q: %w", id1, id2, err)
	}

	return k, nil
}

// Component implements PropertyLookup with a background context.
func (s *Store) Component(id string) (Component, error) {
	return s.ComponentContext(context.Background(), id)
}

// Interaction implements InteractionLookup with a background context.
func (s *Store) Interaction(id1, id2 string) (float64, error) {
	return s.InteractionContext(context.Background(), id1, id2)
}

// Counts returns the number of stored component and interaction records.
func (s *Store) Counts(ctx context.Context) (components, interactions int, err error) {
	if err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM components`).Scan(&components); err != nil {
		return 0, 0, fmt.Errorf("Counts: %w", err)
	}
	if err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM interactions`).Scan(&interactions); err != nil {
		return 0, 0, fmt.Errorf("Counts: %w", err)
	}

	return components, interactions, nil
}
