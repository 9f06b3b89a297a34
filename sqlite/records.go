package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fwojciec/seoscan"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ seoscan.RecordStore = (*RecordStore)(nil)

// RecordStore implements seoscan.RecordStore using SQLite.
// Records are keyed by name; saving a name that exists replaces it.
type RecordStore struct {
	db *DB

	// Now returns the save time. Defaults to time.Now.
	Now func() time.Time
}

// NewRecordStore creates a new RecordStore.
func NewRecordStore(db *DB) *RecordStore {
	return &RecordStore{db: db, Now: time.Now}
}

// SaveRecord stores the analysis, replacing any record with the same name
// in a single transaction.
func (s *RecordStore) SaveRecord(ctx context.Context, a *seoscan.PageAnalysis) (string, error) {
	name, err := seoscan.RecordName(a.URL)
	if err != nil {
		return "", err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Entries go with the record through ON DELETE CASCADE.
	if _, err := tx.ExecContext(ctx, `DELETE FROM records WHERE name = ?`, name); err != nil {
		return "", fmt.Errorf("delete record %s: %w", name, err)
	}

	id := uuid.New().String()
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO records (id, name, url, created_at)
		VALUES (?, ?, ?, ?)
	`, id, name, a.URL, s.Now().UTC().Format(time.RFC3339)); err != nil {
		return "", fmt.Errorf("insert record %s: %w", name, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO record_entries (record_id, position, metric, value, details)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return "", err
	}
	defer stmt.Close()

	for i, e := range a.Entries() {
		if _, err := stmt.ExecContext(ctx, id, i, e.Metric, e.Value, e.Detail); err != nil {
			return "", fmt.Errorf("insert entry %s/%s: %w", name, e.Metric, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit record %s: %w", name, err)
	}
	return name, nil
}

// FindRecords loads every record ordered by name.
func (s *RecordStore) FindRecords(ctx context.Context) ([]*seoscan.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.name, e.metric, e.value, e.details
		FROM records r
		LEFT JOIN record_entries e ON e.record_id = r.id
		ORDER BY r.name, e.position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var (
		records []*seoscan.Record
		current *seoscan.Record
		lastID  string
	)
	for rows.Next() {
		var (
			id, name               string
			metric, value, details sql.NullString
		)
		if err := rows.Scan(&id, &name, &metric, &value, &details); err != nil {
			return nil, err
		}
		if current == nil || id != lastID {
			current = &seoscan.Record{Name: name}
			records = append(records, current)
			lastID = id
		}
		if metric.Valid {
			current.Entries = append(current.Entries, seoscan.Entry{
				Metric: metric.String,
				Value:  value.String,
				Detail: details.String,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, seoscan.Errorf(seoscan.ENOTFOUND, "no records found")
	}
	return records, nil
}
