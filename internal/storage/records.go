// ABOUTME: Shared record persistence helpers for the SQLite backend.
// ABOUTME: Each row carries indexed query columns plus the full record as JSON.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// insertRecord inserts a row with its index columns, assigns the
// autoincrement id through finalize, and writes the finished JSON document.
// finalize receives the new id, sets it on the model, and returns the
// marshaled record. The two statements run in one transaction so a row
// never persists without its document.
func (d *DB) insertRecord(table string, cols []string, vals []any, finalize func(id int64) ([]byte, error)) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("begin insert into %s: %w", table, err)
	}
	defer func() { _ = tx.Rollback() }()

	colList := "data"
	if len(cols) > 0 {
		colList = strings.Join(cols, ", ") + ", data"
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cols)+1), ", ")
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, colList, placeholders)

	res, err := tx.Exec(query, append(vals, "{}")...)
	if err != nil {
		return fmt.Errorf("insert into %s: %w", table, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert into %s: %w", table, err)
	}

	data, err := finalize(id)
	if err != nil {
		return fmt.Errorf("marshal %s record: %w", table, err)
	}
	if _, err := tx.Exec(fmt.Sprintf("UPDATE %s SET data = ? WHERE id = ?", table), data, id); err != nil {
		return fmt.Errorf("store %s record: %w", table, err)
	}

	return tx.Commit()
}

// updateRecord rewrites a record's index columns and JSON document.
// Returns ErrNotFound when the id does not exist.
func (d *DB) updateRecord(table string, id int64, cols []string, vals []any, data []byte) error {
	assignments := make([]string, 0, len(cols)+1)
	for _, c := range cols {
		assignments = append(assignments, c+" = ?")
	}
	assignments = append(assignments, "data = ?")

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", table, strings.Join(assignments, ", "))
	res, err := d.db.Exec(query, append(append(vals, data), id)...)
	if err != nil {
		return fmt.Errorf("update %s %d: %w", table, id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update %s %d: %w", table, id, err)
	}
	if affected == 0 {
		return fmt.Errorf("update %s %d: %w", table, id, ErrNotFound)
	}
	return nil
}

// deleteRecord removes a record by id. Returns ErrNotFound when absent.
func (d *DB) deleteRecord(table string, id int64) error {
	res, err := d.db.Exec(fmt.Sprintf("DELETE FROM %s WHERE id = ?", table), id)
	if err != nil {
		return fmt.Errorf("delete %s %d: %w", table, id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %s %d: %w", table, id, err)
	}
	if affected == 0 {
		return fmt.Errorf("delete %s %d: %w", table, id, ErrNotFound)
	}
	return nil
}

// countRows counts records in a collection.
func (d *DB) countRows(table string) (int, error) {
	var n int
	if err := d.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}

// getRecord loads a single record document by id.
func getRecord[T any](d *DB, table string, id int64) (*T, error) {
	var data []byte
	err := d.db.QueryRow(fmt.Sprintf("SELECT data FROM %s WHERE id = ?", table), id).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("get %s %d: %w", table, id, ErrNotFound)
		}
		return nil, fmt.Errorf("get %s %d: %w", table, id, err)
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("decode %s %d: %w", table, id, err)
	}
	return &v, nil
}

// queryRecords runs a query selecting the data column and decodes each row.
func queryRecords[T any](d *DB, query string, args ...any) ([]T, error) {
	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		var v T
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("decode record: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
