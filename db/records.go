package db

import (
	"database/sql"
	"fmt"

	"github.com/jselby/budgetlink/pkg/models"
)

const recordColumns = `
	id, category, name, type_id, bank_id, notes, tier,
	balance_value, balance_currency,
	cleared_balance_value, cleared_balance_currency,
	on_budget, closed, last_reconciled_at
`

// SaveRecord inserts a new local record and returns its ID
func (db *DB) SaveRecord(r *models.LocalRecord) (int64, error) {
	query := `
	INSERT INTO records (
		category, name, type_id, bank_id, notes, tier,
		balance_value, balance_currency,
		cleared_balance_value, cleared_balance_currency,
		on_budget, closed, last_reconciled_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := db.Exec(query,
		r.Category,
		r.Name,
		r.TypeID,
		r.BankID,
		r.Notes,
		r.Tier,
		r.Mirrored.Balance.Value,
		r.Mirrored.Balance.Currency,
		r.Mirrored.ClearedBalance.Value,
		r.Mirrored.ClearedBalance.Currency,
		r.Mirrored.OnBudget,
		r.Mirrored.Closed,
		r.Mirrored.LastReconciledAt,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get record id: %w", err)
	}
	r.ID = id
	return id, nil
}

// UpdateRecord updates the user-editable fields of an existing record.
// Mirrored fields are written through UpdateMirroredFields instead.
func (db *DB) UpdateRecord(r *models.LocalRecord) error {
	query := `
	UPDATE records
	SET name = ?, type_id = ?, bank_id = ?, notes = ?, tier = ?
	WHERE id = ?
	`

	result, err := db.Exec(query, r.Name, r.TypeID, r.BankID, r.Notes, r.Tier, r.ID)
	if err != nil {
		return fmt.Errorf("failed to update record: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("no record found with id: %d", r.ID)
	}
	return nil
}

// UpdateMirroredFields overwrites the externally-owned fields of a
// record in a single statement, so a failed sync never applies a
// partial set.
func (db *DB) UpdateMirroredFields(recordID int64, m models.MirroredFields) error {
	query := `
	UPDATE records
	SET balance_value = ?, balance_currency = ?,
		cleared_balance_value = ?, cleared_balance_currency = ?,
		on_budget = ?, closed = ?, last_reconciled_at = ?
	WHERE id = ?
	`

	result, err := db.Exec(query,
		m.Balance.Value,
		m.Balance.Currency,
		m.ClearedBalance.Value,
		m.ClearedBalance.Currency,
		m.OnBudget,
		m.Closed,
		m.LastReconciledAt,
		recordID,
	)
	if err != nil {
		return fmt.Errorf("failed to update mirrored fields: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("no record found with id: %d", recordID)
	}
	return nil
}

func scanRecord(scan func(dest ...any) error) (*models.LocalRecord, error) {
	r := &models.LocalRecord{}
	err := scan(
		&r.ID,
		&r.Category,
		&r.Name,
		&r.TypeID,
		&r.BankID,
		&r.Notes,
		&r.Tier,
		&r.Mirrored.Balance.Value,
		&r.Mirrored.Balance.Currency,
		&r.Mirrored.ClearedBalance.Value,
		&r.Mirrored.ClearedBalance.Currency,
		&r.Mirrored.OnBudget,
		&r.Mirrored.Closed,
		&r.Mirrored.LastReconciledAt,
	)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// GetRecord retrieves a record by its ID, returning nil when absent
func (db *DB) GetRecord(id int64) (*models.LocalRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM records WHERE id = ? LIMIT 1`

	r, err := scanRecord(db.QueryRow(query, id).Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get record: %w", err)
	}
	return r, nil
}

// GetRecords retrieves all records of a category; pass an empty
// category for every record
func (db *DB) GetRecords(category models.RecordCategory) ([]*models.LocalRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM records`
	args := []any{}
	if category != "" {
		query += ` WHERE category = ?`
		args = append(args, category)
	}
	query += ` ORDER BY name`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var records []*models.LocalRecord
	for rows.Next() {
		r, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating records: %w", err)
	}
	return records, nil
}

// RemoveRecord deletes a record together with any link referencing it,
// so deleting a linked record never leaves an orphan link behind.
func (db *DB) RemoveRecord(id int64) error {
	record, err := db.GetRecord(id)
	if err != nil {
		return err
	}
	if record == nil {
		return fmt.Errorf("no record found with id: %d", id)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM links WHERE core_model = ? AND core_id = ?`,
		record.Category, id); err != nil {
		return fmt.Errorf("failed to remove record link: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM records WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to remove record: %w", err)
	}
	return tx.Commit()
}
