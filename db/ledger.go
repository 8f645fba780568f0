package db

import (
	"fmt"

	"github.com/jselby/budgetlink/pkg/models"
)

// GetCategories retrieves all spending categories
func (db *DB) GetCategories() ([]models.Category, error) {
	rows, err := db.Query(`SELECT id, name FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var category models.Category
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}
	return categories, nil
}

// AddCategory creates a new spending category
func (db *DB) AddCategory(name string) (int64, error) {
	query := `
	INSERT INTO categories (name) VALUES (?)
	ON CONFLICT(name) DO UPDATE SET name = excluded.name
	RETURNING id
	`

	var id int64
	if err := db.QueryRow(query, name).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to add category: %w", err)
	}
	return id, nil
}

// GetPayees retrieves all payees
func (db *DB) GetPayees() ([]models.Payee, error) {
	rows, err := db.Query(`SELECT id, name FROM payees ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query payees: %w", err)
	}
	defer rows.Close()

	var payees []models.Payee
	for rows.Next() {
		var payee models.Payee
		if err := rows.Scan(&payee.ID, &payee.Name); err != nil {
			return nil, fmt.Errorf("failed to scan payee: %w", err)
		}
		payees = append(payees, payee)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payees: %w", err)
	}
	return payees, nil
}

// AddPayee creates a new payee
func (db *DB) AddPayee(name string) (int64, error) {
	query := `
	INSERT INTO payees (name) VALUES (?)
	ON CONFLICT(name) DO UPDATE SET name = excluded.name
	RETURNING id
	`

	var id int64
	if err := db.QueryRow(query, name).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to add payee: %w", err)
	}
	return id, nil
}

// GetLedgerTransactions retrieves transactions for a record; pass zero
// for all records
func (db *DB) GetLedgerTransactions(recordID int64) ([]*models.LedgerTransaction, error) {
	query := `
	SELECT id, record_id, category_id, payee_id, amount_value, amount_currency, transaction_date, notes
	FROM transactions
	`
	args := []any{}
	if recordID != 0 {
		query += ` WHERE record_id = ?`
		args = append(args, recordID)
	}
	query += ` ORDER BY transaction_date DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var transactions []*models.LedgerTransaction
	for rows.Next() {
		tx := &models.LedgerTransaction{}
		err := rows.Scan(
			&tx.ID,
			&tx.RecordID,
			&tx.CategoryID,
			&tx.PayeeID,
			&tx.Amount.Value,
			&tx.Amount.Currency,
			&tx.Date,
			&tx.Notes,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}
	return transactions, nil
}

// AddLedgerTransaction saves a transaction and returns its ID
func (db *DB) AddLedgerTransaction(tx *models.LedgerTransaction) (int64, error) {
	query := `
	INSERT INTO transactions (record_id, category_id, payee_id, amount_value, amount_currency, transaction_date, notes)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := db.Exec(query,
		tx.RecordID,
		tx.CategoryID,
		tx.PayeeID,
		tx.Amount.Value,
		tx.Amount.Currency,
		tx.Date,
		tx.Notes,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to add transaction: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get transaction id: %w", err)
	}
	tx.ID = id
	return id, nil
}
