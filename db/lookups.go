package db

import (
	"fmt"

	"github.com/jselby/budgetlink/pkg/models"
)

// GetTypeLookups retrieves the subtype lookup list for a category
func (db *DB) GetTypeLookups(category models.RecordCategory) ([]models.TypeLookup, error) {
	query := `SELECT id, category, name FROM type_lookups WHERE category = ? ORDER BY id`

	rows, err := db.Query(query, category)
	if err != nil {
		return nil, fmt.Errorf("failed to query type lookups: %w", err)
	}
	defer rows.Close()

	var lookups []models.TypeLookup
	for rows.Next() {
		var lookup models.TypeLookup
		if err := rows.Scan(&lookup.ID, &lookup.Category, &lookup.Name); err != nil {
			return nil, fmt.Errorf("failed to scan type lookup: %w", err)
		}
		lookups = append(lookups, lookup)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating type lookups: %w", err)
	}
	return lookups, nil
}

// AddTypeLookup creates a new subtype entry for a category. Existing
// names are reused, supporting "type as new value" creation.
func (db *DB) AddTypeLookup(category models.RecordCategory, name string) (int64, error) {
	query := `
	INSERT INTO type_lookups (category, name) VALUES (?, ?)
	ON CONFLICT(category, name) DO UPDATE SET name = excluded.name
	RETURNING id
	`

	var id int64
	if err := db.QueryRow(query, category, name).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to add type lookup: %w", err)
	}
	return id, nil
}

// GetBanks retrieves all banks
func (db *DB) GetBanks() ([]models.Bank, error) {
	rows, err := db.Query(`SELECT id, name FROM banks ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query banks: %w", err)
	}
	defer rows.Close()

	var banks []models.Bank
	for rows.Next() {
		var bank models.Bank
		if err := rows.Scan(&bank.ID, &bank.Name); err != nil {
			return nil, fmt.Errorf("failed to scan bank: %w", err)
		}
		banks = append(banks, bank)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating banks: %w", err)
	}
	return banks, nil
}

// AddBank creates a new bank, reusing an existing one with the same name
func (db *DB) AddBank(name string) (int64, error) {
	query := `
	INSERT INTO banks (name) VALUES (?)
	ON CONFLICT(name) DO UPDATE SET name = excluded.name
	RETURNING id
	`

	var id int64
	if err := db.QueryRow(query, name).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to add bank: %w", err)
	}
	return id, nil
}
