package db

import (
	"database/sql"
	"fmt"

	"github.com/jselby/budgetlink/pkg/models"
)

// GetCrossReferences retrieves the stored cross-reference list for a
// record type, ordered by insertion so first-match-wins is stable.
func (db *DB) GetCrossReferences(recordType string) ([]models.CrossReference, error) {
	query := `
	SELECT id, record_type, source_value, display_value, column_set, enabled
	FROM cross_references
	WHERE record_type = ?
	ORDER BY id
	`

	rows, err := db.Query(query, recordType)
	if err != nil {
		return nil, fmt.Errorf("failed to query cross references: %w", err)
	}
	defer rows.Close()

	var refs []models.CrossReference
	for rows.Next() {
		var ref models.CrossReference
		err := rows.Scan(&ref.ID, &ref.RecordType, &ref.SourceValue, &ref.DisplayValue, &ref.Column, &ref.Enabled)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cross reference: %w", err)
		}
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cross references: %w", err)
	}
	return refs, nil
}

// ReplaceCrossReferences swaps the full stored list for a record type
// in one transaction; the save step is read/replace, never per-edit.
func (db *DB) ReplaceCrossReferences(recordType string, refs []models.CrossReference) error {
	return db.inTransaction(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM cross_references WHERE record_type = ?`, recordType); err != nil {
			return fmt.Errorf("failed to clear cross references: %w", err)
		}
		for _, ref := range refs {
			_, err := tx.Exec(`
				INSERT INTO cross_references (record_type, source_value, display_value, column_set, enabled)
				VALUES (?, ?, ?, ?, ?)`,
				recordType, ref.SourceValue, ref.DisplayValue, ref.Column, ref.Enabled)
			if err != nil {
				return fmt.Errorf("failed to insert cross reference: %w", err)
			}
		}
		return nil
	})
}

// GetAccountTypeMappings retrieves all stored account type mappings
func (db *DB) GetAccountTypeMappings() ([]models.AccountTypeMapping, error) {
	query := `
	SELECT id, ynab_type, category, default_subtype_id, enabled
	FROM account_type_mappings
	ORDER BY id
	`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query account type mappings: %w", err)
	}
	defer rows.Close()

	var mappings []models.AccountTypeMapping
	for rows.Next() {
		var mapping models.AccountTypeMapping
		err := rows.Scan(&mapping.ID, &mapping.YNABType, &mapping.Category, &mapping.DefaultSubtypeID, &mapping.Enabled)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account type mapping: %w", err)
		}
		mappings = append(mappings, mapping)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account type mappings: %w", err)
	}
	return mappings, nil
}

// ReplaceAccountTypeMappings swaps the full stored mapping list
func (db *DB) ReplaceAccountTypeMappings(mappings []models.AccountTypeMapping) error {
	return db.inTransaction(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM account_type_mappings`); err != nil {
			return fmt.Errorf("failed to clear account type mappings: %w", err)
		}
		for _, mapping := range mappings {
			_, err := tx.Exec(`
				INSERT INTO account_type_mappings (ynab_type, category, default_subtype_id, enabled)
				VALUES (?, ?, ?, ?)`,
				mapping.YNABType, mapping.Category, mapping.DefaultSubtypeID, mapping.Enabled)
			if err != nil {
				return fmt.Errorf("failed to insert account type mapping: %w", err)
			}
		}
		return nil
	})
}

// GetColumnConfigs retrieves the stored column configuration for a
// record type
func (db *DB) GetColumnConfigs(recordType string) ([]models.ColumnConfig, error) {
	query := `
	SELECT record_type, field, header_name, visible, column_order, width,
		use_checkbox, use_currency, invert_negative_sign, disable_negative_sign,
		use_thousands_separator, use_datetime, datetime_format, use_link_icon
	FROM column_configs
	WHERE record_type = ?
	ORDER BY column_order, field
	`

	rows, err := db.Query(query, recordType)
	if err != nil {
		return nil, fmt.Errorf("failed to query column configs: %w", err)
	}
	defer rows.Close()

	var configs []models.ColumnConfig
	for rows.Next() {
		var cfg models.ColumnConfig
		err := rows.Scan(
			&cfg.RecordType,
			&cfg.Field,
			&cfg.HeaderName,
			&cfg.Visible,
			&cfg.Order,
			&cfg.Width,
			&cfg.UseCheckbox,
			&cfg.UseCurrency,
			&cfg.InvertNegativeSign,
			&cfg.DisableNegativeSign,
			&cfg.UseThousandsSeparator,
			&cfg.UseDatetime,
			&cfg.DatetimeFormat,
			&cfg.UseLinkIcon,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan column config: %w", err)
		}
		configs = append(configs, cfg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating column configs: %w", err)
	}
	return configs, nil
}

// ReplaceColumnConfigs swaps the full stored column list for a record
// type in one transaction, so a save snapshots the merged state
// atomically.
func (db *DB) ReplaceColumnConfigs(recordType string, configs []models.ColumnConfig) error {
	return db.inTransaction(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM column_configs WHERE record_type = ?`, recordType); err != nil {
			return fmt.Errorf("failed to clear column configs: %w", err)
		}
		for _, cfg := range configs {
			_, err := tx.Exec(`
				INSERT INTO column_configs (
					record_type, field, header_name, visible, column_order, width,
					use_checkbox, use_currency, invert_negative_sign, disable_negative_sign,
					use_thousands_separator, use_datetime, datetime_format, use_link_icon
				) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				recordType,
				cfg.Field,
				cfg.HeaderName,
				cfg.Visible,
				cfg.Order,
				cfg.Width,
				cfg.UseCheckbox,
				cfg.UseCurrency,
				cfg.InvertNegativeSign,
				cfg.DisableNegativeSign,
				cfg.UseThousandsSeparator,
				cfg.UseDatetime,
				cfg.DatetimeFormat,
				cfg.UseLinkIcon,
			)
			if err != nil {
				return fmt.Errorf("failed to insert column config: %w", err)
			}
		}
		return nil
	})
}

func (db *DB) inTransaction(fn func(tx *sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}
