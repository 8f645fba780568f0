package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// DB represents the database connection
type DB struct {
	*sql.DB
}

// New creates a new database connection
func New(dbPath string) (*DB, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db}, nil
}

// Initialize creates the necessary tables if they don't exist
func (db *DB) Initialize() error {
	for _, create := range []func() error{
		db.createRecordTables,
		db.createLedgerTables,
		db.createLinkTable,
		db.createPluginConfigTables,
	} {
		if err := create(); err != nil {
			return err
		}
	}
	return nil
}

func (db *DB) createRecordTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS records (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			category TEXT NOT NULL,
			name TEXT NOT NULL,
			type_id INTEGER,
			bank_id INTEGER,
			notes TEXT,
			tier TEXT,
			balance_value TEXT,
			balance_currency TEXT,
			cleared_balance_value TEXT,
			cleared_balance_currency TEXT,
			on_budget BOOLEAN DEFAULT false,
			closed BOOLEAN DEFAULT false,
			last_reconciled_at TIMESTAMP,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS type_lookups (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			category TEXT NOT NULL,
			name TEXT NOT NULL,
			UNIQUE(category, name)
		)`,
		`CREATE TABLE IF NOT EXISTS banks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE
		)`,
	}
	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to create record tables: %w", err)
		}
	}
	return nil
}

func (db *DB) createLedgerTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS categories (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS payees (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS transactions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			record_id INTEGER NOT NULL,
			category_id INTEGER,
			payee_id INTEGER,
			amount_value TEXT,
			amount_currency TEXT,
			transaction_date TEXT,
			notes TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
	}
	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to create ledger tables: %w", err)
		}
	}
	return nil
}

func (db *DB) createLinkTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS links (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		core_model TEXT NOT NULL,
		core_id INTEGER NOT NULL,
		plugin_model TEXT NOT NULL,
		plugin_id TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		last_synced_at TIMESTAMP,
		UNIQUE(core_model, core_id),
		UNIQUE(plugin_model, plugin_id)
	)
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to create links table: %w", err)
	}
	return nil
}

func (db *DB) createPluginConfigTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS cross_references (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			record_type TEXT NOT NULL,
			source_value TEXT NOT NULL,
			display_value TEXT NOT NULL,
			column_set TEXT NOT NULL,
			enabled BOOLEAN DEFAULT true
		)`,
		`CREATE TABLE IF NOT EXISTS account_type_mappings (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			ynab_type TEXT NOT NULL,
			category TEXT NOT NULL,
			default_subtype_id INTEGER,
			enabled BOOLEAN DEFAULT true
		)`,
		`CREATE TABLE IF NOT EXISTS column_configs (
			record_type TEXT NOT NULL,
			field TEXT NOT NULL,
			header_name TEXT,
			visible BOOLEAN DEFAULT true,
			column_order INTEGER,
			width INTEGER,
			use_checkbox BOOLEAN DEFAULT false,
			use_currency BOOLEAN DEFAULT false,
			invert_negative_sign BOOLEAN DEFAULT false,
			disable_negative_sign BOOLEAN DEFAULT false,
			use_thousands_separator BOOLEAN DEFAULT false,
			use_datetime BOOLEAN DEFAULT false,
			datetime_format TEXT,
			use_link_icon BOOLEAN DEFAULT false,
			PRIMARY KEY(record_type, field)
		)`,
	}
	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to create plugin config tables: %w", err)
		}
	}
	return nil
}
