package db

import (
	"time"

	"github.com/jselby/budgetlink/pkg/models"
)

// Store defines the interface for database operations
type Store interface {
	Initialize() error
	Close() error

	// Local records
	SaveRecord(r *models.LocalRecord) (int64, error)
	UpdateRecord(r *models.LocalRecord) error
	UpdateMirroredFields(recordID int64, m models.MirroredFields) error
	GetRecord(id int64) (*models.LocalRecord, error)
	GetRecords(category models.RecordCategory) ([]*models.LocalRecord, error)
	RemoveRecord(id int64) error

	// Lookups
	GetTypeLookups(category models.RecordCategory) ([]models.TypeLookup, error)
	AddTypeLookup(category models.RecordCategory, name string) (int64, error)
	GetBanks() ([]models.Bank, error)
	AddBank(name string) (int64, error)

	// Ledger
	GetCategories() ([]models.Category, error)
	AddCategory(name string) (int64, error)
	GetPayees() ([]models.Payee, error)
	AddPayee(name string) (int64, error)
	GetLedgerTransactions(recordID int64) ([]*models.LedgerTransaction, error)
	AddLedgerTransaction(tx *models.LedgerTransaction) (int64, error)

	// Links
	CreateLink(link *models.Link) (int64, error)
	GetLink(id int64) (*models.Link, error)
	GetLinkForRecord(category models.RecordCategory, coreID int64) (*models.Link, error)
	GetLinkForPlugin(pluginModel models.PluginModel, pluginID string) (*models.Link, error)
	GetLinks() ([]*models.Link, error)
	DeleteLink(id int64) error
	TouchLinkSynced(id int64, syncedAt time.Time) error

	// Plugin configuration
	GetCrossReferences(recordType string) ([]models.CrossReference, error)
	ReplaceCrossReferences(recordType string, refs []models.CrossReference) error
	GetAccountTypeMappings() ([]models.AccountTypeMapping, error)
	ReplaceAccountTypeMappings(mappings []models.AccountTypeMapping) error
	GetColumnConfigs(recordType string) ([]models.ColumnConfig, error)
	ReplaceColumnConfigs(recordType string, configs []models.ColumnConfig) error
}

// Ensure DB implements Store
var _ Store = (*DB)(nil)

// Ensure MockStore implements Store
var _ Store = (*MockStore)(nil)
