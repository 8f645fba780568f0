package db

import (
	"fmt"
	"time"

	"github.com/jselby/budgetlink/pkg/models"
)

// MockStore is a mock implementation of the Store for testing
type MockStore struct {
	// Mock data storage
	Records      map[int64]*models.LocalRecord
	TypeLookups  map[models.RecordCategory][]models.TypeLookup
	Banks        []models.Bank
	Categories   []models.Category
	Payees       []models.Payee
	Transactions map[int64]*models.LedgerTransaction
	Links        map[int64]*models.Link
	CrossRefs    map[string][]models.CrossReference
	TypeMappings []models.AccountTypeMapping
	Columns      map[string][]models.ColumnConfig

	nextID int64

	// Error values to return
	SaveRecordErr           error
	UpdateRecordErr         error
	UpdateMirroredErr       error
	GetRecordErr            error
	GetRecordsErr           error
	RemoveRecordErr         error
	GetTypeLookupsErr       error
	AddTypeLookupErr        error
	CreateLinkErr           error
	GetLinkErr              error
	GetLinksErr             error
	DeleteLinkErr           error
	TouchLinkSyncedErr      error
	GetCrossReferencesErr   error
	ReplaceCrossRefsErr     error
	GetTypeMappingsErr      error
	ReplaceTypeMappingsErr  error
	GetColumnConfigsErr     error
	ReplaceColumnConfigsErr error
}

// NewMockStore creates a new mock store
func NewMockStore() *MockStore {
	return &MockStore{
		Records:      make(map[int64]*models.LocalRecord),
		TypeLookups:  make(map[models.RecordCategory][]models.TypeLookup),
		Transactions: make(map[int64]*models.LedgerTransaction),
		Links:        make(map[int64]*models.Link),
		CrossRefs:    make(map[string][]models.CrossReference),
		Columns:      make(map[string][]models.ColumnConfig),
	}
}

func (m *MockStore) nextId() int64 {
	m.nextID++
	return m.nextID
}

// Initialize is a no-op for the mock store
func (m *MockStore) Initialize() error { return nil }

// Close is a no-op for the mock store
func (m *MockStore) Close() error { return nil }

func (m *MockStore) SaveRecord(r *models.LocalRecord) (int64, error) {
	if m.SaveRecordErr != nil {
		return 0, m.SaveRecordErr
	}
	r.ID = m.nextId()
	m.Records[r.ID] = r
	return r.ID, nil
}

func (m *MockStore) UpdateRecord(r *models.LocalRecord) error {
	if m.UpdateRecordErr != nil {
		return m.UpdateRecordErr
	}
	existing, ok := m.Records[r.ID]
	if !ok {
		return fmt.Errorf("no record found with id: %d", r.ID)
	}
	mirrored := existing.Mirrored
	m.Records[r.ID] = r
	m.Records[r.ID].Mirrored = mirrored
	return nil
}

func (m *MockStore) UpdateMirroredFields(recordID int64, fields models.MirroredFields) error {
	if m.UpdateMirroredErr != nil {
		return m.UpdateMirroredErr
	}
	record, ok := m.Records[recordID]
	if !ok {
		return fmt.Errorf("no record found with id: %d", recordID)
	}
	record.Mirrored = fields
	return nil
}

func (m *MockStore) GetRecord(id int64) (*models.LocalRecord, error) {
	if m.GetRecordErr != nil {
		return nil, m.GetRecordErr
	}
	record, ok := m.Records[id]
	if !ok {
		return nil, nil
	}
	return record, nil
}

func (m *MockStore) GetRecords(category models.RecordCategory) ([]*models.LocalRecord, error) {
	if m.GetRecordsErr != nil {
		return nil, m.GetRecordsErr
	}
	records := make([]*models.LocalRecord, 0, len(m.Records))
	for _, record := range m.Records {
		if category != "" && record.Category != category {
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

func (m *MockStore) RemoveRecord(id int64) error {
	if m.RemoveRecordErr != nil {
		return m.RemoveRecordErr
	}
	record, ok := m.Records[id]
	if !ok {
		return fmt.Errorf("no record found with id: %d", id)
	}
	for linkID, link := range m.Links {
		if link.CoreModel == record.Category && link.CoreID == id {
			delete(m.Links, linkID)
		}
	}
	delete(m.Records, id)
	return nil
}

func (m *MockStore) GetTypeLookups(category models.RecordCategory) ([]models.TypeLookup, error) {
	if m.GetTypeLookupsErr != nil {
		return nil, m.GetTypeLookupsErr
	}
	return m.TypeLookups[category], nil
}

func (m *MockStore) AddTypeLookup(category models.RecordCategory, name string) (int64, error) {
	if m.AddTypeLookupErr != nil {
		return 0, m.AddTypeLookupErr
	}
	for _, lookup := range m.TypeLookups[category] {
		if lookup.Name == name {
			return lookup.ID, nil
		}
	}
	lookup := models.TypeLookup{ID: m.nextId(), Category: category, Name: name}
	m.TypeLookups[category] = append(m.TypeLookups[category], lookup)
	return lookup.ID, nil
}

func (m *MockStore) GetBanks() ([]models.Bank, error) {
	return m.Banks, nil
}

func (m *MockStore) AddBank(name string) (int64, error) {
	bank := models.Bank{ID: m.nextId(), Name: name}
	m.Banks = append(m.Banks, bank)
	return bank.ID, nil
}

func (m *MockStore) GetCategories() ([]models.Category, error) {
	return m.Categories, nil
}

func (m *MockStore) AddCategory(name string) (int64, error) {
	category := models.Category{ID: m.nextId(), Name: name}
	m.Categories = append(m.Categories, category)
	return category.ID, nil
}

func (m *MockStore) GetPayees() ([]models.Payee, error) {
	return m.Payees, nil
}

func (m *MockStore) AddPayee(name string) (int64, error) {
	payee := models.Payee{ID: m.nextId(), Name: name}
	m.Payees = append(m.Payees, payee)
	return payee.ID, nil
}

func (m *MockStore) GetLedgerTransactions(recordID int64) ([]*models.LedgerTransaction, error) {
	transactions := make([]*models.LedgerTransaction, 0, len(m.Transactions))
	for _, tx := range m.Transactions {
		if recordID != 0 && tx.RecordID != recordID {
			continue
		}
		transactions = append(transactions, tx)
	}
	return transactions, nil
}

func (m *MockStore) AddLedgerTransaction(tx *models.LedgerTransaction) (int64, error) {
	tx.ID = m.nextId()
	m.Transactions[tx.ID] = tx
	return tx.ID, nil
}

func (m *MockStore) CreateLink(link *models.Link) (int64, error) {
	if m.CreateLinkErr != nil {
		return 0, m.CreateLinkErr
	}
	for _, existing := range m.Links {
		if existing.CoreModel == link.CoreModel && existing.CoreID == link.CoreID {
			return 0, fmt.Errorf("UNIQUE constraint failed: links.core_model, links.core_id")
		}
		if existing.PluginModel == link.PluginModel && existing.PluginID == link.PluginID {
			return 0, fmt.Errorf("UNIQUE constraint failed: links.plugin_model, links.plugin_id")
		}
	}
	link.ID = m.nextId()
	if link.CreatedAt.IsZero() {
		link.CreatedAt = time.Now().UTC()
	}
	m.Links[link.ID] = link
	return link.ID, nil
}

func (m *MockStore) GetLink(id int64) (*models.Link, error) {
	if m.GetLinkErr != nil {
		return nil, m.GetLinkErr
	}
	link, ok := m.Links[id]
	if !ok {
		return nil, nil
	}
	return link, nil
}

func (m *MockStore) GetLinkForRecord(category models.RecordCategory, coreID int64) (*models.Link, error) {
	if m.GetLinkErr != nil {
		return nil, m.GetLinkErr
	}
	for _, link := range m.Links {
		if link.CoreModel == category && link.CoreID == coreID {
			return link, nil
		}
	}
	return nil, nil
}

func (m *MockStore) GetLinkForPlugin(pluginModel models.PluginModel, pluginID string) (*models.Link, error) {
	if m.GetLinkErr != nil {
		return nil, m.GetLinkErr
	}
	for _, link := range m.Links {
		if link.PluginModel == pluginModel && link.PluginID == pluginID {
			return link, nil
		}
	}
	return nil, nil
}

func (m *MockStore) GetLinks() ([]*models.Link, error) {
	if m.GetLinksErr != nil {
		return nil, m.GetLinksErr
	}
	links := make([]*models.Link, 0, len(m.Links))
	for _, link := range m.Links {
		links = append(links, link)
	}
	return links, nil
}

func (m *MockStore) DeleteLink(id int64) error {
	if m.DeleteLinkErr != nil {
		return m.DeleteLinkErr
	}
	delete(m.Links, id)
	return nil
}

func (m *MockStore) TouchLinkSynced(id int64, syncedAt time.Time) error {
	if m.TouchLinkSyncedErr != nil {
		return m.TouchLinkSyncedErr
	}
	link, ok := m.Links[id]
	if !ok {
		return fmt.Errorf("no link found with id: %d", id)
	}
	link.LastSyncedAt = &syncedAt
	return nil
}

func (m *MockStore) GetCrossReferences(recordType string) ([]models.CrossReference, error) {
	if m.GetCrossReferencesErr != nil {
		return nil, m.GetCrossReferencesErr
	}
	return m.CrossRefs[recordType], nil
}

func (m *MockStore) ReplaceCrossReferences(recordType string, refs []models.CrossReference) error {
	if m.ReplaceCrossRefsErr != nil {
		return m.ReplaceCrossRefsErr
	}
	stored := make([]models.CrossReference, len(refs))
	copy(stored, refs)
	for i := range stored {
		stored[i].ID = m.nextId()
	}
	m.CrossRefs[recordType] = stored
	return nil
}

func (m *MockStore) GetAccountTypeMappings() ([]models.AccountTypeMapping, error) {
	if m.GetTypeMappingsErr != nil {
		return nil, m.GetTypeMappingsErr
	}
	return m.TypeMappings, nil
}

func (m *MockStore) ReplaceAccountTypeMappings(mappings []models.AccountTypeMapping) error {
	if m.ReplaceTypeMappingsErr != nil {
		return m.ReplaceTypeMappingsErr
	}
	stored := make([]models.AccountTypeMapping, len(mappings))
	copy(stored, mappings)
	m.TypeMappings = stored
	return nil
}

func (m *MockStore) GetColumnConfigs(recordType string) ([]models.ColumnConfig, error) {
	if m.GetColumnConfigsErr != nil {
		return nil, m.GetColumnConfigsErr
	}
	return m.Columns[recordType], nil
}

func (m *MockStore) ReplaceColumnConfigs(recordType string, configs []models.ColumnConfig) error {
	if m.ReplaceColumnConfigsErr != nil {
		return m.ReplaceColumnConfigsErr
	}
	stored := make([]models.ColumnConfig, len(configs))
	copy(stored, configs)
	m.Columns[recordType] = stored
	return nil
}
