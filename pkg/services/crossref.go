package services

import (
	"github.com/rs/zerolog/log"

	"github.com/jselby/budgetlink/db"
	"github.com/jselby/budgetlink/pkg/http/ynab"
	"github.com/jselby/budgetlink/pkg/models"
	"github.com/jselby/budgetlink/pkg/utils"
)

// Record types the cross-reference store is scoped by. These name the
// external grids, not the local record categories.
const (
	CrossRefTypeAccounts     = "accounts"
	CrossRefTypeCategories   = "categories"
	CrossRefTypePayees       = "payees"
	CrossRefTypeTransactions = "transactions"
)

// CrossReferenceStore resolves raw external vocabulary tokens to
// display labels and back, falling back to a hardcoded default set
// whenever nothing is stored or the store cannot be read.
type CrossReferenceStore struct {
	store db.Store
	cache map[string][]models.CrossReference
}

func NewCrossReferenceStore(store db.Store) *CrossReferenceStore {
	return &CrossReferenceStore{
		store: store,
		cache: make(map[string][]models.CrossReference),
	}
}

// DefaultCrossReferences builds the shipped substitution set for a
// record type. For accounts that is one enabled entry per known YNAB
// account type code, labeled by splitting the camelCase code.
func DefaultCrossReferences(recordType string) []models.CrossReference {
	if recordType != CrossRefTypeAccounts {
		return nil
	}
	refs := make([]models.CrossReference, 0, len(ynab.AllAccountTypes))
	for _, code := range ynab.AllAccountTypes {
		refs = append(refs, models.CrossReference{
			RecordType:   recordType,
			SourceValue:  code,
			DisplayValue: utils.Capitalize(utils.SplitCamelCase(code)),
			Column:       "type,account_type",
			Enabled:      true,
		})
	}
	return refs
}

// List returns the effective cross-reference list for a record type.
// A load failure degrades to the defaults and is never surfaced.
func (s *CrossReferenceStore) List(recordType string) []models.CrossReference {
	if cached, ok := s.cache[recordType]; ok {
		return cached
	}

	refs, err := s.store.GetCrossReferences(recordType)
	if err != nil {
		log.Warn().Err(err).Str("record_type", recordType).
			Msg("Failed to load cross references, using defaults")
		refs = DefaultCrossReferences(recordType)
	} else if len(refs) == 0 {
		refs = DefaultCrossReferences(recordType)
	}

	s.cache[recordType] = refs
	return refs
}

// ResolveDisplay maps a raw external value to its display label for a
// given column. The first enabled match by insertion order wins; an
// unmatched value passes through unchanged.
func (s *CrossReferenceStore) ResolveDisplay(recordType, column, rawValue string) string {
	for _, ref := range s.List(recordType) {
		if ref.Enabled && ref.SourceValue == rawValue && ref.AppliesTo(column) {
			return ref.DisplayValue
		}
	}
	return rawValue
}

// ResolveSource maps a display label back to the raw external value,
// used when a user-facing selection must be sent to the external
// service.
func (s *CrossReferenceStore) ResolveSource(recordType, column, displayValue string) string {
	for _, ref := range s.List(recordType) {
		if ref.Enabled && ref.DisplayValue == displayValue && ref.AppliesTo(column) {
			return ref.SourceValue
		}
	}
	return displayValue
}

// Replace persists a full substitution list for a record type and
// invalidates the cached copy.
func (s *CrossReferenceStore) Replace(recordType string, refs []models.CrossReference) error {
	if err := s.store.ReplaceCrossReferences(recordType, refs); err != nil {
		return err
	}
	delete(s.cache, recordType)
	return nil
}

// ResetToDefaults discards stored customization for a record type.
func (s *CrossReferenceStore) ResetToDefaults(recordType string) error {
	return s.Replace(recordType, DefaultCrossReferences(recordType))
}
