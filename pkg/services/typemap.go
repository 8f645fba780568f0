package services

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/jselby/budgetlink/db"
	"github.com/jselby/budgetlink/pkg/http/ynab"
	"github.com/jselby/budgetlink/pkg/models"
)

// TypeMappingTable maps YNAB account type codes to local record
// categories. Edits are pure in-memory list transforms; persistence is
// an explicit Save step.
type TypeMappingTable struct {
	store    db.Store
	mappings []models.AccountTypeMapping
	loaded   bool
}

func NewTypeMappingTable(store db.Store) *TypeMappingTable {
	return &TypeMappingTable{store: store}
}

// DefaultTypeMappings seeds every known YNAB type code with a sensible
// local category.
func DefaultTypeMappings() []models.AccountTypeMapping {
	mappings := make([]models.AccountTypeMapping, 0, len(ynab.AllAccountTypes))
	for _, code := range ynab.AllAccountTypes {
		var category models.RecordCategory
		switch code {
		case ynab.TypeChecking, ynab.TypeSavings, ynab.TypeCash:
			category = models.CategoryAccount
		case ynab.TypeCreditCard:
			category = models.CategoryCreditCard
		case ynab.TypeOtherAsset:
			category = models.CategoryAsset
		default:
			// Every loan, debt, mortgage and line-of-credit variant.
			category = models.CategoryLiability
		}
		mappings = append(mappings, models.AccountTypeMapping{
			YNABType: code,
			Category: category,
			Enabled:  true,
		})
	}
	return mappings
}

// Load pulls the stored mapping list; an empty or unreadable store
// degrades to the defaults.
func (t *TypeMappingTable) Load() {
	if t.loaded {
		return
	}
	mappings, err := t.store.GetAccountTypeMappings()
	if err != nil {
		log.Warn().Err(err).Msg("Failed to load account type mappings, using defaults")
		mappings = DefaultTypeMappings()
	} else if len(mappings) == 0 {
		mappings = DefaultTypeMappings()
	}
	t.mappings = mappings
	t.loaded = true
}

// Mappings returns the current in-memory list.
func (t *TypeMappingTable) Mappings() []models.AccountTypeMapping {
	t.Load()
	return t.mappings
}

// MapToLocalCategory returns the first enabled mapping for a type
// code, or nil when none exists and the caller must ask the user for a
// category.
func (t *TypeMappingTable) MapToLocalCategory(ynabType string) *models.AccountTypeMapping {
	t.Load()
	for i := range t.mappings {
		if t.mappings[i].Enabled && t.mappings[i].YNABType == ynabType {
			return &t.mappings[i]
		}
	}
	return nil
}

// Add appends a mapping for a type code not already present.
func (t *TypeMappingTable) Add(mapping models.AccountTypeMapping) error {
	t.Load()
	for _, existing := range t.mappings {
		if existing.YNABType == mapping.YNABType {
			return fmt.Errorf("mapping for type %q already exists", mapping.YNABType)
		}
	}
	t.mappings = append(t.mappings, mapping)
	return nil
}

// Remove drops every mapping for a type code.
func (t *TypeMappingTable) Remove(ynabType string) {
	t.Load()
	t.mappings = lo.Filter(t.mappings, func(m models.AccountTypeMapping, _ int) bool {
		return m.YNABType != ynabType
	})
}

// SetEnabled toggles a mapping without removing it.
func (t *TypeMappingTable) SetEnabled(ynabType string, enabled bool) error {
	t.Load()
	for i := range t.mappings {
		if t.mappings[i].YNABType == ynabType {
			t.mappings[i].Enabled = enabled
			return nil
		}
	}
	return fmt.Errorf("no mapping for type %q", ynabType)
}

// ResetToDefaults restores the shipped mapping table.
func (t *TypeMappingTable) ResetToDefaults() {
	t.mappings = DefaultTypeMappings()
	t.loaded = true
}

// EraseAll empties the table.
func (t *TypeMappingTable) EraseAll() {
	t.mappings = []models.AccountTypeMapping{}
	t.loaded = true
}

// AvailableTypes lists the YNAB type codes with no mapping yet,
// enabled or not. A code is never both mapped and available.
func (t *TypeMappingTable) AvailableTypes() []string {
	t.Load()
	mapped := lo.SliceToMap(t.mappings, func(m models.AccountTypeMapping) (string, struct{}) {
		return m.YNABType, struct{}{}
	})
	return lo.Filter(ynab.AllAccountTypes, func(code string, _ int) bool {
		_, ok := mapped[code]
		return !ok
	})
}

// Save persists the current list as the full stored state.
func (t *TypeMappingTable) Save() error {
	t.Load()
	return t.store.ReplaceAccountTypeMappings(t.mappings)
}
