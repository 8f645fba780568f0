package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jselby/budgetlink/db"
	"github.com/jselby/budgetlink/pkg/http/ynab"
	"github.com/jselby/budgetlink/pkg/models"
	"github.com/jselby/budgetlink/pkg/utils"
)

// ErrNoCategoryMapping signals that no enabled type mapping covers the
// external account's type code and the caller must pick a category.
var ErrNoCategoryMapping = errors.New("no category mapping for account type")

// Creator derives new local records from unlinked YNAB accounts and
// links them in one flow.
type Creator struct {
	store        db.Store
	linker       *Linker
	typeMappings *TypeMappingTable
	currency     string
}

func NewCreator(store db.Store, linker *Linker, typeMappings *TypeMappingTable, currency string) *Creator {
	if currency == "" {
		currency = "USD"
	}
	return &Creator{
		store:        store,
		linker:       linker,
		typeMappings: typeMappings,
		currency:     currency,
	}
}

// CreateAndLink builds a local record from a YNAB account, saves it,
// links it and triggers the initial sync. Pass an empty category to
// derive it from the type mapping table; ErrNoCategoryMapping is
// returned when that derivation fails.
//
// When the record is created but linking fails, the record is
// returned together with the error: the caller surfaces the unlinked
// record instead of retrying.
func (c *Creator) CreateAndLink(ctx context.Context, account *ynab.Account, category models.RecordCategory) (*models.LocalRecord, error) {
	mapping := c.typeMappings.MapToLocalCategory(account.Type)
	if category == "" {
		if mapping == nil {
			return nil, fmt.Errorf("type %q: %w", account.Type, ErrNoCategoryMapping)
		}
		category = mapping.Category
	}
	if !category.Valid() {
		return nil, fmt.Errorf("invalid record category: %q", category)
	}

	lookups, err := c.store.GetTypeLookups(category)
	if err != nil {
		return nil, err
	}

	record := &models.LocalRecord{
		Category: category,
		Name:     account.Name,
		Notes:    account.Note,
		Tier:     models.TierLiquid,
		TypeID:   defaultSubtype(mapping, lookups, account.Type),
		Mirrored: MirroredFromAccount(account, c.currency),
	}

	if _, err := c.store.SaveRecord(record); err != nil {
		return nil, fmt.Errorf("failed to create record: %w", err)
	}

	if _, err := c.linker.Link(ctx, category, record.ID, account.ID); err != nil {
		return record, fmt.Errorf("record %d created but linking failed: %w", record.ID, err)
	}
	return record, nil
}

// defaultSubtype picks the subtype for a derived record: the mapping's
// configured default when it is still a valid lookup entry, else a
// fuzzy name match against the external type code, else the first
// lookup entry. Zero means the category has no lookups at all.
func defaultSubtype(mapping *models.AccountTypeMapping, lookups []models.TypeLookup, ynabType string) int64 {
	if mapping != nil && mapping.DefaultSubtypeID != nil {
		for _, lookup := range lookups {
			if lookup.ID == *mapping.DefaultSubtypeID {
				return lookup.ID
			}
		}
	}

	normalized := utils.Normalize(ynabType)
	for _, lookup := range lookups {
		name := utils.Normalize(lookup.Name)
		if name == normalized || strings.Contains(name, normalized) || strings.Contains(normalized, name) {
			return lookup.ID
		}
	}

	if len(lookups) > 0 {
		return lookups[0].ID
	}
	return 0
}
