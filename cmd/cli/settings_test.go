package cli

import (
	"testing"

	"github.com/jselby/budgetlink/db"
	"github.com/jselby/budgetlink/pkg/models"
	"github.com/jselby/budgetlink/pkg/services"
)

func newTestReplState() (*replState, *db.MockStore) {
	store := db.NewMockStore()
	return &replState{
		store:        store,
		typeMappings: services.NewTypeMappingTable(store),
		crossRefs:    services.NewCrossReferenceStore(store),
		currency:     "USD",
	}, store
}

func TestColumnsSetPersistsFormattingFlag(t *testing.T) {
	r, store := newTestReplState()

	r.handleColumns("columns set accounts balance nosign on")

	configs, err := store.GetColumnConfigs("accounts")
	if err != nil {
		t.Fatalf("Failed to get column configs: %v", err)
	}
	var balance *models.ColumnConfig
	for i := range configs {
		if configs[i].Field == "balance" {
			balance = &configs[i]
		}
	}
	if balance == nil {
		t.Fatalf("Expected balance column to be persisted")
	}
	if !balance.DisableNegativeSign {
		t.Errorf("Expected disable_negative_sign to be set")
	}
	if !balance.UseCurrency || !balance.UseThousandsSeparator {
		t.Errorf("Expected default currency formatting to survive the patch: %+v", balance)
	}
}

func TestColumnsSetWidth(t *testing.T) {
	r, store := newTestReplState()

	r.handleColumns("columns set accounts name width 80")

	configs, err := store.GetColumnConfigs("accounts")
	if err != nil {
		t.Fatalf("Failed to get column configs: %v", err)
	}
	for _, cfg := range configs {
		if cfg.Field == "name" {
			if cfg.Width != 80 {
				t.Errorf("Expected width 80, got %d", cfg.Width)
			}
			return
		}
	}
	t.Fatalf("Expected name column to be persisted")
}

func TestColumnsSetRejectsUnknownFlag(t *testing.T) {
	r, store := newTestReplState()

	r.handleColumns("columns set accounts balance sparkle on")

	configs, err := store.GetColumnConfigs("accounts")
	if err != nil {
		t.Fatalf("Failed to get column configs: %v", err)
	}
	if len(configs) != 0 {
		t.Errorf("Expected nothing persisted for an unknown flag, got %d configs", len(configs))
	}
}

func TestTypeMappingAddAcceptsDisplayLabel(t *testing.T) {
	r, _ := newTestReplState()

	r.handleTypeMappings("typemap erase")
	r.handleTypeMappings("typemap add Credit Card credit_card")

	mapping := r.typeMappings.MapToLocalCategory("creditCard")
	if mapping == nil {
		t.Fatalf("Expected display label to resolve to the creditCard code")
	}
	if mapping.Category != models.CategoryCreditCard {
		t.Errorf("Expected category credit_card, got %s", mapping.Category)
	}
}

func TestTypeMappingRemoveAcceptsDisplayLabel(t *testing.T) {
	r, _ := newTestReplState()

	r.handleTypeMappings("typemap rm Line Of Credit")

	if mapping := r.typeMappings.MapToLocalCategory("lineOfCredit"); mapping != nil {
		t.Errorf("Expected lineOfCredit mapping to be removed, got %+v", mapping)
	}
}
