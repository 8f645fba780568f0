package services

import (
	"errors"
	"testing"

	"github.com/jselby/budgetlink/db"
	"github.com/jselby/budgetlink/pkg/http/ynab"
	"github.com/jselby/budgetlink/pkg/models"
)

func TestDefaultCrossReferences(t *testing.T) {
	refs := DefaultCrossReferences(CrossRefTypeAccounts)
	if len(refs) != len(ynab.AllAccountTypes) {
		t.Fatalf("Expected %d default cross references, got %d", len(ynab.AllAccountTypes), len(refs))
	}

	bySource := map[string]models.CrossReference{}
	for _, ref := range refs {
		if !ref.Enabled {
			t.Errorf("Expected default %q to be enabled", ref.SourceValue)
		}
		bySource[ref.SourceValue] = ref
	}

	testCases := []struct {
		source  string
		display string
	}{
		{"checking", "Checking"},
		{"creditCard", "Credit Card"},
		{"lineOfCredit", "Line Of Credit"},
		{"otherLiability", "Other Liability"},
	}
	for _, tc := range testCases {
		ref, ok := bySource[tc.source]
		if !ok {
			t.Errorf("Missing default for %q", tc.source)
			continue
		}
		if ref.DisplayValue != tc.display {
			t.Errorf("Expected display %q for %q, got %q", tc.display, tc.source, ref.DisplayValue)
		}
	}

	if refs := DefaultCrossReferences("transactions"); len(refs) != 0 {
		t.Errorf("Expected no defaults for transactions, got %d", len(refs))
	}
}

func TestListFallsBackToDefaults(t *testing.T) {
	t.Run("Empty store", func(t *testing.T) {
		store := NewCrossReferenceStore(db.NewMockStore())
		refs := store.List(CrossRefTypeAccounts)
		if len(refs) != len(ynab.AllAccountTypes) {
			t.Errorf("Expected defaults from empty store, got %d entries", len(refs))
		}
	})

	t.Run("Failing store", func(t *testing.T) {
		mockDB := db.NewMockStore()
		mockDB.GetCrossReferencesErr = errors.New("disk error")
		store := NewCrossReferenceStore(mockDB)
		refs := store.List(CrossRefTypeAccounts)
		if len(refs) != len(ynab.AllAccountTypes) {
			t.Errorf("Expected defaults from failing store, got %d entries", len(refs))
		}
	})
}

func TestResolveDisplayAndSource(t *testing.T) {
	mockDB := db.NewMockStore()
	mockDB.ReplaceCrossReferences(CrossRefTypeAccounts, []models.CrossReference{
		{RecordType: CrossRefTypeAccounts, SourceValue: "checking", DisplayValue: "Chequing", Column: "type,account_type", Enabled: true},
		{RecordType: CrossRefTypeAccounts, SourceValue: "checking", DisplayValue: "Shadowed", Column: "type", Enabled: true},
		{RecordType: CrossRefTypeAccounts, SourceValue: "savings", DisplayValue: "Disabled", Column: "type", Enabled: false},
	})
	store := NewCrossReferenceStore(mockDB)

	t.Run("First enabled match wins", func(t *testing.T) {
		if got := store.ResolveDisplay(CrossRefTypeAccounts, "type", "checking"); got != "Chequing" {
			t.Errorf("Expected Chequing, got %q", got)
		}
	})

	t.Run("Column scoping", func(t *testing.T) {
		if got := store.ResolveDisplay(CrossRefTypeAccounts, "account_type", "checking"); got != "Chequing" {
			t.Errorf("Expected Chequing on account_type column, got %q", got)
		}
		if got := store.ResolveDisplay(CrossRefTypeAccounts, "name", "checking"); got != "checking" {
			t.Errorf("Expected pass-through on unmatched column, got %q", got)
		}
	})

	t.Run("Disabled entries are skipped", func(t *testing.T) {
		if got := store.ResolveDisplay(CrossRefTypeAccounts, "type", "savings"); got != "savings" {
			t.Errorf("Expected pass-through for disabled entry, got %q", got)
		}
	})

	t.Run("Unknown value passes through", func(t *testing.T) {
		if got := store.ResolveDisplay(CrossRefTypeAccounts, "type", "mystery"); got != "mystery" {
			t.Errorf("Expected pass-through, got %q", got)
		}
	})

	t.Run("Reverse resolution", func(t *testing.T) {
		if got := store.ResolveSource(CrossRefTypeAccounts, "type", "Chequing"); got != "checking" {
			t.Errorf("Expected checking, got %q", got)
		}
		if got := store.ResolveSource(CrossRefTypeAccounts, "type", "Unknown"); got != "Unknown" {
			t.Errorf("Expected pass-through, got %q", got)
		}
	})
}

func TestReplaceInvalidatesCache(t *testing.T) {
	mockDB := db.NewMockStore()
	store := NewCrossReferenceStore(mockDB)

	// Prime the cache with defaults
	if got := store.ResolveDisplay(CrossRefTypeAccounts, "type", "checking"); got != "Checking" {
		t.Fatalf("Expected default display, got %q", got)
	}

	err := store.Replace(CrossRefTypeAccounts, []models.CrossReference{
		{RecordType: CrossRefTypeAccounts, SourceValue: "checking", DisplayValue: "Chequing", Column: "type", Enabled: true},
	})
	if err != nil {
		t.Fatalf("Failed to replace: %v", err)
	}

	if got := store.ResolveDisplay(CrossRefTypeAccounts, "type", "checking"); got != "Chequing" {
		t.Errorf("Expected replaced value after cache invalidation, got %q", got)
	}
}

func TestResetToDefaults(t *testing.T) {
	mockDB := db.NewMockStore()
	store := NewCrossReferenceStore(mockDB)

	err := store.Replace(CrossRefTypeAccounts, []models.CrossReference{
		{RecordType: CrossRefTypeAccounts, SourceValue: "checking", DisplayValue: "Custom", Column: "type", Enabled: true},
	})
	if err != nil {
		t.Fatalf("Failed to replace: %v", err)
	}

	if err := store.ResetToDefaults(CrossRefTypeAccounts); err != nil {
		t.Fatalf("Failed to reset: %v", err)
	}

	refs := store.List(CrossRefTypeAccounts)
	if len(refs) != len(ynab.AllAccountTypes) {
		t.Errorf("Expected full default set after reset, got %d", len(refs))
	}
}
