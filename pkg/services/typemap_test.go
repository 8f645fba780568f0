package services

import (
	"errors"
	"testing"

	"github.com/jselby/budgetlink/db"
	"github.com/jselby/budgetlink/pkg/http/ynab"
	"github.com/jselby/budgetlink/pkg/models"
)

func TestDefaultTypeMappings(t *testing.T) {
	mappings := DefaultTypeMappings()
	if len(mappings) != len(ynab.AllAccountTypes) {
		t.Fatalf("Expected %d default mappings, got %d", len(ynab.AllAccountTypes), len(mappings))
	}

	byType := map[string]models.AccountTypeMapping{}
	for _, mapping := range mappings {
		if !mapping.Enabled {
			t.Errorf("Expected default mapping for %q to be enabled", mapping.YNABType)
		}
		byType[mapping.YNABType] = mapping
	}

	testCases := []struct {
		ynabType string
		category models.RecordCategory
	}{
		{ynab.TypeChecking, models.CategoryAccount},
		{ynab.TypeSavings, models.CategoryAccount},
		{ynab.TypeCash, models.CategoryAccount},
		{ynab.TypeCreditCard, models.CategoryCreditCard},
		{ynab.TypeOtherAsset, models.CategoryAsset},
		{ynab.TypeMortgage, models.CategoryLiability},
		{ynab.TypeStudentLoan, models.CategoryLiability},
		{ynab.TypeMedicalDebt, models.CategoryLiability},
	}
	for _, tc := range testCases {
		if byType[tc.ynabType].Category != tc.category {
			t.Errorf("Expected %q to map to %q, got %q", tc.ynabType, tc.category, byType[tc.ynabType].Category)
		}
	}
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	t.Run("Empty store", func(t *testing.T) {
		table := NewTypeMappingTable(db.NewMockStore())
		if len(table.Mappings()) != len(ynab.AllAccountTypes) {
			t.Errorf("Expected defaults from empty store")
		}
	})

	t.Run("Failing store", func(t *testing.T) {
		mockDB := db.NewMockStore()
		mockDB.GetTypeMappingsErr = errors.New("disk error")
		table := NewTypeMappingTable(mockDB)
		if len(table.Mappings()) != len(ynab.AllAccountTypes) {
			t.Errorf("Expected defaults from failing store")
		}
	})
}

func TestMapToLocalCategory(t *testing.T) {
	table := NewTypeMappingTable(db.NewMockStore())

	mapping := table.MapToLocalCategory(ynab.TypeCreditCard)
	if mapping == nil {
		t.Fatalf("Expected a mapping for creditCard")
	}
	if mapping.Category != models.CategoryCreditCard {
		t.Errorf("Expected credit_card category, got %s", mapping.Category)
	}

	if table.MapToLocalCategory("somethingNew") != nil {
		t.Errorf("Expected nil for unknown type")
	}

	// Disabled mappings do not resolve
	if err := table.SetEnabled(ynab.TypeCreditCard, false); err != nil {
		t.Fatalf("Failed to disable mapping: %v", err)
	}
	if table.MapToLocalCategory(ynab.TypeCreditCard) != nil {
		t.Errorf("Expected nil for disabled mapping")
	}
}

func TestAddRejectsDuplicates(t *testing.T) {
	table := NewTypeMappingTable(db.NewMockStore())

	err := table.Add(models.AccountTypeMapping{
		YNABType: ynab.TypeChecking,
		Category: models.CategoryAsset,
		Enabled:  true,
	})
	if err == nil {
		t.Errorf("Expected error adding duplicate type")
	}

	err = table.Add(models.AccountTypeMapping{
		YNABType: "somethingNew",
		Category: models.CategoryAsset,
		Enabled:  true,
	})
	if err != nil {
		t.Errorf("Expected new type to be added: %v", err)
	}
}

func TestAvailableTypesComplementsMapped(t *testing.T) {
	table := NewTypeMappingTable(db.NewMockStore())

	// Defaults cover every known type
	if available := table.AvailableTypes(); len(available) != 0 {
		t.Errorf("Expected no available types with full defaults, got %v", available)
	}

	table.Remove(ynab.TypeCash)
	available := table.AvailableTypes()
	if len(available) != 1 || available[0] != ynab.TypeCash {
		t.Errorf("Expected only cash to be available, got %v", available)
	}

	// A disabled mapping still occupies its type
	if err := table.SetEnabled(ynab.TypeSavings, false); err != nil {
		t.Fatalf("Failed to disable mapping: %v", err)
	}
	if available := table.AvailableTypes(); len(available) != 1 {
		t.Errorf("Expected disabled type to stay mapped, got %v", available)
	}
}

func TestEraseAndReset(t *testing.T) {
	table := NewTypeMappingTable(db.NewMockStore())

	table.EraseAll()
	if len(table.Mappings()) != 0 {
		t.Errorf("Expected empty table after erase")
	}
	if available := table.AvailableTypes(); len(available) != len(ynab.AllAccountTypes) {
		t.Errorf("Expected every type to be available after erase, got %d", len(available))
	}

	table.ResetToDefaults()
	if len(table.Mappings()) != len(ynab.AllAccountTypes) {
		t.Errorf("Expected full default set after reset")
	}
}

func TestSavePersistsMappings(t *testing.T) {
	mockDB := db.NewMockStore()
	table := NewTypeMappingTable(mockDB)

	table.Remove(ynab.TypeCash)
	if err := table.Save(); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}

	stored, err := mockDB.GetAccountTypeMappings()
	if err != nil {
		t.Fatalf("Failed to read back: %v", err)
	}
	if len(stored) != len(ynab.AllAccountTypes)-1 {
		t.Errorf("Expected %d stored mappings, got %d", len(ynab.AllAccountTypes)-1, len(stored))
	}
}
