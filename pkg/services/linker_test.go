package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jselby/budgetlink/db"
	"github.com/jselby/budgetlink/pkg/http/ynab"
	"github.com/jselby/budgetlink/pkg/models"
)

func newTestLinker(mockDB *db.MockStore, mockClient *ynab.MockClient) *Linker {
	if mockClient == nil {
		mockClient = ynab.NewMockClient()
	}
	return NewLinker(mockDB, NewSyncer(mockClient, mockDB, "USD"))
}

func TestLinkCreatesLinkAndSyncs(t *testing.T) {
	mockDB := db.NewMockStore()
	recordID, _ := mockDB.SaveRecord(&models.LocalRecord{
		Category: models.CategoryAccount,
		Name:     "Checking",
	})

	mockClient := &ynab.MockClient{
		Accounts: []ynab.Account{
			{ID: "ynab-acc-1", Name: "Checking", Balance: 50000},
		},
	}
	linker := newTestLinker(mockDB, mockClient)

	link, err := linker.Link(context.Background(), models.CategoryAccount, recordID, "ynab-acc-1")
	if err != nil {
		t.Fatalf("Failed to link: %v", err)
	}
	if link.ID == 0 {
		t.Errorf("Expected link to have an id")
	}

	// The immediate sync filled the mirrored fields
	record, _ := mockDB.GetRecord(recordID)
	if record.Mirrored.Balance.Value != "50.00" {
		t.Errorf("Expected balance 50.00 after linking, got %s", record.Mirrored.Balance.Value)
	}
}

func TestLinkSyncFailureKeepsLink(t *testing.T) {
	mockDB := db.NewMockStore()
	recordID, _ := mockDB.SaveRecord(&models.LocalRecord{
		Category: models.CategoryAccount,
		Name:     "Checking",
	})

	mockClient := &ynab.MockClient{GetAccountErr: errors.New("api unavailable")}
	linker := newTestLinker(mockDB, mockClient)

	link, err := linker.Link(context.Background(), models.CategoryAccount, recordID, "ynab-acc-1")
	if err != nil {
		t.Fatalf("Link should survive a failed initial sync: %v", err)
	}

	stored, _ := mockDB.GetLink(link.ID)
	if stored == nil {
		t.Fatalf("Expected link to be persisted")
	}
	if stored.LastSyncedAt != nil {
		t.Errorf("Expected last_synced_at to stay unset after failed sync")
	}
}

func TestLinkRejectsAlreadyLinkedRecord(t *testing.T) {
	mockDB := db.NewMockStore()
	recordID, _ := mockDB.SaveRecord(&models.LocalRecord{
		Category: models.CategoryAccount,
		Name:     "Checking",
	})
	otherID, _ := mockDB.SaveRecord(&models.LocalRecord{
		Category: models.CategoryAccount,
		Name:     "Savings",
	})

	mockClient := &ynab.MockClient{
		Accounts: []ynab.Account{
			{ID: "ynab-acc-1", Name: "Checking"},
			{ID: "ynab-acc-2", Name: "Savings"},
		},
	}
	linker := newTestLinker(mockDB, mockClient)

	if _, err := linker.Link(context.Background(), models.CategoryAccount, recordID, "ynab-acc-1"); err != nil {
		t.Fatalf("First link failed: %v", err)
	}

	t.Run("Record side conflict", func(t *testing.T) {
		_, err := linker.Link(context.Background(), models.CategoryAccount, recordID, "ynab-acc-2")
		if !errors.Is(err, ErrAlreadyLinked) {
			t.Errorf("Expected ErrAlreadyLinked, got %v", err)
		}
	})

	t.Run("Plugin side conflict", func(t *testing.T) {
		_, err := linker.Link(context.Background(), models.CategoryAccount, otherID, "ynab-acc-1")
		if !errors.Is(err, ErrAlreadyLinked) {
			t.Errorf("Expected ErrAlreadyLinked, got %v", err)
		}
	})
}

func TestLinkUnknownRecord(t *testing.T) {
	mockDB := db.NewMockStore()
	linker := newTestLinker(mockDB, nil)

	if _, err := linker.Link(context.Background(), models.CategoryAccount, 42, "ynab-acc-1"); err == nil {
		t.Errorf("Expected error for unknown record, got nil")
	}
}

func TestLinkCategoryMismatch(t *testing.T) {
	mockDB := db.NewMockStore()
	recordID, _ := mockDB.SaveRecord(&models.LocalRecord{
		Category: models.CategoryCreditCard,
		Name:     "Visa",
	})
	linker := newTestLinker(mockDB, nil)

	if _, err := linker.Link(context.Background(), models.CategoryAccount, recordID, "ynab-acc-1"); err == nil {
		t.Errorf("Expected error for category mismatch, got nil")
	}
}

func TestUnlinkKeepsMirroredValuesAndAllowsRelink(t *testing.T) {
	mockDB := db.NewMockStore()
	recordID, _ := mockDB.SaveRecord(&models.LocalRecord{
		Category: models.CategoryAccount,
		Name:     "Checking",
	})

	mockClient := &ynab.MockClient{
		Accounts: []ynab.Account{
			{ID: "ynab-acc-1", Name: "Checking", Balance: 50000},
		},
	}
	linker := newTestLinker(mockDB, mockClient)

	link, err := linker.Link(context.Background(), models.CategoryAccount, recordID, "ynab-acc-1")
	if err != nil {
		t.Fatalf("Failed to link: %v", err)
	}

	if err := linker.Unlink(link.ID); err != nil {
		t.Fatalf("Failed to unlink: %v", err)
	}
	// Unlinking twice is fine
	if err := linker.Unlink(link.ID); err != nil {
		t.Fatalf("Second unlink should be a no-op: %v", err)
	}

	record, _ := mockDB.GetRecord(recordID)
	if record.Mirrored.Balance.Value != "50.00" {
		t.Errorf("Expected mirrored values to survive unlinking, got %s", record.Mirrored.Balance.Value)
	}

	// The freed pair can be linked again
	if _, err := linker.Link(context.Background(), models.CategoryAccount, recordID, "ynab-acc-1"); err != nil {
		t.Fatalf("Relink after unlink failed: %v", err)
	}
}

func TestUpdateRecordWhileUnlinked(t *testing.T) {
	mockDB := db.NewMockStore()
	recordID, _ := mockDB.SaveRecord(&models.LocalRecord{
		Category: models.CategoryAccount,
		Name:     "Checking",
	})
	linker := newTestLinker(mockDB, nil)

	update := &models.LocalRecord{
		ID:       recordID,
		Category: models.CategoryAccount,
		Name:     "Renamed",
		Mirrored: models.MirroredFields{
			Balance: models.Amount{Value: "77.00", Currency: "USD"},
		},
	}
	if err := linker.UpdateRecord(update); err != nil {
		t.Fatalf("Failed to update unlinked record: %v", err)
	}

	record, _ := mockDB.GetRecord(recordID)
	if record.Name != "Renamed" {
		t.Errorf("Expected name to update, got %s", record.Name)
	}
	// Mirrored fields are writable while unlinked
	if record.Mirrored.Balance.Value != "77.00" {
		t.Errorf("Expected balance 77.00, got %s", record.Mirrored.Balance.Value)
	}
}

func TestUpdateRecordRejectsMirroredEditsWhileLinked(t *testing.T) {
	mockDB := db.NewMockStore()
	recordID, _ := mockDB.SaveRecord(&models.LocalRecord{
		Category: models.CategoryAccount,
		Name:     "Checking",
	})

	reconciled := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	mockClient := &ynab.MockClient{
		Accounts: []ynab.Account{
			{ID: "ynab-acc-1", Name: "Checking", Balance: 50000, LastReconciledAt: &reconciled},
		},
	}
	linker := newTestLinker(mockDB, mockClient)

	if _, err := linker.Link(context.Background(), models.CategoryAccount, recordID, "ynab-acc-1"); err != nil {
		t.Fatalf("Failed to link: %v", err)
	}

	synced, _ := mockDB.GetRecord(recordID)

	t.Run("Mirrored edit rejected", func(t *testing.T) {
		update := &models.LocalRecord{
			ID:       recordID,
			Category: models.CategoryAccount,
			Name:     "Checking",
			Mirrored: models.MirroredFields{
				Balance: models.Amount{Value: "999.99", Currency: "USD"},
			},
		}
		err := linker.UpdateRecord(update)
		if !errors.Is(err, ErrMirroredFieldsReadOnly) {
			t.Errorf("Expected ErrMirroredFieldsReadOnly, got %v", err)
		}
	})

	t.Run("User field edit allowed", func(t *testing.T) {
		update := &models.LocalRecord{
			ID:       recordID,
			Category: models.CategoryAccount,
			Name:     "Renamed Checking",
			Notes:    "still linked",
			Mirrored: synced.Mirrored,
		}
		if err := linker.UpdateRecord(update); err != nil {
			t.Fatalf("Expected user field edit to succeed: %v", err)
		}
		record, _ := mockDB.GetRecord(recordID)
		if record.Name != "Renamed Checking" {
			t.Errorf("Expected name to update, got %s", record.Name)
		}
	})
}
