package db

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jselby/budgetlink/pkg/models"
)

func TestAddTypeLookupReusesExisting(t *testing.T) {
	db := setupTestDB(t)

	first, err := db.AddTypeLookup(models.CategoryAccount, "chequing")
	assert.NoError(t, err)
	assert.Greater(t, first, int64(0))

	// Adding the same name again returns the existing entry
	second, err := db.AddTypeLookup(models.CategoryAccount, "chequing")
	assert.NoError(t, err)
	assert.Equal(t, first, second)

	// The same name under another category is a distinct entry
	other, err := db.AddTypeLookup(models.CategoryAsset, "chequing")
	assert.NoError(t, err)
	assert.NotEqual(t, first, other)

	lookups, err := db.GetTypeLookups(models.CategoryAccount)
	assert.NoError(t, err)
	assert.Len(t, lookups, 1)
	assert.Equal(t, "chequing", lookups[0].Name)
}

func TestAddBankReusesExisting(t *testing.T) {
	db := setupTestDB(t)

	first, err := db.AddBank("Springfield Credit Union")
	assert.NoError(t, err)

	second, err := db.AddBank("Springfield Credit Union")
	assert.NoError(t, err)
	assert.Equal(t, first, second)

	banks, err := db.GetBanks()
	assert.NoError(t, err)
	assert.Len(t, banks, 1)
}
