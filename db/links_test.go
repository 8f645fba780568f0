package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jselby/budgetlink/pkg/models"
)

func TestCreateAndGetLink(t *testing.T) {
	db := setupTestDB(t)

	link := &models.Link{
		CoreModel:   models.CategoryAccount,
		CoreID:      1,
		PluginModel: models.PluginModelAccount,
		PluginID:    "ynab-acc-1",
	}

	id, err := db.CreateLink(link)
	assert.NoError(t, err)
	assert.Greater(t, id, int64(0))
	assert.False(t, link.CreatedAt.IsZero())

	retrieved, err := db.GetLink(id)
	assert.NoError(t, err)
	assert.NotNil(t, retrieved)
	assert.Equal(t, link.CoreModel, retrieved.CoreModel)
	assert.Equal(t, link.CoreID, retrieved.CoreID)
	assert.Equal(t, link.PluginID, retrieved.PluginID)
	assert.Nil(t, retrieved.LastSyncedAt)
}

func TestCreateLinkUniqueConstraints(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.CreateLink(&models.Link{
		CoreModel:   models.CategoryAccount,
		CoreID:      1,
		PluginModel: models.PluginModelAccount,
		PluginID:    "ynab-acc-1",
	})
	assert.NoError(t, err)

	t.Run("Same record rejected", func(t *testing.T) {
		_, err := db.CreateLink(&models.Link{
			CoreModel:   models.CategoryAccount,
			CoreID:      1,
			PluginModel: models.PluginModelAccount,
			PluginID:    "ynab-acc-2",
		})
		assert.Error(t, err)
	})

	t.Run("Same plugin account rejected", func(t *testing.T) {
		_, err := db.CreateLink(&models.Link{
			CoreModel:   models.CategoryAccount,
			CoreID:      2,
			PluginModel: models.PluginModelAccount,
			PluginID:    "ynab-acc-1",
		})
		assert.Error(t, err)
	})

	t.Run("Same record id in another category allowed", func(t *testing.T) {
		_, err := db.CreateLink(&models.Link{
			CoreModel:   models.CategoryCreditCard,
			CoreID:      1,
			PluginModel: models.PluginModelAccount,
			PluginID:    "ynab-acc-3",
		})
		assert.NoError(t, err)
	})
}

func TestGetLinkForRecordAndPlugin(t *testing.T) {
	db := setupTestDB(t)

	link := &models.Link{
		CoreModel:   models.CategoryAsset,
		CoreID:      7,
		PluginModel: models.PluginModelAccount,
		PluginID:    "ynab-acc-7",
	}
	_, err := db.CreateLink(link)
	assert.NoError(t, err)

	byRecord, err := db.GetLinkForRecord(models.CategoryAsset, 7)
	assert.NoError(t, err)
	assert.NotNil(t, byRecord)
	assert.Equal(t, link.ID, byRecord.ID)

	byPlugin, err := db.GetLinkForPlugin(models.PluginModelAccount, "ynab-acc-7")
	assert.NoError(t, err)
	assert.NotNil(t, byPlugin)
	assert.Equal(t, link.ID, byPlugin.ID)

	missing, err := db.GetLinkForRecord(models.CategoryAsset, 8)
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDeleteLinkIdempotent(t *testing.T) {
	db := setupTestDB(t)

	link := &models.Link{
		CoreModel:   models.CategoryAccount,
		CoreID:      1,
		PluginModel: models.PluginModelAccount,
		PluginID:    "ynab-acc-1",
	}
	id, err := db.CreateLink(link)
	assert.NoError(t, err)

	assert.NoError(t, db.DeleteLink(id))
	// A second delete of the same link is fine
	assert.NoError(t, db.DeleteLink(id))

	gone, err := db.GetLink(id)
	assert.NoError(t, err)
	assert.Nil(t, gone)
}

func TestTouchLinkSynced(t *testing.T) {
	db := setupTestDB(t)

	link := &models.Link{
		CoreModel:   models.CategoryAccount,
		CoreID:      1,
		PluginModel: models.PluginModelAccount,
		PluginID:    "ynab-acc-1",
	}
	id, err := db.CreateLink(link)
	assert.NoError(t, err)

	syncedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	assert.NoError(t, db.TouchLinkSynced(id, syncedAt))

	retrieved, err := db.GetLink(id)
	assert.NoError(t, err)
	assert.NotNil(t, retrieved.LastSyncedAt)
	assert.True(t, retrieved.LastSyncedAt.Equal(syncedAt))

	assert.Error(t, db.TouchLinkSynced(999, syncedAt))
}

func TestGetLinksOrderedByID(t *testing.T) {
	db := setupTestDB(t)

	for i := int64(1); i <= 3; i++ {
		_, err := db.CreateLink(&models.Link{
			CoreModel:   models.CategoryAccount,
			CoreID:      i,
			PluginModel: models.PluginModelAccount,
			PluginID:    "ynab-acc-" + string(rune('0'+i)),
		})
		assert.NoError(t, err)
	}

	links, err := db.GetLinks()
	assert.NoError(t, err)
	assert.Len(t, links, 3)
	for i := 1; i < len(links); i++ {
		assert.Less(t, links[i-1].ID, links[i].ID)
	}
}
