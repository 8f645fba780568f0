package models

import "time"

// PluginModel names the external record kind a link points at. Only
// YNAB accounts are linkable today.
type PluginModel string

const PluginModelAccount PluginModel = "account"

// Link joins one local record to one external record, 1:1 on both
// sides. It survives neither an unlink nor deletion of its local side.
type Link struct {
	ID           int64          `json:"id"`
	CoreModel    RecordCategory `json:"coreModel"`
	CoreID       int64          `json:"coreId"`
	PluginModel  PluginModel    `json:"pluginModel"`
	PluginID     string         `json:"pluginId"`
	CreatedAt    time.Time      `json:"createdAt"`
	LastSyncedAt *time.Time     `json:"lastSyncedAt"`
}
