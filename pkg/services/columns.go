package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/jselby/budgetlink/db"
	"github.com/jselby/budgetlink/pkg/models"
	"github.com/jselby/budgetlink/pkg/utils"
)

// defaultFields lists the column set per record type; the leading
// fields form the default visible subset.
var defaultFields = map[string]struct {
	fields []string
	hidden []string
}{
	"accounts": {
		fields: []string{"name", "bank", "account_type", "balance", "cleared_balance", "on_budget", "closed", "last_reconciled_at", "linked"},
		hidden: []string{"tier", "notes"},
	},
	"credit_cards": {
		fields: []string{"name", "bank", "card_type", "balance", "cleared_balance", "closed", "last_reconciled_at", "linked"},
		hidden: []string{"notes"},
	},
	"assets": {
		fields: []string{"name", "asset_type", "balance", "tier", "linked"},
		hidden: []string{"notes"},
	},
	"liabilities": {
		fields: []string{"name", "liability_type", "balance", "linked"},
		hidden: []string{"notes"},
	},
	"ynab_accounts": {
		fields: []string{"name", "type", "balance", "cleared_balance", "uncleared_balance", "on_budget", "closed", "last_reconciled_at", "linked"},
		hidden: []string{"note"},
	},
}

// DefaultColumnConfigs builds the shipped column set for a record
// type, inferring formatting flags from field semantics.
func DefaultColumnConfigs(recordType string) []models.ColumnConfig {
	defaults, ok := defaultFields[recordType]
	if !ok {
		return nil
	}

	configs := make([]models.ColumnConfig, 0, len(defaults.fields)+len(defaults.hidden))
	for i, field := range defaults.fields {
		cfg := defaultColumnConfig(recordType, field)
		cfg.Visible = true
		cfg.Order = i
		configs = append(configs, cfg)
	}
	for _, field := range defaults.hidden {
		cfg := defaultColumnConfig(recordType, field)
		cfg.Visible = false
		cfg.Order = models.HiddenOrder
		configs = append(configs, cfg)
	}
	return configs
}

func defaultColumnConfig(recordType, field string) models.ColumnConfig {
	cfg := models.ColumnConfig{
		RecordType: recordType,
		Field:      field,
		HeaderName: utils.Capitalize(strings.ReplaceAll(field, "_", " ")),
		Width:      150,
	}
	switch {
	case strings.Contains(field, "balance"):
		cfg.UseCurrency = true
		cfg.UseThousandsSeparator = true
		cfg.Width = 120
	case field == "on_budget" || field == "closed":
		cfg.UseCheckbox = true
		cfg.Width = 90
	case strings.HasSuffix(field, "_at"):
		cfg.UseDatetime = true
		cfg.DatetimeFormat = "2006-01-02 15:04"
	case field == "linked":
		cfg.UseLinkIcon = true
		cfg.Width = 60
	}
	return cfg
}

// FieldConfigPatch is a partial formatting update for one column; nil
// fields are left untouched. Visibility and order are never part of a
// patch.
type FieldConfigPatch struct {
	HeaderName            *string
	Width                 *int
	UseCheckbox           *bool
	UseCurrency           *bool
	InvertNegativeSign    *bool
	DisableNegativeSign   *bool
	UseThousandsSeparator *bool
	UseDatetime           *bool
	DatetimeFormat        *string
	UseLinkIcon           *bool
}

// ColumnModel maintains the display columns of one record-type grid:
// a visible, ordered list and a hidden pool, plus per-field formatting
// flags.
type ColumnModel struct {
	store      db.Store
	recordType string
	configs    []models.ColumnConfig
	loaded     bool
}

func NewColumnModel(store db.Store, recordType string) *ColumnModel {
	return &ColumnModel{store: store, recordType: recordType}
}

// Load pulls stored configuration, degrading to the defaults when the
// store is empty or unreadable.
func (c *ColumnModel) Load() {
	if c.loaded {
		return
	}
	configs, err := c.store.GetColumnConfigs(c.recordType)
	if err != nil {
		log.Warn().Err(err).Str("record_type", c.recordType).
			Msg("Failed to load column configs, using defaults")
		configs = DefaultColumnConfigs(c.recordType)
	} else if len(configs) == 0 {
		configs = DefaultColumnConfigs(c.recordType)
	}
	c.configs = configs
	c.loaded = true
}

// Displayed returns the visible columns in display order, ties broken
// by field name.
func (c *ColumnModel) Displayed() []models.ColumnConfig {
	c.Load()
	visible := lo.Filter(c.configs, func(cfg models.ColumnConfig, _ int) bool {
		return cfg.Visible
	})
	sort.SliceStable(visible, func(i, j int) bool {
		if visible[i].Order != visible[j].Order {
			return visible[i].Order < visible[j].Order
		}
		return visible[i].Field < visible[j].Field
	})
	return visible
}

// Available returns the hidden columns sorted by field name.
func (c *ColumnModel) Available() []models.ColumnConfig {
	c.Load()
	hidden := lo.Filter(c.configs, func(cfg models.ColumnConfig, _ int) bool {
		return !cfg.Visible
	})
	sort.Slice(hidden, func(i, j int) bool {
		return hidden[i].Field < hidden[j].Field
	})
	return hidden
}

// MoveToDisplayed makes the given fields visible, appending them to
// the end of the display order.
func (c *ColumnModel) MoveToDisplayed(fields []string) {
	c.Load()
	next := len(c.Displayed())
	for _, field := range fields {
		for i := range c.configs {
			if c.configs[i].Field == field && !c.configs[i].Visible {
				c.configs[i].Visible = true
				c.configs[i].Order = next
				next++
			}
		}
	}
}

// MoveToAvailable hides the given fields and renumbers the remaining
// visible columns.
func (c *ColumnModel) MoveToAvailable(fields []string) {
	c.Load()
	for _, field := range fields {
		for i := range c.configs {
			if c.configs[i].Field == field && c.configs[i].Visible {
				c.configs[i].Visible = false
				c.configs[i].Order = models.HiddenOrder
			}
		}
	}
	c.renumber()
}

// Reorder rewrites the display order to exactly the given field list.
// Every visible column gets its index as the order; hidden columns
// keep the sentinel so they never interleave. Reordering twice with
// the same list is a no-op.
func (c *ColumnModel) Reorder(orderedFields []string) {
	c.Load()
	position := make(map[string]int, len(orderedFields))
	for i, field := range orderedFields {
		position[field] = i
	}
	for i := range c.configs {
		if !c.configs[i].Visible {
			c.configs[i].Order = models.HiddenOrder
			continue
		}
		if pos, ok := position[c.configs[i].Field]; ok {
			c.configs[i].Order = pos
		}
	}
}

func (c *ColumnModel) renumber() {
	for i, cfg := range c.Displayed() {
		for j := range c.configs {
			if c.configs[j].Field == cfg.Field {
				c.configs[j].Order = i
			}
		}
	}
}

// SetFieldConfig merges a partial formatting update into one column
// without disturbing visibility or order.
func (c *ColumnModel) SetFieldConfig(field string, patch FieldConfigPatch) error {
	c.Load()
	for i := range c.configs {
		if c.configs[i].Field != field {
			continue
		}
		cfg := &c.configs[i]
		if patch.HeaderName != nil {
			cfg.HeaderName = *patch.HeaderName
		}
		if patch.Width != nil {
			cfg.Width = *patch.Width
		}
		if patch.UseCheckbox != nil {
			cfg.UseCheckbox = *patch.UseCheckbox
		}
		if patch.UseCurrency != nil {
			cfg.UseCurrency = *patch.UseCurrency
		}
		if patch.InvertNegativeSign != nil {
			cfg.InvertNegativeSign = *patch.InvertNegativeSign
		}
		if patch.DisableNegativeSign != nil {
			cfg.DisableNegativeSign = *patch.DisableNegativeSign
		}
		if patch.UseThousandsSeparator != nil {
			cfg.UseThousandsSeparator = *patch.UseThousandsSeparator
		}
		if patch.UseDatetime != nil {
			cfg.UseDatetime = *patch.UseDatetime
		}
		if patch.DatetimeFormat != nil {
			cfg.DatetimeFormat = *patch.DatetimeFormat
		}
		if patch.UseLinkIcon != nil {
			cfg.UseLinkIcon = *patch.UseLinkIcon
		}
		return nil
	}
	return fmt.Errorf("no column %q for record type %q", field, c.recordType)
}

// ResetToDefaults discards all customization for this record type.
func (c *ColumnModel) ResetToDefaults() {
	c.configs = DefaultColumnConfigs(c.recordType)
	c.loaded = true
}

// Save snapshots the full merged column state atomically.
func (c *ColumnModel) Save() error {
	c.Load()
	return c.store.ReplaceColumnConfigs(c.recordType, c.configs)
}
