package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/jselby/budgetlink/pkg/models"
	"github.com/jselby/budgetlink/pkg/services"
)

func (r *replState) handleCrossRefs(input string) {
	parts := strings.Fields(input)
	if len(parts) < 2 {
		fmt.Println("Usage: crossref list|reset [type]")
		fmt.Println("Types: accounts, categories, payees, transactions")
		return
	}

	recordType := services.CrossRefTypeAccounts
	if len(parts) > 2 {
		recordType = parts[2]
	}

	switch parts[1] {
	case "list":
		refs := r.crossRefs.List(recordType)
		if len(refs) == 0 {
			fmt.Printf("No cross-references for %s\n", recordType)
			return
		}
		fmt.Printf("Cross-references for %s:\n\n", recordType)
		fmt.Printf("%-18s %-20s %-24s %-8s\n", "Source", "Display", "Columns", "Enabled")
		fmt.Println(strings.Repeat("-", 75))
		for _, ref := range refs {
			fmt.Printf("%-18s %-20s %-24s %-8t\n", ref.SourceValue, ref.DisplayValue, ref.Column, ref.Enabled)
		}
	case "reset":
		if err := r.crossRefs.ResetToDefaults(recordType); err != nil {
			log.Error().Err(err).Msg("Error resetting cross-references")
			return
		}
		fmt.Printf("Cross-references for %s reset to defaults\n", recordType)
	default:
		fmt.Println("Usage: crossref list|reset [type]")
	}
}

func (r *replState) handleTypeMappings(input string) {
	parts := strings.Fields(input)
	if len(parts) < 2 {
		fmt.Println("Usage: typemap list|available|reset|erase|save")
		fmt.Println("       typemap enable|disable|rm <ynab_type>")
		fmt.Println("       typemap add <ynab_type> <category>")
		return
	}

	switch parts[1] {
	case "list":
		mappings := r.typeMappings.Mappings()
		if len(mappings) == 0 {
			fmt.Println("No type mappings configured")
			return
		}
		fmt.Printf("%-16s %-14s %-10s %-8s\n", "YNAB Type", "Category", "Subtype", "Enabled")
		fmt.Println(strings.Repeat("-", 52))
		for _, mapping := range mappings {
			subtype := "-"
			if mapping.DefaultSubtypeID != nil {
				subtype = fmt.Sprintf("%d", *mapping.DefaultSubtypeID)
			}
			fmt.Printf("%-16s %-14s %-10s %-8t\n", mapping.YNABType, mapping.Category, subtype, mapping.Enabled)
		}
	case "available":
		available := r.typeMappings.AvailableTypes()
		if len(available) == 0 {
			fmt.Println("All YNAB account types are mapped")
			return
		}
		fmt.Println("Unmapped YNAB account types:")
		for _, code := range available {
			fmt.Printf("  %s\n", code)
		}
	case "add":
		if len(parts) < 4 {
			fmt.Println("Usage: typemap add <ynab_type> <category>")
			return
		}
		category := models.RecordCategory(parts[len(parts)-1])
		if !category.Valid() {
			fmt.Printf("Unknown category %q. Categories: account, credit_card, asset, liability\n", parts[len(parts)-1])
			return
		}
		code := r.resolveYNABType(parts[2 : len(parts)-1])
		err := r.typeMappings.Add(models.AccountTypeMapping{
			YNABType: code,
			Category: category,
			Enabled:  true,
		})
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("Mapped %s -> %s\n", code, category)
	case "rm":
		if len(parts) < 3 {
			fmt.Println("Usage: typemap rm <ynab_type>")
			return
		}
		code := r.resolveYNABType(parts[2:])
		r.typeMappings.Remove(code)
		fmt.Printf("Removed mapping for %s\n", code)
	case "enable", "disable":
		if len(parts) < 3 {
			fmt.Println("Usage: typemap enable|disable <ynab_type>")
			return
		}
		code := r.resolveYNABType(parts[2:])
		if err := r.typeMappings.SetEnabled(code, parts[1] == "enable"); err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("Mapping for %s %sd\n", code, parts[1])
	case "reset":
		r.typeMappings.ResetToDefaults()
		fmt.Println("Type mappings reset to defaults (not yet saved)")
	case "erase":
		r.typeMappings.EraseAll()
		fmt.Println("Type mappings erased (not yet saved)")
	case "save":
		if err := r.typeMappings.Save(); err != nil {
			log.Error().Err(err).Msg("Error saving type mappings")
			return
		}
		fmt.Println("Type mappings saved")
	default:
		fmt.Println("Usage: typemap list|available|add|rm|enable|disable|reset|erase|save")
	}
}

// resolveYNABType accepts either a raw YNAB type code or its display
// label ("Credit Card" -> "creditCard") from the accounts
// cross-references.
func (r *replState) resolveYNABType(args []string) string {
	arg := strings.Trim(strings.Join(args, " "), "\"")
	return r.crossRefs.ResolveSource(services.CrossRefTypeAccounts, "type", arg)
}

func (r *replState) handleColumns(input string) {
	parts := strings.Fields(input)
	if len(parts) < 3 {
		fmt.Println("Usage: columns show|reset|hide|unhide <type> [field]")
		fmt.Println("       columns order <type> <field> [field...]")
		fmt.Println("       columns set <type> <field> <flag> [value]")
		fmt.Println("Types: accounts, credit_cards, assets, liabilities, ynab_accounts")
		return
	}

	model := services.NewColumnModel(r.store, parts[2])
	model.Load()

	switch parts[1] {
	case "show":
		displayed := model.Displayed()
		available := model.Available()
		if len(displayed) == 0 && len(available) == 0 {
			fmt.Printf("No columns configured for %s\n", parts[2])
			return
		}
		fmt.Printf("Displayed columns for %s:\n\n", parts[2])
		fmt.Printf("%-5s %-22s %-22s %-6s\n", "Order", "Field", "Header", "Width")
		fmt.Println(strings.Repeat("-", 60))
		for _, cfg := range displayed {
			fmt.Printf("%-5d %-22s %-22s %-6d\n", cfg.Order, cfg.Field, cfg.HeaderName, cfg.Width)
		}
		if len(available) > 0 {
			fmt.Println("\nAvailable (hidden) columns:")
			for _, cfg := range available {
				fmt.Printf("  %s\n", cfg.Field)
			}
		}
	case "hide":
		if len(parts) < 4 {
			fmt.Println("Usage: columns hide <type> <field> [field...]")
			return
		}
		model.MoveToAvailable(parts[3:])
		if err := model.Save(); err != nil {
			log.Error().Err(err).Msg("Error saving column configuration")
			return
		}
		fmt.Printf("Hid %d column(s)\n", len(parts[3:]))
	case "unhide":
		if len(parts) < 4 {
			fmt.Println("Usage: columns unhide <type> <field> [field...]")
			return
		}
		model.MoveToDisplayed(parts[3:])
		if err := model.Save(); err != nil {
			log.Error().Err(err).Msg("Error saving column configuration")
			return
		}
		fmt.Printf("Unhid %d column(s)\n", len(parts[3:]))
	case "order":
		if len(parts) < 4 {
			fmt.Println("Usage: columns order <type> <field> [field...]")
			return
		}
		model.Reorder(parts[3:])
		if err := model.Save(); err != nil {
			log.Error().Err(err).Msg("Error saving column configuration")
			return
		}
		fmt.Println("Column order updated")
	case "set":
		if len(parts) < 5 {
			fmt.Println("Usage: columns set <type> <field> <flag> [value]")
			fmt.Println("Flags: header, width, format, checkbox, currency, thousands, datetime, linkicon, invertsign, nosign")
			return
		}
		patch, err := buildFieldConfigPatch(parts[4], parts[5:])
		if err != nil {
			fmt.Println(err)
			return
		}
		if err := model.SetFieldConfig(parts[3], patch); err != nil {
			fmt.Println(err)
			return
		}
		if err := model.Save(); err != nil {
			log.Error().Err(err).Msg("Error saving column configuration")
			return
		}
		fmt.Printf("Updated column %s for %s\n", parts[3], parts[2])
	case "reset":
		model.ResetToDefaults()
		if err := model.Save(); err != nil {
			log.Error().Err(err).Msg("Error saving column configuration")
			return
		}
		fmt.Printf("Columns for %s reset to defaults\n", parts[2])
	default:
		fmt.Println("Usage: columns show|reset|hide|unhide|order|set <type> [fields...]")
	}
}

// buildFieldConfigPatch translates one flag argument into a partial
// column update.
func buildFieldConfigPatch(flag string, values []string) (services.FieldConfigPatch, error) {
	var patch services.FieldConfigPatch

	boolValue := func() (*bool, error) {
		if len(values) != 1 || (values[0] != "on" && values[0] != "off") {
			return nil, fmt.Errorf("flag %q takes on|off", flag)
		}
		enabled := values[0] == "on"
		return &enabled, nil
	}

	var err error
	switch flag {
	case "header":
		if len(values) == 0 {
			return patch, fmt.Errorf("flag %q takes a header name", flag)
		}
		header := strings.Trim(strings.Join(values, " "), "\"")
		patch.HeaderName = &header
	case "width":
		if len(values) != 1 {
			return patch, fmt.Errorf("flag %q takes a number", flag)
		}
		width, convErr := strconv.Atoi(values[0])
		if convErr != nil {
			return patch, fmt.Errorf("invalid width %q", values[0])
		}
		patch.Width = &width
	case "format":
		if len(values) == 0 {
			return patch, fmt.Errorf("flag %q takes a datetime layout", flag)
		}
		layout := strings.Trim(strings.Join(values, " "), "\"")
		patch.DatetimeFormat = &layout
	case "checkbox":
		patch.UseCheckbox, err = boolValue()
	case "currency":
		patch.UseCurrency, err = boolValue()
	case "thousands":
		patch.UseThousandsSeparator, err = boolValue()
	case "datetime":
		patch.UseDatetime, err = boolValue()
	case "linkicon":
		patch.UseLinkIcon, err = boolValue()
	case "invertsign":
		patch.InvertNegativeSign, err = boolValue()
	case "nosign":
		patch.DisableNegativeSign, err = boolValue()
	default:
		return patch, fmt.Errorf("unknown flag %q", flag)
	}
	return patch, err
}
