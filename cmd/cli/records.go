package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/jselby/budgetlink/pkg/models"
)

func (r *replState) handleRecords(input string) {
	parts := strings.Fields(input)
	if len(parts) < 2 {
		fmt.Println("Invalid record command format.")
		fmt.Println("Usage: record <list|add|rm>")
		return
	}

	switch parts[1] {
	case "list", "l":
		var category models.RecordCategory
		if len(parts) >= 3 {
			category = models.RecordCategory(parts[2])
			if !category.Valid() {
				fmt.Printf("Unknown category %q. Categories: account, credit_card, asset, liability\n", parts[2])
				return
			}
		}
		r.listRecords(category)
	case "add", "a":
		if len(parts) < 4 {
			fmt.Println("Usage: record add <category> <name> [type]")
			fmt.Println("Example: record add account \"House Fund\" Savings")
			return
		}
		r.addRecord(parts[2:])
	case "rm", "remove", "delete":
		if len(parts) < 3 {
			fmt.Println("Usage: record rm <id>")
			return
		}
		id, err := strconv.ParseInt(parts[2], 10, 64)
		if err != nil {
			fmt.Println("Invalid record id.")
			return
		}
		if err := r.store.RemoveRecord(id); err != nil {
			log.Error().Err(err).Msg("Error removing record")
			return
		}
		log.Info().Int64("record", id).Msg("Record removed successfully")
	default:
		fmt.Println("Unknown command. Supported commands are: list, add, rm")
	}
}

func (r *replState) listRecords(category models.RecordCategory) {
	records, err := r.store.GetRecords(category)
	if err != nil {
		log.Error().Err(err).Msg("Error fetching records")
		return
	}

	if len(records) == 0 {
		fmt.Println("No records found")
		return
	}

	fmt.Printf("Found %d records:\n\n", len(records))
	fmt.Printf("%-6s %-12s %-30s %15s %-10s %-8s %-8s\n",
		"ID", "Category", "Name", "Balance", "On Budget", "Closed", "Linked")
	fmt.Println(strings.Repeat("-", 100))
	for _, record := range records {
		link, err := r.store.GetLinkForRecord(record.Category, record.ID)
		if err != nil {
			log.Error().Err(err).Msg("Error fetching link")
			return
		}
		linked := ""
		if link != nil {
			linked = "yes"
		}
		fmt.Printf("%-6d %-12s %-30s %15s %-10t %-8t %-8s\n",
			record.ID,
			record.Category,
			record.Name[:min(30, len(record.Name))],
			record.Mirrored.Balance.Value+" "+record.Mirrored.Balance.Currency,
			record.Mirrored.OnBudget,
			record.Mirrored.Closed,
			linked)
	}
}

func (r *replState) addRecord(args []string) {
	category := models.RecordCategory(args[0])
	if !category.Valid() {
		fmt.Printf("Unknown category %q. Categories: account, credit_card, asset, liability\n", args[0])
		return
	}

	name := strings.Trim(args[1], "\"")
	record := &models.LocalRecord{
		Category: category,
		Name:     name,
		Tier:     models.TierLiquid,
	}

	// Optional subtype, created on the fly when it does not exist yet
	if len(args) >= 3 {
		typeID, err := r.store.AddTypeLookup(category, strings.Trim(args[2], "\""))
		if err != nil {
			log.Error().Err(err).Msg("Error resolving record type")
			return
		}
		record.TypeID = typeID
	}

	id, err := r.store.SaveRecord(record)
	if err != nil {
		log.Error().Err(err).Msg("Error adding record")
		return
	}
	log.Info().Int64("record", id).Str("name", name).Msg("Record added successfully")
}

func (r *replState) handleLedger(input string) {
	parts := strings.Fields(input)
	if len(parts) < 2 {
		fmt.Printf("Usage: %s <list|add>\n", parts[0])
		return
	}

	switch parts[0] {
	case "bank":
		r.handleNamedList(parts, "bank", func() ([]string, error) {
			banks, err := r.store.GetBanks()
			return lo.Map(banks, func(b models.Bank, _ int) string { return b.Name }), err
		}, r.store.AddBank)
	case "category":
		r.handleNamedList(parts, "category", func() ([]string, error) {
			categories, err := r.store.GetCategories()
			return lo.Map(categories, func(c models.Category, _ int) string { return c.Name }), err
		}, r.store.AddCategory)
	case "payee":
		r.handleNamedList(parts, "payee", func() ([]string, error) {
			payees, err := r.store.GetPayees()
			return lo.Map(payees, func(p models.Payee, _ int) string { return p.Name }), err
		}, r.store.AddPayee)
	case "tx":
		r.handleTransactions(parts)
	}
}

func (r *replState) handleNamedList(parts []string, noun string,
	list func() ([]string, error), add func(name string) (int64, error)) {
	switch parts[1] {
	case "list", "l":
		names, err := list()
		if err != nil {
			log.Error().Err(err).Msgf("Error fetching %s list", noun)
			return
		}
		if len(names) == 0 {
			fmt.Printf("No %s entries found\n", noun)
			return
		}
		for _, name := range names {
			fmt.Printf("  %s\n", name)
		}
	case "add", "a":
		if len(parts) < 3 {
			fmt.Printf("Usage: %s add <name>\n", noun)
			return
		}
		name := strings.Trim(strings.Join(parts[2:], " "), "\"")
		id, err := add(name)
		if err != nil {
			log.Error().Err(err).Msgf("Error adding %s", noun)
			return
		}
		log.Info().Int64("id", id).Str("name", name).Msgf("Added %s successfully", noun)
	default:
		fmt.Println("Unknown command. Supported commands are: list, add")
	}
}

func (r *replState) handleTransactions(parts []string) {
	switch parts[1] {
	case "list", "l":
		var recordID int64
		if len(parts) >= 3 {
			id, err := strconv.ParseInt(parts[2], 10, 64)
			if err != nil {
				fmt.Println("Invalid record id.")
				return
			}
			recordID = id
		}
		transactions, err := r.store.GetLedgerTransactions(recordID)
		if err != nil {
			log.Error().Err(err).Msg("Error fetching transactions")
			return
		}
		if len(transactions) == 0 {
			fmt.Println("No transactions found")
			return
		}
		fmt.Printf("Found %d transactions:\n\n", len(transactions))
		fmt.Printf("%-6s %-10s %-15s %-12s %-30s\n", "ID", "Record", "Amount", "Date", "Notes")
		fmt.Println(strings.Repeat("-", 80))
		for _, tx := range transactions {
			fmt.Printf("%-6d %-10d %-15s %-12s %-30s\n",
				tx.ID,
				tx.RecordID,
				tx.Amount.Value+" "+tx.Amount.Currency,
				tx.Date,
				tx.Notes[:min(30, len(tx.Notes))])
		}
	case "add", "a":
		if len(parts) < 6 {
			fmt.Println("Usage: tx add <record_id> <amount> <currency> <date> [notes]")
			fmt.Println("Example: tx add 3 25.99 USD 2026-08-01 \"Opening balance\"")
			return
		}
		recordID, err := strconv.ParseInt(parts[2], 10, 64)
		if err != nil {
			fmt.Println("Invalid record id.")
			return
		}
		tx := &models.LedgerTransaction{
			RecordID: recordID,
			Amount:   models.Amount{Value: parts[3], Currency: parts[4]},
			Date:     parts[5],
		}
		if len(parts) >= 7 {
			tx.Notes = strings.Trim(strings.Join(parts[6:], " "), "\"")
		}
		id, err := r.store.AddLedgerTransaction(tx)
		if err != nil {
			log.Error().Err(err).Msg("Error adding transaction")
			return
		}
		log.Info().Int64("transaction", id).Msg("Transaction added successfully")
	default:
		fmt.Println("Unknown command. Supported commands are: list, add")
	}
}
