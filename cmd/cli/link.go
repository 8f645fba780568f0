package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/jselby/budgetlink/pkg/models"
	"github.com/jselby/budgetlink/pkg/services"
)

func (r *replState) listLinks() {
	links, err := r.store.GetLinks()
	if err != nil {
		log.Error().Err(err).Msg("Error fetching links")
		return
	}

	if len(links) == 0 {
		fmt.Println("No links found")
		return
	}

	fmt.Printf("Found %d links:\n\n", len(links))
	fmt.Printf("%-6s %-12s %-10s %-38s %-20s\n", "ID", "Category", "Record", "YNAB Account", "Last Synced")
	fmt.Println(strings.Repeat("-", 95))
	for _, link := range links {
		lastSynced := "never"
		if link.LastSyncedAt != nil {
			lastSynced = link.LastSyncedAt.Format("2006-01-02 15:04:05")
		}
		fmt.Printf("%-6d %-12s %-10d %-38s %-20s\n",
			link.ID,
			link.CoreModel,
			link.CoreID,
			link.PluginID,
			lastSynced)
	}
}

func (r *replState) handleLink(ctx context.Context, input string) {
	parts := strings.Fields(input)
	if len(parts) < 4 {
		fmt.Println("Invalid link command format.")
		fmt.Println("Usage: link <category> <record_id> <ynab_account_id>")
		fmt.Println("Example: link account 3 f2a9...")
		return
	}

	category := models.RecordCategory(parts[1])
	if !category.Valid() {
		fmt.Printf("Unknown category %q. Categories: account, credit_card, asset, liability\n", parts[1])
		return
	}

	recordID, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		fmt.Println("Invalid record id.")
		return
	}

	link, err := r.linker.Link(ctx, category, recordID, parts[3])
	if err != nil {
		if errors.Is(err, services.ErrAlreadyLinked) {
			fmt.Println("One side of this pair is already linked; unlink it first.")
			return
		}
		log.Error().Err(err).Msg("Error creating link")
		return
	}
	log.Info().Int64("link", link.ID).Msg("Link created successfully")
}

func (r *replState) handleUnlink(input string) {
	parts := strings.Fields(input)
	if len(parts) != 2 {
		fmt.Println("Usage: unlink <link_id>")
		return
	}

	linkID, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		fmt.Println("Invalid link id.")
		return
	}

	if err := r.linker.Unlink(linkID); err != nil {
		log.Error().Err(err).Msg("Error removing link")
		return
	}
	log.Info().Int64("link", linkID).Msg("Link removed successfully")
}

func (r *replState) handleSync(ctx context.Context, input string) {
	parts := strings.Fields(input)

	if len(parts) >= 2 {
		linkID, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			fmt.Println("Usage: sync [link_id]")
			return
		}
		if err := r.syncer.Sync(ctx, linkID); err != nil {
			log.Error().Err(err).Msg("Error syncing link")
		}
		return
	}

	if err := r.syncer.SyncAll(ctx); err != nil {
		log.Error().Err(err).Msg("Error syncing with YNAB")
	}
}

func (r *replState) handleImport(ctx context.Context, input string) {
	parts := strings.Fields(input)
	if len(parts) < 2 {
		fmt.Println("Invalid import command format.")
		fmt.Println("Usage: import <ynab_account_id> [category]")
		return
	}

	account, err := r.client.GetAccount(ctx, parts[1])
	if err != nil {
		log.Error().Err(err).Msg("Error fetching YNAB account")
		return
	}

	var category models.RecordCategory
	if len(parts) >= 3 {
		category = models.RecordCategory(parts[2])
		if !category.Valid() {
			fmt.Printf("Unknown category %q. Categories: account, credit_card, asset, liability\n", parts[2])
			return
		}
	}

	record, err := r.creator.CreateAndLink(ctx, account, category)
	if err != nil {
		if errors.Is(err, services.ErrNoCategoryMapping) {
			category, ok := r.selectCategoryInteractive(account.Type)
			if !ok {
				return
			}
			record, err = r.creator.CreateAndLink(ctx, account, category)
		}
		if err != nil {
			// The record may exist unlinked when linking failed after
			// creation; surface it rather than retrying.
			if record != nil {
				log.Error().Err(err).Int64("record", record.ID).
					Msg("Record created but left unlinked")
				return
			}
			log.Error().Err(err).Msg("Error importing YNAB account")
			return
		}
	}

	log.Info().
		Int64("record", record.ID).
		Str("name", record.Name).
		Str("category", string(record.Category)).
		Msg("Record created and linked successfully")
}

func (r *replState) selectCategoryInteractive(ynabType string) (models.RecordCategory, bool) {
	fmt.Printf("No category mapping for YNAB type %q. Please select one:\n", ynabType)
	for i, category := range models.AllCategories {
		fmt.Printf("\t %-2d. %s\n", i, category)
	}

	var selection int
	fmt.Print("Enter the number of the category: ")
	if _, err := fmt.Scan(&selection); err != nil || selection < 0 || selection >= len(models.AllCategories) {
		fmt.Println("Invalid selection.")
		return "", false
	}
	return models.AllCategories[selection], true
}
