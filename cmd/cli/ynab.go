package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/jselby/budgetlink/pkg/models"
	"github.com/jselby/budgetlink/pkg/services"
)

func (r *replState) handleYNAB(ctx context.Context, input string) {
	parts := strings.Fields(input)
	if len(parts) < 2 {
		fmt.Println("Invalid ynab command format.")
		fmt.Println("Usage: ynab <accounts|budgets|categories|payees|months|status>")
		return
	}

	switch parts[1] {
	case "accounts", "a":
		r.listYNABAccounts(ctx)
	case "budgets":
		r.listYNABBudgets(ctx)
	case "categories":
		r.listYNABCategories(ctx)
	case "payees":
		r.listYNABPayees(ctx)
	case "months":
		r.listYNABMonths(ctx)
	case "status":
		r.showYNABStatus(ctx)
	default:
		fmt.Println("Unknown command. Supported: accounts, budgets, categories, payees, months, status")
	}
}

func (r *replState) listYNABAccounts(ctx context.Context) {
	accounts, err := r.client.ListAccounts(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Error fetching YNAB accounts")
		return
	}

	if len(accounts) == 0 {
		fmt.Println("No YNAB accounts found")
		return
	}

	links, err := r.store.GetLinks()
	if err != nil {
		log.Error().Err(err).Msg("Error fetching links")
		return
	}
	linked := lo.SliceToMap(links, func(link *models.Link) (string, int64) {
		return link.PluginID, link.CoreID
	})

	balanceCfg := models.ColumnConfig{UseCurrency: true, UseThousandsSeparator: true}

	fmt.Printf("Found %d YNAB accounts:\n\n", len(accounts))
	fmt.Printf("%-38s %-25s %-15s %15s %-10s %-8s\n",
		"ID", "Name", "Type", "Balance", "On Budget", "Linked")
	fmt.Println(strings.Repeat("-", 118))
	for _, account := range accounts {
		balance := models.AmountFromMilliunits(account.Balance, r.currency)
		linkedTag := ""
		if coreID, ok := linked[account.ID]; ok {
			linkedTag = fmt.Sprintf("#%d", coreID)
		}
		fmt.Printf("%-38s %-25s %-15s %15s %-10t %-8s\n",
			account.ID,
			account.Name[:min(25, len(account.Name))],
			r.crossRefs.ResolveDisplay(services.CrossRefTypeAccounts, "type", account.Type),
			services.FormatValue(balanceCfg, balance.Value),
			account.OnBudget,
			linkedTag)
	}
}

func (r *replState) listYNABBudgets(ctx context.Context) {
	budgets, err := r.client.ListBudgets(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Error fetching YNAB budgets")
		return
	}
	for _, budget := range budgets {
		fmt.Printf("%-38s %-30s %s\n", budget.ID, budget.Name, budget.CurrencyFormat.ISOCode)
	}
}

func (r *replState) listYNABCategories(ctx context.Context) {
	categories, err := r.client.ListCategories(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Error fetching YNAB categories")
		return
	}
	balanceCfg := models.ColumnConfig{UseCurrency: true, UseThousandsSeparator: true}
	for _, category := range categories {
		if category.Hidden {
			continue
		}
		balance := models.AmountFromMilliunits(category.Balance, r.currency)
		fmt.Printf("%-40s %15s\n", category.Name, services.FormatValue(balanceCfg, balance.Value))
	}
}

func (r *replState) listYNABPayees(ctx context.Context) {
	payees, err := r.client.ListPayees(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Error fetching YNAB payees")
		return
	}
	for _, payee := range payees {
		fmt.Printf("  %s\n", payee.Name)
	}
}

func (r *replState) listYNABMonths(ctx context.Context) {
	months, err := r.client.ListMonths(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Error fetching YNAB months")
		return
	}
	balanceCfg := models.ColumnConfig{UseCurrency: true, UseThousandsSeparator: true}
	fmt.Printf("%-12s %15s %15s %15s\n", "Month", "Income", "Budgeted", "Activity")
	for _, month := range months {
		income := models.AmountFromMilliunits(month.Income, r.currency)
		budgeted := models.AmountFromMilliunits(month.Budgeted, r.currency)
		activity := models.AmountFromMilliunits(month.Activity, r.currency)
		fmt.Printf("%-12s %15s %15s %15s\n",
			month.Month,
			services.FormatValue(balanceCfg, income.Value),
			services.FormatValue(balanceCfg, budgeted.Value),
			services.FormatValue(balanceCfg, activity.Value))
	}
}

func (r *replState) showYNABStatus(ctx context.Context) {
	user, err := r.syncer.Status(ctx)
	if err != nil {
		log.Error().Err(err).Msg("YNAB connection check failed")
		return
	}
	fmt.Printf("Connected to YNAB as user %s\n", user.ID)
}
