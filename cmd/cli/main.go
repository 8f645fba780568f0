package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jselby/budgetlink/db"
	"github.com/jselby/budgetlink/pkg/config"
	"github.com/jselby/budgetlink/pkg/http/ynab"
	"github.com/jselby/budgetlink/pkg/services"
)

var (
	dbPath  string
	rootCmd *cobra.Command
)

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Error().Err(err).Msg("Error getting home directory")
		os.Exit(1)
	}

	defaultDBPath := filepath.Join(homeDir, ".budgetlink", "budgetlink.db")

	// Initialize configuration
	if err := config.InitGlobalConfig("config.yaml"); err != nil {
		// Only print a warning if the file doesn't exist, as GetConfig will create it later
		if !errors.Is(err, os.ErrNotExist) {
			log.Warn().Err(err).Msg("Failed to load configuration")
			log.Warn().Msg("A default configuration will be used")
		}
	}

	rootCmd = &cobra.Command{
		Use:   "budgetlink",
		Short: "A CLI tool for tracking financial records and linking them to YNAB",
		Long: `A CLI tool that tracks accounts, credit cards, assets and liabilities in a
SQLite database and keeps linked records synchronized with YNAB.`,
	}

	rootCmd.PersistentFlags().StringVar(&dbPath, "db", defaultDBPath, "Path to the SQLite database")

	replCmd := &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive REPL",
		Long:  `Start an interactive REPL for executing commands.`,
		Run: func(cmd *cobra.Command, args []string) {
			runREPL(initReplState(cmd.Context()))
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show the current configuration",
		Long:  `Show the current configuration loaded from config.yaml.`,
		Run: func(cmd *cobra.Command, args []string) {
			showConfig()
		},
	}

	syncCmd := &cobra.Command{
		Use:   "sync",
		Short: "Sync all linked records with YNAB once",
		Run: func(cmd *cobra.Command, args []string) {
			state := initReplState(cmd.Context())
			defer state.store.Close()
			if err := state.store.Initialize(); err != nil {
				log.Error().Err(err).Msg("Error initializing database")
				os.Exit(1)
			}
			if err := state.syncer.SyncAll(cmd.Context()); err != nil {
				log.Error().Err(err).Msg("Error syncing with YNAB")
				os.Exit(1)
			}
		},
	}

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Continuously sync linked records on an interval",
		Long:  `Continuously sync linked records on an interval until interrupted.`,
		Run: func(cmd *cobra.Command, args []string) {
			runWatch(cmd.Context())
		},
	}

	rootCmd.AddCommand(replCmd, configCmd, syncCmd, watchCmd)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

type replState struct {
	store        db.Store
	client       ynab.ClientInterface
	syncer       *services.Syncer
	linker       *services.Linker
	creator      *services.Creator
	typeMappings *services.TypeMappingTable
	crossRefs    *services.CrossReferenceStore
	currency     string
}

func initReplState(ctx context.Context) replState {
	// Initialize database
	database, err := db.New(dbPath)
	if err != nil {
		log.Error().Err(err).Msg("Error connecting to database")
		os.Exit(1)
	}

	// Get the access token from the configuration
	token, err := config.GetYNABAccessToken()
	if err != nil {
		log.Error().Err(err).Msg("Error getting YNAB access token from config")
		log.Error().Msg("Please set your access token in config.yaml")
		os.Exit(1)
	}

	budgetID, err := config.GetYNABBudgetID()
	if err != nil {
		log.Error().Err(err).Msg("Error getting YNAB budget from config")
		os.Exit(1)
	}

	currency, err := config.GetCurrency()
	if err != nil {
		log.Error().Err(err).Msg("Error getting currency from config")
		os.Exit(1)
	}

	client := ynab.NewClient(token, budgetID)
	syncer := services.NewSyncer(client, database, currency)
	linker := services.NewLinker(database, syncer)
	typeMappings := services.NewTypeMappingTable(database)

	return replState{
		store:        database,
		client:       client,
		syncer:       syncer,
		linker:       linker,
		creator:      services.NewCreator(database, linker, typeMappings, currency),
		typeMappings: typeMappings,
		crossRefs:    services.NewCrossReferenceStore(database),
		currency:     currency,
	}
}

func runREPL(state replState) {
	fmt.Println("Welcome to the budgetlink REPL!")
	fmt.Println("Type 'exit' or 'quit' to exit.")
	fmt.Println("Type 'help' for the list of commands.")
	fmt.Println()

	// Close the database once you are done
	defer state.store.Close()

	if err := state.store.Initialize(); err != nil {
		log.Error().Err(err).Msg("Error initializing database")
		os.Exit(1)
	}

	// Start REPL
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")

		if !scanner.Scan() {
			break
		}

		line := scanner.Text()
		trimmedLine := strings.TrimSpace(line)

		if trimmedLine == "" {
			continue
		}

		if trimmedLine == "exit" || trimmedLine == "quit" {
			break
		}

		if trimmedLine == "help" {
			printHelp()
			continue
		}

		if trimmedLine == "config" {
			showConfig()
			continue
		}

		ctx := context.Background()

		if strings.HasPrefix(trimmedLine, "record") {
			state.handleRecords(trimmedLine)
			continue
		}

		if strings.HasPrefix(trimmedLine, "bank") ||
			strings.HasPrefix(trimmedLine, "category") ||
			strings.HasPrefix(trimmedLine, "payee") ||
			strings.HasPrefix(trimmedLine, "tx") {
			state.handleLedger(trimmedLine)
			continue
		}

		if strings.HasPrefix(trimmedLine, "links") {
			state.listLinks()
			continue
		}

		if strings.HasPrefix(trimmedLine, "link") {
			state.handleLink(ctx, trimmedLine)
			continue
		}

		if strings.HasPrefix(trimmedLine, "unlink") {
			state.handleUnlink(trimmedLine)
			continue
		}

		if strings.HasPrefix(trimmedLine, "sync") {
			state.handleSync(ctx, trimmedLine)
			continue
		}

		if strings.HasPrefix(trimmedLine, "import") {
			state.handleImport(ctx, trimmedLine)
			continue
		}

		if strings.HasPrefix(trimmedLine, "ynab") {
			state.handleYNAB(ctx, trimmedLine)
			continue
		}

		if strings.HasPrefix(trimmedLine, "crossref") {
			state.handleCrossRefs(trimmedLine)
			continue
		}

		if strings.HasPrefix(trimmedLine, "typemap") {
			state.handleTypeMappings(trimmedLine)
			continue
		}

		if strings.HasPrefix(trimmedLine, "columns") {
			state.handleColumns(trimmedLine)
			continue
		}

		fmt.Println("Unknown command. Type 'help' for the list of commands.")
	}

	if err := scanner.Err(); err != nil {
		log.Error().Err(err).Msg("Error reading input")
	}
}

func runWatch(ctx context.Context) {
	state := initReplState(ctx)
	defer state.store.Close()

	if err := state.store.Initialize(); err != nil {
		log.Error().Err(err).Msg("Error initializing database")
		os.Exit(1)
	}

	interval, err := config.GetPollInterval()
	if err != nil {
		log.Error().Err(err).Msg("Error getting poll interval from config")
		os.Exit(1)
	}

	log.Info().Dur("interval", interval).Msg("Watching linked records")
	poller := services.NewPoller(interval, func(ctx context.Context) {
		if err := state.syncer.SyncAll(ctx); err != nil {
			log.Warn().Err(err).Msg("Sync pass failed")
		}
	})
	poller.Run(ctx)
}

func printHelp() {
	fmt.Println("Available commands:")
	fmt.Println("  help                  - Show this help message")
	fmt.Println("  config                - Show the current configuration")
	fmt.Println("  record list [cat]     - List local records, optionally by category")
	fmt.Println("  record add <cat> <name> [type] - Add a local record")
	fmt.Println("  record rm <id>        - Remove a record (and its link)")
	fmt.Println("  bank|category|payee list|add   - Manage lookup lists")
	fmt.Println("  tx list [record_id]   - List ledger transactions")
	fmt.Println("  tx add <record_id> <amount> <currency> <date> [notes]")
	fmt.Println("  links                 - List all record links")
	fmt.Println("  link <cat> <record_id> <ynab_id> - Link a record to a YNAB account")
	fmt.Println("  unlink <link_id>      - Remove a link")
	fmt.Println("  sync [link_id]        - Sync one link, or everything")
	fmt.Println("  import <ynab_id> [cat] - Create and link a record from a YNAB account")
	fmt.Println("  ynab <accounts|budgets|categories|payees|months|status>")
	fmt.Println("  crossref list|reset [type] - Manage display cross-references")
	fmt.Println("  typemap list|available|add|rm|enable|disable|reset|erase|save")
	fmt.Println("  columns show|hide|unhide|order|set|reset <type> [fields...]")
	fmt.Println("  exit, quit            - Exit the REPL")
	fmt.Println()
	fmt.Println("Configuration:")
	fmt.Println("  The application uses a config.yaml file in the current directory.")
	fmt.Println("  Make sure to set your ynab.accessToken before using YNAB commands.")
}

// showConfig displays the current configuration
func showConfig() {
	cfg, err := config.GetConfig()
	if err != nil {
		log.Error().Err(err).Msg("Error loading configuration")
		return
	}

	fmt.Println("Current Configuration:")
	fmt.Println("----------------------")

	// Display the access token (masked for security)
	token := cfg.YNAB.AccessToken
	if token != "" {
		var masked string
		// Show only the first 4 and last 4 characters of the token
		if len(token) > 8 {
			masked = token[:4] + strings.Repeat("*", len(token)-8) + token[len(token)-4:]
		} else {
			masked = strings.Repeat("*", len(token))
		}
		fmt.Printf("YNAB Access Token: %s\n", masked)
	} else {
		fmt.Println("YNAB Access Token: Not set")
		fmt.Println("\nPlease set ynab.accessToken in config.yaml to use the YNAB commands.")
		fmt.Println("You can create a token at https://app.ynab.com/settings/developer")
	}

	fmt.Printf("YNAB Budget: %s\n", cfg.YNAB.BudgetID)
	fmt.Printf("Currency: %s\n", cfg.YNAB.Currency)
}
