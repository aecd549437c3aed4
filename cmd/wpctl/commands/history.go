package commands

import (
	"context"
	"fmt"

	"webpilot/cmd/wpctl/config"
	"webpilot/cmd/wpctl/output"
	"webpilot/domain/history"
	"webpilot/internal/dbconn"
	gormRepo "webpilot/internal/repository/gorm"

	"github.com/urfave/cli/v3"
)

// HistoryCommand returns the history command with subcommands
func HistoryCommand() *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "Inspect the navigation archive",
		Commands: []*cli.Command{
			listHistoryCommand(),
			clearHistoryCommand(),
		},
	}
}

// listHistoryCommand returns the list subcommand
func listHistoryCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List recorded navigations, newest first",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "db",
				Usage: "History database URL",
			},
			&cli.StringFlag{
				Name:  "run",
				Usage: "Filter by run ID",
			},
			&cli.BoolFlag{
				Name:  "remote",
				Usage: "Only navigations that went over the network",
			},
			&cli.BoolFlag{
				Name:  "local",
				Usage: "Only navigations dispatched in process",
			},
		},
		Action: listHistoryAction,
	}
}

// listHistoryAction handles the history list command
func listHistoryAction(ctx context.Context, c *cli.Command) error {
	if c.Bool("remote") && c.Bool("local") {
		return fmt.Errorf("cannot use both --remote and --local flags")
	}

	repo, err := openHistoryRepository(c)
	if err != nil {
		return err
	}
	defer dbconn.Close()

	filters := history.NavigationFilters{}
	if c.IsSet("run") {
		runID := c.String("run")
		filters.RunID = &runID
	}
	if c.Bool("remote") {
		remote := true
		filters.Remote = &remote
	}
	if c.Bool("local") {
		remote := false
		filters.Remote = &remote
	}

	navigations, err := repo.FindNavigations(ctx, filters)
	if err != nil {
		return fmt.Errorf("failed to list navigations: %w", err)
	}

	formatter := output.NewJSONFormatter()
	jsonOutput, err := formatter.Format(navigations)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	fmt.Println(jsonOutput)
	return nil
}

// clearHistoryCommand returns the clear subcommand
func clearHistoryCommand() *cli.Command {
	return &cli.Command{
		Name:  "clear",
		Usage: "Delete all recorded runs and navigations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "db",
				Usage: "History database URL",
			},
		},
		Action: clearHistoryAction,
	}
}

// clearHistoryAction handles the history clear command
func clearHistoryAction(ctx context.Context, c *cli.Command) error {
	repo, err := openHistoryRepository(c)
	if err != nil {
		return err
	}
	defer dbconn.Close()

	count, err := repo.CountNavigations(ctx)
	if err != nil {
		return fmt.Errorf("failed to count navigations: %w", err)
	}

	if err := repo.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}

	formatter := output.NewJSONFormatter()
	jsonOutput, err := formatter.Format(map[string]any{"deleted": count})
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	fmt.Println(jsonOutput)
	return nil
}

// openHistoryRepository opens the archive database and migrates its tables
func openHistoryRepository(c *cli.Command) (history.Repository, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	dbURL := cfg.GetDBURL()
	if c.IsSet("db") {
		dbURL = c.String("db")
	}

	db, err := dbconn.GetConn(dbconn.WithURL(dbURL))
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	if err := migrateHistory(); err != nil {
		return nil, err
	}

	return gormRepo.NewHistoryRepository(db), nil
}

// migrateHistory ensures the archive tables exist
func migrateHistory() error {
	if err := dbconn.Migrate(&history.Run{}); err != nil {
		return fmt.Errorf("failed to migrate history database: %w", err)
	}
	if err := dbconn.Migrate(&history.Navigation{}); err != nil {
		return fmt.Errorf("failed to migrate history database: %w", err)
	}
	return nil
}
