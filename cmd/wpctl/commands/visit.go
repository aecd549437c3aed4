package commands

import (
	"context"
	"fmt"
	"strings"

	"webpilot/cmd/wpctl/config"
	"webpilot/cmd/wpctl/output"
	"webpilot/domain/browse"
	"webpilot/driver"
	"webpilot/internal/dbconn"
	gormRepo "webpilot/internal/repository/gorm"
	"webpilot/testapp"

	"github.com/urfave/cli/v3"
)

// VisitCommand returns the visit command
func VisitCommand() *cli.Command {
	return &cli.Command{
		Name:      "visit",
		Usage:     "Fetch a page and print the final response",
		ArgsUsage: "<url>",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "header",
				Usage: "Request header sent on every hop (repeatable, format: name:value)",
			},
			&cli.BoolFlag{
				Name:  "no-follow",
				Usage: "Return the first response without following redirects",
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum redirects to follow (default 5)",
			},
			&cli.BoolFlag{
				Name:  "raise-errors",
				Usage: "Fail when the final status is 400 or above",
			},
			&cli.BoolFlag{
				Name:  "remote-ok",
				Usage: "Allow a target that resolves to a real network host",
			},
			&cli.BoolFlag{
				Name:  "record",
				Usage: "Archive the navigation in the history database",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print the result as JSON",
			},
		},
		Action: visitAction,
	}
}

// visitAction handles the visit command
func visitAction(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("target URL is required")
	}

	rawurl := c.Args().Get(0)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	opts, err := driverOptions(c, cfg)
	if err != nil {
		return err
	}

	if c.Bool("no-follow") {
		opts = append(opts, driver.WithoutRedirects())
	}

	if c.Bool("raise-errors") {
		opts = append(opts, driver.WithRaiseServerErrors())
	}

	if c.Bool("record") {
		db, err := dbconn.GetConn(dbconn.WithURL(cfg.GetDBURL()))
		if err != nil {
			return fmt.Errorf("failed to open history database: %w", err)
		}
		defer dbconn.Close()

		if err := migrateHistory(); err != nil {
			return err
		}

		opts = append(opts, driver.WithRecorder(gormRepo.NewHistoryRepository(db)))
	}

	d := driver.New(testapp.New(), opts...)

	if err := guardRemoteTarget(c, d, rawurl); err != nil {
		return err
	}

	resp, err := d.Visit(ctx, rawurl)
	if err != nil {
		return fmt.Errorf("visit failed: %w", err)
	}

	return printResponse(c, d, resp)
}

// guardRemoteTarget refuses targets that would leave the in-process
// application unless --remote-ok was given. The check covers the initial
// target only; a redirect chain may still cross to a remote host.
func guardRemoteTarget(c *cli.Command, d *driver.Driver, rawurl string) error {
	if c.Bool("remote-ok") {
		return nil
	}

	remote, err := d.IsRemote(rawurl)
	if err != nil {
		return fmt.Errorf("failed to classify %s: %w", rawurl, err)
	}
	if remote {
		return fmt.Errorf("%s resolves to a real network host; pass --remote-ok to allow it", rawurl)
	}
	return nil
}

// driverOptions assembles the driver options shared by navigating commands
func driverOptions(c *cli.Command, cfg *config.Config) ([]driver.Opts, error) {
	opts := []driver.Opts{}

	appHost := cfg.GetAppHost()
	if c.IsSet("app-host") {
		appHost = c.String("app-host")
	}
	if appHost != "" {
		opts = append(opts, driver.WithHostRoots(browse.HostRoots{AppHost: appHost}))
	}

	if c.IsSet("header") {
		headers, err := parseHeaderFlags(c.StringSlice("header"))
		if err != nil {
			return nil, err
		}
		opts = append(opts, driver.WithHeaders(headers))
	}

	if c.IsSet("limit") {
		opts = append(opts, driver.WithRedirectLimit(int(c.Int("limit"))))
	}

	return opts, nil
}

// parseHeaderFlags parses repeated name:value header flags
func parseHeaderFlags(raw []string) (map[string]string, error) {
	headers := map[string]string{}
	for _, h := range raw {
		name, value, ok := strings.Cut(h, ":")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid header %q: expected name:value", h)
		}
		headers[name] = strings.TrimSpace(value)
	}
	return headers, nil
}

// printResponse prints a navigation result as JSON or plain text
func printResponse(c *cli.Command, d *driver.Driver, resp *browse.Response) error {
	if !c.Bool("json") {
		fmt.Printf("%d %s\n", resp.Status, resp.FinalURL)
		if len(resp.Body) > 0 {
			fmt.Println(resp.BodyString())
		}
		return nil
	}

	remote, _ := d.IsRemote(resp.FinalURL)

	result := navigationResult{
		URL:    resp.FinalURL,
		Status: resp.Status,
		Remote: remote,
		Hops:   d.Chain().Hops(),
		Body:   resp.BodyString(),
	}

	formatter := output.NewJSONFormatter()
	jsonOutput, err := formatter.Format(result)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	fmt.Println(jsonOutput)
	return nil
}

type navigationResult struct {
	URL    string `json:"url"`
	Status int    `json:"status"`
	Remote bool   `json:"remote"`
	Hops   int    `json:"hops"`
	Body   string `json:"body,omitempty"`
}
