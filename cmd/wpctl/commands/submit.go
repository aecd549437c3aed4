package commands

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"webpilot/cmd/wpctl/config"
	"webpilot/domain/browse"
	"webpilot/driver"
	"webpilot/internal/dbconn"
	gormRepo "webpilot/internal/repository/gorm"
	"webpilot/testapp"

	"github.com/mattn/go-shellwords"
	"github.com/urfave/cli/v3"
)

// SubmitCommand returns the submit command
func SubmitCommand() *cli.Command {
	return &cli.Command{
		Name:      "submit",
		Usage:     "Submit a form and print the final response",
		ArgsUsage: "<url>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "data",
				Usage: "Form fields as shell words (format: \"name=Alice email=a@example.test\")",
			},
			&cli.StringFlag{
				Name:  "method",
				Usage: "Form method",
				Value: "POST",
			},
			&cli.StringSliceFlag{
				Name:  "header",
				Usage: "Request header sent on every hop (repeatable, format: name:value)",
			},
			&cli.BoolFlag{
				Name:  "raise-errors",
				Usage: "Fail when the final status is 400 or above",
			},
			&cli.BoolFlag{
				Name:  "remote-ok",
				Usage: "Allow a form action that resolves to a real network host",
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
		Action: submitAction,
	}
}

// submitAction handles the submit command
func submitAction(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("form action URL is required")
	}

	action := c.Args().Get(0)

	fields, err := parseFormData(c.String("data"))
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	opts, err := driverOptions(c, cfg)
	if err != nil {
		return err
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

	if err := guardRemoteTarget(c, d, action); err != nil {
		return err
	}

	form := browse.Form{
		Action: action,
		Method: c.String("method"),
		Fields: fields,
	}

	resp, err := d.SubmitForm(ctx, form)
	if err != nil {
		return fmt.Errorf("submit failed: %w", err)
	}

	return printResponse(c, d, resp)
}

// parseFormData splits a shell-quoted field list into form values
func parseFormData(data string) (url.Values, error) {
	fields := url.Values{}
	if data == "" {
		return fields, nil
	}

	words, err := shellwords.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse form data: %w", err)
	}

	for _, w := range words {
		name, value, ok := strings.Cut(w, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid form field %q: expected name=value", w)
		}
		fields.Add(name, value)
	}

	return fields, nil
}
