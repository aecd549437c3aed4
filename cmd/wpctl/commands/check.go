package commands

import (
	"context"
	"errors"
	"fmt"

	"webpilot/cmd/wpctl/config"
	"webpilot/cmd/wpctl/output"
	"webpilot/driver"
	"webpilot/internal/redirect"
	"webpilot/testapp"

	"github.com/urfave/cli/v3"
)

// CheckCommand returns the check command
func CheckCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Follow a URL's redirect chain and report every hop",
		ArgsUsage: "<url>",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "header",
				Usage: "Request header sent on every hop (repeatable, format: name:value)",
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum redirects to follow (default 5)",
			},
		},
		Action: checkAction,
	}
}

// checkAction handles the check command
func checkAction(ctx context.Context, c *cli.Command) error {
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

	d := driver.New(testapp.New(), opts...)

	resp, err := d.Visit(ctx, rawurl)

	var limitErr *redirect.LimitError
	if errors.As(err, &limitErr) {
		report := checkReport{
			URL:     rawurl,
			Hops:    limitErr.Chain.Hops(),
			Chain:   limitErr.Chain,
			Stopped: true,
		}
		if printErr := printReport(report); printErr != nil {
			return printErr
		}
		return fmt.Errorf("check failed: %w", err)
	}
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	remote, _ := d.IsRemote(resp.FinalURL)

	report := checkReport{
		URL:      rawurl,
		FinalURL: resp.FinalURL,
		Status:   resp.Status,
		Hops:     d.Chain().Hops(),
		Chain:    d.Chain(),
		Remote:   remote,
	}

	return printReport(report)
}

// printReport prints a check report as JSON
func printReport(report checkReport) error {
	formatter := output.NewJSONFormatter()
	jsonOutput, err := formatter.Format(report)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	fmt.Println(jsonOutput)
	return nil
}

type checkReport struct {
	URL      string   `json:"url"`
	FinalURL string   `json:"final_url,omitempty"`
	Status   int      `json:"status,omitempty"`
	Hops     int      `json:"hops"`
	Chain    []string `json:"chain"`
	Remote   bool     `json:"remote"`
	Stopped  bool     `json:"stopped,omitempty"`
}
