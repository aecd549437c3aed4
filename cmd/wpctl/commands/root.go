package commands

import (
	"webpilot/version"

	"github.com/urfave/cli/v3"
)

// NewApp creates the root CLI application
func NewApp() *cli.Command {
	return &cli.Command{
		Name:    "wpctl",
		Usage:   "Webpilot CLI - drive browsing sessions from the terminal",
		Version: version.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "app-host",
				Usage: "Host treated as the in-process application",
			},
		},
		Commands: []*cli.Command{
			VisitCommand(),
			CheckCommand(),
			SubmitCommand(),
			ServeCommand(),
			HistoryCommand(),
			DoctorCommand(),
		},
	}
}
