package commands

import (
	"context"
	"fmt"

	"webpilot/testapp"

	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/urfave/cli/v3"
)

// ServeCommand returns the serve command
func ServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the built-in test application on a real port",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "port",
				Usage: "Port to listen on",
				Value: 8080,
			},
		},
		Action: serveAction,
	}
}

// serveAction handles the serve command
func serveAction(ctx context.Context, c *cli.Command) error {
	e := testapp.New()
	e.Use(middleware.Logger())

	addr := fmt.Sprintf(":%d", c.Int("port"))
	log.Infof("test application listening on %s", addr)

	if err := e.Start(addr); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}
