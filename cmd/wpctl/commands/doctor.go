package commands

import (
	"context"
	"fmt"

	"webpilot/cmd/wpctl/output"
	"webpilot/internal/runinfo"
	"webpilot/version"

	"github.com/urfave/cli/v3"
)

// DoctorCommand returns the doctor command
func DoctorCommand() *cli.Command {
	return &cli.Command{
		Name:   "doctor",
		Usage:  "Report the tool version and host environment",
		Action: doctorAction,
	}
}

// doctorAction handles the doctor command
func doctorAction(ctx context.Context, c *cli.Command) error {
	collector := runinfo.New()

	info, err := collector.Collect(ctx)

	report := doctorReport{
		Version:         version.Version,
		Hostname:        info.Hostname,
		Platform:        info.Platform,
		PlatformVersion: info.PlatformVersion,
		KernelVersion:   info.KernelVersion,
		OS:              info.OS,
		Arch:            info.Arch,
	}
	if err != nil {
		report.Warning = err.Error()
	}

	formatter := output.NewJSONFormatter()
	jsonOutput, err := formatter.Format(report)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	fmt.Println(jsonOutput)
	return nil
}

type doctorReport struct {
	Version         string `json:"version"`
	Hostname        string `json:"hostname,omitempty"`
	Platform        string `json:"platform,omitempty"`
	PlatformVersion string `json:"platform_version,omitempty"`
	KernelVersion   string `json:"kernel_version,omitempty"`
	OS              string `json:"os"`
	Arch            string `json:"arch"`
	Warning         string `json:"warning,omitempty"`
}
