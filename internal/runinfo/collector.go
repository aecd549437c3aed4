// Package runinfo captures the environment a driver run executes on.
package runinfo

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/shirou/gopsutil/v4/host"
)

// Info describes the machine a run executed on.
type Info struct {
	Hostname        string `json:"hostname"`
	Platform        string `json:"platform"`
	PlatformVersion string `json:"platform_version"`
	KernelVersion   string `json:"kernel_version"`
	OS              string `json:"os"`
	Arch            string `json:"arch"`
}

type HostCollector interface {
	HostInfo(ctx context.Context) (*host.InfoStat, error)
}

type Collector interface {
	Collect(ctx context.Context) (Info, error)
}

type Config struct {
	Collector HostCollector
}

type collector struct {
	host HostCollector
}

func New() Collector {
	return NewWithConfig(nil)
}

func NewWithConfig(cfg *Config) Collector {
	var hc HostCollector
	if cfg != nil && cfg.Collector != nil {
		hc = cfg.Collector
	} else {
		hc = &gopsutilCollector{}
	}
	return &collector{host: hc}
}

// Collect gathers platform details. On failure it still returns what it
// could determine locally, so callers can record a degraded row and move on.
func (c *collector) Collect(ctx context.Context) (Info, error) {
	info := Info{
		OS:   runtime.GOOS,
		Arch: runtime.GOARCH,
	}

	stat, err := c.host.HostInfo(ctx)
	if err != nil {
		if name, herr := os.Hostname(); herr == nil {
			info.Hostname = name
		}
		return info, fmt.Errorf("host info: %w", err)
	}

	info.Hostname = stat.Hostname
	info.Platform = stat.Platform
	info.PlatformVersion = stat.PlatformVersion
	info.KernelVersion = stat.KernelVersion
	return info, nil
}

type gopsutilCollector struct{}

func (g *gopsutilCollector) HostInfo(ctx context.Context) (*host.InfoStat, error) {
	return host.InfoWithContext(ctx)
}
