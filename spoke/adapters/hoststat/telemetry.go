package hoststat

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"lgsmfleet/spoke/domain"
	"lgsmfleet/spoke/interfaces"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
)

type telemetrySource struct {
	diskPath string
	sample   time.Duration

	cpuPercent    func(ctx context.Context, interval time.Duration, percpu bool) ([]float64, error)
	virtualMemory func(ctx context.Context) (*mem.VirtualMemoryStat, error)
	diskUsage     func(ctx context.Context, path string) (*disk.UsageStat, error)
}

// NewTelemetrySource samples CPU over the sample window, memory usage and disk
// usage of the filesystem holding diskPath.
func NewTelemetrySource(diskPath string, sample time.Duration) interfaces.TelemetrySource {
	if diskPath == "" {
		diskPath = "/"
	}
	return &telemetrySource{
		diskPath:      diskPath,
		sample:        sample,
		cpuPercent:    cpu.PercentWithContext,
		virtualMemory: mem.VirtualMemoryWithContext,
		diskUsage:     disk.UsageWithContext,
	}
}

func (s *telemetrySource) Telemetry(ctx context.Context) (domain.Telemetry, error) {
	cpus, err := s.cpuPercent(ctx, s.sample, false)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return domain.Telemetry{}, ctxErr
		}
		return domain.Telemetry{}, fmt.Errorf("cpu usage: %w", err)
	}
	if len(cpus) == 0 {
		return domain.Telemetry{}, errors.New("cpu usage: no reading")
	}
	vm, err := s.virtualMemory(ctx)
	if err != nil {
		return domain.Telemetry{}, fmt.Errorf("memory usage: %w", err)
	}
	du, err := s.diskUsage(ctx, s.diskPath)
	if err != nil {
		return domain.Telemetry{}, fmt.Errorf("disk usage of %s: %w", s.diskPath, err)
	}

	return domain.Telemetry{
		CPUUsage:  percent(cpus[0]),
		RAMUsage:  percent(vm.UsedPercent),
		DiskUsage: percent(du.UsedPercent),
	}, nil
}

// percent rounds to one decimal and clamps into [0, 100].
func percent(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return math.Round(v*10) / 10
}
