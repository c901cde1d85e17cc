package hoststat

import (
	"context"
	"os"
	"runtime"
	"testing"
	"time"

	"lgsmfleet/spoke/domain"

	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProc struct {
	uids    []uint32
	uidsErr error
	argv    []string
	argvErr error
}

func (f fakeProc) UidsWithContext(ctx context.Context) ([]uint32, error) {
	return f.uids, f.uidsErr
}

func (f fakeProc) CmdlineSliceWithContext(ctx context.Context) ([]string, error) {
	return f.argv, f.argvErr
}

func TestProcessTable_Snapshot(t *testing.T) {
	table := &processTable{list: func(ctx context.Context) ([]procEntry, error) {
		return []procEntry{
			{pid: 100, handle: fakeProc{uids: []uint32{1000, 1000, 1000, 1000}, argv: []string{"tmux", "new-session", "-d", "-s", "vhserver"}}},
			{pid: 200, handle: fakeProc{uids: []uint32{1001, 0, 0, 0}, argv: []string{"/home/csgo/csgoserver", "start"}}},
			{pid: 300, handle: fakeProc{uidsErr: os.ErrNotExist}},
			{pid: 400, handle: fakeProc{uids: []uint32{0}, argvErr: os.ErrPermission}},
			{pid: 500, handle: fakeProc{}},
		}, nil
	}}

	procs, err := table.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.ProcessInfo{
		{PID: 100, UID: 1000, Cmdline: "tmux new-session -d -s vhserver"},
		{PID: 200, UID: 1001, Cmdline: "/home/csgo/csgoserver start"},
	}, procs)
}

func TestProcessTable_ListFailure(t *testing.T) {
	table := &processTable{list: func(ctx context.Context) ([]procEntry, error) {
		return nil, assert.AnError
	}}
	_, err := table.Snapshot(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}

func TestProcessTable_Host(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("process table is read from /proc")
	}
	procs, err := NewProcessTable().Snapshot(context.Background())
	require.NoError(t, err)

	var self *domain.ProcessInfo
	for i := range procs {
		if procs[i].PID == os.Getpid() {
			self = &procs[i]
		}
	}
	require.NotNil(t, self)
	assert.Equal(t, os.Getuid(), self.UID)
	assert.NotEmpty(t, self.Cmdline)
}

func fakeTelemetry(cpu []float64, cpuErr error) *telemetrySource {
	return &telemetrySource{
		diskPath: "/srv",
		sample:   time.Millisecond,
		cpuPercent: func(ctx context.Context, interval time.Duration, percpu bool) ([]float64, error) {
			return cpu, cpuErr
		},
		virtualMemory: func(ctx context.Context) (*mem.VirtualMemoryStat, error) {
			return &mem.VirtualMemoryStat{UsedPercent: 75.04}, nil
		},
		diskUsage: func(ctx context.Context, path string) (*disk.UsageStat, error) {
			if path != "/srv" {
				return nil, os.ErrNotExist
			}
			return &disk.UsageStat{UsedPercent: 41.66}, nil
		},
	}
}

func TestTelemetrySource(t *testing.T) {
	tel, err := fakeTelemetry([]float64{12.34}, nil).Telemetry(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Telemetry{CPUUsage: 12.3, RAMUsage: 75, DiskUsage: 41.7}, tel)
}

func TestTelemetrySource_Errors(t *testing.T) {
	_, err := fakeTelemetry(nil, assert.AnError).Telemetry(context.Background())
	assert.ErrorIs(t, err, assert.AnError)

	_, err = fakeTelemetry([]float64{}, nil).Telemetry(context.Background())
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = fakeTelemetry(nil, context.Canceled).Telemetry(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0.0, percent(-3))
	assert.Equal(t, 100.0, percent(100.4))
	assert.Equal(t, 33.3, percent(33.333))
}

func TestTelemetrySource_Host(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("host statistics are read from /proc")
	}
	tel, err := NewTelemetrySource("/", 50*time.Millisecond).Telemetry(context.Background())
	require.NoError(t, err)
	for _, v := range []float64{tel.CPUUsage, tel.RAMUsage, tel.DiskUsage} {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 100.0)
	}
}
