// Package hoststat reads the process table and host resource usage through gopsutil.
package hoststat

import (
	"context"
	"fmt"
	"strings"

	"lgsmfleet/spoke/domain"
	"lgsmfleet/spoke/interfaces"

	"github.com/shirou/gopsutil/v4/process"
)

// procHandle is the part of *process.Process a snapshot reads.
type procHandle interface {
	UidsWithContext(ctx context.Context) ([]uint32, error)
	CmdlineSliceWithContext(ctx context.Context) ([]string, error)
}

type procEntry struct {
	pid    int32
	handle procHandle
}

type processTable struct {
	list func(ctx context.Context) ([]procEntry, error)
}

// NewProcessTable snapshots the host's live processes.
func NewProcessTable() interfaces.ProcessTable {
	return &processTable{list: listProcesses}
}

func listProcesses(ctx context.Context) ([]procEntry, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("list processes: %w", err)
	}
	entries := make([]procEntry, 0, len(procs))
	for _, p := range procs {
		entries = append(entries, procEntry{pid: p.Pid, handle: p})
	}
	return entries, nil
}

func (p *processTable) Snapshot(ctx context.Context) ([]domain.ProcessInfo, error) {
	entries, err := p.list(ctx)
	if err != nil {
		return nil, err
	}

	procs := make([]domain.ProcessInfo, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return procs, err
		}
		// processes exit or hide their details between listing and reading; skip them
		uids, err := entry.handle.UidsWithContext(ctx)
		if err != nil || len(uids) == 0 {
			continue
		}
		argv, err := entry.handle.CmdlineSliceWithContext(ctx)
		if err != nil {
			continue
		}
		procs = append(procs, domain.ProcessInfo{
			PID:     int(entry.pid),
			UID:     int(uids[0]),
			Cmdline: strings.Join(argv, " "),
		})
	}
	return procs, nil
}
