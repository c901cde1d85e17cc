package privilege

import (
	"fmt"
	"os/exec"

	"lgsmfleet/spoke/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

type detachedLauncher struct {
	logger log.Logger
}

// NewDetachedLauncher returns a launcher that starts commands in a new session and
// reaps them in the background.
func NewDetachedLauncher(logger log.Logger) interfaces.Launcher {
	return &detachedLauncher{logger: log.With(logger, "component", "launcher")}
}

func (l *detachedLauncher) Launch(cmd *exec.Cmd) error {
	cmd.SysProcAttr = detached(cmd.SysProcAttr)
	cmd.Stdin = nil
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", cmd.Path, err)
	}
	pid := cmd.Process.Pid
	level.Info(l.logger).Log("msg", "command launched", "pid", pid, "args", fmt.Sprint(cmd.Args))

	go func() {
		err := cmd.Wait()
		if err != nil {
			level.Warn(l.logger).Log("msg", "command exited", "pid", pid, "err", err)
			return
		}
		level.Debug(l.logger).Log("msg", "command exited", "pid", pid)
	}()
	return nil
}
