package privilege

import "syscall"

// detached puts the child in its own session so it outlives the agent and
// never receives the agent's terminal signals.
func detached(attr *syscall.SysProcAttr) *syscall.SysProcAttr {
	if attr == nil {
		attr = &syscall.SysProcAttr{}
	}
	attr.Setsid = true
	return attr
}

// tied returns attributes for helper children (tail) that must die with the agent.
func tied(attr *syscall.SysProcAttr) *syscall.SysProcAttr {
	if attr == nil {
		attr = &syscall.SysProcAttr{}
	}
	attr.Setpgid = true
	attr.Pdeathsig = syscall.SIGTERM
	return attr
}

func withCredential(attr *syscall.SysProcAttr, uid, gid int) *syscall.SysProcAttr {
	if attr == nil {
		attr = &syscall.SysProcAttr{}
	}
	attr.Credential = &syscall.Credential{Uid: uint32(uid), Gid: uint32(gid)}
	return attr
}
