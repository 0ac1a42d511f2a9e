//go:build !windows

// Package process stops the Chrome process tree left behind by a browser
// host.
package process

import "syscall"

// KillTree sends SIGKILL to the process group led by pid. Failures are
// ignored; the launcher's own cleanup still runs afterwards.
func KillTree(pid int) {
	if pid <= 0 {
		return
	}
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
