//go:build windows

// Package process stops the Chrome process tree left behind by a browser
// host.
package process

import (
	"os/exec"
	"strconv"
)

// KillTree force-kills pid and its children with taskkill.
func KillTree(pid int) {
	if pid <= 0 {
		return
	}
	_ = exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(pid)).Run() // #nosec G204 -- pid is an int
}
