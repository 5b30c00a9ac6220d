//go:build !windows

package cdpdriver

import (
	"context"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"syscall"
	"time"
)

// setupProcessGroup puts the Chrome child in its own process group so
// killProcessTree can signal the whole group at once.
func setupProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

// killProcessTree kills the Chrome child and any of its descendants. Adapted
// from a teacher helper that tore down N named npm-script subprocesses; this
// version targets exactly one pid (the Chrome process this Driver launched),
// never the pid of an adopted Chrome (that distinction is enforced by the
// caller via launchResult.Adopted, spec.md I3).
func killProcessTree(pid int) {
	killChildrenOf(pid, syscall.SIGTERM)

	_ = syscall.Kill(-pid, syscall.SIGTERM)
	time.Sleep(200 * time.Millisecond)
	if proc, err := os.FindProcess(pid); err == nil {
		_ = proc.Signal(syscall.SIGTERM)
	}

	time.Sleep(100 * time.Millisecond)

	_ = syscall.Kill(-pid, syscall.SIGKILL)
	if proc, err := os.FindProcess(pid); err == nil {
		_ = proc.Kill()
	}

	go func() {
		time.Sleep(50 * time.Millisecond)
		killChildrenOf(pid, syscall.SIGKILL)
		verifyDead(pid)
	}()
}

func killChildrenOf(parentPID int, sig syscall.Signal) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	out, err := exec.CommandContext(ctx, "pgrep", "-P", strconv.Itoa(parentPID)).Output()
	if err != nil {
		return
	}

	lines := strings.TrimSpace(string(out))
	if lines == "" {
		return
	}

	var children []int
	for _, line := range strings.Split(lines, "\n") {
		if pid, err := strconv.Atoi(strings.TrimSpace(line)); err == nil {
			children = append(children, pid)
		}
	}

	for _, pid := range children {
		killChildrenOf(pid, sig)
	}
	for _, pid := range children {
		if proc, err := os.FindProcess(pid); err == nil {
			_ = proc.Signal(sig)
		}
	}
}

func verifyDead(pid int) {
	time.Sleep(100 * time.Millisecond)
	proc, err := os.FindProcess(pid)
	if err != nil {
		return
	}
	if err := proc.Signal(syscall.Signal(0)); err == nil {
		_ = proc.Kill()
		_ = syscall.Kill(-pid, syscall.SIGKILL)
	}
}
