package session

import (
	"fmt"
	"os/exec"
	"syscall"
)

// DetachedSpawner runs commands through "sh -c" in a new session, with
// no inherited stdio and no wait: the child outlives this process.
type DetachedSpawner struct{}

// Spawn starts the command fire-and-forget.
func (DetachedSpawner) Spawn(command string) error {
	cmd := exec.Command("sh", "-c", command)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to spawn %q: %w", command, err)
	}
	// Detach: never reap, never signal.
	return cmd.Process.Release()
}
