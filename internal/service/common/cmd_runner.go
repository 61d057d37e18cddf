package common

import (
	"context"
	"os/exec"
)

// CmdRunner is interface for executing external commands
type CmdRunner interface {
	// Run executes the command and returns its stdout. A non-zero exit is
	// reported as *exec.ExitError with captured stderr.
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// realCmdRunner implements CmdRunner using os/exec
type realCmdRunner struct{}

// NewCmdRunner creates a new CmdRunner
func NewCmdRunner() CmdRunner {
	return &realCmdRunner{}
}

// Run executes external command with given arguments. The command is bound
// to ctx: when the deadline expires the process is killed and the call
// returns instead of hanging.
func (r *realCmdRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	return cmd.Output()
}
