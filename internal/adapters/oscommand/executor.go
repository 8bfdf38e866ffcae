package oscommand

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/AntonioJCosta/adbkey/internal/core/ports"
)

// OSCommandExecutor implements the CommandExecutor interface by starting programs directly, without a shell.
type OSCommandExecutor struct{}

// NewOSCommandExecutor creates a new OSCommandExecutor.
func NewOSCommandExecutor() ports.CommandExecutor {
	return &OSCommandExecutor{}
}

// Execute runs name with args and returns its stdout, stderr, and any error.
// The returned error wraps the process error, so exec.ErrNotFound and
// *exec.ExitError can still be matched by callers.
func (e *OSCommandExecutor) Execute(name string, args ...string) (string, string, error) {
	cmd := exec.Command(name, args...)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	stdout := outBuf.String()
	stderr := errBuf.String()

	if err != nil {
		commandLine := strings.TrimSpace(name + " " + strings.Join(args, " "))
		return stdout, stderr, fmt.Errorf("running '%s': %w", commandLine, err)
	}
	return stdout, stderr, nil
}
