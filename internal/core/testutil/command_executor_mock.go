package testutil

import (
	"errors"
	"strings"

	"github.com/AntonioJCosta/adbkey/internal/core/ports"
)

// MockCommandExecutor is a mock implementation of ports.CommandExecutor.
// Every invocation is recorded in Calls as "name arg1 arg2 ...".
type MockCommandExecutor struct {
	ExecuteFunc func(name string, args ...string) (stdout string, stderr string, err error)
	Calls       []string
}

// Execute records the call and delegates to the mock ExecuteFunc.
func (m *MockCommandExecutor) Execute(name string, args ...string) (string, string, error) {
	m.Calls = append(m.Calls, strings.TrimSpace(name+" "+strings.Join(args, " ")))
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(name, args...)
	}
	return "", "", errors.New("MockCommandExecutor.ExecuteFunc not implemented")
}

var _ ports.CommandExecutor = (*MockCommandExecutor)(nil)
