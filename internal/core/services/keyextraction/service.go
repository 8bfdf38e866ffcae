package keyextraction

import (
	"fmt"

	"github.com/AntonioJCosta/adbkey/internal/core/domain/keytransfer"
	"github.com/AntonioJCosta/adbkey/internal/core/ports"
)

type service struct {
	cmdExecutor ports.CommandExecutor
	logger      ports.Logger
}

// NewService creates a new key extraction service.
// It panics if cmdExecutor or logger is nil.
func NewService(cmdExecutor ports.CommandExecutor, logger ports.Logger) ports.KeyExtractionService {
	if cmdExecutor == nil {
		panic("cmdExecutor cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &service{cmdExecutor: cmdExecutor, logger: logger}
}

/*
AuthorizeAndExtract runs "<tool> root" and, only if that succeeds,
"<tool> pull <remote> <local>". Each step runs exactly once. A failing step is
returned as a *keytransfer.ExternalToolError whose Kind names the step, or
KindToolNotFound when the tool could not be started at all.
*/
func (s *service) AuthorizeAndExtract(settings keytransfer.Settings) (keytransfer.Result, error) {
	if err := settings.Validate(); err != nil {
		return keytransfer.Result{}, fmt.Errorf("invalid transfer settings: %w", err)
	}

	rootOut, err := s.run(settings.BridgeTool, keytransfer.KindRootFailed, rootArgs())
	if err != nil {
		return keytransfer.Result{}, err
	}

	pullOut, err := s.run(settings.BridgeTool, keytransfer.KindPullFailed, pullArgs(settings))
	if err != nil {
		return keytransfer.Result{RootOutput: rootOut}, err
	}

	s.logger.Info("key file pulled", "remote", settings.RemotePath, "local", settings.LocalPath)
	return keytransfer.Result{RootOutput: rootOut, PullOutput: pullOut}, nil
}

// run performs one bridge invocation and classifies its failure.
func (s *service) run(tool string, failureKind keytransfer.ErrorKind, args []string) (string, error) {
	s.logger.Debug("running bridge command", "tool", tool, "args", args)

	stdout, stderr, err := s.cmdExecutor.Execute(tool, args...)
	if err != nil {
		toolErr := &keytransfer.ExternalToolError{
			Kind:   classifyFailure(err, failureKind),
			Tool:   tool,
			Args:   args,
			Stderr: stderr,
			Err:    err,
		}
		s.logger.Error("bridge command failed", "command", toolErr.CommandLine(), "kind", toolErr.Kind.String(), "stderr", stderr)
		return stdout, toolErr
	}

	s.logger.Debug("bridge command finished", "tool", tool, "args", args, "stdout", stdout)
	return stdout, nil
}
