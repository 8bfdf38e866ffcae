package keyextraction

import (
	"errors"
	"io/fs"
	"os/exec"

	"github.com/AntonioJCosta/adbkey/internal/core/domain/keytransfer"
)

func rootArgs() []string {
	return []string{"root"}
}

func pullArgs(settings keytransfer.Settings) []string {
	return []string{"pull", settings.RemotePath, settings.LocalPath}
}

// classifyFailure maps a process error to an error kind. A tool that could not
// be started wins over the step-specific kind: *exec.Error comes from a failed
// PATH lookup, *fs.PathError from starting an explicit path.
func classifyFailure(err error, stepKind keytransfer.ErrorKind) keytransfer.ErrorKind {
	var execErr *exec.Error
	var pathErr *fs.PathError
	if errors.As(err, &execErr) || errors.As(err, &pathErr) {
		return keytransfer.KindToolNotFound
	}
	return stepKind
}
