package keytransfer

import (
	"fmt"
	"strings"
)

// ErrorKind classifies why a bridge invocation failed.
type ErrorKind int

const (
	// KindToolNotFound means the bridge executable could not be started.
	KindToolNotFound ErrorKind = iota + 1
	// KindRootFailed means the privilege escalation step exited non-zero.
	KindRootFailed
	// KindPullFailed means the file pull step exited non-zero.
	KindPullFailed
)

func (k ErrorKind) String() string {
	switch k {
	case KindToolNotFound:
		return "tool not found"
	case KindRootFailed:
		return "root failed"
	case KindPullFailed:
		return "pull failed"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

/*
ExternalToolError is returned when an invocation of the bridge tool does not
succeed. Stderr carries whatever the tool printed before exiting and Err the
underlying process error.
*/
type ExternalToolError struct {
	Kind   ErrorKind
	Tool   string
	Args   []string
	Stderr string
	Err    error
}

// CommandLine renders the invocation the way a user would type it.
func (e *ExternalToolError) CommandLine() string {
	return strings.TrimSpace(e.Tool + " " + strings.Join(e.Args, " "))
}

func (e *ExternalToolError) Error() string {
	detail := strings.TrimSpace(e.Stderr)
	if detail == "" && e.Err != nil {
		detail = e.Err.Error()
	} else if e.Err != nil {
		detail = fmt.Sprintf("%s (%v)", detail, e.Err)
	}

	switch e.Kind {
	case KindToolNotFound:
		return fmt.Sprintf("bridge tool '%s' could not be started: %s", e.Tool, detail)
	case KindRootFailed:
		return fmt.Sprintf("'%s' could not enable root on the device: %s", e.CommandLine(), detail)
	case KindPullFailed:
		return fmt.Sprintf("'%s' could not pull the key file: %s", e.CommandLine(), detail)
	default:
		return fmt.Sprintf("'%s' failed: %s", e.CommandLine(), detail)
	}
}

func (e *ExternalToolError) Unwrap() error {
	return e.Err
}
