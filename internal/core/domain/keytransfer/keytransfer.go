/*
Package keytransfer defines the core domain entities for pulling an
authentication key off a connected device.
*/
package keytransfer

import (
	"errors"
	"strings"
)

/*
Settings describes one key transfer: which bridge tool to drive, where the
key lives on the device and where it should land locally.
*/
type Settings struct {
	BridgeTool string `yaml:"bridge_tool"`
	RemotePath string `yaml:"remote_path"`
	LocalPath  string `yaml:"local_path"`
}

// Validate reports the first missing field.
func (s Settings) Validate() error {
	switch {
	case strings.TrimSpace(s.BridgeTool) == "":
		return errors.New("bridge tool must not be empty")
	case strings.TrimSpace(s.RemotePath) == "":
		return errors.New("remote path must not be empty")
	case strings.TrimSpace(s.LocalPath) == "":
		return errors.New("local path must not be empty")
	}
	return nil
}

// Result holds the standard output captured from each bridge invocation.
type Result struct {
	RootOutput string
	PullOutput string
}

// Output joins the non-empty captured outputs in invocation order.
func (r Result) Output() string {
	var parts []string
	for _, out := range []string{r.RootOutput, r.PullOutput} {
		if trimmed := strings.TrimSpace(out); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, "\n")
}
